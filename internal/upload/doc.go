// Package upload streams course files (videos, thumbnails, materials) to the
// backend's multipart upload endpoints, reporting monotone progress along the
// way. Uploads reuse the session's current access token but never refresh it:
// an expired token fails the upload and the caller must sign in again before
// retrying. Transparently re-sending hundreds of megabytes is worse than
// surfacing the failure.
package upload
