// Package updater performs a cached, non-blocking check for newer CLI
// releases on GitHub. It only notifies; installing a new version is left to
// the user's package manager or a manual download.
package updater
