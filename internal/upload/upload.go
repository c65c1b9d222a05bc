package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/learnly-labs/learnly/internal/session"
)

// Result is the server's record of a stored file.
type Result struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name,omitempty"`
	Size         int64  `json:"size,omitempty"`
}

// Callbacks receive a task's progress events and its terminal outcome.
// Exactly one of OnComplete and OnError fires per Send. All fields are
// optional.
type Callbacks struct {
	OnProgress func(pct float64)
	OnComplete func(res Result)
	OnError    func(msg string)
}

// Uploader streams files to the backend's upload endpoints. Unlike the api
// package it performs no token refresh: the token read from the session at
// send time is the one the whole transfer uses.
type Uploader struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Store
}

// Option configures an Uploader.
type Option func(*Uploader)

// WithHTTPClient sets a custom HTTP client (useful for testing). Uploads get
// no default timeout: a 500MB video on a slow link is not an error.
func WithHTTPClient(c *http.Client) Option {
	return func(u *Uploader) {
		u.httpClient = c
	}
}

// New creates an Uploader for baseURL reading tokens from store.
func New(baseURL string, store *session.Store, opts ...Option) *Uploader {
	u := &Uploader{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		session:    store,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Send transfers the file at path for the given task, invoking cb as the
// transfer proceeds. The returned Result mirrors what OnComplete received;
// on failure the error mirrors OnError's message.
func (u *Uploader) Send(ctx context.Context, task *Task, path string, cb Callbacks) (*Result, error) {
	if !task.start() {
		return nil, u.failf(task, cb, "upload task already %s", task.State())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, u.failf(task, cb, "opening %s: %v", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, u.failf(task, cb, "inspecting %s: %v", path, err)
	}

	cfg, err := ConfigFor(task.Kind)
	if err != nil {
		return nil, u.failf(task, cb, "%v", err)
	}

	src := &progressReader{
		r:     f,
		total: info.Size(),
		report: func(pct float64) {
			recorded := task.setProgress(pct)
			if cb.OnProgress != nil {
				cb.OnProgress(recorded)
			}
		},
	}

	// Stream the multipart body instead of buffering it; videos run to
	// hundreds of megabytes.
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile("file", filepath.Base(path))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL+cfg.Endpoint(task.TargetID), pr)
	if err != nil {
		return nil, u.failf(task, cb, "creating upload request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token := u.session.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, u.failf(task, cb, "network error during upload: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, u.failf(task, cb, "reading upload response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, u.failf(task, cb, "%s", errorDetail(body, resp.StatusCode))
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, u.failf(task, cb, "parsing upload response: %v", err)
	}

	task.setProgress(100)
	if cb.OnProgress != nil {
		cb.OnProgress(100)
	}
	task.complete()
	if cb.OnComplete != nil {
		cb.OnComplete(result)
	}
	return &result, nil
}

// failf marks the task failed, fires the error callback once, and returns
// the same message as an error.
func (u *Uploader) failf(task *Task, cb Callbacks, format string, args ...any) error {
	task.fail()
	msg := fmt.Sprintf(format, args...)
	if cb.OnError != nil {
		cb.OnError(msg)
	}
	return fmt.Errorf("%s", msg)
}

// errorDetail extracts the backend's detail message from an error payload,
// falling back to a generic message.
func errorDetail(body []byte, status int) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Detail != "" {
		return payload.Detail
	}
	return fmt.Sprintf("upload failed with status %d", status)
}
