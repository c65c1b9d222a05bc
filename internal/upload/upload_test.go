package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/learnly-labs/learnly/internal/session"
)

func writeTestFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSend_Success(t *testing.T) {
	var gotPath, gotAuth, gotName string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("multipart body did not parse: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotName = header.Filename
		io.Copy(io.Discard, file)

		json.NewEncoder(w).Encode(Result{
			URL:          "/uploads/videos/abc123.mp4",
			Filename:     "abc123.mp4",
			OriginalName: header.Filename,
		})
	}))
	defer srv.Close()

	store := session.NewStore()
	store.SetTokens("A1", "R1")

	u := New(srv.URL, store)
	task := NewTask(KindVideo, 42)

	path := writeTestFile(t, "lecture.mp4", 256*1024)

	var progress []float64
	var completed *Result
	result, err := u.Send(context.Background(), task, path, Callbacks{
		OnProgress: func(pct float64) { progress = append(progress, pct) },
		OnComplete: func(res Result) { completed = &res },
		OnError:    func(msg string) { t.Errorf("unexpected error callback: %s", msg) },
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if gotPath != "/api/v1/uploads/video/42" {
		t.Errorf("path = %q, want /api/v1/uploads/video/42", gotPath)
	}
	if gotAuth != "Bearer A1" {
		t.Errorf("auth = %q, want the session's access token", gotAuth)
	}
	if gotName != "lecture.mp4" {
		t.Errorf("filename = %q, want lecture.mp4", gotName)
	}

	if completed == nil {
		t.Fatal("completion callback did not fire")
	}
	if completed.URL != result.URL || result.URL == "" {
		t.Errorf("result URL = %q / callback URL = %q", result.URL, completed.URL)
	}
	if result.Filename != "abc123.mp4" {
		t.Errorf("result filename = %q", result.Filename)
	}

	if len(progress) == 0 {
		t.Fatal("no progress reported")
	}
	last := 0.0
	for i, p := range progress {
		if p < last {
			t.Fatalf("progress went backwards at %d: %v", i, progress)
		}
		if p < 0 || p > 100 {
			t.Fatalf("progress out of bounds at %d: %v", i, p)
		}
		last = p
	}
	if progress[len(progress)-1] != 100 {
		t.Errorf("final progress = %v, want 100", progress[len(progress)-1])
	}

	if task.State() != StateDone {
		t.Errorf("task state = %s, want done", task.State())
	}
	if task.Progress() != 0 {
		t.Errorf("progress after completion = %v, want reset to 0", task.Progress())
	}
}

func TestSend_ServerErrorUsesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "File type not allowed"})
	}))
	defer srv.Close()

	u := New(srv.URL, session.NewStore())
	task := NewTask(KindThumbnail, 7)
	path := writeTestFile(t, "cover.bmp", 1024)

	var gotMsg string
	_, err := u.Send(context.Background(), task, path, Callbacks{
		OnError: func(msg string) { gotMsg = msg },
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if gotMsg != "File type not allowed" {
		t.Errorf("error message = %q, want the server's detail", gotMsg)
	}
	if task.State() != StateFailed {
		t.Errorf("task state = %s, want failed", task.State())
	}
}

func TestSend_ServerErrorWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "<html>bad gateway</html>")
	}))
	defer srv.Close()

	u := New(srv.URL, session.NewStore())
	task := NewTask(KindMaterial, 7)
	path := writeTestFile(t, "notes.txt", 64)

	var gotMsg string
	_, err := u.Send(context.Background(), task, path, Callbacks{
		OnError: func(msg string) { gotMsg = msg },
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(gotMsg, "502") {
		t.Errorf("error message = %q, want a generic message naming the status", gotMsg)
	}
}

func TestSend_ExpiredTokenFailsWithoutRefresh(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid or expired token"})
	}))
	defer srv.Close()

	store := session.NewStore()
	store.SetTokens("A-expired", "R1")

	u := New(srv.URL, store)
	task := NewTask(KindVideo, 42)
	path := writeTestFile(t, "lecture.mp4", 1024)

	_, err := u.Send(context.Background(), task, path, Callbacks{})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("server saw %d requests, want 1 (no refresh, no retry)", calls)
	}
	// The session is the caller's to fix; uploads never clear it.
	if store.AccessToken() != "A-expired" || store.RefreshToken() != "R1" {
		t.Error("upload failure must not touch the session store")
	}
}

func TestSend_MissingFile(t *testing.T) {
	u := New("http://localhost:0", session.NewStore())
	task := NewTask(KindVideo, 1)

	var gotMsg string
	_, err := u.Send(context.Background(), task, "/does/not/exist.mp4", Callbacks{
		OnError: func(msg string) { gotMsg = msg },
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if gotMsg == "" {
		t.Error("error callback did not fire")
	}
	if task.State() != StateFailed {
		t.Errorf("task state = %s, want failed", task.State())
	}
}

func TestSend_TerminalTaskIsNotReused(t *testing.T) {
	u := New("http://localhost:0", session.NewStore())
	task := NewTask(KindVideo, 1)
	path := writeTestFile(t, "a.mp4", 16)

	_, _ = u.Send(context.Background(), task, "/does/not/exist.mp4", Callbacks{})
	if task.State() != StateFailed {
		t.Fatalf("task state = %s, want failed", task.State())
	}

	_, err := u.Send(context.Background(), task, path, Callbacks{})
	if err == nil {
		t.Fatal("sending a terminal task should fail")
	}
	if task.State() != StateFailed {
		t.Errorf("terminal state must not change, got %s", task.State())
	}
}
