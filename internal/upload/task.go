package upload

import (
	"sync"

	"github.com/google/uuid"
)

// State is an upload task's lifecycle phase.
type State string

// Task states. Done and Failed are terminal; a task never leaves them.
// A new file selection is a new task, not a reused one.
const (
	StatePending   State = "pending"
	StateUploading State = "uploading"
	StateDone      State = "done"
	StateFailed    State = "failed"
)

// Task tracks one file transfer. Progress is monotonically non-decreasing
// in [0,100] while uploading and resets to 0 on completion.
type Task struct {
	ID       string
	Kind     Kind
	TargetID int

	mu       sync.Mutex
	state    State
	progress float64
}

// NewTask creates a pending task for one file selection.
func NewTask(kind Kind, targetID int) *Task {
	return &Task{
		ID:       uuid.NewString(),
		Kind:     kind,
		TargetID: targetID,
		state:    StatePending,
	}
}

// State returns the task's current state.
func (t *Task) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Progress returns the current progress percentage.
func (t *Task) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress
}

func (t *Task) start() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StatePending {
		return false
	}
	t.state = StateUploading
	return true
}

// setProgress clamps to [0,100] and never moves backwards. Returns the value
// actually recorded so callers report exactly what the task holds.
func (t *Task) setProgress(pct float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if pct > 100 {
		pct = 100
	}
	if pct > t.progress {
		t.progress = pct
	}
	return t.progress
}

func (t *Task) complete() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateUploading {
		t.state = StateDone
		t.progress = 0
	}
}

func (t *Task) fail() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateUploading || t.state == StatePending {
		t.state = StateFailed
	}
}
