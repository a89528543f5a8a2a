package notify

import (
	"sync"
	"time"
)

// DefaultDuration matches the storefront's toast auto-hide delay.
const DefaultDuration = 2200 * time.Millisecond

// Toast is a single-slot transient notification. Only one message is visible
// at a time; a new message preempts the current one and restarts the timer.
type Toast struct {
	mu       sync.Mutex
	message  string
	timer    *time.Timer
	duration time.Duration
	onChange func(string)
}

// NewToast creates a toast with the default auto-hide duration.
func NewToast() *Toast {
	return NewToastWithDuration(DefaultDuration)
}

// NewToastWithDuration allows a custom auto-hide duration (primarily for testing).
func NewToastWithDuration(d time.Duration) *Toast {
	return &Toast{duration: d}
}

// OnChange registers a callback invoked with the current message whenever it
// changes, including the reset to empty on auto-hide.
func (t *Toast) OnChange(fn func(message string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange = fn
}

// Show displays message and (re)arms the auto-hide timer.
func (t *Toast) Show(message string) {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.message = message
	t.timer = time.AfterFunc(t.duration, t.hide)
	fn := t.onChange
	t.mu.Unlock()

	if fn != nil {
		fn(message)
	}
}

// Current returns the currently displayed message, or "" when hidden.
func (t *Toast) Current() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.message
}

func (t *Toast) hide() {
	t.mu.Lock()
	t.message = ""
	t.timer = nil
	fn := t.onChange
	t.mu.Unlock()

	if fn != nil {
		fn("")
	}
}
