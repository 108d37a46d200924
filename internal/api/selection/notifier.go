package selection

import (
	"sync"
	"time"
)

const DefaultNotificationTTL = 3 * time.Second

// Notifier holds one ephemeral message that clears itself after ttl.
// A new message cancels the pending clear and restarts the countdown.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	message string
	timer   *time.Timer
	gen     uint64
}

func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{ttl: ttl}
}

func (n *Notifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	gen := n.gen
	n.message = message
	n.timer = time.AfterFunc(n.ttl, func() { n.expire(gen) })
}

// expire clears the message only if no newer one replaced it; Stop cannot
// prevent a callback that already started.
func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.gen == gen {
		n.message = ""
		n.timer = nil
	}
}

// Current returns the live message, if any.
func (n *Notifier) Current() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message, n.message != ""
}

// Stop cancels any pending clear and drops the message.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.gen++
	n.message = ""
}
