// Package selection tracks the places a session has added to its route.
package selection

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

// Selection is an insertion-ordered set of place names. Names are the keys:
// two places with the same name are the same entry.
type Selection struct {
	mu       sync.Mutex
	names    []string
	notifier *Notifier
}

func New(notificationTTL time.Duration) *Selection {
	return &Selection{notifier: NewNotifier(notificationTTL)}
}

// Add appends the place unless its name is already present. It reports
// whether the selection changed; only a change raises a notification.
func (s *Selection) Add(poi types.PointOfInterest) bool {
	s.mu.Lock()
	if slices.Contains(s.names, poi.Name) {
		s.mu.Unlock()
		return false
	}
	s.names = append(s.names, poi.Name)
	s.mu.Unlock()

	s.notifier.Notify(AddedMessage(poi.Name))
	return true
}

// Remove deletes name if present. Removing an absent name is a no-op.
func (s *Selection) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.names, name)
	if i < 0 {
		return false
	}
	s.names = slices.Delete(s.names, i, i+1)
	return true
}

func (s *Selection) Contains(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.names, name)
}

func (s *Selection) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.names)
}

func (s *Selection) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.names)
}

func (s *Selection) Notification() (string, bool) {
	return s.notifier.Current()
}

func (s *Selection) View() types.SelectionView {
	names := s.Names()
	if names == nil {
		names = []string{}
	}
	msg, _ := s.Notification()
	return types.SelectionView{
		Places:       names,
		Count:        len(names),
		Notification: msg,
	}
}

// Close cancels the pending notification timer.
func (s *Selection) Close() {
	s.notifier.Stop()
}

func AddedMessage(name string) string {
	return fmt.Sprintf("Agregaste %s a tu ruta", name)
}
