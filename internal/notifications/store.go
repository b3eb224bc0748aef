package notifications

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"luxadmin/internal/domain/models"
)

// TypeNewBooking is the only notification type derived today.
const TypeNewBooking = "new_booking"

// freshWindow is how long a booking counts as "new" after creation.
const freshWindow = 24 * time.Hour

// Notification is derived, never stored remotely. Only the read-set behind
// the Read flag persists between derivations.
type Notification struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	BookingID int64          `json:"booking_id"`
	Booking   models.Booking `json:"booking"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"created_at"`
}

// NotificationID keys a notification deterministically on its booking.
func NotificationID(bookingID int64) string {
	return fmt.Sprintf("booking-%d", bookingID)
}

// Store tracks which derived notifications the operator has read. The set
// lives in a JSON file so read state survives restarts; it is local to this
// instance and never synced with the booking service.
//
// Construct with NewStore and inject where needed. Listeners registered via
// Subscribe are invoked synchronously, in registration order, on every
// mutation; they receive no payload and must re-derive state themselves.
type Store struct {
	path string

	mu        sync.Mutex
	read      map[string]struct{}
	listeners []func()
}

func NewStore(path string) *Store {
	s := &Store{
		path: path,
		read: make(map[string]struct{}),
	}
	s.load()
	return s
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[NOTIFICATIONS] read state load failed, starting empty: %v", err)
		}
		return
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		log.Printf("[NOTIFICATIONS] read state corrupt, starting empty: %v", err)
		return
	}
	for _, id := range ids {
		s.read[id] = struct{}{}
	}
}

// save persists the read-set. Failures are logged only: losing read state
// degrades to "nothing marked read", never to a crash.
func (s *Store) save() {
	ids := make([]string, 0, len(s.read))
	for id := range s.read {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	raw, err := json.Marshal(ids)
	if err != nil {
		log.Printf("[NOTIFICATIONS] read state encode failed: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		log.Printf("[NOTIFICATIONS] read state dir create failed: %v", err)
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		log.Printf("[NOTIFICATIONS] read state write failed: %v", err)
	}
}

// Subscribe registers a zero-argument callback fired after every mutation.
// The returned function unregisters it.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	idx := len(s.listeners) - 1
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if idx < len(s.listeners) {
			s.listeners[idx] = nil
		}
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	snapshot := make([]func(), len(s.listeners))
	copy(snapshot, s.listeners)
	s.mu.Unlock()

	for _, fn := range snapshot {
		if fn != nil {
			fn()
		}
	}
}

// MarkAsRead adds id to the persisted read-set. Idempotent.
func (s *Store) MarkAsRead(id string) {
	s.mu.Lock()
	s.read[id] = struct{}{}
	s.save()
	s.mu.Unlock()
	s.notify()
}

// MarkAllAsRead batches MarkAsRead over a set of ids.
func (s *Store) MarkAllAsRead(ids []string) {
	s.mu.Lock()
	for _, id := range ids {
		s.read[id] = struct{}{}
	}
	s.save()
	s.mu.Unlock()
	s.notify()
}

// IsRead is a pure membership test against the read-set.
func (s *Store) IsRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.read[id]
	return ok
}

// FromBookings recomputes the notification list from scratch: one entry per
// booking created within the last 24 hours relative to now, in input order.
// Nothing is cached; call again to reflect elapsed time or new data.
func (s *Store) FromBookings(bookings []models.Booking, now time.Time) []Notification {
	out := make([]Notification, 0, len(bookings))
	for _, b := range bookings {
		if now.Sub(b.CreatedAt) > freshWindow {
			continue
		}
		id := NotificationID(b.ID)
		out = append(out, Notification{
			ID:        id,
			Type:      TypeNewBooking,
			BookingID: b.ID,
			Booking:   b,
			Read:      s.IsRead(id),
			CreatedAt: b.CreatedAt,
		})
	}
	return out
}

// UnreadCount counts notifications whose derived Read flag is false.
func UnreadCount(notifications []Notification) int {
	n := 0
	for _, notif := range notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}
