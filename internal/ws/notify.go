package ws

import (
	"encoding/json"
	"time"
)

const (
	EventPreferencesUpdated = "preferences_updated"
	EventPreferencesReset   = "preferences_reset"
	EventCacheCleared       = "cache_cleared"
)

type Event struct {
	Type      string `json:"type"`
	Key       string `json:"key,omitempty"`
	Value     any    `json:"value,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Notifier turns usecase changes into broadcast events.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) PreferencesUpdated(key string, value any) {
	n.publish(Event{Type: EventPreferencesUpdated, Key: key, Value: value})
}

func (n *Notifier) PreferencesReset() {
	n.publish(Event{Type: EventPreferencesReset})
}

func (n *Notifier) CacheCleared(key string) {
	n.publish(Event{Type: EventCacheCleared, Key: key})
}

func (n *Notifier) publish(evt Event) {
	if n == nil || n.hub == nil {
		return
	}
	evt.Timestamp = n.now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
