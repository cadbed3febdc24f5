package ws

import (
	"encoding/json"
	"strings"
	"time"
)

type RecordChangedEvent struct {
	Type       string `json:"type"`
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ProfileID  string `json:"profile_id,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// NotifyChange implements the usecase layer's ChangeNotifier.
func (h *Hub) NotifyChange(collection, action, profileID string) {
	if h == nil {
		return
	}

	collection = strings.TrimSpace(collection)
	action = strings.TrimSpace(action)
	if collection == "" || action == "" {
		return
	}

	evt := RecordChangedEvent{
		Type:       "record_changed",
		Collection: collection,
		Action:     action,
		ProfileID:  strings.TrimSpace(profileID),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
