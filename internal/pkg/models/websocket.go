package models

import (
	"encoding/json"
	"fmt"
)

// WSMessage is the envelope of every frame exchanged on a customer's socket.
// Data holds the event payload still encoded, so readers decode it only once
// they know the event.
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// NewWSMessage wraps payload in the envelope of event
func NewWSMessage(event string, payload interface{}) (WSMessage, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return WSMessage{}, fmt.Errorf("failed to encode %s payload: %w", event, err)
	}
	return WSMessage{Event: event, Data: raw}, nil
}

// Decode unmarshals the payload into v
func (m WSMessage) Decode(v interface{}) error {
	if len(m.Data) == 0 {
		return fmt.Errorf("%s event has no payload", m.Event)
	}
	return json.Unmarshal(m.Data, v)
}

// WSErrorMessage is the payload of an error event, for failures the
// customer did not cause through an HTTP call
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
