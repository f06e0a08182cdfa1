package model

import "encoding/json"

// EventType is the webhook payload type sent by Linear.
type EventType string

const (
	EventTypeProject       EventType = "Project"
	EventTypeProjectUpdate EventType = "ProjectUpdate"
)

// EventAction is the webhook action. Linear delivers project updates with
// action "create" (a new update record is created), not "update".
type EventAction string

const (
	ActionCreate EventAction = "create"
	ActionUpdate EventAction = "update"
)

// WebhookEnvelope is the top-level webhook message. Data is decoded per
// event type by the webhook parser; nothing downstream touches raw JSON.
type WebhookEnvelope struct {
	Type   EventType       `json:"type"`
	Action EventAction     `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// Validate checks the envelope shape: type and action present, and data
// present for the supported types. Structural only.
func (e WebhookEnvelope) Validate() bool {
	if e.Type == "" || e.Action == "" {
		return false
	}

	if (e.Type == EventTypeProject || e.Type == EventTypeProjectUpdate) && len(e.Data) == 0 {
		return false
	}

	return true
}
