package webhook

import (
	"encoding/json"
	"fmt"

	"linear-memos-sync/internal/model"
)

// LinearWebhookParser parses Linear webhook payloads
type LinearWebhookParser struct{}

func NewLinearParser() *LinearWebhookParser {
	return &LinearWebhookParser{}
}

// ParseEnvelope parses the top-level webhook envelope. The data field stays
// raw; it is decoded per event type after routing.
func (p *LinearWebhookParser) ParseEnvelope(payload []byte) (*model.WebhookEnvelope, error) {
	var envelope model.WebhookEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse webhook envelope: %w", err)
	}
	return &envelope, nil
}

// ParseProject decodes a Project event payload from the envelope data.
func (p *LinearWebhookParser) ParseProject(data json.RawMessage) (*model.ProjectPayload, error) {
	var payload model.ProjectPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse project payload: %w", err)
	}
	return &payload, nil
}

// ParseProjectUpdate decodes a ProjectUpdate event payload from the envelope data.
func (p *LinearWebhookParser) ParseProjectUpdate(data json.RawMessage) (*model.ProjectUpdatePayload, error) {
	var payload model.ProjectUpdatePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse project update payload: %w", err)
	}
	return &payload, nil
}
