package llm

import (
	"encoding/json"
	"errors"
)

// ParseDraft validates the raw model output against the draft schema.
func ParseDraft(raw string) (*MenuDraft, error) {
	var draft MenuDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, errors.New("invalid draft JSON")
	}
	if draft.Name == "" {
		return nil, errors.New("draft is missing a menu name")
	}
	if len(draft.Items) == 0 {
		return nil, errors.New("draft contains no items")
	}
	return &draft, nil
}
