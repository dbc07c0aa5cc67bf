package slackmsg

import (
	"encoding/json"

	"github.com/slack-go/slack"
)

// InteractionKind is the closed set of interactive payload kinds the service
// recognizes. Anything else maps to InteractionUnknown.
type InteractionKind string

const (
	InteractionUnknown        InteractionKind = "unknown"
	InteractionBlockActions   InteractionKind = "block_actions"
	InteractionShortcut       InteractionKind = "shortcut"
	InteractionViewSubmission InteractionKind = "view_submission"
)

// Interaction is an interactive callback parsed once into a typed structure.
// Only fields needed for acknowledgment and logging are kept.
type Interaction struct {
	Kind       InteractionKind
	UserID     string
	TriggerID  string
	CallbackID string
	ActionIDs  []string
}

// ParseInteraction decodes the JSON `payload` field of an interactive request.
// A payload that cannot be decoded, or whose type is not recognized, yields
// InteractionUnknown rather than an error; the endpoint acknowledges either way.
func ParseInteraction(payload []byte) Interaction {
	var cb slack.InteractionCallback
	if err := json.Unmarshal(payload, &cb); err != nil {
		return Interaction{Kind: InteractionUnknown}
	}

	inter := Interaction{
		Kind:       InteractionUnknown,
		UserID:     cb.User.ID,
		TriggerID:  cb.TriggerID,
		CallbackID: cb.CallbackID,
	}

	switch cb.Type {
	case slack.InteractionTypeBlockActions:
		inter.Kind = InteractionBlockActions
		for _, action := range cb.ActionCallback.BlockActions {
			inter.ActionIDs = append(inter.ActionIDs, action.ActionID)
		}
	case slack.InteractionTypeShortcut, slack.InteractionTypeMessageAction:
		inter.Kind = InteractionShortcut
	case slack.InteractionTypeViewSubmission:
		inter.Kind = InteractionViewSubmission
	default:
		// Unrecognized kinds are acknowledged but otherwise ignored.
	}

	return inter
}
