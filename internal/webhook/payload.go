package webhook

import (
	"net/url"
)

// parseCommandPayload decodes an application/x-www-form-urlencoded body into a
// CommandPayload. It never fails: on a malformed body whatever fields could be
// decoded are used, unknown fields are ignored, and missing fields stay empty.
// Whether the payload is usable is the handler's judgement, not the parser's.
func parseCommandPayload(body []byte) CommandPayload {
	values, _ := url.ParseQuery(string(body))

	return CommandPayload{
		Text:        values.Get("text"),
		CallbackURL: values.Get("response_url"),
		UserID:      values.Get("user_id"),
		UserName:    values.Get("user_name"),
		ChannelID:   values.Get("channel_id"),
		ChannelName: values.Get("channel_name"),
		TeamID:      values.Get("team_id"),
		Command:     values.Get("command"),
		TriggerID:   values.Get("trigger_id"),
	}
}

// formField extracts a single field from a url-encoded body, "" when absent.
func formField(body []byte, key string) string {
	values, _ := url.ParseQuery(string(body))
	return values.Get(key)
}
