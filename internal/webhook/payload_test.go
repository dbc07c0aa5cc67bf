package webhook

import (
	"testing"
)

func TestParseCommandPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
		want CommandPayload
	}{
		{
			name: "empty body yields all-empty payload",
			body: "",
			want: CommandPayload{},
		},
		{
			name: "text and response_url decoded",
			body: "text=hello%20world&response_url=https%3A%2F%2Fx",
			want: CommandPayload{
				Text:        "hello world",
				CallbackURL: "https://x",
			},
		},
		{
			name: "full slash command body",
			body: "token=tok&team_id=T123&channel_id=C456&channel_name=general&user_id=U789" +
				"&user_name=alice&command=%2Freword&text=fix+this+please" +
				"&response_url=https%3A%2F%2Fhooks.example.com%2Fcommands%2FT123%2F1%2Fabc" +
				"&trigger_id=111.222.333",
			want: CommandPayload{
				Text:        "fix this please",
				CallbackURL: "https://hooks.example.com/commands/T123/1/abc",
				UserID:      "U789",
				UserName:    "alice",
				ChannelID:   "C456",
				ChannelName: "general",
				TeamID:      "T123",
				Command:     "/reword",
				TriggerID:   "111.222.333",
			},
		},
		{
			name: "unknown fields ignored",
			body: "text=hi&some_future_field=1&another=two",
			want: CommandPayload{Text: "hi"},
		},
		{
			name: "malformed body keeps what decoded",
			body: "text=hi&%zz=broken",
			want: CommandPayload{Text: "hi"},
		},
		{
			name: "not form data at all",
			body: `{"this":"is json"}`,
			want: CommandPayload{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCommandPayload([]byte(tt.body))
			if got != tt.want {
				t.Errorf("parseCommandPayload() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormField(t *testing.T) {
	body := []byte("payload=%7B%22type%22%3A%22block_actions%22%7D&other=x")

	if got := formField(body, "payload"); got != `{"type":"block_actions"}` {
		t.Errorf("formField(payload) = %q", got)
	}
	if got := formField(body, "missing"); got != "" {
		t.Errorf("formField(missing) = %q, want empty", got)
	}
}
