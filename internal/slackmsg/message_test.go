package slackmsg

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcknowledgment(t *testing.T) {
	msg := Acknowledgment()

	assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
	assert.Equal(t, WorkingNotice, msg.Text)
	assert.Empty(t, msg.Blocks.BlockSet)
}

func TestSuccess(t *testing.T) {
	msg := Success("plz fix asap", "Could you fix this when you get a chance?")

	assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
	// Fallback text for surfaces that do not render blocks.
	assert.Equal(t, "Could you fix this when you get a chance?", msg.Text)

	require.Len(t, msg.Blocks.BlockSet, 3)
	section, ok := msg.Blocks.BlockSet[0].(*slack.SectionBlock)
	require.True(t, ok, "first block should be a section")
	assert.Equal(t, "Could you fix this when you get a chance?", section.Text.Text)

	_, ok = msg.Blocks.BlockSet[1].(*slack.DividerBlock)
	assert.True(t, ok, "second block should be a divider")

	ctxBlock, ok := msg.Blocks.BlockSet[2].(*slack.ContextBlock)
	require.True(t, ok, "third block should be a context block")
	require.Len(t, ctxBlock.ContextElements.Elements, 1)
	textObj, ok := ctxBlock.ContextElements.Elements[0].(*slack.TextBlockObject)
	require.True(t, ok)
	assert.Equal(t, "*Original:* plz fix asap", textObj.Text)
}

func TestSuccess_MarshalsToValidJSON(t *testing.T) {
	msg := Success("before", "after")

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, `"response_type":"ephemeral"`)
	assert.Contains(t, body, "after")
	assert.Contains(t, body, "*Original:* before")
}

func TestFailure(t *testing.T) {
	msg := Failure("Error: model unavailable")

	assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
	assert.True(t, strings.HasPrefix(msg.Text, ":warning: "), "failure text should lead with the warning marker")
	assert.Contains(t, msg.Text, "Error: model unavailable")
	assert.Empty(t, msg.Blocks.BlockSet)
}

func TestFailure_EmptyTextNotice(t *testing.T) {
	msg := Failure(EmptyTextNotice)

	assert.Contains(t, msg.Text, "provide a message")
	assert.Contains(t, msg.Text, "/reword")
}
