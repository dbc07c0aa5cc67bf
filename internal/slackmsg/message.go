package slackmsg

import (
	"github.com/slack-go/slack"
)

// WorkingNotice is the immediate acknowledgment text shown while the reword runs.
const WorkingNotice = ":hourglass_flowing_sand: Working on your reword..."

// EmptyTextNotice is returned synchronously when the command carries no text.
const EmptyTextNotice = "Please provide a message to reword. Usage: /reword <your message>"

// Acknowledgment is the fixed ephemeral notice returned inside Slack's
// synchronous window, before the reword result exists.
func Acknowledgment() slack.Msg {
	return slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         WorkingNotice,
	}
}

// Success renders a finished reword. The transformed text leads in its own
// section block; the original follows a divider in a context block so the two
// are never mixed.
func Success(original, transformed string) slack.Msg {
	return slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         transformed,
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				slack.NewSectionBlock(
					slack.NewTextBlockObject(slack.MarkdownType, transformed, false, false),
					nil, nil,
				),
				slack.NewDividerBlock(),
				slack.NewContextBlock("",
					slack.NewTextBlockObject(slack.MarkdownType, "*Original:* "+original, false, false),
				),
			},
		},
	}
}

// Failure renders an error or guidance notice. The supplied message is included
// verbatim after the warning marker.
func Failure(message string) slack.Msg {
	return slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         ":warning: " + message,
	}
}
