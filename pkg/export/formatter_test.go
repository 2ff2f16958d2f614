package export

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"octobot-be/internal/entity"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func sampleInput() Input {
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	msgId := uuid.New()
	botMsgId := uuid.New()
	sessionId := uuid.New()

	return Input{
		Session: &entity.TestSession{
			Id:            sessionId,
			SessionToken:  "abc123session",
			Status:        entity.SessionStatusReviewed,
			AdminNotes:    strPtr("needs follow-up"),
			ReviewRating:  intPtr(4),
			ReviewComment: strPtr("Mostly accurate"),
			CreatedAt:     created,
		},
		Bot: &entity.Bot{
			Name:       "Support Bot",
			ClientName: "Acme Corp",
		},
		Messages: []*entity.Message{
			{
				Id:        msgId,
				SessionId: sessionId,
				Role:      entity.MessageRoleUser,
				Content:   "What are your opening hours?",
				CreatedAt: created.Add(time.Minute),
			},
			{
				Id:            botMsgId,
				SessionId:     sessionId,
				Role:          entity.MessageRoleBot,
				Content:       "We are open 9 to 5.",
				EditedContent: strPtr("We are open 9am-5pm, Monday through Friday."),
				CreatedAt:     created.Add(2 * time.Minute),
			},
		},
		Feedback: []*entity.MessageFeedback{
			{
				Id:        uuid.New(),
				MessageId: botMsgId,
				SessionId: sessionId,
				Type:      entity.FeedbackTypeDislike,
				Comment:   strPtr("too vague"),
			},
		},
		Note: &entity.SessionNote{
			SessionId: sessionId,
			Content:   "tester seemed confused at first",
		},
	}
}

func TestRenderTxt(t *testing.T) {
	out, err := Render(sampleInput(), FormatTxt)
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "TEST SESSION REPORT\n"+strings.Repeat("=", 50)+"\n"))
	assert.Contains(t, out, "Bot: Support Bot\n")
	assert.Contains(t, out, "Client: Acme Corp\n")
	assert.Contains(t, out, "Session ID: abc123session\n")
	assert.Contains(t, out, "Status: reviewed\n")
	assert.Contains(t, out, "Created: 2025-03-14 09:30:00\n")
	assert.Contains(t, out, "CHAT HISTORY\n"+strings.Repeat("-", 50))

	assert.Contains(t, out, "[CLIENT] (2025-03-14 09:31:00)\nWhat are your opening hours?\n")
	assert.Contains(t, out, "[BOT] (2025-03-14 09:32:00)\nWe are open 9 to 5.\n")
	assert.Contains(t, out, "  [EDITED] We are open 9am-5pm, Monday through Friday.\n")
	assert.Contains(t, out, "  [DISLIKE] too vague\n")

	assert.Contains(t, out, "SESSION NOTES\n"+strings.Repeat("-", 50)+"\ntester seemed confused at first\n")
	assert.Contains(t, out, "ADMIN NOTES\n"+strings.Repeat("-", 50)+"\nneeds follow-up\n")
	assert.Contains(t, out, "REVIEW (Rating: 4/5)\n"+strings.Repeat("-", 50)+"\nMostly accurate\n")
}

func TestRenderMarkdown(t *testing.T) {
	out, err := Render(sampleInput(), FormatMarkdown)
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Test Session Report\n\n"))
	assert.Contains(t, out, "**Bot:** Support Bot\n")
	assert.Contains(t, out, "**Client:** Acme Corp\n")
	assert.Contains(t, out, "**Session ID:** abc123session\n")
	assert.Contains(t, out, "## Chat History\n\n")

	assert.Contains(t, out, "### Client (2025-03-14 09:31:00)\n\nWhat are your opening hours?\n\n")
	assert.Contains(t, out, "### Bot (2025-03-14 09:32:00)\n\nWe are open 9 to 5.\n\n")
	assert.Contains(t, out, "> **Edited Response:** We are open 9am-5pm, Monday through Friday.\n\n")
	assert.Contains(t, out, "> **Negative:** too vague\n\n")

	assert.Contains(t, out, "## Session Notes\n\ntester seemed confused at first\n\n")
	assert.Contains(t, out, "## Admin Notes\n\nneeds follow-up\n\n")
	assert.Contains(t, out, "## Review\n\n**Rating:** 4/5\n\nMostly accurate\n")
}

func TestRenderDeletedBot(t *testing.T) {
	in := sampleInput()
	in.Bot = nil

	out, err := Render(in, FormatTxt)
	assert.NoError(t, err)
	assert.Contains(t, out, "Bot: Unknown\n")
	assert.Contains(t, out, "Client: Unknown\n")
}

func TestRenderFeedbackWithoutComment(t *testing.T) {
	in := sampleInput()
	in.Feedback[0].Type = entity.FeedbackTypeLike
	in.Feedback[0].Comment = nil

	out, err := Render(in, FormatTxt)
	assert.NoError(t, err)
	assert.Contains(t, out, "  [LIKE] No comment\n")

	md, err := Render(in, FormatMarkdown)
	assert.NoError(t, err)
	assert.Contains(t, md, "> **Positive:** No comment\n\n")
}

func TestRenderUnsupportedFormat(t *testing.T) {
	_, err := Render(sampleInput(), Format("pdf"))
	assert.Error(t, err)
}

func TestValidFormat(t *testing.T) {
	assert.True(t, ValidFormat(FormatTxt))
	assert.True(t, ValidFormat(FormatMarkdown))
	assert.False(t, ValidFormat(Format("pdf")))
	assert.False(t, ValidFormat(Format("")))
}
