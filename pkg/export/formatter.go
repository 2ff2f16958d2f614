// Package export renders a test session transcript as plain text or
// markdown for download from the admin dashboard.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"octobot-be/internal/entity"
)

// Format identifies a transcript output format.
type Format string

const (
	FormatTxt      Format = "txt"
	FormatMarkdown Format = "md"
)

// ValidFormat reports whether f is a supported export format.
func ValidFormat(f Format) bool {
	return f == FormatTxt || f == FormatMarkdown
}

// timeLayout is used for every timestamp in an exported transcript.
const timeLayout = "2006-01-02 15:04:05"

// Input bundles everything one transcript needs. Bot may be nil when
// the bot was deleted after the session ran.
type Input struct {
	Session  *entity.TestSession
	Bot      *entity.Bot
	Messages []*entity.Message
	Feedback []*entity.MessageFeedback
	Note     *entity.SessionNote
}

// Render produces the transcript in the requested format.
func Render(in Input, format Format) (string, error) {
	switch format {
	case FormatTxt:
		return renderTxt(in), nil
	case FormatMarkdown:
		return renderMarkdown(in), nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
}

func feedbackByMessage(feedback []*entity.MessageFeedback) map[uuid.UUID][]*entity.MessageFeedback {
	out := make(map[uuid.UUID][]*entity.MessageFeedback)
	for _, f := range feedback {
		out[f.MessageId] = append(out[f.MessageId], f)
	}
	return out
}

func botName(b *entity.Bot) string {
	if b == nil {
		return "Unknown"
	}
	return b.Name
}

func clientName(b *entity.Bot) string {
	if b == nil || b.ClientName == "" {
		return "Unknown"
	}
	return b.ClientName
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func renderTxt(in Input) string {
	s := in.Session
	fbMap := feedbackByMessage(in.Feedback)

	var b strings.Builder
	fmt.Fprintf(&b, "TEST SESSION REPORT\n%s\n", strings.Repeat("=", 50))
	fmt.Fprintf(&b, "Bot: %s\n", botName(in.Bot))
	fmt.Fprintf(&b, "Client: %s\n", clientName(in.Bot))
	fmt.Fprintf(&b, "Session ID: %s\n", s.SessionToken)
	fmt.Fprintf(&b, "Status: %s\n", s.Status)
	fmt.Fprintf(&b, "Created: %s\n\n", formatTime(s.CreatedAt))
	fmt.Fprintf(&b, "CHAT HISTORY\n%s\n\n", strings.Repeat("-", 50))

	for _, m := range in.Messages {
		role := "BOT"
		if m.Role == entity.MessageRoleUser {
			role = "CLIENT"
		}
		fmt.Fprintf(&b, "[%s] (%s)\n%s\n", role, formatTime(m.CreatedAt), m.Content)
		if m.EditedContent != nil {
			fmt.Fprintf(&b, "  [EDITED] %s\n", *m.EditedContent)
		}
		for _, f := range fbMap[m.Id] {
			comment := "No comment"
			if f.Comment != nil && *f.Comment != "" {
				comment = *f.Comment
			}
			fmt.Fprintf(&b, "  [%s] %s\n", strings.ToUpper(string(f.Type)), comment)
		}
		b.WriteString("\n")
	}

	if in.Note != nil {
		fmt.Fprintf(&b, "SESSION NOTES\n%s\n%s\n\n", strings.Repeat("-", 50), in.Note.Content)
	}
	if s.AdminNotes != nil && *s.AdminNotes != "" {
		fmt.Fprintf(&b, "ADMIN NOTES\n%s\n%s\n\n", strings.Repeat("-", 50), *s.AdminNotes)
	}
	if s.ReviewComment != nil && *s.ReviewComment != "" {
		rating := 0
		if s.ReviewRating != nil {
			rating = *s.ReviewRating
		}
		fmt.Fprintf(&b, "REVIEW (Rating: %d/5)\n%s\n%s\n", rating, strings.Repeat("-", 50), *s.ReviewComment)
	}

	return b.String()
}

func renderMarkdown(in Input) string {
	s := in.Session
	fbMap := feedbackByMessage(in.Feedback)

	var b strings.Builder
	b.WriteString("# Test Session Report\n\n")
	fmt.Fprintf(&b, "**Bot:** %s\n", botName(in.Bot))
	fmt.Fprintf(&b, "**Client:** %s\n", clientName(in.Bot))
	fmt.Fprintf(&b, "**Session ID:** %s\n", s.SessionToken)
	fmt.Fprintf(&b, "**Status:** %s\n", s.Status)
	fmt.Fprintf(&b, "**Created:** %s\n\n", formatTime(s.CreatedAt))
	b.WriteString("## Chat History\n\n")

	for _, m := range in.Messages {
		role := "Bot"
		if m.Role == entity.MessageRoleUser {
			role = "Client"
		}
		fmt.Fprintf(&b, "### %s (%s)\n\n%s\n\n", role, formatTime(m.CreatedAt), m.Content)
		if m.EditedContent != nil {
			fmt.Fprintf(&b, "> **Edited Response:** %s\n\n", *m.EditedContent)
		}
		for _, f := range fbMap[m.Id] {
			label := "Negative"
			if f.Type == entity.FeedbackTypeLike {
				label = "Positive"
			}
			comment := "No comment"
			if f.Comment != nil && *f.Comment != "" {
				comment = *f.Comment
			}
			fmt.Fprintf(&b, "> **%s:** %s\n\n", label, comment)
		}
	}

	if in.Note != nil {
		fmt.Fprintf(&b, "## Session Notes\n\n%s\n\n", in.Note.Content)
	}
	if s.AdminNotes != nil && *s.AdminNotes != "" {
		fmt.Fprintf(&b, "## Admin Notes\n\n%s\n\n", *s.AdminNotes)
	}
	if s.ReviewComment != nil && *s.ReviewComment != "" {
		rating := 0
		if s.ReviewRating != nil {
			rating = *s.ReviewRating
		}
		fmt.Fprintf(&b, "## Review\n\n**Rating:** %d/5\n\n%s\n", rating, *s.ReviewComment)
	}

	return b.String()
}
