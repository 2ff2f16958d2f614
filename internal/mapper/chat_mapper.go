package mapper

import (
	"encoding/json"

	"octobot-be/internal/entity"
	"octobot-be/internal/model"

	"gorm.io/datatypes"
)

// ChatMapper covers the conversation aggregates: sessions, messages,
// feedback and session notes.
type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) SessionToEntity(s *model.TestSession) *entity.TestSession {
	if s == nil {
		return nil
	}
	return &entity.TestSession{
		Id:                   s.Id,
		SessionToken:         s.SessionToken,
		BotId:                s.BotId,
		ClientTesterId:       s.ClientTesterId,
		Status:               entity.SessionStatus(s.Status),
		AdminNotes:           s.AdminNotes,
		ReviewSubmitted:      s.ReviewSubmitted,
		ReviewRating:         s.ReviewRating,
		ReviewComment:        s.ReviewComment,
		AssignedTeamMemberId: s.AssignedTeamMemberId,
		CreatedByRefresh:     s.CreatedByRefresh,
		LastSeenAt:           s.LastSeenAt,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            updatedAtPtr(s.UpdatedAt),
	}
}

func (m *ChatMapper) SessionToModel(s *entity.TestSession) *model.TestSession {
	if s == nil {
		return nil
	}
	return &model.TestSession{
		Id:                   s.Id,
		SessionToken:         s.SessionToken,
		BotId:                s.BotId,
		ClientTesterId:       s.ClientTesterId,
		Status:               string(s.Status),
		AdminNotes:           s.AdminNotes,
		ReviewSubmitted:      s.ReviewSubmitted,
		ReviewRating:         s.ReviewRating,
		ReviewComment:        s.ReviewComment,
		AssignedTeamMemberId: s.AssignedTeamMemberId,
		CreatedByRefresh:     s.CreatedByRefresh,
		LastSeenAt:           s.LastSeenAt,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            derefTime(s.UpdatedAt),
	}
}

func (m *ChatMapper) SessionsToEntities(sessions []*model.TestSession) []*entity.TestSession {
	entities := make([]*entity.TestSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.SessionToEntity(s)
	}
	return entities
}

func (m *ChatMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	var meta *entity.RelayMeta
	if len(msg.Meta) > 0 {
		var decoded entity.RelayMeta
		if err := json.Unmarshal(msg.Meta, &decoded); err == nil {
			meta = &decoded
		}
	}
	return &entity.Message{
		Id:            msg.Id,
		SessionId:     msg.SessionId,
		Role:          entity.MessageRole(msg.Role),
		Content:       msg.Content,
		EditedContent: msg.EditedContent,
		Meta:          meta,
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	var meta datatypes.JSON
	if msg.Meta != nil {
		if raw, err := json.Marshal(msg.Meta); err == nil {
			meta = raw
		}
	}
	return &model.Message{
		Id:            msg.Id,
		SessionId:     msg.SessionId,
		Role:          string(msg.Role),
		Content:       msg.Content,
		EditedContent: msg.EditedContent,
		Meta:          meta,
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToEntities(msgs []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}

func (m *ChatMapper) FeedbackToEntity(f *model.MessageFeedback) *entity.MessageFeedback {
	if f == nil {
		return nil
	}
	return &entity.MessageFeedback{
		Id:        f.Id,
		MessageId: f.MessageId,
		SessionId: f.SessionId,
		Type:      entity.FeedbackType(f.FeedbackType),
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}

func (m *ChatMapper) FeedbackToModel(f *entity.MessageFeedback) *model.MessageFeedback {
	if f == nil {
		return nil
	}
	return &model.MessageFeedback{
		Id:           f.Id,
		MessageId:    f.MessageId,
		SessionId:    f.SessionId,
		FeedbackType: string(f.Type),
		Comment:      f.Comment,
		CreatedAt:    f.CreatedAt,
	}
}

func (m *ChatMapper) FeedbackToEntities(fbs []*model.MessageFeedback) []*entity.MessageFeedback {
	entities := make([]*entity.MessageFeedback, len(fbs))
	for i, f := range fbs {
		entities[i] = m.FeedbackToEntity(f)
	}
	return entities
}

func (m *ChatMapper) SessionNoteToEntity(n *model.SessionNote) *entity.SessionNote {
	if n == nil {
		return nil
	}
	return &entity.SessionNote{
		Id:        n.Id,
		SessionId: n.SessionId,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: updatedAtPtr(n.UpdatedAt),
	}
}

func (m *ChatMapper) SessionNoteToModel(n *entity.SessionNote) *model.SessionNote {
	if n == nil {
		return nil
	}
	return &model.SessionNote{
		Id:        n.Id,
		SessionId: n.SessionId,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: derefTime(n.UpdatedAt),
	}
}
