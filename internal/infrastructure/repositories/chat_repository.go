package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
)

// ChatRepositoryImpl implements domain.ChatRepository using GORM
type ChatRepositoryImpl struct {
	db *gorm.DB
}

// DBChat represents one conversation session; (user_id, session_id) is
// unique so a session appends into a single record.
type DBChat struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex:idx_chats_user_session"`
	SessionID string `gorm:"uniqueIndex:idx_chats_user_session;size:128"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DBChat) TableName() string { return "chats" }

// DBChatMessage is a single message inside a chat
type DBChatMessage struct {
	ID        uint   `gorm:"primaryKey"`
	ChatID    uint   `gorm:"index"`
	Role      string `gorm:"size:16"`
	Content   string
	Timestamp time.Time
}

func (DBChatMessage) TableName() string { return "chat_messages" }

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) domain.ChatRepository {
	return &ChatRepositoryImpl{db: db}
}

// Append implements domain.ChatRepository. The chat record is created on
// first use of a session.
func (r *ChatRepositoryImpl) Append(ctx context.Context, userID uint, sessionID string, messages []domain.ChatMessage) (*domain.Chat, error) {
	var chat DBChat
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		First(&chat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		chat = DBChat{UserID: userID, SessionID: sessionID}
		if err := r.db.WithContext(ctx).Create(&chat).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, m := range messages {
		ts := m.Timestamp
		if ts.IsZero() {
			ts = now
		}
		dbMsg := DBChatMessage{
			ChatID:    chat.ID,
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: ts,
		}
		if err := r.db.WithContext(ctx).Create(&dbMsg).Error; err != nil {
			return nil, err
		}
	}

	if err := r.db.WithContext(ctx).Model(&DBChat{}).Where("id = ?", chat.ID).Update("updated_at", now).Error; err != nil {
		return nil, err
	}

	return r.FindBySession(ctx, userID, sessionID)
}

// FindBySession implements domain.ChatRepository
func (r *ChatRepositoryImpl) FindBySession(ctx context.Context, userID uint, sessionID string) (*domain.Chat, error) {
	var chat DBChat
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		First(&chat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrChatNotFound
		}
		return nil, err
	}

	var dbMessages []DBChatMessage
	if err := r.db.WithContext(ctx).
		Where("chat_id = ?", chat.ID).
		Order("timestamp ASC, id ASC").
		Find(&dbMessages).Error; err != nil {
		return nil, err
	}

	messages := make([]domain.ChatMessage, 0, len(dbMessages))
	for _, m := range dbMessages {
		messages = append(messages, domain.ChatMessage{
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}

	return &domain.Chat{
		ID:        chat.ID,
		UserID:    chat.UserID,
		SessionID: chat.SessionID,
		Messages:  messages,
		CreatedAt: chat.CreatedAt,
		UpdatedAt: chat.UpdatedAt,
	}, nil
}

// ListSessions implements domain.ChatRepository, newest first
func (r *ChatRepositoryImpl) ListSessions(ctx context.Context, userID uint, limit int) ([]domain.ChatSessionSummary, error) {
	var chats []DBChat
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&chats).Error; err != nil {
		return nil, err
	}

	summaries := make([]domain.ChatSessionSummary, 0, len(chats))
	for _, chat := range chats {
		var count int64
		if err := r.db.WithContext(ctx).Model(&DBChatMessage{}).Where("chat_id = ?", chat.ID).Count(&count).Error; err != nil {
			return nil, err
		}

		var last DBChatMessage
		lastMessage := ""
		err := r.db.WithContext(ctx).
			Where("chat_id = ?", chat.ID).
			Order("timestamp DESC, id DESC").
			First(&last).Error
		if err == nil {
			lastMessage = last.Content
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		summaries = append(summaries, domain.ChatSessionSummary{
			SessionID:    chat.SessionID,
			MessageCount: int(count),
			LastMessage:  lastMessage,
			CreatedAt:    chat.CreatedAt,
			UpdatedAt:    chat.UpdatedAt,
		})
	}

	return summaries, nil
}

// DeleteSession implements domain.ChatRepository
func (r *ChatRepositoryImpl) DeleteSession(ctx context.Context, userID uint, sessionID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var chat DBChat
		err := tx.Where("user_id = ? AND session_id = ?", userID, sessionID).First(&chat).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrChatNotFound
			}
			return err
		}

		if err := tx.Where("chat_id = ?", chat.ID).Delete(&DBChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&chat).Error
	})
}
