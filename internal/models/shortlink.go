package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShortLink is the persisted short-URL record. DeletedAt is a plain nullable
// column rather than gorm.DeletedAt: the repository needs per-query control
// over soft-delete filtering (existence checks must still see deleted rows so
// their codes stay frozen, while redirect lookups must not).
type ShortLink struct {
	ID          string     `gorm:"primaryKey;type:text" json:"id"`
	OriginalURL string     `gorm:"not null" json:"originalUrl"`
	ShortCode   string     `gorm:"uniqueIndex;not null" json:"shortCode"`
	CustomAlias *string    `gorm:"uniqueIndex" json:"customAlias"`
	UserID      *string    `gorm:"index" json:"userId"`
	AccessCount int64      `gorm:"default:0" json:"accessCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `gorm:"index" json:"deletedAt"`
}

func (l *ShortLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

func (l *ShortLink) IsDeleted() bool {
	return l.DeletedAt != nil
}

func (l *ShortLink) IsAnonymous() bool {
	return l.UserID == nil
}

func (l *ShortLink) BelongsTo(userID string) bool {
	return l.UserID != nil && *l.UserID == userID
}

// AccessCode returns the code the link is reached by: the custom alias when
// present, otherwise the generated short code.
func (l *ShortLink) AccessCode() string {
	if l.CustomAlias != nil && *l.CustomAlias != "" {
		return *l.CustomAlias
	}
	return l.ShortCode
}
