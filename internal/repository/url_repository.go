package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/shortlyhq/shortly-backend/internal/models"
)

// URLRepository is the persistence layer for short links. Soft-delete
// filtering is decided per query: lookups feeding redirects and listings
// exclude deleted rows, while the existence checks used for collision
// avoidance deliberately include them, so a deleted code or alias is never
// handed out again.
type URLRepository struct {
	db *gorm.DB
}

func NewURLRepository(db *gorm.DB) *URLRepository {
	return &URLRepository{db: db}
}

func (r *URLRepository) Create(ctx context.Context, originalURL, shortCode string, customAlias *string, userID string) (*models.ShortLink, error) {
	link := &models.ShortLink{
		OriginalURL: originalURL,
		ShortCode:   shortCode,
		CustomAlias: customAlias,
		UserID:      &userID,
	}
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}

func (r *URLRepository) CreateAnonymous(ctx context.Context, originalURL, shortCode string) (*models.ShortLink, error) {
	link := &models.ShortLink{
		OriginalURL: originalURL,
		ShortCode:   shortCode,
	}
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}

// FindByID looks up a link regardless of soft-delete state; callers decide
// how a deleted record should surface (NotFound vs AlreadyDeleted).
func (r *URLRepository) FindByID(ctx context.Context, id string) (*models.ShortLink, error) {
	var link models.ShortLink
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *URLRepository) FindByShortCode(ctx context.Context, shortCode string) (*models.ShortLink, error) {
	var link models.ShortLink
	err := r.db.WithContext(ctx).Where("short_code = ?", shortCode).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *URLRepository) FindByCustomAlias(ctx context.Context, alias string) (*models.ShortLink, error) {
	var link models.ShortLink
	err := r.db.WithContext(ctx).Where("custom_alias = ?", alias).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// FindByCode resolves a public access code, matching either the short code or
// the custom alias. Soft-deleted links are invisible here.
func (r *URLRepository) FindByCode(ctx context.Context, code string) (*models.ShortLink, error) {
	var link models.ShortLink
	err := r.db.WithContext(ctx).
		Where("(short_code = ? OR custom_alias = ?) AND deleted_at IS NULL", code, code).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// FindByUserID returns the user's active links, newest first.
func (r *URLRepository) FindByUserID(ctx context.Context, userID string) ([]models.ShortLink, error) {
	var links []models.ShortLink
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("created_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// UpdateOriginalURL persists a new destination and bumps UpdatedAt.
func (r *URLRepository) UpdateOriginalURL(ctx context.Context, id, originalURL string) (*models.ShortLink, error) {
	err := r.db.WithContext(ctx).Model(&models.ShortLink{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"original_url": originalURL,
			"updated_at":   time.Now(),
		}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// SoftDelete marks the link deleted. The row, its code and its alias remain
// in place so neither can be claimed again.
func (r *URLRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&models.ShortLink{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at": now,
			"updated_at": now,
		}).Error
}

// IncrementAccessCount is a single atomic SQL increment; concurrent redirects
// on the same code never lose counts.
func (r *URLRepository) IncrementAccessCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.ShortLink{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"access_count": gorm.Expr("access_count + ?", 1),
			"updated_at":   time.Now(),
		}).Error
}

// ShortCodeExists ignores soft-delete: deleted codes stay frozen forever.
func (r *URLRepository) ShortCodeExists(ctx context.Context, shortCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ShortLink{}).
		Where("short_code = ?", shortCode).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CustomAliasExists ignores soft-delete for the same reason.
func (r *URLRepository) CustomAliasExists(ctx context.Context, alias string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ShortLink{}).
		Where("custom_alias = ?", alias).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
