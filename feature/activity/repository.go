package activity

import (
	"context"
	"fmt"
	"strings"

	"imgbase/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Recorder receives the outcome of every storage operation made on behalf of a user.
type Recorder interface {
	Record(ctx context.Context, op storage.Operation, objects []string, result any)
}

// NopRecorder discards records. It is used when no database is configured.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, storage.Operation, []string, any) {}

// Repository persists activities with GORM.
type Repository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRepository creates a new activity repository.
func NewRepository(db *gorm.DB, logger *zap.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// Migrate creates or updates the activity table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&Activity{}); err != nil {
		return fmt.Errorf("failed to migrate activity table: %w", err)
	}
	return nil
}

// Record stores one activity. Failures are logged and never surface to the caller.
func (r *Repository) Record(ctx context.Context, op storage.Operation, objects []string, result any) {
	entry := Activity{
		Operation: string(op),
		Object:    strings.Join(objects, ","),
		Outcome:   OutcomeSuccess,
	}
	if f := storage.AsFailure(result); f != nil {
		entry.Outcome = OutcomeFailure
		entry.Kind = string(f.Kind)
		entry.Message = f.Message
	}

	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		r.logger.Warn("Failed to record activity", zap.String("op", string(op)), zap.Error(err))
	}
}

// Recent returns up to limit activities, newest first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]Activity, error) {
	limit = ClampLimit(limit)

	var entries []Activity
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}
	return entries, nil
}

// ClampLimit bounds a requested page size to (0, MaxLimit], defaulting to DefaultLimit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
