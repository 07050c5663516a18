// File: internal/file/repository.go
package file

import (
	"context"
	"errors"
	"time"

	"cadastro_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for file record operations.
type Repository interface {
	Create(ctx context.Context, f *File) error
	FindByID(ctx context.Context, id uuid.UUID) (*File, error)
	FindOrphans(ctx context.Context, olderThan time.Time) ([]File, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM file repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, f *File) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*File, error) {
	var f File
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindOrphans returns file records created before the cutoff that no user
// references as an avatar. The age cutoff keeps uploads that are still
// mid-registration from being reaped.
func (r *gormRepository) FindOrphans(ctx context.Context, olderThan time.Time) ([]File, error) {
	var orphans []File
	err := r.db.WithContext(ctx).
		Where("created_at < ?", olderThan).
		Where("id NOT IN (?)", r.db.Table("users").Select("avatar_id").Where("avatar_id IS NOT NULL")).
		Find(&orphans).Error
	if err != nil {
		return nil, err
	}
	return orphans, nil
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&File{}, "id = ?", id).Error
}
