package profileRepo

import (
	"context"
	"errors"

	"github.com/DevBaweja/dating-app-backend/internal/entity"
	"gorm.io/gorm"
)

type IProfileRepo interface {
	CreateProfile(ctx context.Context, profile *entity.Profile) (*entity.Profile, error)
	GetProfileByID(ctx context.Context, id uint) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, profile *entity.Profile) error
	DeleteProfile(ctx context.Context, id uint) error

	// GetActiveProfiles lists active profiles newest first, excluding the
	// caller's own profile when excludeID is non-zero.
	GetActiveProfiles(ctx context.Context, excludeID uint) ([]entity.Profile, error)

	// ReplaceAll wipes the profile table and inserts the given fixture
	// set. Seed endpoint only.
	ReplaceAll(ctx context.Context, profiles []entity.Profile) ([]entity.Profile, error)
}

type ProfileRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IProfileRepo {
	return &ProfileRepo{
		db: db,
	}
}

func (r *ProfileRepo) CreateProfile(ctx context.Context, profile *entity.Profile) (*entity.Profile, error) {
	result := r.db.WithContext(ctx).Create(profile)
	return profile, result.Error
}

func (r *ProfileRepo) GetProfileByID(ctx context.Context, id uint) (*entity.Profile, error) {
	var profile entity.Profile
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&profile)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	return &profile, result.Error
}

func (r *ProfileRepo) UpdateProfile(ctx context.Context, profile *entity.Profile) error {
	result := r.db.WithContext(ctx).Save(profile)
	return result.Error
}

func (r *ProfileRepo) DeleteProfile(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Profile{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *ProfileRepo) GetActiveProfiles(ctx context.Context, excludeID uint) ([]entity.Profile, error) {
	var profiles []entity.Profile
	query := r.db.WithContext(ctx).
		Model(&entity.Profile{}).
		Where("is_active = ?", true).
		Order("created_at DESC")

	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	result := query.Find(&profiles)
	return profiles, result.Error
}

func (r *ProfileRepo) ReplaceAll(ctx context.Context, profiles []entity.Profile) ([]entity.Profile, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.Profile{}).Error; err != nil {
			return err
		}
		return tx.Create(&profiles).Error
	})
	return profiles, err
}
