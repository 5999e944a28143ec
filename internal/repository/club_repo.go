package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tams-cso/tams-club-cal-sub001/internal/model"
)

// ClubRepository is the club directory data access interface.
type ClubRepository interface {
	Create(ctx context.Context, club *model.Club) error
	GetByID(ctx context.Context, id string) (*model.Club, error)
	GetByName(ctx context.Context, name string) (*model.Club, error)
	Update(ctx context.Context, club *model.Club) error
	Delete(ctx context.Context, id string, deletedBy string) error
	List(ctx context.Context, advised *bool, search string, offset, limit int) ([]model.Club, int64, error)
}

type clubRepo struct {
	db *gorm.DB
}

// NewClubRepo creates the GORM-backed ClubRepository.
func NewClubRepo(db *gorm.DB) ClubRepository {
	return &clubRepo{db: db}
}

func (r *clubRepo) Create(ctx context.Context, club *model.Club) error {
	return r.db.WithContext(ctx).Create(club).Error
}

func (r *clubRepo) GetByID(ctx context.Context, id string) (*model.Club, error) {
	var club model.Club
	err := r.db.WithContext(ctx).Where("club_id = ?", id).First(&club).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *clubRepo) GetByName(ctx context.Context, name string) (*model.Club, error) {
	var club model.Club
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&club).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *clubRepo) Update(ctx context.Context, club *model.Club) error {
	return r.db.WithContext(ctx).Save(club).Error
}

func (r *clubRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Club{}).
		Where("club_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *clubRepo) List(ctx context.Context, advised *bool, search string, offset, limit int) ([]model.Club, int64, error) {
	var clubs []model.Club
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Club{})
	if advised != nil {
		db = db.Where("advised = ?", *advised)
	}
	if search != "" {
		db = db.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("name ASC").Offset(offset).Limit(limit).Find(&clubs).Error
	return clubs, total, err
}
