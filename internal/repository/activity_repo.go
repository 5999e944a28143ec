package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tams-cso/tams-club-cal-sub001/internal/model"
)

// ActivityFilter narrows the paged activity listing.
type ActivityFilter struct {
	ClubName        string
	Location        string
	ReservationOnly bool
	FromMs          int64
	ToMs            int64
}

// ActivityRepository is the activity data access interface.
type ActivityRepository interface {
	Create(ctx context.Context, act *model.Activity) error
	CreateBatch(ctx context.Context, acts []*model.Activity) error
	GetByID(ctx context.Context, id string) (*model.Activity, error)
	Update(ctx context.Context, act *model.Activity) error
	Delete(ctx context.Context, id string, deletedBy string) error
	DeleteGroup(ctx context.Context, groupID string, deletedBy string) error
	List(ctx context.Context, f ActivityFilter, offset, limit int) ([]model.Activity, int64, error)
	ListInRange(ctx context.Context, fromMs, toMs int64, publicOnly bool) ([]model.Activity, error)
	ListOverlapping(ctx context.Context, location string, startMs, endMs int64, excludeID string) ([]model.Activity, error)
	ListReservationsInRange(ctx context.Context, fromMs, toMs int64) ([]model.Activity, error)
	ListRoomReservationsInRange(ctx context.Context, room string, fromMs, toMs int64) ([]model.Activity, error)
}

type activityRepo struct {
	db *gorm.DB
}

// NewActivityRepo creates the GORM-backed ActivityRepository.
func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Create(ctx context.Context, act *model.Activity) error {
	return r.db.WithContext(ctx).Create(act).Error
}

// CreateBatch inserts a weekly series in one transaction so a failure leaves
// no partial series behind.
func (r *activityRepo) CreateBatch(ctx context.Context, acts []*model.Activity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, act := range acts {
			if err := tx.Create(act).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *activityRepo) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	var act model.Activity
	err := r.db.WithContext(ctx).Where("activity_id = ?", id).First(&act).Error
	if err != nil {
		return nil, err
	}
	return &act, nil
}

func (r *activityRepo) Update(ctx context.Context, act *model.Activity) error {
	return r.db.WithContext(ctx).Save(act).Error
}

func (r *activityRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Activity{}).
		Where("activity_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *activityRepo) DeleteGroup(ctx context.Context, groupID string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Activity{}).
		Where("repeating_group_id = ?", groupID).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *activityRepo) List(ctx context.Context, f ActivityFilter, offset, limit int) ([]model.Activity, int64, error) {
	var acts []model.Activity
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Activity{})
	if f.ClubName != "" {
		db = db.Where("club_name = ?", f.ClubName)
	}
	if f.Location != "" {
		db = db.Where("location = ?", f.Location)
	}
	if f.ReservationOnly {
		db = db.Where("is_reservation = TRUE")
	}
	if f.FromMs != 0 || f.ToMs != 0 {
		db = db.Where("start_ms < ? AND end_ms > ?", f.ToMs, f.FromMs)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("start_ms ASC").Offset(offset).Limit(limit).Find(&acts).Error
	return acts, total, err
}

// ListInRange returns activities overlapping [fromMs, toMs).
func (r *activityRepo) ListInRange(ctx context.Context, fromMs, toMs int64, publicOnly bool) ([]model.Activity, error) {
	var acts []model.Activity
	db := r.db.WithContext(ctx).
		Where("start_ms < ? AND end_ms > ?", toMs, fromMs)
	if publicOnly {
		db = db.Where("is_public = TRUE")
	}
	err := db.Order("start_ms ASC").Find(&acts).Error
	return acts, err
}

// ListOverlapping returns reservations in the room whose interval strictly
// overlaps [startMs, endMs). Touching endpoints do not overlap.
func (r *activityRepo) ListOverlapping(ctx context.Context, location string, startMs, endMs int64, excludeID string) ([]model.Activity, error) {
	var acts []model.Activity
	db := r.db.WithContext(ctx).
		Where("location = ? AND is_reservation = TRUE", location).
		Where("start_ms < ? AND end_ms > ?", endMs, startMs)
	if excludeID != "" {
		db = db.Where("activity_id <> ?", excludeID)
	}
	err := db.Order("start_ms ASC").Find(&acts).Error
	return acts, err
}

func (r *activityRepo) ListReservationsInRange(ctx context.Context, fromMs, toMs int64) ([]model.Activity, error) {
	var acts []model.Activity
	err := r.db.WithContext(ctx).
		Where("is_reservation = TRUE").
		Where("start_ms < ? AND end_ms > ?", toMs, fromMs).
		Order("start_ms ASC").
		Find(&acts).Error
	return acts, err
}

func (r *activityRepo) ListRoomReservationsInRange(ctx context.Context, room string, fromMs, toMs int64) ([]model.Activity, error) {
	var acts []model.Activity
	err := r.db.WithContext(ctx).
		Where("location = ? AND is_reservation = TRUE", room).
		Where("start_ms < ? AND end_ms > ?", toMs, fromMs).
		Order("start_ms ASC").
		Find(&acts).Error
	return acts, err
}
