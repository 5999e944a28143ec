package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tams-cso/tams-club-cal-sub001/internal/model"
	"github.com/tams-cso/tams-club-cal-sub001/internal/repository"
)

// ── mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) List(_ context.Context, role string, offset, limit int) ([]model.User, int64, error) {
	var result []model.User
	for _, u := range m.users {
		if role != "" && u.Role != role {
			continue
		}
		result = append(result, *u)
	}
	return result, int64(len(result)), nil
}

// ── mock ClubRepository ──

type mockClubRepo struct {
	clubs map[string]*model.Club
}

func newMockClubRepo() *mockClubRepo {
	return &mockClubRepo{clubs: make(map[string]*model.Club)}
}

func (m *mockClubRepo) Create(_ context.Context, club *model.Club) error {
	if club.ClubID == "" {
		club.ClubID = "club-" + club.Name
	}
	m.clubs[club.ClubID] = club
	return nil
}

func (m *mockClubRepo) GetByID(_ context.Context, id string) (*model.Club, error) {
	if c, ok := m.clubs[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClubRepo) GetByName(_ context.Context, name string) (*model.Club, error) {
	for _, c := range m.clubs {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClubRepo) Update(_ context.Context, club *model.Club) error {
	m.clubs[club.ClubID] = club
	return nil
}

func (m *mockClubRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.clubs, id)
	return nil
}

func (m *mockClubRepo) List(_ context.Context, advised *bool, search string, offset, limit int) ([]model.Club, int64, error) {
	var result []model.Club
	for _, c := range m.clubs {
		if advised != nil && c.Advised != *advised {
			continue
		}
		result = append(result, *c)
	}
	return result, int64(len(result)), nil
}

// ── mock ActivityRepository ──

var errMockQuery = errors.New("mock query failure")

type mockActivityRepo struct {
	activities map[string]*model.Activity
	nextID     int

	// failOverlap makes ListOverlapping fail, to exercise the paths where
	// availability cannot be determined.
	failOverlap bool
}

func newMockActivityRepo() *mockActivityRepo {
	return &mockActivityRepo{activities: make(map[string]*model.Activity)}
}

func (m *mockActivityRepo) Create(_ context.Context, act *model.Activity) error {
	if act.ActivityID == "" {
		m.nextID++
		act.ActivityID = fmt.Sprintf("act-%03d", m.nextID)
	}
	m.activities[act.ActivityID] = act
	return nil
}

func (m *mockActivityRepo) CreateBatch(ctx context.Context, acts []*model.Activity) error {
	for _, act := range acts {
		if err := m.Create(ctx, act); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockActivityRepo) GetByID(_ context.Context, id string) (*model.Activity, error) {
	if a, ok := m.activities[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockActivityRepo) Update(_ context.Context, act *model.Activity) error {
	m.activities[act.ActivityID] = act
	return nil
}

func (m *mockActivityRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.activities, id)
	return nil
}

func (m *mockActivityRepo) DeleteGroup(_ context.Context, groupID string, _ string) error {
	for id, a := range m.activities {
		if a.RepeatingGroupID != nil && *a.RepeatingGroupID == groupID {
			delete(m.activities, id)
		}
	}
	return nil
}

func (m *mockActivityRepo) List(_ context.Context, f repository.ActivityFilter, offset, limit int) ([]model.Activity, int64, error) {
	var result []model.Activity
	for _, a := range m.activities {
		if f.ClubName != "" && a.ClubName != f.ClubName {
			continue
		}
		if f.Location != "" && a.Location != f.Location {
			continue
		}
		if f.ReservationOnly && !a.IsReservation {
			continue
		}
		result = append(result, *a)
	}
	return result, int64(len(result)), nil
}

func (m *mockActivityRepo) ListInRange(_ context.Context, fromMs, toMs int64, publicOnly bool) ([]model.Activity, error) {
	var result []model.Activity
	for _, a := range m.activities {
		if publicOnly && !a.IsPublic {
			continue
		}
		if a.StartMs < toMs && a.EndMs > fromMs {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockActivityRepo) ListOverlapping(_ context.Context, location string, startMs, endMs int64, excludeID string) ([]model.Activity, error) {
	if m.failOverlap {
		return nil, errMockQuery
	}
	var result []model.Activity
	for _, a := range m.activities {
		if !a.IsReservation || a.Location != location {
			continue
		}
		if a.ActivityID == excludeID {
			continue
		}
		if a.StartMs < endMs && a.EndMs > startMs {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockActivityRepo) ListReservationsInRange(_ context.Context, fromMs, toMs int64) ([]model.Activity, error) {
	var result []model.Activity
	for _, a := range m.activities {
		if a.IsReservation && a.StartMs < toMs && a.EndMs > fromMs {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockActivityRepo) ListRoomReservationsInRange(_ context.Context, room string, fromMs, toMs int64) ([]model.Activity, error) {
	var result []model.Activity
	for _, a := range m.activities {
		if a.IsReservation && a.Location == room && a.StartMs < toMs && a.EndMs > fromMs {
			result = append(result, *a)
		}
	}
	return result, nil
}
