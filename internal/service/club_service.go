package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tams-cso/tams-club-cal-sub001/internal/dto"
	"github.com/tams-cso/tams-club-cal-sub001/internal/model"
	"github.com/tams-cso/tams-club-cal-sub001/internal/repository"
)

var (
	ErrClubNotFound  = errors.New("club not found")
	ErrClubNameTaken = errors.New("club name already in use")
)

// ClubService is the club directory business interface.
type ClubService interface {
	Create(ctx context.Context, req *dto.CreateClubRequest, callerID string) (*model.Club, error)
	GetByID(ctx context.Context, id string) (*model.Club, error)
	Update(ctx context.Context, id string, req *dto.UpdateClubRequest, callerID string) (*model.Club, error)
	Delete(ctx context.Context, id string, callerID string) error
	List(ctx context.Context, req *dto.ClubListRequest) ([]model.Club, int64, error)
}

type clubService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClubService creates the ClubService.
func NewClubService(repo *repository.Repository, logger *zap.Logger) ClubService {
	return &clubService{repo: repo, logger: logger}
}

func (s *clubService) Create(ctx context.Context, req *dto.CreateClubRequest, callerID string) (*model.Club, error) {
	if _, err := s.repo.Club.GetByName(ctx, req.Name); err == nil {
		return nil, ErrClubNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("look up club name failed", zap.Error(err))
		return nil, err
	}

	advised := true
	if req.Advised != nil {
		advised = *req.Advised
	}
	club := &model.Club{
		Name:        req.Name,
		Advised:     advised,
		Description: req.Description,
		CoverImg:    req.CoverImg,
	}
	club.CreatedBy = &callerID

	if err := s.repo.Club.Create(ctx, club); err != nil {
		s.logger.Error("create club failed", zap.Error(err))
		return nil, err
	}
	return club, nil
}

func (s *clubService) GetByID(ctx context.Context, id string) (*model.Club, error) {
	club, err := s.repo.Club.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		s.logger.Error("look up club failed", zap.Error(err))
		return nil, err
	}
	return club, nil
}

func (s *clubService) Update(ctx context.Context, id string, req *dto.UpdateClubRequest, callerID string) (*model.Club, error) {
	club, err := s.repo.Club.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		s.logger.Error("look up club failed", zap.Error(err))
		return nil, err
	}

	if req.Name != nil && *req.Name != club.Name {
		if _, err := s.repo.Club.GetByName(ctx, *req.Name); err == nil {
			return nil, ErrClubNameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("look up club name failed", zap.Error(err))
			return nil, err
		}
		club.Name = *req.Name
	}
	if req.Advised != nil {
		club.Advised = *req.Advised
	}
	if req.Description != nil {
		club.Description = *req.Description
	}
	if req.CoverImg != nil {
		club.CoverImg = *req.CoverImg
	}
	club.UpdatedBy = &callerID

	if err := s.repo.Club.Update(ctx, club); err != nil {
		s.logger.Error("update club failed", zap.Error(err))
		return nil, err
	}
	return club, nil
}

func (s *clubService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Club.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClubNotFound
		}
		s.logger.Error("look up club failed", zap.Error(err))
		return err
	}
	if err := s.repo.Club.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("delete club failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *clubService) List(ctx context.Context, req *dto.ClubListRequest) ([]model.Club, int64, error) {
	clubs, total, err := s.repo.Club.List(ctx, req.Advised, req.Search, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list clubs failed", zap.Error(err))
		return nil, 0, err
	}
	return clubs, total, nil
}
