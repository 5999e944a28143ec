package service

import (
	"go.uber.org/zap"

	"github.com/tams-cso/tams-club-cal-sub001/config"
	"github.com/tams-cso/tams-club-cal-sub001/internal/repository"
	"github.com/tams-cso/tams-club-cal-sub001/internal/schedule"
	"github.com/tams-cso/tams-club-cal-sub001/pkg/jwt"
	"github.com/tams-cso/tams-club-cal-sub001/pkg/redis"
)

// Service aggregates every business service.
type Service struct {
	Auth     AuthService
	User     UserService
	Club     ClubService
	Activity ActivityService
	Calendar CalendarService
	ICS      ICSService
	Export   ExportService
}

// NewService wires the service implementations. The clock carries the civil
// timezone every calendar grid is rendered in.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	clock schedule.Clock,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:     NewUserService(repo, logger),
		Club:     NewClubService(repo, logger),
		Activity: NewActivityService(cfg, repo, clock, logger),
		Calendar: NewCalendarService(cfg, repo, clock, logger),
		ICS:      NewICSService(cfg, repo, clock, logger),
		Export:   NewExportService(cfg, repo, clock, logger),
	}
}
