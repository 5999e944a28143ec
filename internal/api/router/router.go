package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tams-cso/tams-club-cal-sub001/config"
	"github.com/tams-cso/tams-club-cal-sub001/internal/api/handler"
	"github.com/tams-cso/tams-club-cal-sub001/internal/api/middleware"
	"github.com/tams-cso/tams-club-cal-sub001/pkg/jwt"
	"github.com/tams-cso/tams-club-cal-sub001/pkg/redis"
	"github.com/tams-cso/tams-club-cal-sub001/pkg/response"
)

const maxBodyBytes = 1 << 20 // 1MB

// Setup builds the Gin engine with the full route table.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth (no token required)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 20, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// public calendar: browsing needs no account
		calendar := v1.Group("/calendar")
		{
			calendar.GET("/month", h.Calendar.MonthView)
			calendar.GET("/reservations/week", h.Calendar.WeekReservations)
			calendar.GET("/reservations/room", h.Calendar.RoomMonthReservations)
			calendar.GET("/rooms", h.Calendar.ListRooms)
			calendar.GET("/feed.ics", h.Calendar.PublicFeed)
		}

		// public club directory (read side)
		v1.GET("/clubs", h.Club.ListClubs)
		v1.GET("/clubs/:id", h.Club.GetClub)

		// public activity reads
		v1.GET("/activities", h.Activity.ListActivities)
		v1.GET("/activities/:id", h.Activity.GetActivity)

		// authenticated routes
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			// users
			users := authorized.Group("/users")
			{
				users.GET("", middleware.RoleAuth("admin"), h.User.ListUsers)
				users.GET("/:id", middleware.RoleAuth("admin"), h.User.GetUser)
				users.PUT("/:id", h.User.UpdateUser) // admin or self (checked in the service)
				users.DELETE("/:id", middleware.RoleAuth("admin"), h.User.DeleteUser)
				users.PUT("/:id/role", middleware.RoleAuth("admin"), h.User.AssignRole)
			}

			// clubs (write side)
			clubs := authorized.Group("/clubs")
			{
				clubs.POST("", middleware.RoleAuth("admin", "editor"), h.Club.CreateClub)
				clubs.PUT("/:id", middleware.RoleAuth("admin", "editor"), h.Club.UpdateClub)
				clubs.DELETE("/:id", middleware.RoleAuth("admin"), h.Club.DeleteClub)
			}

			// activities (write side)
			activities := authorized.Group("/activities")
			{
				activities.POST("", h.Activity.CreateActivity)
				activities.POST("/check-conflict", h.Activity.CheckConflict)
				activities.PUT("/:id", h.Activity.UpdateActivity)
				activities.DELETE("/:id", h.Activity.DeleteActivity)
			}
			authorized.DELETE("/activity-series/:groupId", h.Activity.DeleteSeries)

			// exports
			export := authorized.Group("/export")
			{
				export.GET("/reservations", middleware.RoleAuth("admin", "editor"), h.Export.ExportRoomMonth)
			}
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, 10404, "route not found")
	})

	return r
}
