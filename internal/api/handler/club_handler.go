package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tams-cso/tams-club-cal-sub001/internal/dto"
	"github.com/tams-cso/tams-club-cal-sub001/internal/service"
	"github.com/tams-cso/tams-club-cal-sub001/pkg/response"
)

// ClubHandler serves the club directory endpoints.
type ClubHandler struct {
	clubSvc service.ClubService
}

// NewClubHandler creates the ClubHandler.
func NewClubHandler(clubSvc service.ClubService) *ClubHandler {
	return &ClubHandler{clubSvc: clubSvc}
}

// ListClubs lists the directory with paging.
// GET /api/v1/clubs
func (h *ClubHandler) ListClubs(c *gin.Context) {
	var req dto.ClubListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	clubs, total, err := h.clubSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, clubs, total, req.GetPage(), req.GetPageSize())
}

// GetClub returns one club.
// GET /api/v1/clubs/:id
func (h *ClubHandler) GetClub(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "club id required")
		return
	}

	club, err := h.clubSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleClubError(c, err)
		return
	}

	response.OK(c, club)
}

// CreateClub registers a club.
// POST /api/v1/clubs
func (h *ClubHandler) CreateClub(c *gin.Context) {
	var req dto.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	club, err := h.clubSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleClubError(c, err)
		return
	}

	response.Created(c, club)
}

// UpdateClub edits a club.
// PUT /api/v1/clubs/:id
func (h *ClubHandler) UpdateClub(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "club id required")
		return
	}

	var req dto.UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	club, err := h.clubSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleClubError(c, err)
		return
	}

	response.OK(c, club)
}

// DeleteClub removes a club from the directory.
// DELETE /api/v1/clubs/:id
func (h *ClubHandler) DeleteClub(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "club id required")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.clubSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleClubError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ClubHandler) handleClubError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClubNotFound):
		response.NotFound(c, 12001, "club not found")
	case errors.Is(err, service.ErrClubNameTaken):
		response.Conflict(c, 12002, "club name already in use")
	default:
		response.InternalError(c)
	}
}
