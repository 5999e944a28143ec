package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tams-cso/tams-club-cal-sub001/internal/dto"
	"github.com/tams-cso/tams-club-cal-sub001/internal/service"
	"github.com/tams-cso/tams-club-cal-sub001/pkg/response"
)

// ExportHandler serves spreadsheet downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportRoomMonth downloads one room's monthly reservation sheet.
// GET /api/v1/export/reservations?room=room-a&year=2024&month=6
func (h *ExportHandler) ExportRoomMonth(c *gin.Context) {
	var req dto.RoomMonthRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	buf, filename, err := h.exportSvc.ExportRoomMonth(c.Request.Context(), req.Room, req.Year, time.Month(req.Month))
	if err != nil {
		if errors.Is(err, service.ErrExportNoReservations) {
			response.NotFound(c, 15001, "no reservations in that month")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
