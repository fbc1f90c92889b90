package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/svce/hostel-management/internal/repository"
)

// ReportHandler produces the occupancy and payment reports.
type ReportHandler struct {
	Rooms *repository.RoomRepo
}

func NewReportHandler(r *repository.RoomRepo) *ReportHandler {
	return &ReportHandler{Rooms: r}
}

// occupancyRow is one entry of the occupancy report.
type occupancyRow struct {
	RoomNumber       string  `json:"room_number"`
	Capacity         int     `json:"capacity"`
	CurrentOccupancy int     `json:"current_occupancy"`
	OccupancyRate    float64 `json:"occupancy_rate"`
}

// Occupancy handles GET /api/reports/occupancy.  The rate is a percentage;
// a room with zero capacity reports 0 instead of dividing by zero.
func (h *ReportHandler) Occupancy(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	out := make([]occupancyRow, 0, len(rooms))
	for _, rm := range rooms {
		row := occupancyRow{
			RoomNumber:       rm.RoomNumber,
			Capacity:         rm.Capacity,
			CurrentOccupancy: rm.CurrentOccupancy,
		}
		if rm.Capacity > 0 {
			row.OccupancyRate = float64(rm.CurrentOccupancy) / float64(rm.Capacity) * 100
		}
		out = append(out, row)
	}
	return c.JSON(http.StatusOK, out)
}

// Payments handles GET /api/reports/payments.  The aggregation has never
// been implemented; the endpoint returns an empty summary so the frontend's
// report page renders.
func (h *ReportHandler) Payments(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"payments":     []repository.Payment{},
		"total_amount": 0,
	})
}
