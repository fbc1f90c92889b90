package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/svce/hostel-management/internal/repository"
)

// RoomHandler exposes the room inventory endpoints.
type RoomHandler struct {
	Rooms *repository.RoomRepo
}

func NewRoomHandler(r *repository.RoomRepo) *RoomHandler {
	return &RoomHandler{Rooms: r}
}

// List handles GET /api/rooms and returns every room row.
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, rooms)
}

// Create handles POST /api/rooms.  It validates field presence, coerces the
// numeric fields, enforces positive capacity and price, and rejects
// duplicate room numbers.  New rooms start empty with status "available".
func (h *RoomHandler) Create(c echo.Context) error {
	var data map[string]any
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if f := missingField(data, "room_number", "capacity", "room_type", "price_per_month"); f != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing required field: " + f})
	}

	capacity, err := asInt(data["capacity"])
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid numeric value: " + err.Error()})
	}
	price, err := asNumber(data["price_per_month"])
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid numeric value: " + err.Error()})
	}
	if capacity <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Capacity must be greater than 0"})
	}
	if price <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Price must be greater than 0"})
	}

	room := repository.Room{
		RoomNumber:    asString(data["room_number"]),
		Capacity:      int(capacity),
		RoomType:      asString(data["room_type"]),
		PricePerMonth: price,
	}
	if err := h.Rooms.Create(c.Request().Context(), &room); err != nil {
		if errors.Is(err, repository.ErrRoomNumberExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Room number already exists"})
		}
		log.Printf("create room failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Room created successfully", "room": room})
}
