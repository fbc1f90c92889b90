package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/svce/hostel-management/internal/repository"
)

// MemberHandler exposes the member (tenant) endpoints.
type MemberHandler struct {
	Members *repository.MemberRepo
}

func NewMemberHandler(m *repository.MemberRepo) *MemberHandler {
	return &MemberHandler{Members: m}
}

// List handles GET /api/members.  Members are joined with their room
// number; a member whose room no longer resolves appears with a null
// room_number rather than being hidden.
func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.Members.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, members)
}

// Create handles POST /api/members.  The referenced room must exist and
// have free capacity; on success the room's occupancy goes up by one in
// the same transaction as the insert.
func (h *MemberHandler) Create(c echo.Context) error {
	var data map[string]any
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if f := missingField(data, "name", "email", "phone", "room_id"); f != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing required field: " + f})
	}
	roomID, err := asInt(data["room_id"])
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid numeric value: " + err.Error()})
	}

	member := repository.Member{
		Name:             asString(data["name"]),
		Email:            asString(data["email"]),
		Phone:            asString(data["phone"]),
		RoomID:           roomID,
		EmergencyContact: asString(data["emergency_contact"]),
	}
	if err := h.Members.Create(c.Request().Context(), &member); err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomFull):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Room is full"})
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Room not found"})
		}
		log.Printf("create member failed: %v", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error: " + err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Member added successfully"})
}
