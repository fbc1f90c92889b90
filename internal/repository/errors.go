// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios and map
// each one onto the right HTTP status code.
package repository

import "errors"

// ErrRoomNotFound is returned when a room lookup fails.
var ErrRoomNotFound = errors.New("room not found")

// ErrRoomNumberExists is returned when creating a room whose room_number
// is already taken. Handlers translate this into an HTTP 400 response.
var ErrRoomNumberExists = errors.New("room number already exists")

// ErrRoomFull is returned when a member is assigned to a room whose
// current occupancy has reached its capacity.
var ErrRoomFull = errors.New("room is full")

// ErrUsernameExists is returned when seeding an admin whose username is
// already present in the admin table.
var ErrUsernameExists = errors.New("username already exists")
