package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors package for sentinel comparisons
)

// Room represents a hostel room.  Capacity bounds how many members may be
// assigned; CurrentOccupancy is incremented whenever a member moves in.
// The struct carries JSON tags because room rows are returned to clients
// as-is by the list and report endpoints.
type Room struct {
	ID               int64   `json:"id"`
	RoomNumber       string  `json:"room_number"`
	Capacity         int     `json:"capacity"`
	CurrentOccupancy int     `json:"current_occupancy"`
	RoomType         string  `json:"room_type"`
	PricePerMonth    float64 `json:"price_per_month"`
	Status           string  `json:"status"`
}

// RoomRepo provides methods to create and retrieve rooms.  It embeds a
// database handle to perform queries and commands.
type RoomRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// List returns every room ordered by id.  No filtering or pagination is
// applied; the admin frontend renders the full inventory.
func (r *RoomRepo) List(ctx context.Context) ([]Room, error) {
	const q = `SELECT id, room_number, capacity, current_occupancy, room_type, price_per_month, status
	           FROM room ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Room, 0)
	for rows.Next() {
		var rm Room
		if err := rows.Scan(&rm.ID, &rm.RoomNumber, &rm.Capacity, &rm.CurrentOccupancy, &rm.RoomType, &rm.PricePerMonth, &rm.Status); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

// GetByID retrieves a room by its ID.  It returns ErrRoomNotFound when no
// row is found.
func (r *RoomRepo) GetByID(ctx context.Context, id int64) (*Room, error) {
	const q = `SELECT id, room_number, capacity, current_occupancy, room_type, price_per_month, status
	           FROM room WHERE id = ?`
	var rm Room
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&rm.ID, &rm.RoomNumber, &rm.Capacity, &rm.CurrentOccupancy, &rm.RoomType, &rm.PricePerMonth, &rm.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

// NumberExists reports whether a room with the given room_number already
// exists.  The column also carries a UNIQUE constraint as a backstop, but
// the explicit check lets the handler return a friendly message.
func (r *RoomRepo) NumberExists(ctx context.Context, number string) (bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM room WHERE room_number = ?`, number).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts a new room.  New rooms always start empty and available;
// the caller provides number, capacity, type and price.  After insert the
// record is read back so the returned struct reflects stored defaults.
func (r *RoomRepo) Create(ctx context.Context, rm *Room) error {
	exists, err := r.NumberExists(ctx, rm.RoomNumber)
	if err != nil {
		return err
	}
	if exists {
		return ErrRoomNumberExists
	}

	const qInsert = `INSERT INTO room (room_number, capacity, current_occupancy, room_type, price_per_month, status)
	                 VALUES (?, ?, 0, ?, ?, 'available')`
	res, err := r.db.ExecContext(ctx, qInsert, rm.RoomNumber, rm.Capacity, rm.RoomType, rm.PricePerMonth)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	got, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	*rm = *got
	return nil
}

// Count returns the number of rooms.  The seeding utility uses it to avoid
// inserting sample data twice.
func (r *RoomRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM room`).Scan(&n)
	return n, err
}
