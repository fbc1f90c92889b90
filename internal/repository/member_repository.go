package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Member mirrors the 'member' table.  Members are created through the admin
// surface and never updated or deleted there, so the repository only needs
// insert and list paths.
type Member struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	RoomID           int64  `json:"room_id"`
	EmergencyContact string `json:"emergency_contact"`
}

// MemberWithRoom is a member row joined with its room number for listing.
// RoomNumber is a pointer because the join is a LEFT JOIN: members whose
// room_id no longer resolves still appear, with a null room_number.
type MemberWithRoom struct {
	Member
	RoomNumber *string `json:"room_number"`
}

type MemberRepo struct{ db *sql.DB }

func NewMemberRepo(db *sql.DB) *MemberRepo { return &MemberRepo{db: db} }

// List returns all members left-joined with their room number.
func (r *MemberRepo) List(ctx context.Context) ([]MemberWithRoom, error) {
	const q = `SELECT m.id, m.name, m.email, m.phone, m.room_id, m.emergency_contact, r.room_number
	           FROM member m
	           LEFT JOIN room r ON m.room_id = r.id
	           ORDER BY m.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MemberWithRoom, 0)
	for rows.Next() {
		var m MemberWithRoom
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.RoomID, &m.EmergencyContact, &m.RoomNumber); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Create inserts a member and increments the occupancy of the assigned
// room.  The capacity check, the insert and the increment run in a single
// transaction so two concurrent check-ins cannot overshoot a room's
// capacity.  Returns ErrRoomNotFound when the room id does not resolve and
// ErrRoomFull when the room is at capacity.
func (r *MemberRepo) Create(ctx context.Context, m *Member) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var occupancy, capacity int
	err = tx.QueryRowContext(ctx,
		`SELECT current_occupancy, capacity FROM room WHERE id = ?`, m.RoomID).
		Scan(&occupancy, &capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRoomNotFound
		}
		return err
	}
	if occupancy >= capacity {
		return ErrRoomFull
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO member (name, email, phone, room_id, emergency_contact) VALUES (?, ?, ?, ?, ?)`,
		m.Name, m.Email, m.Phone, m.RoomID, m.EmergencyContact)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id

	if _, err := tx.ExecContext(ctx,
		`UPDATE room SET current_occupancy = current_occupancy + 1 WHERE id = ?`, m.RoomID); err != nil {
		return err
	}

	return tx.Commit()
}

// Exists reports whether a member with the given id exists.
func (r *MemberRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var got int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM member WHERE id = ?`, id).Scan(&got)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Count returns the number of members, used by the seeding utility.
func (r *MemberRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM member`).Scan(&n)
	return n, err
}
