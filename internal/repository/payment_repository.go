package repository

import (
	"context"
	"database/sql"
)

// Payment mirrors the 'payment' table.  DueDate and Description are
// optional; PaymentDate and Status receive defaults in the handler when
// the client omits them.
type Payment struct {
	ID          int64   `json:"id"`
	MemberID    int64   `json:"member_id"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type"`
	PaymentDate string  `json:"payment_date"`
	DueDate     *string `json:"due_date"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
}

type PaymentRepo struct{ db *sql.DB }

func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// List returns all payments, newest payment date first.
func (r *PaymentRepo) List(ctx context.Context) ([]Payment, error) {
	const q = `SELECT id, member_id, amount, payment_type, payment_date, due_date, status, description
	           FROM payment ORDER BY payment_date DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Payment, 0)
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.MemberID, &p.Amount, &p.PaymentType, &p.PaymentDate, &p.DueDate, &p.Status, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Create inserts a payment and reads the stored row back so the caller can
// return it to the client.  Referential checks happen in the handler.
func (r *PaymentRepo) Create(ctx context.Context, p *Payment) error {
	const qInsert = `INSERT INTO payment (member_id, amount, payment_type, payment_date, due_date, status, description)
	                 VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		p.MemberID, p.Amount, p.PaymentType, p.PaymentDate, p.DueDate, p.Status, p.Description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	const qSelect = `SELECT id, member_id, amount, payment_type, payment_date, due_date, status, description
	                 FROM payment WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, id).
		Scan(&p.ID, &p.MemberID, &p.Amount, &p.PaymentType, &p.PaymentDate, &p.DueDate, &p.Status, &p.Description)
}
