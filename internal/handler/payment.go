package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/svce/hostel-management/internal/config"
	"github.com/svce/hostel-management/internal/queue"
	"github.com/svce/hostel-management/internal/repository"
	queue_publisher "github.com/svce/hostel-management/internal/service"
)

// PaymentHandler exposes the payment endpoints.
type PaymentHandler struct {
	Cfg      config.Config
	Payments *repository.PaymentRepo
	Members  *repository.MemberRepo
}

func NewPaymentHandler(cfg config.Config, p *repository.PaymentRepo, m *repository.MemberRepo) *PaymentHandler {
	return &PaymentHandler{Cfg: cfg, Payments: p, Members: m}
}

// List handles GET /api/payments and returns all payments, newest first.
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.Payments.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, payments)
}

// Create handles POST /api/payments.  The amount must be a positive number
// and the member must exist.  payment_date defaults to today and status to
// "completed" when the client omits them.
func (h *PaymentHandler) Create(c echo.Context) error {
	var data map[string]any
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if f := missingField(data, "member_id", "amount", "payment_type"); f != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing required field: " + f})
	}

	amount, err := asNumber(data["amount"])
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid numeric value: " + err.Error()})
	}
	if amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Amount must be greater than 0"})
	}
	memberID, err := asInt(data["member_id"])
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid numeric value: " + err.Error()})
	}

	ctx := c.Request().Context()
	exists, err := h.Members.Exists(ctx, memberID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	if !exists {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Member not found"})
	}

	payment := repository.Payment{
		MemberID:    memberID,
		Amount:      amount,
		PaymentType: asString(data["payment_type"]),
		PaymentDate: asString(data["payment_date"]),
		Status:      asString(data["status"]),
		Description: asString(data["description"]),
	}
	if payment.PaymentDate == "" {
		payment.PaymentDate = time.Now().Format("2006-01-02")
	}
	if payment.Status == "" {
		payment.Status = "completed"
	}
	if v, ok := data["due_date"]; ok {
		if s := asString(v); s != "" {
			payment.DueDate = &s
		}
	}

	if err := h.Payments.Create(ctx, &payment); err != nil {
		log.Printf("create payment failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}

	if h.Cfg.EventsEnabled {
		// Best effort: a broker outage must not fail the request.
		_ = queue_publisher.PublishPaymentRecorded(ctx, queue.PaymentRecordedEvent{
			PaymentID:   payment.ID,
			MemberID:    payment.MemberID,
			Amount:      payment.Amount,
			PaymentType: payment.PaymentType,
			PaymentDate: payment.PaymentDate,
			Status:      payment.Status,
			RecordedAt:  time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Payment recorded successfully", "payment": payment})
}
