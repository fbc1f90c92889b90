package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupancyReport(t *testing.T) {
	e, db := newTrustAllServer(t)

	// Rooms are inserted directly so the report can be checked against
	// occupancy states the create endpoint would refuse (zero capacity).
	rows := []struct {
		number        string
		capacity, occ int
	}{
		{"101", 2, 1},
		{"102", 4, 4},
		{"103", 0, 0},
		{"104", 3, 0},
	}
	for _, r := range rows {
		_, err := db.Exec(
			`INSERT INTO room (room_number, capacity, current_occupancy, room_type, price_per_month, status)
			 VALUES (?, ?, ?, 'Single', 250, 'available')`,
			r.number, r.capacity, r.occ)
		require.NoError(t, err)
	}

	rec := doJSON(e, http.MethodGet, "/api/reports/occupancy", "")
	require.Equal(t, http.StatusOK, rec.Code)

	list := decodeList(t, rec)
	require.Len(t, list, 4)

	rates := map[string]float64{}
	for _, row := range list {
		rates[row["room_number"].(string)] = row["occupancy_rate"].(float64)
	}
	assert.Equal(t, 50.0, rates["101"])
	assert.Equal(t, 100.0, rates["102"])
	assert.Equal(t, 0.0, rates["103"]) // zero capacity must not divide by zero
	assert.Equal(t, 0.0, rates["104"])
}

func TestPaymentsReportStub(t *testing.T) {
	e, _ := newTrustAllServer(t)

	rec := doJSON(e, http.MethodGet, "/api/reports/payments", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(0), body["total_amount"])
	payments, ok := body["payments"].([]any)
	require.True(t, ok)
	assert.Empty(t, payments)
}

func TestHealthAndHome(t *testing.T) {
	e, _ := newTrustAllServer(t)

	rec := doJSON(e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hostel Management System API")
}
