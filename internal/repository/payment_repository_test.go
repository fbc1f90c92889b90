package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svce/hostel-management/internal/repository"
)

func TestPaymentCreateAndList(t *testing.T) {
	db := newTestDB(t)
	rooms := repository.NewRoomRepo(db)
	members := repository.NewMemberRepo(db)
	payments := repository.NewPaymentRepo(db)
	ctx := context.Background()

	room := repository.Room{RoomNumber: "101", Capacity: 2, RoomType: "Single", PricePerMonth: 250}
	require.NoError(t, rooms.Create(ctx, &room))
	m := repository.Member{Name: "John Doe", RoomID: room.ID}
	require.NoError(t, members.Create(ctx, &m))

	due := "2025-10-01"
	first := repository.Payment{
		MemberID:    m.ID,
		Amount:      250,
		PaymentType: "rent",
		PaymentDate: "2025-09-01",
		DueDate:     &due,
		Status:      "completed",
		Description: "September rent",
	}
	require.NoError(t, payments.Create(ctx, &first))
	assert.NotZero(t, first.ID)
	require.NotNil(t, first.DueDate)
	assert.Equal(t, due, *first.DueDate)

	second := repository.Payment{
		MemberID:    m.ID,
		Amount:      50,
		PaymentType: "deposit",
		PaymentDate: "2025-09-15",
		Status:      "completed",
	}
	require.NoError(t, payments.Create(ctx, &second))
	assert.Nil(t, second.DueDate)

	list, err := payments.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Newest payment date first.
	assert.Equal(t, "2025-09-15", list[0].PaymentDate)
	assert.Equal(t, "2025-09-01", list[1].PaymentDate)
}

func TestPaymentListEmpty(t *testing.T) {
	db := newTestDB(t)
	payments := repository.NewPaymentRepo(db)

	list, err := payments.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
