package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBookingStatusValid(t *testing.T) {
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted} {
		assert.Truef(t, status.Valid(), "%s should be valid", status)
	}

	assert.False(t, BookingStatus("unknown").Valid())
	assert.False(t, BookingStatus("").Valid())
}

func TestBookingStatusAllowedOnCreate(t *testing.T) {
	assert.True(t, StatusPending.AllowedOnCreate())
	assert.True(t, StatusConfirmed.AllowedOnCreate())
	assert.False(t, StatusCanceled.AllowedOnCreate())
	assert.False(t, StatusCompleted.AllowedOnCreate())
}

func TestBookingApplyDefaults(t *testing.T) {
	booking := Booking{
		CustomerName: "John",
		Date:         time.Now().Add(24 * time.Hour),
		ServiceID:    primitive.NewObjectID(),
	}
	booking.ApplyDefaults()

	assert.False(t, booking.ID.IsZero())
	assert.Equal(t, StatusPending, booking.Status)
	assert.Equal(t, booking.CreatedAt, booking.UpdatedAt)
	assert.Equal(t, time.UTC, booking.Date.Location())
}

func TestBookingDocumentRoundTrip(t *testing.T) {
	booking := Booking{
		CustomerName: "John",
		Date:         NormalizeTime(time.Now().Add(48 * time.Hour)),
		ServiceID:    primitive.NewObjectID(),
		Status:       StatusConfirmed,
		Notes:        "first visit",
	}
	booking.ApplyDefaults()

	doc := booking.ToDocument()

	// The reference stays in its native form inside the document.
	_, isObjectID := doc["service_id"].(primitive.ObjectID)
	assert.True(t, isObjectID)

	decoded, err := BookingFromDocument(doc)
	require.NoError(t, err)
	require.NotNil(t, decoded)

	assert.Equal(t, booking.ID, decoded.ID)
	assert.Equal(t, booking.CustomerName, decoded.CustomerName)
	assert.Equal(t, booking.ServiceID, decoded.ServiceID)
	assert.Equal(t, booking.Status, decoded.Status)
	assert.Equal(t, booking.Notes, decoded.Notes)
	assert.True(t, booking.Date.Equal(decoded.Date))
	assert.True(t, booking.CreatedAt.Equal(decoded.CreatedAt))
	assert.True(t, booking.UpdatedAt.Equal(decoded.UpdatedAt))
}

func TestBookingFromDocumentAbsentRecord(t *testing.T) {
	decoded, err := BookingFromDocument(nil)

	assert.NoError(t, err)
	assert.Nil(t, decoded)
}
