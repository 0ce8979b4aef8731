package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"booking-api/model"
)

func TestBookingCreateValidate(t *testing.T) {
	serviceID := primitive.NewObjectID().Hex()
	tomorrow := time.Now().Add(24 * time.Hour)
	yesterday := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		description string
		payload     BookingCreate
		expectError bool
	}{
		{
			description: "valid booking",
			payload:     BookingCreate{CustomerName: "John", Date: tomorrow, ServiceID: serviceID},
			expectError: false,
		},
		{
			description: "confirmed status on create is allowed",
			payload:     BookingCreate{CustomerName: "John", Date: tomorrow, ServiceID: serviceID, Status: model.StatusConfirmed},
			expectError: false,
		},
		{
			description: "date in the past",
			payload:     BookingCreate{CustomerName: "John", Date: yesterday, ServiceID: serviceID},
			expectError: true,
		},
		{
			description: "missing date",
			payload:     BookingCreate{CustomerName: "John", ServiceID: serviceID},
			expectError: true,
		},
		{
			description: "customer name too short",
			payload:     BookingCreate{CustomerName: "J", Date: tomorrow, ServiceID: serviceID},
			expectError: true,
		},
		{
			description: "missing service_id",
			payload:     BookingCreate{CustomerName: "John", Date: tomorrow},
			expectError: true,
		},
		{
			description: "canceled status on create is rejected",
			payload:     BookingCreate{CustomerName: "John", Date: tomorrow, ServiceID: serviceID, Status: model.StatusCanceled},
			expectError: true,
		},
		{
			description: "completed status on create is rejected",
			payload:     BookingCreate{CustomerName: "John", Date: tomorrow, ServiceID: serviceID, Status: model.StatusCompleted},
			expectError: true,
		},
	}

	for _, test := range tests {
		payload := test.payload
		err := payload.Validate()
		if test.expectError {
			var validationErr *ValidationError
			assert.ErrorAsf(t, err, &validationErr, test.description)
		} else {
			assert.NoErrorf(t, err, test.description)
		}
	}
}

func TestBookingCreateValidateDefaultsStatusToPending(t *testing.T) {
	payload := BookingCreate{
		CustomerName: "John",
		Date:         time.Now().Add(24 * time.Hour),
		ServiceID:    primitive.NewObjectID().Hex(),
	}

	assert.NoError(t, payload.Validate())
	assert.Equal(t, model.StatusPending, payload.Status)
}

func TestBookingUpdateValidateRequiresAField(t *testing.T) {
	update := BookingUpdate{}

	err := update.Validate()

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestBookingUpdateValidateChecksSuppliedFields(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	update := BookingUpdate{Date: &past}
	assert.Error(t, update.Validate())

	badStatus := model.BookingStatus("unknown")
	update = BookingUpdate{Status: &badStatus}
	assert.Error(t, update.Validate())

	// Any known status is accepted on update, including completed.
	completed := model.StatusCompleted
	update = BookingUpdate{Status: &completed}
	assert.NoError(t, update.Validate())
}

func TestBookingUpdateFieldsOnlyIncludesSupplied(t *testing.T) {
	status := model.StatusConfirmed
	update := BookingUpdate{Status: &status}

	fields := update.Fields()

	assert.Len(t, fields, 1)
	assert.Equal(t, model.StatusConfirmed, fields["status"])
}

func TestBookingStatusUpdateValidate(t *testing.T) {
	assert.NoError(t, BookingStatusUpdate{Status: model.StatusConfirmed}.Validate())
	assert.NoError(t, BookingStatusUpdate{Status: model.StatusCompleted}.Validate())
	assert.Error(t, BookingStatusUpdate{}.Validate())
	assert.Error(t, BookingStatusUpdate{Status: "unknown"}.Validate())
}
