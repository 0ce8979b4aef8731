package schema

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"booking-api/model"
)

const (
	minCustomerNameLen = 2
	maxCustomerNameLen = 100
	maxNotesLen        = 1000
)

// BookingCreate is the payload for POST /bookings. The service reference
// arrives as a string and is parsed into its native form by the repository.
type BookingCreate struct {
	CustomerName string              `json:"customer_name"`
	Date         time.Time           `json:"date"`
	ServiceID    string              `json:"service_id"`
	Status       model.BookingStatus `json:"status"`
	Notes        string              `json:"notes"`
}

func (b *BookingCreate) Validate() error {
	b.CustomerName = strings.TrimSpace(b.CustomerName)
	if err := validateCustomerName(b.CustomerName); err != nil {
		return err
	}
	if b.Date.IsZero() {
		return Invalidf("date is required")
	}
	if err := validateBookingDate(b.Date); err != nil {
		return err
	}
	if b.ServiceID == "" {
		return Invalidf("service_id is required")
	}
	if b.Status == "" {
		b.Status = model.StatusPending
	}
	if !b.Status.AllowedOnCreate() {
		return Invalidf("status on booking creation can only be %s or %s",
			model.StatusPending, model.StatusConfirmed)
	}
	if len(b.Notes) > maxNotesLen {
		return Invalidf("notes must be at most %d characters", maxNotesLen)
	}
	return nil
}

// BookingUpdate is the payload for PUT /bookings/:id. Nil means
// "not supplied".
type BookingUpdate struct {
	CustomerName *string              `json:"customer_name"`
	Date         *time.Time           `json:"date"`
	ServiceID    *string              `json:"service_id"`
	Status       *model.BookingStatus `json:"status"`
	Notes        *string              `json:"notes"`
}

func (u *BookingUpdate) Validate() error {
	if u.CustomerName == nil && u.Date == nil && u.ServiceID == nil &&
		u.Status == nil && u.Notes == nil {
		return Invalidf("at least one field must be provided for update")
	}
	if u.CustomerName != nil {
		trimmed := strings.TrimSpace(*u.CustomerName)
		u.CustomerName = &trimmed
		if err := validateCustomerName(trimmed); err != nil {
			return err
		}
	}
	if u.Date != nil {
		if err := validateBookingDate(*u.Date); err != nil {
			return err
		}
	}
	if u.Status != nil && !u.Status.Valid() {
		return Invalidf("unknown booking status %q", *u.Status)
	}
	if u.Notes != nil && len(*u.Notes) > maxNotesLen {
		return Invalidf("notes must be at most %d characters", maxNotesLen)
	}
	return nil
}

// Fields returns the partial-update document holding only supplied fields.
// The service reference must already be parsed; it is passed separately so
// invalid identifiers fail before any document is built.
func (u BookingUpdate) Fields() bson.M {
	set := bson.M{}
	if u.CustomerName != nil {
		set["customer_name"] = *u.CustomerName
	}
	if u.Date != nil {
		set["date"] = model.NormalizeTime(*u.Date)
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.Notes != nil {
		set["notes"] = *u.Notes
	}
	return set
}

// BookingStatusUpdate is the payload for PATCH /bookings/:id/status.
// Any known status is accepted: there is no transition table, a completed
// booking can go back to pending.
type BookingStatusUpdate struct {
	Status model.BookingStatus `json:"status"`
}

func (u BookingStatusUpdate) Validate() error {
	if u.Status == "" {
		return Invalidf("status is required")
	}
	if !u.Status.Valid() {
		return Invalidf("unknown booking status %q", u.Status)
	}
	return nil
}

func validateCustomerName(name string) error {
	if len(name) < minCustomerNameLen {
		return Invalidf("customer_name must be at least %d characters", minCustomerNameLen)
	}
	if len(name) > maxCustomerNameLen {
		return Invalidf("customer_name must be at most %d characters", maxCustomerNameLen)
	}
	return nil
}

func validateBookingDate(date time.Time) error {
	if date.UTC().Before(time.Now().UTC()) {
		return Invalidf("booking date cannot be in the past")
	}
	return nil
}

// BookingResponse is the client-facing projection of a booking, with both
// identifiers in their string form.
type BookingResponse struct {
	ID           string              `json:"id"`
	CustomerName string              `json:"customer_name"`
	Date         time.Time           `json:"date"`
	ServiceID    string              `json:"service_id"`
	Status       model.BookingStatus `json:"status"`
	Notes        string              `json:"notes"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func NewBookingResponse(b *model.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID.Hex(),
		CustomerName: b.CustomerName,
		Date:         b.Date,
		ServiceID:    b.ServiceID.Hex(),
		Status:       b.Status,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// BookingList is the paginated listing shape. Total is the number of
// bookings matching the filter, not the page size.
type BookingList struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Size     int               `json:"size"`
}

func NewBookingList(bookings []model.Booking, total int64, page, size int) BookingList {
	items := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, NewBookingResponse(&bookings[i]))
	}
	return BookingList{Bookings: items, Total: total, Page: page, Size: size}
}
