package schema

import (
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"booking-api/model"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 1000
	maxCategoryLen    = 50
	maxDuration       = 480
)

// ServiceCreate is the payload for POST /services.
type ServiceCreate struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Duration     int      `json:"duration"`
	Price        float64  `json:"price"`
	Category     string   `json:"category"`
	Availability []string `json:"availability"`
}

func (s *ServiceCreate) Validate() error {
	s.Name = strings.TrimSpace(s.Name)
	if err := validateServiceName(s.Name); err != nil {
		return err
	}
	if len(s.Description) > maxDescriptionLen {
		return Invalidf("description must be at most %d characters", maxDescriptionLen)
	}
	if err := validateDuration(s.Duration); err != nil {
		return err
	}
	if err := validatePrice(s.Price); err != nil {
		return err
	}
	if len(s.Category) > maxCategoryLen {
		return Invalidf("category must be at most %d characters", maxCategoryLen)
	}
	return nil
}

// ServiceUpdate is the payload for PUT /services/:id. Nil means
// "not supplied": only non-nil fields make it into the store update.
type ServiceUpdate struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Duration     *int      `json:"duration"`
	Price        *float64  `json:"price"`
	Category     *string   `json:"category"`
	Availability *[]string `json:"availability"`
}

func (u *ServiceUpdate) Validate() error {
	if u.Name == nil && u.Description == nil && u.Duration == nil &&
		u.Price == nil && u.Category == nil && u.Availability == nil {
		return Invalidf("at least one field must be provided for update")
	}
	if u.Name != nil {
		trimmed := strings.TrimSpace(*u.Name)
		u.Name = &trimmed
		if err := validateServiceName(trimmed); err != nil {
			return err
		}
	}
	if u.Description != nil && len(*u.Description) > maxDescriptionLen {
		return Invalidf("description must be at most %d characters", maxDescriptionLen)
	}
	if u.Duration != nil {
		if err := validateDuration(*u.Duration); err != nil {
			return err
		}
	}
	if u.Price != nil {
		if err := validatePrice(*u.Price); err != nil {
			return err
		}
	}
	if u.Category != nil && len(*u.Category) > maxCategoryLen {
		return Invalidf("category must be at most %d characters", maxCategoryLen)
	}
	return nil
}

// Fields returns the partial-update document holding only supplied fields.
func (u ServiceUpdate) Fields() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Duration != nil {
		set["duration"] = *u.Duration
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Availability != nil {
		set["availability"] = *u.Availability
	}
	return set
}

func validateServiceName(name string) error {
	if len(name) < 1 {
		return Invalidf("name is required")
	}
	if len(name) > maxNameLen {
		return Invalidf("name must be at most %d characters", maxNameLen)
	}
	return nil
}

func validateDuration(duration int) error {
	if duration <= 0 || duration > maxDuration {
		return Invalidf("duration must be between 1 and %d minutes", maxDuration)
	}
	if duration%5 != 0 {
		return Invalidf("duration must be a multiple of 5 minutes")
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return Invalidf("price must be non-negative")
	}
	if price != math.Round(price*100)/100 {
		return Invalidf("price must have at most 2 decimal places")
	}
	return nil
}

// ServiceResponse is the client-facing projection of a service, with the
// identifier in its string form.
type ServiceResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Duration     int       `json:"duration"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	Availability []string  `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewServiceResponse(s *model.Service) ServiceResponse {
	return ServiceResponse{
		ID:           s.ID.Hex(),
		Name:         s.Name,
		Description:  s.Description,
		Duration:     s.Duration,
		Price:        s.Price,
		Category:     s.Category,
		Availability: s.Availability,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ServiceList is the paginated listing shape. Count is the total matching
// the filter, not the page size.
type ServiceList struct {
	Services []ServiceResponse `json:"services"`
	Count    int64             `json:"count"`
	Page     int               `json:"page"`
	Size     int               `json:"size"`
}

func NewServiceList(services []model.Service, count int64, page, size int) ServiceList {
	items := make([]ServiceResponse, 0, len(services))
	for i := range services {
		items = append(items, NewServiceResponse(&services[i]))
	}
	return ServiceList{Services: items, Count: count, Page: page, Size: size}
}
