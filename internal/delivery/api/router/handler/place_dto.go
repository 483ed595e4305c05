package handler

import (
	"time"

	"sportera/internal/domain/entity"

	"github.com/google/uuid"
)

// DailyHoursDTO is one day's opening window, "HH:MM" 24h clock.
type DailyHoursDTO struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// ContactDTO holds optional ways to reach a venue
type ContactDTO struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// PlaceResponse is the public shape of a place
type PlaceResponse struct {
	ID             uuid.UUID                `json:"id"`
	Name           string                   `json:"name"`
	Address        string                   `json:"address,omitempty"`
	Description    string                   `json:"description,omitempty"`
	Latitude       float64                  `json:"latitude"`
	Longitude      float64                  `json:"longitude"`
	Sports         []string                 `json:"sports"`
	OwnerID        *uuid.UUID               `json:"owner_id,omitempty"`
	IsActive       bool                     `json:"is_active"`
	Amenities      []string                 `json:"amenities"`
	OpeningHours   map[string]DailyHoursDTO `json:"opening_hours,omitempty"`
	Contact        *ContactDTO              `json:"contact,omitempty"`
	OpenNow        bool                     `json:"open_now"`
	DistanceMeters *float64                 `json:"distance_meters,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// CreatePlaceRequest represents the request body for listing a new place
type CreatePlaceRequest struct {
	Name         string                   `json:"name" validate:"required"`
	Address      string                   `json:"address"`
	Description  string                   `json:"description"`
	Latitude     *float64                 `json:"latitude" validate:"required"`
	Longitude    *float64                 `json:"longitude" validate:"required"`
	Sports       []string                 `json:"sports" validate:"required,min=1"`
	IsActive     *bool                    `json:"is_active"`
	Amenities    []string                 `json:"amenities"`
	OpeningHours map[string]DailyHoursDTO `json:"opening_hours"`
	Contact      *ContactDTO              `json:"contact"`
}

// UpdatePlaceRequest is a partial update; omitted fields are left untouched
type UpdatePlaceRequest struct {
	Name         *string                   `json:"name"`
	Address      *string                   `json:"address"`
	Description  *string                   `json:"description"`
	Latitude     *float64                  `json:"latitude"`
	Longitude    *float64                  `json:"longitude"`
	Sports       *[]string                 `json:"sports"`
	IsActive     *bool                     `json:"is_active"`
	Amenities    *[]string                 `json:"amenities"`
	OpeningHours *map[string]DailyHoursDTO `json:"opening_hours"`
	Contact      *ContactDTO               `json:"contact"`
}

func (r CreatePlaceRequest) toSpec() entity.PlaceSpec {
	spec := entity.PlaceSpec{
		Name:         r.Name,
		Address:      r.Address,
		Description:  r.Description,
		Sports:       r.Sports,
		IsActive:     r.IsActive,
		Amenities:    r.Amenities,
		OpeningHours: toOpeningHours(r.OpeningHours),
		Contact:      toContact(r.Contact),
	}
	if r.Latitude != nil {
		spec.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		spec.Longitude = *r.Longitude
	}

	return spec
}

func (r UpdatePlaceRequest) toChanges() entity.PlaceChanges {
	changes := entity.PlaceChanges{
		Name:        r.Name,
		Address:     r.Address,
		Description: r.Description,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Sports:      r.Sports,
		IsActive:    r.IsActive,
		Amenities:   r.Amenities,
		Contact:     toContact(r.Contact),
	}
	if r.OpeningHours != nil {
		hours := toOpeningHours(*r.OpeningHours)
		changes.OpeningHours = &hours
	}

	return changes
}

func toOpeningHours(dto map[string]DailyHoursDTO) entity.OpeningHours {
	if dto == nil {
		return nil
	}

	hours := make(entity.OpeningHours, len(dto))
	for day, window := range dto {
		hours[day] = entity.DailyHours{Open: window.Open, Close: window.Close}
	}

	return hours
}

func toContact(dto *ContactDTO) *entity.ContactInfo {
	if dto == nil {
		return nil
	}

	return &entity.ContactInfo{Phone: dto.Phone, Email: dto.Email, Website: dto.Website}
}

// newPlaceResponse renders place as seen at now; open_now uses now's weekday and clock.
func newPlaceResponse(place *entity.Place, now time.Time) PlaceResponse {
	resp := PlaceResponse{
		ID:          place.ID,
		Name:        place.Name,
		Address:     place.Address,
		Description: place.Description,
		Latitude:    place.Latitude(),
		Longitude:   place.Longitude(),
		Sports:      nonNil(place.Sports),
		OwnerID:     place.OwnerID,
		IsActive:    place.IsActive,
		Amenities:   nonNil(place.Amenities),
		OpenNow:     place.IsOpenAt(now),
		CreatedAt:   place.CreatedAt,
		UpdatedAt:   place.UpdatedAt,
	}

	if len(place.OpeningHours) > 0 {
		resp.OpeningHours = make(map[string]DailyHoursDTO, len(place.OpeningHours))
		for day, window := range place.OpeningHours {
			resp.OpeningHours[day] = DailyHoursDTO{Open: window.Open, Close: window.Close}
		}
	}

	if place.Contact != nil {
		resp.Contact = &ContactDTO{Phone: place.Contact.Phone, Email: place.Contact.Email, Website: place.Contact.Website}
	}

	return resp
}

func newPlaceResponses(places []*entity.Place, now time.Time) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(places))
	for _, place := range places {
		out = append(out, newPlaceResponse(place, now))
	}

	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
