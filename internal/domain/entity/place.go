// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "sportera/internal/domain/errors"
	"sportera/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// MaxPlaceNameLength is the longest accepted place name, in characters.
const MaxPlaceNameLength = 100

// Place is a sports venue listed in the directory.
type Place struct {
	ID           uuid.UUID    // Assigned at creation, never changes.
	Name         string       // Display name, 1 to 100 characters.
	Address      string       // Human-readable street address.
	Description  string       // Free text.
	Location     orb.Point    // [longitude, latitude].
	Sports       []string     // Non-empty, lowercase, drawn from the sport vocabulary.
	OwnerID      *uuid.UUID   // Managing organization account, nil for unowned venues.
	IsActive     bool         // Inactive places are hidden from sport listings and nearby search.
	Amenities    []string     // e.g. "parking", "vestiaires".
	OpeningHours OpeningHours // Nil means always open.
	Contact      *ContactInfo // Optional.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ContactInfo holds optional ways to reach a venue.
type ContactInfo struct {
	Phone   string
	Email   string
	Website string
}

// PlaceSpec carries everything needed to create a place.
type PlaceSpec struct {
	Name         string
	Address      string
	Description  string
	Latitude     float64
	Longitude    float64
	Sports       []string
	OwnerID      *uuid.UUID
	IsActive     *bool // Defaults to true.
	Amenities    []string
	OpeningHours OpeningHours
	Contact      *ContactInfo
}

// PlaceChanges is a partial update; nil fields are left untouched.
type PlaceChanges struct {
	Name         *string
	Address      *string
	Description  *string
	Latitude     *float64
	Longitude    *float64
	Sports       *[]string
	IsActive     *bool
	Amenities    *[]string
	OpeningHours *OpeningHours
	Contact      *ContactInfo
}

// NewPlace validates spec and builds a place; nothing is returned unless every field is valid.
func NewPlace(spec PlaceSpec, vocabulary SportVocabulary, now time.Time) (*Place, error) {
	name, err := validatePlaceName(spec.Name)
	if err != nil {
		return nil, err
	}
	if err := validateCoordinates(spec.Latitude, spec.Longitude); err != nil {
		return nil, err
	}
	sports, err := vocabulary.Normalize(spec.Sports)
	if err != nil {
		return nil, err
	}
	if err := spec.OpeningHours.Validate(); err != nil {
		return nil, err
	}

	isActive := true
	if spec.IsActive != nil {
		isActive = *spec.IsActive
	}

	place := &Place{
		ID:           uuid.New(),
		Name:         name,
		Address:      spec.Address,
		Description:  spec.Description,
		Location:     orb.Point{spec.Longitude, spec.Latitude},
		Sports:       sports,
		OwnerID:      cloneUUID(spec.OwnerID),
		IsActive:     isActive,
		Amenities:    slices.Clone(spec.Amenities),
		OpeningHours: spec.OpeningHours.Clone(),
		Contact:      cloneContact(spec.Contact),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return place, nil
}

// Apply returns a copy of p with changes merged in and UpdatedAt set to now.
// p itself is never modified, so a failed validation leaves no partial update behind.
func (p *Place) Apply(changes PlaceChanges, vocabulary SportVocabulary, now time.Time) (*Place, error) {
	updated := p.Clone()

	if changes.Name != nil {
		name, err := validatePlaceName(*changes.Name)
		if err != nil {
			return nil, err
		}
		updated.Name = name
	}
	if changes.Address != nil {
		updated.Address = *changes.Address
	}
	if changes.Description != nil {
		updated.Description = *changes.Description
	}

	lat, lng := updated.Latitude(), updated.Longitude()
	if changes.Latitude != nil {
		lat = *changes.Latitude
	}
	if changes.Longitude != nil {
		lng = *changes.Longitude
	}
	if changes.Latitude != nil || changes.Longitude != nil {
		if err := validateCoordinates(lat, lng); err != nil {
			return nil, err
		}
		updated.Location = orb.Point{lng, lat}
	}

	if changes.Sports != nil {
		sports, err := vocabulary.Normalize(*changes.Sports)
		if err != nil {
			return nil, err
		}
		updated.Sports = sports
	}
	if changes.IsActive != nil {
		updated.IsActive = *changes.IsActive
	}
	if changes.Amenities != nil {
		updated.Amenities = slices.Clone(*changes.Amenities)
	}
	if changes.OpeningHours != nil {
		if err := changes.OpeningHours.Validate(); err != nil {
			return nil, err
		}
		updated.OpeningHours = changes.OpeningHours.Clone()
	}
	if changes.Contact != nil {
		updated.Contact = cloneContact(changes.Contact)
	}

	updated.UpdatedAt = now

	return updated, nil
}

// Latitude returns the place's latitude in degrees.
func (p *Place) Latitude() float64 {
	return p.Location.Lat()
}

// Longitude returns the place's longitude in degrees.
func (p *Place) Longitude() float64 {
	return p.Location.Lon()
}

// OffersSport reports whether the place lists sport, compared case-insensitively.
func (p *Place) OffersSport(sport string) bool {
	key := normalizeSport(sport)

	return slices.Contains(p.Sports, key)
}

// OffersAnySport reports whether the place lists at least one of sports.
func (p *Place) OffersAnySport(sports []string) bool {
	return slices.ContainsFunc(sports, p.OffersSport)
}

// IsOwnedBy reports whether ownerID manages the place.
func (p *Place) IsOwnedBy(ownerID uuid.UUID) bool {
	return p.OwnerID != nil && *p.OwnerID == ownerID
}

// IsOpenAt reports whether the place is open at t according to its opening hours.
func (p *Place) IsOpenAt(t time.Time) bool {
	return p.OpeningHours.IsOpenAt(t)
}

// Clone returns a deep copy so stores never share mutable state with callers.
func (p *Place) Clone() *Place {
	if p == nil {
		return nil
	}

	cloned := *p
	cloned.Sports = slices.Clone(p.Sports)
	cloned.Amenities = slices.Clone(p.Amenities)
	cloned.OwnerID = cloneUUID(p.OwnerID)
	cloned.OpeningHours = p.OpeningHours.Clone()
	cloned.Contact = cloneContact(p.Contact)

	return &cloned
}

func validatePlaceName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", domainerrors.NewValidationError("name", "name is required")
	}
	if utf8.RuneCountInString(name) > MaxPlaceNameLength {
		return "", domainerrors.NewValidationErrorf("name", "name must be at most %d characters", MaxPlaceNameLength)
	}

	return name, nil
}

func validateCoordinates(lat, lng float64) error {
	if !geo.ValidLatitude(lat) {
		return domainerrors.NewValidationError("latitude", "latitude must be between -90 and 90")
	}
	if !geo.ValidLongitude(lng) {
		return domainerrors.NewValidationError("longitude", "longitude must be between -180 and 180")
	}

	return nil
}

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	cloned := *id

	return &cloned
}

func cloneContact(c *ContactInfo) *ContactInfo {
	if c == nil {
		return nil
	}
	cloned := *c

	return &cloned
}
