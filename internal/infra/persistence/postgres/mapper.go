package postgres

import (
	"sportera/internal/domain/entity"
	"sportera/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"gorm.io/datatypes"
)

func toAccountDomain(m *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:                      m.ID,
		Name:                    m.Name,
		Email:                   m.Email,
		Secret:                  entity.PasswordDigest(m.PasswordHash),
		Kind:                    entity.AccountKind(m.Kind),
		OrganizationName:        m.OrganizationName,
		OrganizationDescription: m.OrganizationDescription,
		Points:                  m.Points,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:                      a.ID,
		Name:                    a.Name,
		Email:                   entity.CanonicalEmail(a.Email),
		PasswordHash:            a.Secret.Reveal(),
		Kind:                    string(a.Kind),
		OrganizationName:        a.OrganizationName,
		OrganizationDescription: a.OrganizationDescription,
		Points:                  a.Points,
		CreatedAt:               a.CreatedAt,
		UpdatedAt:               a.UpdatedAt,
	}
}

func toPlaceDomain(m *model.PlaceModel) *entity.Place {
	place := &entity.Place{
		ID:          m.ID,
		Name:        m.Name,
		Address:     m.Address,
		Description: m.Description,
		Location:    orb.Point{m.Longitude, m.Latitude},
		Sports:      []string(m.Sports),
		OwnerID:     m.OwnerID,
		IsActive:    m.IsActive,
		Amenities:   []string(m.Amenities),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if hours := m.OpeningHours.Data(); len(hours) > 0 {
		place.OpeningHours = make(entity.OpeningHours, len(hours))
		for day, h := range hours {
			place.OpeningHours[day] = entity.DailyHours{Open: h.Open, Close: h.Close}
		}
	}

	if m.ContactPhone != "" || m.ContactEmail != "" || m.ContactURL != "" {
		place.Contact = &entity.ContactInfo{
			Phone:   m.ContactPhone,
			Email:   m.ContactEmail,
			Website: m.ContactURL,
		}
	}

	return place
}

func fromPlaceDomain(p *entity.Place) *model.PlaceModel {
	m := &model.PlaceModel{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		Description:  p.Description,
		Latitude:     p.Latitude(),
		Longitude:    p.Longitude(),
		Sports:       datatypes.JSONSlice[string](p.Sports),
		OwnerID:      p.OwnerID,
		IsActive:     p.IsActive,
		Amenities:    datatypes.JSONSlice[string](nonNil(p.Amenities)),
		OpeningHours: datatypes.NewJSONType(openingHoursJSON(p.OpeningHours)),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	if p.Contact != nil {
		m.ContactPhone = p.Contact.Phone
		m.ContactEmail = p.Contact.Email
		m.ContactURL = p.Contact.Website
	}

	return m
}

func openingHoursJSON(hours entity.OpeningHours) map[string]model.DailyHoursJSON {
	out := make(map[string]model.DailyHoursJSON, len(hours))
	for day, h := range hours {
		out[day] = model.DailyHoursJSON{Open: h.Open, Close: h.Close}
	}

	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
