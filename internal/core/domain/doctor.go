package domain

import (
	"slices"
	"time"
)

// Doctor is a directory entry. Experience, Bio, Photo and FeaturedBadge are
// optional: an empty string means the field is absent.
type Doctor struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Specialty     string      `json:"specialty"`
	Location      string      `json:"location"`
	Experience    string      `json:"experience,omitempty"`
	Bio           string      `json:"bio,omitempty"`
	Photo         string      `json:"photo,omitempty"`
	FeaturedBadge string      `json:"featuredBadge,omitempty"`
	Rating        float64     `json:"rating"`
	Insurance     []string    `json:"insurance"`
	Languages     []string    `json:"languages"`
	Availability  []time.Time `json:"availability"`
}

// Clone возвращает копию без общих слайсов
func (d Doctor) Clone() Doctor {
	d.Insurance = slices.Clone(d.Insurance)
	d.Languages = slices.Clone(d.Languages)
	d.Availability = slices.Clone(d.Availability)
	return d
}

func (d Doctor) HasPhoto() bool {
	return d.Photo != ""
}

func (d Doctor) HasSlot(slot time.Time) bool {
	return slices.ContainsFunc(d.Availability, slot.Equal)
}

// HasSlotOn reports whether any slot's RFC 3339 date prefix equals date (YYYY-MM-DD).
func (d Doctor) HasSlotOn(date string) bool {
	for _, slot := range d.Availability {
		if slot.Format(time.DateOnly) == date {
			return true
		}
	}
	return false
}

func (d Doctor) AcceptsInsurance(plan string) bool {
	return slices.Contains(d.Insurance, plan)
}

func (d Doctor) SpeaksLanguage(language string) bool {
	return slices.Contains(d.Languages, language)
}
