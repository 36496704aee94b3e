package domain

import (
	"slices"
	"time"

	"github.com/suchimauz/doctor-booking-directory/internal/core/json_types"
)

const (
	SpecialtyAll = "All"
	DateAny      = "any"
	InsuranceAll = "all"
)

// DoctorFilter is the set of directory criteria. Zero values match everything.
type DoctorFilter struct {
	Specialties []string `json:"specialties"`
	Date        string   `json:"date"`
	Insurance   string   `json:"insurance"`
}

func (f DoctorFilter) AnySpecialty() bool {
	return len(f.Specialties) == 0 || slices.Contains(f.Specialties, SpecialtyAll)
}

func (f DoctorFilter) AnyDate() bool {
	return f.Date == "" || f.Date == DateAny
}

func (f DoctorFilter) AnyInsurance() bool {
	return f.Insurance == "" || f.Insurance == InsuranceAll
}

func (f DoctorFilter) Equal(other DoctorFilter) bool {
	return slices.Equal(f.Specialties, other.Specialties) &&
		f.Date == other.Date &&
		f.Insurance == other.Insurance
}

// DoctorPage is one page of the filtered directory. From and To are the
// 1-based positions of the first and last doctor shown, zero when empty.
type DoctorPage struct {
	Doctors    []Doctor `json:"doctors"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
	TotalCount int      `json:"totalCount"`
	From       int      `json:"from"`
	To         int      `json:"to"`
}

func (p DoctorPage) HasNext() bool {
	return p.Page < p.TotalPages
}

func (p DoctorPage) HasPrevious() bool {
	return p.Page > 1
}

// DaySlots is a calendar day with its open slots in ascending order.
type DaySlots struct {
	Date  json_types.Date `json:"date"`
	Slots []time.Time     `json:"slots"`
}
