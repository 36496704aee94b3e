package booking_store

import (
	"slices"
	"time"

	"github.com/suchimauz/doctor-booking-directory/internal/config"
	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
	"github.com/suchimauz/doctor-booking-directory/internal/core/json_types"
	"github.com/suchimauz/doctor-booking-directory/internal/utils"
)

// FilterDoctors keeps the doctors matching every active criterion, in their
// original order.
func FilterDoctors(doctors []domain.Doctor, filter domain.DoctorFilter) []domain.Doctor {
	filtered := make([]domain.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if matchesFilter(doctor, filter) {
			filtered = append(filtered, doctor)
		}
	}
	return filtered
}

func matchesFilter(doctor domain.Doctor, filter domain.DoctorFilter) bool {
	if !filter.AnySpecialty() && !slices.Contains(filter.Specialties, doctor.Specialty) {
		return false
	}

	if !filter.AnyDate() && !doctor.HasSlotOn(filter.Date) {
		return false
	}

	if !filter.AnyInsurance() && !doctor.AcceptsInsurance(filter.Insurance) {
		return false
	}

	return true
}

// TotalPages is never less than one, even for an empty list.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = config.DefaultPageSize
	}
	pages := (count + pageSize - 1) / pageSize
	return max(pages, 1)
}

func ClampPage(page, totalPages int) int {
	return min(max(page, 1), max(totalPages, 1))
}

func NextPage(page, totalPages int) int {
	return ClampPage(page+1, totalPages)
}

func PreviousPage(page, totalPages int) int {
	return ClampPage(page-1, totalPages)
}

// Paginate cuts one page out of doctors. The requested page is clamped to
// the available range.
func Paginate(doctors []domain.Doctor, page, pageSize int) domain.DoctorPage {
	if pageSize < 1 {
		pageSize = config.DefaultPageSize
	}

	totalPages := TotalPages(len(doctors), pageSize)
	page = ClampPage(page, totalPages)

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(doctors))

	result := domain.DoctorPage{
		Doctors:    slices.Clone(doctors[start:end]),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalCount: len(doctors),
	}
	if result.Doctors == nil {
		result.Doctors = make([]domain.Doctor, 0)
	}
	if len(doctors) > 0 {
		result.From = start + 1
		result.To = end
	}

	return result
}

// GroupAvailability sorts slots by instant and buckets them by calendar day
// in loc. Days and slots within a day are ascending.
func GroupAvailability(slots []time.Time, loc *time.Location) []domain.DaySlots {
	groups := make([]domain.DaySlots, 0)

	for _, slot := range SortSlots(slots) {
		day := utils.DayKey(slot, loc)

		last := len(groups) - 1
		if last < 0 || !groups[last].Date.Date.Equal(day) {
			groups = append(groups, domain.DaySlots{
				Date:  json_types.Date{Date: day},
				Slots: make([]time.Time, 0, 1),
			})
			last++
		}
		groups[last].Slots = append(groups[last].Slots, slot)
	}

	return groups
}
