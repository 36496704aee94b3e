package in

import (
	"time"

	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
)

type DirectoryUseCase interface {
	Criteria() domain.DoctorFilter
	SetSpecialties(specialties []string) domain.DoctorPage
	SetDate(date string) domain.DoctorPage
	NextPage() domain.DoctorPage
	PreviousPage() domain.DoctorPage
	View() domain.DoctorPage
	AvailabilityByDay(doctorID int) ([]domain.DaySlots, bool)
	Location() *time.Location
}
