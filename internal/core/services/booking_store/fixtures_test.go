package booking_store

import (
	"fmt"
	"io"
	"time"

	"github.com/suchimauz/doctor-booking-directory/internal/adapters/out/logger"
	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
)

var baseDay = time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC)

func at(dayOffset, hour int) time.Time {
	return baseDay.AddDate(0, 0, dayOffset).Add(time.Duration(hour) * time.Hour)
}

func testLogger() out.LoggerPort {
	return logger.NewLogger(io.Discard, "UTC")
}

func testDoctors() []domain.Doctor {
	return []domain.Doctor{
		{
			ID:           1,
			Name:         "Dr. Alice Moore",
			Specialty:    "Cardiology",
			Location:     "Boston, MA",
			Rating:       4.9,
			Insurance:    []string{"Medicare", "Aetna"},
			Languages:    []string{"English"},
			Availability: []time.Time{at(1, 9), at(0, 10), at(0, 9), at(0, 9)},
		},
		{
			ID:           2,
			Name:         "Dr. Bob Stone",
			Specialty:    "Dermatology",
			Location:     "Denver, CO",
			Rating:       4.5,
			Insurance:    []string{"Cigna"},
			Languages:    []string{"English", "French"},
			Availability: []time.Time{at(0, 11)},
		},
		{
			ID:        3,
			Name:      "Dr. Carol White",
			Specialty: "Cardiology",
			Location:  "Austin, TX",
			Rating:    4.2,
			Insurance: []string{"Aetna"},
			Languages: []string{"Spanish"},
		},
	}
}

// manyDoctors чередует Cardiology и Dermatology
func manyDoctors(count int) []domain.Doctor {
	doctors := make([]domain.Doctor, 0, count)
	for i := 1; i <= count; i++ {
		specialty := "Cardiology"
		insurance := []string{"Aetna"}
		if i%2 == 0 {
			specialty = "Dermatology"
			insurance = []string{"Cigna"}
		}
		doctors = append(doctors, domain.Doctor{
			ID:           i,
			Name:         fmt.Sprintf("Dr. Test %d", i),
			Specialty:    specialty,
			Insurance:    insurance,
			Availability: []time.Time{at(i%3, 9)},
		})
	}
	return doctors
}

func newTestStore(doctors []domain.Doctor) *BookingStore {
	return NewBookingStore(doctors, 0, testLogger())
}

func doctorIDs(doctors []domain.Doctor) []int {
	ids := make([]int, 0, len(doctors))
	for _, doctor := range doctors {
		ids = append(ids, doctor.ID)
	}
	return ids
}
