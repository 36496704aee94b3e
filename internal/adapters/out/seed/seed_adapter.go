package seed

import (
	"context"
	"time"

	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
	"github.com/suchimauz/doctor-booking-directory/internal/utils"
)

// slotTemplate is a slot relative to the start of the current day.
type slotTemplate struct {
	DayOffset int
	Hour      int
	Minute    int
}

type doctorRecord struct {
	doctor domain.Doctor
	slots  []slotTemplate
}

var _ out.DoctorSourcePort = (*SeedAdapter)(nil)

type SeedAdapter struct {
	location *time.Location
	now      func() time.Time
	logger   out.LoggerPort
}

func NewSeedAdapter(location *time.Location, logger out.LoggerPort) *SeedAdapter {
	if location == nil {
		location = time.UTC
	}
	return &SeedAdapter{
		location: location,
		now:      time.Now,
		logger:   logger.WithModule("SeedAdapter"),
	}
}

// LoadDoctors materializes the seed records. Slots already in the past are
// dropped so every availability entry is bookable.
func (a *SeedAdapter) LoadDoctors(ctx context.Context) ([]domain.Doctor, error) {
	now := a.now().In(a.location)
	today := utils.StartCurrentDay(now)

	doctors := make([]domain.Doctor, 0, len(seedDoctors))
	slotsCount := 0

	for _, record := range seedDoctors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doctor := record.doctor.Clone()
		doctor.Availability = make([]time.Time, 0, len(record.slots))
		for _, tpl := range record.slots {
			day := today.AddDate(0, 0, tpl.DayOffset)
			slot := time.Date(day.Year(), day.Month(), day.Day(), tpl.Hour, tpl.Minute, 0, 0, a.location)
			if !slot.After(now) {
				continue
			}
			doctor.Availability = append(doctor.Availability, slot)
		}
		slotsCount += len(doctor.Availability)
		doctors = append(doctors, doctor)
	}

	a.logger.Info("seed.doctors.loaded", out.LogFields{
		"doctorsCount": len(doctors),
		"slotsCount":   slotsCount,
	})

	return doctors, nil
}
