package booking_store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/in"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
)

// Directory holds the browsing state of the doctor list: selected
// specialties, selected date and current page. Any criterion change,
// including the store's insurance filter, sends the page back to 1.
type Directory struct {
	store    in.BookingStoreUseCase
	pageSize int
	location *time.Location
	logger   out.LoggerPort

	mu          sync.Mutex
	specialties []string
	date        string
	insurance   string
	page        int

	unsubscribe func()
}

func NewDirectory(store in.BookingStoreUseCase, pageSize int, location *time.Location, logger out.LoggerPort) *Directory {
	if location == nil {
		location = time.UTC
	}

	d := &Directory{
		store:       store,
		pageSize:    pageSize,
		location:    location,
		logger:      logger.WithModule("Directory"),
		specialties: []string{domain.SpecialtyAll},
		date:        domain.DateAny,
		insurance:   store.UIState().InsuranceFilter,
		page:        1,
	}
	d.unsubscribe = store.Subscribe(d.onStoreEvent)

	return d
}

func (d *Directory) Close() {
	d.unsubscribe()
}

func (d *Directory) onStoreEvent(_ context.Context, event domain.StoreEvent) {
	if event.Action != domain.StoreActionInsuranceFilter {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if event.State.UI.InsuranceFilter == d.insurance {
		return
	}
	d.insurance = event.State.UI.InsuranceFilter
	d.page = 1

	d.logger.Debug("directory.page.reset", out.LogFields{
		"reason":    "insurance",
		"insurance": d.insurance,
	})
}

func (d *Directory) Criteria() domain.DoctorFilter {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.criteriaLocked()
}

func (d *Directory) criteriaLocked() domain.DoctorFilter {
	return domain.DoctorFilter{
		Specialties: slices.Clone(d.specialties),
		Date:        d.date,
		Insurance:   d.store.UIState().InsuranceFilter,
	}
}

// SetSpecialties replaces the specialty selection. An empty selection means "All".
func (d *Directory) SetSpecialties(specialties []string) domain.DoctorPage {
	if len(specialties) == 0 {
		specialties = []string{domain.SpecialtyAll}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if !slices.Equal(d.specialties, specialties) {
		d.specialties = slices.Clone(specialties)
		d.page = 1
	}

	return d.viewLocked()
}

// SetDate выбирает день ("any" или YYYY-MM-DD)
func (d *Directory) SetDate(date string) domain.DoctorPage {
	if date == "" {
		date = domain.DateAny
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.date != date {
		d.date = date
		d.page = 1
	}

	return d.viewLocked()
}

func (d *Directory) NextPage() domain.DoctorPage {
	d.mu.Lock()
	defer d.mu.Unlock()

	filtered := FilterDoctors(d.store.Doctors(), d.criteriaLocked())
	d.page = NextPage(d.page, TotalPages(len(filtered), d.pageSize))

	return Paginate(filtered, d.page, d.pageSize)
}

func (d *Directory) PreviousPage() domain.DoctorPage {
	d.mu.Lock()
	defer d.mu.Unlock()

	filtered := FilterDoctors(d.store.Doctors(), d.criteriaLocked())
	d.page = PreviousPage(d.page, TotalPages(len(filtered), d.pageSize))

	return Paginate(filtered, d.page, d.pageSize)
}

func (d *Directory) View() domain.DoctorPage {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.viewLocked()
}

func (d *Directory) viewLocked() domain.DoctorPage {
	filtered := FilterDoctors(d.store.Doctors(), d.criteriaLocked())
	page := Paginate(filtered, d.page, d.pageSize)
	// Страница могла уменьшиться после бронирования
	d.page = page.Page
	return page
}

func (d *Directory) AvailabilityByDay(doctorID int) ([]domain.DaySlots, bool) {
	doctor, ok := d.store.Doctor(doctorID)
	if !ok {
		return nil, false
	}
	return GroupAvailability(doctor.Availability, d.location), true
}

func (d *Directory) Location() *time.Location {
	return d.location
}
