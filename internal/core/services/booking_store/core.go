package booking_store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/in"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
)

type subscription struct {
	id         int
	subscriber in.StoreSubscriber
}

// BookingStore owns doctors, appointments and UI flags. All mutation goes
// through its action methods; reads return deep copies.
//
// Subscribers are called synchronously after each committed action, in commit
// order. A subscriber must not call store actions itself.
type BookingStore struct {
	mu           sync.RWMutex
	doctors      []domain.Doctor
	appointments []domain.Appointment
	ui           domain.UIState
	specialties  []string
	plans        []string

	notifyMu      sync.Mutex
	subMu         sync.Mutex
	subscriptions []subscription
	nextSubID     int

	loadDelay   time.Duration
	initialized atomic.Bool
	loaded      chan struct{}

	now    func() time.Time
	newID  func() (uuid.UUID, error)
	logger out.LoggerPort
}

func NewBookingStore(doctors []domain.Doctor, loadDelay time.Duration, logger out.LoggerPort) *BookingStore {
	seeded := make([]domain.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		doctor = doctor.Clone()
		doctor.Availability = dedupeSlots(SortSlots(doctor.Availability))
		seeded = append(seeded, doctor)
	}

	return &BookingStore{
		doctors:      seeded,
		appointments: make([]domain.Appointment, 0),
		ui: domain.UIState{
			Loading:   true,
			ActiveTab: domain.TabDoctors,
		},
		specialties: collectSpecialties(seeded),
		plans:       collectInsurancePlans(seeded),
		loadDelay:   loadDelay,
		loaded:      make(chan struct{}),
		now:         time.Now,
		newID:       uuid.NewV7,
		logger:      logger.WithModule("BookingStore"),
	}
}

func (s *BookingStore) Doctors() []domain.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneDoctors(s.doctors)
}

func (s *BookingStore) Doctor(doctorID int) (domain.Doctor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := s.doctorIndexLocked(doctorID)
	if index < 0 {
		return domain.Doctor{}, false
	}
	return s.doctors[index].Clone(), true
}

func (s *BookingStore) Appointments() []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAppointments(s.appointments)
}

func (s *BookingStore) UIState() domain.UIState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ui.Clone()
}

func (s *BookingStore) Snapshot() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// Specialties returns "All" followed by every specialty in first-seen order.
func (s *BookingStore) Specialties() []string {
	return append([]string(nil), s.specialties...)
}

func (s *BookingStore) InsurancePlans() []string {
	return append([]string(nil), s.plans...)
}

// Loaded закрывается, когда загрузка завершена
func (s *BookingStore) Loaded() <-chan struct{} {
	return s.loaded
}

func (s *BookingStore) Subscribe(subscriber in.StoreSubscriber) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.subscriptions = append(s.subscriptions, subscription{id: id, subscriber: subscriber})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()

			for i, sub := range s.subscriptions {
				if sub.id == id {
					s.subscriptions = append(s.subscriptions[:i:i], s.subscriptions[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *BookingStore) subscribers() []in.StoreSubscriber {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	subscribers := make([]in.StoreSubscriber, 0, len(s.subscriptions))
	for _, sub := range s.subscriptions {
		subscribers = append(subscribers, sub.subscriber)
	}
	return subscribers
}

// commit применяет mutate под блокировкой и уведомляет подписчиков.
// Ошибка из mutate откатывает уведомление, состояние mutate не трогает.
func (s *BookingStore) commit(ctx context.Context, action domain.StoreAction, mutate func() (*domain.Appointment, error)) error {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	subscribers := s.subscribers()

	s.mu.Lock()
	appointment, err := mutate()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	event := domain.StoreEvent{
		Action:      action,
		Appointment: appointment,
		OccurredAt:  s.now(),
	}
	if len(subscribers) > 0 {
		event.State = s.snapshotLocked()
	}
	s.mu.Unlock()

	for _, subscriber := range subscribers {
		subscriber(ctx, event)
	}

	return nil
}

func (s *BookingStore) snapshotLocked() domain.State {
	return domain.State{
		Doctors:      cloneDoctors(s.doctors),
		Appointments: cloneAppointments(s.appointments),
		UI:           s.ui.Clone(),
	}
}

func (s *BookingStore) doctorIndexLocked(doctorID int) int {
	for i := range s.doctors {
		if s.doctors[i].ID == doctorID {
			return i
		}
	}
	return -1
}

func (s *BookingStore) appointmentIndexLocked(appointmentID uuid.UUID) int {
	for i := range s.appointments {
		if s.appointments[i].ID == appointmentID {
			return i
		}
	}
	return -1
}

func isNoop(err error) bool {
	return errors.Is(err, errNoop)
}

func cloneDoctors(doctors []domain.Doctor) []domain.Doctor {
	cloned := make([]domain.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		cloned = append(cloned, doctor.Clone())
	}
	return cloned
}

func cloneAppointments(appointments []domain.Appointment) []domain.Appointment {
	cloned := make([]domain.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		cloned = append(cloned, appointment.Clone())
	}
	return cloned
}

func collectSpecialties(doctors []domain.Doctor) []string {
	specialties := []string{domain.SpecialtyAll}
	seen := make(map[string]struct{})
	for _, doctor := range doctors {
		if doctor.Specialty == "" {
			continue
		}
		if _, ok := seen[doctor.Specialty]; ok {
			continue
		}
		seen[doctor.Specialty] = struct{}{}
		specialties = append(specialties, doctor.Specialty)
	}
	return specialties
}

func collectInsurancePlans(doctors []domain.Doctor) []string {
	plans := make([]string, 0)
	seen := make(map[string]struct{})
	for _, doctor := range doctors {
		for _, plan := range doctor.Insurance {
			if _, ok := seen[plan]; ok {
				continue
			}
			seen[plan] = struct{}{}
			plans = append(plans, plan)
		}
	}
	return plans
}

// dedupeSlots ожидает отсортированный слайс
func dedupeSlots(sorted []time.Time) []time.Time {
	result := make([]time.Time, 0, len(sorted))
	for _, slot := range sorted {
		if len(result) > 0 && result[len(result)-1].Equal(slot) {
			continue
		}
		result = append(result, slot)
	}
	return result
}
