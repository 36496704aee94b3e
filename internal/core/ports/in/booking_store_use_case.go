package in

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
)

type StoreSubscriber func(ctx context.Context, event domain.StoreEvent)

type BookingStoreUseCase interface {
	// Чтение состояния
	Doctors() []domain.Doctor
	Doctor(doctorID int) (domain.Doctor, bool)
	Appointments() []domain.Appointment
	UIState() domain.UIState
	Snapshot() domain.State
	Specialties() []string
	InsurancePlans() []string

	// Действия
	InitializeApp(ctx context.Context)
	SetInsuranceFilter(ctx context.Context, plan string)
	SetActiveTab(ctx context.Context, tab domain.Tab)
	BookDoctor(ctx context.Context, doctor domain.Doctor)
	CloseModal(ctx context.Context)
	ConfirmAppointment(ctx context.Context, doctor domain.Doctor, slot time.Time) (domain.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) bool

	Subscribe(subscriber StoreSubscriber) (unsubscribe func())
}
