package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
	"github.com/suchimauz/doctor-booking-directory/internal/core/json_types"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
	"github.com/suchimauz/doctor-booking-directory/internal/core/services/booking_store"
)

type StoreAppointmentCommand struct {
	DoctorID int                  `json:"doctorId"`
	Time     *json_types.DateTime `json:"time"`
}

type InvalidateAppointmentCommand struct {
	ID uuid.UUID `json:"id"`
}

type StoreInsuranceCommand struct {
	Insurance string `json:"insurance"`
}

func (l *CommandListener) processMessage(ctx context.Context, routingKey string, body []byte) error {
	key, err := ParseCommandRoutingKey(routingKey)
	if err != nil {
		return err
	}

	if key.Receiver != Receiver {
		return fmt.Errorf("%w: unexpected receiver %q", ErrMalformedCommand, key.Receiver)
	}

	switch {
	case key.Resource == CommandResourceAppointment && key.Action == CommandActionStore:
		return l.storeAppointment(ctx, body)
	case key.Resource == CommandResourceAppointment && key.Action == CommandActionInvalidate:
		return l.invalidateAppointment(ctx, body)
	case key.Resource == CommandResourceInsurance && key.Action == CommandActionStore:
		return l.storeInsurance(ctx, body)
	}

	return fmt.Errorf("%w: unsupported command %s.%s", ErrMalformedCommand, key.Resource, key.Action)
}

func (l *CommandListener) storeAppointment(ctx context.Context, body []byte) error {
	var command StoreAppointmentCommand
	if err := json.Unmarshal(body, &command); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCommand, err)
	}
	if command.DoctorID == 0 || command.Time == nil {
		return fmt.Errorf("%w: doctorId and time are required", ErrMalformedCommand)
	}

	doctor, ok := l.store.Doctor(command.DoctorID)
	if !ok {
		return fmt.Errorf("%w: id %d", booking_store.ErrDoctorNotFound, command.DoctorID)
	}

	appointment, err := l.store.ConfirmAppointment(ctx, doctor, command.Time.Date)
	if err != nil {
		return err
	}

	l.logger.Info("command.appointment.stored", out.LogFields{
		"appointmentId": appointment.ID,
		"doctorId":      doctor.ID,
	})
	return nil
}

func (l *CommandListener) invalidateAppointment(ctx context.Context, body []byte) error {
	var command InvalidateAppointmentCommand
	if err := json.Unmarshal(body, &command); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCommand, err)
	}
	if command.ID == uuid.Nil {
		return fmt.Errorf("%w: id is required", ErrMalformedCommand)
	}

	deleted := l.store.DeleteAppointment(ctx, command.ID)

	l.logger.Info("command.appointment.invalidated", out.LogFields{
		"appointmentId": command.ID,
		"deleted":       deleted,
	})
	return nil
}

func (l *CommandListener) storeInsurance(ctx context.Context, body []byte) error {
	var command StoreInsuranceCommand
	if err := json.Unmarshal(body, &command); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCommand, err)
	}

	if command.Insurance == "" {
		command.Insurance = domain.InsuranceAll
	}
	l.store.SetInsuranceFilter(ctx, command.Insurance)

	return nil
}
