package booking_store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
)

// SetInsuranceFilter accepts any value; "" and "all" disable the filter.
func (s *BookingStore) SetInsuranceFilter(ctx context.Context, plan string) {
	_ = s.commit(ctx, domain.StoreActionInsuranceFilter, func() (*domain.Appointment, error) {
		s.ui.InsuranceFilter = plan
		return nil, nil
	})

	s.logger.Debug("store.insurance_filter.set", out.LogFields{
		"insurance": plan,
	})
}

func (s *BookingStore) SetActiveTab(ctx context.Context, tab domain.Tab) {
	_ = s.commit(ctx, domain.StoreActionActiveTab, func() (*domain.Appointment, error) {
		s.ui.ActiveTab = tab
		return nil, nil
	})
}

// BookDoctor открывает диалог записи, доступность врача не меняется
func (s *BookingStore) BookDoctor(ctx context.Context, doctor domain.Doctor) {
	selected := doctor.Clone()
	_ = s.commit(ctx, domain.StoreActionBookDoctor, func() (*domain.Appointment, error) {
		s.ui.SelectedDoctor = &selected
		s.ui.ShowModal = true
		return nil, nil
	})

	s.logger.Debug("store.booking.opened", out.LogFields{
		"doctorId": doctor.ID,
	})
}

func (s *BookingStore) CloseModal(ctx context.Context) {
	_ = s.commit(ctx, domain.StoreActionCloseModal, func() (*domain.Appointment, error) {
		s.ui.ShowModal = false
		s.ui.SelectedDoctor = nil
		return nil, nil
	})
}

// ConfirmAppointment books slot with doctor. The slot must still be open in
// the live directory entry, otherwise ErrSlotUnavailable is returned and no
// state changes.
func (s *BookingStore) ConfirmAppointment(ctx context.Context, doctor domain.Doctor, slot time.Time) (domain.Appointment, error) {
	var created domain.Appointment

	err := s.commit(ctx, domain.StoreActionAppointmentConfirmed, func() (*domain.Appointment, error) {
		index := s.doctorIndexLocked(doctor.ID)
		if index < 0 {
			return nil, fmt.Errorf("%w: id %d", ErrDoctorNotFound, doctor.ID)
		}

		live := &s.doctors[index]
		slotIndex := slices.IndexFunc(live.Availability, slot.Equal)
		if slotIndex < 0 {
			return nil, fmt.Errorf("%w: doctor %d at %s", ErrSlotUnavailable, doctor.ID, slot.Format(time.RFC3339))
		}
		// В записи храним слот из расписания, а не значение вызывающего
		booked := live.Availability[slotIndex]

		id, err := s.newID()
		if err != nil {
			return nil, fmt.Errorf("store.appointment.id_failed: %w", err)
		}

		created = domain.Appointment{
			ID:     id,
			Doctor: live.Clone(),
			Time:   booked,
		}

		s.appointments = append(s.appointments, created)
		// Удаляем все совпадения, дубликатов быть не должно
		live.Availability = slices.DeleteFunc(live.Availability, booked.Equal)

		s.ui.ShowModal = false
		s.ui.SelectedDoctor = nil

		event := created.Clone()
		return &event, nil
	})
	if err != nil {
		s.logger.Warn("store.appointment.confirm_rejected", out.LogFields{
			"doctorId": doctor.ID,
			"time":     slot,
			"error":    err.Error(),
		})
		return domain.Appointment{}, err
	}

	s.logger.Info("store.appointment.confirmed", out.LogFields{
		"appointmentId": created.ID,
		"doctorId":      created.Doctor.ID,
		"time":          created.Time,
	})

	return created.Clone(), nil
}

// DeleteAppointment cancels the appointment and returns its slot to the
// doctor's availability. Unknown ids are a silent no-op and return false.
func (s *BookingStore) DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) bool {
	err := s.commit(ctx, domain.StoreActionAppointmentDeleted, func() (*domain.Appointment, error) {
		index := s.appointmentIndexLocked(appointmentID)
		if index < 0 {
			return nil, errNoop
		}

		deleted := s.appointments[index]
		s.appointments = slices.Delete(s.appointments, index, index+1)

		if doctorIndex := s.doctorIndexLocked(deleted.Doctor.ID); doctorIndex >= 0 {
			doctor := &s.doctors[doctorIndex]
			if !doctor.HasSlot(deleted.Time) {
				doctor.Availability = SortSlots(append(doctor.Availability, deleted.Time))
			}
		}

		event := deleted.Clone()
		return &event, nil
	})
	if isNoop(err) {
		s.logger.Debug("store.appointment.delete_not_found", out.LogFields{
			"appointmentId": appointmentID,
		})
		return false
	}

	s.logger.Info("store.appointment.deleted", out.LogFields{
		"appointmentId": appointmentID,
	})

	return true
}
