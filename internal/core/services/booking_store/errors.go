package booking_store

import "errors"

var (
	ErrDoctorNotFound  = errors.New("booking_store: doctor not found")
	ErrSlotUnavailable = errors.New("booking_store: slot unavailable")

	// errNoop отменяет уведомление подписчиков, состояние не изменилось
	errNoop = errors.New("booking_store: no changes")
)
