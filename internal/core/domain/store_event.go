package domain

import "time"

type StoreAction string

const (
	StoreActionInitialize           StoreAction = "initialize"
	StoreActionLoaded               StoreAction = "loaded"
	StoreActionInsuranceFilter      StoreAction = "insurance_filter"
	StoreActionActiveTab            StoreAction = "active_tab"
	StoreActionBookDoctor           StoreAction = "book_doctor"
	StoreActionCloseModal           StoreAction = "close_modal"
	StoreActionAppointmentConfirmed StoreAction = "appointment_confirmed"
	StoreActionAppointmentDeleted   StoreAction = "appointment_deleted"
)

// Resource группирует действия для routing key
func (a StoreAction) Resource() string {
	switch a {
	case StoreActionAppointmentConfirmed, StoreActionAppointmentDeleted:
		return "appointment"
	case StoreActionBookDoctor:
		return "doctor"
	default:
		return "ui"
	}
}

type StoreEvent struct {
	Action      StoreAction  `json:"action"`
	Appointment *Appointment `json:"appointment,omitempty"`
	State       State        `json:"state"`
	OccurredAt  time.Time    `json:"occurredAt"`
}
