package domain

import (
	"time"

	"github.com/google/uuid"
)

// Appointment holds a snapshot of the doctor taken at booking time.
// Doctor.ID always refers to the live directory entry.
type Appointment struct {
	ID     uuid.UUID `json:"id"`
	Doctor Doctor    `json:"doctor"`
	Time   time.Time `json:"time"`
}

func (a Appointment) Clone() Appointment {
	a.Doctor = a.Doctor.Clone()
	return a
}
