package out

import (
	"context"

	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
)

// DoctorSourcePort отдает начальный список врачей
type DoctorSourcePort interface {
	LoadDoctors(ctx context.Context) ([]domain.Doctor, error)
}
