package out

import (
	"context"

	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
)

type EventPublisherPort interface {
	Publish(ctx context.Context, event domain.StoreEvent) error
}
