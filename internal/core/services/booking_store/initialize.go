package booking_store

import (
	"context"
	"time"

	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
)

// InitializeApp sets loading and schedules a single one-shot timer that
// clears it after the load delay. Only the first call has any effect.
func (s *BookingStore) InitializeApp(ctx context.Context) {
	if !s.initialized.CompareAndSwap(false, true) {
		s.logger.Debug("store.initialize.already_started", out.LogFields{})
		return
	}

	_ = s.commit(ctx, domain.StoreActionInitialize, func() (*domain.Appointment, error) {
		s.ui.Loading = true
		return nil, nil
	})

	s.logger.Info("store.initialize.started", out.LogFields{
		"loadDelay": s.loadDelay.String(),
	})

	// Таймер не отменяется, контекст запроса сюда не передаем
	time.AfterFunc(s.loadDelay, s.finishLoading)
}

func (s *BookingStore) finishLoading() {
	_ = s.commit(context.Background(), domain.StoreActionLoaded, func() (*domain.Appointment, error) {
		s.ui.Loading = false
		return nil, nil
	})
	close(s.loaded)

	s.logger.Info("store.initialize.loaded", out.LogFields{
		"doctorsCount": len(s.Doctors()),
	})
}
