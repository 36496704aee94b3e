package in

import (
	"context"

	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
)

type AvatarOptions struct {
	Background string
	Color      string
	Size       int
	// nil означает true
	UseCache *bool
}

type AvatarUseCase interface {
	InitialsAvatar(ctx context.Context, name string, opts AvatarOptions) string
	DoctorAvatar(ctx context.Context, doctor domain.Doctor) string
	Initials(name string) string
	StringToColor(str string) string
}
