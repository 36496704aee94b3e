package avatar_service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/in"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
)

const (
	DefaultBackground = "random"
	DefaultColor      = "fff"
	DefaultSize       = 256
	FallbackColor     = "868e96"
)

type AvatarService struct {
	baseURL   string
	cachePort out.AvatarCachePort
	logger    out.LoggerPort
}

// NewAvatarService builds initials avatar URLs on top of baseURL.
// cachePort may be nil, then nothing is cached.
func NewAvatarService(baseURL string, cachePort out.AvatarCachePort, logger out.LoggerPort) *AvatarService {
	return &AvatarService{
		baseURL:   baseURL,
		cachePort: cachePort,
		logger:    logger.WithModule("AvatarService"),
	}
}

func (s *AvatarService) InitialsAvatar(ctx context.Context, name string, opts in.AvatarOptions) string {
	if strings.TrimSpace(name) == "" {
		s.logger.Warn("avatar.initials.invalid_name", out.LogFields{
			"name": name,
		})
		return fmt.Sprintf("%s?name=?&background=%s&color=%s", s.baseURL, FallbackColor, DefaultColor)
	}

	opts = withDefaults(opts)
	useCache := s.cachePort != nil && (opts.UseCache == nil || *opts.UseCache)

	key := out.AvatarCacheKey{
		Name:       name,
		Background: opts.Background,
		Color:      opts.Color,
		Size:       opts.Size,
	}

	if useCache {
		if avatarURL, exists := s.cachePort.GetAvatarURL(ctx, key); exists {
			return avatarURL
		}
	}

	avatarURL := fmt.Sprintf("%s?name=%s&background=%s&color=%s&size=%d",
		s.baseURL, encodeURIComponent(name), url.QueryEscape(opts.Background), url.QueryEscape(opts.Color), opts.Size)

	if useCache {
		s.cachePort.StoreAvatarURL(ctx, key, avatarURL)
	}

	return avatarURL
}

// DoctorAvatar отдает фото врача, а без фото аватар с инициалами
func (s *AvatarService) DoctorAvatar(ctx context.Context, doctor domain.Doctor) string {
	if doctor.HasPhoto() {
		return doctor.Photo
	}
	return s.InitialsAvatar(ctx, doctor.Name, in.AvatarOptions{})
}

// Initials takes the first letter of every space separated part.
func (s *AvatarService) Initials(name string) string {
	var initials strings.Builder
	for _, part := range strings.Split(name, " ") {
		r, size := utf8.DecodeRuneInString(part)
		if size == 0 || r == utf8.RuneError {
			continue
		}
		initials.WriteRune(unicode.ToUpper(r))
	}
	return initials.String()
}

// StringToColor hashes str into a stable six digit hex color without '#'.
func (s *AvatarService) StringToColor(str string) string {
	if str == "" {
		return FallbackColor
	}

	var hash int32
	for _, unit := range utf16.Encode([]rune(str)) {
		hash = int32(unit) + ((hash << 5) - hash)
	}

	var color strings.Builder
	for i := 0; i < 3; i++ {
		value := (hash >> (i * 8)) & 0xFF
		fmt.Fprintf(&color, "%02x", value)
	}

	return color.String()
}

func withDefaults(opts in.AvatarOptions) in.AvatarOptions {
	if opts.Background == "" {
		opts.Background = DefaultBackground
	}
	if opts.Color == "" {
		opts.Color = DefaultColor
	}
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	return opts
}

// QueryEscape экранирует больше символов, чем encodeURIComponent
var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%21", "!",
	"%2A", "*",
)

func encodeURIComponent(str string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(str))
}
