package avatar_service

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/suchimauz/doctor-booking-directory/internal/adapters/out/logger"
	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/in"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
)

const baseURL = "https://ui-avatars.com/api/"

type MockAvatarCache struct {
	mock.Mock
}

func (m *MockAvatarCache) GetAvatarURL(ctx context.Context, key out.AvatarCacheKey) (string, bool) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1)
}

func (m *MockAvatarCache) StoreAvatarURL(ctx context.Context, key out.AvatarCacheKey, url string) {
	m.Called(ctx, key, url)
}

func (m *MockAvatarCache) InvalidateAllAvatarCache(ctx context.Context) {
	m.Called(ctx)
}

func newTestService(cache out.AvatarCachePort) *AvatarService {
	return NewAvatarService(baseURL, cache, logger.NewLogger(io.Discard, "UTC"))
}

func TestInitialsAvatar_DefaultOptions(t *testing.T) {
	service := newTestService(nil)

	avatarURL := service.InitialsAvatar(context.Background(), "John Doe", in.AvatarOptions{})

	assert.Equal(t, baseURL+"?name=John%20Doe&background=random&color=fff&size=256", avatarURL)
}

func TestInitialsAvatar_CustomOptions(t *testing.T) {
	service := newTestService(nil)

	avatarURL := service.InitialsAvatar(context.Background(), "Zoë & Co", in.AvatarOptions{
		Background: "0d8abc",
		Color:      "000",
		Size:       64,
	})

	assert.Equal(t, baseURL+"?name=Zo%C3%AB%20%26%20Co&background=0d8abc&color=000&size=64", avatarURL)
}

func TestInitialsAvatar_KeepsURIComponentMarks(t *testing.T) {
	service := newTestService(nil)

	avatarURL := service.InitialsAvatar(context.Background(), "Dr. O'Reed (Jr)! *", in.AvatarOptions{})

	assert.Equal(t, baseURL+"?name=Dr.%20O'Reed%20(Jr)!%20*&background=random&color=fff&size=256", avatarURL)
}

func TestInitialsAvatar_EmptyName(t *testing.T) {
	service := newTestService(nil)

	for _, name := range []string{"", "   "} {
		avatarURL := service.InitialsAvatar(context.Background(), name, in.AvatarOptions{})
		assert.Equal(t, baseURL+"?name=?&background=868e96&color=fff", avatarURL)
	}
}

func TestInitialsAvatar_CacheHit(t *testing.T) {
	ctx := context.Background()
	cache := new(MockAvatarCache)
	service := newTestService(cache)

	key := out.AvatarCacheKey{Name: "John Doe", Background: "random", Color: "fff", Size: 256}
	cache.On("GetAvatarURL", ctx, key).Return("cached-url", true).Once()

	assert.Equal(t, "cached-url", service.InitialsAvatar(ctx, "John Doe", in.AvatarOptions{}))

	cache.AssertExpectations(t)
	cache.AssertNotCalled(t, "StoreAvatarURL", mock.Anything, mock.Anything, mock.Anything)
}

func TestInitialsAvatar_CacheMissStores(t *testing.T) {
	ctx := context.Background()
	cache := new(MockAvatarCache)
	service := newTestService(cache)

	key := out.AvatarCacheKey{Name: "Ann", Background: "random", Color: "fff", Size: 256}
	expected := baseURL + "?name=Ann&background=random&color=fff&size=256"
	cache.On("GetAvatarURL", ctx, key).Return("", false).Once()
	cache.On("StoreAvatarURL", ctx, key, expected).Once()

	assert.Equal(t, expected, service.InitialsAvatar(ctx, "Ann", in.AvatarOptions{}))

	cache.AssertExpectations(t)
}

func TestInitialsAvatar_CacheDisabledPerCall(t *testing.T) {
	cache := new(MockAvatarCache)
	service := newTestService(cache)
	useCache := false

	service.InitialsAvatar(context.Background(), "Ann", in.AvatarOptions{UseCache: &useCache})

	cache.AssertNotCalled(t, "GetAvatarURL", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "StoreAvatarURL", mock.Anything, mock.Anything, mock.Anything)
}

func TestDoctorAvatar(t *testing.T) {
	service := newTestService(nil)
	ctx := context.Background()

	withPhoto := domain.Doctor{Name: "Dr. Ann Lee", Photo: "https://cdn.example.com/ann.jpg"}
	assert.Equal(t, withPhoto.Photo, service.DoctorAvatar(ctx, withPhoto))

	withoutPhoto := domain.Doctor{Name: "Dr. Ann Lee"}
	assert.Equal(t, baseURL+"?name=Dr.%20Ann%20Lee&background=random&color=fff&size=256", service.DoctorAvatar(ctx, withoutPhoto))
}

func TestInitials(t *testing.T) {
	service := newTestService(nil)

	assert.Equal(t, "DSJ", service.Initials("Dr. Sarah Johnson"))
	assert.Equal(t, "AM", service.Initials("anna  maria"))
	assert.Equal(t, "ÉL", service.Initials("élodie laurent"))
	assert.Equal(t, "", service.Initials(""))
}

func TestStringToColor(t *testing.T) {
	service := newTestService(nil)

	assert.Equal(t, FallbackColor, service.StringToColor(""))
	assert.Equal(t, "410000", service.StringToColor("A"))
	assert.Equal(t, "210800", service.StringToColor("AB"))

	color := service.StringToColor("Dr. Sarah Johnson")
	assert.Len(t, color, 6)
	assert.Equal(t, color, service.StringToColor("Dr. Sarah Johnson"))
	assert.Regexp(t, "^[0-9a-f]{6}$", color)
}
