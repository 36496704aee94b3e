package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/doctor-booking-directory/internal/adapters/out/logger"
	"github.com/suchimauz/doctor-booking-directory/internal/config"
	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
	"github.com/suchimauz/doctor-booking-directory/internal/core/services/avatar_service"
	"github.com/suchimauz/doctor-booking-directory/internal/core/services/booking_store"
)

var day = time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC)

func testDoctors() []domain.Doctor {
	return []domain.Doctor{
		{
			ID:           1,
			Name:         "Dr. Alice Moore",
			Specialty:    "Cardiology",
			Insurance:    []string{"Aetna"},
			Availability: []time.Time{day.Add(9 * time.Hour), day.Add(10 * time.Hour), day.Add(33 * time.Hour)},
		},
		{
			ID:           2,
			Name:         "Dr. Bob Stone",
			Specialty:    "Dermatology",
			Insurance:    []string{"Cigna"},
			Photo:        "https://cdn.example.com/bob.jpg",
			Availability: []time.Time{day.Add(11 * time.Hour)},
		},
		{
			ID:        3,
			Name:      "Dr. Carol White",
			Specialty: "Cardiology",
			Insurance: []string{"Aetna"},
		},
	}
}

type testServer struct {
	router *gin.Engine
	store  *booking_store.BookingStore
}

func newTestServer(t *testing.T, loaded bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewLogger(io.Discard, "UTC")
	store := booking_store.NewBookingStore(testDoctors(), 0, log)
	if loaded {
		store.InitializeApp(context.Background())
		select {
		case <-store.Loaded():
		case <-time.After(time.Second):
			t.Fatal("store did not finish loading")
		}
	}

	directory := booking_store.NewDirectory(store, 2, time.UTC, log)
	t.Cleanup(directory.Close)

	avatars := avatar_service.NewAvatarService("https://ui-avatars.com/api/", nil, log)

	cfg := &config.Config{}
	cfg.App.Version = "test"

	router := gin.New()
	NewBookingController(store, directory, avatars, cfg, log).RegisterRoutes(router)

	return &testServer{router: router, store: store}
}

func (s *testServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var value T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &value), rec.Body.String())
	return value
}

type directoryBody struct {
	Doctors    []DoctorResponse    `json:"doctors"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"totalPages"`
	TotalCount int                 `json:"totalCount"`
	From       int                 `json:"from"`
	To         int                 `json:"to"`
	Criteria   domain.DoctorFilter `json:"criteria"`
}

type uiBody struct {
	UI   domain.UIState    `json:"ui"`
	Days []json.RawMessage `json:"days"`
}

func TestLoadingGuard(t *testing.T) {
	server := newTestServer(t, false)

	rec := server.do(http.MethodGet, "/api/v1/doctors", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"loading"}`, rec.Body.String())

	rec = server.do(http.MethodGet, "/api/v1/state", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	state := decode[uiBody](t, rec)
	assert.True(t, state.UI.Loading)

	rec = server.do(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","version":"test"}`, rec.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	server := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))

	rec = server.do(http.MethodGet, "/api/v1/health", nil)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestListDoctors(t *testing.T) {
	server := newTestServer(t, true)

	rec := server.do(http.MethodGet, "/api/v1/doctors", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		Doctors []DoctorResponse `json:"doctors"`
	}](t, rec)
	require.Len(t, body.Doctors, 3)
	assert.Equal(t, "DAM", body.Doctors[0].Initials)
	assert.Contains(t, body.Doctors[0].AvatarURL, "name=Dr.%20Alice%20Moore")
	assert.Equal(t, "https://cdn.example.com/bob.jpg", body.Doctors[1].AvatarURL)
}

func TestGetDoctor(t *testing.T) {
	server := newTestServer(t, true)

	rec := server.do(http.MethodGet, "/api/v1/doctors/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	doctor := decode[DoctorResponse](t, rec)
	assert.Equal(t, "Dr. Bob Stone", doctor.Name)

	assert.Equal(t, http.StatusBadRequest, server.do(http.MethodGet, "/api/v1/doctors/abc", nil).Code)
	assert.Equal(t, http.StatusNotFound, server.do(http.MethodGet, "/api/v1/doctors/99", nil).Code)
}

func TestDoctorAvailability(t *testing.T) {
	server := newTestServer(t, true)

	rec := server.do(http.MethodGet, "/api/v1/doctors/1/availability", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		DoctorID int               `json:"doctorId"`
		Timezone string            `json:"timezone"`
		Days     []domain.DaySlots `json:"days"`
	}](t, rec)
	assert.Equal(t, 1, body.DoctorID)
	assert.Equal(t, "UTC", body.Timezone)
	require.Len(t, body.Days, 2)
	assert.Equal(t, "2030-03-04", body.Days[0].Date.String())
	assert.Len(t, body.Days[0].Slots, 2)
	assert.Equal(t, "2030-03-05", body.Days[1].Date.String())

	assert.Equal(t, http.StatusNotFound, server.do(http.MethodGet, "/api/v1/doctors/99/availability", nil).Code)
}

func TestCreateAndDeleteAppointment(t *testing.T) {
	server := newTestServer(t, true)

	request := gin.H{"doctorId": 1, "time": "2030-03-04T10:00:00Z"}

	rec := server.do(http.MethodPost, "/api/v1/appointments", request)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[AppointmentResponse](t, rec)
	assert.Equal(t, 1, created.Doctor.ID)
	assert.NotEmpty(t, created.AvatarURL)

	rec = server.do(http.MethodPost, "/api/v1/appointments", request)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = server.do(http.MethodGet, "/api/v1/appointments", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[struct {
		Appointments []AppointmentResponse `json:"appointments"`
	}](t, rec)
	require.Len(t, list.Appointments, 1)
	assert.Equal(t, created.ID, list.Appointments[0].ID)

	path := "/api/v1/appointments/" + created.ID.String()
	assert.Equal(t, http.StatusNoContent, server.do(http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNoContent, server.do(http.MethodDelete, path, nil).Code)
	assert.Empty(t, server.store.Appointments())

	alice, _ := server.store.Doctor(1)
	assert.Len(t, alice.Availability, 3)
}

func TestCreateAppointment_MinutePrecisionTime(t *testing.T) {
	server := newTestServer(t, true)

	rec := server.do(http.MethodPost, "/api/v1/appointments", gin.H{"doctorId": 2, "time": "2030-03-04T11:00Z"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[AppointmentResponse](t, rec)
	assert.True(t, created.Time.Equal(day.Add(11*time.Hour)))

	bob, _ := server.store.Doctor(2)
	assert.Empty(t, bob.Availability)
}

func TestCreateAppointment_Errors(t *testing.T) {
	server := newTestServer(t, true)

	rec := server.do(http.MethodPost, "/api/v1/appointments", gin.H{"doctorId": 99, "time": "2030-03-04T10:00:00Z"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = server.do(http.MethodPost, "/api/v1/appointments", gin.H{"doctorId": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = server.do(http.MethodPost, "/api/v1/appointments", gin.H{"doctorId": 1, "time": "tomorrow"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = server.do(http.MethodPost, "/api/v1/appointments", gin.H{"doctorId": 3, "time": "2030-03-04T10:00:00Z"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = server.do(http.MethodDelete, "/api/v1/appointments/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDirectoryRoutes(t *testing.T) {
	server := newTestServer(t, true)

	rec := server.do(http.MethodGet, "/api/v1/directory", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[directoryBody](t, rec)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Doctors, 2)

	rec = server.do(http.MethodPost, "/api/v1/directory/next", nil)
	page = decode[directoryBody](t, rec)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.From)
	assert.Equal(t, 3, page.To)

	rec = server.do(http.MethodPost, "/api/v1/directory/previous", nil)
	page = decode[directoryBody](t, rec)
	assert.Equal(t, 1, page.Page)

	rec = server.do(http.MethodPut, "/api/v1/directory/filters", gin.H{
		"specialties": []string{"Cardiology"},
		"date":        "2030-03-05",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	page = decode[directoryBody](t, rec)
	assert.Equal(t, 1, page.TotalCount)
	assert.Equal(t, 1, page.Doctors[0].ID)
	assert.Equal(t, []string{"Cardiology"}, page.Criteria.Specialties)
	assert.Equal(t, "2030-03-05", page.Criteria.Date)
}

func TestInsuranceFilterRoute(t *testing.T) {
	server := newTestServer(t, true)

	server.do(http.MethodPost, "/api/v1/directory/next", nil)

	rec := server.do(http.MethodPut, "/api/v1/filters/insurance", gin.H{"insurance": "Cigna"})
	require.Equal(t, http.StatusOK, rec.Code)

	page := decode[directoryBody](t, rec)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalCount)
	assert.Equal(t, "Cigna", page.Criteria.Insurance)
	assert.Equal(t, "Cigna", server.store.UIState().InsuranceFilter)
}

func TestSpecialtiesRoute(t *testing.T) {
	server := newTestServer(t, true)

	rec := server.do(http.MethodGet, "/api/v1/specialties", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"specialties":["All","Cardiology","Dermatology"],"insurance":["Aetna","Cigna"]}`, rec.Body.String())
}

func TestUIRoutes(t *testing.T) {
	server := newTestServer(t, true)

	rec := server.do(http.MethodPut, "/api/v1/tab", gin.H{"tab": "appointments"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.TabAppointments, decode[uiBody](t, rec).UI.ActiveTab)

	// Значение вкладки не проверяется
	rec = server.do(http.MethodPut, "/api/v1/tab", gin.H{"tab": "settings"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Tab("settings"), server.store.UIState().ActiveTab)

	rec = server.do(http.MethodPut, "/api/v1/tab", gin.H{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Tab(""), server.store.UIState().ActiveTab)

	assert.Equal(t, http.StatusBadRequest, server.do(http.MethodPut, "/api/v1/tab", "appointments").Code)

	rec = server.do(http.MethodPost, "/api/v1/doctors/1/book", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	booked := decode[uiBody](t, rec)
	assert.True(t, booked.UI.ShowModal)
	require.NotNil(t, booked.UI.SelectedDoctor)
	assert.Equal(t, 1, booked.UI.SelectedDoctor.ID)
	assert.Len(t, booked.Days, 2)

	rec = server.do(http.MethodPost, "/api/v1/booking/close", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	closed := decode[uiBody](t, rec)
	assert.False(t, closed.UI.ShowModal)
	assert.Nil(t, closed.UI.SelectedDoctor)
}
