package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suchimauz/doctor-booking-directory/internal/config"
	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
	"github.com/suchimauz/doctor-booking-directory/internal/core/json_types"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/in"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
	"github.com/suchimauz/doctor-booking-directory/internal/core/services/booking_store"
)

type BookingController struct {
	store     in.BookingStoreUseCase
	directory in.DirectoryUseCase
	avatars   in.AvatarUseCase
	cfg       *config.Config
	logger    out.LoggerPort
}

func NewBookingController(
	store in.BookingStoreUseCase,
	directory in.DirectoryUseCase,
	avatars in.AvatarUseCase,
	cfg *config.Config,
	logger out.LoggerPort,
) *BookingController {
	return &BookingController{
		store:     store,
		directory: directory,
		avatars:   avatars,
		cfg:       cfg,
		logger:    logger,
	}
}

func (c *BookingController) RegisterRoutes(router *gin.Engine) {
	router.Use(requestID(), requestLogger(c.logger))

	api := router.Group("/api/v1")
	{
		api.GET("/health", c.health)
		api.GET("/state", c.getState)
	}

	ready := api.Group("")
	ready.Use(c.loadingGuard())
	{
		ready.GET("/doctors", c.listDoctors)
		ready.GET("/doctors/:doctorId", c.getDoctor)
		ready.GET("/doctors/:doctorId/availability", c.getDoctorAvailability)
		ready.POST("/doctors/:doctorId/book", c.bookDoctor)
		ready.POST("/booking/close", c.closeBooking)

		ready.GET("/appointments", c.listAppointments)
		ready.POST("/appointments", c.createAppointment)
		ready.DELETE("/appointments/:appointmentId", c.deleteAppointment)

		ready.GET("/specialties", c.listSpecialties)
		ready.GET("/directory", c.getDirectory)
		ready.PUT("/directory/filters", c.updateDirectoryFilters)
		ready.POST("/directory/next", c.nextPage)
		ready.POST("/directory/previous", c.previousPage)

		ready.PUT("/filters/insurance", c.setInsuranceFilter)
		ready.PUT("/tab", c.setActiveTab)
	}
}

type DoctorResponse struct {
	domain.Doctor
	AvatarURL string `json:"avatarUrl"`
	Initials  string `json:"initials"`
}

type AppointmentResponse struct {
	domain.Appointment
	AvatarURL string `json:"avatarUrl"`
}

type DirectoryResponse struct {
	domain.DoctorPage
	Doctors  []DoctorResponse    `json:"doctors"`
	Criteria domain.DoctorFilter `json:"criteria"`
}

type DirectoryFiltersRequest struct {
	Specialties []string `json:"specialties"`
	Date        string   `json:"date"`
}

type InsuranceFilterRequest struct {
	Insurance string `json:"insurance"`
}

type ActiveTabRequest struct {
	Tab domain.Tab `json:"tab"`
}

type CreateAppointmentRequest struct {
	DoctorID int                  `json:"doctorId" binding:"required"`
	Time     *json_types.DateTime `json:"time" binding:"required"`
}

func (c *BookingController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "version": c.cfg.App.Version})
}

func (c *BookingController) getState(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"ui":                c.store.UIState(),
		"appointmentsCount": len(c.store.Appointments()),
	})
}

func (c *BookingController) listDoctors(ctx *gin.Context) {
	doctors := c.store.Doctors()
	ctx.JSON(http.StatusOK, gin.H{"doctors": c.doctorResponses(ctx, doctors)})
}

func (c *BookingController) getDoctor(ctx *gin.Context) {
	doctor, ok := c.doctorFromParam(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, c.doctorResponse(ctx, doctor))
}

func (c *BookingController) getDoctorAvailability(ctx *gin.Context) {
	doctorID, ok := parseDoctorID(ctx)
	if !ok {
		return
	}

	days, exists := c.directory.AvailabilityByDay(doctorID)
	if !exists {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"doctorId": doctorID,
		"timezone": c.directory.Location().String(),
		"days":     days,
	})
}

func (c *BookingController) bookDoctor(ctx *gin.Context) {
	doctor, ok := c.doctorFromParam(ctx)
	if !ok {
		return
	}

	c.store.BookDoctor(ctx.Request.Context(), doctor)

	days, _ := c.directory.AvailabilityByDay(doctor.ID)
	ctx.JSON(http.StatusOK, gin.H{
		"ui":   c.store.UIState(),
		"days": days,
	})
}

func (c *BookingController) closeBooking(ctx *gin.Context) {
	c.store.CloseModal(ctx.Request.Context())
	ctx.JSON(http.StatusOK, gin.H{"ui": c.store.UIState()})
}

func (c *BookingController) listAppointments(ctx *gin.Context) {
	appointments := c.store.Appointments()

	response := make([]AppointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		response = append(response, AppointmentResponse{
			Appointment: appointment,
			AvatarURL:   c.avatars.DoctorAvatar(ctx.Request.Context(), appointment.Doctor),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"appointments": response})
}

func (c *BookingController) createAppointment(ctx *gin.Context) {
	var req CreateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, exists := c.store.Doctor(req.DoctorID)
	if !exists {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	appointment, err := c.store.ConfirmAppointment(ctx.Request.Context(), doctor, req.Time.Date)
	switch {
	case errors.Is(err, booking_store.ErrSlotUnavailable):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, booking_store.ErrDoctorNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, AppointmentResponse{
		Appointment: appointment,
		AvatarURL:   c.avatars.DoctorAvatar(ctx.Request.Context(), appointment.Doctor),
	})
}

func (c *BookingController) deleteAppointment(ctx *gin.Context) {
	appointmentID, err := uuid.Parse(ctx.Param("appointmentId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID format"})
		return
	}

	// Неизвестный id тоже 204
	c.store.DeleteAppointment(ctx.Request.Context(), appointmentID)
	ctx.Status(http.StatusNoContent)
}

func (c *BookingController) listSpecialties(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"specialties": c.store.Specialties(),
		"insurance":   c.store.InsurancePlans(),
	})
}

func (c *BookingController) getDirectory(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.directoryResponse(ctx, c.directory.View()))
}

func (c *BookingController) updateDirectoryFilters(ctx *gin.Context) {
	var req DirectoryFiltersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.directory.SetSpecialties(req.Specialties)
	page := c.directory.SetDate(req.Date)

	ctx.JSON(http.StatusOK, c.directoryResponse(ctx, page))
}

func (c *BookingController) nextPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.directoryResponse(ctx, c.directory.NextPage()))
}

func (c *BookingController) previousPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.directoryResponse(ctx, c.directory.PreviousPage()))
}

func (c *BookingController) setInsuranceFilter(ctx *gin.Context) {
	var req InsuranceFilterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.store.SetInsuranceFilter(ctx.Request.Context(), req.Insurance)

	ctx.JSON(http.StatusOK, c.directoryResponse(ctx, c.directory.View()))
}

func (c *BookingController) setActiveTab(ctx *gin.Context) {
	var req ActiveTabRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.store.SetActiveTab(ctx.Request.Context(), req.Tab)

	ctx.JSON(http.StatusOK, gin.H{"ui": c.store.UIState()})
}

func (c *BookingController) doctorFromParam(ctx *gin.Context) (domain.Doctor, bool) {
	doctorID, ok := parseDoctorID(ctx)
	if !ok {
		return domain.Doctor{}, false
	}

	doctor, exists := c.store.Doctor(doctorID)
	if !exists {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return domain.Doctor{}, false
	}

	return doctor, true
}

func parseDoctorID(ctx *gin.Context) (int, bool) {
	doctorID, err := strconv.Atoi(ctx.Param("doctorId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID format"})
		return 0, false
	}
	return doctorID, true
}

func (c *BookingController) doctorResponse(ctx *gin.Context, doctor domain.Doctor) DoctorResponse {
	return DoctorResponse{
		Doctor:    doctor,
		AvatarURL: c.avatars.DoctorAvatar(ctx.Request.Context(), doctor),
		Initials:  c.avatars.Initials(doctor.Name),
	}
}

func (c *BookingController) doctorResponses(ctx *gin.Context, doctors []domain.Doctor) []DoctorResponse {
	response := make([]DoctorResponse, 0, len(doctors))
	for _, doctor := range doctors {
		response = append(response, c.doctorResponse(ctx, doctor))
	}
	return response
}

func (c *BookingController) directoryResponse(ctx *gin.Context, page domain.DoctorPage) DirectoryResponse {
	return DirectoryResponse{
		DoctorPage: page,
		Doctors:    c.doctorResponses(ctx, page.Doctors),
		Criteria:   c.directory.Criteria(),
	}
}
