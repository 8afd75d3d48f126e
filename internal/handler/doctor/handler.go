package doctor

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/docspot/booking-api/internal/handler"
	"github.com/docspot/booking-api/internal/middleware"
	"github.com/docspot/booking-api/internal/model"
	apperrors "github.com/docspot/booking-api/pkg/errors"
)

type DoctorService interface {
	ListApproved(ctx context.Context) ([]*model.Doctor, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.Doctor, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateDoctorRequest) (*model.Doctor, error)
}

type AppointmentService interface {
	ListDoctorAppointments(ctx context.Context, userID uuid.UUID) ([]*model.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, userID, appointmentID uuid.UUID, status string) (*model.Appointment, error)
}

type Handler struct {
	doctors      DoctorService
	appointments AppointmentService
}

func NewHandler(doctors DoctorService, appointments AppointmentService) *Handler {
	return &Handler{
		doctors:      doctors,
		appointments: appointments,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMw *middleware.AuthMiddleware) {
	doctors := r.Group("/doctor")
	{
		doctors.GET("/all", h.ListApproved)
		doctors.GET("/:id", h.GetDoctor)

		authed := doctors.Group("", authMw.Authenticate())
		{
			authed.GET("/profile/me", h.GetProfile)
			authed.PUT("/profile/update", h.UpdateProfile)
			authed.GET("/appointments/all", h.GetAppointments)
			authed.PUT("/appointments/update-status", h.UpdateAppointmentStatus)
		}
	}
}

func (h *Handler) ListApproved(c *gin.Context) {
	doctors, err := h.doctors.ListApproved(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.Error(c, apperrors.BadRequest("invalid doctor ID"))
		return
	}

	doctor, err := h.doctors.Get(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	doctor, err := h.doctors.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req model.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	doctor, err := h.doctors.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}

func (h *Handler) GetAppointments(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	appointments, err := h.appointments.ListDoctorAppointments(c.Request.Context(), userID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) UpdateAppointmentStatus(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req model.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	appointmentID, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		handler.Error(c, apperrors.BadRequest("invalid appointment ID"))
		return
	}

	appointment, err := h.appointments.UpdateAppointmentStatus(c.Request.Context(), userID, appointmentID, req.Status)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointment))
}
