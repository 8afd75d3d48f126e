package user

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

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.LoginResponse, error)
}

type UserService interface {
	GetInfo(ctx context.Context, userID uuid.UUID) (*model.UserInfo, error)
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error)
	MarkNotificationsRead(ctx context.Context, userID uuid.UUID) error
	ApplyDoctor(ctx context.Context, userID uuid.UUID, req *model.ApplyDoctorRequest) (*model.Doctor, error)
}

type AppointmentService interface {
	BookAppointment(ctx context.Context, patientID uuid.UUID, req *model.BookAppointmentRequest) (*model.Appointment, error)
	ListPatientAppointments(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error)
	CancelAppointment(ctx context.Context, userID, appointmentID uuid.UUID) (*model.Appointment, error)
}

type Handler struct {
	auth         AuthService
	users        UserService
	appointments AppointmentService
}

func NewHandler(auth AuthService, users UserService, appointments AppointmentService) *Handler {
	return &Handler{
		auth:         auth,
		users:        users,
		appointments: appointments,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMw *middleware.AuthMiddleware) {
	users := r.Group("/user")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)

		authed := users.Group("", authMw.Authenticate())
		{
			authed.GET("/info", h.GetInfo)
			authed.GET("/notifications", h.GetNotifications)
			authed.PUT("/notifications/mark-read", h.MarkNotificationsRead)
			authed.POST("/apply-doctor", h.ApplyDoctor)
			authed.POST("/book-appointment", h.BookAppointment)
			authed.GET("/appointments", h.GetAppointments)
			authed.PUT("/appointments/cancel/:appointmentId", h.CancelAppointment)
		}
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	if _, err := h.auth.Register(c.Request.Context(), &req); err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessMessage("user registered successfully"))
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(resp))
}

func (h *Handler) GetInfo(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	info, err := h.users.GetInfo(c.Request.Context(), userID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(info))
}

func (h *Handler) GetNotifications(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	notifications, err := h.users.ListNotifications(c.Request.Context(), userID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(notifications))
}

func (h *Handler) MarkNotificationsRead(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	if err := h.users.MarkNotificationsRead(c.Request.Context(), userID); err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessage("all notifications marked as read"))
}

func (h *Handler) ApplyDoctor(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req model.ApplyDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	if _, err := h.users.ApplyDoctor(c.Request.Context(), userID, &req); err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessMessage("doctor application submitted successfully"))
}

func (h *Handler) BookAppointment(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req model.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	appointment, err := h.appointments.BookAppointment(c.Request.Context(), userID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(appointment))
}

func (h *Handler) GetAppointments(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	appointments, err := h.appointments.ListPatientAppointments(c.Request.Context(), userID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	appointmentID, err := uuid.Parse(c.Param("appointmentId"))
	if err != nil {
		handler.Error(c, apperrors.BadRequest("invalid appointment ID"))
		return
	}

	if _, err := h.appointments.CancelAppointment(c.Request.Context(), userID, appointmentID); err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessage("appointment cancelled successfully"))
}
