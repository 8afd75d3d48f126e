package admin

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

type UserService interface {
	ListUsers(ctx context.Context) ([]*model.UserInfo, error)
}

type DoctorService interface {
	List(ctx context.Context) ([]*model.Doctor, error)
}

type WorkflowService interface {
	ApproveDoctor(ctx context.Context, doctorID uuid.UUID) (*model.Doctor, error)
	RejectDoctor(ctx context.Context, doctorID uuid.UUID) (*model.Doctor, error)
	ListAllAppointments(ctx context.Context) ([]*model.Appointment, error)
}

type Handler struct {
	users    UserService
	doctors  DoctorService
	workflow WorkflowService
}

func NewHandler(users UserService, doctors DoctorService, workflow WorkflowService) *Handler {
	return &Handler{
		users:    users,
		doctors:  doctors,
		workflow: workflow,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMw *middleware.AuthMiddleware) {
	admin := r.Group("/admin", authMw.Authenticate(), authMw.RequireAdmin())
	{
		admin.GET("/users", h.ListUsers)
		admin.GET("/doctors", h.ListDoctors)
		admin.GET("/appointments", h.ListAppointments)
		admin.PUT("/doctors/approve", h.ApproveDoctor)
		admin.PUT("/doctors/reject", h.RejectDoctor)
	}
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(users))
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.doctors.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.workflow.ListAllAppointments(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) ApproveDoctor(c *gin.Context) {
	doctorID, ok := h.decisionTarget(c)
	if !ok {
		return
	}

	doctor, err := h.workflow.ApproveDoctor(c.Request.Context(), doctorID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}

func (h *Handler) RejectDoctor(c *gin.Context) {
	doctorID, ok := h.decisionTarget(c)
	if !ok {
		return
	}

	doctor, err := h.workflow.RejectDoctor(c.Request.Context(), doctorID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}

func (h *Handler) decisionTarget(c *gin.Context) (uuid.UUID, bool) {
	var req model.DoctorDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest(err.Error()))
		return uuid.Nil, false
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		handler.Error(c, apperrors.BadRequest("invalid doctor ID"))
		return uuid.Nil, false
	}
	return doctorID, true
}
