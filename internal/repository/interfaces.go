package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/docspot/booking-api/internal/model"
)

// ErrNotFound is returned when a referenced identifier resolves to nothing.
var ErrNotFound = errors.New("not found")

// All repository interfaces in one file
type (
	// UserRepository handles account operations
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id uuid.UUID) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
		List(ctx context.Context) ([]*model.User, error)
	}

	// DoctorRepository handles practitioner profiles. The combined methods
	// commit the profile write, the owning account's role change and the
	// notification append in one transaction.
	DoctorRepository interface {
		Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
		GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Doctor, error)
		List(ctx context.Context) ([]*model.Doctor, error)
		ListByStatus(ctx context.Context, status model.DoctorStatus) ([]*model.Doctor, error)
		Update(ctx context.Context, doctor *model.Doctor) error
		ApplyWithNotification(ctx context.Context, doctor *model.Doctor, n *model.Notification) error
		UpdateStatusWithNotification(ctx context.Context, id uuid.UUID, status model.DoctorStatus, role model.Role, n *model.Notification) error
	}

	AppointmentRepository interface {
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		List(ctx context.Context) ([]*model.Appointment, error)
		ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Appointment, error)
		ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.Appointment, error)
		CreateWithNotification(ctx context.Context, appointment *model.Appointment, n *model.Notification) error
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error
		UpdateStatusWithNotification(ctx context.Context, id uuid.UUID, status model.AppointmentStatus, n *model.Notification) error
	}

	NotificationRepository interface {
		Create(ctx context.Context, n *model.Notification) error
		ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error)
		DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
	}
)
