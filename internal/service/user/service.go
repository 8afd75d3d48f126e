package user

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/docspot/booking-api/internal/model"
	"github.com/docspot/booking-api/internal/repository"
	apperrors "github.com/docspot/booking-api/pkg/errors"
)

type Service struct {
	users         repository.UserRepository
	doctors       repository.DoctorRepository
	notifications repository.NotificationRepository
}

func NewService(users repository.UserRepository, doctors repository.DoctorRepository,
	notifications repository.NotificationRepository) *Service {
	return &Service{
		users:         users,
		doctors:       doctors,
		notifications: notifications,
	}
}

func (s *Service) GetInfo(ctx context.Context, userID uuid.UUID) (*model.UserInfo, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.Internal(err)
	}
	return user.Info(), nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*model.UserInfo, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	infos := make([]*model.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, u.Info())
	}
	return infos, nil
}

func (s *Service) ListNotifications(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.Internal(err)
	}

	notifications, err := s.notifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if notifications == nil {
		notifications = []*model.Notification{}
	}
	return notifications, nil
}

// MarkNotificationsRead clears the caller's inbox wholesale. Only the
// owning account ever reaches this path.
func (s *Service) MarkNotificationsRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.notifications.DeleteAllForUser(ctx, userID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// ApplyDoctor files a practitioner application for the caller. The profile
// write, the role change and the submission notification commit together.
// A rejected application can be re-filed; a pending or approved one cannot.
func (s *Service) ApplyDoctor(ctx context.Context, userID uuid.UUID, req *model.ApplyDoctorRequest) (*model.Doctor, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.Internal(err)
	}

	existing, err := s.doctors.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Internal(err)
	}
	if existing != nil && existing.Status != model.DoctorStatusRejected {
		return nil, apperrors.Conflict("doctor application already submitted")
	}

	doctor := &model.Doctor{
		UserID:         userID,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Fees:           req.Fees,
		Timings:        req.Timings,
		Status:         model.DoctorStatusPending,
	}

	notification := &model.Notification{
		UserID:      userID,
		Type:        model.NotificationTypeApplicationSubmitted,
		Message:     "Your doctor application has been submitted successfully",
		Data:        model.JSONMap{},
		OnClickPath: "/appointments",
	}

	if err := s.doctors.ApplyWithNotification(ctx, doctor, notification); err != nil {
		return nil, apperrors.Internal(err)
	}
	return doctor, nil
}
