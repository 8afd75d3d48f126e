package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/docspot/booking-api/internal/model"
	"github.com/docspot/booking-api/internal/repository"
	apperrors "github.com/docspot/booking-api/pkg/errors"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockDoctorRepo struct {
	mock.Mock
}

func (m *mockDoctorRepo) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*model.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDoctorRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Doctor, error) {
	args := m.Called(ctx, userID)
	if d := args.Get(0); d != nil {
		return d.(*model.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDoctorRepo) List(ctx context.Context) ([]*model.Doctor, error) {
	args := m.Called(ctx)
	if d := args.Get(0); d != nil {
		return d.([]*model.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDoctorRepo) ListByStatus(ctx context.Context, status model.DoctorStatus) ([]*model.Doctor, error) {
	args := m.Called(ctx, status)
	if d := args.Get(0); d != nil {
		return d.([]*model.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDoctorRepo) Update(ctx context.Context, doctor *model.Doctor) error {
	return m.Called(ctx, doctor).Error(0)
}

func (m *mockDoctorRepo) ApplyWithNotification(ctx context.Context, doctor *model.Doctor, n *model.Notification) error {
	return m.Called(ctx, doctor, n).Error(0)
}

func (m *mockDoctorRepo) UpdateStatusWithNotification(ctx context.Context, id uuid.UUID, status model.DoctorStatus, role model.Role, n *model.Notification) error {
	return m.Called(ctx, id, status, role, n).Error(0)
}

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *model.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockNotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error) {
	args := m.Called(ctx, userID)
	if n := args.Get(0); n != nil {
		return n.([]*model.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotificationRepo) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func TestGetInfoStripsPassword(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockDoctorRepo), new(mockNotificationRepo))
	ctx := context.Background()
	userID := uuid.New()

	users.On("Get", ctx, userID).Return(&model.User{
		Base:         model.Base{ID: userID},
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$04$hash",
		Role:         model.RoleDoctor,
	}, nil)

	info, err := svc.GetInfo(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", info.Name)
	assert.Equal(t, "doctor", info.Type)
	assert.True(t, info.IsDoctor)
}

func TestListNotificationsEmptyInbox(t *testing.T) {
	users := new(mockUserRepo)
	notifications := new(mockNotificationRepo)
	svc := NewService(users, new(mockDoctorRepo), notifications)
	ctx := context.Background()
	userID := uuid.New()

	users.On("Get", ctx, userID).Return(&model.User{Base: model.Base{ID: userID}}, nil)
	notifications.On("ListByUser", ctx, userID).Return(nil, nil)

	got, err := svc.ListNotifications(ctx, userID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListNotificationsUnknownUser(t *testing.T) {
	users := new(mockUserRepo)
	notifications := new(mockNotificationRepo)
	svc := NewService(users, new(mockDoctorRepo), notifications)
	ctx := context.Background()
	userID := uuid.New()

	users.On("Get", ctx, userID).Return(nil, repository.ErrNotFound)

	_, err := svc.ListNotifications(ctx, userID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
	notifications.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestMarkNotificationsRead(t *testing.T) {
	notifications := new(mockNotificationRepo)
	svc := NewService(new(mockUserRepo), new(mockDoctorRepo), notifications)
	ctx := context.Background()
	userID := uuid.New()

	notifications.On("DeleteAllForUser", ctx, userID).Return(nil)

	require.NoError(t, svc.MarkNotificationsRead(ctx, userID))
	notifications.AssertExpectations(t)
}

func applyRequest() *model.ApplyDoctorRequest {
	return &model.ApplyDoctorRequest{
		FullName:       "Dr. Bob",
		Email:          "bob@example.com",
		Phone:          "555-0100",
		Address:        "12 Clinic Way",
		Specialization: "cardiology",
		Experience:     8,
		Fees:           120,
		Timings:        "09:00-17:00",
	}
}

func TestApplyDoctor(t *testing.T) {
	users := new(mockUserRepo)
	doctors := new(mockDoctorRepo)
	svc := NewService(users, doctors, new(mockNotificationRepo))
	ctx := context.Background()
	userID := uuid.New()

	users.On("Get", ctx, userID).Return(&model.User{Base: model.Base{ID: userID}}, nil)
	doctors.On("GetByUserID", ctx, userID).Return(nil, repository.ErrNotFound)
	doctors.On("ApplyWithNotification", ctx,
		mock.MatchedBy(func(d *model.Doctor) bool {
			return d.UserID == userID && d.Status == model.DoctorStatusPending
		}),
		mock.MatchedBy(func(n *model.Notification) bool {
			return n.UserID == userID && n.Type == model.NotificationTypeApplicationSubmitted
		})).Return(nil)

	doctor, err := svc.ApplyDoctor(ctx, userID, applyRequest())
	require.NoError(t, err)
	assert.Equal(t, model.DoctorStatusPending, doctor.Status)
}

func TestApplyDoctorAlreadyPending(t *testing.T) {
	users := new(mockUserRepo)
	doctors := new(mockDoctorRepo)
	svc := NewService(users, doctors, new(mockNotificationRepo))
	ctx := context.Background()
	userID := uuid.New()

	users.On("Get", ctx, userID).Return(&model.User{Base: model.Base{ID: userID}}, nil)
	doctors.On("GetByUserID", ctx, userID).Return(&model.Doctor{
		UserID: userID,
		Status: model.DoctorStatusPending,
	}, nil)

	_, err := svc.ApplyDoctor(ctx, userID, applyRequest())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConflict))
	doctors.AssertNotCalled(t, "ApplyWithNotification", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyDoctorAfterRejection(t *testing.T) {
	users := new(mockUserRepo)
	doctors := new(mockDoctorRepo)
	svc := NewService(users, doctors, new(mockNotificationRepo))
	ctx := context.Background()
	userID := uuid.New()

	users.On("Get", ctx, userID).Return(&model.User{Base: model.Base{ID: userID}}, nil)
	doctors.On("GetByUserID", ctx, userID).Return(&model.Doctor{
		UserID: userID,
		Status: model.DoctorStatusRejected,
	}, nil)
	doctors.On("ApplyWithNotification", ctx, mock.Anything, mock.Anything).Return(nil)

	doctor, err := svc.ApplyDoctor(ctx, userID, applyRequest())
	require.NoError(t, err)
	assert.Equal(t, model.DoctorStatusPending, doctor.Status)
}
