package doctor

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/docspot/booking-api/internal/model"
	"github.com/docspot/booking-api/internal/repository"
	apperrors "github.com/docspot/booking-api/pkg/errors"
)

const approvedListKey = "doctors:approved"

type Service struct {
	doctors repository.DoctorRepository
	cache   *cache.Cache
}

func NewService(doctors repository.DoctorRepository, c *cache.Cache) *Service {
	return &Service{
		doctors: doctors,
		cache:   c,
	}
}

// ListApproved serves the public doctor directory. The list is cached with
// a short TTL and flushed whenever an admin decision or a profile update
// changes it.
func (s *Service) ListApproved(ctx context.Context) ([]*model.Doctor, error) {
	if cached, ok := s.cache.Get(approvedListKey); ok {
		return cached.([]*model.Doctor), nil
	}

	doctors, err := s.doctors.ListByStatus(ctx, model.DoctorStatusApproved)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if doctors == nil {
		doctors = []*model.Doctor{}
	}
	s.cache.Set(approvedListKey, doctors, cache.DefaultExpiration)
	return doctors, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	doctor, err := s.doctors.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor")
		}
		return nil, apperrors.Internal(err)
	}
	return doctor, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.doctors.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return doctors, nil
}

// GetProfile resolves the caller's own practitioner profile.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Doctor, error) {
	doctor, err := s.doctors.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor profile")
		}
		return nil, apperrors.Internal(err)
	}
	return doctor, nil
}

// UpdateProfile applies the whitelisted self-service fields. Status is not
// part of the request type, so a practitioner can never touch their own
// approval state.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	doctor, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		doctor.FullName = *req.FullName
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.Address != nil {
		doctor.Address = *req.Address
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.Experience != nil {
		doctor.Experience = *req.Experience
	}
	if req.Fees != nil {
		doctor.Fees = *req.Fees
	}
	if req.Timings != nil {
		doctor.Timings = *req.Timings
	}

	if err := s.doctors.Update(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor profile")
		}
		return nil, apperrors.Internal(err)
	}

	s.cache.Flush()
	return doctor, nil
}
