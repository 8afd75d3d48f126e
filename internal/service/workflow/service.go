// Package workflow owns the platform's two state machines: the doctor
// application approval flow and the appointment lifecycle. Every transition
// follows the same pattern: validate actor authority, commit the status
// write together with the counterparty's notification, then mirror the
// notification over email on a best-effort basis.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/docspot/booking-api/internal/email"
	"github.com/docspot/booking-api/internal/model"
	"github.com/docspot/booking-api/internal/repository"
	apperrors "github.com/docspot/booking-api/pkg/errors"
)

// ListCache is flushed whenever an admin decision changes the public
// doctor directory. Satisfied by *cache.Cache.
type ListCache interface {
	Flush()
}

type Service struct {
	users        repository.UserRepository
	doctors      repository.DoctorRepository
	appointments repository.AppointmentRepository
	mailer       email.Service
	cache        ListCache
}

func NewService(users repository.UserRepository, doctors repository.DoctorRepository,
	appointments repository.AppointmentRepository, mailer email.Service, cache ListCache) *Service {
	return &Service{
		users:        users,
		doctors:      doctors,
		appointments: appointments,
		mailer:       mailer,
		cache:        cache,
	}
}

// ApproveDoctor moves an application to approved and promotes the owning
// account to the doctor role. Re-approving an already-decided application
// is allowed; the writes are idempotent.
func (s *Service) ApproveDoctor(ctx context.Context, doctorID uuid.UUID) (*model.Doctor, error) {
	return s.decideDoctor(ctx, doctorID, model.DoctorStatusApproved)
}

// RejectDoctor moves an application to rejected and returns the owning
// account to the patient role so it can re-apply.
func (s *Service) RejectDoctor(ctx context.Context, doctorID uuid.UUID) (*model.Doctor, error) {
	return s.decideDoctor(ctx, doctorID, model.DoctorStatusRejected)
}

func (s *Service) decideDoctor(ctx context.Context, doctorID uuid.UUID, status model.DoctorStatus) (*model.Doctor, error) {
	doctor, err := s.doctors.Get(ctx, doctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor")
		}
		return nil, apperrors.Internal(err)
	}

	role := model.RoleDoctor
	notification := &model.Notification{
		UserID:      doctor.UserID,
		Type:        model.NotificationTypeApplicationApproved,
		Message:     "Your doctor application has been approved",
		Data:        model.JSONMap{},
		OnClickPath: "/doctor/profile",
	}
	if status == model.DoctorStatusRejected {
		role = model.RolePatient
		notification.Type = model.NotificationTypeApplicationRejected
		notification.Message = "Your doctor application has been rejected"
		notification.OnClickPath = "/apply-doctor"
	}

	if err := s.doctors.UpdateStatusWithNotification(ctx, doctor.ID, status, role, notification); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor")
		}
		return nil, apperrors.Internal(err)
	}

	s.cache.Flush()
	s.mail(doctor.Email, "Doctor application update", notification.Message)

	doctor.Status = status
	return doctor, nil
}

// BookAppointment creates a pending appointment for the patient and
// notifies the treating doctor's account. The doctor reference must resolve
// at booking time; the info snapshots are stored as supplied and kept
// stable afterwards.
func (s *Service) BookAppointment(ctx context.Context, patientID uuid.UUID, req *model.BookAppointmentRequest) (*model.Appointment, error) {
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, apperrors.BadRequest("invalid doctor ID")
	}

	doctor, err := s.doctors.Get(ctx, doctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor")
		}
		return nil, apperrors.Internal(err)
	}

	appointment := &model.Appointment{
		Base:       model.Base{ID: uuid.New()},
		UserID:     patientID,
		DoctorID:   doctor.ID,
		UserInfo:   req.UserInfo,
		DoctorInfo: req.DoctorInfo,
		Date:       req.Date,
		Document:   req.Document,
		Status:     model.AppointmentStatusPending,
	}

	patientName, _ := req.UserInfo["name"].(string)
	notification := &model.Notification{
		UserID:      doctor.UserID,
		Type:        model.NotificationTypeNewAppointment,
		Message:     fmt.Sprintf("New appointment request from %s", patientName),
		Data:        model.JSONMap{"appointmentId": appointment.ID.String()},
		OnClickPath: "/appointments",
	}

	if err := s.appointments.CreateWithNotification(ctx, appointment, notification); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.mail(doctor.Email, "New appointment request", notification.Message)
	return appointment, nil
}

func (s *Service) ListPatientAppointments(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	appointments, err := s.appointments.ListByUser(ctx, patientID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if appointments == nil {
		appointments = []*model.Appointment{}
	}
	return appointments, nil
}

// ListDoctorAppointments returns the appointments referencing the caller's
// own practitioner profile.
func (s *Service) ListDoctorAppointments(ctx context.Context, userID uuid.UUID) ([]*model.Appointment, error) {
	doctor, err := s.doctors.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor profile")
		}
		return nil, apperrors.Internal(err)
	}

	appointments, err := s.appointments.ListByDoctor(ctx, doctor.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if appointments == nil {
		appointments = []*model.Appointment{}
	}
	return appointments, nil
}

func (s *Service) ListAllAppointments(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.appointments.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return appointments, nil
}

// UpdateAppointmentStatus applies a doctor-side transition. The doctor
// profile is re-derived from the authenticated account and compared against
// the appointment's stored reference; a mismatch or missing profile is
// Forbidden, never silently ignored.
func (s *Service) UpdateAppointmentStatus(ctx context.Context, userID, appointmentID uuid.UUID, requested string) (*model.Appointment, error) {
	appointment, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("appointment")
		}
		return nil, apperrors.Internal(err)
	}

	doctor, err := s.doctors.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Forbidden("not authorized to update this appointment")
		}
		return nil, apperrors.Internal(err)
	}
	if doctor.ID != appointment.DoctorID {
		return nil, apperrors.Forbidden("not authorized to update this appointment")
	}

	status := model.AppointmentStatus(requested)
	if err := model.CanTransition(appointment.Status, status, model.ActorDoctor); err != nil {
		return nil, transitionError(err)
	}

	notification := &model.Notification{
		UserID:      appointment.UserID,
		Type:        model.NotificationTypeAppointmentStatus,
		Message:     fmt.Sprintf("Your appointment has been %s", status),
		Data:        model.JSONMap{"appointmentId": appointment.ID.String()},
		OnClickPath: "/appointments",
	}

	if err := s.appointments.UpdateStatusWithNotification(ctx, appointment.ID, status, notification); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("appointment")
		}
		return nil, apperrors.Internal(err)
	}

	if patient, err := s.users.Get(ctx, appointment.UserID); err == nil {
		s.mail(patient.Email, "Appointment update", notification.Message)
	}

	appointment.Status = status
	return appointment, nil
}

// CancelAppointment is the patient-side transition. Only the owning patient
// may cancel, and only from a non-terminal state. No counterparty
// notification is emitted for patient cancellations.
func (s *Service) CancelAppointment(ctx context.Context, userID, appointmentID uuid.UUID) (*model.Appointment, error) {
	appointment, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("appointment")
		}
		return nil, apperrors.Internal(err)
	}

	if appointment.UserID != userID {
		return nil, apperrors.Forbidden("not authorized to cancel this appointment")
	}

	if err := model.CanTransition(appointment.Status, model.AppointmentStatusCancelled, model.ActorPatient); err != nil {
		return nil, transitionError(err)
	}

	if err := s.appointments.UpdateStatus(ctx, appointment.ID, model.AppointmentStatusCancelled); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("appointment")
		}
		return nil, apperrors.Internal(err)
	}

	appointment.Status = model.AppointmentStatusCancelled
	return appointment, nil
}

func transitionError(err error) error {
	switch {
	case errors.Is(err, model.ErrUnknownStatus):
		return apperrors.BadRequest("unknown appointment status")
	case errors.Is(err, model.ErrIllegalTransition):
		return apperrors.BadRequest("illegal status transition")
	case errors.Is(err, model.ErrActorNotAllowed):
		return apperrors.Forbidden("not allowed to transition appointments")
	default:
		return apperrors.Internal(err)
	}
}

func (s *Service) mail(to, subject, body string) {
	if to == "" {
		return
	}
	if err := s.mailer.Send(to, subject, body); err != nil {
		log.Warn().Err(err).Str("to", to).Msg("failed to send notification email")
	}
}
