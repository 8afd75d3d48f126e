package model

import (
	"errors"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusApproved  AppointmentStatus = "approved"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusApproved,
		AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// Actor identifies who is attempting an appointment transition.
type Actor string

const (
	ActorPatient Actor = "patient"
	ActorDoctor  Actor = "doctor"
	ActorAdmin   Actor = "admin"
)

var (
	ErrUnknownStatus     = errors.New("unknown appointment status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrActorNotAllowed   = errors.New("actor may not transition appointments")
)

// appointmentTransitions enumerates the legal edges per actor. Doctors move
// their own appointments forward or cancel them, patients may only cancel
// their own from a non-terminal state, admins have no appointment authority.
var appointmentTransitions = map[Actor]map[AppointmentStatus][]AppointmentStatus{
	ActorDoctor: {
		AppointmentStatusPending:  {AppointmentStatusApproved, AppointmentStatusCancelled},
		AppointmentStatusApproved: {AppointmentStatusCompleted},
	},
	ActorPatient: {
		AppointmentStatusPending:  {AppointmentStatusCancelled},
		AppointmentStatusApproved: {AppointmentStatusCancelled},
	},
}

// CanTransition reports whether actor may move an appointment from current
// to requested. Ownership is checked by the caller; this only validates the
// edge itself.
func CanTransition(current, requested AppointmentStatus, actor Actor) error {
	if !requested.Valid() {
		return ErrUnknownStatus
	}
	edges, ok := appointmentTransitions[actor]
	if !ok {
		return ErrActorNotAllowed
	}
	for _, next := range edges[current] {
		if next == requested {
			return nil
		}
	}
	return ErrIllegalTransition
}

// Appointment links a patient account to a doctor profile. The info
// snapshots are captured at booking time and never rewritten, so later
// profile edits do not alter past bookings. Appointments are never deleted,
// only status-transitioned.
type Appointment struct {
	Base
	UserID     uuid.UUID         `json:"user_id" db:"user_id"`
	DoctorID   uuid.UUID         `json:"doctor_id" db:"doctor_id"`
	UserInfo   JSONMap           `json:"user_info" db:"user_info"`
	DoctorInfo JSONMap           `json:"doctor_info" db:"doctor_info"`
	Date       string            `json:"date" db:"date"`
	Document   string            `json:"document,omitempty" db:"document"`
	Status     AppointmentStatus `json:"status" db:"status"`
}

// BookAppointmentRequest represents a patient booking
type BookAppointmentRequest struct {
	DoctorID   string  `json:"doctorId" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	UserInfo   JSONMap `json:"userInfo" binding:"required"`
	DoctorInfo JSONMap `json:"doctorInfo" binding:"required"`
	Document   string  `json:"document"`
}

// UpdateAppointmentStatusRequest is the doctor-side status change
type UpdateAppointmentStatusRequest struct {
	AppointmentID string `json:"appointmentId" binding:"required"`
	Status        string `json:"status" binding:"required"`
}
