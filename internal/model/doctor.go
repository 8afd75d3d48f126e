package model

import (
	"github.com/google/uuid"
)

type DoctorStatus string

const (
	DoctorStatusPending  DoctorStatus = "pending"
	DoctorStatusApproved DoctorStatus = "approved"
	DoctorStatusRejected DoctorStatus = "rejected"
)

// Doctor is a practitioner profile. One per account, created by the
// apply-doctor flow; status is mutated only by an administrator.
type Doctor struct {
	Base
	UserID         uuid.UUID    `json:"user_id" db:"user_id"`
	FullName       string       `json:"fullname" db:"fullname"`
	Email          string       `json:"email" db:"email"`
	Phone          string       `json:"phone" db:"phone"`
	Address        string       `json:"address" db:"address"`
	Specialization string       `json:"specialization" db:"specialization"`
	Experience     int          `json:"experience" db:"experience"`
	Fees           float64      `json:"fees" db:"fees"`
	Timings        string       `json:"timings" db:"timings"`
	Status         DoctorStatus `json:"status" db:"status"`
}

// ApplyDoctorRequest represents a doctor application
type ApplyDoctorRequest struct {
	FullName       string  `json:"fullname" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          string  `json:"phone" binding:"required"`
	Address        string  `json:"address" binding:"required"`
	Specialization string  `json:"specialization" binding:"required"`
	Experience     int     `json:"experience" binding:"required,min=0"`
	Fees           float64 `json:"fees" binding:"required,min=0"`
	Timings        string  `json:"timings" binding:"required"`
}

// UpdateDoctorRequest carries the fields a practitioner may change on their
// own profile. Status is deliberately absent.
type UpdateDoctorRequest struct {
	FullName       *string  `json:"fullname"`
	Phone          *string  `json:"phone"`
	Address        *string  `json:"address"`
	Specialization *string  `json:"specialization"`
	Experience     *int     `json:"experience"`
	Fees           *float64 `json:"fees"`
	Timings        *string  `json:"timings"`
}

// DoctorDecisionRequest identifies the application an admin decides on
type DoctorDecisionRequest struct {
	DoctorID string `json:"doctorId" binding:"required"`
}
