package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name      string
		current   AppointmentStatus
		requested AppointmentStatus
		actor     Actor
		wantErr   error
	}{
		{
			name:      "doctor approves pending",
			current:   AppointmentStatusPending,
			requested: AppointmentStatusApproved,
			actor:     ActorDoctor,
		},
		{
			name:      "doctor cancels pending",
			current:   AppointmentStatusPending,
			requested: AppointmentStatusCancelled,
			actor:     ActorDoctor,
		},
		{
			name:      "doctor completes approved",
			current:   AppointmentStatusApproved,
			requested: AppointmentStatusCompleted,
			actor:     ActorDoctor,
		},
		{
			name:      "doctor cannot complete pending",
			current:   AppointmentStatusPending,
			requested: AppointmentStatusCompleted,
			actor:     ActorDoctor,
			wantErr:   ErrIllegalTransition,
		},
		{
			name:      "doctor cannot revive cancelled",
			current:   AppointmentStatusCancelled,
			requested: AppointmentStatusApproved,
			actor:     ActorDoctor,
			wantErr:   ErrIllegalTransition,
		},
		{
			name:      "patient cancels pending",
			current:   AppointmentStatusPending,
			requested: AppointmentStatusCancelled,
			actor:     ActorPatient,
		},
		{
			name:      "patient cancels approved",
			current:   AppointmentStatusApproved,
			requested: AppointmentStatusCancelled,
			actor:     ActorPatient,
		},
		{
			name:      "patient cannot cancel completed",
			current:   AppointmentStatusCompleted,
			requested: AppointmentStatusCancelled,
			actor:     ActorPatient,
			wantErr:   ErrIllegalTransition,
		},
		{
			name:      "patient cannot approve",
			current:   AppointmentStatusPending,
			requested: AppointmentStatusApproved,
			actor:     ActorPatient,
			wantErr:   ErrIllegalTransition,
		},
		{
			name:      "admin has no appointment authority",
			current:   AppointmentStatusPending,
			requested: AppointmentStatusCancelled,
			actor:     ActorAdmin,
			wantErr:   ErrActorNotAllowed,
		},
		{
			name:      "unknown status string rejected",
			current:   AppointmentStatusPending,
			requested: AppointmentStatus("rescheduled"),
			actor:     ActorDoctor,
			wantErr:   ErrUnknownStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.current, tt.requested, tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAppointmentStatusValid(t *testing.T) {
	assert.True(t, AppointmentStatusPending.Valid())
	assert.True(t, AppointmentStatusCompleted.Valid())
	assert.False(t, AppointmentStatus("").Valid())
	assert.False(t, AppointmentStatus("no-show").Valid())
}
