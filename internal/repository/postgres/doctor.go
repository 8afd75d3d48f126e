package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docspot/booking-api/internal/model"
	"github.com/docspot/booking-api/internal/repository"
)

const doctorColumns = `id, user_id, fullname, email, phone, address, specialization,
	   experience, fees, timings, status, created_at, updated_at`

func (r *doctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	query := `
		SELECT ` + doctorColumns + `
		FROM doctors
		WHERE id = $1
	`
	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Doctor, error) {
	query := `
		SELECT ` + doctorColumns + `
		FROM doctors
		WHERE user_id = $1
	`
	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doctor by user: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := `
		SELECT ` + doctorColumns + `
		FROM doctors
		ORDER BY created_at DESC
	`
	var doctors []*model.Doctor
	err := r.db.SelectContext(ctx, &doctors, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) ListByStatus(ctx context.Context, status model.DoctorStatus) ([]*model.Doctor, error) {
	query := `
		SELECT ` + doctorColumns + `
		FROM doctors
		WHERE status = $1
		ORDER BY created_at DESC
	`
	var doctors []*model.Doctor
	err := r.db.SelectContext(ctx, &doctors, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors by status: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	query := `
		UPDATE doctors
		SET fullname = $1, phone = $2, address = $3, specialization = $4,
			experience = $5, fees = $6, timings = $7, updated_at = $8
		WHERE id = $9
	`
	doctor.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		doctor.FullName,
		doctor.Phone,
		doctor.Address,
		doctor.Specialization,
		doctor.Experience,
		doctor.Fees,
		doctor.Timings,
		doctor.UpdatedAt,
		doctor.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ApplyWithNotification creates or refreshes the caller's application,
// moves the account into the pending-doctor role and appends the submission
// notification, all in one transaction. A rejected profile is overwritten
// in place so an account can re-apply.
func (r *doctorRepository) ApplyWithNotification(ctx context.Context, doctor *model.Doctor, n *model.Notification) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if doctor.ID == uuid.Nil {
		doctor.ID = uuid.New()
	}
	doctor.CreatedAt = time.Now()
	doctor.UpdatedAt = doctor.CreatedAt
	doctor.Status = model.DoctorStatusPending

	query := `
		INSERT INTO doctors (` + doctorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id) DO UPDATE SET
			fullname = EXCLUDED.fullname,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			specialization = EXCLUDED.specialization,
			experience = EXCLUDED.experience,
			fees = EXCLUDED.fees,
			timings = EXCLUDED.timings,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`
	_, err = tx.ExecContext(ctx, query,
		doctor.ID,
		doctor.UserID,
		doctor.FullName,
		doctor.Email,
		doctor.Phone,
		doctor.Address,
		doctor.Specialization,
		doctor.Experience,
		doctor.Fees,
		doctor.Timings,
		doctor.Status,
		doctor.CreatedAt,
		doctor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert doctor application: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE users SET role = $1, updated_at = $2 WHERE id = $3`,
		model.RolePendingDoctor, time.Now(), doctor.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update applicant role: %w", err)
	}

	if err := insertNotification(ctx, tx, n); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit application: %w", err)
	}
	return nil
}

// UpdateStatusWithNotification applies an admin decision: the profile
// status, the owning account's role and the decision notification commit
// together or not at all.
func (r *doctorRepository) UpdateStatusWithNotification(ctx context.Context, id uuid.UUID, status model.DoctorStatus, role model.Role, n *model.Notification) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE doctors SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update doctor status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE users SET role = $1, updated_at = $2
		 WHERE id = (SELECT user_id FROM doctors WHERE id = $3)`,
		role, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update owner role: %w", err)
	}

	if err := insertNotification(ctx, tx, n); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit status update: %w", err)
	}
	return nil
}
