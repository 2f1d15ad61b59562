package repositories

import (
	"context"
	"time"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

type AttendanceRepository interface {
	// Upsert writes the record for (employee, date); a second write for the
	// same day updates the existing row.
	Upsert(ctx context.Context, a *models.Attendance) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Attendance, error)
	List(ctx context.Context, tenantID uuid.UUID, employeeID *uuid.UUID, from, to time.Time, limit, offset int) ([]*models.Attendance, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	// MarkAbsentees inserts an absent record for every active employee of the
	// tenant with no attendance row for the given date. Returns the number of
	// rows written.
	MarkAbsentees(ctx context.Context, tenantID uuid.UUID, date time.Time) (int64, error)
}

type attendanceRepo struct {
	db DB
}

func NewAttendanceRepo(db DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

const attendanceColumns = `id, tenant_id, employee_id, date, check_in, check_out, status, paid, created_at, updated_at`

func scanAttendance(row interface{ Scan(dest ...any) error }) (*models.Attendance, error) {
	a := &models.Attendance{}
	err := row.Scan(&a.ID, &a.TenantID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut, &a.Status, &a.Paid, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *attendanceRepo) Upsert(ctx context.Context, a *models.Attendance) error {
	query := `
		INSERT INTO attendance (id, tenant_id, employee_id, date, check_in, check_out, status, paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (employee_id, date) DO UPDATE
		SET check_in = EXCLUDED.check_in, check_out = EXCLUDED.check_out, status = EXCLUDED.status, paid = EXCLUDED.paid, updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, a.ID, a.TenantID, a.EmployeeID, a.Date, a.CheckIn, a.CheckOut, a.Status, a.Paid)
	return err
}

func (r *attendanceRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE tenant_id = $1 AND id = $2`
	return scanAttendance(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *attendanceRepo) List(ctx context.Context, tenantID uuid.UUID, employeeID *uuid.UUID, from, to time.Time, limit, offset int) ([]*models.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE tenant_id = $1
		  AND ($2::uuid IS NULL OR employee_id = $2)
		  AND date >= $3 AND date <= $4
		ORDER BY date DESC
		LIMIT $5 OFFSET $6
	`
	rows, err := r.db.Query(ctx, query, tenantID, employeeID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *attendanceRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM attendance WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *attendanceRepo) MarkAbsentees(ctx context.Context, tenantID uuid.UUID, date time.Time) (int64, error) {
	query := `
		INSERT INTO attendance (id, tenant_id, employee_id, date, status, paid, created_at, updated_at)
		SELECT gen_random_uuid(), e.tenant_id, e.id, $2, 'absent', false, NOW(), NOW()
		FROM employees e
		WHERE e.tenant_id = $1 AND e.status = 'active'
		  AND NOT EXISTS (
			SELECT 1 FROM attendance a WHERE a.employee_id = e.id AND a.date = $2
		  )
	`
	tag, err := r.db.Exec(ctx, query, tenantID, date)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
