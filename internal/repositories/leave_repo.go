package repositories

import (
	"context"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

type LeaveRepository interface {
	Create(ctx context.Context, lr *models.LeaveRequest) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.LeaveRequest, error)
	UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status string) error
	List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.LeaveRequest, error)
}

type leaveRepo struct {
	db DB
}

func NewLeaveRepo(db DB) LeaveRepository {
	return &leaveRepo{db: db}
}

const leaveColumns = `id, tenant_id, employee_id, start_date, end_date, reason, status, created_at, updated_at`

func scanLeave(row interface{ Scan(dest ...any) error }) (*models.LeaveRequest, error) {
	lr := &models.LeaveRequest{}
	err := row.Scan(&lr.ID, &lr.TenantID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status, &lr.CreatedAt, &lr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return lr, nil
}

func (r *leaveRepo) Create(ctx context.Context, lr *models.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (id, tenant_id, employee_id, start_date, end_date, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, lr.ID, lr.TenantID, lr.EmployeeID, lr.StartDate, lr.EndDate, lr.Reason, lr.Status)
	return err
}

func (r *leaveRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE tenant_id = $1 AND id = $2`
	return scanLeave(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *leaveRepo) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status string) error {
	query := `UPDATE leave_requests SET status = $1, updated_at = NOW() WHERE tenant_id = $2 AND id = $3`
	_, err := r.db.Exec(ctx, query, status, tenantID, id)
	return err
}

func (r *leaveRepo) List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, tenantID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.LeaveRequest
	for rows.Next() {
		lr, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}
