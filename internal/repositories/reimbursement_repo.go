package repositories

import (
	"context"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

type ReimbursementRepository interface {
	Create(ctx context.Context, req *models.ReimbursementRequest) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.ReimbursementRequest, error)
	UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status string, adminComment *string) error
	List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.ReimbursementRequest, error)
}

type reimbursementRepo struct {
	db DB
}

func NewReimbursementRepo(db DB) ReimbursementRepository {
	return &reimbursementRepo{db: db}
}

const reimbursementColumns = `id, tenant_id, employee_id, amount, description, status, admin_comment, created_at, updated_at`

func scanReimbursement(row interface{ Scan(dest ...any) error }) (*models.ReimbursementRequest, error) {
	rr := &models.ReimbursementRequest{}
	err := row.Scan(&rr.ID, &rr.TenantID, &rr.EmployeeID, &rr.Amount, &rr.Description, &rr.Status, &rr.AdminComment, &rr.CreatedAt, &rr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rr, nil
}

func (r *reimbursementRepo) Create(ctx context.Context, rr *models.ReimbursementRequest) error {
	query := `
		INSERT INTO reimbursements (id, tenant_id, employee_id, amount, description, status, admin_comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, rr.ID, rr.TenantID, rr.EmployeeID, rr.Amount, rr.Description, rr.Status, rr.AdminComment)
	return err
}

func (r *reimbursementRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.ReimbursementRequest, error) {
	query := `SELECT ` + reimbursementColumns + ` FROM reimbursements WHERE tenant_id = $1 AND id = $2`
	return scanReimbursement(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *reimbursementRepo) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status string, adminComment *string) error {
	query := `
		UPDATE reimbursements
		SET status = $1, admin_comment = COALESCE($2, admin_comment), updated_at = NOW()
		WHERE tenant_id = $3 AND id = $4
	`
	_, err := r.db.Exec(ctx, query, status, adminComment, tenantID, id)
	return err
}

func (r *reimbursementRepo) List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.ReimbursementRequest, error) {
	query := `
		SELECT ` + reimbursementColumns + `
		FROM reimbursements
		WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, tenantID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.ReimbursementRequest
	for rows.Next() {
		rr, err := scanReimbursement(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, rr)
	}
	return requests, rows.Err()
}
