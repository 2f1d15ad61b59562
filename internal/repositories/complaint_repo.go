package repositories

import (
	"context"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Complaint, error)
	UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status string) error
	List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.Complaint, error)
	AddReply(ctx context.Context, reply *models.ComplaintReply) error
	ListReplies(ctx context.Context, complaintID uuid.UUID) ([]*models.ComplaintReply, error)
}

type complaintRepo struct {
	db DB
}

func NewComplaintRepo(db DB) ComplaintRepository {
	return &complaintRepo{db: db}
}

const complaintColumns = `id, tenant_id, employee_id, title, description, status, urgency, attachment_url, created_at, updated_at`

func scanComplaint(row interface{ Scan(dest ...any) error }) (*models.Complaint, error) {
	cp := &models.Complaint{}
	err := row.Scan(&cp.ID, &cp.TenantID, &cp.EmployeeID, &cp.Title, &cp.Description, &cp.Status, &cp.Urgency, &cp.AttachmentURL, &cp.CreatedAt, &cp.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return cp, nil
}

func (r *complaintRepo) Create(ctx context.Context, cp *models.Complaint) error {
	query := `
		INSERT INTO complaints (id, tenant_id, employee_id, title, description, status, urgency, attachment_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, cp.ID, cp.TenantID, cp.EmployeeID, cp.Title, cp.Description, cp.Status, cp.Urgency, cp.AttachmentURL)
	return err
}

func (r *complaintRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE tenant_id = $1 AND id = $2`
	return scanComplaint(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *complaintRepo) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status string) error {
	query := `UPDATE complaints SET status = $1, updated_at = NOW() WHERE tenant_id = $2 AND id = $3`
	_, err := r.db.Exec(ctx, query, status, tenantID, id)
	return err
}

func (r *complaintRepo) List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.Complaint, error) {
	query := `
		SELECT ` + complaintColumns + `
		FROM complaints
		WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, tenantID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []*models.Complaint
	for rows.Next() {
		cp, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, cp)
	}
	return complaints, rows.Err()
}

func (r *complaintRepo) AddReply(ctx context.Context, reply *models.ComplaintReply) error {
	query := `
		INSERT INTO complaint_replies (id, complaint_id, user_id, message, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.db.Exec(ctx, query, reply.ID, reply.ComplaintID, reply.UserID, reply.Message)
	return err
}

func (r *complaintRepo) ListReplies(ctx context.Context, complaintID uuid.UUID) ([]*models.ComplaintReply, error) {
	query := `
		SELECT id, complaint_id, user_id, message, created_at
		FROM complaint_replies
		WHERE complaint_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, complaintID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var replies []*models.ComplaintReply
	for rows.Next() {
		reply := &models.ComplaintReply{}
		if err := rows.Scan(&reply.ID, &reply.ComplaintID, &reply.UserID, &reply.Message, &reply.CreatedAt); err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}
	return replies, rows.Err()
}
