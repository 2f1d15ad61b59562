package repositories

import (
	"context"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *models.EmployeeDocument) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.EmployeeDocument, error)
	ListByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]*models.EmployeeDocument, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type documentRepo struct {
	db DB
}

func NewDocumentRepo(db DB) DocumentRepository {
	return &documentRepo{db: db}
}

const documentColumns = `id, tenant_id, employee_id, document_type, title, object_name, description, uploaded_at`

func (r *documentRepo) Create(ctx context.Context, d *models.EmployeeDocument) error {
	query := `
		INSERT INTO employee_documents (id, tenant_id, employee_id, document_type, title, object_name, description, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	_, err := r.db.Exec(ctx, query, d.ID, d.TenantID, d.EmployeeID, d.DocumentType, d.Title, d.ObjectName, d.Description)
	return err
}

func (r *documentRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.EmployeeDocument, error) {
	d := &models.EmployeeDocument{}
	query := `SELECT ` + documentColumns + ` FROM employee_documents WHERE tenant_id = $1 AND id = $2`
	err := r.db.QueryRow(ctx, query, tenantID, id).Scan(&d.ID, &d.TenantID, &d.EmployeeID, &d.DocumentType, &d.Title, &d.ObjectName, &d.Description, &d.UploadedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *documentRepo) ListByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]*models.EmployeeDocument, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM employee_documents
		WHERE tenant_id = $1 AND employee_id = $2
		ORDER BY uploaded_at DESC
	`
	rows, err := r.db.Query(ctx, query, tenantID, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.EmployeeDocument
	for rows.Next() {
		d := &models.EmployeeDocument{}
		if err := rows.Scan(&d.ID, &d.TenantID, &d.EmployeeID, &d.DocumentType, &d.Title, &d.ObjectName, &d.Description, &d.UploadedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *documentRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM employee_documents WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}
