package repositories

import (
	"context"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.EmployeeNote) error
	ListByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]*models.EmployeeNote, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type noteRepo struct {
	db DB
}

func NewNoteRepo(db DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, n *models.EmployeeNote) error {
	query := `
		INSERT INTO employee_notes (id, tenant_id, employee_id, note, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, n.ID, n.TenantID, n.EmployeeID, n.Note, n.CreatedBy)
	return err
}

func (r *noteRepo) ListByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]*models.EmployeeNote, error) {
	query := `
		SELECT id, tenant_id, employee_id, note, created_by, created_at
		FROM employee_notes
		WHERE tenant_id = $1 AND employee_id = $2
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, tenantID, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*models.EmployeeNote
	for rows.Next() {
		n := &models.EmployeeNote{}
		if err := rows.Scan(&n.ID, &n.TenantID, &n.EmployeeID, &n.Note, &n.CreatedBy, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *noteRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM employee_notes WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}
