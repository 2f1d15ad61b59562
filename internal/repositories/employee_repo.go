package repositories

import (
	"context"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.Employee, error)
}

type employeeRepo struct {
	db DB
}

func NewEmployeeRepo(db DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

const employeeColumns = `id, tenant_id, name, position, department, hire_date, salary, overtime_rate, status, phone, email, address, emergency_contact, shift_start, shift_end, profile_picture_url, created_at, updated_at`

func scanEmployee(row interface{ Scan(dest ...any) error }) (*models.Employee, error) {
	e := &models.Employee{}
	err := row.Scan(
		&e.ID, &e.TenantID, &e.Name, &e.Position, &e.Department, &e.HireDate,
		&e.Salary, &e.OvertimeRate, &e.Status, &e.Phone, &e.Email, &e.Address,
		&e.EmergencyContact, &e.ShiftStart, &e.ShiftEnd, &e.ProfilePictureURL,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employeeRepo) Create(ctx context.Context, e *models.Employee) error {
	query := `
		INSERT INTO employees (id, tenant_id, name, position, department, hire_date, salary, overtime_rate, status, phone, email, address, emergency_contact, shift_start, shift_end, profile_picture_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.TenantID, e.Name, e.Position, e.Department, e.HireDate,
		e.Salary, e.OvertimeRate, e.Status, e.Phone, e.Email, e.Address,
		e.EmergencyContact, e.ShiftStart, e.ShiftEnd, e.ProfilePictureURL,
	)
	return err
}

func (r *employeeRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE tenant_id = $1 AND id = $2`
	return scanEmployee(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *employeeRepo) Update(ctx context.Context, e *models.Employee) error {
	query := `
		UPDATE employees
		SET name = $1, position = $2, department = $3, hire_date = $4, salary = $5,
		    overtime_rate = $6, status = $7, phone = $8, email = $9, address = $10,
		    emergency_contact = $11, shift_start = $12, shift_end = $13,
		    profile_picture_url = $14, updated_at = NOW()
		WHERE tenant_id = $15 AND id = $16
	`
	_, err := r.db.Exec(ctx, query,
		e.Name, e.Position, e.Department, e.HireDate, e.Salary,
		e.OvertimeRate, e.Status, e.Phone, e.Email, e.Address,
		e.EmergencyContact, e.ShiftStart, e.ShiftEnd, e.ProfilePictureURL,
		e.TenantID, e.ID,
	)
	return err
}

func (r *employeeRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM employees WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *employeeRepo) List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY name ASC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, tenantID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
