package repositories

import (
	"context"
	"strings"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*models.Tenant, error)
	Update(ctx context.Context, tenant *models.Tenant) error
	List(ctx context.Context, limit, offset int) ([]*models.Tenant, error)
}

type tenantRepo struct {
	db DB
}

func NewTenantRepo(db DB) TenantRepository {
	return &tenantRepo{db: db}
}

const tenantColumns = `id, name, subdomain, domain_type, custom_domain, logo_url, primary_color, secondary_color, contact_email, contact_phone, is_active, created_at, updated_at`

func scanTenant(row interface{ Scan(dest ...any) error }) (*models.Tenant, error) {
	tenant := &models.Tenant{}
	err := row.Scan(
		&tenant.ID, &tenant.Name, &tenant.Subdomain, &tenant.DomainType,
		&tenant.CustomDomain, &tenant.LogoURL, &tenant.PrimaryColor,
		&tenant.SecondaryColor, &tenant.ContactEmail, &tenant.ContactPhone,
		&tenant.IsActive, &tenant.CreatedAt, &tenant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return tenant, nil
}

func (r *tenantRepo) Create(ctx context.Context, tenant *models.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, subdomain, domain_type, custom_domain, logo_url, primary_color, secondary_color, contact_email, contact_phone, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		tenant.ID, tenant.Name, tenant.Subdomain, tenant.DomainType,
		tenant.CustomDomain, tenant.LogoURL, tenant.PrimaryColor,
		tenant.SecondaryColor, tenant.ContactEmail, tenant.ContactPhone,
		tenant.IsActive,
	)
	return err
}

func (r *tenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	return scanTenant(r.db.QueryRow(ctx, query, id))
}

func (r *tenantRepo) GetBySubdomain(ctx context.Context, subdomain string) (*models.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE subdomain = $1`
	return scanTenant(r.db.QueryRow(ctx, query, strings.ToLower(subdomain)))
}

// Update writes every mutable tenant field. The subdomain is immutable once
// assigned and is deliberately absent from the SET list.
func (r *tenantRepo) Update(ctx context.Context, tenant *models.Tenant) error {
	query := `
		UPDATE tenants
		SET name = $1, domain_type = $2, custom_domain = $3, logo_url = $4,
		    primary_color = $5, secondary_color = $6, contact_email = $7,
		    contact_phone = $8, is_active = $9, updated_at = NOW()
		WHERE id = $10
	`
	_, err := r.db.Exec(ctx, query,
		tenant.Name, tenant.DomainType, tenant.CustomDomain, tenant.LogoURL,
		tenant.PrimaryColor, tenant.SecondaryColor, tenant.ContactEmail,
		tenant.ContactPhone, tenant.IsActive, tenant.ID,
	)
	return err
}

func (r *tenantRepo) List(ctx context.Context, limit, offset int) ([]*models.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []*models.Tenant
	for rows.Next() {
		tenant, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, tenant)
	}
	return tenants, rows.Err()
}
