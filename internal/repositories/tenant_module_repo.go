package repositories

import (
	"context"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

// TenantModuleRepository stores the per-tenant module flags.
type TenantModuleRepository interface {
	// Upsert writes the flag for (tenant, module key). Toggles are
	// last-write-wins; repeating the same write is a no-op.
	Upsert(ctx context.Context, tm *models.TenantModule) error
	Get(ctx context.Context, tenantID uuid.UUID, moduleKey string) (*models.TenantModule, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.TenantModule, error)
}

type tenantModuleRepo struct {
	db DB
}

func NewTenantModuleRepo(db DB) TenantModuleRepository {
	return &tenantModuleRepo{db: db}
}

func (r *tenantModuleRepo) Upsert(ctx context.Context, tm *models.TenantModule) error {
	query := `
		INSERT INTO tenant_modules (id, tenant_id, module_key, is_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (tenant_id, module_key) DO UPDATE SET is_enabled = EXCLUDED.is_enabled, updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, tm.ID, tm.TenantID, tm.ModuleKey, tm.IsEnabled)
	return err
}

func (r *tenantModuleRepo) Get(ctx context.Context, tenantID uuid.UUID, moduleKey string) (*models.TenantModule, error) {
	tm := &models.TenantModule{}
	query := `
		SELECT id, tenant_id, module_key, is_enabled, created_at, updated_at
		FROM tenant_modules
		WHERE tenant_id = $1 AND module_key = $2
	`
	err := r.db.QueryRow(ctx, query, tenantID, moduleKey).Scan(&tm.ID, &tm.TenantID, &tm.ModuleKey, &tm.IsEnabled, &tm.CreatedAt, &tm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return tm, nil
}

func (r *tenantModuleRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.TenantModule, error) {
	query := `
		SELECT id, tenant_id, module_key, is_enabled, created_at, updated_at
		FROM tenant_modules
		WHERE tenant_id = $1
		ORDER BY module_key ASC
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flags []*models.TenantModule
	for rows.Next() {
		tm := &models.TenantModule{}
		if err := rows.Scan(&tm.ID, &tm.TenantID, &tm.ModuleKey, &tm.IsEnabled, &tm.CreatedAt, &tm.UpdatedAt); err != nil {
			return nil, err
		}
		flags = append(flags, tm)
	}
	return flags, rows.Err()
}
