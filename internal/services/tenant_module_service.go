package services

import (
	"context"
	"errors"
	"log"

	"hrhub/internal/caching"
	"hrhub/internal/models"
	"hrhub/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TenantModuleService manages the per-tenant module flags.
type TenantModuleService interface {
	// DefaultsFor computes the initial flag set for a new tenant: core
	// modules are always enabled; non-core modules only when their key is
	// in selectedKeys.
	DefaultsFor(modules []*models.Module, selectedKeys []string) map[string]bool

	// Set upserts the flag for (tenant, module key). Disabling a core
	// module fails with ErrCoreModuleImmutable; an unregistered key fails
	// with ErrModuleUnknown. State is unchanged on failure.
	Set(ctx context.Context, tenantID uuid.UUID, moduleKey string, enabled bool) (*models.TenantModule, error)

	// Resolve returns one entry per registered module: the stored flag when
	// a row exists, otherwise the core-derived default (true for core,
	// false for the rest). Modules registered after the tenant was
	// provisioned are therefore still covered.
	Resolve(ctx context.Context, tenantID uuid.UUID) (map[string]bool, error)
}

type tenantModuleService struct {
	moduleRepo       repositories.ModuleRepository
	tenantModuleRepo repositories.TenantModuleRepository
	tenantRepo       repositories.TenantRepository
	cacheSvc         caching.CacheService
}

func NewTenantModuleService(
	moduleRepo repositories.ModuleRepository,
	tenantModuleRepo repositories.TenantModuleRepository,
	tenantRepo repositories.TenantRepository,
	cacheSvc caching.CacheService,
) TenantModuleService {
	return &tenantModuleService{
		moduleRepo:       moduleRepo,
		tenantModuleRepo: tenantModuleRepo,
		tenantRepo:       tenantRepo,
		cacheSvc:         cacheSvc,
	}
}

func (s *tenantModuleService) DefaultsFor(modules []*models.Module, selectedKeys []string) map[string]bool {
	selected := make(map[string]bool, len(selectedKeys))
	for _, key := range selectedKeys {
		selected[key] = true
	}

	defaults := make(map[string]bool, len(modules))
	for _, m := range modules {
		defaults[m.Key] = m.IsCore || selected[m.Key]
	}
	return defaults
}

func (s *tenantModuleService) Set(ctx context.Context, tenantID uuid.UUID, moduleKey string, enabled bool) (*models.TenantModule, error) {
	module, err := s.moduleRepo.GetByKey(ctx, moduleKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrModuleUnknown
		}
		return nil, err
	}

	if module.IsCore && !enabled {
		return nil, ErrCoreModuleImmutable
	}

	tm := &models.TenantModule{
		ID:        uuid.New(),
		TenantID:  tenantID,
		ModuleKey: moduleKey,
		IsEnabled: enabled,
	}
	if err := s.tenantModuleRepo.Upsert(ctx, tm); err != nil {
		return nil, err
	}

	s.invalidateConfig(ctx, tenantID)

	return tm, nil
}

func (s *tenantModuleService) Resolve(ctx context.Context, tenantID uuid.UUID) (map[string]bool, error) {
	modules, err := s.moduleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stored, err := s.tenantModuleRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	flags := make(map[string]bool, len(stored))
	for _, tm := range stored {
		flags[tm.ModuleKey] = tm.IsEnabled
	}

	resolved := make(map[string]bool, len(modules))
	for _, m := range modules {
		if m.IsCore {
			// Core is always on regardless of what a row says.
			resolved[m.Key] = true
			continue
		}
		if enabled, ok := flags[m.Key]; ok {
			resolved[m.Key] = enabled
		} else {
			resolved[m.Key] = false
		}
	}
	return resolved, nil
}

// invalidateConfig drops the cached resolved config so a toggle is visible
// to the next gate check. Cache trouble is not a toggle failure.
func (s *tenantModuleService) invalidateConfig(ctx context.Context, tenantID uuid.UUID) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		log.Printf("WARN: could not load tenant %s for cache invalidation: %v", tenantID, err)
		return
	}
	if err := s.cacheSvc.DeleteTenantConfig(ctx, tenant.Subdomain); err != nil {
		log.Printf("WARN: could not invalidate config cache for %s: %v", tenant.Subdomain, err)
	}
}
