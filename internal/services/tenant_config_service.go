package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"hrhub/internal/caching"
	"hrhub/internal/models"
	"hrhub/internal/repositories"

	"github.com/jackc/pgx/v5"
)

const configCacheTTL = 5 * time.Minute

// TenantConfigService assembles the resolved per-tenant configuration
// (branding + module flags) served to every client at startup.
type TenantConfigService interface {
	// Resolve looks up the tenant by subdomain (case-insensitive) and
	// returns its config. Missing or inactive tenants fail with
	// ErrTenantNotFound. Pure read; results are cached briefly and the
	// cache is dropped whenever a toggle or tenant edit touches the tenant.
	Resolve(ctx context.Context, subdomain string) (*models.TenantConfig, error)
}

type tenantConfigService struct {
	tenantRepo      repositories.TenantRepository
	tenantModuleSvc TenantModuleService
	cacheSvc        caching.CacheService
	baseDomain      string
}

func NewTenantConfigService(
	tenantRepo repositories.TenantRepository,
	tenantModuleSvc TenantModuleService,
	cacheSvc caching.CacheService,
	baseDomain string,
) TenantConfigService {
	return &tenantConfigService{
		tenantRepo:      tenantRepo,
		tenantModuleSvc: tenantModuleSvc,
		cacheSvc:        cacheSvc,
		baseDomain:      baseDomain,
	}
}

func (s *tenantConfigService) Resolve(ctx context.Context, subdomain string) (*models.TenantConfig, error) {
	subdomain = strings.ToLower(strings.TrimSpace(subdomain))
	if subdomain == "" {
		return nil, ErrTenantNotFound
	}

	if cached, err := s.cacheSvc.GetTenantConfig(ctx, subdomain); err != nil {
		// A broken cache is a miss, not a resolution failure.
		log.Printf("WARN: config cache read failed for %s: %v", subdomain, err)
	} else if cached != nil {
		return cached, nil
	}

	tenant, err := s.tenantRepo.GetBySubdomain(ctx, subdomain)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	if !tenant.IsActive {
		return nil, ErrTenantNotFound
	}

	modules, err := s.tenantModuleSvc.Resolve(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}

	config := &models.TenantConfig{
		Name:      tenant.Name,
		Subdomain: tenant.Subdomain,
		Domain:    tenant.FullDomain(s.baseDomain),
		Modules:   modules,
		Theme: models.TenantTheme{
			Primary:   tenant.PrimaryColor,
			Secondary: tenant.SecondaryColor,
		},
		LogoURL: tenant.LogoURL,
		Contact: models.TenantContact{
			Email: tenant.ContactEmail,
			Phone: tenant.ContactPhone,
		},
		IsActive: tenant.IsActive,
	}

	if err := s.cacheSvc.SetTenantConfig(ctx, subdomain, config, configCacheTTL); err != nil {
		log.Printf("WARN: config cache write failed for %s: %v", subdomain, err)
	}

	return config, nil
}
