package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hrhub/internal/caching"
	"hrhub/internal/common"
	"hrhub/internal/models"
	"hrhub/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	defaultPrimaryColor   = "#3498db"
	defaultSecondaryColor = "#2ecc71"
)

// TenantService is the provisioning flow: create/edit tenant records and
// toggle their feature modules.
type TenantService interface {
	Create(ctx context.Context, req *CreateTenantRequest) (*models.Tenant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*models.Tenant, error)
	Update(ctx context.Context, req *UpdateTenantRequest) (*models.Tenant, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Tenant, error)
	// ToggleModule surfaces ErrCoreModuleImmutable and ErrModuleUnknown
	// unchanged to the administrator.
	ToggleModule(ctx context.Context, tenantID uuid.UUID, moduleKey string, enabled bool) (*models.TenantModule, error)
}

type CreateTenantRequest struct {
	Name           string   `json:"name"`
	Subdomain      string   `json:"subdomain"`
	CustomDomain   *string  `json:"custom_domain"`
	PrimaryColor   string   `json:"primary_color"`
	SecondaryColor string   `json:"secondary_color"`
	ContactEmail   *string  `json:"contact_email"`
	ContactPhone   *string  `json:"contact_phone"`
	LogoURL        *string  `json:"logo_url"`
	ModuleKeys     []string `json:"module_keys"`
	AdminName      string   `json:"admin_name"`
	AdminEmail     string   `json:"admin_email"`
	AdminPassword  string   `json:"admin_password"`
}

type UpdateTenantRequest struct {
	ID             uuid.UUID
	Name           *string `json:"name"`
	CustomDomain   *string `json:"custom_domain"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
	ContactEmail   *string `json:"contact_email"`
	ContactPhone   *string `json:"contact_phone"`
	LogoURL        *string `json:"logo_url"`
	IsActive       *bool   `json:"is_active"`
}

type tenantService struct {
	tenantRepo       repositories.TenantRepository
	tenantModuleRepo repositories.TenantModuleRepository
	userRepo         repositories.UserRepository
	registrySvc      ModuleRegistryService
	tenantModuleSvc  TenantModuleService
	authSvc          AuthService
	cacheSvc         caching.CacheService
}

func NewTenantService(
	tenantRepo repositories.TenantRepository,
	tenantModuleRepo repositories.TenantModuleRepository,
	userRepo repositories.UserRepository,
	registrySvc ModuleRegistryService,
	tenantModuleSvc TenantModuleService,
	authSvc AuthService,
	cacheSvc caching.CacheService,
) TenantService {
	return &tenantService{
		tenantRepo:       tenantRepo,
		tenantModuleRepo: tenantModuleRepo,
		userRepo:         userRepo,
		registrySvc:      registrySvc,
		tenantModuleSvc:  tenantModuleSvc,
		authSvc:          authSvc,
		cacheSvc:         cacheSvc,
	}
}

func (s *tenantService) Create(ctx context.Context, req *CreateTenantRequest) (*models.Tenant, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	subdomain, err := common.ValidateSubdomain(req.Subdomain)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubdomain, err)
	}

	if req.AdminEmail != "" && len(req.AdminPassword) < 8 {
		return nil, fmt.Errorf("admin password must be at least 8 characters")
	}

	primary := req.PrimaryColor
	if primary == "" {
		primary = defaultPrimaryColor
	}
	secondary := req.SecondaryColor
	if secondary == "" {
		secondary = defaultSecondaryColor
	}
	if err := common.ValidateHexColor(primary, "primary_color"); err != nil {
		return nil, err
	}
	if err := common.ValidateHexColor(secondary, "secondary_color"); err != nil {
		return nil, err
	}

	domainType := models.DomainTypeSubdomain
	if req.CustomDomain != nil && *req.CustomDomain != "" {
		domainType = models.DomainTypeCustom
	}

	tenant := &models.Tenant{
		ID:             uuid.New(),
		Name:           req.Name,
		Subdomain:      subdomain,
		DomainType:     domainType,
		CustomDomain:   req.CustomDomain,
		LogoURL:        req.LogoURL,
		PrimaryColor:   primary,
		SecondaryColor: secondary,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		IsActive:       true,
	}

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	// One flag row per registered module; core modules end up enabled no
	// matter what the caller selected. An empty registry here means the
	// catalog was never seeded, so seed it and retry once.
	modules, err := s.registrySvc.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(modules) == 0 {
		if err := s.registrySvc.Initialize(ctx); err != nil {
			return nil, err
		}
		if modules, err = s.registrySvc.List(ctx); err != nil {
			return nil, err
		}
	}

	defaults := s.tenantModuleSvc.DefaultsFor(modules, req.ModuleKeys)
	for _, m := range modules {
		tm := &models.TenantModule{
			ID:        uuid.New(),
			TenantID:  tenant.ID,
			ModuleKey: m.Key,
			IsEnabled: defaults[m.Key],
		}
		if err := s.tenantModuleRepo.Upsert(ctx, tm); err != nil {
			return nil, fmt.Errorf("failed to initialize module %s: %w", m.Key, err)
		}
	}

	// The first admin is created with the tenant so the organization can
	// log in immediately.
	if req.AdminEmail != "" {
		hash, err := s.authSvc.HashPassword(req.AdminPassword)
		if err != nil {
			return nil, err
		}
		admin := &models.User{
			ID:           uuid.New(),
			TenantID:     tenant.ID,
			Email:        req.AdminEmail,
			PasswordHash: hash,
			Name:         req.AdminName,
			IsAdmin:      true,
		}
		if err := s.userRepo.Create(ctx, admin); err != nil {
			return nil, fmt.Errorf("failed to create admin user: %w", err)
		}
	}

	return tenant, nil
}

func (s *tenantService) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

func (s *tenantService) GetBySubdomain(ctx context.Context, subdomain string) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.GetBySubdomain(ctx, subdomain)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

func (s *tenantService) Update(ctx context.Context, req *UpdateTenantRequest) (*models.Tenant, error) {
	tenant, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.CustomDomain != nil {
		tenant.CustomDomain = req.CustomDomain
		if *req.CustomDomain != "" {
			tenant.DomainType = models.DomainTypeCustom
		} else {
			tenant.DomainType = models.DomainTypeSubdomain
		}
	}
	if req.PrimaryColor != nil {
		if err := common.ValidateHexColor(*req.PrimaryColor, "primary_color"); err != nil {
			return nil, err
		}
		tenant.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		if err := common.ValidateHexColor(*req.SecondaryColor, "secondary_color"); err != nil {
			return nil, err
		}
		tenant.SecondaryColor = *req.SecondaryColor
	}
	if req.ContactEmail != nil {
		tenant.ContactEmail = req.ContactEmail
	}
	if req.ContactPhone != nil {
		tenant.ContactPhone = req.ContactPhone
	}
	if req.LogoURL != nil {
		tenant.LogoURL = req.LogoURL
	}
	if req.IsActive != nil {
		tenant.IsActive = *req.IsActive
	}

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}

	s.invalidateConfig(ctx, tenant.Subdomain)

	return tenant, nil
}

func (s *tenantService) Deactivate(ctx context.Context, id uuid.UUID) error {
	inactive := false
	_, err := s.Update(ctx, &UpdateTenantRequest{ID: id, IsActive: &inactive})
	return err
}

func (s *tenantService) List(ctx context.Context, limit, offset int) ([]*models.Tenant, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.tenantRepo.List(ctx, limit, offset)
}

func (s *tenantService) ToggleModule(ctx context.Context, tenantID uuid.UUID, moduleKey string, enabled bool) (*models.TenantModule, error) {
	return s.tenantModuleSvc.Set(ctx, tenantID, moduleKey, enabled)
}

func (s *tenantService) invalidateConfig(ctx context.Context, subdomain string) {
	if err := s.cacheSvc.DeleteTenantConfig(ctx, subdomain); err != nil {
		log.Printf("WARN: could not invalidate config cache for %s: %v", subdomain, err)
	}
}
