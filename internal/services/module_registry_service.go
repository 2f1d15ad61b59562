package services

import (
	"context"

	"hrhub/internal/models"
	"hrhub/internal/repositories"
)

// ModuleRegistryService is the catalog of feature modules that can be
// enabled per tenant.
type ModuleRegistryService interface {
	// List returns all registered modules, core modules first. An empty
	// result means the registry has not been initialized yet, not that
	// modules don't exist.
	List(ctx context.Context) ([]*models.Module, error)
	// Initialize seeds the built-in catalog. Idempotent: calling it against
	// a populated registry is a no-op, and concurrent calls against an empty
	// registry insert each module exactly once.
	Initialize(ctx context.Context) error
}

type moduleRegistryService struct {
	moduleRepo repositories.ModuleRepository
}

func NewModuleRegistryService(moduleRepo repositories.ModuleRepository) ModuleRegistryService {
	return &moduleRegistryService{moduleRepo: moduleRepo}
}

func (s *moduleRegistryService) List(ctx context.Context) ([]*models.Module, error) {
	return s.moduleRepo.List(ctx)
}

func (s *moduleRegistryService) Initialize(ctx context.Context) error {
	return s.moduleRepo.SeedDefaults(ctx, models.DefaultModules)
}
