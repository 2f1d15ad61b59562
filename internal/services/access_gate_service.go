package services

import (
	"context"
	"errors"
	"log"
)

// AccessGateService answers "is module X enabled for tenant Y". It is the
// authoritative enforcement point: clients run the same policy against the
// resolved config, but only as a rendering convenience.
type AccessGateService interface {
	// Check is fail-closed: any resolution failure (unknown subdomain,
	// inactive tenant, transient store error) and any module key the
	// registry does not know both report false. It never returns an error,
	// so a gating problem degrades to a locked feature rather than a
	// visible failure.
	Check(ctx context.Context, subdomain, moduleKey string) bool
}

type accessGateService struct {
	configSvc TenantConfigService
}

func NewAccessGateService(configSvc TenantConfigService) AccessGateService {
	return &accessGateService{configSvc: configSvc}
}

func (s *accessGateService) Check(ctx context.Context, subdomain, moduleKey string) bool {
	config, err := s.configSvc.Resolve(ctx, subdomain)
	if err != nil {
		if !errors.Is(err, ErrTenantNotFound) {
			log.Printf("WARN: gate check failed closed for %s/%s: %v", subdomain, moduleKey, err)
		}
		return false
	}
	return config.Modules[moduleKey]
}
