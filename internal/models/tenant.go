package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DomainTypeSubdomain = "subdomain"
	DomainTypeCustom    = "custom"
)

type Tenant struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Subdomain      string    `json:"subdomain" db:"subdomain"`
	DomainType     string    `json:"domain_type" db:"domain_type"`
	CustomDomain   *string   `json:"custom_domain,omitempty" db:"custom_domain"`
	LogoURL        *string   `json:"logo_url,omitempty" db:"logo_url"`
	PrimaryColor   string    `json:"primary_color" db:"primary_color"`
	SecondaryColor string    `json:"secondary_color" db:"secondary_color"`
	ContactEmail   *string   `json:"contact_email,omitempty" db:"contact_email"`
	ContactPhone   *string   `json:"contact_phone,omitempty" db:"contact_phone"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// FullDomain returns the externally visible domain for the tenant.
func (t *Tenant) FullDomain(baseDomain string) string {
	if t.DomainType == DomainTypeCustom && t.CustomDomain != nil && *t.CustomDomain != "" {
		return *t.CustomDomain
	}
	return t.Subdomain + "." + baseDomain
}

// TenantTheme carries the branding colors served to clients.
type TenantTheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

type TenantContact struct {
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// TenantConfig is the resolved, per-tenant configuration bundle consumed by
// clients at startup. Derived from the tenant row plus its module flags;
// never persisted.
type TenantConfig struct {
	Name      string          `json:"name"`
	Subdomain string          `json:"subdomain"`
	Domain    string          `json:"domain"`
	Modules   map[string]bool `json:"modules"`
	Theme     TenantTheme     `json:"theme"`
	LogoURL   *string         `json:"logo_url"`
	Contact   TenantContact   `json:"contact"`
	IsActive  bool            `json:"is_active"`
}
