package repositories

import (
	"context"

	"hrhub/internal/models"
)

// ModuleRepository is the module catalog store.
type ModuleRepository interface {
	// List returns all registered modules: core modules first, then the
	// rest, tie-broken by key ascending. An empty registry yields an empty
	// slice, not an error.
	List(ctx context.Context) ([]*models.Module, error)
	GetByKey(ctx context.Context, key string) (*models.Module, error)
	// SeedDefaults inserts the given modules, skipping keys that already
	// exist. Concurrent seeders race safely: the first insert per key wins.
	SeedDefaults(ctx context.Context, modules []models.Module) error
}

type moduleRepo struct {
	db DB
}

func NewModuleRepo(db DB) ModuleRepository {
	return &moduleRepo{db: db}
}

func (r *moduleRepo) List(ctx context.Context) ([]*models.Module, error) {
	query := `
		SELECT module_key, module_name, description, icon, is_core, sort_order, created_at
		FROM modules
		ORDER BY is_core DESC, module_key ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	modules := []*models.Module{}
	for rows.Next() {
		module := &models.Module{}
		if err := rows.Scan(&module.Key, &module.Name, &module.Description, &module.Icon, &module.IsCore, &module.SortOrder, &module.CreatedAt); err != nil {
			return nil, err
		}
		modules = append(modules, module)
	}
	return modules, rows.Err()
}

func (r *moduleRepo) GetByKey(ctx context.Context, key string) (*models.Module, error) {
	module := &models.Module{}
	query := `
		SELECT module_key, module_name, description, icon, is_core, sort_order, created_at
		FROM modules
		WHERE module_key = $1
	`
	err := r.db.QueryRow(ctx, query, key).Scan(&module.Key, &module.Name, &module.Description, &module.Icon, &module.IsCore, &module.SortOrder, &module.CreatedAt)
	if err != nil {
		return nil, err
	}
	return module, nil
}

func (r *moduleRepo) SeedDefaults(ctx context.Context, modules []models.Module) error {
	query := `
		INSERT INTO modules (module_key, module_name, description, icon, is_core, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (module_key) DO NOTHING
	`
	for _, m := range modules {
		if _, err := r.db.Exec(ctx, query, m.Key, m.Name, m.Description, m.Icon, m.IsCore, m.SortOrder); err != nil {
			return err
		}
	}
	return nil
}
