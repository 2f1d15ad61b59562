package repositories

import (
	"context"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

type WalletRepository interface {
	Create(ctx context.Context, wallet *models.Wallet) error
	GetByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) (*models.Wallet, error)
	// Credit atomically increases the balance and records a deposit.
	Credit(ctx context.Context, tenantID, walletID uuid.UUID, amount float64, description string) error
	// Debit atomically decreases the balance and records a withdrawal.
	// Returns false without writing when the balance is insufficient.
	Debit(ctx context.Context, tenantID, walletID uuid.UUID, amount float64, description string) (bool, error)
	ListTransactions(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]*models.WalletTransaction, error)
}

type walletRepo struct {
	db DB
}

func NewWalletRepo(db DB) WalletRepository {
	return &walletRepo{db: db}
}

func (r *walletRepo) Create(ctx context.Context, w *models.Wallet) error {
	query := `
		INSERT INTO wallets (id, tenant_id, employee_id, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (employee_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, w.ID, w.TenantID, w.EmployeeID, w.Balance)
	return err
}

func (r *walletRepo) GetByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) (*models.Wallet, error) {
	w := &models.Wallet{}
	query := `
		SELECT id, tenant_id, employee_id, balance, created_at, updated_at
		FROM wallets
		WHERE tenant_id = $1 AND employee_id = $2
	`
	err := r.db.QueryRow(ctx, query, tenantID, employeeID).Scan(&w.ID, &w.TenantID, &w.EmployeeID, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// The balance update and the transaction insert run as one statement so the
// wallet invariant (balance == sum of transactions) holds without a client
// side transaction.
func (r *walletRepo) Credit(ctx context.Context, tenantID, walletID uuid.UUID, amount float64, description string) error {
	query := `
		WITH updated AS (
			UPDATE wallets SET balance = balance + $3, updated_at = NOW()
			WHERE tenant_id = $1 AND id = $2
			RETURNING id
		)
		INSERT INTO wallet_transactions (id, wallet_id, transaction_type, amount, description, created_at)
		SELECT gen_random_uuid(), id, 'deposit', $3, $4, NOW() FROM updated
	`
	_, err := r.db.Exec(ctx, query, tenantID, walletID, amount, description)
	return err
}

func (r *walletRepo) Debit(ctx context.Context, tenantID, walletID uuid.UUID, amount float64, description string) (bool, error) {
	query := `
		WITH updated AS (
			UPDATE wallets SET balance = balance - $3, updated_at = NOW()
			WHERE tenant_id = $1 AND id = $2 AND balance >= $3
			RETURNING id
		)
		INSERT INTO wallet_transactions (id, wallet_id, transaction_type, amount, description, created_at)
		SELECT gen_random_uuid(), id, 'withdrawal', $3, $4, NOW() FROM updated
	`
	tag, err := r.db.Exec(ctx, query, tenantID, walletID, amount, description)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *walletRepo) ListTransactions(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]*models.WalletTransaction, error) {
	query := `
		SELECT id, wallet_id, transaction_type, amount, description, created_at
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.WalletTransaction
	for rows.Next() {
		tx := &models.WalletTransaction{}
		if err := rows.Scan(&tx.ID, &tx.WalletID, &tx.Type, &tx.Amount, &tx.Description, &tx.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}
