package models

import (
	"time"

	"github.com/google/uuid"
)

// Wallet transaction types.
const (
	TransactionDeposit    = "deposit"
	TransactionWithdrawal = "withdrawal"
)

// Wallet is one per employee; balance always equals the sum of its
// transactions.
type Wallet struct {
	ID         uuid.UUID `json:"id" db:"id"`
	TenantID   uuid.UUID `json:"tenant_id" db:"tenant_id"`
	EmployeeID uuid.UUID `json:"employee_id" db:"employee_id"`
	Balance    float64   `json:"balance" db:"balance"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type WalletTransaction struct {
	ID          uuid.UUID `json:"id" db:"id"`
	WalletID    uuid.UUID `json:"wallet_id" db:"wallet_id"`
	Type        string    `json:"transaction_type" db:"transaction_type"`
	Amount      float64   `json:"amount" db:"amount"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
