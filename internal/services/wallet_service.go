package services

import (
	"context"
	"errors"
	"fmt"

	"hrhub/internal/common"
	"hrhub/internal/models"
	"hrhub/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type WalletService interface {
	GetByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) (*models.Wallet, error)
	// Deposit credits the employee's wallet.
	Deposit(ctx context.Context, tenantID, employeeID uuid.UUID, amount float64, description string) (*models.Wallet, error)
	// Withdraw debits the wallet; overdrawing fails with
	// ErrInsufficientBalance and writes nothing.
	Withdraw(ctx context.Context, tenantID, employeeID uuid.UUID, amount float64, description string) (*models.Wallet, error)
	ListTransactions(ctx context.Context, tenantID, employeeID uuid.UUID, limit, offset int) ([]*models.WalletTransaction, error)
}

type walletService struct {
	walletRepo repositories.WalletRepository
}

func NewWalletService(walletRepo repositories.WalletRepository) WalletService {
	return &walletService{walletRepo: walletRepo}
}

func (s *walletService) GetByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) (*models.Wallet, error) {
	wallet, err := s.walletRepo.GetByEmployee(ctx, tenantID, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("wallet not found")
		}
		return nil, err
	}
	return wallet, nil
}

func (s *walletService) Deposit(ctx context.Context, tenantID, employeeID uuid.UUID, amount float64, description string) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	wallet, err := s.GetByEmployee(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}
	if err := s.walletRepo.Credit(ctx, tenantID, wallet.ID, amount, description); err != nil {
		return nil, err
	}
	return s.GetByEmployee(ctx, tenantID, employeeID)
}

func (s *walletService) Withdraw(ctx context.Context, tenantID, employeeID uuid.UUID, amount float64, description string) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	wallet, err := s.GetByEmployee(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}
	ok, err := s.walletRepo.Debit(ctx, tenantID, wallet.ID, amount, description)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInsufficientBalance
	}
	return s.GetByEmployee(ctx, tenantID, employeeID)
}

func (s *walletService) ListTransactions(ctx context.Context, tenantID, employeeID uuid.UUID, limit, offset int) ([]*models.WalletTransaction, error) {
	wallet, err := s.GetByEmployee(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.walletRepo.ListTransactions(ctx, wallet.ID, limit, offset)
}
