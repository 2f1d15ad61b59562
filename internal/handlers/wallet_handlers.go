package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"hrhub/internal/common"
	"hrhub/internal/services"

	"github.com/labstack/echo/v4"
)

type WalletHandlers struct {
	walletService services.WalletService
}

func NewWalletHandlers(walletService services.WalletService) *WalletHandlers {
	return &WalletHandlers{walletService: walletService}
}

// GetWallet handles GET /v1/wallets/:employeeId
func (h *WalletHandlers) GetWallet(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	employeeID, err := common.ValidateUUID(c.Param("employeeId"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "employeeId", err.Error())
	}

	wallet, err := h.walletService.GetByEmployee(ctx, tenantID, employeeID)
	if err != nil {
		return common.SendNotFoundError(c, "Wallet")
	}

	return c.JSON(http.StatusOK, wallet)
}

type walletAmountRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// Deposit handles POST /v1/wallets/:employeeId/deposit
func (h *WalletHandlers) Deposit(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	employeeID, err := common.ValidateUUID(c.Param("employeeId"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "employeeId", err.Error())
	}

	var req walletAmountRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.Amount <= 0 {
		return common.SendValidationError(c, "amount", "Amount must be positive")
	}

	wallet, err := h.walletService.Deposit(ctx, tenantID, employeeID, req.Amount, req.Description)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	return c.JSON(http.StatusOK, wallet)
}

// Withdraw handles POST /v1/wallets/:employeeId/withdraw. Overdrawing is
// rejected with a conflict; partial withdrawals never happen.
func (h *WalletHandlers) Withdraw(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	employeeID, err := common.ValidateUUID(c.Param("employeeId"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "employeeId", err.Error())
	}

	var req walletAmountRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.Amount <= 0 {
		return common.SendValidationError(c, "amount", "Amount must be positive")
	}

	wallet, err := h.walletService.Withdraw(ctx, tenantID, employeeID, req.Amount, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientBalance) {
			return common.SendConflictError(c, "INSUFFICIENT_BALANCE", "Wallet balance is too low")
		}
		return common.SendClientError(c, err.Error())
	}

	return c.JSON(http.StatusOK, wallet)
}

// ListTransactions handles GET /v1/wallets/:employeeId/transactions
func (h *WalletHandlers) ListTransactions(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	employeeID, err := common.ValidateUUID(c.Param("employeeId"), "employee ID")
	if err != nil {
		return common.SendValidationError(c, "employeeId", err.Error())
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, offset = common.ValidatePaginationParams(limit, offset)

	transactions, err := h.walletService.ListTransactions(ctx, tenantID, employeeID, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list transactions")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"transactions": transactions,
		"count":        len(transactions),
	})
}
