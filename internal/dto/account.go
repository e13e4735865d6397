package dto

import "github.com/hqasem/small-biz-erp/internal/core/domain"

// CreateAccountRequest defines the data required to create a ledger account.
type CreateAccountRequest struct {
	Code       string `json:"code" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Type       string `json:"type" binding:"required"`
	ParentID   *int64 `json:"parent_id"`
	CurrencyID *int64 `json:"currency_id"`
}

// AccountResponse defines the account data returned to callers.
type AccountResponse struct {
	ID         int64  `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	ParentID   *int64 `json:"parent_id,omitempty"`
	CurrencyID *int64 `json:"currency_id,omitempty"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:         a.AccountID,
		Code:       a.Code,
		Name:       a.Name,
		Type:       string(a.AccountType),
		ParentID:   a.ParentAccountID,
		CurrencyID: a.CurrencyID,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
