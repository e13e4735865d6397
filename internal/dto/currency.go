package dto

import "github.com/hqasem/small-biz-erp/internal/core/domain"

// CreateCurrencyRequest defines the data required to add a currency.
type CreateCurrencyRequest struct {
	Code   string `json:"code" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Symbol string `json:"symbol"`
}

// CurrencyResponse defines the currency data returned to callers.
type CurrencyResponse struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// ToCurrencyResponse converts a domain.Currency to its response DTO.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:     c.CurrencyID,
		Code:   c.Code,
		Name:   c.Name,
		Symbol: c.Symbol,
	}
}

// ToCurrencyResponses converts a slice of domain currencies.
func ToCurrencyResponses(currencies []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		responses[i] = ToCurrencyResponse(&currencies[i])
	}
	return responses
}
