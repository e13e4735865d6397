package domain

// Currency represents a currency in the catalog (e.g. USD, EUR).
type Currency struct {
	CurrencyID int64  `json:"currencyID"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Symbol     string `json:"symbol,omitempty"`
}
