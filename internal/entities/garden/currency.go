package garden

import "strings"

// Currency names one of the three wallet counters
type Currency string

// Currencies. Fruit sales pay secondary; speed-ups cost primary.
const (
	CurrencyPrimary   Currency = "primary"
	CurrencySecondary Currency = "secondary"
	CurrencyPremium   Currency = "premium"
)

// Currencies lists every currency
var Currencies = []Currency{CurrencyPrimary, CurrencySecondary, CurrencyPremium}

// ParseCurrency accepts the canonical names and their in-game aliases
func ParseCurrency(s string) (Currency, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primary", "gold":
		return CurrencyPrimary, true
	case "secondary", "silver":
		return CurrencySecondary, true
	case "premium", "crystal":
		return CurrencyPremium, true
	}
	return "", false
}

// Wallet holds the three counters. The JSON shape is the persisted format.
type Wallet struct {
	Primary   int64 `json:"primary"`
	Secondary int64 `json:"secondary"`
	Premium   int64 `json:"premium"`
}

// Get returns the counter for c
func (w Wallet) Get(c Currency) int64 {
	switch c {
	case CurrencyPrimary:
		return w.Primary
	case CurrencySecondary:
		return w.Secondary
	case CurrencyPremium:
		return w.Premium
	}
	return 0
}

// With returns a copy of w with the counter for c set to v
func (w Wallet) With(c Currency, v int64) Wallet {
	switch c {
	case CurrencyPrimary:
		w.Primary = v
	case CurrencySecondary:
		w.Secondary = v
	case CurrencyPremium:
		w.Premium = v
	}
	return w
}
