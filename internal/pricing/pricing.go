// Package pricing computes display prices for subscription plans. All
// amounts are integer minor currency units (cents).
package pricing

import (
	"errors"
	"fmt"
)

var ErrUnknownPeriod = errors.New("unknown billing period")

type BillingPeriod int

const (
	Monthly BillingPeriod = iota
	Annual
)

// DefaultPeriod is selected when a pricing view first renders.
const DefaultPeriod = Annual

func (b BillingPeriod) String() string {
	if b == Annual {
		return "annual"
	}
	return "monthly"
}

// Toggle flips between monthly and annual billing.
func (b BillingPeriod) Toggle() BillingPeriod {
	if b == Annual {
		return Monthly
	}
	return Annual
}

// ParsePeriod accepts "monthly" and "annual". Empty selects DefaultPeriod.
func ParsePeriod(s string) (BillingPeriod, error) {
	switch s {
	case "":
		return DefaultPeriod, nil
	case "monthly":
		return Monthly, nil
	case "annual":
		return Annual, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// Price is a per-month amount for each billing period.
type Price struct {
	Monthly int64 `yaml:"monthly" json:"monthly" validate:"gt=0"`
	Annual  int64 `yaml:"annual" json:"annual" validate:"gt=0,ltefield=Monthly"`
}

type Plan struct {
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Description string   `yaml:"description" json:"description"`
	Price       Price    `yaml:"price" json:"price"`
	Features    []string `yaml:"features" json:"features" validate:"dive,required"`
	CTA         string   `yaml:"cta" json:"cta" validate:"required"`
	Popular     bool     `yaml:"popular" json:"popular"`
}

// Amount is the per-month price under b.
func (p Plan) Amount(b BillingPeriod) int64 {
	if b == Annual {
		return p.Price.Annual
	}
	return p.Price.Monthly
}

// AnnualSavings is what a year of annual billing saves over monthly.
func (p Plan) AnnualSavings() int64 {
	return (p.Price.Monthly - p.Price.Annual) * 12
}

// SavingsPercent is the annual discount rounded to a whole percent.
func (p Plan) SavingsPercent() int64 {
	if p.Price.Monthly <= 0 {
		return 0
	}
	diff := (p.Price.Monthly - p.Price.Annual) * 100
	return (diff + p.Price.Monthly/2) / p.Price.Monthly
}

// Quote is the rendered price of a plan for one billing period.
type Quote struct {
	Plan        string `json:"plan"`
	Period      string `json:"period"`
	Amount      int64  `json:"amount"`
	Display     string `json:"display"`
	Savings     int64  `json:"savings,omitempty"`
	SavingsText string `json:"savingsText,omitempty"`
	ShowSavings bool   `json:"showSavings"`
}

// QuotePlan formats p for b. Savings are only shown for annual billing.
func QuotePlan(p Plan, b BillingPeriod) Quote {
	q := Quote{
		Plan:    p.Name,
		Period:  b.String(),
		Amount:  p.Amount(b),
		Display: FormatMinor(p.Amount(b)),
	}
	if b == Annual {
		q.ShowSavings = true
		q.Savings = p.AnnualSavings()
		q.SavingsText = FormatMinor(q.Savings)
	}
	return q
}

// QuotePlans quotes every plan in order.
func QuotePlans(plans []Plan, b BillingPeriod) []Quote {
	out := make([]Quote, len(plans))
	for i, p := range plans {
		out[i] = QuotePlan(p, b)
	}
	return out
}

// FormatMinor renders cents as dollars with two decimals, e.g. 1799 -> "$17.99".
func FormatMinor(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
