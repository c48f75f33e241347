// AngelaMos | 2026
// pricing.go

package catalog

import (
	"fmt"

	"github.com/carterperez-dev/meucorpo/internal/core"
)

type PlanID string

const (
	PlanMonthly PlanID = "monthly"
	PlanAnnual  PlanID = "annual"
)

// Plan is display copy for the pricing dialog. Amounts are in centavos.
// Choosing a plan does not change what a subscription unlocks.
type Plan struct {
	ID                PlanID `json:"id"`
	Name              string `json:"name"`
	Currency          string `json:"currency"`
	PriceCents        int    `json:"price_cents"`
	Period            string `json:"period"`
	ListPriceCents    int    `json:"list_price_cents,omitempty"`
	MonthlyEquivCents int    `json:"monthly_equivalent_cents"`
	SavingsCents      int    `json:"savings_cents,omitempty"`
	SavingsPercent    int    `json:"savings_percent,omitempty"`
	TrialDays         int    `json:"trial_days"`
	GuaranteeDays     int    `json:"guarantee_days"`
	Highlighted       bool   `json:"highlighted"`
}

const (
	currencyBRL        = "BRL"
	monthlyPriceCents  = 1199
	annualPriceCents   = 21199
	planTrialDays      = 7
	refundGuaranteeDay = 30
)

// Plans builds the pricing table. The annual list price is the advertised
// strike-through figure of 24 monthly payments; savings derive from it.
func Plans() []Plan {
	annualList := 2 * 12 * monthlyPriceCents
	savings := annualList - annualPriceCents

	return []Plan{
		{
			ID:                PlanMonthly,
			Name:              "Plano Mensal",
			Currency:          currencyBRL,
			PriceCents:        monthlyPriceCents,
			Period:            "month",
			MonthlyEquivCents: monthlyPriceCents,
			TrialDays:         planTrialDays,
			GuaranteeDays:     refundGuaranteeDay,
		},
		{
			ID:                PlanAnnual,
			Name:              "Plano Anual",
			Currency:          currencyBRL,
			PriceCents:        annualPriceCents,
			Period:            "year",
			ListPriceCents:    annualList,
			MonthlyEquivCents: roundDiv(annualPriceCents, 12),
			SavingsCents:      savings,
			SavingsPercent:    roundDiv(savings*100, annualList),
			TrialDays:         planTrialDays,
			GuaranteeDays:     refundGuaranteeDay,
			Highlighted:       true,
		},
	}
}

func ParsePlanID(s string) (PlanID, error) {
	switch PlanID(s) {
	case PlanMonthly, PlanAnnual:
		return PlanID(s), nil
	}
	return "", fmt.Errorf("parse plan %q: %w", s, core.ErrInvalidInput)
}

func roundDiv(n, d int) int {
	return (n + d/2) / d
}
