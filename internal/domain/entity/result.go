package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaseResult is the usage and bill of one case.
type CaseResult struct {
	Usage UsageBreakdown `json:"usage"`
	Cost  CostBreakdown  `json:"cost"`
}

// Name returns the case label.
func (r CaseResult) Name() string {
	return r.Usage.Case
}

// CaseComparison holds a case's totals and their change against Current.
// Money is rounded to pence and energy/emissions to whole units.
type CaseComparison struct {
	Case               string          `json:"case"`
	CostTotal          decimal.Decimal `json:"cost_total"`
	CostChange         decimal.Decimal `json:"cost_change"`
	CostChangePct      decimal.Decimal `json:"cost_change_pct"`
	EmissionsTotal     decimal.Decimal `json:"emissions_total_kg"`
	EmissionsChange    decimal.Decimal `json:"emissions_change_kg"`
	EmissionsChangePct decimal.Decimal `json:"emissions_change_pct"`
	EnergyTotal        decimal.Decimal `json:"energy_total_kwh"`
	EnergyChange       decimal.Decimal `json:"energy_change_kwh"`
	EnergyChangePct    decimal.Decimal `json:"energy_change_pct"`
}

// EstimateResult is everything produced by one run.
type EstimateResult struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Inputs      Inputs           `json:"inputs"`
	Splits      EnergySplits     `json:"splits"`
	Cases       []CaseResult     `json:"cases"`
	Comparison  []CaseComparison `json:"comparison"`
	Warnings    []string         `json:"warnings,omitempty"`
}

// EnergyRows flattens every case.
func (r EstimateResult) EnergyRows() []EnergyRow {
	var rows []EnergyRow
	for _, c := range r.Cases {
		rows = append(rows, c.Usage.Rows()...)
	}
	return rows
}

// CostRows flattens every case.
func (r EstimateResult) CostRows() []CostRow {
	var rows []CostRow
	for _, c := range r.Cases {
		rows = append(rows, c.Cost.Rows()...)
	}
	return rows
}

// PresentCategories returns the categories that are non-zero in at least one
// case. EV is dropped without an EV and Cooking without gas cooking.
func (r EstimateResult) PresentCategories() []Category {
	var out []Category
	for _, cat := range Categories {
		for _, c := range r.Cases {
			cu := c.Usage.Get(cat)
			if cu.EnergyKWh != 0 || cu.EmissionsKg != 0 {
				out = append(out, cat)
				break
			}
		}
	}
	return out
}
