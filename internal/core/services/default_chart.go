package services

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
)

//go:embed default_chart.yaml
var defaultChartYAML []byte

// seedChartRow is one row of the versioned default chart.
type seedChartRow struct {
	Code   string `yaml:"code"`
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Parent string `yaml:"parent"` // parent account code, empty for roots
}

type defaultChart struct {
	Version  int            `yaml:"version"`
	Accounts []seedChartRow `yaml:"accounts"`
}

// loadDefaultChart parses the embedded chart and validates the shape the
// two-pass seeding relies on: unique codes, known types, and parents that
// appear before their children.
func loadDefaultChart() (*defaultChart, error) {
	var chart defaultChart
	if err := yaml.Unmarshal(defaultChartYAML, &chart); err != nil {
		return nil, fmt.Errorf("failed to parse default chart: %w", err)
	}

	seen := make(map[string]bool, len(chart.Accounts))
	for _, a := range chart.Accounts {
		if a.Code == "" || a.Name == "" {
			return nil, fmt.Errorf("default chart entry missing code or name: %+v", a)
		}
		if !domain.ValidAccountType(domain.AccountType(a.Type)) {
			return nil, fmt.Errorf("default chart entry %s has unknown type %q", a.Code, a.Type)
		}
		if seen[a.Code] {
			return nil, fmt.Errorf("default chart contains duplicate code %s", a.Code)
		}
		if a.Parent != "" && !seen[a.Parent] {
			return nil, fmt.Errorf("default chart entry %s references parent %s before it is defined", a.Code, a.Parent)
		}
		seen[a.Code] = true
	}
	return &chart, nil
}

// Default posting codes for manual entries, keyed by entry type. An entry
// type mapping both sides to the same code (adjustment) produces a
// self-canceling entry with zero net effect on any other account.
var manualEntryDefaults = map[domain.ReferenceType]struct {
	DebitCode  string
	CreditCode string
}{
	domain.RefManualIncome:  {DebitCode: "1150", CreditCode: "4400"},
	domain.RefManualExpense: {DebitCode: "5500", CreditCode: "1150"},
	domain.RefSalary:        {DebitCode: "5300", CreditCode: "1150"},
	domain.RefVendorBill:    {DebitCode: "5400", CreditCode: "2100"},
	domain.RefAdjustment:    {DebitCode: "3900", CreditCode: "3900"},
}
