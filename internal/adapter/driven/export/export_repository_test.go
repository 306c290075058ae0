package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/entity"
)

var fixedNow = time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC)

func newTestRepo() *ExportRepositoryImpl {
	return &ExportRepositoryImpl{now: func() time.Time { return fixedNow }}
}

func sampleResult() entity.EstimateResult {
	current := entity.UsageBreakdown{
		Case: entity.CurrentCase,
		Categories: []entity.CategoryUsage{
			{Category: entity.CategoryHeating, GasKWh: 7766, EnergyKWh: 7766, EmissionsKg: 1630.9},
			{Category: entity.CategoryHotWater, GasKWh: 4234, EnergyKWh: 4234, EmissionsKg: 889.1},
			{Category: entity.CategoryCooking},
			{Category: entity.CategoryEV},
			{Category: entity.CategoryOtherElec, ElecKWh: 3000, EnergyKWh: 3000, EmissionsKg: 408},
		},
		EnergyTotalKWh:   15000,
		EmissionsTotalKg: 2928,
	}
	hp := entity.UsageBreakdown{
		Case: "Typical HP Install",
		Categories: []entity.CategoryUsage{
			{Category: entity.CategoryHeating, ElecKWh: 2010, EnergyKWh: 2010, EmissionsKg: 273.4},
			{Category: entity.CategoryHotWater, ElecKWh: 1331, EnergyKWh: 1331, EmissionsKg: 181},
			{Category: entity.CategoryCooking},
			{Category: entity.CategoryEV},
			{Category: entity.CategoryOtherElec, ElecKWh: 3000, EnergyKWh: 3000, EmissionsKg: 408},
		},
		EnergyTotalKWh:   6341,
		EmissionsTotalKg: 862.4,
	}
	return entity.EstimateResult{
		GeneratedAt: fixedNow,
		Inputs:      entity.DefaultInputs(),
		Cases: []entity.CaseResult{
			{Usage: current, Cost: entity.NewCostBreakdown(entity.CurrentCase, 124.29, 754.8, 196.07, 790.5)},
			{Usage: hp, Cost: entity.NewCostBreakdown("Typical HP Install", 0, 0, 196.07, 1670.85)},
		},
		Comparison: []entity.CaseComparison{
			{Case: entity.CurrentCase, CostTotal: decimal.RequireFromString("1865.66")},
			{
				Case:            "Typical HP Install",
				CostTotal:       decimal.RequireFromString("1866.92"),
				CostChange:      decimal.RequireFromString("1.26"),
				EmissionsChange: decimal.NewFromInt(-2066),
			},
		},
		Warnings: []string{"gas heating set to zero"},
	}
}

func TestExportToCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	path, err := newTestRepo().ExportToCSV(sampleResult(), "estimate", dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "estimate_20251103_093000.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// header + 6 usage rows + 6 cost rows
	require.Len(t, records, 13)
	assert.Equal(t, csvHeaders, records[0])
	assert.Equal(t, []string{"Current", "Heating", "7766", "1631", ""}, records[1])
	assert.Equal(t, []string{"Typical HP Install", "Elec. unit", "", "", "1670.85"}, records[12])
	for _, rec := range records[1:] {
		assert.NotEqual(t, "EV", rec[1])
		assert.NotEqual(t, "Cooking", rec[1])
	}
}

func TestExportToJSON(t *testing.T) {
	dir := t.TempDir()
	path, err := newTestRepo().ExportToJSON(sampleResult(), "estimate", dir)
	require.NoError(t, err)
	assert.Equal(t, ".json", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc entity.EstimateResult
	require.NoError(t, json.Unmarshal(data, &doc))

	want := sampleResult()
	require.Len(t, doc.Cases, 2)
	assert.Equal(t, want.Cases, doc.Cases)
	assert.Equal(t, want.Inputs, doc.Inputs)
	assert.Equal(t, entity.TariffFlat, doc.Inputs.Tariff.Electricity.Kind())
	assert.True(t, want.GeneratedAt.Equal(doc.GeneratedAt))
	require.Len(t, doc.Comparison, 2)
	assert.True(t, want.Comparison[1].CostChange.Equal(doc.Comparison[1].CostChange))
	assert.True(t, want.Comparison[1].EmissionsChange.Equal(doc.Comparison[1].EmissionsChange))
	assert.Equal(t, want.Warnings, doc.Warnings)
}

func TestExportToPDF(t *testing.T) {
	dir := t.TempDir()
	path, err := newTestRepo().ExportToPDF(sampleResult(), "estimate", dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	head := make([]byte, 5)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Read(head)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(head))
}

func TestGenerateFilenameDefaultsToWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	name, err := newTestRepo().generateFilename("estimate", "", "csv")
	require.NoError(t, err)
	assert.Equal(t, "estimate_20251103_093000.csv", filepath.Base(name))
	assert.Equal(t, dir, filepath.Dir(name))
}

func TestSigned(t *testing.T) {
	assert.Equal(t, "+1.26", signed("1.26"))
	assert.Equal(t, "-2066", signed("-2066"))
	assert.Equal(t, "0", signed("0"))
}
