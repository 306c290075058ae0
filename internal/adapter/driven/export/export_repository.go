package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/entity"
	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

var csvHeaders = []string{"Case", "Breakdown", "Energy (kWh)", "Emissions (kg CO2)", "Cost (GBP)"}

// ExportToCSV writes the non-zero usage rows followed by the non-zero bill
// rows of every case.
func (r *ExportRepositoryImpl) ExportToCSV(result entity.EstimateResult, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(csvHeaders); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range entity.NonZeroEnergyRows(result.EnergyRows()) {
		record := []string{
			row.Case,
			string(row.Category),
			fmt.Sprintf("%.0f", row.EnergyKWh),
			fmt.Sprintf("%.0f", row.EmissionsKg),
			"",
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}
	for _, row := range entity.NonZeroCostRows(result.CostRows()) {
		record := []string{row.Case, string(row.Charge), "", "", fmt.Sprintf("%.2f", row.Cost)}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON writes the whole result document.
func (r *ExportRepositoryImpl) ExportToJSON(result entity.EstimateResult, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF writes a summary page followed by one page per case.
func (r *ExportRepositoryImpl) ExportToPDF(result entity.EstimateResult, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	generated := result.GeneratedAt
	if generated.IsZero() {
		generated = r.now()
	}
	page := 0

	drawHeader := func(title, subtitle string) {
		page++
		pdf.AddPage()

		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr("  "+title), "", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(0, 8, tr("  "+subtitle), "", 1, "L", true, 0, "")
		pdf.Ln(10)
	}

	drawSectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		drawSectionTitle(title)
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	drawTable := func(title string, headers []string, widths []float64, rows [][]string) {
		if len(rows) == 0 {
			return
		}
		drawSectionTitle(title)
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for i, h := range headers {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, tr(h), "B", 0, align, false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 10)
		for _, row := range rows {
			for i, cell := range row {
				align := "R"
				if i == 0 {
					align = "L"
				}
				pdf.CellFormat(widths[i], 6, tr(cell), "", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(8)
	}

	drawFooter := func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by hp-estimator | %s", generated.Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", page)), "", 0, "R", false, 0, "")
	}

	// Resumo
	drawHeader("Heat pump running costs and emissions", "Annual estimate compared with the current gas boiler")

	comparisonRows := make([][]string, 0, len(result.Comparison))
	for _, c := range result.Comparison {
		comparisonRows = append(comparisonRows, []string{
			c.Case,
			"£" + c.CostTotal.StringFixed(2),
			signed(c.CostChange.StringFixed(2)),
			c.EmissionsTotal.StringFixed(0),
			signed(c.EmissionsChange.StringFixed(0)),
			c.EnergyTotal.StringFixed(0),
			signed(c.EnergyChange.StringFixed(0)),
		})
	}
	drawTable("Summary",
		[]string{"Case", "Cost", "Change", "kg CO2", "Change", "kWh", "Change"},
		[]float64{52, 24, 22, 24, 22, 24, 22},
		comparisonRows)

	drawSection("Notes", strings.Join(result.Warnings, "\n"))
	drawSection("Assumptions", describeInputs(result.Inputs))
	drawFooter()

	for _, c := range result.Cases {
		drawHeader(c.Name(), fmt.Sprintf("Total £%.2f per year | %.0f kWh | %.0f kg CO2",
			c.Cost.Total, c.Usage.EnergyTotalKWh, c.Usage.EmissionsTotalKg))

		var usageRows [][]string
		for _, row := range entity.NonZeroEnergyRows(c.Usage.Rows()) {
			usageRows = append(usageRows, []string{
				string(row.Category),
				fmt.Sprintf("%.0f", row.EnergyKWh),
				fmt.Sprintf("%.0f", row.EmissionsKg),
			})
		}
		drawTable("Energy and emissions", []string{"Breakdown", "kWh", "kg CO2"}, []float64{90, 50, 50}, usageRows)

		var costRows [][]string
		for _, row := range entity.NonZeroCostRows(c.Cost.Rows()) {
			costRows = append(costRows, []string{string(row.Charge), fmt.Sprintf("£%.2f", row.Cost)})
		}
		drawTable("Annual costs", []string{"Charge", "Cost"}, []float64{90, 50}, costRows)
		drawFooter()
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

func signed(v string) string {
	if strings.HasPrefix(v, "-") || v == "0" || v == "0.00" {
		return v
	}
	return "+" + v
}

// describeInputs lists the settings behind the estimate.
func describeInputs(in entity.Inputs) string {
	h := in.Household
	var b strings.Builder
	fmt.Fprintf(&b, "Electricity %.0f kWh/year, gas %.0f kWh/year.\n", h.ElecTotalKWh, h.GasTotalKWh)
	fmt.Fprintf(&b, "Hot water %.0f L/day heated by %s.\n", h.HotWaterLitresPerDay, h.HotWaterSource)
	if h.CookWithGas {
		fmt.Fprintf(&b, "Gas cooking %.1f kWh/week.\n", h.GasCookKWhPerWeek)
	}
	if h.EV != nil {
		fmt.Fprintf(&b, "EV charging %.0f kWh x %.1f per week.\n", h.EV.KWhPerCharge, h.EV.ChargesPerWeek)
	}
	if s := h.Secondary; s != nil {
		fmt.Fprintf(&b, "Secondary %s heating %.0f kWh/year, %s.\n", s.Type, s.AnnualKWh, s.Disposition)
	}
	for _, t := range in.Devices.Tiers {
		fmt.Fprintf(&b, "%s: SCOP %.1f, hot water COP %.1f.\n", t.Tier, t.SCOP, t.HotWaterCOP)
	}
	p := in.Policy
	fmt.Fprintf(&b, "Efficiency measures %.0f%%. Disconnect gas: %t. Heat pump tariff: %t. Peak shutoff: %t.",
		p.EfficiencyBoost*100, p.DisconnectGas, p.SwitchTariff, p.PeakShutoff)
	return b.String()
}
