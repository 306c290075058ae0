package repository

import (
	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/entity"
)

// ExportRepository writes an estimate to disk and returns the file path.
type ExportRepository interface {
	ExportToCSV(result entity.EstimateResult, filename string, outputDir string) (string, error)
	ExportToJSON(result entity.EstimateResult, filename string, outputDir string) (string, error)
	ExportToPDF(result entity.EstimateResult, filename string, outputDir string) (string, error)
}
