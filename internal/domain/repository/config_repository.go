package repository

import (
	"github.com/heatpump-estimator/hp-estimator-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading scenario files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
}
