package types

import "errors"

var (
	ErrInvalidEfficiency       = errors.New("efficiency must be greater than zero")
	ErrInvalidTariff           = errors.New("tariff bands do not fit in a day")
	ErrUnknownTariffKind       = errors.New("unknown tariff type, expected flat, two-band or three-band")
	ErrUnknownHotWaterSource   = errors.New("unknown hot water source, expected gas or electric")
	ErrUnknownSecondaryHeat    = errors.New("unknown secondary heat source, expected gas, electric or other")
	ErrUnknownMeasure          = errors.New("unknown efficiency measure")
	ErrNoTiers                 = errors.New("at least one heat pump installation tier is required")
	ErrDuplicateTier           = errors.New("installation tier listed more than once")
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
