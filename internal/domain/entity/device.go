package entity

// InstallTier names a heat pump installation quality level.
type InstallTier string

const (
	TierTypical       InstallTier = "Typical"
	TierHiPerformance InstallTier = "Hi-performance"
)

// TierPerformance holds the seasonal performance of one installation tier.
type TierPerformance struct {
	Tier        InstallTier `json:"tier"`
	SCOP        float64     `json:"scop"`
	HotWaterCOP float64     `json:"hot_water_cop"`
}

// CaseLabel is the label used for this tier in result tables.
func (t TierPerformance) CaseLabel() string {
	return string(t.Tier) + " HP Install"
}

// DeviceParameters holds boiler, immersion and heat pump efficiencies.
type DeviceParameters struct {
	BoilerHeatingEff  float64           `json:"boiler_heating_eff"`
	BoilerHotWaterEff float64           `json:"boiler_hot_water_eff"`
	ImmersionEff      float64           `json:"immersion_eff"`
	TempRiseC         float64           `json:"temp_rise_c"`
	Tiers             []TierPerformance `json:"tiers"`
}

// DefaultDeviceParameters returns typical UK boiler and heat pump figures.
func DefaultDeviceParameters() DeviceParameters {
	return DeviceParameters{
		BoilerHeatingEff:  0.88,
		BoilerHotWaterEff: 0.88,
		ImmersionEff:      1,
		TempRiseC:         25,
		Tiers: []TierPerformance{
			{Tier: TierTypical, SCOP: 3.4, HotWaterCOP: 2.8},
			{Tier: TierHiPerformance, SCOP: 4.0, HotWaterCOP: 2.8},
		},
	}
}

// Tier looks up a tier by name.
func (d DeviceParameters) Tier(name InstallTier) (TierPerformance, bool) {
	for _, t := range d.Tiers {
		if t.Tier == name {
			return t, true
		}
	}
	return TierPerformance{}, false
}
