package entity

// WeeksPerYear annualises weekly quantities (cooking, EV charging).
const WeeksPerYear = 52

// HotWaterSource identifies how domestic hot water is heated today.
type HotWaterSource string

const (
	HotWaterGas      HotWaterSource = "gas"
	HotWaterElectric HotWaterSource = "electric"
)

// SecondaryHeatType is the fuel of a heat source running alongside the boiler.
type SecondaryHeatType string

const (
	SecondaryGas      SecondaryHeatType = "gas"
	SecondaryElectric SecondaryHeatType = "electric"
	SecondaryOther    SecondaryHeatType = "other"
)

// SecondaryDisposition says what happens to the secondary source once the heat pump is in.
type SecondaryDisposition string

const (
	SecondaryRetained SecondaryDisposition = "retained"
	SecondaryRemoved  SecondaryDisposition = "removed"
)

// SecondaryHeatSource describes a gas fire, electric heater or stove used in
// addition to gas central heating.
type SecondaryHeatSource struct {
	Type        SecondaryHeatType    `json:"type"`
	Disposition SecondaryDisposition `json:"disposition"`
	AnnualKWh   float64              `json:"annual_kwh"`
}

// EVCharging describes home charging of an electric vehicle.
type EVCharging struct {
	KWhPerCharge   float64 `json:"kwh_per_charge"`
	ChargesPerWeek float64 `json:"charges_per_week"`
}

// AnnualKWh returns the imported energy used for charging over a year.
func (e EVCharging) AnnualKWh() float64 {
	return e.KWhPerCharge * e.ChargesPerWeek * WeeksPerYear
}

// HouseholdProfile holds the household's reported energy usage.
type HouseholdProfile struct {
	ElecTotalKWh         float64              `json:"elec_total_kwh"`
	GasTotalKWh          float64              `json:"gas_total_kwh"`
	HotWaterLitresPerDay float64              `json:"hot_water_litres_per_day"`
	HotWaterSource       HotWaterSource       `json:"hot_water_source"`
	CookWithGas          bool                 `json:"cook_with_gas"`
	GasCookKWhPerWeek    float64              `json:"gas_cook_kwh_per_week,omitempty"`
	EV                   *EVCharging          `json:"ev,omitempty"`
	Secondary            *SecondaryHeatSource `json:"secondary_heat_source,omitempty"`
	RenewableElectricity bool                 `json:"renewable_electricity"`
}

// HotWaterIsGas reports whether hot water is currently heated by the boiler.
func (p HouseholdProfile) HotWaterIsGas() bool {
	return p.HotWaterSource != HotWaterElectric
}

// EVAnnualKWh returns zero when the household has no EV.
func (p HouseholdProfile) EVAnnualKWh() float64 {
	if p.EV == nil {
		return 0
	}
	return p.EV.AnnualKWh()
}

// GasCookAnnualKWh returns zero unless the household cooks with gas.
func (p HouseholdProfile) GasCookAnnualKWh() float64 {
	if !p.CookWithGas {
		return 0
	}
	return p.GasCookKWhPerWeek * WeeksPerYear
}
