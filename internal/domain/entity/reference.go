package entity

// HouseSizeUsage is the typical annual consumption of a UK home by bedrooms.
type HouseSizeUsage struct {
	Bedrooms int     `json:"bedrooms"`
	ElecKWh  float64 `json:"elec_kwh"`
	GasKWh   float64 `json:"gas_kwh"`
}

// TypicalHouseUsage assumes no EV.
var TypicalHouseUsage = []HouseSizeUsage{
	{Bedrooms: 1, ElecKWh: 2100, GasKWh: 7000},
	{Bedrooms: 2, ElecKWh: 2750, GasKWh: 9500},
	{Bedrooms: 3, ElecKWh: 3000, GasKWh: 12000},
	{Bedrooms: 4, ElecKWh: 3500, GasKWh: 15000},
	{Bedrooms: 5, ElecKWh: 4300, GasKWh: 17000},
}

// HotWaterUse is the hot water drawn by one everyday activity.
type HotWaterUse struct {
	Activity string  `json:"activity"`
	Litres   float64 `json:"litres"`
}

var HotWaterUses = []HotWaterUse{
	{Activity: "Washing up", Litres: 15},
	{Activity: "5 min water-saving shower", Litres: 30},
	{Activity: "10 min power shower", Litres: 150},
	{Activity: "Bath", Litres: 100},
}

// CookingUse is the gas burned by one use of a cooking appliance.
type CookingUse struct {
	Appliance string  `json:"appliance"`
	KWh       float64 `json:"kwh"`
}

var CookingUses = []CookingUse{
	{Appliance: "Gas hob", KWh: 0.8},
	{Appliance: "Gas grill", KWh: 1},
	{Appliance: "Gas oven", KWh: 1.5},
}
