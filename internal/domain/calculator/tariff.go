package calculator

import "github.com/heatpump-estimator/hp-estimator-go/internal/domain/entity"

// BandShares splits a demand across tariff bands. The fields sum to 1.
type BandShares struct {
	OffPeak  float64 `json:"off_peak"`
	Standard float64 `json:"standard"`
	Peak     float64 `json:"peak"`
}

var (
	allStandard = BandShares{Standard: 1}
	allOffPeak  = BandShares{OffPeak: 1}
	allPeak     = BandShares{Peak: 1}
)

type bandRates struct {
	offPeak, standard, peak float64
}

func ratesOf(t entity.ElectricityTariff) bandRates {
	switch tt := t.(type) {
	case entity.TwoBandTariff:
		return bandRates{offPeak: tt.OffPeak.UnitPencePerKWh, standard: tt.StandardPencePerKWh, peak: tt.StandardPencePerKWh}
	case entity.ThreeBandTariff:
		return bandRates{offPeak: tt.OffPeak.UnitPencePerKWh, standard: tt.StandardPencePerKWh, peak: tt.Peak.UnitPencePerKWh}
	}
	u := t.StandardUnit()
	return bandRates{offPeak: u, standard: u, peak: u}
}

// Rate is the share-weighted unit price in pence per kWh.
func (s BandShares) Rate(t entity.ElectricityTariff) float64 {
	r := ratesOf(t)
	return s.OffPeak*r.offPeak + s.Standard*r.standard + s.Peak*r.peak
}

// OtherShares is the configured split of "other" electricity.
func OtherShares(t entity.ElectricityTariff) BandShares {
	switch tt := t.(type) {
	case entity.TwoBandTariff:
		return BandShares{OffPeak: tt.OffPeak.OtherShare, Standard: tt.StandardShare()}
	case entity.ThreeBandTariff:
		return BandShares{OffPeak: tt.OffPeak.OtherShare, Standard: tt.StandardShare(), Peak: tt.Peak.OtherShare}
	}
	return allStandard
}

// HeatShares spreads heating demand over the day in proportion to band
// length, with each off-peak hour carrying OffPeakHeatDemandFactor of an
// ordinary hour. With peakShutoff the heat pump is off during the peak band
// and its demand moves to the remaining hours.
func HeatShares(t entity.ElectricityTariff, peakShutoff bool) BandShares {
	switch tt := t.(type) {
	case entity.TwoBandTariff:
		f, h2 := tt.OffPeakHeatDemandFactor, tt.OffPeak.HoursPerDay
		s2 := f * h2 / (entity.HoursPerDay - (1-f)*h2)
		return BandShares{OffPeak: s2, Standard: 1 - s2}
	case entity.ThreeBandTariff:
		f, h2, h3 := tt.OffPeakHeatDemandFactor, tt.OffPeak.HoursPerDay, tt.Peak.HoursPerDay
		d := entity.HoursPerDay - (1-f)*h2
		if peakShutoff {
			s2 := f * h2 / (d - h3)
			return BandShares{OffPeak: s2, Standard: 1 - s2}
		}
		s2, s3 := f*h2/d, h3/d
		return BandShares{OffPeak: s2, Standard: 1 - s2 - s3, Peak: s3}
	}
	return allStandard
}

// HotWaterShares puts all water heating in the off-peak band.
func HotWaterShares(t entity.ElectricityTariff) BandShares {
	if t.Kind() == entity.TariffFlat {
		return allStandard
	}
	return allOffPeak
}

// CookingShares puts cooking at the peak rate on three-band tariffs and the
// standard rate otherwise.
func CookingShares(t entity.ElectricityTariff) BandShares {
	if t.Kind() == entity.TariffThreeBand {
		return allPeak
	}
	return allStandard
}

// EVShares assumes the car charges off-peak.
func EVShares(t entity.ElectricityTariff) BandShares {
	return HotWaterShares(t)
}

// OtherUnitRate is the blended rate paid for other electricity.
func OtherUnitRate(t entity.ElectricityTariff) float64 {
	return OtherShares(t).Rate(t)
}

// EVUnitRate is the off-peak rate on multi-band tariffs.
func EVUnitRate(t entity.ElectricityTariff) float64 {
	return EVShares(t).Rate(t)
}

// DemandSplit is the band split of one end use.
type DemandSplit struct {
	Use    string     `json:"use"`
	Shares BandShares `json:"shares"`
}

// DemandSplits describes when each end use draws power on a tariff.
func DemandSplits(t entity.ElectricityTariff) []DemandSplit {
	splits := []DemandSplit{
		{Use: "Room heating", Shares: HeatShares(t, false)},
	}
	if t.Kind() == entity.TariffThreeBand {
		splits[0].Use = "Room heating (with peak-time heating)"
		splits = append(splits, DemandSplit{Use: "Room heating (without peak-time heating)", Shares: HeatShares(t, true)})
	}
	return append(splits,
		DemandSplit{Use: "Hot water heating", Shares: HotWaterShares(t)},
		DemandSplit{Use: "Cooking", Shares: CookingShares(t)},
		DemandSplit{Use: "EV", Shares: EVShares(t)},
		DemandSplit{Use: "All other electricity", Shares: OtherShares(t)},
	)
}

// scenarioLoads is the electricity of a heat pump case by end use.
type scenarioLoads struct {
	heat, hotWater, cooking, ev, other float64
}

// scenarioElecUnitCost bills each end use at its band-weighted rate, in pounds.
func scenarioElecUnitCost(t entity.ElectricityTariff, l scenarioLoads, peakShutoff, freeSummerHW bool) float64 {
	hw := l.hotWater
	if freeSummerHW {
		hw *= 1 - FreeSummerHotWaterFraction
	}
	pence := l.heat*HeatShares(t, peakShutoff).Rate(t) +
		hw*HotWaterShares(t).Rate(t) +
		l.cooking*CookingShares(t).Rate(t) +
		l.ev*EVShares(t).Rate(t) +
		l.other*OtherShares(t).Rate(t)
	return pence / PencePerPound
}
