package service

import (
	"stayops/internal/domains/availability/model"
	propertyModel "stayops/internal/domains/property/model"
	"stayops/shared"
	"stayops/shared/daterange"
)

const (
	DefaultServiceFeeRate = 0.05

	nightsPerWeek  = 7
	nightsPerMonth = 30
)

// CalculatePrice prices stay for property. Weekend nights use the weekend rate when set.
// A monthly or weekly tier, when it applies, replaces the nightly total entirely.
func CalculatePrice(property propertyModel.Property, stay daterange.Range, serviceFeeRate float64) model.Quote {
	nights := stay.Nights()

	base := 0.0
	for _, night := range stay.Dates() {
		if property.WeekendRate != nil && daterange.IsWeekendNight(night) {
			base += *property.WeekendRate

			continue
		}

		base += property.BaseRate
	}

	switch {
	case nights >= nightsPerMonth && property.MonthlyRate != nil:
		base = tiered(nights, nightsPerMonth, *property.MonthlyRate, property.BaseRate)
	case nights >= nightsPerWeek && property.WeeklyRate != nil:
		base = tiered(nights, nightsPerWeek, *property.WeeklyRate, property.BaseRate)
	}

	base = shared.RoundMoney(base)
	cleaning := shared.RoundMoney(property.CleaningFee)
	service := shared.RoundMoney(base * serviceFeeRate)

	return model.Quote{
		Nights:      nights,
		BaseAmount:  base,
		CleaningFee: cleaning,
		ServiceFee:  service,
		TotalAmount: shared.RoundMoney(base + cleaning + service),
	}
}

func tiered(nights, period int, periodRate, baseRate float64) float64 {
	return float64(nights/period)*periodRate + float64(nights%period)*baseRate
}
