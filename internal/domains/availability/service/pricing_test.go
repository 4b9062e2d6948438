package service_test

import (
	"testing"

	"stayops/internal/domains/availability/model"
	"stayops/internal/domains/availability/service"
	propertyModel "stayops/internal/domains/property/model"
	"stayops/shared/daterange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func stay(t *testing.T, in, out string) daterange.Range {
	t.Helper()

	r, err := daterange.Parse(in, out)
	require.NoError(t, err)

	return r
}

func nightsFrom(t *testing.T, in string, nights int) daterange.Range {
	t.Helper()

	start, err := daterange.ParseDate(in)
	require.NoError(t, err)

	r, err := daterange.New(start, daterange.AddDays(start, nights))
	require.NoError(t, err)

	return r
}

func TestCalculatePrice(t *testing.T) {
	// 2025-06-02 is a Monday.
	const monday = "2025-06-02"

	tests := []struct {
		name     string
		property propertyModel.Property
		stay     func(t *testing.T) daterange.Range
		expected model.Quote
	}{
		{
			name:     "scenario two nights with cleaning fee",
			property: propertyModel.Property{BaseRate: 65000, CleaningFee: 5000},
			stay:     func(t *testing.T) daterange.Range { return stay(t, "2025-06-01", "2025-06-03") },
			expected: model.Quote{Nights: 2, BaseAmount: 130000, CleaningFee: 5000, ServiceFee: 6500, TotalAmount: 141500},
		},
		{
			name:     "monthly tier 35 nights",
			property: propertyModel.Property{BaseRate: 100, MonthlyRate: ptr(2500.0)},
			stay:     func(t *testing.T) daterange.Range { return nightsFrom(t, monday, 35) },
			expected: model.Quote{Nights: 35, BaseAmount: 3000, ServiceFee: 150, TotalAmount: 3150},
		},
		{
			name:     "weekly tier 10 nights",
			property: propertyModel.Property{BaseRate: 50, WeeklyRate: ptr(300.0)},
			stay:     func(t *testing.T) daterange.Range { return nightsFrom(t, monday, 10) },
			expected: model.Quote{Nights: 10, BaseAmount: 450, ServiceFee: 22.5, TotalAmount: 472.5},
		},
		{
			name:     "weekend rate over seven nights without tiers",
			property: propertyModel.Property{BaseRate: 100, WeekendRate: ptr(150.0)},
			stay:     func(t *testing.T) daterange.Range { return nightsFrom(t, monday, 7) },
			expected: model.Quote{Nights: 7, BaseAmount: 800, ServiceFee: 40, TotalAmount: 840},
		},
		{
			name:     "six nights keep weekend rate under a weekly tier",
			property: propertyModel.Property{BaseRate: 100, WeekendRate: ptr(150.0), WeeklyRate: ptr(600.0)},
			stay:     func(t *testing.T) daterange.Range { return nightsFrom(t, monday, 6) },
			expected: model.Quote{Nights: 6, BaseAmount: 700, ServiceFee: 35, TotalAmount: 735},
		},
		{
			name:     "seven nights switch to the weekly tier",
			property: propertyModel.Property{BaseRate: 100, WeekendRate: ptr(150.0), WeeklyRate: ptr(600.0)},
			stay:     func(t *testing.T) daterange.Range { return nightsFrom(t, monday, 7) },
			expected: model.Quote{Nights: 7, BaseAmount: 600, ServiceFee: 30, TotalAmount: 630},
		},
		{
			name:     "monthly tier wins over weekly",
			property: propertyModel.Property{BaseRate: 100, WeeklyRate: ptr(600.0), MonthlyRate: ptr(2500.0)},
			stay:     func(t *testing.T) daterange.Range { return nightsFrom(t, monday, 30) },
			expected: model.Quote{Nights: 30, BaseAmount: 2500, ServiceFee: 125, TotalAmount: 2625},
		},
		{
			name:     "29 nights fall back to weekly",
			property: propertyModel.Property{BaseRate: 100, WeeklyRate: ptr(600.0), MonthlyRate: ptr(2500.0)},
			stay:     func(t *testing.T) daterange.Range { return nightsFrom(t, monday, 29) },
			expected: model.Quote{Nights: 29, BaseAmount: 2500, ServiceFee: 125, TotalAmount: 2625},
		},
		{
			name:     "fractional amounts round to cents",
			property: propertyModel.Property{BaseRate: 33.333, CleaningFee: 10.25},
			stay:     func(t *testing.T) daterange.Range { return nightsFrom(t, monday, 3) },
			expected: model.Quote{Nights: 3, BaseAmount: 100, CleaningFee: 10.25, ServiceFee: 5, TotalAmount: 115.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := service.CalculatePrice(tt.property, tt.stay(t), service.DefaultServiceFeeRate)

			assert.Equal(t, tt.expected, quote)
		})
	}
}

func TestCalculatePrice_BaseOnlyIgnoresWeekends(t *testing.T) {
	property := propertyModel.Property{BaseRate: 87.5}

	for _, start := range []string{"2025-06-02", "2025-06-06", "2025-06-07", "2025-06-08"} {
		for nights := 1; nights <= 6; nights++ {
			quote := service.CalculatePrice(property, nightsFrom(t, start, nights), service.DefaultServiceFeeRate)

			assert.Equal(t, float64(nights)*87.5, quote.BaseAmount, "start %s nights %d", start, nights)
		}
	}
}

func TestCalculatePrice_FeeAndTotalIdentity(t *testing.T) {
	properties := []propertyModel.Property{
		{BaseRate: 99.99, CleaningFee: 25},
		{BaseRate: 120, WeekendRate: ptr(180.0), CleaningFee: 60},
		{BaseRate: 75.5, WeeklyRate: ptr(450.25), MonthlyRate: ptr(1700.0), CleaningFee: 35.75},
	}

	for _, property := range properties {
		for _, nights := range []int{1, 2, 5, 6, 7, 8, 13, 14, 29, 30, 31, 45, 61} {
			quote := service.CalculatePrice(property, nightsFrom(t, "2025-01-03", nights), service.DefaultServiceFeeRate)

			assert.InDelta(t, quote.BaseAmount*0.05, quote.ServiceFee, 0.005)
			assert.InDelta(t, quote.BaseAmount+quote.CleaningFee+quote.ServiceFee, quote.TotalAmount, 1e-9)
			assert.Equal(t, nights, quote.Nights)
		}
	}
}
