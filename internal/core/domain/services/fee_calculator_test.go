package services_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/pricing"
	"restaurant/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustTime(t *testing.T, s string) kernel.TimeOfDay {
	t.Helper()
	tod, err := kernel.TimeOfDayFromString(s)
	require.NoError(t, err)
	return tod
}

func mustWindow(t *testing.T, start, end, fee string) pricing.PeakWindow {
	t.Helper()
	w, err := pricing.NewPeakWindow(mustTime(t, start), mustTime(t, end), mustMoney(t, fee))
	require.NoError(t, err)
	return w
}

func mustRuleSet(t *testing.T, params pricing.RuleSetParams) pricing.RuleSet {
	t.Helper()
	rs, err := pricing.NewRuleSet(params)
	require.NoError(t, err)
	return rs
}

func mustQuote(t *testing.T, subtotal string, distanceKm float64, orderedAt time.Time, holiday bool) pricing.QuoteContext {
	t.Helper()
	q, err := pricing.NewQuoteContext(mustMoney(t, subtotal), distanceKm, orderedAt, holiday)
	require.NoError(t, err)
	return q
}

// 2024-06-12 is a Wednesday, 2024-06-15 a Saturday.
var (
	wednesdayNoon = time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)
	saturdayNoon  = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
)

func TestFeeCalculator_FlatPricing(t *testing.T) {
	calculator := services.NewFeeCalculator()

	t.Run("should charge only the base fee regardless of distance", func(t *testing.T) {
		rules := mustRuleSet(t, pricing.RuleSetParams{
			Type:    pricing.RuleTypeFlat,
			BaseFee: mustMoney(t, "3.99"),
		})

		breakdown, err := calculator.Calculate(rules, mustQuote(t, "25.00", 42.0, wednesdayNoon, false))

		require.NoError(t, err)
		assert.Equal(t, "3.99", breakdown.BaseFee.String())
		assert.True(t, breakdown.DistanceFee.IsZero())
		assert.Equal(t, "3.99", breakdown.Total.String())
		assert.False(t, breakdown.Waived)
	})
}

func TestFeeCalculator_DistancePricing(t *testing.T) {
	calculator := services.NewFeeCalculator()
	perKm := func(t *testing.T) kernel.Money { return mustMoney(t, "0.50") }

	t.Run("should add the per-kilometre component", func(t *testing.T) {
		rate := perKm(t)
		rules := mustRuleSet(t, pricing.RuleSetParams{
			Type:     pricing.RuleTypeDistanceBased,
			BaseFee:  mustMoney(t, "3.99"),
			PerKmFee: &rate,
		})

		breakdown, err := calculator.Calculate(rules, mustQuote(t, "25.00", 4.0, wednesdayNoon, false))

		require.NoError(t, err)
		assert.Equal(t, "2.00", breakdown.DistanceFee.String())
		assert.Equal(t, "5.99", breakdown.Total.String())
	})

	t.Run("should clamp the distance to the configured radius", func(t *testing.T) {
		rate := perKm(t)
		radius := 5.0
		rules := mustRuleSet(t, pricing.RuleSetParams{
			Type:          pricing.RuleTypeDistanceBased,
			BaseFee:       mustMoney(t, "3.99"),
			PerKmFee:      &rate,
			MaxDistanceKm: &radius,
		})

		breakdown, err := calculator.Calculate(rules, mustQuote(t, "25.00", 9.3, wednesdayNoon, false))

		require.NoError(t, err)
		assert.Equal(t, "2.50", breakdown.DistanceFee.String())
		assert.Equal(t, "6.49", breakdown.Total.String())
	})

	t.Run("should round fractional distances to whole cents", func(t *testing.T) {
		rate := perKm(t)
		rules := mustRuleSet(t, pricing.RuleSetParams{
			Type:     pricing.RuleTypeDistanceBased,
			BaseFee:  mustMoney(t, "0.00"),
			PerKmFee: &rate,
		})

		breakdown, err := calculator.Calculate(rules, mustQuote(t, "25.00", 2.5, wednesdayNoon, false))

		require.NoError(t, err)
		assert.Equal(t, "1.25", breakdown.DistanceFee.String())
	})

	t.Run("should ignore the per-kilometre rate on flat rule sets", func(t *testing.T) {
		rate := perKm(t)
		rules := mustRuleSet(t, pricing.RuleSetParams{
			Type:     pricing.RuleTypeFlat,
			BaseFee:  mustMoney(t, "3.99"),
			PerKmFee: &rate,
		})

		breakdown, err := calculator.Calculate(rules, mustQuote(t, "25.00", 10.0, wednesdayNoon, false))

		require.NoError(t, err)
		assert.True(t, breakdown.DistanceFee.IsZero())
	})
}

func TestFeeCalculator_PeakSurcharges(t *testing.T) {
	calculator := services.NewFeeCalculator()

	rulesWithWindows := func(t *testing.T, windows ...pricing.PeakWindow) pricing.RuleSet {
		return mustRuleSet(t, pricing.RuleSetParams{
			Type:        pricing.RuleTypeFlat,
			BaseFee:     mustMoney(t, "3.00"),
			PeakWindows: windows,
		})
	}

	t.Run("should add the surcharge inside the window", func(t *testing.T) {
		rules := rulesWithWindows(t, mustWindow(t, "11:00", "13:00", "1.50"))

		breakdown, err := calculator.Calculate(rules, mustQuote(t, "25.00", 0, wednesdayNoon, false))

		require.NoError(t, err)
		assert.Equal(t, "1.50", breakdown.PeakSurcharge.String())
		assert.Equal(t, "4.50", breakdown.Total.String())
	})

	t.Run("should treat the window end as exclusive", func(t *testing.T) {
		rules := rulesWithWindows(t, mustWindow(t, "11:00", "12:00", "1.50"))

		breakdown, err := calculator.Calculate(rules, mustQuote(t, "25.00", 0, wednesdayNoon, false))

		require.NoError(t, err)
		assert.True(t, breakdown.PeakSurcharge.IsZero())
	})

	t.Run("should stack overlapping windows", func(t *testing.T) {
		rules := rulesWithWindows(t,
			mustWindow(t, "11:00", "13:00", "1.50"),
			mustWindow(t, "11:30", "14:00", "1.00"),
		)

		breakdown, err := calculator.Calculate(rules, mustQuote(t, "25.00", 0, wednesdayNoon, false))

		require.NoError(t, err)
		assert.Equal(t, "2.50", breakdown.PeakSurcharge.String())
	})

	t.Run("should evaluate windows in the restaurant's timezone", func(t *testing.T) {
		berlin, err := time.LoadLocation("Europe/Berlin")
		require.NoError(t, err)

		rules := mustRuleSet(t, pricing.RuleSetParams{
			Type:        pricing.RuleTypeFlat,
			BaseFee:     mustMoney(t, "3.00"),
			PeakWindows: []pricing.PeakWindow{mustWindow(t, "18:00", "21:00", "2.00")},
			Timezone:    berlin,
		})

		// 17:00 UTC is 19:00 in Berlin during summer time.
		orderedAt := time.Date(2024, 6, 12, 17, 0, 0, 0, time.UTC)
		breakdown, err := calculator.Calculate(rules, mustQuote(t, "25.00", 0, orderedAt, false))

		require.NoError(t, err)
		assert.Equal(t, "2.00", breakdown.PeakSurcharge.String())
	})

	t.Run("should match an overnight window on both sides of midnight", func(t *testing.T) {
		rules := rulesWithWindows(t, mustWindow(t, "22:00", "02:00", "2.00"))

		lateEvening := time.Date(2024, 6, 12, 23, 30, 0, 0, time.UTC)
		earlyMorning := time.Date(2024, 6, 13, 1, 0, 0, 0, time.UTC)

		for _, orderedAt := range []time.Time{lateEvening, earlyMorning} {
			breakdown, err := calculator.Calculate(rules, mustQuote(t, "25.00", 0, orderedAt, false))

			require.NoError(t, err)
			assert.Equal(t, "2.00", breakdown.PeakSurcharge.String(), "at %s", orderedAt)
		}
	})
}

func TestFeeCalculator_DaySurcharges(t *testing.T) {
	calculator := services.NewFeeCalculator()

	t.Run("should add the weekend surcharge on Saturday", func(t *testing.T) {
		weekend := mustMoney(t, "1.00")
		rules := mustRuleSet(t, pricing.RuleSetParams{
			Type:       pricing.RuleTypeFlat,
			BaseFee:    mustMoney(t, "3.00"),
			WeekendFee: &weekend,
		})

		breakdown, err := calculator.Calculate(rules, mustQuote(t, "25.00", 0, saturdayNoon, false))

		require.NoError(t, err)
		assert.Equal(t, "1.00", breakdown.WeekendSurcharge.String())
	})

	t.Run("should not add the weekend surcharge on a weekday", func(t *testing.T) {
		weekend := mustMoney(t, "1.00")
		rules := mustRuleSet(t, pricing.RuleSetParams{
			Type:       pricing.RuleTypeFlat,
			BaseFee:    mustMoney(t, "3.00"),
			WeekendFee: &weekend,
		})

		breakdown, err := calculator.Calculate(rules, mustQuote(t, "25.00", 0, wednesdayNoon, false))

		require.NoError(t, err)
		assert.True(t, breakdown.WeekendSurcharge.IsZero())
	})

	t.Run("should decide the weekend in the restaurant's timezone", func(t *testing.T) {
		auckland, err := time.LoadLocation("Pacific/Auckland")
		require.NoError(t, err)

		weekend := mustMoney(t, "1.00")
		rules := mustRuleSet(t, pricing.RuleSetParams{
			Type:       pricing.RuleTypeFlat,
			BaseFee:    mustMoney(t, "3.00"),
			WeekendFee: &weekend,
			Timezone:   auckland,
		})

		// Friday 23:00 UTC is already Saturday in Auckland.
		fridayLateUTC := time.Date(2024, 6, 14, 23, 0, 0, 0, time.UTC)
		breakdown, err := calculator.Calculate(rules, mustQuote(t, "25.00", 0, fridayLateUTC, false))

		require.NoError(t, err)
		assert.Equal(t, "1.00", breakdown.WeekendSurcharge.String())
	})

	t.Run("should add the holiday surcharge only when the day is marked", func(t *testing.T) {
		holiday := mustMoney(t, "2.00")
		rules := mustRuleSet(t, pricing.RuleSetParams{
			Type:       pricing.RuleTypeFlat,
			BaseFee:    mustMoney(t, "3.00"),
			HolidayFee: &holiday,
		})

		withHoliday, err := calculator.Calculate(rules, mustQuote(t, "25.00", 0, wednesdayNoon, true))
		require.NoError(t, err)
		assert.Equal(t, "2.00", withHoliday.HolidaySurcharge.String())

		withoutHoliday, err := calculator.Calculate(rules, mustQuote(t, "25.00", 0, wednesdayNoon, false))
		require.NoError(t, err)
		assert.True(t, withoutHoliday.HolidaySurcharge.IsZero())
	})
}

func TestFeeCalculator_MinimumOrderSurcharge(t *testing.T) {
	calculator := services.NewFeeCalculator()

	rulesWithSurcharge := func(t *testing.T) pricing.RuleSet {
		surcharge, err := pricing.NewMinimumOrderSurcharge(mustMoney(t, "15.00"), mustMoney(t, "2.00"))
		require.NoError(t, err)
		return mustRuleSet(t, pricing.RuleSetParams{
			Type:                  pricing.RuleTypeFlat,
			BaseFee:               mustMoney(t, "3.00"),
			MinimumOrderSurcharge: &surcharge,
		})
	}

	t.Run("should apply below the threshold", func(t *testing.T) {
		breakdown, err := calculator.Calculate(
			rulesWithSurcharge(t), mustQuote(t, "14.99", 0, wednesdayNoon, false))

		require.NoError(t, err)
		assert.Equal(t, "2.00", breakdown.MinOrderSurcharge.String())
		assert.Equal(t, "5.00", breakdown.Total.String())
	})

	t.Run("should not apply at the threshold exactly", func(t *testing.T) {
		breakdown, err := calculator.Calculate(
			rulesWithSurcharge(t), mustQuote(t, "15.00", 0, wednesdayNoon, false))

		require.NoError(t, err)
		assert.True(t, breakdown.MinOrderSurcharge.IsZero())
	})
}

func TestFeeCalculator_FreeDeliveryWaiver(t *testing.T) {
	calculator := services.NewFeeCalculator()

	rulesWithWaiver := func(t *testing.T) pricing.RuleSet {
		rate := mustMoney(t, "0.50")
		freeAbove := mustMoney(t, "20.00")
		weekend := mustMoney(t, "1.00")
		return mustRuleSet(t, pricing.RuleSetParams{
			Type:              pricing.RuleTypeDistanceBased,
			BaseFee:           mustMoney(t, "3.99"),
			PerKmFee:          &rate,
			FreeDeliveryAbove: &freeAbove,
			WeekendFee:        &weekend,
		})
	}

	t.Run("should waive the entire fee at the threshold", func(t *testing.T) {
		breakdown, err := calculator.Calculate(
			rulesWithWaiver(t), mustQuote(t, "20.00", 5.0, saturdayNoon, false))

		require.NoError(t, err)
		assert.True(t, breakdown.Waived)
		assert.True(t, breakdown.Total.IsZero())
		assert.True(t, breakdown.BaseFee.IsZero())
		assert.True(t, breakdown.DistanceFee.IsZero())
		assert.True(t, breakdown.WeekendSurcharge.IsZero())
	})

	t.Run("should charge normally below the threshold", func(t *testing.T) {
		breakdown, err := calculator.Calculate(
			rulesWithWaiver(t), mustQuote(t, "19.99", 5.0, wednesdayNoon, false))

		require.NoError(t, err)
		assert.False(t, breakdown.Waived)
		assert.Equal(t, "6.49", breakdown.Total.String())
	})
}

func TestFeeCalculator_InvalidInputs(t *testing.T) {
	calculator := services.NewFeeCalculator()

	t.Run("should reject a zero-value rule set", func(t *testing.T) {
		_, err := calculator.Calculate(
			pricing.RuleSet{}, mustQuote(t, "25.00", 0, wednesdayNoon, false))

		require.ErrorIs(t, err, pricing.ErrRuleSetIsNotConstructed)
	})

	t.Run("should reject a zero-value quote context", func(t *testing.T) {
		rules := mustRuleSet(t, pricing.RuleSetParams{
			Type:    pricing.RuleTypeFlat,
			BaseFee: mustMoney(t, "3.99"),
		})

		_, err := calculator.Calculate(rules, pricing.QuoteContext{})

		require.ErrorIs(t, err, pricing.ErrQuoteContextIsNotConstructed)
	})
}
