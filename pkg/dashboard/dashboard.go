package dashboard

import (
	"time"

	"ecotrack/entities"
	"ecotrack/internal/utils"
	"ecotrack/pkg/co2"

	"github.com/shopspring/decimal"
)

// DayLabels names DailySeries buckets, Monday first.
var DayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// StartOfWeek is the most recent Sunday 00:00 in now's location.
func StartOfWeek(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, now.Location())
}

// WeeklyTotal sums the grams wasted since StartOfWeek, boundary included.
func WeeklyTotal(entries []entities.WasteEntry, now time.Time) float64 {
	start := StartOfWeek(now)
	total := decimal.Zero
	for _, e := range entries {
		if e.Timestamp.Before(start) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(utils.ToGrams(float64(e.Quantity), e.Unit)))
	}
	return total.InexactFloat64()
}

// TotalCO2 uses each entry's stored impact and recomputes it when the stored
// value is zero.
func TotalCO2(entries []entities.WasteEntry, estimator co2.CO2Estimator) float64 {
	total := decimal.Zero
	for _, e := range entries {
		impact := e.CO2Impact
		if impact == 0 {
			impact = estimator.Estimate(e.Category, utils.ToGrams(float64(e.Quantity), e.Unit))
		}
		total = total.Add(decimal.NewFromFloat(impact))
	}
	return total.InexactFloat64()
}

// DailySeries buckets the grams wasted in the trailing seven days by weekday
// in now's location. Index 0 is Monday and 6 is Sunday.
func DailySeries(entries []entities.WasteEntry, now time.Time) [7]float64 {
	weekAgo := now.AddDate(0, 0, -7)

	var bySunday [7]decimal.Decimal
	for _, e := range entries {
		if e.Timestamp.Before(weekAgo) {
			continue
		}
		day := e.Timestamp.In(now.Location()).Weekday()
		bySunday[day] = bySunday[day].Add(decimal.NewFromFloat(utils.ToGrams(float64(e.Quantity), e.Unit)))
	}

	var series [7]float64
	for i := 0; i < 7; i++ {
		series[i] = bySunday[(i+1)%7].InexactFloat64()
	}
	return series
}
