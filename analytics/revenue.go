package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/buidi2004/webbandocuoi/models"
)

// monthLayout is the calendar-month grouping key format.
const monthLayout = "2006-01"

// Point kinds for forecast output.
const (
	PointActual   = "actual"
	PointForecast = "forecast"
)

// MonthRevenue is the summed revenue of counted orders for one calendar month.
type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// ForecastPoint is one point of the combined actual+forecast series.
type ForecastPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Kind    string  `json:"kind"`
}

// GrowthPoint carries the month-over-month revenue change. Growth is nil for
// the first month and for months following a zero-revenue month.
type GrowthPoint struct {
	Month     string   `json:"month"`
	Revenue   float64  `json:"revenue"`
	GrowthPct *float64 `json:"growth_pct"`
}

// MonthlyRevenue groups counted orders by calendar month and sums their
// amounts. Orders with an uncounted status or a zero timestamp are skipped.
// The result is sorted chronologically and contains one entry per month that
// has at least one counted order.
func MonthlyRevenue(orders []models.Order) []MonthRevenue {
	byMonth := make(map[string]float64)
	for _, o := range orders {
		if !models.CountedStatuses[o.Status] {
			continue
		}
		if o.OrderDate.IsZero() {
			continue
		}
		byMonth[o.OrderDate.Format(monthLayout)] += o.TotalAmount
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	series := make([]MonthRevenue, 0, len(months))
	for _, m := range months {
		series = append(series, MonthRevenue{Month: m, Revenue: byMonth[m]})
	}
	return series
}

// Forecast projects revenue for the next horizon months by holding the
// trailing moving average of the last window actual points constant. The
// returned series contains the actual points followed by the forecast points.
// With fewer than window actual points the forecast is empty (insufficient
// history), which is not an error.
func Forecast(series []MonthRevenue, window, horizon int) ([]ForecastPoint, error) {
	if window < 1 {
		return nil, fmt.Errorf("moving average window must be at least 1, got %d", window)
	}
	if horizon < 0 {
		return nil, fmt.Errorf("forecast horizon must not be negative, got %d", horizon)
	}
	if len(series) < window {
		return []ForecastPoint{}, nil
	}

	var sum float64
	for _, p := range series[len(series)-window:] {
		sum += p.Revenue
	}
	ma := sum / float64(window)

	points := make([]ForecastPoint, 0, len(series)+horizon)
	for _, p := range series {
		points = append(points, ForecastPoint{Month: p.Month, Revenue: p.Revenue, Kind: PointActual})
	}

	last, err := time.Parse(monthLayout, series[len(series)-1].Month)
	if err != nil {
		return nil, fmt.Errorf("invalid month key %q: %w", series[len(series)-1].Month, err)
	}
	for i := 1; i <= horizon; i++ {
		next := last.AddDate(0, i, 0)
		points = append(points, ForecastPoint{
			Month:   next.Format(monthLayout),
			Revenue: ma,
			Kind:    PointForecast,
		})
	}
	return points, nil
}

// Growth computes the percentage change of each month's revenue against the
// immediately preceding month, rounded to one decimal.
func Growth(series []MonthRevenue) []GrowthPoint {
	points := make([]GrowthPoint, 0, len(series))
	for i, p := range series {
		gp := GrowthPoint{Month: p.Month, Revenue: p.Revenue}
		if i > 0 && series[i-1].Revenue != 0 {
			pct := round1((p.Revenue - series[i-1].Revenue) / series[i-1].Revenue * 100)
			gp.GrowthPct = &pct
		}
		points = append(points, gp)
	}
	return points
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
