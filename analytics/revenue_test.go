package analytics

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/buidi2004/webbandocuoi/models"
)

func order(email, status string, amount float64, date time.Time) models.Order {
	return models.Order{
		CustomerEmail: email,
		CustomerName:  email,
		Status:        status,
		TotalAmount:   amount,
		OrderDate:     date,
	}
}

func TestMonthlyRevenue(t *testing.T) {
	jan := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)

	orders := []models.Order{
		order("a@x.com", models.StatusDelivered, 1_000_000, jan),
		order("b@x.com", models.StatusShipped, 500_000, jan.AddDate(0, 0, 5)),
		order("c@x.com", models.StatusProcessing, 2_000_000, feb),
		order("d@x.com", models.StatusPending, 9_000_000, feb),   // not counted
		order("e@x.com", models.StatusCancelled, 9_000_000, jan), // not counted
		order("f@x.com", models.StatusDelivered, 100, time.Time{}), // malformed date
	}

	got := MonthlyRevenue(orders)
	want := []MonthRevenue{
		{Month: "2025-01", Revenue: 1_500_000},
		{Month: "2025-02", Revenue: 2_000_000},
	}

	if len(got) != len(want) {
		t.Fatalf("MonthlyRevenue returned %d months, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("month %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMonthlyRevenue_Empty(t *testing.T) {
	if got := MonthlyRevenue(nil); len(got) != 0 {
		t.Errorf("MonthlyRevenue(nil) = %v, want empty", got)
	}
	uncounted := []models.Order{
		order("a@x.com", models.StatusPending, 100, time.Now()),
	}
	if got := MonthlyRevenue(uncounted); len(got) != 0 {
		t.Errorf("MonthlyRevenue(uncounted) = %v, want empty", got)
	}
}

// Every emitted figure must equal the naive per-month recomputation over
// counted orders, for randomly generated order sets.
func TestMonthlyRevenue_MatchesNaiveRecomputation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	statuses := []string{
		models.StatusPending, models.StatusProcessing, models.StatusShipped,
		models.StatusDelivered, models.StatusCancelled,
	}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for trial := 0; trial < 20; trial++ {
		var orders []models.Order
		for i := 0; i < 50; i++ {
			orders = append(orders, order(
				"x@x.com",
				statuses[rng.Intn(len(statuses))],
				float64(rng.Intn(5_000_000)),
				base.AddDate(0, 0, rng.Intn(400)),
			))
		}

		naive := make(map[string]float64)
		for _, o := range orders {
			if models.CountedStatuses[o.Status] {
				naive[o.OrderDate.Format("2006-01")] += o.TotalAmount
			}
		}

		got := MonthlyRevenue(orders)
		if len(got) != len(naive) {
			t.Fatalf("trial %d: got %d months, naive has %d", trial, len(got), len(naive))
		}
		for _, p := range got {
			if math.Abs(p.Revenue-naive[p.Month]) > 1e-9 {
				t.Errorf("trial %d: month %s = %v, naive %v", trial, p.Month, p.Revenue, naive[p.Month])
			}
		}
	}
}

func TestForecast(t *testing.T) {
	series := []MonthRevenue{
		{Month: "2025-01", Revenue: 100},
		{Month: "2025-02", Revenue: 200},
		{Month: "2025-03", Revenue: 300},
		{Month: "2025-04", Revenue: 400},
	}

	got, err := Forecast(series, 3, 3)
	if err != nil {
		t.Fatalf("Forecast returned error: %v", err)
	}
	if len(got) != len(series)+3 {
		t.Fatalf("Forecast returned %d points, want %d", len(got), len(series)+3)
	}

	for i, p := range got[:len(series)] {
		if p.Kind != PointActual {
			t.Errorf("point %d kind = %q, want %q", i, p.Kind, PointActual)
		}
		if p.Revenue != series[i].Revenue {
			t.Errorf("point %d revenue = %v, want %v", i, p.Revenue, series[i].Revenue)
		}
	}

	// Trailing MA over the last 3 actual months: (200+300+400)/3.
	wantMA := 300.0
	wantMonths := []string{"2025-05", "2025-06", "2025-07"}
	for i, p := range got[len(series):] {
		if p.Kind != PointForecast {
			t.Errorf("forecast point %d kind = %q, want %q", i, p.Kind, PointForecast)
		}
		if p.Revenue != wantMA {
			t.Errorf("forecast point %d revenue = %v, want %v", i, p.Revenue, wantMA)
		}
		if p.Month != wantMonths[i] {
			t.Errorf("forecast point %d month = %q, want %q", i, p.Month, wantMonths[i])
		}
	}
}

func TestForecast_InsufficientHistory(t *testing.T) {
	series := []MonthRevenue{
		{Month: "2025-01", Revenue: 100},
		{Month: "2025-02", Revenue: 200},
	}
	got, err := Forecast(series, 3, 3)
	if err != nil {
		t.Fatalf("Forecast returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Forecast with short history returned %d points, want 0", len(got))
	}
}

func TestForecast_InvalidParameters(t *testing.T) {
	series := []MonthRevenue{{Month: "2025-01", Revenue: 100}}

	if _, err := Forecast(series, 0, 3); err == nil {
		t.Error("Forecast with window 0 should fail")
	}
	if _, err := Forecast(series, -1, 3); err == nil {
		t.Error("Forecast with negative window should fail")
	}
	if _, err := Forecast(series, 1, -1); err == nil {
		t.Error("Forecast with negative horizon should fail")
	}
	if got, err := Forecast(series, 1, 0); err != nil || len(got) != 1 {
		t.Errorf("Forecast with horizon 0 = (%v, %v), want just the actual point", got, err)
	}
}

func TestGrowth(t *testing.T) {
	series := []MonthRevenue{
		{Month: "2025-01", Revenue: 1000},
		{Month: "2025-02", Revenue: 1500},
		{Month: "2025-03", Revenue: 1200},
	}

	got := Growth(series)
	if len(got) != 3 {
		t.Fatalf("Growth returned %d points, want 3", len(got))
	}
	if got[0].GrowthPct != nil {
		t.Errorf("first month growth = %v, want nil", *got[0].GrowthPct)
	}
	if got[1].GrowthPct == nil || *got[1].GrowthPct != 50.0 {
		t.Errorf("second month growth = %v, want 50.0", got[1].GrowthPct)
	}
	if got[2].GrowthPct == nil || *got[2].GrowthPct != -20.0 {
		t.Errorf("third month growth = %v, want -20.0", got[2].GrowthPct)
	}
}

func TestGrowth_ZeroPreviousMonth(t *testing.T) {
	series := []MonthRevenue{
		{Month: "2025-01", Revenue: 0},
		{Month: "2025-02", Revenue: 500},
	}
	got := Growth(series)
	if got[1].GrowthPct != nil {
		t.Errorf("growth after zero-revenue month = %v, want nil", *got[1].GrowthPct)
	}
}
