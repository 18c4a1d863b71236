package analytics

import (
	"testing"
	"time"

	"github.com/buidi2004/webbandocuoi/models"
)

func TestStatusBreakdown(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		order("a@x.com", models.StatusPending, 100, now),
		order("b@x.com", models.StatusPending, 100, now),
		order("c@x.com", models.StatusDelivered, 100, now),
		order("d@x.com", "weird", 100, now),
	}

	counts := StatusBreakdown(orders)
	if counts[models.StatusPending] != 2 {
		t.Errorf("pending = %d, want 2", counts[models.StatusPending])
	}
	if counts[models.StatusDelivered] != 1 {
		t.Errorf("delivered = %d, want 1", counts[models.StatusDelivered])
	}
	if counts[models.StatusCancelled] != 0 {
		t.Errorf("cancelled = %d, want 0", counts[models.StatusCancelled])
	}
	if counts["weird"] != 1 {
		t.Errorf("unknown status = %d, want 1", counts["weird"])
	}
}

func TestDailyRevenue(t *testing.T) {
	now := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)
	orders := []models.Order{
		order("a@x.com", models.StatusDelivered, 1_000_000, now.AddDate(0, 0, -1)),
		order("b@x.com", models.StatusShipped, 500_000, now.AddDate(0, 0, -1)),
		order("c@x.com", models.StatusProcessing, 200_000, now),
		order("d@x.com", models.StatusPending, 9_000_000, now),          // not counted
		order("e@x.com", models.StatusDelivered, 9_000_000, now.AddDate(0, 0, -10)), // outside window
	}

	series := DailyRevenue(orders, 7, now)
	if len(series) != 7 {
		t.Fatalf("DailyRevenue returned %d days, want 7", len(series))
	}
	if series[0].Day != "04/06" || series[6].Day != "10/06" {
		t.Errorf("window = %s..%s, want 04/06..10/06", series[0].Day, series[6].Day)
	}
	if series[5].Revenue != 1_500_000 {
		t.Errorf("yesterday revenue = %v, want 1500000", series[5].Revenue)
	}
	if series[6].Revenue != 200_000 {
		t.Errorf("today revenue = %v, want 200000", series[6].Revenue)
	}
	for i := 0; i < 5; i++ {
		if series[i].Revenue != 0 {
			t.Errorf("day %s revenue = %v, want 0", series[i].Day, series[i].Revenue)
		}
	}
}

func TestDailyRevenue_InvalidWindow(t *testing.T) {
	if got := DailyRevenue(nil, 0, time.Now()); len(got) != 0 {
		t.Errorf("DailyRevenue with zero window = %v, want empty", got)
	}
}

func TestRecentOrders(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		order("old@x.com", models.StatusDelivered, 100, now.AddDate(0, 0, -30)),
		order("new@x.com", models.StatusPending, 100, now),
		order("mid@x.com", models.StatusShipped, 100, now.AddDate(0, 0, -10)),
	}

	recent := RecentOrders(orders, 2)
	if len(recent) != 2 {
		t.Fatalf("RecentOrders returned %d orders, want 2", len(recent))
	}
	if recent[0].CustomerEmail != "new@x.com" || recent[1].CustomerEmail != "mid@x.com" {
		t.Errorf("recent = [%s, %s], want [new@x.com, mid@x.com]", recent[0].CustomerEmail, recent[1].CustomerEmail)
	}

	// The input slice must stay untouched.
	if orders[0].CustomerEmail != "old@x.com" {
		t.Error("RecentOrders mutated its input")
	}
}
