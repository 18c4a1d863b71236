package analytics

import (
	"sort"
	"time"

	"github.com/buidi2004/webbandocuoi/models"
)

// DayRevenue is the counted revenue of one calendar day.
type DayRevenue struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

// StatusBreakdown counts orders per status. Unknown statuses are tallied
// under their raw value so upstream data-quality gaps stay visible.
func StatusBreakdown(orders []models.Order) map[string]int {
	counts := map[string]int{
		models.StatusPending:    0,
		models.StatusProcessing: 0,
		models.StatusShipped:    0,
		models.StatusDelivered:  0,
		models.StatusCancelled:  0,
	}
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts
}

// DailyRevenue sums counted-order revenue per day over the trailing window
// ending at now, inclusive, in chronological order. Days without orders carry
// zero.
func DailyRevenue(orders []models.Order, days int, now time.Time) []DayRevenue {
	if days < 1 {
		return []DayRevenue{}
	}

	totals := make(map[string]float64, days)
	series := make([]DayRevenue, 0, days)
	for i := days - 1; i >= 0; i-- {
		key := now.AddDate(0, 0, -i).Format("02/01")
		totals[key] = 0
		series = append(series, DayRevenue{Day: key})
	}

	start := now.AddDate(0, 0, -(days - 1))
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	for _, o := range orders {
		if !models.CountedStatuses[o.Status] || o.OrderDate.IsZero() {
			continue
		}
		if o.OrderDate.Before(startDay) || o.OrderDate.After(now) {
			continue
		}
		totals[o.OrderDate.Format("02/01")] += o.TotalAmount
	}

	for i := range series {
		series[i].Revenue = totals[series[i].Day]
	}
	return series
}

// RecentOrders returns the n most recent orders by order date, newest first.
func RecentOrders(orders []models.Order, n int) []models.Order {
	recent := make([]models.Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].OrderDate.After(recent[j].OrderDate)
	})
	if n >= 0 && len(recent) > n {
		recent = recent[:n]
	}
	return recent
}
