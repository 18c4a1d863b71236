package analytics

import (
	"sort"
	"time"

	"github.com/buidi2004/webbandocuoi/models"
)

// Customer segments derived from RFM scores.
const (
	SegmentVIP       = "VIP"
	SegmentPotential = "Tiềm năng"
	SegmentAtRisk    = "Cần giữ chân"
	SegmentCasual    = "Khách vãng lai"
)

// CustomerRFM is the per-customer Recency/Frequency/Monetary record computed
// from the current order snapshot. It carries no identity across runs.
type CustomerRFM struct {
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Recency   int     `json:"recency"`
	Frequency int     `json:"frequency"`
	Monetary  float64 `json:"monetary"`
	RScore    int     `json:"r_score"`
	FScore    int     `json:"f_score"`
	MScore    int     `json:"m_score"`
	RFMScore  int     `json:"rfm_score"`
	Segment   string  `json:"segment"`
}

// AnalyzeRFM computes one RFM record per distinct customer appearing in
// counted orders. Customers are identified by email; orders with an uncounted
// status, a zero timestamp or an empty email are skipped. The reference time
// makes recency deterministic for tests.
//
// Scores 1-5 come from rank-based quantile binning over the run's full
// customer population: customers are sorted stably by the raw metric (ties
// keep first-seen order) and rank i of n maps to score i*5/n + 1. Recency is
// scored inversely, the most recent customer gets 5. With fewer than five
// customers quantile binning degenerates, so every score is the midpoint 3.
func AnalyzeRFM(orders []models.Order, now time.Time) []CustomerRFM {
	type agg struct {
		name     string
		phone    string
		last     time.Time
		count    int
		monetary float64
	}

	byEmail := make(map[string]*agg)
	var emails []string

	for _, o := range orders {
		if !models.CountedStatuses[o.Status] {
			continue
		}
		if o.OrderDate.IsZero() || o.CustomerEmail == "" {
			continue
		}
		a, ok := byEmail[o.CustomerEmail]
		if !ok {
			a = &agg{name: o.CustomerName}
			if o.CustomerPhone != nil {
				a.phone = *o.CustomerPhone
			}
			byEmail[o.CustomerEmail] = a
			emails = append(emails, o.CustomerEmail)
		}
		a.count++
		a.monetary += o.TotalAmount
		if o.OrderDate.After(a.last) {
			a.last = o.OrderDate
		}
	}

	if len(emails) == 0 {
		return []CustomerRFM{}
	}

	records := make([]CustomerRFM, 0, len(emails))
	for _, email := range emails {
		a := byEmail[email]
		records = append(records, CustomerRFM{
			Email:     email,
			Name:      a.name,
			Phone:     a.phone,
			Recency:   int(now.Sub(a.last).Hours() / 24),
			Frequency: a.count,
			Monetary:  a.monetary,
		})
	}

	n := len(records)
	if n < 5 {
		for i := range records {
			records[i].RScore, records[i].FScore, records[i].MScore = 3, 3, 3
		}
	} else {
		recency := make([]float64, n)
		frequency := make([]float64, n)
		monetary := make([]float64, n)
		for i, r := range records {
			recency[i] = float64(r.Recency)
			frequency[i] = float64(r.Frequency)
			monetary[i] = r.Monetary
		}
		rScores := quantileScores(recency, true)
		fScores := quantileScores(frequency, false)
		mScores := quantileScores(monetary, false)
		for i := range records {
			records[i].RScore = rScores[i]
			records[i].FScore = fScores[i]
			records[i].MScore = mScores[i]
		}
	}

	for i := range records {
		r := &records[i]
		r.RFMScore = r.RScore + r.FScore + r.MScore
		r.Segment = segmentFor(r.RScore, r.FScore, r.MScore)
	}
	return records
}

// quantileScores bins values into ordinal scores 1-5 by stable rank. With
// inverted set, the lowest raw value receives the highest score (used for
// recency, where fewer days since the last order is better).
func quantileScores(values []float64, inverted bool) []int {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	scores := make([]int, n)
	for rank, i := range idx {
		s := rank*5/n + 1
		if inverted {
			s = 6 - s
		}
		scores[i] = s
	}
	return scores
}

// segmentFor classifies a customer from the three ordinal scores. The rules
// are evaluated in priority order; Casual is the catch-all.
func segmentFor(r, f, m int) string {
	switch {
	case r >= 4 && f >= 4 && m >= 4:
		return SegmentVIP
	case r >= 4 && f <= 2:
		return SegmentPotential
	case r <= 2 && (f >= 3 || m >= 3):
		return SegmentAtRisk
	default:
		return SegmentCasual
	}
}

// SegmentCounts tallies customers per segment.
func SegmentCounts(records []CustomerRFM) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Segment]++
	}
	return counts
}
