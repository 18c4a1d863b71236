package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/buidi2004/webbandocuoi/models"
)

func TestAnalyzeRFM_SingleCustomer(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		order("a@x.com", models.StatusDelivered, 1_000_000, now.AddDate(0, 0, -10)),
		order("a@x.com", models.StatusDelivered, 2_000_000, now.AddDate(0, 0, -5)),
	}

	got := AnalyzeRFM(orders, now)
	if len(got) != 1 {
		t.Fatalf("AnalyzeRFM returned %d records, want 1", len(got))
	}

	r := got[0]
	if r.Email != "a@x.com" {
		t.Errorf("email = %q, want a@x.com", r.Email)
	}
	if r.Frequency != 2 {
		t.Errorf("frequency = %d, want 2", r.Frequency)
	}
	if r.Monetary != 3_000_000 {
		t.Errorf("monetary = %v, want 3000000", r.Monetary)
	}
	if r.Recency != 5 {
		t.Errorf("recency = %d, want 5", r.Recency)
	}
	// Populations under five customers degenerate to midpoint scores.
	if r.RScore != 3 || r.FScore != 3 || r.MScore != 3 {
		t.Errorf("scores = (%d,%d,%d), want (3,3,3)", r.RScore, r.FScore, r.MScore)
	}
	if r.RFMScore != 9 {
		t.Errorf("rfm score = %d, want 9", r.RFMScore)
	}
	if r.Segment != SegmentCasual {
		t.Errorf("segment = %q, want %q", r.Segment, SegmentCasual)
	}
}

// The most recent customer must get recency score 5 and the least recent 1,
// while frequency and monetary score in the direct direction.
func TestAnalyzeRFM_ScoreDirections(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var orders []models.Order
	for i := 0; i < 5; i++ {
		email := fmt.Sprintf("c%d@x.com", i)
		// Customer i last ordered 10*(i+1) days ago and spent more with
		// higher i; customer i places i+1 orders.
		for j := 0; j <= i; j++ {
			orders = append(orders, order(
				email,
				models.StatusDelivered,
				float64((i+1)*1_000_000),
				now.AddDate(0, 0, -10*(i+1)-j),
			))
		}
	}

	records := AnalyzeRFM(orders, now)
	if len(records) != 5 {
		t.Fatalf("AnalyzeRFM returned %d records, want 5", len(records))
	}

	byEmail := make(map[string]CustomerRFM)
	for _, r := range records {
		byEmail[r.Email] = r
	}

	if got := byEmail["c0@x.com"].RScore; got != 5 {
		t.Errorf("most recent customer r_score = %d, want 5", got)
	}
	if got := byEmail["c4@x.com"].RScore; got != 1 {
		t.Errorf("least recent customer r_score = %d, want 1", got)
	}
	if got := byEmail["c4@x.com"].FScore; got != 5 {
		t.Errorf("most frequent customer f_score = %d, want 5", got)
	}
	if got := byEmail["c0@x.com"].FScore; got != 1 {
		t.Errorf("least frequent customer f_score = %d, want 1", got)
	}
	if got := byEmail["c4@x.com"].MScore; got != 5 {
		t.Errorf("highest spender m_score = %d, want 5", got)
	}
	if got := byEmail["c0@x.com"].MScore; got != 1 {
		t.Errorf("lowest spender m_score = %d, want 1", got)
	}
}

func TestAnalyzeRFM_SkipsUncountedAndMalformed(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		order("a@x.com", models.StatusCancelled, 1_000_000, now.AddDate(0, 0, -1)),
		order("a@x.com", models.StatusPending, 1_000_000, now.AddDate(0, 0, -1)),
		order("", models.StatusDelivered, 1_000_000, now.AddDate(0, 0, -1)),
		order("b@x.com", models.StatusDelivered, 1_000_000, time.Time{}),
	}
	if got := AnalyzeRFM(orders, now); len(got) != 0 {
		t.Errorf("AnalyzeRFM = %v, want empty", got)
	}
	if got := AnalyzeRFM(nil, now); len(got) != 0 {
		t.Errorf("AnalyzeRFM(nil) = %v, want empty", got)
	}
}

// Segmentation is a pure function of the three ordinal scores.
func TestSegmentFor(t *testing.T) {
	tests := []struct {
		name     string
		r, f, m  int
		expected string
	}{
		{"all high is VIP", 5, 5, 5, SegmentVIP},
		{"threshold VIP", 4, 4, 4, SegmentVIP},
		{"recent low frequency is potential", 5, 1, 3, SegmentPotential},
		{"recent two orders is potential", 4, 2, 5, SegmentPotential},
		{"quiet former frequent buyer is at risk", 1, 4, 2, SegmentAtRisk},
		{"quiet former big spender is at risk", 2, 1, 3, SegmentAtRisk},
		{"middling everything is casual", 3, 3, 3, SegmentCasual},
		{"recent mid frequency low value is casual", 4, 3, 1, SegmentCasual},
		{"quiet and never valuable is casual", 1, 2, 2, SegmentCasual},
		{"vip beats potential rule order", 5, 5, 4, SegmentVIP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentFor(tt.r, tt.f, tt.m); got != tt.expected {
				t.Errorf("segmentFor(%d,%d,%d) = %q, want %q", tt.r, tt.f, tt.m, got, tt.expected)
			}
		})
	}
}

func TestQuantileScores_TiesAreStable(t *testing.T) {
	// Ten identical values: ranks follow input order, so the binning never
	// collapses and scores 1..5 each appear twice.
	values := make([]float64, 10)
	got := quantileScores(values, false)

	counts := make(map[int]int)
	for _, s := range got {
		counts[s]++
	}
	for s := 1; s <= 5; s++ {
		if counts[s] != 2 {
			t.Errorf("score %d assigned %d times, want 2", s, counts[s])
		}
	}
	// Stable ranking means earlier inputs get the lower scores.
	if got[0] != 1 || got[9] != 5 {
		t.Errorf("scores = %v, want first input scored 1 and last scored 5", got)
	}
}

func TestSegmentCounts(t *testing.T) {
	records := []CustomerRFM{
		{Segment: SegmentVIP},
		{Segment: SegmentVIP},
		{Segment: SegmentCasual},
	}
	counts := SegmentCounts(records)
	if counts[SegmentVIP] != 2 || counts[SegmentCasual] != 1 {
		t.Errorf("SegmentCounts = %v", counts)
	}
}
