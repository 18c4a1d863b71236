package analytics

import (
	"sort"

	"github.com/google/uuid"

	"github.com/buidi2004/webbandocuoi/models"
)

// Co-purchase emission thresholds. A direction A->B is suppressed when the
// pair was seen together fewer than minPairCount times or when
// count(A,B)/count(A) falls below minConfidence.
const (
	minPairCount       = 2
	minConfidence      = 0.3
	maxRecommendations = 5
)

// Recommendation is one "customers who rented X also rented Y" suggestion.
// Confidence is a percentage rounded to one decimal.
type Recommendation struct {
	ProductID  uuid.UUID `json:"product_id"`
	Confidence float64   `json:"confidence"`
	Count      int       `json:"count"`
}

// CoPurchase builds directional co-purchase recommendations from order line
// items. Line items are grouped per order into distinct product sets, every
// unordered pair of co-occurring products is counted, and each direction is
// emitted independently with confidence(A->B) = count(A,B)/count(A).
// Confidence is intentionally asymmetric: a rare product that always appears
// next to a popular one recommends it strongly, not vice versa. Each product's
// list is sorted by descending confidence and truncated to maxRecommendations.
func CoPurchase(items []models.OrderItem) map[uuid.UUID][]Recommendation {
	orderProducts := make(map[uuid.UUID]map[uuid.UUID]bool)
	var orderIDs []uuid.UUID
	for _, it := range items {
		if it.OrderID == uuid.Nil || it.ProductID == uuid.Nil {
			continue
		}
		set, ok := orderProducts[it.OrderID]
		if !ok {
			set = make(map[uuid.UUID]bool)
			orderProducts[it.OrderID] = set
			orderIDs = append(orderIDs, it.OrderID)
		}
		set[it.ProductID] = true
	}

	type pair struct{ a, b uuid.UUID }
	pairCounts := make(map[pair]int)
	productCounts := make(map[uuid.UUID]int)

	for _, orderID := range orderIDs {
		products := make([]uuid.UUID, 0, len(orderProducts[orderID]))
		for p := range orderProducts[orderID] {
			products = append(products, p)
		}
		sort.Slice(products, func(i, j int) bool {
			return products[i].String() < products[j].String()
		})

		for _, p := range products {
			productCounts[p]++
		}
		for i := 0; i < len(products); i++ {
			for j := i + 1; j < len(products); j++ {
				pairCounts[pair{products[i], products[j]}]++
			}
		}
	}

	recommendations := make(map[uuid.UUID][]Recommendation)
	emit := func(from, to uuid.UUID, count int) {
		if productCounts[from] == 0 {
			return
		}
		conf := float64(count) / float64(productCounts[from])
		if conf < minConfidence {
			return
		}
		recommendations[from] = append(recommendations[from], Recommendation{
			ProductID:  to,
			Confidence: round1(conf * 100),
			Count:      count,
		})
	}

	for pr, count := range pairCounts {
		if count < minPairCount {
			continue
		}
		emit(pr.a, pr.b, count)
		emit(pr.b, pr.a, count)
	}

	for id := range recommendations {
		recs := recommendations[id]
		sort.Slice(recs, func(i, j int) bool {
			if recs[i].Confidence != recs[j].Confidence {
				return recs[i].Confidence > recs[j].Confidence
			}
			if recs[i].Count != recs[j].Count {
				return recs[i].Count > recs[j].Count
			}
			return recs[i].ProductID.String() < recs[j].ProductID.String()
		})
		if len(recs) > maxRecommendations {
			recs = recs[:maxRecommendations]
		}
		recommendations[id] = recs
	}
	return recommendations
}

// ProductSuggestion is a recommendation joined with catalog details for
// display.
type ProductSuggestion struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	ImageURL   string    `json:"image_url"`
	Price      float64   `json:"price"`
	Confidence float64   `json:"confidence"`
	Count      int       `json:"count"`
}

// Suggestions resolves a product's recommendations against the catalog.
// Recommended products missing from the catalog are dropped.
func Suggestions(productID uuid.UUID, recommendations map[uuid.UUID][]Recommendation, products []models.Product) []ProductSuggestion {
	recs, ok := recommendations[productID]
	if !ok {
		return []ProductSuggestion{}
	}

	catalog := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}

	suggestions := make([]ProductSuggestion, 0, len(recs))
	for _, rec := range recs {
		p, ok := catalog[rec.ProductID]
		if !ok {
			continue
		}
		suggestions = append(suggestions, ProductSuggestion{
			ID:         p.ID,
			Name:       p.Name,
			ImageURL:   p.ImageURL,
			Price:      p.RentalPriceDay,
			Confidence: rec.Confidence,
			Count:      rec.Count,
		})
	}
	return suggestions
}
