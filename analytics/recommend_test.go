package analytics

import (
	"testing"

	"github.com/google/uuid"

	"github.com/buidi2004/webbandocuoi/models"
)

func lineItem(orderID, productID uuid.UUID) models.OrderItem {
	return models.OrderItem{OrderID: orderID, ProductID: productID, Quantity: 1}
}

func findRec(recs []Recommendation, productID uuid.UUID) *Recommendation {
	for i := range recs {
		if recs[i].ProductID == productID {
			return &recs[i]
		}
	}
	return nil
}

func TestCoPurchase_MinPairCount(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	// One shared order is below the two-occurrence floor.
	once := []models.OrderItem{
		lineItem(uuid.New(), a),
	}
	o1 := uuid.New()
	once = append(once, lineItem(o1, a), lineItem(o1, b))

	if got := CoPurchase(once); len(got) != 0 {
		t.Errorf("CoPurchase with a single co-occurrence = %v, want empty", got)
	}

	// A second shared order reaches the boundary exactly.
	var twice []models.OrderItem
	for i := 0; i < 2; i++ {
		orderID := uuid.New()
		twice = append(twice, lineItem(orderID, a), lineItem(orderID, b))
	}

	got := CoPurchase(twice)
	rec := findRec(got[a], b)
	if rec == nil {
		t.Fatal("pair seen exactly twice should be recommended")
	}
	if rec.Count != 2 {
		t.Errorf("count = %d, want 2", rec.Count)
	}
	if rec.Confidence != 100.0 {
		t.Errorf("confidence = %v, want 100.0", rec.Confidence)
	}
}

// Confidence is directional: a product that always appears next to a popular
// one recommends it strongly even when the reverse is weaker.
func TestCoPurchase_Asymmetry(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	var items []models.OrderItem
	// A appears in 10 orders; B appears in 5 of them.
	for i := 0; i < 10; i++ {
		orderID := uuid.New()
		items = append(items, lineItem(orderID, a))
		if i < 5 {
			items = append(items, lineItem(orderID, b))
		}
	}

	got := CoPurchase(items)

	aToB := findRec(got[a], b)
	if aToB == nil {
		t.Fatal("A->B with confidence 0.5 should be emitted")
	}
	if aToB.Confidence != 50.0 {
		t.Errorf("confidence(A->B) = %v, want 50.0", aToB.Confidence)
	}

	bToA := findRec(got[b], a)
	if bToA == nil {
		t.Fatal("B->A with confidence 1.0 should be emitted")
	}
	if bToA.Confidence != 100.0 {
		t.Errorf("confidence(B->A) = %v, want 100.0", bToA.Confidence)
	}
}

func TestCoPurchase_ConfidenceFloor(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	var items []models.OrderItem
	// A appears in 10 orders, only 2 with B: confidence(A->B) = 0.2 is
	// below the floor; confidence(B->A) = 1.0 passes.
	for i := 0; i < 10; i++ {
		orderID := uuid.New()
		items = append(items, lineItem(orderID, a))
		if i < 2 {
			items = append(items, lineItem(orderID, b))
		}
	}

	got := CoPurchase(items)
	if rec := findRec(got[a], b); rec != nil {
		t.Errorf("A->B below the confidence floor should be suppressed, got %+v", rec)
	}
	if rec := findRec(got[b], a); rec == nil {
		t.Error("B->A above the confidence floor should be emitted")
	}
}

func TestCoPurchase_DuplicateLineItemsCollapse(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	var items []models.OrderItem
	for i := 0; i < 2; i++ {
		orderID := uuid.New()
		// The same product twice in one order counts once.
		items = append(items,
			lineItem(orderID, a), lineItem(orderID, a), lineItem(orderID, b))
	}

	got := CoPurchase(items)
	rec := findRec(got[a], b)
	if rec == nil {
		t.Fatal("expected recommendation A->B")
	}
	if rec.Count != 2 {
		t.Errorf("count = %d, want 2 (duplicates within an order must collapse)", rec.Count)
	}
	if rec.Confidence != 100.0 {
		t.Errorf("confidence = %v, want 100.0", rec.Confidence)
	}
}

func TestCoPurchase_TruncatesToTopFive(t *testing.T) {
	a := uuid.New()
	partners := make([]uuid.UUID, 6)
	for i := range partners {
		partners[i] = uuid.New()
	}

	// A appears in 6 orders with 2 partners each; every partner co-occurs
	// with A exactly twice, so confidence(A->partner) = 2/6 ≈ 0.33.
	var items []models.OrderItem
	for round := 0; round < 2; round++ {
		for i := 0; i < 3; i++ {
			orderID := uuid.New()
			items = append(items,
				lineItem(orderID, a),
				lineItem(orderID, partners[i*2]),
				lineItem(orderID, partners[i*2+1]))
		}
	}

	got := CoPurchase(items)
	if len(got[a]) != 5 {
		t.Fatalf("recommendation list for A has %d entries, want 5", len(got[a]))
	}
	for i, rec := range got[a] {
		if rec.Confidence != 33.3 {
			t.Errorf("entry %d confidence = %v, want 33.3", i, rec.Confidence)
		}
	}
}

func TestCoPurchase_SortedByConfidence(t *testing.T) {
	a, strong, weak := uuid.New(), uuid.New(), uuid.New()

	var items []models.OrderItem
	// A in 4 orders: strong co-occurs in all 4, weak in 2.
	for i := 0; i < 4; i++ {
		orderID := uuid.New()
		items = append(items, lineItem(orderID, a), lineItem(orderID, strong))
		if i < 2 {
			items = append(items, lineItem(orderID, weak))
		}
	}

	got := CoPurchase(items)
	recs := got[a]
	if len(recs) != 2 {
		t.Fatalf("recommendation list for A has %d entries, want 2", len(recs))
	}
	if recs[0].ProductID != strong || recs[1].ProductID != weak {
		t.Errorf("recommendations not sorted by descending confidence: %+v", recs)
	}
}

func TestSuggestions(t *testing.T) {
	a, b, missing := uuid.New(), uuid.New(), uuid.New()
	recommendations := map[uuid.UUID][]Recommendation{
		a: {
			{ProductID: b, Confidence: 66.7, Count: 4},
			{ProductID: missing, Confidence: 50.0, Count: 2},
		},
	}
	products := []models.Product{
		{ID: b, Name: "Váy Cưới Minimalist", ImageURL: "/images/wedding-dress-2.jpg", RentalPriceDay: 1_800_000},
	}

	got := Suggestions(a, recommendations, products)
	if len(got) != 1 {
		t.Fatalf("Suggestions returned %d entries, want 1 (missing products dropped)", len(got))
	}
	s := got[0]
	if s.ID != b || s.Name != "Váy Cưới Minimalist" || s.Price != 1_800_000 || s.Confidence != 66.7 {
		t.Errorf("suggestion = %+v", s)
	}

	if got := Suggestions(uuid.New(), recommendations, products); len(got) != 0 {
		t.Errorf("Suggestions for unknown product = %v, want empty", got)
	}
}
