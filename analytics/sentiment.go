package analytics

import (
	"strings"

	"github.com/buidi2004/webbandocuoi/models"
)

// Sentiment labels. Score boundaries are fixed: above 0.2 is positive, below
// -0.2 is negative, in between is neutral.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Bilingual keyword lexicons for review comments. Matching is lower-cased
// substring containment, which is a known-weak heuristic: negated phrases
// containing a positive keyword ("không thích" contains "thích") count for
// both sides.
var positiveWords = []string{
	"tuyệt vời", "xuất sắc", "đẹp", "tốt", "hài lòng", "thích", "yêu",
	"chất lượng", "nhanh", "chu đáo", "nhiệt tình", "chuyên nghiệp",
	"ưng ý", "hoàn hảo", "tận tâm", "ok", "good", "nice", "great",
	"recommend", "giới thiệu", "quay lại", "ủng hộ", "cảm ơn", "thanks",
}

var negativeWords = []string{
	"tệ", "xấu", "chán", "thất vọng", "không hài lòng", "chậm", "lâu",
	"kém", "dở", "tồi", "phàn nàn", "khiếu nại", "hoàn tiền", "hủy",
	"bad", "poor", "terrible", "worst", "không tốt", "không đẹp",
	"không ưng", "không thích", "không recommend", "không giới thiệu",
	"lừa đảo", "gian lận", "fake", "giả", "rách", "hỏng", "bẩn",
}

// SentimentResult is the label and bounded score for one review.
type SentimentResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// AnalyzeSentiment scores free text blended with an optional star rating.
// Rating 0 means no rating was given. Empty text falls back to the rating
// alone: 4 and up is positive (0.7), 2 and below negative (-0.7), otherwise
// neutral. With text present, the raw score is (positives - negatives) /
// (positives + negatives) over lexicon hits, averaged with the rating mapped
// to [-1, 1] when a rating exists. Scores are rounded to two decimals.
func AnalyzeSentiment(text string, rating int) SentimentResult {
	if text == "" {
		if rating >= 4 {
			return SentimentResult{Label: SentimentPositive, Score: 0.7}
		}
		if rating >= 1 && rating <= 2 {
			return SentimentResult{Label: SentimentNegative, Score: -0.7}
		}
		return SentimentResult{Label: SentimentNeutral, Score: 0}
	}

	lower := strings.ToLower(text)
	var positives, negatives int
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positives++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negatives++
		}
	}

	var score float64
	if total := positives + negatives; total > 0 {
		score = float64(positives-negatives) / float64(total)
	}
	if rating >= 1 {
		ratingScore := float64(rating-3) / 2
		score = (score + ratingScore) / 2
	}
	score = round2(score)

	switch {
	case score > 0.2:
		return SentimentResult{Label: SentimentPositive, Score: score}
	case score < -0.2:
		return SentimentResult{Label: SentimentNegative, Score: score}
	default:
		return SentimentResult{Label: SentimentNeutral, Score: score}
	}
}

// TaggedReview is a review annotated with its sentiment.
type TaggedReview struct {
	models.Review
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
}

// ReviewAlert flags a review that needs attention: negative sentiment or a
// rating of 2 stars or less.
type ReviewAlert struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	UserName  string `json:"user_name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Sentiment string `json:"sentiment"`
}

// TagReviews annotates every review with its sentiment and collects alerts
// for negative or low-rated ones. Alert comments are truncated to 100 runes.
func TagReviews(reviews []models.Review) ([]TaggedReview, []ReviewAlert) {
	tagged := make([]TaggedReview, 0, len(reviews))
	var alerts []ReviewAlert

	for _, review := range reviews {
		comment := ""
		if review.Comment != nil {
			comment = *review.Comment
		}
		result := AnalyzeSentiment(comment, review.Rating)
		tagged = append(tagged, TaggedReview{
			Review:         review,
			Sentiment:      result.Label,
			SentimentScore: result.Score,
		})

		if result.Label == SentimentNegative || (review.Rating >= 1 && review.Rating <= 2) {
			alerts = append(alerts, ReviewAlert{
				ID:        review.ID.String(),
				ProductID: review.ProductID.String(),
				UserName:  review.UserName,
				Rating:    review.Rating,
				Comment:   truncateRunes(comment, 100),
				Sentiment: result.Label,
			})
		}
	}
	return tagged, alerts
}

// SentimentCounts tallies reviews per sentiment label.
func SentimentCounts(reviews []models.Review) map[string]int {
	counts := map[string]int{
		SentimentPositive: 0,
		SentimentNeutral:  0,
		SentimentNegative: 0,
	}
	tagged, _ := TagReviews(reviews)
	for _, t := range tagged {
		counts[t.Sentiment]++
	}
	return counts
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
