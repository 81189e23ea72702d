package procurement

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestCompare_RecommendationPassThrough(t *testing.T) {
	c := Comparison{
		ID:     "treatment-train",
		Title:  "Secondary treatment package",
		Quotes: mbrQuotes(),
		Recommendation: Recommendation{
			Primary:     "mbr-system-1",
			Alternative: "sludge-system-2",
			Reasoning:   "Footprint constraints favour membrane treatment",
		},
	}

	result, err := Compare(c, DefaultCriteria())
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if result.BestScoreID != "sludge-system-2" {
		t.Errorf("BestScoreID = %s, want sludge-system-2", result.BestScoreID)
	}
	if result.Recommendation != c.Recommendation {
		t.Errorf("Recommendation changed: %+v", result.Recommendation)
	}
	if result.Criteria != DefaultCriteria() {
		t.Errorf("Criteria = %+v, want defaults", result.Criteria)
	}

	best, ok := result.Best()
	if !ok || best.ID != result.BestScoreID {
		t.Errorf("Best() = %v, %v", best.ID, ok)
	}
	if _, ok := result.Find("mbr-system-1"); !ok {
		t.Error("Find(mbr-system-1) not found")
	}
	if _, ok := result.Find("missing"); ok {
		t.Error("Find(missing) should fail")
	}
}

func TestCompare_Empty(t *testing.T) {
	result, err := Compare(Comparison{ID: "empty"}, DefaultCriteria())
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if result.BestScoreID != "" || len(result.Ranked) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
	if _, ok := result.Best(); ok {
		t.Error("Best() on empty result should fail")
	}
}

func TestRating_Decode(t *testing.T) {
	var q Quote
	doc := "id: a\nprice: 10\nlead_time: 8 weeks\nai_recommendation: highly_recommended\n"
	if err := yaml.Unmarshal([]byte(doc), &q); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if q.Rating != RatingHighlyRecommended {
		t.Errorf("Rating = %s", q.Rating)
	}

	var r Rating
	if err := json.Unmarshal([]byte(`"must_buy"`), &r); !errors.Is(err, ErrUnknownRating) {
		t.Errorf("json.Unmarshal() error = %v, want ErrUnknownRating", err)
	}
}

func TestRating_QualityScore(t *testing.T) {
	want := map[Rating]float64{
		RatingHighlyRecommended: 100,
		RatingRecommended:       80,
		RatingConsider:          60,
		RatingNotRecommended:    30,
	}
	for _, r := range AllRatings() {
		got, ok := r.QualityScore()
		if !ok || got != want[r] {
			t.Errorf("%s.QualityScore() = %v, %v; want %v", r, got, ok, want[r])
		}
	}
	if _, ok := Rating("").QualityScore(); ok {
		t.Error("empty rating should not have a quality score")
	}
}
