package procurement

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rating is the advisory recommendation attached to a quote by the data supplier.
type Rating string

const (
	RatingHighlyRecommended Rating = "highly_recommended"
	RatingRecommended       Rating = "recommended"
	RatingConsider          Rating = "consider"
	RatingNotRecommended    Rating = "not_recommended"
)

// AllRatings returns all valid ratings, best first.
func AllRatings() []Rating {
	return []Rating{
		RatingHighlyRecommended,
		RatingRecommended,
		RatingConsider,
		RatingNotRecommended,
	}
}

// QualityScore maps the rating to its quality score. The second result is
// false for ratings outside the closed set.
func (r Rating) QualityScore() (float64, bool) {
	switch r {
	case RatingHighlyRecommended:
		return 100, true
	case RatingRecommended:
		return 80, true
	case RatingConsider:
		return 60, true
	case RatingNotRecommended:
		return 30, true
	default:
		return 0, false
	}
}

func (r Rating) IsValid() bool {
	_, ok := r.QualityScore()
	return ok
}

func (r Rating) String() string {
	return string(r)
}

// DisplayName returns a human-readable label for the rating.
func (r Rating) DisplayName() string {
	switch r {
	case RatingHighlyRecommended:
		return "Highly Recommended"
	case RatingRecommended:
		return "Recommended"
	case RatingConsider:
		return "Consider"
	case RatingNotRecommended:
		return "Not Recommended"
	default:
		return string(r)
	}
}

// ParseRating parses a string into a Rating.
func ParseRating(s string) (Rating, error) {
	r := Rating(s)
	if !r.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRating, s)
	}
	return r, nil
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseRating(str)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r *Rating) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	parsed, err := ParseRating(str)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
