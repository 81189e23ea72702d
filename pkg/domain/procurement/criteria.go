package procurement

import "fmt"

// Slider bounds for criteria weights.
const (
	WeightMin  = 5
	WeightMax  = 50
	WeightStep = 5
)

// Criterion names one of the four comparison dimensions.
type Criterion string

const (
	CriterionPrice    Criterion = "price"
	CriterionQuality  Criterion = "quality"
	CriterionDelivery Criterion = "delivery"
	CriterionSupport  Criterion = "support"
)

// AllCriteria returns the criteria in display order.
func AllCriteria() []Criterion {
	return []Criterion{CriterionPrice, CriterionQuality, CriterionDelivery, CriterionSupport}
}

func (c Criterion) IsValid() bool {
	switch c {
	case CriterionPrice, CriterionQuality, CriterionDelivery, CriterionSupport:
		return true
	default:
		return false
	}
}

// ParseCriterion parses a string into a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	c := Criterion(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q (expected: price, quality, delivery, or support)", ErrUnknownCriterion, s)
	}
	return c, nil
}

// Criteria holds the percentage weight of each criterion.
//
// Weights are not required to sum to 100 and are not range-checked when
// scoring. Callers that want that guarantee use CheckSum.
type Criteria struct {
	Price    int `json:"price" yaml:"price"`
	Quality  int `json:"quality" yaml:"quality"`
	Delivery int `json:"delivery" yaml:"delivery"`
	Support  int `json:"support" yaml:"support"`
}

// DefaultCriteria returns the weights a new comparison starts with.
func DefaultCriteria() Criteria {
	return Criteria{Price: 35, Quality: 40, Delivery: 15, Support: 10}
}

// Sum returns the total of all four weights.
func (c Criteria) Sum() int {
	return c.Price + c.Quality + c.Delivery + c.Support
}

// CheckSum returns ErrWeightsNotNormalized when the weights do not sum to 100.
func (c Criteria) CheckSum() error {
	if sum := c.Sum(); sum != 100 {
		return fmt.Errorf("%w: got %d", ErrWeightsNotNormalized, sum)
	}
	return nil
}

// Weight returns the weight of one criterion.
func (c Criteria) Weight(criterion Criterion) int {
	switch criterion {
	case CriterionPrice:
		return c.Price
	case CriterionQuality:
		return c.Quality
	case CriterionDelivery:
		return c.Delivery
	case CriterionSupport:
		return c.Support
	default:
		return 0
	}
}

// With returns a copy with one weight replaced as-is.
func (c Criteria) With(criterion Criterion, weight int) (Criteria, error) {
	switch criterion {
	case CriterionPrice:
		c.Price = weight
	case CriterionQuality:
		c.Quality = weight
	case CriterionDelivery:
		c.Delivery = weight
	case CriterionSupport:
		c.Support = weight
	default:
		return c, fmt.Errorf("%w: %q", ErrUnknownCriterion, criterion)
	}
	return c, nil
}

// Step moves one weight by steps slider notches and clamps it to
// [WeightMin, WeightMax]. Off-grid weights snap to the nearest notch below
// before stepping.
func (c Criteria) Step(criterion Criterion, steps int) (Criteria, error) {
	if !criterion.IsValid() {
		return c, fmt.Errorf("%w: %q", ErrUnknownCriterion, criterion)
	}
	current := c.Weight(criterion)
	next := (current/WeightStep)*WeightStep + steps*WeightStep
	next = max(WeightMin, min(WeightMax, next))
	return c.With(criterion, next)
}
