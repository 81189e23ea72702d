package procurement

import (
	"cmp"
	"slices"
)

// Delivery mapping: FastestLeadWeeks scores 100, SlowestLeadWeeks scores 0.
// Lead times outside the band extrapolate and are not clamped.
const (
	FastestLeadWeeks = 8
	SlowestLeadWeeks = 18

	// NeutralDeliveryScore is used when a lead time cannot be parsed.
	NeutralDeliveryScore = 50.0

	// EqualPriceScore is every quote's price score when all prices match.
	EqualPriceScore = 100.0

	// SupportPointsPerCertification is uncapped: five certifications score 125.
	SupportPointsPerCertification = 25.0
)

// Scores are the per-criterion and weighted total scores of a quote.
type Scores struct {
	Price    float64 `json:"price" yaml:"price"`
	Quality  float64 `json:"quality" yaml:"quality"`
	Delivery float64 `json:"delivery" yaml:"delivery"`
	Support  float64 `json:"support" yaml:"support"`
	Total    float64 `json:"total" yaml:"total"`
}

// Scored is a quote annotated with its scores. Warnings record per-field
// fallbacks that did not stop the ranking.
type Scored struct {
	Quote    `yaml:",inline"`
	Scores   Scores   `json:"scores" yaml:"scores"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Score ranks quotes against the criteria, best total first. Ties keep
// their input order. The input slice is not modified.
func Score(quotes []Quote, criteria Criteria) ([]Scored, error) {
	if len(quotes) == 0 {
		return []Scored{}, nil
	}

	for _, q := range quotes {
		if err := q.Validate(); err != nil {
			return nil, err
		}
	}

	minPrice, maxPrice := quotes[0].Price, quotes[0].Price
	for _, q := range quotes[1:] {
		minPrice = min(minPrice, q.Price)
		maxPrice = max(maxPrice, q.Price)
	}

	scored := make([]Scored, 0, len(quotes))
	for _, q := range quotes {
		s := Scored{Quote: q}
		s.Scores.Price = priceScore(q.Price, minPrice, maxPrice)
		s.Scores.Quality, _ = q.Rating.QualityScore()

		delivery, err := DeliveryScore(q.LeadTime)
		if err != nil {
			s.Warnings = append(s.Warnings, err.Error()+"; using neutral delivery score")
		}
		s.Scores.Delivery = delivery
		s.Scores.Support = SupportScore(q.Certifications)
		s.Scores.Total = weightedTotal(s.Scores, criteria)
		scored = append(scored, s)
	}

	slices.SortStableFunc(scored, func(a, b Scored) int {
		return cmp.Compare(b.Scores.Total, a.Scores.Total)
	})
	return scored, nil
}

func priceScore(price, minPrice, maxPrice float64) float64 {
	if maxPrice == minPrice {
		return EqualPriceScore
	}
	return (1 - (price-minPrice)/(maxPrice-minPrice)) * 100
}

// DeliveryScore maps a lead time onto the delivery band. An unparsable lead
// time returns NeutralDeliveryScore together with the parse error.
func DeliveryScore(leadTime string) (float64, error) {
	lt, err := ParseLeadTime(leadTime)
	if err != nil {
		return NeutralDeliveryScore, err
	}
	span := float64(SlowestLeadWeeks - FastestLeadWeeks)
	return (1 - float64(lt.Weeks()-FastestLeadWeeks)/span) * 100, nil
}

// SupportScore uses the certification count as a proxy for vendor support.
func SupportScore(certifications []string) float64 {
	return float64(len(certifications)) * SupportPointsPerCertification
}

func weightedTotal(s Scores, c Criteria) float64 {
	return (s.Price*float64(c.Price) +
		s.Quality*float64(c.Quality) +
		s.Delivery*float64(c.Delivery) +
		s.Support*float64(c.Support)) / 100
}
