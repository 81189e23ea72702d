// Package procurement ranks equipment quotes against weighted comparison
// criteria.
//
// All scores are relative to the comparison set being ranked: the same
// quote scores differently when the surrounding quotes change.
package procurement

import "fmt"

// Quote is a single supplier offer for a piece of equipment.
type Quote struct {
	ID             string            `json:"id" yaml:"id"`
	Name           string            `json:"name" yaml:"name"`
	Supplier       string            `json:"supplier" yaml:"supplier"`
	Category       string            `json:"category" yaml:"category"`
	Price          float64           `json:"price" yaml:"price"`
	LeadTime       string            `json:"lead_time" yaml:"lead_time"`
	Specifications map[string]string `json:"specifications,omitempty" yaml:"specifications,omitempty"`
	Certifications []string          `json:"certifications,omitempty" yaml:"certifications,omitempty"`
	Rating         Rating            `json:"ai_recommendation" yaml:"ai_recommendation"`
}

// Validate checks the identifier, price and rating.
func (q Quote) Validate() error {
	if q.ID == "" {
		return &ValidationError{Err: ErrMissingID}
	}
	if q.Price < 0 {
		return &ValidationError{QuoteID: q.ID, Err: fmt.Errorf("%w: %.2f", ErrNegativePrice, q.Price)}
	}
	if !q.Rating.IsValid() {
		return &ValidationError{QuoteID: q.ID, Err: fmt.Errorf("%w: %q", ErrUnknownRating, q.Rating)}
	}
	return nil
}
