package procurement

// Recommendation is the supplier-side pick for a comparison. It is carried
// through scoring unchanged and may disagree with the best computed score.
type Recommendation struct {
	Primary     string `json:"primary" yaml:"primary"`
	Alternative string `json:"alternative,omitempty" yaml:"alternative,omitempty"`
	Reasoning   string `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
}

// Comparison is a set of competing quotes for one project need.
type Comparison struct {
	ID             string         `json:"id" yaml:"id"`
	Title          string         `json:"title" yaml:"title"`
	ProjectID      string         `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	Quotes         []Quote        `json:"equipment" yaml:"equipment"`
	Recommendation Recommendation `json:"recommendation" yaml:"recommendation"`
}

// Result is a scored comparison.
type Result struct {
	ComparisonID   string         `json:"comparison_id"`
	Title          string         `json:"title"`
	Criteria       Criteria       `json:"criteria"`
	Ranked         []Scored       `json:"ranked"`
	BestScoreID    string         `json:"best_score_id,omitempty"`
	Recommendation Recommendation `json:"recommendation"`
}

// Compare scores the comparison's quotes and marks the best-scoring one.
func Compare(c Comparison, criteria Criteria) (*Result, error) {
	ranked, err := Score(c.Quotes, criteria)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ComparisonID:   c.ID,
		Title:          c.Title,
		Criteria:       criteria,
		Ranked:         ranked,
		Recommendation: c.Recommendation,
	}
	if len(ranked) > 0 {
		result.BestScoreID = ranked[0].ID
	}
	return result, nil
}

// Best returns the top-ranked quote, if any.
func (r *Result) Best() (Scored, bool) {
	if len(r.Ranked) == 0 {
		return Scored{}, false
	}
	return r.Ranked[0], true
}

// Find returns the scored quote with the given ID.
func (r *Result) Find(id string) (Scored, bool) {
	for _, s := range r.Ranked {
		if s.ID == id {
			return s, true
		}
	}
	return Scored{}, false
}
