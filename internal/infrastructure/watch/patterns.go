package watch

import (
	"path/filepath"
)

// DefaultInclude and DefaultExclude select workspace data documents and
// skip editor swap and backup files.
var (
	DefaultInclude = []string{"*.yaml", "*.yml"}
	DefaultExclude = []string{".*", "*~", "*.swp"}
)

// PatternFilter filters file names based on include/exclude glob patterns.
type PatternFilter struct {
	Include []string
	Exclude []string
}

// NewPatternFilter creates a new pattern filter.
func NewPatternFilter(include, exclude []string) *PatternFilter {
	return &PatternFilter{
		Include: include,
		Exclude: exclude,
	}
}

// Matches reports whether the base name of path passes the filter.
// Excludes win over includes; an empty include list admits everything.
func (f *PatternFilter) Matches(path string) bool {
	base := filepath.Base(path)

	for _, pattern := range f.Exclude {
		if matched, _ := filepath.Match(pattern, base); matched {
			return false
		}
	}

	if len(f.Include) == 0 {
		return true
	}

	for _, pattern := range f.Include {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}
