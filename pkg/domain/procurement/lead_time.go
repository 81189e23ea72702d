package procurement

import (
	"regexp"
	"strconv"
	"strings"
)

// leadTimePattern finds the first integer in strings like "8-10 weeks"
var leadTimePattern = regexp.MustCompile(`\d+`)

// LeadTime is a supplier lead time such as "8-10 weeks". The representative
// value used for scoring is the first integer in the string.
type LeadTime struct {
	raw   string
	weeks int
}

// ParseLeadTime extracts the representative week count from a lead time string.
func ParseLeadTime(s string) (LeadTime, error) {
	s = strings.TrimSpace(s)
	match := leadTimePattern.FindString(s)
	if match == "" {
		return LeadTime{}, &LeadTimeParseError{Raw: s}
	}

	weeks, err := strconv.Atoi(match)
	if err != nil {
		return LeadTime{}, &LeadTimeParseError{Raw: s}
	}

	return LeadTime{raw: s, weeks: weeks}, nil
}

// String returns the original string representation of the lead time.
func (l LeadTime) String() string {
	return l.raw
}

// Weeks returns the representative week count.
func (l LeadTime) Weeks() int {
	return l.weeks
}
