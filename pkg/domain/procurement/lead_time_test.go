package procurement

import (
	"errors"
	"testing"
)

func TestParseLeadTime(t *testing.T) {
	tests := []struct {
		input string
		weeks int
	}{
		{"8-10 weeks", 8},
		{"12-14 weeks", 12},
		{"6 weeks", 6},
		{"  about 3 weeks  ", 3},
		{"ships in 20", 20},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lt, err := ParseLeadTime(tt.input)
			if err != nil {
				t.Fatalf("ParseLeadTime(%q) error = %v", tt.input, err)
			}
			if lt.Weeks() != tt.weeks {
				t.Errorf("Weeks() = %d, want %d", lt.Weeks(), tt.weeks)
			}
		})
	}
}

func TestParseLeadTime_Unparsable(t *testing.T) {
	for _, input := range []string{"", "TBD", "weeks"} {
		_, err := ParseLeadTime(input)
		if !errors.Is(err, ErrLeadTimeUnparsable) {
			t.Errorf("ParseLeadTime(%q) error = %v, want ErrLeadTimeUnparsable", input, err)
		}
		var parseErr *LeadTimeParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("ParseLeadTime(%q) error type = %T", input, err)
		}
	}
}

func TestLeadTime_String(t *testing.T) {
	lt, err := ParseLeadTime(" 8-10 weeks ")
	if err != nil {
		t.Fatal(err)
	}
	if lt.String() != "8-10 weeks" {
		t.Errorf("String() = %q", lt.String())
	}
}
