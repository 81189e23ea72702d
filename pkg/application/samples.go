package application

import (
	"time"

	"github.com/felixgeelhaar/clearwater/pkg/domain/action"
	"github.com/felixgeelhaar/clearwater/pkg/domain/procurement"
)

// SampleActions returns a demo action list spread over four projects.
// Due dates are relative to now so the overdue and today filters stay populated.
func SampleActions(now time.Time) []action.Item {
	day := func(offset int, hour int) *time.Time {
		t := time.Date(now.Year(), now.Month(), now.Day()+offset, hour, 0, 0, 0, now.Location())
		return &t
	}
	pct := func(v int) *int { return &v }

	return []action.Item{
		{
			ID: "act-001", ProjectID: "riverside-wwtp", ProjectName: "Riverside WWTP Upgrade",
			Title:       "Client sign-off on secondary treatment proposal",
			Description: "Proposal revision C is ready for the utility board.",
			Kind:        action.KindApprovalNeeded, Urgency: action.UrgencyHigh,
			DueDate: day(-1, 17), ClientFacing: true,
		},
		{
			ID: "act-002", ProjectID: "riverside-wwtp", ProjectName: "Riverside WWTP Upgrade",
			Title:       "Choose MBR or sludge system vendor",
			Description: "Procurement comparison for secondary treatment is scored.",
			Kind:        action.KindSelectionRequired, Urgency: action.UrgencyMedium,
			DueDate: day(3, 12),
		},
		{
			ID: "act-003", ProjectID: "cedar-falls-reuse", ProjectName: "Cedar Falls Water Reuse",
			Title:       "Process design draft is ready to discuss",
			Description: "Agent finished the advanced oxidation sizing.",
			Kind:        action.KindChatReady, Urgency: action.UrgencyMedium,
			DueDate: day(0, 23),
		},
		{
			ID: "act-004", ProjectID: "cedar-falls-reuse", ProjectName: "Cedar Falls Water Reuse",
			Title:       "Milestone 2 invoice outstanding",
			Description: "Deposit for UV equipment has not been received.",
			Kind:        action.KindPaymentRequired, Urgency: action.UrgencyHigh,
			DueDate: day(-3, 9), ClientFacing: true,
		},
		{
			ID: "act-005", ProjectID: "harbor-point-pretreat", ProjectName: "Harbor Point Industrial Pretreatment",
			Title:       "Peer review of DAF calculations",
			Description: "Hydraulic loading rates need a second engineer.",
			Kind:        action.KindReviewPending, Urgency: action.UrgencyLow,
			DueDate: day(5, 12),
		},
		{
			ID: "act-006", ProjectID: "harbor-point-pretreat", ProjectName: "Harbor Point Industrial Pretreatment",
			Title:       "Equalization tank detailing",
			Description: "Structural drawings in progress.",
			Kind:        action.KindEngineeringReady, Urgency: action.UrgencyLow,
			Progress: pct(65),
		},
		{
			ID: "act-007", ProjectID: "mill-creek-lift", ProjectName: "Mill Creek Lift Station",
			Title:       "Pump curves received from supplier",
			Description: "Ready for the engineer to review.",
			Kind:        action.KindChatReady, Urgency: action.UrgencyLow,
		},
		{
			ID: "act-008", ProjectID: "mill-creek-lift", ProjectName: "Mill Creek Lift Station",
			Title:       "Wet well sizing",
			Kind:        action.KindEngineeringReady, Urgency: action.UrgencyMedium,
			DueDate: day(7, 12), Progress: pct(30),
		},
	}
}

// SampleComparisons returns the demo procurement comparisons.
func SampleComparisons() []procurement.Comparison {
	return []procurement.Comparison{
		{
			ID:        "riverside-secondary",
			Title:     "Secondary treatment package",
			ProjectID: "riverside-wwtp",
			Quotes: []procurement.Quote{
				{
					ID: "mbr-system-1", Name: "Membrane Bioreactor System", Supplier: "Pure Water Systems",
					Category: "biological_treatment", Price: 285000, LeadTime: "12-14 weeks",
					Specifications: map[string]string{
						"capacity":  "2.5 MGD",
						"footprint": "compact",
						"effluent":  "reuse quality",
					},
					Certifications: []string{"NSF/ANSI 61", "ISO 9001", "UL Listed"},
					Rating:         procurement.RatingHighlyRecommended,
				},
				{
					ID: "sludge-system-2", Name: "Conventional Activated Sludge", Supplier: "AquaTech Industries",
					Category: "biological_treatment", Price: 195000, LeadTime: "8-10 weeks",
					Specifications: map[string]string{
						"capacity":  "2.5 MGD",
						"footprint": "large",
						"effluent":  "secondary",
					},
					Certifications: []string{"NSF/ANSI 61", "ISO 9001"},
					Rating:         procurement.RatingRecommended,
				},
			},
			Recommendation: procurement.Recommendation{
				Primary:     "mbr-system-1",
				Alternative: "sludge-system-2",
				Reasoning:   "Reuse-quality effluent and footprint outweigh the higher capital cost.",
			},
		},
		{
			ID:        "cedar-falls-uv",
			Title:     "UV disinfection",
			ProjectID: "cedar-falls-reuse",
			Quotes: []procurement.Quote{
				{
					ID: "uv-closed-1", Name: "Closed-vessel UV", Supplier: "Northline UV",
					Category: "disinfection", Price: 142000, LeadTime: "6 weeks",
					Certifications: []string{"NSF/ANSI 55", "UVDGM validated"},
					Rating:         procurement.RatingRecommended,
				},
				{
					ID: "uv-open-2", Name: "Open-channel UV", Supplier: "ClearStream",
					Category: "disinfection", Price: 118000, LeadTime: "10-12 weeks",
					Certifications: []string{"UVDGM validated"},
					Rating:         procurement.RatingConsider,
				},
				{
					ID: "uv-import-3", Name: "Low-pressure UV array", Supplier: "Overseas Supply Co",
					Category: "disinfection", Price: 96000, LeadTime: "TBD",
					Rating: procurement.RatingNotRecommended,
				},
			},
			Recommendation: procurement.Recommendation{
				Primary:     "uv-closed-1",
				Alternative: "uv-open-2",
				Reasoning:   "Validated dose tables and the shortest lead time.",
			},
		},
	}
}
