package rules

import "github.com/lexilens/lexilens/internal/model"

// DefaultRuleset is the built-in rule table for terms-of-service analysis.
// Declaration order groups rules by tier for readability; the classifier
// re-sorts by severity, so order here is not a contract.
var DefaultRuleset = RulesetDef{
	Rules: []RuleDef{
		// Red flags — critical risks.
		{
			ID:          "data_selling",
			Severity:    model.SevCritical,
			Type:        "Data Risk",
			Title:       "Personal Data Selling",
			Explanation: "Your data can be sold to advertisers/third-parties for profit.",
			Pattern: []GroupDef{
				{Terms: []string{"sell", "sold", "share", "shared", "trade", "rent", "exchange", "monetize"}},
				{Terms: []string{"third", "partner", "advertiser", "affiliate", "external", "entity", "entities"}, Window: 100},
			},
		},
		{
			ID:          "auto_payments",
			Severity:    model.SevCritical,
			Type:        "Money Risk",
			Title:       "Hidden Automatic Payments",
			Explanation: "You may be charged automatically without warning.",
			Pattern: []GroupDef{
				{Terms: []string{"automatic", "recurring"}},
				{Terms: []string{"charge", "payment", "debit"}, Window: 50},
				{Terms: []string{"without benefit of notice", "without prior notice", "no notice"}, Window: 100},
			},
		},
		{
			ID:          "strict_no_refunds",
			Severity:    model.SevCritical,
			Type:        "Money Risk",
			Title:       "Strict No Refund Policy",
			Explanation: "You will not get your money back under any circumstances.",
			Pattern: []GroupDef{
				{Terms: []string{"no refund", "non-refundable", "all sales are final"}},
				{Terms: []string{"under any condition", "whatsoever", "no exceptions"}, Window: 100},
			},
		},
		{
			ID:          "zero_responsibility",
			Severity:    model.SevCritical,
			Type:        "Legal Risk",
			Title:       "Zero Company Responsibility",
			Explanation: "They take no responsibility even if they cause you harm/loss.",
			Pattern: []GroupDef{
				{Terms: []string{"disclaim", "waive", "release"}},
				{Terms: []string{"all", "any", "total"}, Window: 100},
				{Terms: []string{"liability", "responsibility", "warranty", "damages"}, Window: 50},
			},
		},

		// Orange flags — caution.
		{
			ID:          "limited_sharing",
			Severity:    model.SevCaution,
			Type:        "Data Risk",
			Title:       "Limited Data Sharing",
			Explanation: "Data is shared for operations (analytics/hosting), which is standard.",
			Pattern: []GroupDef{
				{Terms: []string{"share", "access"}},
				{Terms: []string{"analytics", "service providers", "processors"}, Window: 100},
				{Terms: []string{"purpose", "only", "strictly"}, Window: 100},
			},
		},
		{
			ID:          "non_refundable",
			Severity:    model.SevCaution,
			Type:        "Money Risk",
			Title:       "Non-Refundable Fees",
			Explanation: "Standard cancellation policy: Fees already paid are not returned.",
			Pattern: []GroupDef{
				{Terms: []string{"subscription", "fee", "charge"}},
				{Terms: []string{"non-refundable"}, Window: 50},
			},
		},
		{
			ID:          "arbitration",
			Severity:    model.SevCaution,
			Type:        "Legal Risk",
			Title:       "Mandatory Arbitration",
			Explanation: "You waive your right to sue in court (Standard in US Tech).",
			Pattern: []GroupDef{
				{Terms: []string{"binding", "mandatory"}},
				{Terms: []string{"arbitration", "waiver"}, Window: 50},
				{Terms: []string{"class action"}, Window: 50},
			},
		},
		{
			ID:          "termination_right",
			Severity:    model.SevCaution,
			Type:        "Account Risk",
			Title:       "Termination Rights",
			Explanation: "They can ban your account if you violate terms.",
			Pattern: []GroupDef{
				{Terms: []string{"terminate", "suspend"}},
				{Terms: []string{"account", "access"}, Window: 100},
				{Terms: []string{"sole discretion"}, Window: 100},
			},
		},

		// Green flags — safeguards.
		{
			ID:          "no_sell_guarantee",
			Severity:    model.SevSafe,
			Type:        "Data Safety",
			Title:       "No Data Selling Guaranteed",
			Explanation: "Explicit promise: 'We do not sell your data'.",
			Pattern: []GroupDef{
				{Terms: []string{"we", "company"}},
				{Terms: []string{"not", "never", "no"}, Window: 50},
				{Terms: []string{"sell", "share", "trade", "rent", "distribute"}, Window: 50},
				{Terms: []string{"data", "info"}, Window: 50},
			},
		},
		{
			ID:          "user_ownership",
			Severity:    model.SevSafe,
			Type:        "User Rights",
			Title:       "You Own Your Data",
			Explanation: "You keep full ownership of content you upload.",
			Pattern: []GroupDef{
				{Terms: []string{"you", "user"}},
				{Terms: []string{"retain", "own", "control"}, Window: 50},
				{Terms: []string{"ownership", "rights", "content"}, Window: 50},
			},
		},
	},

	// A found safeguard suppresses its paired suspicion. One pair today;
	// new rules must declare their own pairs explicitly.
	Overrides: []OverrideDef{
		{When: "no_sell_guarantee", Remove: "data_selling"},
	},

	Fillers: []FillerDef{
		{Title: "Standard Guidelines", Explanation: "General usage rules apply."},
		{Title: "Copyright Terms", Explanation: "Standard intellectual property clauses."},
		{Title: "Governing Law", Explanation: "Terms governed by local laws."},
	},
}
