// Package subscription holds the static plan catalogue and the feature
// gates the paywall enforces. Checkout itself is mocked: subscribing just
// activates a tier on the account.
package subscription

import (
	"pathfinder/internal/model"
)

// Tier is a subscription level.
type Tier string

const (
	TierFree         Tier = "free"
	TierPremium      Tier = "premium"
	TierProfessional Tier = "professional"
	TierEnterprise   Tier = "enterprise"
)

// Plan describes one purchasable plan.
type Plan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Tier          Tier     `json:"tier"`
	Price         float64  `json:"price"`
	BillingPeriod string   `json:"billingPeriod"`
	Features      []string `json:"features"`
}

// FeatureAccess lists what a tier may use. Unlimited counts are -1.
type FeatureAccess struct {
	UnlimitedTests       bool `json:"unlimitedTests"`
	MaxTests             int  `json:"maxTests"`
	MaxCareerSuggestions int  `json:"maxCareerSuggestions"`
	DetailedCareerInfo   bool `json:"detailedCareerInfo"`
	CareerComparison     bool `json:"careerComparison"`
	LearningPaths        bool `json:"learningPaths"`
	InterviewPrep        bool `json:"interviewPrep"`
	CareerSimulation     bool `json:"careerSimulation"`
	ResultExport         bool `json:"resultExport"`
}

// Plans is the purchasable catalogue in display order.
var Plans = []Plan{
	{
		ID: "free", Name: "Free", Tier: TierFree, Price: 0, BillingPeriod: "monthly",
		Features: []string{
			"1 personality test",
			"Basic archetype results",
			"3 career suggestions (basic)",
		},
	},
	{
		ID: "premium-monthly", Name: "Premium", Tier: TierPremium, Price: 14.99, BillingPeriod: "monthly",
		Features: []string{
			"Unlimited personality tests",
			"Full detailed career analysis",
			"5 career suggestions with full details",
			"Career comparison tool",
			"Personalized learning paths",
			"Interview preparation",
			"Career simulations",
		},
	},
	{
		ID: "professional-monthly", Name: "Professional", Tier: TierProfessional, Price: 29.99, BillingPeriod: "monthly",
		Features: []string{
			"Everything in Premium",
			"Result export",
			"Priority support",
		},
	},
	{
		ID: "enterprise-yearly", Name: "Enterprise", Tier: TierEnterprise, Price: 299, BillingPeriod: "yearly",
		Features: []string{
			"Everything in Professional",
			"Team accounts",
		},
	},
}

var featureAccess = map[Tier]FeatureAccess{
	TierFree: {
		MaxTests:             1,
		MaxCareerSuggestions: 3,
	},
	TierPremium: {
		UnlimitedTests:       true,
		MaxTests:             -1,
		MaxCareerSuggestions: 5,
		DetailedCareerInfo:   true,
		CareerComparison:     true,
		LearningPaths:        true,
		InterviewPrep:        true,
		CareerSimulation:     true,
	},
	TierProfessional: {
		UnlimitedTests:       true,
		MaxTests:             -1,
		MaxCareerSuggestions: 5,
		DetailedCareerInfo:   true,
		CareerComparison:     true,
		LearningPaths:        true,
		InterviewPrep:        true,
		CareerSimulation:     true,
		ResultExport:         true,
	},
	TierEnterprise: {
		UnlimitedTests:       true,
		MaxTests:             -1,
		MaxCareerSuggestions: 5,
		DetailedCareerInfo:   true,
		CareerComparison:     true,
		LearningPaths:        true,
		InterviewPrep:        true,
		CareerSimulation:     true,
		ResultExport:         true,
	},
}

// PlanByID finds a plan in the catalogue.
func PlanByID(id string) (Plan, bool) {
	for _, p := range Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// CurrentTier resolves a user's effective tier. Nil users, missing
// subscriptions, and lapsed statuses all resolve to free.
func CurrentTier(u *model.User) Tier {
	if u == nil || u.Tier == "" {
		return TierFree
	}
	if u.TierStatus != "active" && u.TierStatus != "trialing" {
		return TierFree
	}
	switch Tier(u.Tier) {
	case TierPremium, TierProfessional, TierEnterprise:
		return Tier(u.Tier)
	}
	return TierFree
}

// Access returns the feature table for a user's effective tier.
func Access(u *model.User) FeatureAccess {
	return featureAccess[CurrentTier(u)]
}

// CanTakeTest reports whether the user may start another assessment.
// Anonymous visitors get their first test for free; account limits apply
// once signed in.
func CanTakeTest(u *model.User) (bool, string) {
	access := Access(u)
	if access.UnlimitedTests {
		return true, ""
	}
	if u == nil {
		return true, ""
	}
	if u.TestsTaken >= access.MaxTests {
		return false, "TestLimitReached"
	}
	return true, ""
}
