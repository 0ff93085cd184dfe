package model

import "time"

// Trait is a named strength or growth area in an analysis.
type Trait struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CareerSuggestion is one suggested career path.
type CareerSuggestion struct {
	Career              string   `json:"career"`
	Description         string   `json:"description"`
	Reasoning           string   `json:"reasoning"`
	RequiredSkills      []string `json:"requiredSkills"`
	DayInTheLife        string   `json:"dayInTheLife"`
	PotentialChallenges []string `json:"potentialChallenges"`
	GrowthOpportunities string   `json:"growthOpportunities"`
	SuggestedFirstSteps []string `json:"suggestedFirstSteps"`
}

// ArchetypeSummary restates the archetype inside an analysis.
type ArchetypeSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FullAnalysis is the complete career analysis returned by the LLM.
type FullAnalysis struct {
	Archetype   ArchetypeSummary   `json:"archetype"`
	Strengths   []Trait            `json:"strengths"`
	GrowthAreas []Trait            `json:"growthAreas"`
	Suggestions []CareerSuggestion `json:"suggestions"`
}

// PersonalityFit scores how well a career matches a profile.
type PersonalityFit struct {
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

// SkillOverlap splits skills into already-held and to-develop.
type SkillOverlap struct {
	NaturalSkills   []string `json:"naturalSkills"`
	SkillsToDevelop []string `json:"skillsToDevelop"`
}

// CareerComparison is one entry of a side-by-side career comparison.
type CareerComparison struct {
	CareerName        string         `json:"careerName"`
	PersonalityFit    PersonalityFit `json:"personalityFit"`
	SkillOverlap      SkillOverlap   `json:"skillOverlap"`
	LongTermPotential string         `json:"longTermPotential"`
	WorkLifeBalance   string         `json:"workLifeBalance"`
}

// LearningStep is one step of a generated learning path.
type LearningStep struct {
	Step              int    `json:"step"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	SuggestedResource string `json:"suggestedResource"`
}

// InterviewQuestion is one generated interview question with coaching.
type InterviewQuestion struct {
	Question string `json:"question"`
	ProTip   string `json:"proTip"`
}

// SimulationOption is one action in a career simulation.
type SimulationOption struct {
	Text     string `json:"text"`
	Outcome  string `json:"outcome"`
	Feedback string `json:"feedback"`
}

// CareerSimulation is a generated text-based workplace scenario.
type CareerSimulation struct {
	Scenario string             `json:"scenario"`
	Options  []SimulationOption `json:"options"`
}

// Result is one saved assessment outcome on a user's account.
type Result struct {
	ID        int64        `json:"id"`
	UserID    int64        `json:"-"`
	Date      time.Time    `json:"date"`
	Archetype string       `json:"archetype"`
	Analysis  FullAnalysis `json:"analysis"`
}
