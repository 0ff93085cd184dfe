package quiz

// Authored effect weights. A selected option pushes its dimension by the
// signed weight; sliders map linearly into [-sliderMaxEffect, sliderMaxEffect].
const (
	strongEffect   = 20.0
	moderateEffect = 15.0
	mildEffect     = 5.0

	sliderMaxEffect = 20.0
	sliderNeutral   = 50.0

	normalizationRange = 100.0
)

// Bank is the static question catalogue, grouped into the five scored
// pillars plus the qualitative pillar. A session holds a derived, renumbered
// copy; the bank itself is never mutated.
type Bank map[string][]Question

// DefaultBank returns the built-in assessment: three questions per scored
// pillar and one qualitative free-text question.
func DefaultBank() Bank {
	return Bank{
		string(DimMind): {
			{ID: 1, Text: "After a social event, you feel:", Type: TypeMultipleChoice, TraitKey: string(DimMind), Options: []AnswerOption{
				{Text: "Drained and in need of solitude", Effects: map[Dimension]float64{DimMind: -strongEffect}},
				{Text: "A little tired, but generally content", Effects: map[Dimension]float64{DimMind: -mildEffect}},
				{Text: "Energized and ready for more", Effects: map[Dimension]float64{DimMind: strongEffect}},
			}},
			{ID: 2, Text: "In a group discussion, you are more likely to:", Type: TypeMultipleChoice, TraitKey: string(DimMind), Options: []AnswerOption{
				{Text: "Speak up frequently with your ideas", Effects: map[Dimension]float64{DimMind: moderateEffect}},
				{Text: "Listen carefully and speak when you have a well-formed thought", Effects: map[Dimension]float64{DimMind: -moderateEffect}},
			}},
			{ID: 3, Text: "My ideal weekend involves more:", Type: TypeSlider, TraitKey: string(DimMind), Labels: []string{"Quiet time for myself", "Activities with other people"}},
		},
		string(DimEnergy): {
			{ID: 4, Text: "When learning something new, you prefer:", Type: TypeMultipleChoice, TraitKey: string(DimEnergy), Options: []AnswerOption{
				{Text: "Practical, hands-on experience", Effects: map[Dimension]float64{DimEnergy: -strongEffect}},
				{Text: "Exploring the underlying theories and concepts", Effects: map[Dimension]float64{DimEnergy: strongEffect}},
			}},
			{ID: 5, Text: "You are more interested in:", Type: TypeMultipleChoice, TraitKey: string(DimEnergy), Options: []AnswerOption{
				{Text: "The reality of how things work now", Effects: map[Dimension]float64{DimEnergy: -moderateEffect}},
				{Text: "The possibilities of what things could be", Effects: map[Dimension]float64{DimEnergy: moderateEffect}},
			}},
			{ID: 6, Text: "I tend to focus on:", Type: TypeSlider, TraitKey: string(DimEnergy), Labels: []string{"Concrete details", "Abstract ideas"}},
		},
		string(DimNature): {
			{ID: 7, Text: "When making a decision, you prioritize:", Type: TypeMultipleChoice, TraitKey: string(DimNature), Options: []AnswerOption{
				{Text: "Logic, efficiency, and objective truth", Effects: map[Dimension]float64{DimNature: -strongEffect}},
				{Text: "Harmony, empathy, and the impact on people", Effects: map[Dimension]float64{DimNature: strongEffect}},
			}},
			{ID: 8, Text: "When a friend is upset, your first instinct is to:", Type: TypeMultipleChoice, TraitKey: string(DimNature), Options: []AnswerOption{
				{Text: "Offer emotional support and understanding", Effects: map[Dimension]float64{DimNature: moderateEffect}},
				{Text: "Help them analyze the problem and find a solution", Effects: map[Dimension]float64{DimNature: -moderateEffect}},
			}},
			{ID: 9, Text: "My decision-making is guided more by:", Type: TypeSlider, TraitKey: string(DimNature), Labels: []string{"My head", "My heart"}},
		},
		string(DimTactics): {
			{ID: 10, Text: "When it comes to plans, you:", Type: TypeMultipleChoice, TraitKey: string(DimTactics), Options: []AnswerOption{
				{Text: "Prefer to have a detailed plan and stick to it", Effects: map[Dimension]float64{DimTactics: -strongEffect}},
				{Text: "See a plan as a rough guideline that can change", Effects: map[Dimension]float64{DimTactics: moderateEffect / 1.5}},
				{Text: "Prefer to keep your options open and be spontaneous", Effects: map[Dimension]float64{DimTactics: strongEffect}},
			}},
			{ID: 11, Text: "Which word describes you better?", Type: TypeImageChoice, TraitKey: string(DimTactics), Options: []AnswerOption{
				{Text: "Organized", Effects: map[Dimension]float64{DimTactics: -strongEffect}, ImageURL: "https://picsum.photos/id/183/400/300"},
				{Text: "Spontaneous", Effects: map[Dimension]float64{DimTactics: strongEffect}, ImageURL: "https://picsum.photos/id/1015/400/300"},
			}},
			{ID: 12, Text: "I prefer my work to be:", Type: TypeSlider, TraitKey: string(DimTactics), Labels: []string{"Scheduled and structured", "Flexible and adaptable"}},
		},
		string(DimIdentity): {
			{ID: 13, Text: "When facing a challenge, you are more likely to feel:", Type: TypeMultipleChoice, TraitKey: string(DimIdentity), Options: []AnswerOption{
				{Text: "Confident and self-assured in your abilities", Effects: map[Dimension]float64{DimIdentity: -strongEffect}},
				{Text: "Anxious and worried about the outcome", Effects: map[Dimension]float64{DimIdentity: strongEffect}},
			}},
			{ID: 14, Text: "After making a decision, you tend to:", Type: TypeMultipleChoice, TraitKey: string(DimIdentity), Options: []AnswerOption{
				{Text: "Feel confident in your choice", Effects: map[Dimension]float64{DimIdentity: -moderateEffect}},
				{Text: "Frequently second-guess yourself", Effects: map[Dimension]float64{DimIdentity: moderateEffect}},
			}},
			{ID: 15, Text: "I am generally:", Type: TypeSlider, TraitKey: string(DimIdentity), Labels: []string{"Calm and relaxed", "Prone to worry"}},
		},
		"qualitative": {
			{ID: 16, Text: `In one sentence, describe what "a fulfilling career" means to you.`, Type: TypeTextInput, TraitKey: TraitQualitative},
		},
	}
}
