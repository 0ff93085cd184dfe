package quiz

import "fmt"

// Archetype is one of the sixteen fixed personality types.
type Archetype struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// archetypes is the read-only catalogue keyed by 4-letter code.
var archetypes = map[string]Archetype{
	// Analysts
	"INTJ": {Type: "INTJ", Name: "The Architect", Description: "Imaginative and strategic thinkers, with a plan for everything. They are rational, quick-witted, and value knowledge and competence above all."},
	"INTP": {Type: "INTP", Name: "The Logician", Description: "Innovative inventors with an unquenchable thirst for knowledge. They are logical, analytical, and enjoy exploring complex theories and ideas."},
	"ENTJ": {Type: "ENTJ", Name: "The Commander", Description: "Bold, imaginative and strong-willed leaders, always finding or creating a way. They are decisive, efficient, and enjoy long-range planning and goal setting."},
	"ENTP": {Type: "ENTP", Name: "The Debater", Description: "Smart and curious thinkers who cannot resist an intellectual challenge. They are energetic, quick-witted, and enjoy debating ideas from all angles."},
	// Diplomats
	"INFJ": {Type: "INFJ", Name: "The Advocate", Description: "Quiet and mystical, yet very inspiring and tireless idealists. They are insightful, principled, and strive to have a lasting positive impact on the world."},
	"INFP": {Type: "INFP", Name: "The Mediator", Description: "Poetic, kind and altruistic people, always eager to help a good cause. They are creative, idealistic, and guided by a strong inner moral compass."},
	"ENFJ": {Type: "ENFJ", Name: "The Protagonist", Description: "Charismatic and inspiring leaders, able to mesmerize their listeners. They are passionate, altruistic, and excel at bringing people together."},
	"ENFP": {Type: "ENFP", Name: "The Campaigner", Description: "Enthusiastic, creative and sociable free spirits, who can always find a reason to smile. They are outgoing, imaginative, and see life as a grand adventure."},
	// Sentinels
	"ISTJ": {Type: "ISTJ", Name: "The Logistician", Description: "Practical and fact-minded individuals, whose reliability cannot be doubted. They are responsible, organized, and dedicated to upholding traditions and standards."},
	"ISFJ": {Type: "ISFJ", Name: "The Defender", Description: "Very dedicated and warm protectors, always ready to defend their loved ones. They are supportive, reliable, and pay close attention to practical details."},
	"ESTJ": {Type: "ESTJ", Name: "The Executive", Description: "Excellent administrators, unsurpassed at managing things or people. They are organized, efficient, and value order and structure."},
	"ESFJ": {Type: "ESFJ", Name: "The Consul", Description: "Extraordinarily caring, social and popular people, always eager to help. They are warm-hearted, conscientious, and thrive in harmonious environments."},
	// Explorers
	"ISTP": {Type: "ISTP", Name: "The Virtuoso", Description: "Bold and practical experimenters, masters of all kinds of tools. They are observant, adaptable, and enjoy hands-on problem-solving."},
	"ISFP": {Type: "ISFP", Name: "The Adventurer", Description: "Flexible and charming artists, always ready to explore and experience something new. They are spontaneous, aesthetically inclined, and live in the present moment."},
	"ESTP": {Type: "ESTP", Name: "The Entrepreneur", Description: "Smart, energetic and very perceptive people, who truly enjoy living on the edge. They are action-oriented, resourceful, and excel at navigating crises."},
	"ESFP": {Type: "ESFP", Name: "The Entertainer", Description: "Spontaneous, energetic and enthusiastic people - life is never boring around them. They are outgoing, friendly, and love to be the center of attention."},
}

// ResolveArchetype maps normalized scores to an archetype by testing the
// sign of four dimensions in fixed order. Identity (Assertive/Turbulent) is
// measured and reported but does not select the archetype. Every sign
// combination has a catalogue entry, so a miss is an invariant violation and
// panics rather than returning an error.
func ResolveArchetype(scores Dimensions) Archetype {
	code := ""
	if scores.Mind < 0 {
		code += "I"
	} else {
		code += "E"
	}
	if scores.Energy < 0 {
		code += "S"
	} else {
		code += "N"
	}
	if scores.Nature < 0 {
		code += "T"
	} else {
		code += "F"
	}
	if scores.Tactics < 0 {
		code += "J"
	} else {
		code += "P"
	}

	a, ok := archetypes[code]
	if !ok {
		panic(fmt.Sprintf("quiz: no archetype for code %q", code))
	}
	return a
}
