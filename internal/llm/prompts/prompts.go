// Package prompts builds the text sent to the analysis collaborator from
// embedded templates. Analysis depth comes in variants so the paywall can
// serve shorter output to the free tier.
package prompts

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"text/template"
	"unicode/utf8"
)

//go:embed templates/*.txt
var templateFS embed.FS

var instructionTagRegex = regexp.MustCompile(`(?i)</?\s*(system-instructions|assistant)\b[^>]*>`)

// Variant selects the depth of the career analysis prompt.
type Variant string

const (
	// VariantBasic is the free-tier analysis: fewer careers, short fields.
	VariantBasic Variant = "basic"
	// VariantFull is the complete premium analysis.
	VariantFull Variant = "full"
)

var validVariants = map[Variant]bool{
	VariantBasic: true,
	VariantFull:  true,
}

// IsValidVariant checks if a variant name is valid.
func IsValidVariant(v string) bool {
	return validVariants[Variant(v)]
}

var (
	loadOnce  sync.Once
	loadErr   error
	templates map[string]*template.Template
)

var templateNames = []string{
	"analysis_basic", "analysis_full",
	"compare", "testimonial", "learning_path", "interview", "simulation",
}

// Load parses the embedded templates. Safe to call more than once; only the
// first call does work. Build functions load lazily, but callers that want
// to fail fast (startup) should call Load themselves.
func Load() error {
	loadOnce.Do(func() {
		templates = make(map[string]*template.Template)
		for _, name := range templateNames {
			content, err := templateFS.ReadFile("templates/" + name + ".txt")
			if err != nil {
				loadErr = fmt.Errorf("read prompt template %s: %w", name, err)
				return
			}
			tmpl, err := template.New(name).Parse(string(content))
			if err != nil {
				loadErr = fmt.Errorf("parse prompt template %s: %w", name, err)
				return
			}
			templates[name] = tmpl
		}
	})
	return loadErr
}

func execute(name string, data any) (string, error) {
	if err := Load(); err != nil {
		return "", err
	}
	tmpl, ok := templates[name]
	if !ok {
		return "", errors.New("unknown prompt template: " + name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// AnalysisData holds template data for the career analysis prompt.
type AnalysisData struct {
	Profile        string
	MaxSuggestions int
}

// BuildAnalysisPrompt builds the full-analysis prompt for a variant.
func BuildAnalysisPrompt(variant Variant, profile string, maxSuggestions int) (string, error) {
	if !validVariants[variant] {
		return "", errors.New("invalid prompt variant: " + string(variant))
	}
	return execute("analysis_"+string(variant), AnalysisData{
		Profile:        SanitizeProfile(profile),
		MaxSuggestions: maxSuggestions,
	})
}

// CompareData holds template data for the career comparison prompt.
type CompareData struct {
	Profile string
	Careers string
}

// BuildComparePrompt builds the career comparison prompt.
func BuildComparePrompt(profile string, careers []string) (string, error) {
	return execute("compare", CompareData{
		Profile: SanitizeProfile(profile),
		Careers: strings.Join(careers, ", "),
	})
}

// CareerData holds template data for prompts keyed by archetype and career.
type CareerData struct {
	Archetype   string
	Career      string
	Skills      string
	GrowthAreas string
}

// BuildTestimonialPrompt builds the first-person testimonial prompt.
func BuildTestimonialPrompt(archetype, career string) (string, error) {
	return execute("testimonial", CareerData{Archetype: archetype, Career: career})
}

// BuildLearningPathPrompt builds the 3-step learning path prompt.
func BuildLearningPathPrompt(archetype, career string, skills []string) (string, error) {
	return execute("learning_path", CareerData{
		Archetype: archetype,
		Career:    career,
		Skills:    strings.Join(skills, ", "),
	})
}

// BuildInterviewPrompt builds the interview preparation prompt.
func BuildInterviewPrompt(archetype, career string, growthAreas []string) (string, error) {
	return execute("interview", CareerData{
		Archetype:   archetype,
		Career:      career,
		GrowthAreas: strings.Join(growthAreas, ", "),
	})
}

// BuildSimulationPrompt builds the career simulation prompt.
func BuildSimulationPrompt(archetype, career string, growthAreas []string) (string, error) {
	return execute("simulation", CareerData{
		Archetype:   archetype,
		Career:      career,
		GrowthAreas: strings.Join(growthAreas, ", "),
	})
}

// SanitizeProfile strips instruction-style tags from user-influenced text
// and caps its length. The qualitative answer flows into the profile
// verbatim, so the whole block is treated as untrusted.
func SanitizeProfile(profile string) string {
	profile = instructionTagRegex.ReplaceAllString(profile, "")
	profile = strings.TrimSpace(profile)

	if profile == "" {
		return "[No profile provided]"
	}

	if utf8.RuneCountInString(profile) > 10000 {
		runes := []rune(profile)
		profile = string(runes[:10000]) + "\n\n[Profile truncated due to length]"
	}

	return profile
}
