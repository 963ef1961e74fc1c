// Package critique turns free-form critic output into a structured result.
//
// Model output is noisy: labels arrive bolded, split across lines or with
// stray markup. Each field is read by an ordered list of extractors and the
// first one that yields a usable value wins.
package critique

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/msuss/atelier/internal/domain"
)

// Extractor pulls the raw value of one labelled field out of a response.
type Extractor interface {
	Extract(text string) (string, bool)
}

// RegexExtractor returns the first capture group of its pattern.
type RegexExtractor struct {
	re *regexp.Regexp
}

func NewRegexExtractor(pattern string) RegexExtractor {
	return RegexExtractor{re: regexp.MustCompile(pattern)}
}

func (e RegexExtractor) Extract(text string) (string, bool) {
	m := e.re.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}

// Parser holds the extractor chain for each field.
type Parser struct {
	Score    []Extractor
	Concepts []Extractor
	Impact   []Extractor
}

// DefaultParser understands the "Score: / New Concepts: / Emotional Impact:"
// layout requested by the critique prompt, with or without markdown bold.
func DefaultParser() *Parser {
	return &Parser{
		Score: []Extractor{
			NewRegexExtractor(`(?is)Score:\s*\*\*\s*(\d+\.?\d*)`),
			NewRegexExtractor(`(?is)\*\*Score:\*\*\s*(\d+\.?\d*)`),
			NewRegexExtractor(`(?is)\*\*Score\*\*:\s*(\d+\.?\d*)`),
			NewRegexExtractor(`(?is)Score:\s*(\d+\.?\d*)`),
			NewRegexExtractor(`(?is)Score:\s*\n\s*(\d+\.?\d*)`),
		},
		Concepts: []Extractor{
			NewRegexExtractor(`(?i)New Concepts:\s*\*\*\s*([^\n]+)`),
			NewRegexExtractor(`(?i)\*\*New Concepts:\*\*\s*([^\n]+)`),
			NewRegexExtractor(`(?i)\*\*New Concepts\*\*:\s*([^\n]+)`),
			NewRegexExtractor(`(?i)New Concepts:\s*([^\n]+)`),
		},
		Impact: []Extractor{
			NewRegexExtractor(`(?i)Emotional Impact:\s*\*\*\s*([^\n]+)`),
			NewRegexExtractor(`(?i)\*\*Emotional Impact:\*\*\s*([^\n]+)`),
			NewRegexExtractor(`(?i)\*\*Emotional Impact\*\*:\s*([^\n]+)`),
			NewRegexExtractor(`(?i)Emotional Impact:\s*([^\n]+)`),
		},
	}
}

// Parse never fails. Fields that cannot be read keep their neutral value and
// the whole response is kept as the critique text.
func (p *Parser) Parse(text string) domain.CritiqueResult {
	res := domain.CritiqueResult{
		Score:           domain.FallbackScore,
		Critique:        text,
		NewConcepts:     []string{},
		EmotionalImpact: map[domain.Emotion]float64{},
	}
	if score, ok := p.ParseScore(text); ok {
		res.Score = score
	}
	res.Score = domain.Clamp01(res.Score)
	if concepts, ok := p.ParseConcepts(text); ok {
		res.NewConcepts = concepts
	}
	res.EmotionalImpact = p.ParseImpact(text)
	return res
}

// ParseScore returns the first score that parses as a number. The value is
// not clamped.
func (p *Parser) ParseScore(text string) (float64, bool) {
	for _, ex := range p.Score {
		raw, ok := ex.Extract(text)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

// ParseConcepts returns the comma separated concept list.
func (p *Parser) ParseConcepts(text string) ([]string, bool) {
	for _, ex := range p.Concepts {
		raw, ok := ex.Extract(text)
		if !ok {
			continue
		}
		line := strings.TrimSpace(strings.ReplaceAll(raw, "**", ""))
		if line == "" || isMarkup(line) {
			continue
		}

		concepts := []string{}
		for _, part := range strings.Split(line, ",") {
			part = strings.TrimSpace(part)
			if part == "" || isMarkup(part) {
				continue
			}
			concepts = append(concepts, part)
		}
		return concepts, true
	}
	return nil, false
}

// ParseImpact looks for emotion keywords on the impact line. Any emotion
// named there gets the fixed ImpactDelta; magnitudes in the text are ignored.
func (p *Parser) ParseImpact(text string) map[domain.Emotion]float64 {
	impact := map[domain.Emotion]float64{}
	for _, ex := range p.Impact {
		raw, ok := ex.Extract(text)
		if !ok {
			continue
		}
		line := strings.ToLower(raw)
		for _, e := range domain.EmotionVocabulary {
			if strings.Contains(line, string(e)) {
				impact[e] = domain.ImpactDelta
			}
		}
		break
	}
	return impact
}

func isMarkup(s string) bool {
	return strings.Trim(s, "*_`#-~ ") == ""
}
