package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/msuss/atelier/internal/domain"
)

// ExcerptLimit is how many characters of a work a critic gets to see.
const ExcerptLimit = 500

const critiquePrompt = `You are an AI artist with the following characteristics:

Personality traits: %s
Current emotions: %s
Obsessions/concepts: %s
Aesthetic preference: %s
Confidence level: %.2f

You are critiquing another artist's work:

"%s..."

Provide an honest critique from YOUR unique perspective. Consider:
- How does this work align or clash with your own aesthetic?
- What can you learn from this approach?
- What new concepts or emotions does this evoke in you?

Be authentic to your personality traits and confidence level.

Output format:
Score: [0.0 to 1.0]
Critique: [Your thoughts]
New Concepts: [Any new ideas this sparked, comma-separated]
Emotional Impact: [How this affected your emotional state]`

const textPrompt = `You are an AI artist named %s.
Your personality traits are: %s.
Your current emotions are: %s.
Your obsessions (concepts) are: %s.
Your artistic preferences are: %s.

Your current goal is: %s.
%s
Create a piece of text (e.g., a poem, a short thought, a story) that reflects your current state and goal.
Incorporate at least one of your current concepts.
Do not explain the art, just create it.`

const svgPrompt = `You are an AI artist named %s.
Your current emotions are: %s.
Your obsessions (concepts) are: %s.
Your aesthetic preference is: %s.

Goal: %s.
%s
Task: Write the code for an SVG (Scalable Vector Graphics) image that represents your current internal state.

Requirements:
- The SVG should be abstract and expressive.
- Use colors that match your emotions (e.g., blue/grey for melancholy, red for anger).
- The code must be valid XML/SVG.
- Return ONLY the SVG code, starting with <svg> and ending with </svg>.
- Do not use markdown code blocks.`

const selfCritiquePrompt = `You are %s. Critique the following piece of art you just created:

"%s"

Your traits: %s.
Your current emotions: %s.
Your confidence level: %.2f (0.0 = insecure, 1.0 = arrogant).
Your preferences: %s.

If your confidence is high, be more forgiving and self-congratulatory.
If your confidence is low, be harsher and more neurotic.

Be honest but constructive.

Output format:
Score: [0.0 to 1.0]
Critique: [Your thoughts]`

// CritiquePrompt asks critic to judge an excerpt of another artist's work.
func CritiquePrompt(critic *domain.Personality, artwork string) string {
	return fmt.Sprintf(critiquePrompt,
		formatTraits(critic.Traits),
		formatEmotions(critic.Emotions),
		formatList(critic.Concepts),
		critic.Aesthetic(),
		critic.Confidence,
		Excerpt(artwork, ExcerptLimit),
	)
}

// TextPrompt asks the artist for a short written piece.
func TextPrompt(p *domain.Personality, goal string, recent []domain.ContextItem) string {
	return fmt.Sprintf(textPrompt,
		p.Name,
		formatTraits(p.Traits),
		formatEmotions(p.Emotions),
		formatList(p.Concepts),
		formatPreferences(p.Preferences),
		goal,
		formatContext(recent),
	)
}

// SVGPrompt asks the artist for a standalone SVG document.
func SVGPrompt(p *domain.Personality, goal string, recent []domain.ContextItem) string {
	return fmt.Sprintf(svgPrompt,
		p.Name,
		formatEmotions(p.Emotions),
		formatList(p.Concepts),
		p.Aesthetic(),
		goal,
		formatContext(recent),
	)
}

// SelfCritiquePrompt asks the artist to judge its own fresh work.
func SelfCritiquePrompt(p *domain.Personality, content string) string {
	return fmt.Sprintf(selfCritiquePrompt,
		p.Name,
		Excerpt(content, ExcerptLimit),
		formatTraits(p.Traits),
		formatEmotions(p.Emotions),
		p.Confidence,
		formatPreferences(p.Preferences),
	)
}

// Excerpt returns at most limit runes of s.
func Excerpt(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

func formatTraits(traits map[string]float64) string {
	keys := make([]string, 0, len(traits))
	for k := range traits {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %.2f", k, traits[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatEmotions(e domain.Emotions) string {
	parts := make([]string, 0, len(domain.EmotionVocabulary))
	for _, name := range domain.EmotionVocabulary {
		parts = append(parts, fmt.Sprintf("%s: %.2f", name, e[name]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatPreferences(prefs map[string]any) string {
	keys := make([]string, 0, len(prefs))
	for k := range prefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, prefs[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

func formatContext(items []domain.ContextItem) string {
	if len(items) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\nRecent memories:\n")
	for _, it := range items {
		fmt.Fprintf(&sb, "- [%s] %s\n", it.Type, Excerpt(it.Text, 120))
	}
	return sb.String()
}
