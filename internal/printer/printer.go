package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/msuss/atelier/internal/domain"
)

func init() {
	// Users can disable color with the NO_COLOR environment variable
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	green   = color.New(color.FgGreen)
	yellow  = color.New(color.FgYellow)
	red     = color.New(color.FgRed, color.Bold)
	cyan    = color.New(color.FgCyan)
	magenta = color.New(color.FgMagenta, color.Bold)
)

var moodColors = map[domain.Emotion]*color.Color{
	domain.EmotionMelancholy: color.New(color.FgBlue),
	domain.EmotionJoy:        color.New(color.FgYellow),
	domain.EmotionAnger:      color.New(color.FgRed),
	domain.EmotionFear:       color.New(color.FgMagenta),
	domain.EmotionAwe:        color.New(color.FgCyan),
}

// Success prints a success message in green with a checkmark prefix
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprint(stdout, msg)
}

// Info prints an informational message in the default color
func Info(format string, a ...any) {
	fmt.Fprintf(stdout, format, a...)
}

// Warning prints a warning message in yellow with a warning emoji prefix
func Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		msg = "⚠️  " + msg
	}
	yellow.Fprint(stdout, msg)
}

// Error prints title, explanation and suggestions to stderr and returns a
// plain error for cobra, which is configured not to print it again.
func Error(title string, explanation string, suggestions []string) error {
	red.Fprintf(stderr, "%s\n\n", title)
	if explanation != "" {
		fmt.Fprintf(stderr, "%s\n", explanation)
	}

	if len(suggestions) > 0 {
		fmt.Fprintf(stderr, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(stderr, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(stderr, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(stderr, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	return fmt.Errorf("%s", title)
}

// Step prints a step message with emphasis (used in multi-step operations)
func Step(format string, a ...any) {
	cyan.Fprintf(stdout, "→ %s", fmt.Sprintf(format, a...))
}

// Header prints a section banner.
func Header(title string) {
	magenta.Fprintf(stdout, "\n=== %s ===\n", title)
}

// Mood renders an emotion name in its color.
func Mood(e domain.Emotion) string {
	c, ok := moodColors[e]
	if !ok {
		return strings.ToUpper(string(e))
	}
	return c.Sprint(strings.ToUpper(string(e)))
}

// Personality prints the reflection of p followed by one bar per emotion.
func Personality(p *domain.Personality) {
	fmt.Fprintf(stdout, "%s (mood: %s)\n", p.Name, Mood(p.Mood()))
	for _, e := range domain.EmotionVocabulary {
		v := p.Emotions[e]
		bar := strings.Repeat("█", int(v*20+0.5))
		c := moodColors[e]
		fmt.Fprintf(stdout, "  %-10s %s %.2f\n", e, c.Sprint(bar), v)
	}
	fmt.Fprintf(stdout, "  confidence %.2f\n", p.Confidence)
	fmt.Fprintf(stdout, "  concepts   [%s]\n", strings.Join(p.Concepts, ", "))
}

// Println prints a plain message (for output that doesn't need coloring)
func Println(a ...any) {
	fmt.Fprintln(stdout, a...)
}

// Printf prints a plain formatted message (for output that doesn't need coloring)
func Printf(format string, a ...any) {
	fmt.Fprintf(stdout, format, a...)
}
