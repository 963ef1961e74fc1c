package skill

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/msuss/atelier/internal/critique"
	"github.com/msuss/atelier/internal/domain"
	"github.com/msuss/atelier/internal/llm"
	"go.uber.org/zap"
)

// SVGRefPrefix marks creation content that points at an SVG file in the
// artist's art directory instead of holding the work inline.
const SVGRefPrefix = "[SVG Created: "

const (
	mockSVGContent = "[Mock Visual Art - SVG Generation Failed or No Key]"

	referenceScore    = 0.8
	referenceCritique = "The composition reflects my fractured state. The colors vibrate with the correct intensity."
	failedCritique    = "Unable to generate critique at this time."
)

// SVGSkill draws abstract vector images and files them under the artist's
// art directory.
type SVGSkill struct {
	gen    domain.TextGenerator
	parser *critique.Parser
	logger *zap.Logger
	now    func() time.Time
}

func NewSVGSkill(gen domain.TextGenerator, logger *zap.Logger) *SVGSkill {
	return &SVGSkill{gen: gen, parser: critique.DefaultParser(), logger: logger, now: time.Now}
}

func (s *SVGSkill) Name() string { return "svg" }

func (s *SVGSkill) Perform(ctx context.Context, brief Brief) (*Artwork, error) {
	prompt := llm.SVGPrompt(brief.Personality, brief.Goal, brief.Context)

	raw, err := s.gen.Complete(ctx, prompt)
	if err != nil {
		s.logger.Warn("svg generation failed, using mock",
			zap.String("artist", brief.Artist),
			zap.Error(err),
		)
		return &Artwork{Kind: KindImage, Content: mockSVGContent, Prompt: prompt, Mock: true}, nil
	}
	svg := CleanSVG(raw)

	if err := os.MkdirAll(brief.ArtDir, 0o755); err != nil {
		return nil, fmt.Errorf("create art dir: %w", err)
	}
	name := fmt.Sprintf("art_%d.svg", s.now().Unix())
	path := filepath.Join(brief.ArtDir, name)
	for i := 1; fileExists(path); i++ {
		name = fmt.Sprintf("art_%d_%d.svg", s.now().Unix(), i)
		path = filepath.Join(brief.ArtDir, name)
	}
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return nil, fmt.Errorf("write svg: %w", err)
	}

	return &Artwork{
		Kind:     KindImage,
		Content:  SVGReference(name),
		Prompt:   prompt,
		FilePath: path,
		Source:   svg,
	}, nil
}

func (s *SVGSkill) Critique(ctx context.Context, art *Artwork, p *domain.Personality) SelfCritique {
	if art.Source == "" {
		if art.Mock {
			return SelfCritique{Score: mockSelfScore, Critique: mockSelfCritique}
		}
		return SelfCritique{Score: referenceScore, Critique: referenceCritique}
	}

	resp, err := s.gen.Complete(ctx, llm.SelfCritiquePrompt(p, art.Source))
	if err != nil {
		s.logger.Warn("self critique failed", zap.String("artist", p.Name), zap.Error(err))
		return SelfCritique{Score: mockSelfScore, Critique: failedCritique}
	}
	return selfCritiqueFrom(s.parser, resp, mockSelfScore)
}

// SVGReference is the creation content stored for a file-backed image.
func SVGReference(file string) string {
	return SVGRefPrefix + "art/" + file + "]"
}

// ParseSVGReference returns the path, relative to the artist directory, that
// content points at.
func ParseSVGReference(content string) (string, bool) {
	if !strings.HasPrefix(content, SVGRefPrefix) || !strings.HasSuffix(content, "]") {
		return "", false
	}
	rel := strings.TrimSuffix(strings.TrimPrefix(content, SVGRefPrefix), "]")
	rel = filepath.Clean(strings.TrimSpace(rel))
	if rel == "." || filepath.IsAbs(rel) || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return rel, true
}

// CleanSVG strips markdown fences and anything outside the svg element.
func CleanSVG(raw string) string {
	s := strings.TrimSpace(raw)
	for _, fence := range []string{"```svg", "```xml", "```"} {
		if i := strings.Index(s, fence); i >= 0 {
			s = s[i+len(fence):]
			if j := strings.Index(s, "```"); j >= 0 {
				s = s[:j]
			}
			break
		}
	}
	if i := strings.Index(s, "<svg"); i >= 0 {
		s = s[i:]
	}
	if j := strings.LastIndex(s, "</svg>"); j >= 0 {
		s = s[:j+len("</svg>")]
	}
	return strings.TrimSpace(s)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
