package service

import (
	"os"
	"path/filepath"

	"github.com/msuss/atelier/internal/skill"
)

// resolveArtwork turns stored creation content into what a viewer or critic
// should see. File references are replaced by the SVG markup when the file is
// readable; otherwise the reference text itself is returned.
func resolveArtwork(artistDir, content string) (kind, body string) {
	rel, ok := skill.ParseSVGReference(content)
	if !ok {
		return skill.KindText, content
	}
	data, err := os.ReadFile(filepath.Join(artistDir, rel))
	if err != nil {
		return skill.KindImage, content
	}
	return skill.KindImage, string(data)
}
