package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/cubewalk/pkg/domain"
)

// GraphOverlay contains walk data to visualize on the graph.
type GraphOverlay struct {
	VisitedFaces []domain.Position
	CurrentFace  *domain.Position
}

// GenerateMermaid produces a Mermaid flowchart of the faces and the seams
// between them. Each seam is drawn once:
// - Seams between faces that touch in the net: solid line
// - Seams created by folding or wrapping: dotted line
// Labels name both sides and the frame rotation.
// Overlay styles (Visited/Current) are applied if provided.
func GenerateMermaid(faces []domain.Position, seams []domain.Seam, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, f := range faces {
		sb.WriteString(fmt.Sprintf("    %s([\"%s\"])\n", faceID(f), f))
	}

	drawn := make(map[domain.Edge]bool, len(seams))
	for _, s := range seams {
		if drawn[s.From] || drawn[s.To] {
			continue
		}
		drawn[s.From] = true
		drawn[s.To] = true

		arrow := "-.-"
		if touching(s) {
			arrow = "---"
		}
		label := fmt.Sprintf("%s/%s %s°", s.From.Side, s.To.Side, s.Rotation())
		sb.WriteString(fmt.Sprintf("    %s %s|\"%s\"| %s\n", faceID(s.From.Face), arrow, label, faceID(s.To.Face)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast regardless of theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[domain.Position]bool)
		for _, f := range overlay.VisitedFaces {
			if !seen[f] {
				seen[f] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", faceID(f)))
			}
		}
		if overlay.CurrentFace != nil {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", faceID(*overlay.CurrentFace)))
		}
	}

	return sb.String()
}

// touching reports whether the seam joins faces that share that side in the net.
func touching(s domain.Seam) bool {
	return s.From.Face.Step(s.From.Side) == s.To.Face && s.To.Side == s.From.Side.Opposite()
}

func faceID(p domain.Position) string {
	return fmt.Sprintf("f%d_%d", p.X, p.Y)
}
