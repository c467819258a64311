package schema

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/cubewalk/internal/compiler"
	"github.com/aretw0/cubewalk/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	// FormatText is raw puzzle text: the net, a blank line, the path.
	FormatText Format = "text"
)

// DetectFormat picks a format from a file extension.
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Document is a puzzle file.
type Document struct {
	Name     string         `json:"name,omitempty" yaml:"name,omitempty" validate:"omitempty,max=128"`
	Mode     string         `json:"mode,omitempty" yaml:"mode,omitempty" validate:"omitempty,oneof=flat cube both"`
	FaceSize int            `json:"face_size,omitempty" yaml:"face_size,omitempty" validate:"gte=0,lte=4096"`
	Net      Rows           `json:"net" yaml:"net" validate:"required,min=1,dive,maxbytes"`
	Path     string         `json:"path" yaml:"path" validate:"maxbytes"`
	Expect   map[string]int `json:"expect,omitempty" yaml:"expect,omitempty" validate:"omitempty,dive,keys,oneof=flat cube,endkeys,gt=0"`
}

// Rows is a net given either as a list of rows or as one multi-line string.
type Rows []string

func splitRows(s string) Rows {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// UnmarshalYAML accepts a scalar or a sequence node.
func (r *Rows) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*r = splitRows(node.Value)
		return nil
	case yaml.SequenceNode:
		var rows []string
		if err := node.Decode(&rows); err != nil {
			return err
		}
		*r = rows
		return nil
	}
	return fmt.Errorf("line %d: net must be a string or a list of strings", node.Line)
}

// UnmarshalJSON accepts a string or an array of strings.
func (r *Rows) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = splitRows(s)
		return nil
	}
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("net must be a string or a list of strings: %w", err)
	}
	*r = rows
	return nil
}

// Decode reads a document. FormatText input is parsed as raw puzzle text and
// wrapped in a Document.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode yaml document: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode json document: %w", err)
		}
	case FormatText:
		p, err := compiler.NewParser().Parse(data)
		if err != nil {
			return nil, err
		}
		return FromPuzzle(p), nil
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
	return &doc, nil
}

// Encode writes a document in the given format.
func Encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatText:
		return []byte(strings.Join(doc.Net, "\n") + "\n\n" + doc.Path + "\n"), nil
	}
	return nil, fmt.Errorf("unsupported document format %q", format)
}

// FromPuzzle wraps a parsed puzzle.
func FromPuzzle(p *domain.Puzzle) *Document {
	return &Document{
		Name:     p.Name,
		FaceSize: p.FaceSize,
		Net:      slices.Clone(p.Rows),
		Path:     compiler.FormatInstructions(p.Instructions),
	}
}

// Puzzle validates the document and compiles it.
func (d *Document) Puzzle() (*domain.Puzzle, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var opts []compiler.ParserOption
	if d.FaceSize > 0 {
		opts = append(opts, compiler.WithFaceSize(d.FaceSize))
	}
	text := strings.Join(d.Net, "\n") + "\n\n" + d.Path + "\n"
	p, err := compiler.NewParser(opts...).Parse([]byte(text))
	if err != nil {
		return nil, err
	}
	p.Name = d.Name
	return p, nil
}

// Modes lists the modes the document asks for, defaulting to both.
func (d *Document) Modes() []domain.Mode {
	switch d.Mode {
	case string(domain.ModeFlat):
		return []domain.Mode{domain.ModeFlat}
	case string(domain.ModeCube):
		return []domain.Mode{domain.ModeCube}
	}
	return []domain.Mode{domain.ModeFlat, domain.ModeCube}
}

// Check compares a result with the expected password for its mode.
// Modes without an expectation always pass.
func (d *Document) Check(res *domain.Result) error {
	want, ok := d.Expect[string(res.Mode)]
	if !ok || want == res.Password {
		return nil
	}
	return &ValidationError{
		Key:    "expect." + string(res.Mode),
		Reason: fmt.Sprintf("password is %d, want %d", res.Password, want),
	}
}
