package runtime

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/partition"
	"github.com/aretw0/cubewalk/pkg/ports"
)

const (
	cubeFaces       = 6
	edgesPerSeam    = 2
	cornersPerPoint = 3
)

// Stitching is the state of the folding fixpoint: which raw edges are glued
// together and which raw corners meet at one cube vertex.
type Stitching struct {
	Edges   *partition.Partition[domain.Edge]
	Corners *partition.Partition[domain.Vertex]

	// Adjacent counts seams found directly in the net, Closed the ones
	// inferred by closing vertices.
	Adjacent int
	Closed   int

	// Duplicates lists faces given more than once. Each is stitched once.
	Duplicates []domain.Position

	faces   []domain.Position
	pending []domain.Vertex
}

// Stitch folds the given faces as far as the net allows. It never fails;
// Problems reports whether the result is a cube.
func Stitch(faces []domain.Position) *Stitching {
	s := &Stitching{
		Edges:   partition.New[domain.Edge](len(faces) * 4),
		Corners: partition.New[domain.Vertex](len(faces) * 4),
		faces:   make([]domain.Position, 0, len(faces)),
	}
	present := make(map[domain.Position]bool, len(faces))
	for _, f := range faces {
		if err := s.addFace(f); err != nil {
			s.Duplicates = append(s.Duplicates, f)
			continue
		}
		present[f] = true
		s.faces = append(s.faces, f)
	}

	// Faces that touch in the net are glued along the shared side.
	for _, f := range s.faces {
		for _, d := range domain.Directions {
			n := f.Step(d)
			if !present[n] {
				continue
			}
			if s.glue(domain.Edge{Face: f, Side: d}, domain.Edge{Face: n, Side: d.Opposite()}) {
				s.Adjacent++
			}
		}
	}

	s.saturate()
	return s
}

// addFace inserts the sides and corners of f. It fails when f was already added.
func (s *Stitching) addFace(f domain.Position) error {
	for _, d := range domain.Directions {
		if err := s.Edges.Insert(domain.Edge{Face: f, Side: d}); err != nil {
			return fmt.Errorf("face %s: %w", f, err)
		}
	}
	for _, c := range domain.Corners {
		if err := s.Corners.Insert(domain.Vertex{Face: f, Corner: c}); err != nil {
			return fmt.Errorf("face %s: %w", f, err)
		}
	}
	return nil
}

// glue merges two raw edges and the corners at their ends. Folding reverses
// orientation, so the leading corner of one side meets the trailing corner
// of the other.
func (s *Stitching) glue(a, b domain.Edge) bool {
	if _, changed := s.Edges.Merge(a, b); !changed {
		return false
	}
	aLead, aTrail := a.Side.Diagonals()
	bLead, bTrail := b.Side.Diagonals()
	s.joinCorners(domain.Vertex{Face: a.Face, Corner: aLead}, domain.Vertex{Face: b.Face, Corner: bTrail})
	s.joinCorners(domain.Vertex{Face: a.Face, Corner: aTrail}, domain.Vertex{Face: b.Face, Corner: bLead})
	return true
}

func (s *Stitching) joinCorners(a, b domain.Vertex) {
	root, changed := s.Corners.Merge(a, b)
	if changed && s.Corners.Size(root) == cornersPerPoint {
		s.pending = append(s.pending, root)
	}
}

// saturate closes every vertex that three faces already meet at: the two
// sides at that vertex still left unglued must be glued to each other.
func (s *Stitching) saturate() {
	for len(s.pending) > 0 {
		v := s.pending[len(s.pending)-1]
		s.pending = s.pending[:len(s.pending)-1]

		class := s.Corners.ClassOf(v)
		if len(class) != cornersPerPoint {
			continue
		}
		free, ok := s.freeEdges(class)
		if !ok {
			continue
		}
		if s.glue(free[0], free[1]) {
			s.Closed++
		}
	}
}

// freeEdges returns the two unglued sides around a closed vertex. It reports
// false unless the six sides touching the vertex span exactly four edge
// classes, two of them singletons.
func (s *Stitching) freeEdges(class []domain.Vertex) ([2]domain.Edge, bool) {
	var free [2]domain.Edge
	roots := make(map[domain.Edge]bool, 6)
	n := 0
	for _, v := range class {
		a, b := v.Corner.Sides()
		for _, side := range []domain.Direction{a, b} {
			e := domain.Edge{Face: v.Face, Side: side}
			root := s.Edges.Find(e)
			if roots[root] {
				continue
			}
			roots[root] = true
			if s.Edges.Size(root) == 1 {
				if n == len(free) {
					return free, false
				}
				free[n] = e
				n++
			}
		}
	}
	return free, len(roots) == 4 && n == 2
}

// Problems lists duplicated faces and every class that breaks the cube
// invariants: a face count other than six, seams that are not pairs,
// vertices not shared by three faces.
func (s *Stitching) Problems() []*domain.TopologyError {
	var out []*domain.TopologyError
	for _, f := range s.Duplicates {
		out = append(out, &domain.TopologyError{Faces: len(s.faces), Face: &f})
	}
	if len(s.faces) != cubeFaces {
		out = append(out, &domain.TopologyError{Faces: len(s.faces), Want: cubeFaces})
	}
	for _, class := range s.Edges.Classes() {
		if len(class) != edgesPerSeam {
			e := class[0]
			out = append(out, &domain.TopologyError{Faces: len(s.faces), Edge: &e, ClassSize: len(class), Want: edgesPerSeam})
		}
	}
	for _, class := range s.Corners.Classes() {
		if len(class) != cornersPerPoint {
			v := class[0]
			out = append(out, &domain.TopologyError{Faces: len(s.faces), Vertex: &v, ClassSize: len(class), Want: cornersPerPoint})
		}
	}
	return out
}

// CubeResolver resolves edges by folding the net into a cube.
type CubeResolver struct {
	seams    map[domain.Edge]domain.Edge
	stitched *Stitching
}

// ResolverOption configures resolver construction.
type ResolverOption func(*resolverConfig)

type resolverConfig struct {
	logger *slog.Logger
}

// WithResolverLogger logs the folding summary at debug level.
func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(c *resolverConfig) {
		c.logger = logger
	}
}

// NewCubeResolver folds the faces of net into a cube. It fails with a
// *domain.TopologyError when the net has other than six faces or does not
// close up.
func NewCubeResolver(net ports.Occupancy, opts ...ResolverOption) (*CubeResolver, error) {
	cfg := resolverConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	faces := net.Faces()
	if len(faces) != cubeFaces {
		return nil, &domain.TopologyError{Faces: len(faces), Want: cubeFaces}
	}

	s := Stitch(faces)
	cfg.logger.Debug("Net folded", "adjacent", s.Adjacent, "closed", s.Closed)
	if problems := s.Problems(); len(problems) > 0 {
		return nil, problems[0]
	}

	seams := make(map[domain.Edge]domain.Edge, s.Edges.Len())
	for _, class := range s.Edges.Classes() {
		seams[class[0]] = class[1]
		seams[class[1]] = class[0]
	}
	return &CubeResolver{seams: seams, stitched: s}, nil
}

func (r *CubeResolver) Mode() domain.Mode { return domain.ModeCube }

func (r *CubeResolver) Resolve(e domain.Edge) (domain.Edge, bool) {
	to, ok := r.seams[e]
	return to, ok
}

// Stitching exposes the fixpoint the resolver was built from.
func (r *CubeResolver) Stitching() *Stitching { return r.stitched }
