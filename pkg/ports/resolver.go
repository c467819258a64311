package ports

import "github.com/aretw0/cubewalk/pkg/domain"

// Occupancy is the face layout of a net: which positions of the face matrix
// hold a face.
type Occupancy interface {
	// Width and Height are the dimensions of the face matrix.
	Width() int
	Height() int
	Present(domain.Position) bool
	// Faces lists present faces in row-major order.
	Faces() []domain.Position
}

// EdgeResolver glues the sides of faces together.
//
// Resolve maps the side an agent leaves through to the face and side it
// enters through. Resolving the returned edge again must lead back to the
// original one. It reports false only for faces that are not present.
type EdgeResolver interface {
	Resolve(domain.Edge) (domain.Edge, bool)
	Mode() domain.Mode
}
