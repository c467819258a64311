// Package schema loads puzzle documents: YAML or JSON files that carry a
// net, a path and optional metadata.
//
// A document looks like this:
//
//	name: sample
//	mode: both
//	face_size: 4
//	net:
//	  - "        ...#"
//	  - "        .#.."
//	  ...
//	path: 10R5L5R10L4R5L5
//	expect:
//	  flat: 6032
//	  cube: 5031
//
// The net may also be a single string. YAML block scalars strip common
// indentation, so nets whose first row starts with blanks need an explicit
// indentation indicator (|2) or the list form above.
//
// Documents are checked with struct tags (go-playground/validator) before
// they are turned into a domain.Puzzle.
package schema
