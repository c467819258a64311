/*
Package domain contains the core value types shared by every cubewalk component.

It defines the vocabulary of the cube surface: directions and corners with their
rotation tables, positions, tiles, raw edges and corners, the agent pose, and the
instructions that drive it. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Direction / Corner: Enumerated sides and corners of a face. Every rotation is a table lookup.
  - Edge / Vertex: A raw edge or corner, i.e. one side or corner of one face before folding.
  - Seam: One entry of the resolved edge map.
  - Pose: Current face, in-face offset and facing of the agent. Encodes to the puzzle password.
  - Result: The outcome of walking a puzzle in a given Mode.
*/
package domain
