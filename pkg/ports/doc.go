/*
Package ports defines the driven ports (interfaces) for the cubewalk engine.

These interfaces decouple the core logic from external implementations, allowing
the engine to work with various resolution strategies, result stores, and hosts.

# Key Interfaces

  - EdgeResolver: Glues face sides together (flat torus, folded cube).
  - Occupancy: The face layout a resolver is built from.
  - ResultStore: Caches solved puzzles (memory, file, Redis).
  - DistributedLocker: Coordinates cache fills across replicas.
  - Solver: The entry point adapters drive.
*/
package ports
