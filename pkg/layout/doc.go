// Package layout defines the data model shared by every stage of vibegrid:
// geometric value types, placed elements, grid systems, scores and the final
// [GeneratedLayout] artifact.
//
// # Core Types
//
//   - [Point], [Dimensions], [Spacing]: immutable geometric values
//   - [Element]: one placed visual unit (heading, body, shape, ...)
//   - [GridSystem]: columns, rows, gutters and margins of a candidate
//   - [Score]: weighted total plus per-principle breakdown
//   - [GeneratedLayout]: elements + grid + score + metadata
//   - [Config]: the generation request (palette, content, canvas, seed)
//
// # Predicates
//
// [HasOverlap] and [IsWithinBounds] are shared by the generator, the search
// loop and the evaluators. Touching edges never count as overlap.
//
// # Serialization
//
// All types carry json and bson tags. [Marshal] and [Unmarshal] round-trip a
// [GeneratedLayout]; this JSON is the contract consumed by rendering and
// export collaborators.
package layout
