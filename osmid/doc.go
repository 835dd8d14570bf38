// Package osmid provides typed OpenStreetMap element references and the
// numeric identifier scheme used by the exported network.
//
// An ElementID pairs an element type (node, way, relation) with its numeric
// ref and prints in the compact form used across the model and the cache
// file: "n123", "w45", "r6".
//
// Two encodings map an ElementID to a 63-bit integer:
//   - Encode folds a 2-bit type code into the low bits, so the same ref of a
//     node and of a way never collide. Used for stop areas and stations,
//     which may be any element type.
//   - EncodeAs checks the type against an expected one and fails with a
//     *ValidationError on mismatch. Used for routes, which are relations.
//
// Both keep the least significant bit at zero. It is reserved for consumers
// of the export.
package osmid
