// Package utils provides shared geometry and timing helpers.
//
// It contains:
//   - Great-circle distance between (lon, lat) points
//   - Conversion of a distance at a fixed speed into whole seconds
package utils
