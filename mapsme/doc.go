// Package mapsme defines the records of the exported network document and of
// the per-city cache.
//
// The export is a single JSON document:
//
//	{
//	  "stops":     [StopRecord...],
//	  "transfers": [[stop_id, stop_id, seconds]...],
//	  "networks":  [NetworkRecord...]
//	}
//
// Stop ids and route ids are the 63-bit identifiers produced by package osmid.
// Stations and entrances carry their raw element type and ref. Durations are
// whole seconds. Coordinates are degrees.
package mapsme
