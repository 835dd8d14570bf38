// Package converter is the main entry point for exporting a validated transit
// network model to the compact mapsme format.
//
// # Overview
//
// A run walks every city of a model.Network:
//   - Good cities are rebuilt: routes become route records, variants become
//     itineraries, and every stop area met becomes a stop record.
//   - Other cities are taken verbatim from the cache when cache.Validator
//     accepts them, and skipped otherwise.
//   - Transfer sets become pairwise transfers between the stop areas that
//     made it into the export.
//
// The merged cache is written back at the end of the run.
//
// # Usage
//
//	net, _ := model.LoadFile("network.json")
//
//	conv := converter.NewConverter(converter.Options{
//	    CachePath: "cache.json",
//	    Workers:   4,
//	})
//	doc, err := conv.Process(net)
//	if err != nil {
//	    var verr *osmid.ValidationError
//	    if errors.As(err, &verr) {
//	        // the model references an element of the wrong type
//	    }
//	}
//	data, _ := formatter.NewResponseBuilder().BuildJSON(doc)
//
// # Architecture
//
// The package is organized into specialized files:
//   - converter.go: Converter and the run control flow
//   - network.go: route, itinerary and stop area collection per city
//   - exits.go: exit synthesis from platform outlines
//   - stops.go: stop records and their entrances
//   - transfers.go: transfer records
//   - warnings.go: aggregated per-element warnings
//
// # Thread Safety
//
// Cities are rebuilt on a pool of Options.Workers goroutines. They share the
// PlatformExits accumulator and the WarningAggregator, both safe for
// concurrent use. Output order does not depend on the worker count.
package converter
