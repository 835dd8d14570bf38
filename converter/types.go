package converter

import "github.com/theoremus-urban-solutions/subway-export/cache"

// Options contains everything an export run needs besides the network model.
// It has no dependency on config files.
type Options struct {
	// CachePath is the cache document location. Empty disables the cache.
	CachePath string

	// Threshold is how far, in meters, a cached station may drift before its
	// city is considered stale. Zero means cache.DefaultThreshold.
	Threshold float64

	// StrictEntrances makes entrance drift invalidate a cached city.
	StrictEntrances bool

	// Workers bounds how many cities are rebuilt in parallel.
	Workers int
}

func (o Options) withDefaults() Options {
	if o.Threshold <= 0 {
		o.Threshold = cache.DefaultThreshold
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return o
}

// CityCheck is the cache status of one city.
type CityCheck struct {
	City   string
	Good   bool
	Cached bool
	Report cache.Report
}
