/*
Package cache persists per-city export results between runs and decides
whether a cached city can be reused.

# Document

The cache file is one JSON object keyed by city name:

	{
	  "Moscow": {
	    "network": NetworkRecord,
	    "stops":   {"n123": StopRecord, ...}
	  }
	}

It is read once at the start of a run and written once at the end. A missing,
empty or malformed file is an empty cache. There is no partial-write protocol:
the cache is an optimization, and a broken file only costs a rebuild.

# Validity

A cached city is reused only when every cached stop still resolves to a live
station element within Validator.Threshold meters of the cached coordinates.
Any failing stop rejects the whole city; reuse is all or nothing.

Entrances and exits are checked too, but drifting or vanished entrances only
reject the city when Validator.StrictEntrances is set:

	v := cache.Validator{Threshold: cache.DefaultThreshold}
	report := v.Check(city, doc[city.Name])
	if report.Usable {
	    ...
	}
*/
package cache
