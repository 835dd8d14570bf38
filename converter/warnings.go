package converter

import (
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Warning type constants
const (
	// Platform warnings
	WarningMissingPlatform  = "missing_platform"
	WarningNoPlatformCenter = "no_platform_center"
	WarningNoPlatformNodes  = "no_platform_nodes"

	// Stop warnings
	WarningNoEntranceCenter = "no_entrance_center"
	WarningStationFallback  = "station_fallback"

	// Run warnings
	WarningCachedCityNotInRun = "cached_city_not_in_run"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects warnings during an export and logs one summary
// per warning type. It is safe for concurrent use.
type WarningAggregator struct {
	mu       sync.Mutex
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns how many times warningType was recorded.
func (w *WarningAggregator) Count(warningType string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// LogAll outputs all collected warnings, one line per type.
func (w *WarningAggregator) LogAll() {
	w.mu.Lock()
	defer w.mu.Unlock()

	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	slices.Sort(types)

	for _, t := range types {
		info := w.warnings[t]
		description, action := describeWarning(t)
		log.Warn().
			Str("warning", t).
			Int("count", info.count).
			Strs("examples", info.examples).
			Msgf("Found %s. %s", description, action)
	}
}

func describeWarning(warningType string) (description, action string) {
	switch warningType {
	case WarningMissingPlatform:
		return "platforms missing from city elements", "Synthesizing no exits for them"
	case WarningNoPlatformCenter:
		return "platforms without a known center", "Synthesizing no exits for them"
	case WarningNoPlatformNodes:
		return "platforms that resolve to no nodes", "Synthesizing no exits for them"
	case WarningNoEntranceCenter:
		return "entrances without a known center", "Omitting them from stop records"
	case WarningStationFallback:
		return "stop areas without entrances or platform exits", "Using the station point as entrance and exit"
	case WarningCachedCityNotInRun:
		return "cached cities absent from the network model", "Keeping their cache entries untouched"
	}
	return "unknown issue", "Continuing with fallback behavior"
}
