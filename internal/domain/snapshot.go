package domain

// Snapshot is the full serializable state of the progress store. It is
// the unit of persistence: the store is always saved and loaded whole,
// never incrementally. The shape (and the field names of the contained
// types) match the JSON data file on disk.
type Snapshot struct {
	Units      map[string]UnitProgress     `json:"units"`
	ThemeStats map[string]ThemeStats       `json:"theme_stats"`
	DailyPools map[Date]map[string][]string `json:"daily_pools"`
}

// NewSnapshot returns an empty snapshot with all maps initialized.
func NewSnapshot() Snapshot {
	return Snapshot{
		Units:      make(map[string]UnitProgress),
		ThemeStats: make(map[string]ThemeStats),
		DailyPools: make(map[Date]map[string][]string),
	}
}
