package mammogram

import "sort"

// PreferenceOrder selects which total order over MammogramType the selector
// ranks candidates by.
type PreferenceOrder int

const (
	// PreferenceDefault ranks TOMO, FFDM, SYNTH, SFM, UNKNOWN in that order.
	PreferenceDefault PreferenceOrder = iota
	// PreferenceTomoFirst ranks TOMO, SYNTH, FFDM, SFM, UNKNOWN in that
	// order: synthetic-2D is preferred over FFDM when tomosynthesis itself
	// is unavailable, matching the workflow where an S-view accompanies a
	// TOMO acquisition.
	PreferenceTomoFirst
)

// typeRank returns the ordinal used by the selector's comparison key under
// the given PreferenceOrder. Lower ranks win.
func typeRank(order PreferenceOrder, t MammogramType) int {
	var table map[MammogramType]int
	switch order {
	case PreferenceTomoFirst:
		table = map[MammogramType]int{
			MammogramTOMO:    0,
			MammogramSYNTH:   1,
			MammogramFFDM:    2,
			MammogramSFM:     3,
			MammogramUnknown: 4,
		}
	default:
		table = map[MammogramType]int{
			MammogramTOMO:    0,
			MammogramFFDM:    1,
			MammogramSYNTH:   2,
			MammogramSFM:     3,
			MammogramUnknown: 4,
		}
	}
	if rank, ok := table[t]; ok {
		return rank
	}
	return 4
}

// FilterConfig is the pre-selection filter applied before candidates are
// bucketed and ranked. The zero value is NOT the default; use
// DefaultFilterConfig for the library's documented defaults.
type FilterConfig struct {
	ExcludeSpotCompression  bool
	ExcludeMagnified        bool
	ExcludeImplantDisplaced bool
	RequireStandardView     bool
}

// DefaultFilterConfig returns the library's default filter policy: exclude
// spot compression and magnified views, keep implant-displaced views, and
// require a standard view.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		ExcludeSpotCompression:  true,
		ExcludeMagnified:        true,
		ExcludeImplantDisplaced: false,
		RequireStandardView:     true,
	}
}

// passesFilter reports whether rec survives cfg's discard rule.
func passesFilter(rec MammogramRecord, cfg FilterConfig) bool {
	if cfg.ExcludeSpotCompression && rec.Metadata.IsSpotCompression {
		return false
	}
	if cfg.ExcludeMagnified && rec.Metadata.IsMagnified {
		return false
	}
	if cfg.ExcludeImplantDisplaced && rec.Metadata.IsImplantDisplaced {
		return false
	}
	if cfg.RequireStandardView && !rec.Metadata.IsStandardView() {
		return false
	}
	return true
}

// selectionKey is the eagerly constructed comparison key: (type_rank,
// ¬is_for_processing, ¬has_pixel_dims, −image_area, file_path), compared
// lexicographically in ascending order. Keeping it as its own type makes
// the tie-break chain auditable in one place and the DEFAULT/TOMO_FIRST
// policy swap a single typeRank call.
type selectionKey struct {
	typeRank         int
	notForProcessing int
	noPixelDims      int
	negativeArea     int64
	filePath         string
}

func newSelectionKey(order PreferenceOrder, rec MammogramRecord) selectionKey {
	area, ok := rec.ImageArea()
	key := selectionKey{
		typeRank: typeRank(order, rec.Metadata.MammogramType),
		filePath: rec.FilePath,
	}
	if !rec.Metadata.IsForProcessing {
		key.notForProcessing = 1
	}
	if !ok {
		key.noPixelDims = 1
		key.negativeArea = 0
	} else {
		key.negativeArea = -int64(area)
	}
	return key
}

// less implements the lexicographic, ascending tie-break comparison.
func (k selectionKey) less(other selectionKey) bool {
	if k.typeRank != other.typeRank {
		return k.typeRank < other.typeRank
	}
	if k.notForProcessing != other.notForProcessing {
		return k.notForProcessing < other.notForProcessing
	}
	if k.noPixelDims != other.noPixelDims {
		return k.noPixelDims < other.noPixelDims
	}
	if k.negativeArea != other.negativeArea {
		return k.negativeArea < other.negativeArea
	}
	return k.filePath < other.filePath
}

// GetPreferredViews selects one record per standard view under the default
// policy and default filter.
func GetPreferredViews(records []MammogramRecord) map[MammogramView]*MammogramRecord {
	return GetPreferredViewsFiltered(records, PreferenceDefault, DefaultFilterConfig())
}

// GetPreferredViewsWithOrder selects one record per standard view under an
// explicit PreferenceOrder and the default filter.
func GetPreferredViewsWithOrder(records []MammogramRecord, order PreferenceOrder) map[MammogramView]*MammogramRecord {
	return GetPreferredViewsFiltered(records, order, DefaultFilterConfig())
}

// GetPreferredViewsFiltered selects one record per standard view under an
// explicit PreferenceOrder and FilterConfig. The result always contains
// exactly the four standard views as keys; a view with no surviving
// candidate maps to a nil *MammogramRecord.
//
// Guarantees: totality over the four standard keys, idempotence, order
// independence with respect to the input slice, and stability (ties
// resolved solely by the documented key).
func GetPreferredViewsFiltered(records []MammogramRecord, order PreferenceOrder, cfg FilterConfig) map[MammogramView]*MammogramRecord {
	result := make(map[MammogramView]*MammogramRecord, len(StandardViews()))
	for _, v := range StandardViews() {
		result[v] = nil
	}

	buckets := make(map[MammogramView][]MammogramRecord)
	for _, rec := range records {
		if !passesFilter(rec, cfg) {
			continue
		}
		view := rec.Metadata.View()
		if _, isStandard := result[view]; !isStandard {
			continue
		}
		buckets[view] = append(buckets[view], rec)
	}

	for view, candidates := range buckets {
		sort.SliceStable(candidates, func(i, j int) bool {
			return newSelectionKey(order, candidates[i]).less(newSelectionKey(order, candidates[j]))
		})
		best := candidates[0]
		result[view] = &best
	}

	return result
}
