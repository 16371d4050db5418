package mammogram

import "strings"

// modifierKind is the clinically significant view-modifier flag a
// ViewModifierCodeSequence item can set.
type modifierKind int

const (
	modifierSpotCompression modifierKind = iota
	modifierMagnification
	modifierImplantDisplaced
)

// modifierCode is one (CodeValue, CodingSchemeDesignator) pair recognized as
// denoting a given modifier. Treated as a lookup table, extensible without
// touching the classifier itself: the code/scheme pairs considered
// equivalent may evolve by site or vendor.
type modifierCode struct {
	codeValue              string
	codingSchemeDesignator string
	kind                   modifierKind
}

// modifierCodes is the initial recognized set. 99SDM, a site-local coding
// scheme, is listed first for each code value; SRT is recognized as the
// standard coding scheme for the same concepts. A match needs both the code
// value and the scheme, so the listing order does not change the result.
var modifierCodes = []modifierCode{
	{"R-102D1", "99SDM", modifierSpotCompression},
	{"R-102D1", "SRT", modifierSpotCompression},
	{"R-102D3", "99SDM", modifierMagnification},
	{"R-102D3", "SRT", modifierMagnification},
	{"R-4092C", "99SDM", modifierImplantDisplaced},
	{"R-4092C", "SRT", modifierImplantDisplaced},
}

// meaningFallbacks matches CodeMeaning by case-insensitive substring when the
// (CodeValue, CodingSchemeDesignator) pair is not in modifierCodes — vendors
// sometimes ship a meaning string without a recognized code.
var meaningFallbacks = []struct {
	substr string
	kind   modifierKind
}{
	{"spot compression", modifierSpotCompression},
	{"magnif", modifierMagnification},
	{"implant displaced", modifierImplantDisplaced},
}

// viewModifierItem is one item of ViewModifierCodeSequence, as extracted by
// the Tag Accessor.
type viewModifierItem struct {
	CodeValue              string
	CodingSchemeDesignator string
	CodeMeaning            string
}

// classifyModifier maps a single ViewModifierCodeSequence item to the
// modifier kind it denotes, or (_, false) if it matches nothing known.
func classifyModifier(item viewModifierItem) (modifierKind, bool) {
	for _, mc := range modifierCodes {
		if item.CodeValue == mc.codeValue && item.CodingSchemeDesignator == mc.codingSchemeDesignator {
			return mc.kind, true
		}
	}
	meaning := strings.ToLower(item.CodeMeaning)
	for _, fb := range meaningFallbacks {
		if strings.Contains(meaning, fb.substr) {
			return fb.kind, true
		}
	}
	return 0, false
}

// viewModifierFlags derives the three boolean modifier flags from a full
// ViewModifierCodeSequence. An empty/absent sequence sets all three to
// false.
func viewModifierFlags(items []viewModifierItem) (spotCompression, magnified, implantDisplaced bool) {
	for _, item := range items {
		kind, ok := classifyModifier(item)
		if !ok {
			continue
		}
		switch kind {
		case modifierSpotCompression:
			spotCompression = true
		case modifierMagnification:
			magnified = true
		case modifierImplantDisplaced:
			implantDisplaced = true
		}
	}
	return
}
