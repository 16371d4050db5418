package mammogram

import "strings"

// MammogramType is the closed taxonomy of mammogram acquisition kinds. The
// iota order is also the DEFAULT preference order: a lower MammogramType is
// more clinically preferred under the DEFAULT policy, so plain `<` on two
// MammogramType values already answers "which one wins under DEFAULT"
// without a lookup table.
type MammogramType int

const (
	MammogramTOMO MammogramType = iota
	MammogramFFDM
	MammogramSYNTH
	MammogramSFM
	MammogramUnknown
)

// String returns the canonical lower-case encoding.
func (t MammogramType) String() string {
	switch t {
	case MammogramTOMO:
		return "tomo"
	case MammogramFFDM:
		return "ffdm"
	case MammogramSYNTH:
		return "s-view"
	case MammogramSFM:
		return "sfm"
	default:
		return "unknown"
	}
}

// ParseMammogramType parses the canonical encoding, case-insensitively and
// trimmed. Unrecognized input maps to MammogramUnknown rather than failing.
func ParseMammogramType(s string) MammogramType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tomo":
		return MammogramTOMO
	case "ffdm":
		return MammogramFFDM
	case "s-view":
		return MammogramSYNTH
	case "sfm":
		return MammogramSFM
	default:
		return MammogramUnknown
	}
}

// IsUnknown reports whether the type could not be classified.
func (t MammogramType) IsUnknown() bool {
	return t == MammogramUnknown
}

// IsPreferredTo reports whether t is more clinically preferred than other
// under the DEFAULT policy. Use the selector's type rank function instead
// when comparing under an explicit PreferenceOrder.
func (t MammogramType) IsPreferredTo(other MammogramType) bool {
	return t < other
}

// Laterality is which breast (or breasts) an instance depicts.
type Laterality int

const (
	LateralityLeft Laterality = iota
	LateralityRight
	LateralityBilateral
	LateralityNone
	LateralityUnknown
)

// String returns the canonical lower-case encoding.
func (l Laterality) String() string {
	switch l {
	case LateralityLeft:
		return "left"
	case LateralityRight:
		return "right"
	case LateralityBilateral:
		return "bilateral"
	case LateralityNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseLaterality parses the canonical encoding, case-insensitively and
// trimmed. Unrecognized input maps to LateralityUnknown.
func ParseLaterality(s string) Laterality {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return LateralityLeft
	case "right":
		return LateralityRight
	case "bilateral":
		return LateralityBilateral
	case "none":
		return LateralityNone
	default:
		return LateralityUnknown
	}
}

// lateralityFromDicomCode maps the single-letter DICOM ImageLaterality/Laterality
// code to a Laterality. Empty input (the tag absent or blank) is treated as
// NONE rather than UNKNOWN.
func lateralityFromDicomCode(code string) Laterality {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "L":
		return LateralityLeft
	case "R":
		return LateralityRight
	case "B":
		return LateralityBilateral
	case "":
		return LateralityNone
	default:
		return LateralityUnknown
	}
}

// IsUnilateral holds for LEFT and RIGHT only.
func (l Laterality) IsUnilateral() bool {
	return l == LateralityLeft || l == LateralityRight
}

// Opposite returns RIGHT for LEFT, LEFT for RIGHT, and UNKNOWN otherwise.
func (l Laterality) Opposite() Laterality {
	switch l {
	case LateralityLeft:
		return LateralityRight
	case LateralityRight:
		return LateralityLeft
	default:
		return LateralityUnknown
	}
}

// ViewPosition is the (practically open-ended) DICOM projection vocabulary,
// modeled as a closed enum of known views plus an UNKNOWN bucket — unknown
// strings are never silently coerced to a nearby standard view.
type ViewPosition int

const (
	ViewUnknown ViewPosition = iota
	ViewAT
	ViewCC
	ViewFB
	ViewISO
	ViewLM
	ViewLMO
	ViewML
	ViewMLO
	ViewSIO
	ViewXCCL
	ViewXCCM
)

// String returns the canonical lower-case encoding; UNKNOWN encodes as the
// empty string.
func (v ViewPosition) String() string {
	switch v {
	case ViewAT:
		return "at"
	case ViewCC:
		return "cc"
	case ViewFB:
		return "fb"
	case ViewISO:
		return "iso"
	case ViewLM:
		return "lm"
	case ViewLMO:
		return "lmo"
	case ViewML:
		return "ml"
	case ViewMLO:
		return "mlo"
	case ViewSIO:
		return "sio"
	case ViewXCCL:
		return "xccl"
	case ViewXCCM:
		return "xccm"
	default:
		return ""
	}
}

// ParseViewPosition parses the DICOM ViewPosition value, case-insensitively
// and trimmed. Unrecognized input maps to ViewUnknown.
func ParseViewPosition(s string) ViewPosition {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AT":
		return ViewAT
	case "CC":
		return ViewCC
	case "FB":
		return ViewFB
	case "ISO":
		return ViewISO
	case "LM":
		return ViewLM
	case "LMO":
		return ViewLMO
	case "ML":
		return ViewML
	case "MLO":
		return ViewMLO
	case "SIO":
		return ViewSIO
	case "XCCL":
		return ViewXCCL
	case "XCCM":
		return ViewXCCM
	default:
		return ViewUnknown
	}
}

// IsStandardView holds for CC and MLO, the two standard screening projections.
func (v ViewPosition) IsStandardView() bool {
	return v == ViewCC || v == ViewMLO
}

// IsCCLike holds for CC and its exaggerated-lateral/medial variants.
func (v ViewPosition) IsCCLike() bool {
	return v == ViewCC || v == ViewXCCL || v == ViewXCCM
}

// IsMLOLike holds for MLO and its lateral/oblique variants.
func (v ViewPosition) IsMLOLike() bool {
	return v == ViewMLO || v == ViewML || v == ViewLMO || v == ViewLM
}

// MammogramView is the (laterality, projection) pair selection operates on.
// It is a plain comparable struct, so it is usable as a map key directly.
type MammogramView struct {
	Laterality Laterality
	View       ViewPosition
}

// IsStandardMammoView holds iff the laterality is unilateral and the view is
// one of the two standard projections.
func (v MammogramView) IsStandardMammoView() bool {
	return v.Laterality.IsUnilateral() && v.View.IsStandardView()
}

// IsCCLike delegates to the view component.
func (v MammogramView) IsCCLike() bool { return v.View.IsCCLike() }

// IsMLOLike delegates to the view component.
func (v MammogramView) IsMLOLike() bool { return v.View.IsMLOLike() }

// StandardViews returns the four standard screening views in a fixed,
// deterministic order: L-CC, R-CC, L-MLO, R-MLO.
func StandardViews() []MammogramView {
	return []MammogramView{
		{LateralityLeft, ViewCC},
		{LateralityRight, ViewCC},
		{LateralityLeft, ViewMLO},
		{LateralityRight, ViewMLO},
	}
}

// PhotometricInterpretation is the DICOM pixel-color-space tag value.
type PhotometricInterpretation int

const (
	PhotometricUnknown PhotometricInterpretation = iota
	PhotometricMonochrome1
	PhotometricMonochrome2
	PhotometricRGB
	PhotometricPaletteColor
	PhotometricYBRFull
	PhotometricYBRFull422
)

// String returns the canonical DICOM-spelled encoding.
func (p PhotometricInterpretation) String() string {
	switch p {
	case PhotometricMonochrome1:
		return "MONOCHROME1"
	case PhotometricMonochrome2:
		return "MONOCHROME2"
	case PhotometricRGB:
		return "RGB"
	case PhotometricPaletteColor:
		return "PALETTE_COLOR"
	case PhotometricYBRFull:
		return "YBR_FULL"
	case PhotometricYBRFull422:
		return "YBR_FULL_422"
	default:
		return "unknown"
	}
}

// ParsePhotometricInterpretation parses the DICOM tag value, case-insensitively
// and trimmed. Unrecognized input maps to PhotometricUnknown.
func ParsePhotometricInterpretation(s string) PhotometricInterpretation {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MONOCHROME1":
		return PhotometricMonochrome1
	case "MONOCHROME2":
		return PhotometricMonochrome2
	case "RGB":
		return PhotometricRGB
	case "PALETTE_COLOR", "PALETTE COLOR":
		return PhotometricPaletteColor
	case "YBR_FULL":
		return PhotometricYBRFull
	case "YBR_FULL_422":
		return PhotometricYBRFull422
	default:
		return PhotometricUnknown
	}
}

// IsMonochrome holds for MONOCHROME1 and MONOCHROME2 only.
func (p PhotometricInterpretation) IsMonochrome() bool {
	return p == PhotometricMonochrome1 || p == PhotometricMonochrome2
}

// NumChannels returns 1 for monochrome/palette interpretations and 3 for the
// colour variants. Unknown defaults to 1, the conservative (grayscale) case.
func (p PhotometricInterpretation) NumChannels() int {
	switch p {
	case PhotometricRGB, PhotometricYBRFull, PhotometricYBRFull422:
		return 3
	default:
		return 1
	}
}
