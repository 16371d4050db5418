package mammogram

// MammogramMetadata is the classifier's output: the normalized, structured
// view of one DICOM instance's mammography-relevant header fields.
type MammogramMetadata struct {
	MammogramType             MammogramType
	Laterality                Laterality
	ViewPosition              ViewPosition
	ImageType                 ImageType
	IsForProcessing           bool
	HasImplant                bool
	IsSpotCompression         bool
	IsMagnified               bool
	IsImplantDisplaced        bool
	NumberOfFrames            int
	PhotometricInterpretation PhotometricInterpretation
}

// View constructs the (laterality, view) pair this metadata represents.
func (m MammogramMetadata) View() MammogramView {
	return MammogramView{Laterality: m.Laterality, View: m.ViewPosition}
}

// Is2D holds for every mammogram type except TOMO and UNKNOWN.
func (m MammogramMetadata) Is2D() bool {
	return m.MammogramType != MammogramTOMO && m.MammogramType != MammogramUnknown
}

// IsStandardView delegates to the derived view's standard-view predicate.
func (m MammogramMetadata) IsStandardView() bool {
	return m.View().IsStandardMammoView()
}

// IsSpotOrMagnified holds if either spot compression or magnification was
// flagged. Shared by MammogramRecord.IsSpotOrMag.
func (m MammogramMetadata) IsSpotOrMagnified() bool {
	return m.IsSpotCompression || m.IsMagnified
}

// ToMap renders the metadata as a plain key->value mapping with stable,
// serialization-friendly keys.
func (m MammogramMetadata) ToMap() map[string]any {
	return map[string]any{
		"mammogram_type":             m.MammogramType.String(),
		"laterality":                 m.Laterality.String(),
		"view_position":              m.ViewPosition.String(),
		"image_type":                 m.ImageType.Slots(),
		"is_for_processing":          m.IsForProcessing,
		"has_implant":                m.HasImplant,
		"is_spot_compression":        m.IsSpotCompression,
		"is_magnified":               m.IsMagnified,
		"is_implant_displaced":       m.IsImplantDisplaced,
		"number_of_frames":           m.NumberOfFrames,
		"photometric_interpretation": m.PhotometricInterpretation.String(),
	}
}
