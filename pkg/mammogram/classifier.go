package mammogram

import "strings"

// classify is the pure function from an extracted tag bundle to a
// MammogramMetadata record. isSFMHint is the caller-supplied signal that the
// source is digitized screen-film; the core never attempts to infer SFM
// from tags alone.
func classify(b tagBundle, isSFMHint bool) MammogramMetadata {
	imageType := NewImageType(b.imageType)

	return MammogramMetadata{
		MammogramType:             classifyMammogramType(b, imageType, isSFMHint),
		Laterality:                classifyLaterality(b),
		ViewPosition:              ParseViewPosition(b.viewPosition),
		ImageType:                 imageType,
		IsForProcessing:           strings.EqualFold(b.presentationIntentType, "FOR PROCESSING"),
		HasImplant:                strings.EqualFold(b.breastImplantPresent, "YES"),
		IsSpotCompression:         spotCompression(b),
		IsMagnified:               magnified(b),
		IsImplantDisplaced:        implantDisplaced(b),
		NumberOfFrames:            normalizeNumberOfFrames(b),
		PhotometricInterpretation: ParsePhotometricInterpretation(b.photometricInterpretation),
	}
}

// classifyMammogramType is an ordered decision table: first matching rule
// wins. Tomosynthesis is checked before synthetic-2D because some vendors
// overlap DERIVED flags between the two; the frame count heuristic catches
// vendors that omit an explicit TOMO token.
func classifyMammogramType(b tagBundle, imageType ImageType, isSFMHint bool) MammogramType {
	frames := normalizeNumberOfFrames(b)
	modality := strings.ToUpper(strings.TrimSpace(b.modality))

	switch {
	case isSFMHint:
		return MammogramSFM

	case imageType.FlavorOrEmpty() == "VOLUME" ||
		imageType.Contains("TOMO") ||
		frames >= 2:
		return MammogramTOMO

	case imageType.Contains("GENERATED_2D") ||
		imageType.FlavorOrEmpty() == "GENERATED" ||
		imageType.Contains("S-VIEW") ||
		isSyntheticReconstruction(imageType):
		return MammogramSYNTH

	case modality == "MG" && imageType.Pixels == "ORIGINAL" && imageType.Exam == "PRIMARY":
		return MammogramFFDM

	case modality == "MG":
		// Fallback FFDM: a mammogram acquired on MG equipment whose
		// ImageType tags are partial or non-standard still reads as FFDM
		// rather than UNKNOWN.
		return MammogramFFDM

	default:
		return MammogramUnknown
	}
}

// isSyntheticReconstruction recognizes the DERIVED/SECONDARY combination
// some vendors use for synthetic-2D reconstructions that carry neither a
// GENERATED_2D extra nor a GENERATED flavor token.
func isSyntheticReconstruction(imageType ImageType) bool {
	return imageType.Pixels == "DERIVED" && imageType.Exam == "SECONDARY"
}

// classifyLaterality prefers ImageLaterality, falling back to Laterality.
func classifyLaterality(b tagBundle) Laterality {
	if b.imageLaterality != "" {
		return lateralityFromDicomCode(b.imageLaterality)
	}
	return lateralityFromDicomCode(b.laterality)
}

// normalizeNumberOfFrames applies the NumberOfFrames rule: absent defaults
// to 1, and values below 1 clamp to 1.
func normalizeNumberOfFrames(b tagBundle) int {
	if !b.haveNumberOfFrames || b.numberOfFrames < 1 {
		return 1
	}
	return b.numberOfFrames
}

func spotCompression(b tagBundle) bool {
	spot, _, _ := viewModifierFlags(b.viewModifiers)
	return spot
}

func magnified(b tagBundle) bool {
	_, mag, _ := viewModifierFlags(b.viewModifiers)
	return mag
}

func implantDisplaced(b tagBundle) bool {
	_, _, implant := viewModifierFlags(b.viewModifiers)
	return implant
}
