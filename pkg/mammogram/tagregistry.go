package mammogram

import (
	"fmt"
	"os"
	"strings"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// tagRegistry maps lowercase tag names to the underlying DICOM tag.Tag for
// every element the classifier consults.
var tagRegistry = map[string]tag.Tag{
	"imagetype":                 tag.ImageType,
	"imagelaterality":           tag.ImageLaterality,
	"laterality":                tag.Laterality,
	"viewposition":              tag.ViewPosition,
	"presentationintenttype":    tag.PresentationIntentType,
	"breastimplantpresent":      tag.BreastImplantPresent,
	"numberofframes":            tag.NumberOfFrames,
	"viewmodifiercodesequence":  tag.ViewModifierCodeSequence,
	"manufacturer":              tag.Manufacturer,
	"manufacturermodelname":     tag.ManufacturerModelName,
	"modality":                  tag.Modality,
	"photometricinterpretation": tag.PhotometricInterpretation,
	"rows":                      tag.Rows,
	"columns":                   tag.Columns,
}

// tagByName returns tag.Tag for a given name, looked up case-insensitively.
// If the name is not found, an error naming the closest known tag (by
// Levenshtein distance) is returned.
func tagByName(name string) (tag.Tag, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	if t, ok := tagRegistry[normalized]; ok {
		return t, nil
	}

	if suggestion := findClosestTagName(normalized); suggestion != "" {
		return tag.Tag{}, NewTagNotFoundErrorWithSuggestion(name, suggestion)
	}
	return tag.Tag{}, NewTagNotFoundError(name)
}

// LookupTag resolves a mammography tag name (e.g. "ImageType",
// "viewposition") to its underlying DICOM tag, case-insensitively.
func LookupTag(name string) (tag.Tag, error) {
	return tagByName(name)
}

// ExtractTagValue opens the DICOM instance at path and returns the named
// tag's first string value. Unlike the Tag Accessor the classifier uses
// internally, a missing or malformed tag here is an error rather than a
// zero value: this is the strict path a caller uses when it actually needs
// the tag to be present.
func ExtractTagValue(path, name string) (string, error) {
	t, err := tagByName(name)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", NewDicomError("failed to open DICOM file", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", NewDicomError("failed to stat DICOM file", err)
	}

	ds, err := dicom.Parse(f, info.Size(), nil, dicom.SkipPixelData())
	if err != nil {
		return "", NewDicomError("failed to parse DICOM file", err)
	}

	elem, err := ds.FindElementByTag(t)
	if err != nil {
		return "", NewTagNotFoundError(name)
	}
	if elem == nil || elem.Value == nil {
		return "", NewExtractionError(fmt.Sprintf("tag %s present but carries no value", name), nil)
	}

	vals, ok := elem.Value.GetValue().([]string)
	if !ok || len(vals) == 0 {
		return "", NewInvalidValueError(name, "element has no string-representable value")
	}
	return strings.TrimSpace(vals[0]), nil
}

// findClosestTagName finds the closest registered tag name by Levenshtein
// distance. Returns empty string if no candidate is within maxDistance.
func findClosestTagName(input string) string {
	const maxDistance = 5
	bestDistance := maxDistance + 1
	var bestMatch string

	for key := range tagRegistry {
		distance := levenshteinDistance(input, key)
		if distance < bestDistance {
			bestDistance = distance
			bestMatch = key
		}
	}

	if bestDistance <= maxDistance {
		return bestMatch
	}
	return ""
}

// levenshteinDistance calculates the Levenshtein edit distance between a and b.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(a)][len(b)]
}
