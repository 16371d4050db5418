package mammogram

import (
	"strconv"
	"strings"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// tagBundle is the typed, already-extracted view of the DICOM tags the
// classifier needs. Building it is newTagBundle's only job: hide
// transfer-syntax/VR detail behind plain Go types, and turn missing or
// malformed tags into absence rather than failure.
type tagBundle struct {
	imageType                 []string
	imageLaterality           string
	laterality                string
	viewPosition               string
	presentationIntentType     string
	breastImplantPresent       string
	numberOfFrames             int
	haveNumberOfFrames         bool
	viewModifiers              []viewModifierItem
	manufacturer               string
	manufacturerModelName      string
	modality                   string
	photometricInterpretation  string
	rows                       *uint32
	columns                    *uint32
}

// newTagBundle reads every tag the classifier consults out of ds. It never
// panics: a missing or malformed tag simply leaves the corresponding field
// at its zero value. PixelData is never touched.
func newTagBundle(ds dicom.Dataset) tagBundle {
	b := tagBundle{}

	b.imageType = elementStrings(ds, tag.ImageType)
	b.imageLaterality = elementString(ds, tag.ImageLaterality)
	b.laterality = elementString(ds, tag.Laterality)
	b.viewPosition = elementString(ds, tag.ViewPosition)
	b.presentationIntentType = elementString(ds, tag.PresentationIntentType)
	b.breastImplantPresent = elementString(ds, tag.BreastImplantPresent)
	b.manufacturer = elementString(ds, tag.Manufacturer)
	b.manufacturerModelName = elementString(ds, tag.ManufacturerModelName)
	b.modality = elementString(ds, tag.Modality)
	b.photometricInterpretation = elementString(ds, tag.PhotometricInterpretation)

	if n, ok := elementInt(ds, tag.NumberOfFrames); ok {
		b.numberOfFrames = n
		b.haveNumberOfFrames = true
	}
	if r, ok := elementInt(ds, tag.Rows); ok {
		u := uint32(r)
		b.rows = &u
	}
	if c, ok := elementInt(ds, tag.Columns); ok {
		u := uint32(c)
		b.columns = &u
	}

	b.viewModifiers = elementSequence(ds, tag.ViewModifierCodeSequence)

	return b
}

// elementStrings returns the multi-value string slot for t, or nil if the
// tag is absent or the wrong kind.
func elementStrings(ds dicom.Dataset, t tag.Tag) []string {
	elem, err := ds.FindElementByTag(t)
	if err != nil || elem == nil || elem.Value == nil {
		return nil
	}
	vals, ok := elem.Value.GetValue().([]string)
	if !ok {
		return nil
	}
	return vals
}

// elementString returns the first (and normally only) string value for t,
// trimmed, or "" if absent/malformed.
func elementString(ds dicom.Dataset, t tag.Tag) string {
	vals := elementStrings(ds, t)
	if len(vals) == 0 {
		return ""
	}
	return strings.TrimSpace(vals[0])
}

// elementInt parses a numeric-VR element (IS, US, …) by taking its string
// form and parsing it, rather than trusting a specific Go type from
// GetValue() — VR-to-Go-type mapping for numeric VRs varies enough across
// library versions that round-tripping through the string form is the
// robust path.
func elementInt(ds dicom.Dataset, t tag.Tag) (int, bool) {
	elem, err := ds.FindElementByTag(t)
	if err != nil || elem == nil || elem.Value == nil {
		return 0, false
	}
	raw := strings.Trim(elem.Value.String(), " []")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// elementSequence returns the parsed items of a sequence (SQ) element, or
// nil if t is absent, empty, or not a sequence.
func elementSequence(ds dicom.Dataset, t tag.Tag) []viewModifierItem {
	elem, err := ds.FindElementByTag(t)
	if err != nil || elem == nil || elem.Value == nil {
		return nil
	}
	seqItems, ok := elem.Value.GetValue().([]*dicom.SequenceItemValue)
	if !ok {
		return nil
	}

	var items []viewModifierItem
	for _, seqItem := range seqItems {
		if seqItem == nil {
			continue
		}
		elements, ok := seqItem.GetValue().([]*dicom.Element)
		if !ok {
			continue
		}
		item := viewModifierItem{}
		for _, e := range elements {
			if e == nil || e.Value == nil {
				continue
			}
			switch e.Tag {
			case tag.CodeValue:
				item.CodeValue = firstString(e)
			case tag.CodingSchemeDesignator:
				item.CodingSchemeDesignator = firstString(e)
			case tag.CodeMeaning:
				item.CodeMeaning = firstString(e)
			}
		}
		items = append(items, item)
	}
	return items
}

// firstString extracts the first string value of e, or "" if e is not a
// string-valued element.
func firstString(e *dicom.Element) string {
	vals, ok := e.Value.GetValue().([]string)
	if !ok || len(vals) == 0 {
		return ""
	}
	return strings.TrimSpace(vals[0])
}
