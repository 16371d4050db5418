package mammogram

// ImageType is the decomposed form of the DICOM ImageType multi-value:
// slot 0 is pixels, slot 1 is exam, slot 2 is the optional flavor, and
// slots 3+ are optional extras.
type ImageType struct {
	Pixels string
	Exam   string
	Flavor *string
	Extras []string
}

// NewImageType decomposes the raw ImageType value slots.
// Missing trailing slots leave Flavor nil and Extras nil; missing leading
// slots become empty strings rather than being skipped.
func NewImageType(slots []string) ImageType {
	it := ImageType{}
	if len(slots) > 0 {
		it.Pixels = slots[0]
	}
	if len(slots) > 1 {
		it.Exam = slots[1]
	}
	if len(slots) > 2 && slots[2] != "" {
		flavor := slots[2]
		it.Flavor = &flavor
	}
	if len(slots) > 3 {
		var extras []string
		for _, s := range slots[3:] {
			if s != "" {
				extras = append(extras, s)
			}
		}
		it.Extras = extras
	}
	return it
}

// Contains reports whether tok exactly matches pixels, exam, flavor, or any
// extra slot.
func (it ImageType) Contains(tok string) bool {
	if it.Pixels == tok || it.Exam == tok {
		return true
	}
	if it.Flavor != nil && *it.Flavor == tok {
		return true
	}
	for _, extra := range it.Extras {
		if extra == tok {
			return true
		}
	}
	return false
}

// IsValid holds iff both Pixels and Exam are non-empty.
func (it ImageType) IsValid() bool {
	return it.Pixels != "" && it.Exam != ""
}

// FlavorOrEmpty returns the flavor slot, or "" when absent. Convenience for
// the classifier's decision table, which compares flavor against literals.
func (it ImageType) FlavorOrEmpty() string {
	if it.Flavor == nil {
		return ""
	}
	return *it.Flavor
}

// Slots reassembles the decomposed value back into its original slot order,
// dropping trailing unset slots. Used by to_dict-style serialization.
func (it ImageType) Slots() []string {
	slots := []string{it.Pixels, it.Exam}
	if it.Flavor != nil {
		slots = append(slots, *it.Flavor)
	} else if len(it.Extras) > 0 {
		slots = append(slots, "")
	}
	slots = append(slots, it.Extras...)
	return slots
}
