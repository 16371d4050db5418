package mammogram

import (
	"strings"
	"testing"

	"github.com/suyashkumar/dicom/pkg/tag"
)

func TestTagByName_Valid(t *testing.T) {
	tests := []struct {
		name string
		want tag.Tag
	}{
		{"ImageType", tag.ImageType},
		{"ImageLaterality", tag.ImageLaterality},
		{"Laterality", tag.Laterality},
		{"ViewPosition", tag.ViewPosition},
		{"PresentationIntentType", tag.PresentationIntentType},
		{"BreastImplantPresent", tag.BreastImplantPresent},
		{"NumberOfFrames", tag.NumberOfFrames},
		{"ViewModifierCodeSequence", tag.ViewModifierCodeSequence},
		{"Manufacturer", tag.Manufacturer},
		{"ManufacturerModelName", tag.ManufacturerModelName},
		{"Modality", tag.Modality},
		{"PhotometricInterpretation", tag.PhotometricInterpretation},
		{"Rows", tag.Rows},
		{"Columns", tag.Columns},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tagByName(tc.name)
			if err != nil {
				t.Fatalf("tagByName(%q) returned error: %v", tc.name, err)
			}
			if got != tc.want {
				t.Errorf("tagByName(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestTagByName_CaseInsensitive(t *testing.T) {
	for _, input := range []string{"imagetype", "IMAGETYPE", "ImAgEtYpE"} {
		if _, err := tagByName(input); err != nil {
			t.Errorf("tagByName(%q) returned error: %v", input, err)
		}
	}
}

func TestTagByName_Invalid(t *testing.T) {
	for _, name := range []string{"NotATag", "", "   ", "PatientName"} {
		if _, err := tagByName(name); err == nil {
			t.Errorf("tagByName(%q) should return an error", name)
		}
	}
}

func TestTagByName_Suggestion(t *testing.T) {
	tests := []struct {
		typo       string
		suggestion string
	}{
		{"imagetyp", "imagetype"},
		{"modalty", "modality"},
		{"colums", "columns"},
	}
	for _, tc := range tests {
		_, err := tagByName(tc.typo)
		if err == nil {
			t.Fatalf("tagByName(%q) should return an error", tc.typo)
		}
		if !strings.Contains(err.Error(), tc.suggestion) {
			t.Errorf("error for %q should suggest %q, got: %v", tc.typo, tc.suggestion, err)
		}
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"kitten", "sitting", 3},
		{"rows", "rows", 0},
	}
	for _, tc := range tests {
		if got := levenshteinDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
