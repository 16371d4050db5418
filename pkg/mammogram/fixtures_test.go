package mammogram

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// mustNewElement creates a DICOM element, failing the test on error. Adapted
// from the teacher's internal/dicom/modalities helper of the same name,
// repurposed here to build in-memory test fixtures instead of generator
// output.
func mustNewElement(t *testing.T, tg tag.Tag, value interface{}) *dicom.Element {
	t.Helper()
	elem, err := dicom.NewElement(tg, value)
	if err != nil {
		t.Fatalf("failed to create element %v: %v", tg, err)
	}
	return elem
}

// newTestDataset assembles a dicom.Dataset out of the given elements.
func newTestDataset(elements ...*dicom.Element) dicom.Dataset {
	return dicom.Dataset{Elements: elements}
}

// viewModifierElement builds a ViewModifierCodeSequence item element list
// for the given code triple, suitable for inclusion in a sequence's item
// slice (spec.md §4.4).
func viewModifierElement(t *testing.T, codeValue, scheme, meaning string) []*dicom.Element {
	t.Helper()
	return []*dicom.Element{
		mustNewElement(t, tag.CodeValue, []string{codeValue}),
		mustNewElement(t, tag.CodingSchemeDesignator, []string{scheme}),
		mustNewElement(t, tag.CodeMeaning, []string{meaning}),
	}
}

// ffdmDataset builds a minimal, valid FFDM fixture: ORIGINAL/PRIMARY image
// type, a given laterality/view, one frame, no modifiers.
func ffdmDataset(t *testing.T, laterality, view string) dicom.Dataset {
	t.Helper()
	return newTestDataset(
		mustNewElement(t, tag.ImageType, []string{"ORIGINAL", "PRIMARY", ""}),
		mustNewElement(t, tag.ImageLaterality, []string{laterality}),
		mustNewElement(t, tag.ViewPosition, []string{view}),
		mustNewElement(t, tag.Modality, []string{"MG"}),
		mustNewElement(t, tag.NumberOfFrames, []string{"1"}),
	)
}

// tomoDataset builds a minimal TOMO fixture: VOLUME flavor, a given frame
// count (must be >= 2 for the classifier to agree it is TOMO on frame count
// alone, but VOLUME already guarantees it regardless).
func tomoDataset(t *testing.T, laterality, view string, frames int) dicom.Dataset {
	t.Helper()
	return newTestDataset(
		mustNewElement(t, tag.ImageType, []string{"ORIGINAL", "PRIMARY", "VOLUME"}),
		mustNewElement(t, tag.ImageLaterality, []string{laterality}),
		mustNewElement(t, tag.ViewPosition, []string{view}),
		mustNewElement(t, tag.Modality, []string{"MG"}),
		mustNewElement(t, tag.NumberOfFrames, []string{fmt.Sprintf("%d", frames)}),
	)
}

// synthDataset builds a minimal SYNTH fixture: DERIVED/SECONDARY with a
// GENERATED_2D extra slot, FOR PROCESSING presentation intent.
func synthDataset(t *testing.T, laterality, view string) dicom.Dataset {
	t.Helper()
	return newTestDataset(
		mustNewElement(t, tag.ImageType, []string{"DERIVED", "SECONDARY", "", "GENERATED_2D"}),
		mustNewElement(t, tag.ImageLaterality, []string{laterality}),
		mustNewElement(t, tag.ViewPosition, []string{view}),
		mustNewElement(t, tag.Modality, []string{"MG"}),
		mustNewElement(t, tag.PresentationIntentType, []string{"FOR PROCESSING"}),
	)
}

// fileMetaElements builds the minimal File Meta Information block a
// writable dataset needs, the same set the teacher's dicomdir.go writes
// ahead of its directory record sequence.
func fileMetaElements(t *testing.T) []*dicom.Element {
	t.Helper()
	return []*dicom.Element{
		mustNewElement(t, tag.TransferSyntaxUID, []string{"1.2.840.10008.1.2.1"}),
		mustNewElement(t, tag.MediaStorageSOPClassUID, []string{"1.2.840.10008.5.1.4.1.1.1.2"}),
		mustNewElement(t, tag.MediaStorageSOPInstanceUID, []string{"1.2.826.0.1.3680043.8.498.1"}),
	}
}

// writableFFDMDataset is ffdmDataset plus the File Meta Information a real
// DICOM writer/parser round trip requires.
func writableFFDMDataset(t *testing.T, laterality, view string) dicom.Dataset {
	t.Helper()
	ds := ffdmDataset(t, laterality, view)
	ds.Elements = append(fileMetaElements(t), ds.Elements...)
	return ds
}

// writeDICOMBytes serializes ds with dicom.Write, the same function the
// teacher's internal/dicom/generator.go writeDatasetToFile helper wraps.
func writeDICOMBytes(t *testing.T, ds dicom.Dataset) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := dicom.Write(&buf, ds); err != nil {
		t.Fatalf("dicom.Write failed: %v", err)
	}
	return buf.Bytes()
}

// writeDICOMFile serializes ds to a new file under t.TempDir() and returns
// its path.
func writeDICOMFile(t *testing.T, ds dicom.Dataset) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instance.dcm")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp DICOM file: %v", err)
	}
	defer func() { _ = f.Close() }()
	if err := dicom.Write(f, ds); err != nil {
		t.Fatalf("dicom.Write failed: %v", err)
	}
	return path
}
