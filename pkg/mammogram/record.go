package mammogram

import (
	"bytes"
	"os"

	"github.com/suyashkumar/dicom"
)

// MammogramRecord pairs a classified MammogramMetadata with source identity
// and cached physical dimensions.
type MammogramRecord struct {
	FilePath string
	Metadata MammogramMetadata
	Rows     *uint32
	Columns  *uint32
}

// FromFile opens the DICOM instance at path (header only, PixelData never
// read), classifies it, and attaches path verbatim as the record's
// identity.
func FromFile(path string) (MammogramRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return MammogramRecord{}, NewDicomError("failed to open DICOM file", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return MammogramRecord{}, NewDicomError("failed to stat DICOM file", err)
	}

	ds, err := dicom.Parse(f, info.Size(), nil, dicom.SkipPixelData())
	if err != nil {
		return MammogramRecord{}, NewDicomError("failed to parse DICOM file", err)
	}

	return recordFromDataset(ds, path), nil
}

// FromBytes parses buf as an in-memory DICOM instance. id, if supplied,
// becomes the record's FilePath; otherwise FilePath is "". The two
// constructors must produce byte-identical metadata for the same
// content.
func FromBytes(buf []byte, id ...string) (MammogramRecord, error) {
	if len(buf) == 0 {
		return MammogramRecord{}, NewDicomError("empty DICOM buffer", nil)
	}

	ds, err := dicom.Parse(bytes.NewReader(buf), int64(len(buf)), nil, dicom.SkipPixelData())
	if err != nil {
		return MammogramRecord{}, NewDicomError("failed to parse DICOM buffer", err)
	}

	fileID := ""
	if len(id) > 0 {
		fileID = id[0]
	}
	return recordFromDataset(ds, fileID), nil
}

func recordFromDataset(ds dicom.Dataset, filePath string) MammogramRecord {
	b := newTagBundle(ds)
	return MammogramRecord{
		FilePath: filePath,
		Metadata: classify(b, false),
		Rows:     b.rows,
		Columns:  b.columns,
	}
}

// ImageArea returns Rows*Columns when both are present, else (0, false).
func (r MammogramRecord) ImageArea() (uint64, bool) {
	if r.Rows == nil || r.Columns == nil {
		return 0, false
	}
	return uint64(*r.Rows) * uint64(*r.Columns), true
}

// IsSpotOrMag holds if either spot compression or magnification was
// flagged.
func (r MammogramRecord) IsSpotOrMag() bool {
	return r.Metadata.IsSpotOrMagnified()
}

// IsImplantDisplaced passes through to the metadata.
func (r MammogramRecord) IsImplantDisplaced() bool { return r.Metadata.IsImplantDisplaced }

// IsSpotCompression passes through to the metadata.
func (r MammogramRecord) IsSpotCompression() bool { return r.Metadata.IsSpotCompression }

// IsMagnified passes through to the metadata.
func (r MammogramRecord) IsMagnified() bool { return r.Metadata.IsMagnified }

// ToMap renders the record as a plain key->value mapping, nesting the
// metadata's own ToMap under "metadata".
func (r MammogramRecord) ToMap() map[string]any {
	m := map[string]any{
		"file_path": r.FilePath,
		"metadata":  r.Metadata.ToMap(),
		"rows":      nil,
		"columns":   nil,
	}
	if r.Rows != nil {
		m["rows"] = *r.Rows
	}
	if r.Columns != nil {
		m["columns"] = *r.Columns
	}
	return m
}

// MammogramExtractor is a first-class named type so callers can depend on
// an interface-like value rather than free functions. It holds no state —
// the methods below work identically as a zero-value method call or as
// free functions.
type MammogramExtractor struct{}

// ExtractFromFile classifies the DICOM instance at path without an SFM
// hint.
func (MammogramExtractor) ExtractFromFile(path string) (MammogramMetadata, error) {
	rec, err := FromFile(path)
	if err != nil {
		return MammogramMetadata{}, err
	}
	return rec.Metadata, nil
}

// ExtractFromFileWithOptions classifies the DICOM instance at path, passing
// isSFM through as the classifier's caller hint.
func (MammogramExtractor) ExtractFromFileWithOptions(path string, isSFM bool) (MammogramMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return MammogramMetadata{}, NewDicomError("failed to open DICOM file", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return MammogramMetadata{}, NewDicomError("failed to stat DICOM file", err)
	}

	ds, err := dicom.Parse(f, info.Size(), nil, dicom.SkipPixelData())
	if err != nil {
		return MammogramMetadata{}, NewDicomError("failed to parse DICOM file", err)
	}

	return classify(newTagBundle(ds), isSFM), nil
}
