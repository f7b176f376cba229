package dicom

import (
	"github.com/emperorkrosis/dicom/dicomtag"
)

// DirectoryRecord is what DirectorySink gathered for one sequence or item.
type DirectoryRecord struct {
	FileID    string
	ImageType string
	Rows      int
	Columns   int
}

// DirectorySink collects the Referenced File IDs of a DICOMDIR. When a
// sequence or item closes after both a Referenced File ID and an Image
// Type were seen, the record is kept; the accumulator is then reset
// whether or not it was kept. Tags are tracked at every depth.
type DirectorySink struct {
	NopSink

	filter *RecordFilter

	current      DirectoryRecord
	hasFileID    bool
	hasImageType bool

	records []DirectoryRecord
}

// NewDirectorySink creates a DirectorySink keeping every complete record.
func NewDirectorySink() *DirectorySink {
	return &DirectorySink{}
}

// NewFilteredDirectorySink creates a DirectorySink that only keeps
// records matching opts.
func NewFilteredDirectorySink(opts DirectoryOptions) (*DirectorySink, error) {
	f, err := NewRecordFilter(opts)
	if err != nil {
		return nil, err
	}
	return &DirectorySink{filter: f}, nil
}

// Records returns the kept records in stream order.
func (s *DirectorySink) Records() []DirectoryRecord {
	return s.records
}

// Files returns the Referenced File IDs of the kept records in stream order.
func (s *DirectorySink) Files() []string {
	files := make([]string, len(s.records))
	for i, r := range s.records {
		files[i] = r.FileID
	}
	return files
}

func (s *DirectorySink) Value(elem *Element) error {
	var err error
	switch elem.Tag {
	case dicomtag.ReferencedFileID:
		s.current.FileID, err = elem.TrimmedText()
		s.hasFileID = err == nil
	case dicomtag.ImageType:
		s.current.ImageType, err = elem.TrimmedText()
		s.hasImageType = err == nil
	case dicomtag.Rows:
		s.current.Rows, err = uint16Value(elem)
	case dicomtag.Columns:
		s.current.Columns, err = uint16Value(elem)
	}
	return err
}

func (s *DirectorySink) ContainerEnd(int) error {
	if s.hasFileID && s.hasImageType && s.filter.Match(s.current) {
		s.records = append(s.records, s.current)
	}
	s.current = DirectoryRecord{}
	s.hasFileID = false
	s.hasImageType = false
	return nil
}
