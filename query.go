package dicom

import (
	"fmt"

	"github.com/gobwas/glob"
)

// RecordFilter decides which directory records DirectorySink keeps.
// The zero value (and a nil *RecordFilter) matches every record.
type RecordFilter struct {
	imageTypes []glob.Glob
	fileIDs    []glob.Glob
	minRows    int
	minColumns int
}

// DirectoryOptions configures a DirectorySink. Pattern lists use glob
// syntax; an empty list, "" or a pattern made only of '*' matches
// everything (P3.4 C.2.2.2.4).
type DirectoryOptions struct {
	// ImageTypes filters on the Image Type (0008,0008) value, e.g. "ORIGINAL*".
	ImageTypes []string
	// FileIDs filters on the Referenced File ID (0004,1500) value.
	FileIDs []string
	// MinRows and MinColumns drop records whose Rows/Columns are known
	// and smaller. Records without Rows/Columns always pass.
	MinRows    int
	MinColumns int
}

// NewRecordFilter compiles the patterns in opts.
func NewRecordFilter(opts DirectoryOptions) (*RecordFilter, error) {
	f := &RecordFilter{minRows: opts.MinRows, minColumns: opts.MinColumns}
	var err error
	if f.imageTypes, err = compilePatterns(opts.ImageTypes); err != nil {
		return nil, err
	}
	if f.fileIDs, err = compilePatterns(opts.FileIDs); err != nil {
		return nil, err
	}
	return f, nil
}

func compilePatterns(patterns []string) ([]glob.Glob, error) {
	var globs []glob.Glob
	for _, p := range patterns {
		if isUniversalGlob(p) {
			// 通用匹配, 整个条件无效
			return nil, nil
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %v", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// 检查匹配格式是否是空或一串 “*”
func isUniversalGlob(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '*' {
			return false
		}
	}
	return true
}

func matchAny(globs []glob.Glob, value string) bool {
	if len(globs) == 0 {
		return true
	}
	for _, g := range globs {
		if g.Match(value) {
			return true
		}
	}
	return false
}

// Match reports whether rec passes the filter.
func (f *RecordFilter) Match(rec DirectoryRecord) bool {
	if f == nil {
		return true
	}
	if rec.Rows > 0 && rec.Rows < f.minRows {
		return false
	}
	if rec.Columns > 0 && rec.Columns < f.minColumns {
		return false
	}
	return matchAny(f.imageTypes, rec.ImageType) && matchAny(f.fileIDs, rec.FileID)
}
