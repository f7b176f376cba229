package dicom

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emperorkrosis/dicom/dicomtag"
)

const (
	indentUnit    = "  "
	itemSeparator = "-----------------------"
)

// DumpSink prints every event as an indented, human-readable line. It
// knows a fixed set of VRs and fails with ErrUnhandledValueRepresentation
// on anything else.
type DumpSink struct {
	out  io.Writer
	dict dicomtag.Dictionary
}

// NewDumpSink creates a DumpSink writing to out. A nil dict means
// dicomtag.Standard.
func NewDumpSink(out io.Writer, dict dicomtag.Dictionary) *DumpSink {
	if dict == nil {
		dict = dicomtag.Standard
	}
	return &DumpSink{out: out, dict: dict}
}

func (s *DumpSink) println(depth int, text string) error {
	_, err := fmt.Fprintln(s.out, strings.Repeat(indentUnit, depth)+text)
	return err
}

func (s *DumpSink) name(tag dicomtag.Tag) string {
	if name, ok := s.dict.Name(tag); ok {
		return name
	}
	return dicomtag.DebugString(tag)
}

func (s *DumpSink) SequenceStart(tag dicomtag.Tag, depth int) error {
	return s.println(depth, s.name(tag))
}

func (s *DumpSink) ItemStart(depth int) error {
	return s.println(depth, itemSeparator)
}

func (s *DumpSink) ContainerEnd(int) error { return nil }

func (s *DumpSink) Value(elem *Element) error {
	text, err := formatValue(elem)
	if err != nil {
		return err
	}
	if err := s.println(elem.Depth, s.name(elem.Tag)); err != nil {
		return err
	}
	return s.println(elem.Depth+1, text)
}

// slice is data[i:j] clamped to the bounds of data.
func slice(data string, i, j int) string {
	if i > len(data) {
		i = len(data)
	}
	if j > len(data) {
		j = len(data)
	}
	return data[i:j]
}

func joinValues(n int, format func(i int) string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = format(i)
	}
	return strings.Join(parts, "\\")
}

func formatValue(elem *Element) (string, error) {
	if len(elem.Data) == 0 {
		return "Empty", nil
	}
	switch elem.VR {
	case "US":
		values, err := elem.GetUint16s()
		if err != nil {
			return "", err
		}
		return joinValues(len(values), func(i int) string { return strconv.Itoa(int(values[i])) }), nil
	case "UL":
		values, err := elem.GetUint32s()
		if err != nil {
			return "", err
		}
		return joinValues(len(values), func(i int) string { return strconv.FormatUint(uint64(values[i]), 10) }), nil
	case "SS":
		values, err := elem.GetInt16s()
		if err != nil {
			return "", err
		}
		return joinValues(len(values), func(i int) string { return strconv.Itoa(int(values[i])) }), nil
	case "OB", "OW", "UN", "FD":
		return fmt.Sprintf("(data size: %d )", elem.Length), nil
	case "DA":
		d := string(elem.Data)
		return slice(d, 0, 4) + "/" + slice(d, 4, 6) + "/" + slice(d, 6, len(d)), nil
	case "TM":
		t := string(elem.Data)
		return slice(t, 0, 2) + ":" + slice(t, 2, 4) + ":" + slice(t, 4, len(t)), nil
	case "UI", "SH", "AE", "CS", "PN", "LO", "IS", "DS", "ST", "AS", "LT":
		return elem.Text()
	default:
		return "", fmt.Errorf("%w: %q for %s", ErrUnhandledValueRepresentation, elem.VR, dicomtag.DebugString(elem.Tag))
	}
}
