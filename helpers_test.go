package dicom_test

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/emperorkrosis/dicom"
	"github.com/emperorkrosis/dicom/dicomio"
	"github.com/emperorkrosis/dicom/dicomtag"
)

// stream builds explicit VR little endian element bytes for tests.
// cost is what the elements written so far charge against an enclosing
// container: the reserved bytes of OB/OW/SQ/UN are written but not counted.
type stream struct {
	e    *dicomio.Encoder
	cost uint32
}

// newFile starts a stream with the 128-byte preamble and "DICM".
func newFile() *stream {
	s := newBody()
	s.e.WriteZeros(128)
	s.e.WriteString("DICM")
	return s
}

// newBody starts a bare element list, e.g. the contents of a sequence.
func newBody() *stream {
	return &stream{e: dicomio.NewBytesEncoder(binary.LittleEndian)}
}

func (s *stream) header(tag dicomtag.Tag, vr string, vl uint32) *stream {
	s.e.WriteUInt16(tag.Group)
	s.e.WriteUInt16(tag.Element)
	if tag == dicomtag.Item {
		s.e.WriteUInt32(vl)
		s.cost += 4 + 4
		return s
	}
	s.e.WriteString(vr)
	s.e.WriteZeros(dicomtag.PaddingBytes(vr))
	width := dicomtag.LengthFieldWidth(vr)
	if width == 4 {
		s.e.WriteUInt32(vl)
	} else {
		s.e.WriteUInt16(uint16(vl))
	}
	s.cost += 4 + 2 + uint32(width)
	return s
}

func (s *stream) raw(data []byte) *stream {
	s.e.WriteBytes(data)
	s.cost += uint32(len(data))
	return s
}

// container writes a sequence or item declaring body's cost as its length.
func (s *stream) container(tag dicomtag.Tag, vr string, body *stream) *stream {
	s.header(tag, vr, body.cost)
	s.e.WriteBytes(body.bytes())
	s.cost += body.cost
	return s
}

func (s *stream) leaf(tag dicomtag.Tag, vr string, data []byte) *stream {
	return s.header(tag, vr, uint32(len(data))).raw(data)
}

func (s *stream) str(tag dicomtag.Tag, vr, value string) *stream {
	return s.leaf(tag, vr, []byte(value))
}

func (s *stream) us(tag dicomtag.Tag, values ...uint16) *stream {
	data := make([]byte, 2*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint16(data[2*i:], v)
	}
	return s.leaf(tag, "US", data)
}

func (s *stream) sequence(tag dicomtag.Tag, body *stream) *stream {
	return s.container(tag, "SQ", body)
}

func (s *stream) item(body *stream) *stream {
	return s.container(dicomtag.Item, "", body)
}

func (s *stream) bytes() []byte {
	return s.e.Bytes()
}

// recorder logs every sink event as one line.
type recorder struct {
	events []string
	values [][]byte
}

func (r *recorder) SequenceStart(tag dicomtag.Tag, depth int) error {
	r.events = append(r.events, fmt.Sprintf("seq %s %d", tag, depth))
	return nil
}

func (r *recorder) ItemStart(depth int) error {
	r.events = append(r.events, fmt.Sprintf("item %d", depth))
	return nil
}

func (r *recorder) ContainerEnd(depth int) error {
	r.events = append(r.events, fmt.Sprintf("end %d", depth))
	return nil
}

func (r *recorder) Value(elem *dicom.Element) error {
	r.events = append(r.events, fmt.Sprintf("value %s %s %d", elem.Tag, elem.VR, elem.Depth))
	r.values = append(r.values, append([]byte(nil), elem.Data...))
	return nil
}

func (r *recorder) String() string {
	return strings.Join(r.events, "\n")
}

var (
	tagPatientName      = dicomtag.Tag{Group: 0x0010, Element: 0x0010}
	tagPatientID        = dicomtag.Tag{Group: 0x0010, Element: 0x0020}
	tagStudyDate        = dicomtag.Tag{Group: 0x0008, Element: 0x0020}
	tagStudyTime        = dicomtag.Tag{Group: 0x0008, Element: 0x0030}
	tagDirectoryRecords = dicomtag.Tag{Group: 0x0004, Element: 0x1220}
	tagFileMetaVersion  = dicomtag.Tag{Group: 0x0002, Element: 0x0001}
)
