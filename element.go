package dicom

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emperorkrosis/dicom/dicomio"
	"github.com/emperorkrosis/dicom/dicomlog"
	"github.com/emperorkrosis/dicom/dicomtag"
)

// Element is one decoded leaf value. It is only valid for the duration of
// the Sink.Value call; sinks that keep data must copy what they need.
type Element struct {
	// Tag is a pair of <group, element>.
	Tag dicomtag.Tag

	// VR is the two-letter value representation read from the stream, or
	// "UL" for implicit tags.
	VR string

	// Length is the declared value length. len(Data) == Length.
	Length uint32

	// Depth is 0 for top-level elements, +1 per enclosing sequence or item.
	Depth int

	// Data holds the raw value bytes, little-endian for numeric VRs.
	Data []byte

	codingSystem dicomio.CodingSystem
}

// Text decodes Data through the Specific Character Set in effect when the
// element was read. Padding is kept.
func (e *Element) Text() (string, error) {
	csType := dicomio.IdeographicCodingSystem
	if e.VR == "PN" {
		csType = dicomio.AlphabeticCodingSystem
	}
	return e.codingSystem.Decode(csType, e.Data)
}

// TrimmedText is Text with trailing space and NUL padding removed.
func (e *Element) TrimmedText() (string, error) {
	s, err := e.Text()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(s, " \000"), nil
}

// GetUInt16 returns the first value of a US element.
func (e *Element) GetUInt16() (uint16, error) {
	if len(e.Data) < 2 {
		return 0, fmt.Errorf("%s: need 2 bytes for uint16, have %d", dicomtag.DebugString(e.Tag), len(e.Data))
	}
	return binary.LittleEndian.Uint16(e.Data), nil
}

// GetUint16s returns every value of a US element.
func (e *Element) GetUint16s() ([]uint16, error) {
	if len(e.Data)%2 != 0 {
		return nil, fmt.Errorf("%s: odd length %d for uint16 list", dicomtag.DebugString(e.Tag), len(e.Data))
	}
	values := make([]uint16, 0, len(e.Data)/2)
	for i := 0; i < len(e.Data); i += 2 {
		values = append(values, binary.LittleEndian.Uint16(e.Data[i:]))
	}
	return values, nil
}

// GetUint32s returns every value of a UL element.
func (e *Element) GetUint32s() ([]uint32, error) {
	if len(e.Data)%4 != 0 {
		return nil, fmt.Errorf("%s: length %d is not a multiple of 4", dicomtag.DebugString(e.Tag), len(e.Data))
	}
	values := make([]uint32, 0, len(e.Data)/4)
	for i := 0; i < len(e.Data); i += 4 {
		values = append(values, binary.LittleEndian.Uint32(e.Data[i:]))
	}
	return values, nil
}

// GetInt16s returns every value of an SS element.
func (e *Element) GetInt16s() ([]int16, error) {
	values, err := e.GetUint16s()
	if err != nil {
		return nil, err
	}
	out := make([]int16, len(values))
	for i, v := range values {
		out[i] = int16(v)
	}
	return out, nil
}

func (e *Element) String() string {
	return fmt.Sprintf("%s %s %s vl=%d depth=%d", strings.Repeat(" ", e.Depth), dicomtag.DebugString(e.Tag), e.VR, e.Length, e.Depth)
}

// ParseOptions定义了decode的方式. 零值即为默认行为
type ParseOptions struct {
	// Dictionary 用来校验和命名tags. nil 代表 dicomtag.Standard
	Dictionary dicomtag.Dictionary

	// StrictTransferSyntax 在Transfer Syntax UID不是explicit VR little endian时
	// 返回ErrUnsupportedTransferSyntax. 否则只记录一个warning
	StrictTransferSyntax bool

	// StopAtTag 使decode在遇到第一个 >= StopAtTag 的顶层tag时正常结束
	StopAtTag *dicomtag.Tag
}

// Parser decodes explicit VR little endian DICOM streams. A Parser holds
// no per-stream state and may be shared between goroutines.
type Parser struct {
	opts ParseOptions
}

// NewParser creates a Parser.
func NewParser(opts ParseOptions) *Parser {
	if opts.Dictionary == nil {
		opts.Dictionary = dicomtag.Standard
	}
	return &Parser{opts: opts}
}

var defaultParser = NewParser(ParseOptions{})

// Decode reads a DICOM stream with the default options.
func Decode(in io.Reader, sink Sink) error {
	return defaultParser.Decode(in, sink)
}

// DecodeFile opens path and decodes it with the default options.
func DecodeFile(path string, sink Sink) error {
	return defaultParser.DecodeFile(path, sink)
}

// DecodeFile opens path and decodes it.
func (p *Parser) DecodeFile(path string, sink Sink) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}

	err = p.Decode(file, sink)
	if e := file.Close(); e != nil && err == nil {
		err = e
	}
	return err
}

// Decode reads the file header and then every element until the stream
// ends cleanly at a top-level element boundary, calling sink for each
// event. The first error aborts the decode.
func (p *Parser) Decode(in io.Reader, sink Sink) error {
	s := &session{
		d:    dicomio.NewDecoder(in, binary.LittleEndian),
		dict: p.opts.Dictionary,
		opts: p.opts,
		sink: sink,
	}
	if err := s.readHeader(); err != nil {
		return err
	}

	for {
		eof, err := s.d.AtEOF()
		if err != nil {
			return err
		}
		if eof {
			dicomlog.Vprintf(1, "dicom.Decode: end of stream at %d", s.d.BytesRead())
			return nil
		}
		if _, err := s.readElement(0); err != nil {
			if errors.Is(err, errStop) {
				return nil
			}
			return err
		}
	}
}

// errStop unwinds the top-level loop when StopAtTag is reached.
var errStop = errors.New("stop")

// session 是一次decode的状态
type session struct {
	d    *dicomio.Decoder
	dict dicomtag.Dictionary
	opts ParseOptions
	sink Sink
}

const (
	preambleLength = 128
	magic          = "DICM"

	tagBytes = 4
	vrBytes  = 2
)

// readHeader 检查128个0 byte的前言和"DICM"
func (s *session) readHeader() error {
	preamble, err := s.d.ReadBytes(preambleLength)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	for i, b := range preamble {
		if b != 0 {
			return fmt.Errorf("%w: preamble byte %d is 0x%02x, not zero", ErrMalformedHeader, i, b)
		}
	}
	m, err := s.d.ReadBytes(len(magic))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	if string(m) != magic {
		return fmt.Errorf("%w: keyword 'DICM' not found in the header (found %q)", ErrMalformedHeader, m)
	}
	return nil
}

func (s *session) errorf(base error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s (file offset %d)", base, fmt.Sprintf(format, args...), s.d.BytesRead())
}

func readTag(d *dicomio.Decoder) (dicomtag.Tag, error) {
	group, err := d.ReadUInt16()
	if err != nil {
		return dicomtag.Tag{}, err
	}
	element, err := d.ReadUInt16()
	if err != nil {
		return dicomtag.Tag{}, err
	}
	return dicomtag.Tag{Group: group, Element: element}, nil
}

func readLength(d *dicomio.Decoder, width int) (uint32, error) {
	switch width {
	case 2:
		v, err := d.ReadUInt16()
		return uint32(v), err
	case 4:
		return d.ReadUInt32()
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidLengthFieldWidth, width)
	}
}

// readElement 读取一个data element并分发给sink。
// 返回计入容器budget的byte数: 4 (tag) + 2 (explicit VR) + length字段 + 声明的length。
// OB/OW/SQ/UN的2个保留byte不计入
func (s *session) readElement(depth int) (int64, error) {
	start := s.d.BytesRead()

	tag, err := readTag(s.d)
	if err != nil {
		return 0, err
	}
	if depth == 0 && s.opts.StopAtTag != nil && tag.Compare(*s.opts.StopAtTag) >= 0 {
		return 0, errStop
	}
	if _, ok := s.dict.Name(tag); !ok {
		return 0, s.errorf(ErrUnknownTag, "%s", dicomtag.DebugString(tag))
	}

	var vr string
	var padding, width int
	cost := int64(tagBytes)
	if s.dict.IsImplicitVR(tag) {
		// Item总是implicit的, PS3.5 7.5
		vr = dicomtag.ImplicitItemVR
		w, ok := s.dict.ImplicitLengthWidth(tag)
		if !ok {
			return 0, s.errorf(ErrInvalidLengthFieldWidth, "no implicit length width for %s", dicomtag.DebugString(tag))
		}
		width = w
	} else {
		b, err := s.d.ReadBytes(vrBytes)
		if err != nil {
			return 0, err
		}
		vr = string(b)
		cost += vrBytes
		padding = dicomtag.PaddingBytes(vr)
		width = dicomtag.LengthFieldWidth(vr)
	}

	if padding > 0 {
		if err := s.d.Skip(padding); err != nil {
			return 0, err
		}
	}
	vl, err := readLength(s.d, width)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", dicomtag.DebugString(tag), err)
	}
	cost += int64(width) + int64(vl)

	dicomlog.Vprintf(1, "dicom.readElement: %s %s vl=%d depth=%d pos=%d", dicomtag.DebugString(tag), vr, vl, depth, start)

	switch {
	case vr == dicomtag.SequenceVR:
		if err := s.sink.SequenceStart(tag, depth); err != nil {
			return 0, err
		}
		if err := s.readContainer(tag, vl, depth); err != nil {
			return 0, err
		}
	case tag == dicomtag.Item:
		if err := s.sink.ItemStart(depth); err != nil {
			return 0, err
		}
		if err := s.readContainer(tag, vl, depth); err != nil {
			return 0, err
		}
	default:
		data, err := s.d.ReadBytes(int(vl))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", dicomtag.DebugString(tag), err)
		}
		elem := &Element{
			Tag:          tag,
			VR:           vr,
			Length:       vl,
			Depth:        depth,
			Data:         data,
			codingSystem: s.d.CodingSystem(),
		}
		if err := s.observe(elem); err != nil {
			return 0, err
		}
		if err := s.sink.Value(elem); err != nil {
			return 0, err
		}
	}

	return cost, nil
}

// readContainer 读取正好vl byte的子元素. 每个子元素计入的byte从budget中减去，
// budget归零时容器结束；子元素越过容器末尾是错误
func (s *session) readContainer(tag dicomtag.Tag, vl uint32, depth int) error {
	budget := int64(vl)
	for budget > 0 {
		n, err := s.readElement(depth + 1)
		if err != nil {
			return err
		}
		budget -= n
		dicomlog.Vprintf(2, "dicom.readContainer: %s depth=%d budget=%d", dicomtag.DebugString(tag), depth, budget)
		if budget < 0 {
			return s.errorf(ErrContainerOverrun, "%s declared %d bytes, children used %d", dicomtag.DebugString(tag), vl, int64(vl)-budget)
		}
	}
	return s.sink.ContainerEnd(depth)
}

// observe 处理影响后续解码的顶层元素
func (s *session) observe(elem *Element) error {
	if elem.Depth != 0 {
		return nil
	}
	switch elem.Tag {
	case dicomtag.SpecificCharacterSet:
		// Specific Character Set 不在metadata中，而是普通属性，
		// 所以它可能出现多次; 最后一个生效
		s.d.SetCodingSystem(dicomio.ParseSpecificCharacterSet(string(elem.Data)))
	case dicomtag.TransferSyntaxUID:
		if err := dicomio.CheckTransferSyntax(string(elem.Data)); err != nil {
			if s.opts.StrictTransferSyntax {
				return s.errorf(ErrUnsupportedTransferSyntax, "%v", err)
			}
			dicomlog.Warnf("dicom.Decode: %v; decoding as explicit VR little endian", err)
		}
	}
	return nil
}
