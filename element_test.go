package dicom_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/emperorkrosis/dicom"
	"github.com/emperorkrosis/dicom/dicomtag"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, data []byte) (*recorder, error) {
	t.Helper()
	r := &recorder{}
	err := dicom.Decode(bytes.NewReader(data), r)
	return r, err
}

func TestDecodeTopLevelValues(t *testing.T) {
	data := newFile().
		str(tagPatientName, "PN", "DOE^JOHN").
		us(dicomtag.Rows, 512).
		leaf(tagFileMetaVersion, "OB", []byte{0, 1}).
		bytes()

	r, err := decode(t, data)
	require.NoError(t, err)
	require.Equal(t, []string{
		"value (0010, 0010) PN 0",
		"value (0028, 0010) US 0",
		"value (0002, 0001) OB 0",
	}, r.events)
	require.Equal(t, [][]byte{[]byte("DOE^JOHN"), {0x00, 0x02}, {0, 1}}, r.values)
}

func TestDecodeNestedContainers(t *testing.T) {
	records := newBody().
		item(newBody().us(dicomtag.Rows, 4).str(dicomtag.ReferencedFileID, "CS", "A\\B ")).
		item(newBody().leaf(tagFileMetaVersion, "OB", []byte{1, 2}))
	data := newFile().
		sequence(tagDirectoryRecords, records).
		us(dicomtag.Columns, 8).
		bytes()

	r, err := decode(t, data)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"seq (0004, 1220) 0",
		"item 1",
		"value (0028, 0010) US 2",
		"value (0004, 1500) CS 2",
		"end 1",
		"item 1",
		"value (0002, 0001) OB 2",
		"end 1",
		"end 0",
		"value (0028, 0011) US 0",
	}, "\n"), r.String())
}

func TestContainerBudgetIsExact(t *testing.T) {
	// A US element costs 4 (tag) + 2 (VR) + 2 (length) + 2 (value) bytes.
	data := newFile().
		header(tagDirectoryRecords, "SQ", 4+2+2+2).
		us(dicomtag.Rows, 7).
		us(dicomtag.Columns, 9).
		bytes()

	r, err := decode(t, data)
	require.NoError(t, err)
	require.Equal(t, []string{
		"seq (0004, 1220) 0",
		"value (0028, 0010) US 1",
		"end 0",
		"value (0028, 0011) US 0",
	}, r.events)
}

func TestContainerBudgetSkipsReservedBytes(t *testing.T) {
	// OB: 4 (tag) + 2 (VR) + 4 (length) + 2 (value). The 2 reserved bytes
	// after the VR are read but not charged.
	data := newFile().
		header(dicomtag.Item, "", 4+2+4+2).
		leaf(tagFileMetaVersion, "OB", []byte{0, 1}).
		us(dicomtag.Rows, 1).
		bytes()

	r, err := decode(t, data)
	require.NoError(t, err)
	require.Equal(t, []string{
		"item 0",
		"value (0002, 0001) OB 1",
		"end 0",
		"value (0028, 0010) US 0",
	}, r.events)

	// Charging the reserved bytes as well overshoots the next element.
	data = newFile().
		header(dicomtag.Item, "", 4+2+2+4+2).
		leaf(tagFileMetaVersion, "OB", []byte{0, 1}).
		us(dicomtag.Rows, 1).
		bytes()
	_, err = decode(t, data)
	require.True(t, errors.Is(err, dicom.ErrContainerOverrun), "%v", err)
}

func TestNestedContainerBudget(t *testing.T) {
	// Sequence > item > OB: the item charges 8 + 12 against the sequence.
	data := newFile().
		header(tagDirectoryRecords, "SQ", 8+12).
		header(dicomtag.Item, "", 12).
		leaf(tagFileMetaVersion, "OB", []byte{0, 1}).
		us(dicomtag.Rows, 1).
		bytes()

	r, err := decode(t, data)
	require.NoError(t, err)
	require.Equal(t, []string{
		"seq (0004, 1220) 0",
		"item 1",
		"value (0002, 0001) OB 2",
		"end 1",
		"end 0",
		"value (0028, 0010) US 0",
	}, r.events)
}

func TestEmptyContainer(t *testing.T) {
	data := newFile().
		header(tagDirectoryRecords, "SQ", 0).
		us(dicomtag.Rows, 1).
		bytes()

	r, err := decode(t, data)
	require.NoError(t, err)
	require.Equal(t, []string{
		"seq (0004, 1220) 0",
		"end 0",
		"value (0028, 0010) US 0",
	}, r.events)
}

func TestContainerOverrun(t *testing.T) {
	data := newFile().
		header(tagDirectoryRecords, "SQ", 6).
		us(dicomtag.Rows, 7).
		bytes()

	r, err := decode(t, data)
	require.True(t, errors.Is(err, dicom.ErrContainerOverrun), "%v", err)
	require.NotContains(t, r.events, "end 0")
}

func TestCleanEndOfStream(t *testing.T) {
	r, err := decode(t, newFile().bytes())
	require.NoError(t, err)
	require.Empty(t, r.events)
}

func TestUnexpectedEndOfStream(t *testing.T) {
	for name, data := range map[string][]byte{
		"value":     newFile().header(tagPatientName, "PN", 100).raw([]byte("abcd")).bytes(),
		"container": newFile().header(tagDirectoryRecords, "SQ", 20).us(dicomtag.Rows, 1).bytes(),
		"tag":       newFile().raw([]byte{0x10, 0x00}).bytes(),
		"vr":        newFile().raw([]byte{0x10, 0x00, 0x10, 0x00, 'P'}).bytes(),
		"length":    newFile().raw([]byte{0x10, 0x00, 0x10, 0x00, 'P', 'N', 0x01}).bytes(),
		"huge":      newFile().header(tagFileMetaVersion, "OB", 0xfffffff0).raw([]byte{1, 2}).bytes(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := decode(t, data)
			require.True(t, errors.Is(err, dicom.ErrUnexpectedEndOfStream), "%v", err)
		})
	}
}

func TestMalformedHeader(t *testing.T) {
	dirty := make([]byte, 128)
	dirty[5] = 1

	for name, data := range map[string][]byte{
		"preamble": newBody().raw(dirty).raw([]byte("DICM")).bytes(),
		"magic":    newBody().raw(make([]byte, 128)).raw([]byte("DICX")).bytes(),
		"short":    make([]byte, 10),
		"empty":    nil,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := decode(t, data)
			require.True(t, errors.Is(err, dicom.ErrMalformedHeader), "%v", err)
		})
	}
}

func TestUnknownTag(t *testing.T) {
	data := newFile().
		us(dicomtag.Rows, 1).
		str(dicomtag.Tag{Group: 0x1234, Element: 0x5678}, "LO", "xx").
		us(dicomtag.Columns, 1).
		bytes()

	r, err := decode(t, data)
	require.True(t, errors.Is(err, dicom.ErrUnknownTag), "%v", err)
	require.Contains(t, err.Error(), "(1234,5678)")
	require.Equal(t, []string{"value (0028, 0010) US 0"}, r.events)
}

func TestInvalidLengthFieldWidth(t *testing.T) {
	weird := dicomtag.Tag{Group: 0x0009, Element: 0x0001}
	dict := dicomtag.NewTable(
		map[dicomtag.Tag]string{weird: "Weird"},
		map[dicomtag.Tag]int{weird: 3})
	data := newFile().raw([]byte{0x09, 0x00, 0x01, 0x00, 0, 0, 0}).bytes()

	err := dicom.NewParser(dicom.ParseOptions{Dictionary: dict}).Decode(bytes.NewReader(data), dicom.NopSink{})
	require.True(t, errors.Is(err, dicom.ErrInvalidLengthFieldWidth), "%v", err)
}

func TestStopAtTag(t *testing.T) {
	data := newFile().
		us(dicomtag.Rows, 1).
		us(dicomtag.Columns, 2).
		leaf(dicomtag.PixelData, "OW", []byte{1, 2}).
		bytes()

	r := &recorder{}
	stop := dicomtag.Columns
	err := dicom.NewParser(dicom.ParseOptions{StopAtTag: &stop}).Decode(bytes.NewReader(data), r)
	require.NoError(t, err)
	require.Equal(t, []string{"value (0028, 0010) US 0"}, r.events)
}

func TestStrictTransferSyntax(t *testing.T) {
	implicit := newFile().str(dicomtag.TransferSyntaxUID, "UI", "1.2.840.10008.1.2\x00").bytes()
	explicit := newFile().str(dicomtag.TransferSyntaxUID, "UI", "1.2.840.10008.1.2.1\x00").bytes()

	_, err := decode(t, implicit)
	require.NoError(t, err)

	strict := dicom.NewParser(dicom.ParseOptions{StrictTransferSyntax: true})
	err = strict.Decode(bytes.NewReader(implicit), dicom.NopSink{})
	require.True(t, errors.Is(err, dicom.ErrUnsupportedTransferSyntax), "%v", err)
	require.NoError(t, strict.Decode(bytes.NewReader(explicit), dicom.NopSink{}))
}

type textSink struct {
	dicom.NopSink
	texts map[dicomtag.Tag]string
}

func (s *textSink) Value(elem *dicom.Element) error {
	text, err := elem.TrimmedText()
	if err != nil {
		return err
	}
	s.texts[elem.Tag] = text
	return nil
}

func TestSpecificCharacterSet(t *testing.T) {
	data := newFile().
		leaf(tagPatientID, "LO", []byte{'J', 0xfc, 'r', 'g'}).
		str(dicomtag.SpecificCharacterSet, "CS", "ISO_IR 100").
		leaf(tagPatientName, "PN", []byte{'J', 0xfc, 'r', 'g'}).
		bytes()

	s := &textSink{texts: map[dicomtag.Tag]string{}}
	require.NoError(t, dicom.Decode(bytes.NewReader(data), s))
	require.Equal(t, "J\xfcrg", s.texts[tagPatientID])
	require.Equal(t, "Jürg", s.texts[tagPatientName])
}

type failingSink struct {
	dicom.NopSink
}

var errSinkFailed = errors.New("sink failed")

func (failingSink) ItemStart(int) error { return errSinkFailed }

func TestSinkErrorAborts(t *testing.T) {
	data := newFile().
		sequence(tagDirectoryRecords, newBody().item(newBody().us(dicomtag.Rows, 1))).
		bytes()

	err := dicom.Decode(bytes.NewReader(data), failingSink{})
	require.True(t, errors.Is(err, errSinkFailed), "%v", err)
}

func TestMultiSink(t *testing.T) {
	data := newFile().
		sequence(tagDirectoryRecords, newBody().item(newBody().us(dicomtag.Rows, 1))).
		bytes()

	a, b := &recorder{}, &recorder{}
	require.NoError(t, dicom.Decode(bytes.NewReader(data), dicom.MultiSink{a, b}))
	require.Len(t, a.events, 5)
	require.Equal(t, a.events, b.events)
}

func TestElementAccessors(t *testing.T) {
	elem := &dicom.Element{Tag: dicomtag.Rows, VR: "US", Data: []byte{1, 0, 0xff, 0xff}}
	v, err := elem.GetUInt16()
	require.NoError(t, err)
	require.Equal(t, uint16(1), v)
	vs, err := elem.GetInt16s()
	require.NoError(t, err)
	require.Equal(t, []int16{1, -1}, vs)
	u32, err := elem.GetUint32s()
	require.NoError(t, err)
	require.Equal(t, []uint32{0xffff0001}, u32)

	_, err = (&dicom.Element{Tag: dicomtag.Rows, Data: []byte{1}}).GetUInt16()
	require.Error(t, err)
}
