package dicomtag

import (
	"fmt"
)

// Tag 是一个定义了dicom文件中element 的类型的 <group, element> 元组
// 在流中按两个little-endian uint16读取
type Tag struct {
	Group   uint16
	Element uint16
}

// Compare 返回 -1/0/1 如果t<other | t==other | t>other，
// tag先由group排序，再由element排序
func (t Tag) Compare(other Tag) int {
	if t.Group < other.Group {
		return -1
	}

	if t.Group > other.Group {
		return 1
	}

	if t.Element < other.Element {
		return -1
	}

	if t.Element > other.Element {
		return 1
	}

	return 0
}

func IsPrivate(group uint16) bool {
	return group%2 == 1
}

// String 返回一个如"(0008, 1234)"格式的string
func (t Tag) String() string {
	return fmt.Sprintf("(%04x, %04x)", t.Group, t.Element)
}

// Well-known tags the decoder and the sinks key on.
var (
	FileMetaInformationGroupLength = Tag{0x0002, 0x0000}
	TransferSyntaxUID              = Tag{0x0002, 0x0010}
	ReferencedFileID               = Tag{0x0004, 0x1500}
	SpecificCharacterSet           = Tag{0x0008, 0x0005}
	ImageType                      = Tag{0x0008, 0x0008}
	SamplesPerPixel                = Tag{0x0028, 0x0002}
	PhotometricInterpretation      = Tag{0x0028, 0x0004}
	Rows                           = Tag{0x0028, 0x0010}
	Columns                        = Tag{0x0028, 0x0011}
	BitsStored                     = Tag{0x0028, 0x0101}
	PixelData                      = Tag{0x7fe0, 0x0010}

	// Item 标记SQ中的一个item，总是implicit VR (PS3.5 7.5)
	Item = Tag{0xfffe, 0xe000}
)

// Dictionary 是decoder使用的只读tag表
type Dictionary interface {
	// Name 返回人类可读的tag名称; tag不在表中时ok为false
	Name(tag Tag) (name string, ok bool)
	// IsImplicitVR 报告tag是否在流中省略VR
	IsImplicitVR(tag Tag) bool
	// ImplicitLengthWidth 返回implicit tag的length字段宽度(bytes)。
	// 只对IsImplicitVR为true的tag有定义
	ImplicitLengthWidth(tag Tag) (int, bool)
}

type implicitHint struct {
	lengthWidth int
}

// Table 是一个基于map的Dictionary
type Table struct {
	names    map[Tag]string
	implicit map[Tag]implicitHint
}

// NewTable 创建一个Table. implicit 中的每个tag映射到其length字段宽度
func NewTable(names map[Tag]string, implicit map[Tag]int) *Table {
	t := &Table{
		names:    make(map[Tag]string, len(names)),
		implicit: make(map[Tag]implicitHint, len(implicit)),
	}
	for tag, name := range names {
		t.names[tag] = name
	}
	for tag, width := range implicit {
		t.implicit[tag] = implicitHint{lengthWidth: width}
	}
	return t
}

func (t *Table) Name(tag Tag) (string, bool) {
	name, ok := t.names[tag]
	return name, ok
}

func (t *Table) IsImplicitVR(tag Tag) bool {
	_, ok := t.implicit[tag]
	return ok
}

func (t *Table) ImplicitLengthWidth(tag Tag) (int, bool) {
	h, ok := t.implicit[tag]
	return h.lengthWidth, ok
}

// Standard 是内置的tag表。只有Item是implicit VR, length字段4 bytes
var Standard = NewTable(standardNames, map[Tag]int{Item: 4})

// Find 在Standard中查找tag名称
// 如果tag不在表中 会返回错误
func Find(tag Tag) (string, error) {
	name, ok := Standard.Name(tag)
	if !ok {
		return "", fmt.Errorf("Could not find tag (0x%x, 0x%x) in dictionary", tag.Group, tag.Element)
	}
	return name, nil
}

// DebugString 返回一个人类可读的tag的诊断字符串，格式如 "(group, element)[name]"
func DebugString(tag Tag) string {
	name, err := Find(tag)
	if err != nil {
		if IsPrivate(tag.Group) {
			return fmt.Sprintf("(%04x,%04x)[private]", tag.Group, tag.Element)
		}
		return fmt.Sprintf("(%04x,%04x)[??]", tag.Group, tag.Element)
	}
	return fmt.Sprintf("(%04x,%04x)[%s]", tag.Group, tag.Element, name)
}
