package dicomio

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// CodingSystem defines how a []byte is translated into a utf8 string.
type CodingSystem struct {
	// VR="PN" is the only place where we potentially use all three
	// decoders.  For all other VR types, only Ideographic decoder is used.
	// See P3.5, 6.2.
	Alphabetic  *encoding.Decoder
	Ideographic *encoding.Decoder
	Phonetic    *encoding.Decoder
}

type CodingSystemType int

const (
	// See CodingSystem for explanations of these coding-system types.
	AlphabeticCodingSystem CodingSystemType = iota
	IdeographicCodingSystem
	PhoneticCodingSystem
)

// Decode 将data按csType对应的decoder转换为utf-8
func (cs CodingSystem) Decode(csType CodingSystemType, data []byte) (string, error) {
	var sd *encoding.Decoder
	switch csType {
	case AlphabeticCodingSystem:
		sd = cs.Alphabetic
	case IdeographicCodingSystem:
		sd = cs.Ideographic
	case PhoneticCodingSystem:
		sd = cs.Phonetic
	default:
		return "", fmt.Errorf("unknown coding system type %d", csType)
	}

	if len(data) == 0 {
		return "", nil
	}
	if sd == nil {
		// 假设UTF-8是ASCII的超集
		return string(data), nil
	}
	out, err := sd.Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DICOM charset name 到 golang encoding/htmlindex name 的映射。"" 代表7bit ascii
var htmlEncodingNames = map[string]string{
	"ISO 2022 IR 6":   "",
	"ISO_IR 13":       "shift_jis",
	"ISO 2022 IR 13":  "shift_jis",
	"ISO_IR 100":      "iso-8859-1",
	"ISO 2022 IR 100": "iso-8859-1",
	"ISO_IR 101":      "iso-8859-2",
	"ISO 2022 IR 101": "iso-8859-2",
	"ISO_IR 109":      "iso-8859-3",
	"ISO 2022 IR 109": "iso-8859-3",
	"ISO_IR 110":      "iso-8859-4",
	"ISO 2022 IR 110": "iso-8859-4",
	"ISO_IR 126":      "iso-ir-126",
	"ISO 2022 IR 126": "iso-ir-126",
	"ISO_IR 127":      "iso-ir-127",
	"ISO 2022 IR 127": "iso-ir-127",
	"ISO_IR 138":      "iso-ir-138",
	"ISO 2022 IR 138": "iso-ir-138",
	"ISO_IR 144":      "iso-ir-144",
	"ISO 2022 IR 144": "iso-ir-144",
	"ISO_IR 148":      "iso-ir-148",
	"ISO 2022 IR 148": "iso-ir-148",
	"ISO 2022 IR 149": "euc-kr",
	"ISO 2022 IR 159": "iso-2022-jp",
	"ISO_IR 166":      "tis-620",
	"ISO 2022 IR 166": "tis-620",
	"ISO 2022 IR 87":  "iso-2022-jp",
	"ISO_IR 192":      "utf-8",
	"GB18030":         "gb18030",
	"GBK":             "gbk",
}

// ParseSpecificCharacterSet 将 Specific Character Set (0008,0005) 的原始值
// (以'\\'分隔, 可能带有空格补齐) 转换为CodingSystem。未知的charset按utf-8处理并记录warning.
// 空值返回默认的(7bit ASCII) CodingSystem. Cf. P3.2 D.6.2
func ParseSpecificCharacterSet(raw string) CodingSystem {
	var decoders []*encoding.Decoder
	for _, name := range strings.Split(strings.Trim(raw, " \000"), "\\") {
		name = strings.TrimSpace(name)
		if name == "" {
			decoders = append(decoders, nil)
			continue
		}
		htmlName, ok := htmlEncodingNames[name]
		if !ok {
			logrus.Warnf("dicomio.ParseSpecificCharacterSet: unknown character set '%s', assuming utf-8", name)
			decoders = append(decoders, nil)
			continue
		}
		if htmlName == "" {
			decoders = append(decoders, nil)
			continue
		}
		enc, err := htmlindex.Get(htmlName)
		if err != nil {
			logrus.Warnf("dicomio.ParseSpecificCharacterSet: encoding %s (for %s) not found: %v", htmlName, name, err)
			decoders = append(decoders, nil)
			continue
		}
		decoders = append(decoders, enc.NewDecoder())
	}

	switch len(decoders) {
	case 0:
		return CodingSystem{}
	case 1:
		return CodingSystem{decoders[0], decoders[0], decoders[0]}
	case 2:
		return CodingSystem{decoders[0], decoders[1], decoders[1]}
	default:
		return CodingSystem{decoders[0], decoders[1], decoders[2]}
	}
}
