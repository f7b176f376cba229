package dicomio

import (
	"fmt"
	"strings"
)

// Transfer syntax UIDs, PS3.6 Annex A
const (
	ImplicitVRLittleEndian         = "1.2.840.10008.1.2"
	ExplicitVRLittleEndian         = "1.2.840.10008.1.2.1"
	DeflatedExplicitVRLittleEndian = "1.2.840.10008.1.2.1.99"
	ExplicitVRBigEndian            = "1.2.840.10008.1.2.2"
)

// StandardTransferSyntaxes is the list of standard transfer syntaxes
var StandardTransferSyntaxes = []string{
	ImplicitVRLittleEndian,
	ExplicitVRLittleEndian,
	ExplicitVRBigEndian,
	DeflatedExplicitVRLittleEndian,
}

// CanonicalTransferSyntaxUID 去掉UID值的补齐 ('\0' 或空格)
func CanonicalTransferSyntaxUID(uid string) string {
	return strings.Trim(uid, " \000")
}

// CheckTransferSyntax 在uid不是explicit VR little endian时返回错误。
// 这个decoder只读取未压缩的explicit VR little endian数据
func CheckTransferSyntax(uid string) error {
	canonical := CanonicalTransferSyntaxUID(uid)
	if canonical == ExplicitVRLittleEndian {
		return nil
	}
	for _, ts := range StandardTransferSyntaxes {
		if ts == canonical {
			return fmt.Errorf("transfer syntax %s is not explicit VR little endian", canonical)
		}
	}
	return fmt.Errorf("transfer syntax %s is not supported (compressed or unknown)", canonical)
}
