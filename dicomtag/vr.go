package dicomtag

// VR 编码相关常量
const (
	// SequenceVR 标记一个SQ容器
	SequenceVR = "SQ"
	// ImplicitItemVR 是implicit tag (Item) 所假定的VR
	ImplicitItemVR = "UL"
)

type vrLayout struct {
	lengthWidth int
	padding     int
}

// OB, OW, SQ, UN 在VR后有2个保留byte，然后是4 byte的length (PS3.5 7.1.2)
var vrLayouts = map[string]vrLayout{
	"OB": {lengthWidth: 4, padding: 2},
	"OW": {lengthWidth: 4, padding: 2},
	"SQ": {lengthWidth: 4, padding: 2},
	"UN": {lengthWidth: 4, padding: 2},
}

// LengthFieldWidth 返回VR的length字段宽度(2 或 4)。未知VR返回2
func LengthFieldWidth(vr string) int {
	if l, ok := vrLayouts[vr]; ok {
		return l.lengthWidth
	}
	return 2
}

// PaddingBytes 返回VR与length字段之间的保留byte数(0 或 2)。未知VR返回0
func PaddingBytes(vr string) int {
	if l, ok := vrLayouts[vr]; ok {
		return l.padding
	}
	return 0
}
