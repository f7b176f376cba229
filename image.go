package dicom

import (
	"fmt"
	"io/ioutil"

	"github.com/emperorkrosis/dicom/bmp"
	"github.com/emperorkrosis/dicom/dicomlog"
	"github.com/emperorkrosis/dicom/dicomtag"
)

// Photometric interpretations ImageSink understands.
const (
	Monochrome1 = "MONOCHROME1"
	Monochrome2 = "MONOCHROME2"
)

// ImageMetadata accumulates the top-level image attributes seen before
// Pixel Data.
type ImageMetadata struct {
	Width           int
	Height          int
	SamplesPerPixel int
	BitsStored      int
	Photometric     string
}

// DefaultImageMetadata is used for attributes missing from the file.
func DefaultImageMetadata() ImageMetadata {
	return ImageMetadata{
		Width:           1024,
		Height:          1024,
		SamplesPerPixel: 1,
		BitsStored:      16,
	}
}

// ImageSink reconstructs a bitmap from the top-level Pixel Data element.
type ImageSink struct {
	NopSink

	Metadata ImageMetadata

	image *bmp.Image
}

// NewImageSink creates an ImageSink with default metadata.
func NewImageSink() *ImageSink {
	return &ImageSink{Metadata: DefaultImageMetadata()}
}

// Image returns the reconstructed bitmap, or nil if no Pixel Data was seen.
func (s *ImageSink) Image() *bmp.Image {
	return s.image
}

func uint16Value(elem *Element) (int, error) {
	v, err := elem.GetUInt16()
	return int(v), err
}

func (s *ImageSink) Value(elem *Element) error {
	if elem.Depth != 0 {
		return nil
	}

	var err error
	switch elem.Tag {
	case dicomtag.SamplesPerPixel:
		s.Metadata.SamplesPerPixel, err = uint16Value(elem)
	case dicomtag.PhotometricInterpretation:
		s.Metadata.Photometric, err = elem.TrimmedText()
	case dicomtag.Rows:
		s.Metadata.Height, err = uint16Value(elem)
	case dicomtag.Columns:
		s.Metadata.Width, err = uint16Value(elem)
	case dicomtag.BitsStored:
		s.Metadata.BitsStored, err = uint16Value(elem)
	case dicomtag.PixelData:
		err = s.reconstruct(elem.Data)
	}
	return err
}

func (s *ImageSink) reconstruct(samples []byte) error {
	m := s.Metadata
	var invert bool
	switch m.Photometric {
	case Monochrome1:
		invert = true
	case Monochrome2:
		invert = false
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedPhotometricInterpretation, m.Photometric)
	}

	dicomlog.Vprintf(1, "dicom.ImageSink: %dx%d samples=%d bits=%d %s", m.Width, m.Height, m.SamplesPerPixel, m.BitsStored, m.Photometric)
	img, err := bmp.Reconstruct(bmp.Params{
		Width:           m.Width,
		Height:          m.Height,
		SamplesPerPixel: m.SamplesPerPixel,
		BitsStored:      m.BitsStored,
		Invert:          invert,
	}, samples)
	if err != nil {
		return err
	}
	s.image = img
	return nil
}

// ConvertFile decodes the DICOM image at src and writes it to dst as a
// bitmap. dst is only created after the whole file decoded successfully.
func (p *Parser) ConvertFile(src, dst string) error {
	sink := NewImageSink()
	if err := p.DecodeFile(src, sink); err != nil {
		return err
	}
	img := sink.Image()
	if img == nil {
		return fmt.Errorf("%s: %w", src, ErrNoPixelData)
	}
	return ioutil.WriteFile(dst, img.Bytes(), 0644)
}

// ConvertFile is Parser.ConvertFile with the default options.
func ConvertFile(src, dst string) error {
	return defaultParser.ConvertFile(src, dst)
}
