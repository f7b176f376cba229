// Package bmp turns raw grayscale DICOM samples into 24-bit uncompressed
// Windows bitmaps.
package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/emperorkrosis/dicom/dicomio"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40

	// PixelDataOffset is the offset of the first payload byte in an encoded bitmap.
	PixelDataOffset = fileHeaderSize + infoHeaderSize

	bytesPerPixel = 3

	// normalizedMask drops the top 4 bits of 16-bit samples. They carry
	// sensor noise on the CT images this was written for.
	normalizedMask = 0x0fff

	// noiseFloor: normalized values at or above it are forced to black.
	noiseFloor = 235
)

var (
	ErrInvalidDimensions          = errors.New("bmp: invalid image dimensions")
	ErrShortSampleBuffer          = errors.New("bmp: sample buffer too short")
	ErrUnsupportedSamplesPerPixel = errors.New("bmp: only one sample per pixel is supported")
)

// Params describes a grayscale sample buffer.
type Params struct {
	Width           int
	Height          int
	SamplesPerPixel int
	BitsStored      int
	// Invert maps v to 255-v after scaling (MONOCHROME1).
	Invert bool
}

// Image is a decoded bitmap. Pix holds the payload exactly as it is laid
// out in the file: bottom row first, three bytes per pixel, each row
// padded with zeros to a multiple of four bytes.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// Stride returns the padded byte width of one row.
func Stride(width int) int {
	return (width*bytesPerPixel + 3) &^ 3
}

// Gray returns the intensity of the pixel at column x of source row y,
// where y=0 is the top row of the DICOM image.
func (img *Image) Gray(x, y int) uint8 {
	row := img.Height - 1 - y
	return img.Pix[row*Stride(img.Width)+x*bytesPerPixel]
}

// Size returns the total size of the encoded file in bytes.
func (img *Image) Size() int {
	return PixelDataOffset + len(img.Pix)
}

// Bytes returns the complete encoded bitmap file.
func (img *Image) Bytes() []byte {
	e := dicomio.NewBytesEncoder(binary.LittleEndian)
	img.encode(e)
	return e.Bytes()
}

// Encode writes the complete bitmap file to w in a single write.
func (img *Image) Encode(w io.Writer) error {
	e := dicomio.NewBytesEncoder(binary.LittleEndian)
	img.encode(e)
	if err := e.Error(); err != nil {
		return err
	}
	_, err := w.Write(e.Bytes())
	return err
}

func (img *Image) encode(e *dicomio.Encoder) {
	// BITMAPFILEHEADER
	e.WriteString("BM")
	e.WriteInt32(int32(img.Size()))
	e.WriteZeros(4)
	e.WriteUInt32(PixelDataOffset)

	// BITMAPINFOHEADER
	e.WriteUInt32(infoHeaderSize)
	e.WriteInt32(int32(img.Width))
	e.WriteInt32(int32(img.Height))
	e.WriteUInt16(1) // color planes
	e.WriteInt16(24) // bits per pixel
	e.WriteUInt32(0) // BI_RGB
	e.WriteZeros(4 * 5)

	e.WriteBytes(img.Pix)
}

func (p Params) validate(samples []byte) error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, p.Width, p.Height)
	}
	if p.SamplesPerPixel != 1 {
		return fmt.Errorf("%w: got %d", ErrUnsupportedSamplesPerPixel, p.SamplesPerPixel)
	}
	if need := p.Width * p.Height * 2; len(samples) < need {
		return fmt.Errorf("%w: need %d bytes for %dx%d, have %d", ErrShortSampleBuffer, need, p.Width, p.Height, len(samples))
	}
	return nil
}

// sample returns the little-endian 16-bit sample at column c of source row r.
func sample(samples []byte, width, r, c int) uint16 {
	return binary.LittleEndian.Uint16(samples[(r*width+c)*2:])
}

// fill walks the destination bottom-up, asking pixel for the gray value of
// each source (row, column). Padding bytes stay zero.
func fill(p Params, pixel func(r, c int) uint8) *Image {
	stride := Stride(p.Width)
	img := &Image{Width: p.Width, Height: p.Height, Pix: make([]byte, stride*p.Height)}
	off := 0
	for r := p.Height - 1; r >= 0; r-- {
		row := img.Pix[off : off+stride]
		for c := 0; c < p.Width; c++ {
			v := pixel(r, c)
			if p.Invert {
				v = 0xff - v
			}
			row[c*3], row[c*3+1], row[c*3+2] = v, v, v
		}
		off += stride
	}
	return img
}

// Direct scales each sample to 8 bits by dropping its low BitsStored-8 bits.
func Direct(p Params, samples []byte) (*Image, error) {
	if err := p.validate(samples); err != nil {
		return nil, err
	}
	shift := uint(0)
	if p.BitsStored > 8 {
		shift = uint(p.BitsStored - 8)
	}
	return fill(p, func(r, c int) uint8 {
		return uint8((sample(samples, p.Width, r, c) >> shift) & 0xff)
	}), nil
}

// Normalized masks each sample to 12 bits and stretches the observed
// [min, max] range linearly to [0, 255]. Results at or above the noise
// floor become 0. If every sample is equal, every pixel is 0 (255 when
// inverted).
func Normalized(p Params, samples []byte) (*Image, error) {
	if err := p.validate(samples); err != nil {
		return nil, err
	}

	minVal, maxVal := uint16(0xffff), uint16(0)
	for r := p.Height - 1; r >= 0; r-- {
		for c := 0; c < p.Width; c++ {
			v := sample(samples, p.Width, r, c) & normalizedMask
			if v > maxVal {
				maxVal = v
			}
			if v < minVal {
				minVal = v
			}
		}
	}

	span := float64(maxVal) - float64(minVal)
	return fill(p, func(r, c int) uint8 {
		if span == 0 {
			return 0
		}
		v := sample(samples, p.Width, r, c) & normalizedMask
		scaled := int(float64(v-minVal)/span*255) & 0xff
		if scaled >= noiseFloor {
			scaled = 0
		}
		return uint8(scaled)
	}), nil
}

// Reconstruct picks Normalized for 16 stored bits and Direct otherwise.
func Reconstruct(p Params, samples []byte) (*Image, error) {
	if p.BitsStored == 16 {
		return Normalized(p, samples)
	}
	return Direct(p, samples)
}
