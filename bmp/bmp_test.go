package bmp_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/emperorkrosis/dicom/bmp"
	"github.com/stretchr/testify/require"
)

func samplesOf(values ...uint16) []byte {
	buf := make([]byte, 2*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint16(buf[2*i:], v)
	}
	return buf
}

func TestDirect(t *testing.T) {
	img, err := bmp.Direct(bmp.Params{Width: 2, Height: 1, SamplesPerPixel: 1, BitsStored: 8},
		samplesOf(0x00ff, 0x0001))
	require.NoError(t, err)
	// 6 bytes of pixels, 2 bytes of padding.
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0x01, 0x01, 0x01, 0, 0}, img.Pix)
}

func TestDirectShiftAndInvert(t *testing.T) {
	img, err := bmp.Direct(bmp.Params{Width: 1, Height: 1, SamplesPerPixel: 1, BitsStored: 12, Invert: true},
		samplesOf(0x0ab0))
	require.NoError(t, err)
	require.Equal(t, uint8(0xff-0xab), img.Gray(0, 0))
}

func TestDirectRowsAreBottomUp(t *testing.T) {
	// Source rows, top first: [10 20] / [30 40].
	img, err := bmp.Direct(bmp.Params{Width: 2, Height: 2, SamplesPerPixel: 1, BitsStored: 8},
		samplesOf(10, 20, 30, 40))
	require.NoError(t, err)
	stride := bmp.Stride(2)
	require.Equal(t, 8, stride)
	require.Equal(t, []byte{30, 30, 30, 40, 40, 40, 0, 0}, img.Pix[:stride])
	require.Equal(t, []byte{10, 10, 10, 20, 20, 20, 0, 0}, img.Pix[stride:])
	require.Equal(t, uint8(10), img.Gray(0, 0))
	require.Equal(t, uint8(40), img.Gray(1, 1))
}

func TestNormalized(t *testing.T) {
	p := bmp.Params{Width: 5, Height: 1, SamplesPerPixel: 1, BitsStored: 16}
	// 0xf000|100 has noisy high bits and is read as 100.
	samples := samplesOf(100, 4095, 2098, 3860, 0xf000|100)

	img, err := bmp.Normalized(p, samples)
	require.NoError(t, err)
	require.Equal(t, uint8(0), img.Gray(0, 0))   // min
	require.Equal(t, uint8(0), img.Gray(1, 0))   // max scales to 255, clamped
	require.Equal(t, uint8(127), img.Gray(2, 0)) // midpoint
	require.Equal(t, uint8(0), img.Gray(3, 0))   // 240, clamped
	require.Equal(t, uint8(0), img.Gray(4, 0))

	p.Invert = true
	img, err = bmp.Normalized(p, samples)
	require.NoError(t, err)
	require.Equal(t, uint8(255), img.Gray(0, 0))
	require.Equal(t, uint8(255), img.Gray(1, 0))
	require.Equal(t, uint8(128), img.Gray(2, 0))
	require.Equal(t, uint8(255), img.Gray(3, 0))
}

func TestNormalizedMaskMovesMinimum(t *testing.T) {
	// 4195 & 0x0fff == 99, so the range is [99, 4095] rather than [100, 4195].
	p := bmp.Params{Width: 4, Height: 1, SamplesPerPixel: 1, BitsStored: 16}
	img, err := bmp.Normalized(p, samplesOf(100, 4095, 115, 4195))
	require.NoError(t, err)
	require.Equal(t, uint8(0), img.Gray(0, 0))
	require.Equal(t, uint8(0), img.Gray(1, 0))
	// (115-99)/3996*255 = 1.02; against a minimum of 100 it would be 0.
	require.Equal(t, uint8(1), img.Gray(2, 0))
	require.Equal(t, uint8(0), img.Gray(3, 0))

	p.Invert = true
	img, err = bmp.Normalized(p, samplesOf(100, 4095, 115, 4195))
	require.NoError(t, err)
	require.Equal(t, uint8(254), img.Gray(2, 0))
	require.Equal(t, uint8(255), img.Gray(3, 0))
}

func TestNormalizedBelowNoiseFloor(t *testing.T) {
	p := bmp.Params{Width: 3, Height: 1, SamplesPerPixel: 1, BitsStored: 16}
	img, err := bmp.Normalized(p, samplesOf(100, 4095, 3700))
	require.NoError(t, err)
	require.Equal(t, uint8(229), img.Gray(2, 0))
}

func TestNormalizedUniform(t *testing.T) {
	p := bmp.Params{Width: 2, Height: 2, SamplesPerPixel: 1, BitsStored: 16}
	img, err := bmp.Normalized(p, samplesOf(7, 7, 7, 7))
	require.NoError(t, err)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			require.Equal(t, uint8(0), img.Gray(x, y))
		}
	}

	p.Invert = true
	img, err = bmp.Normalized(p, samplesOf(7, 7, 7, 7))
	require.NoError(t, err)
	require.Equal(t, uint8(255), img.Gray(1, 1))
}

func TestReconstructSelectsMode(t *testing.T) {
	samples := samplesOf(0x0100, 0x0200)
	direct, err := bmp.Reconstruct(bmp.Params{Width: 2, Height: 1, SamplesPerPixel: 1, BitsStored: 12}, samples)
	require.NoError(t, err)
	require.Equal(t, uint8(0x10), direct.Gray(0, 0))

	normalized, err := bmp.Reconstruct(bmp.Params{Width: 2, Height: 1, SamplesPerPixel: 1, BitsStored: 16}, samples)
	require.NoError(t, err)
	require.Equal(t, uint8(0), normalized.Gray(0, 0))
	require.Equal(t, uint8(0), normalized.Gray(1, 0))
}

func TestInvalidParams(t *testing.T) {
	_, err := bmp.Direct(bmp.Params{Width: 0, Height: 1, SamplesPerPixel: 1, BitsStored: 8}, nil)
	require.True(t, errors.Is(err, bmp.ErrInvalidDimensions), "%v", err)

	_, err = bmp.Direct(bmp.Params{Width: 2, Height: 2, SamplesPerPixel: 1, BitsStored: 8}, samplesOf(1, 2, 3))
	require.True(t, errors.Is(err, bmp.ErrShortSampleBuffer), "%v", err)

	_, err = bmp.Normalized(bmp.Params{Width: 1, Height: 1, SamplesPerPixel: 3, BitsStored: 16}, samplesOf(1, 2, 3))
	require.True(t, errors.Is(err, bmp.ErrUnsupportedSamplesPerPixel), "%v", err)
}

func TestEncodeHeader(t *testing.T) {
	img, err := bmp.Direct(bmp.Params{Width: 3, Height: 2, SamplesPerPixel: 1, BitsStored: 8},
		samplesOf(1, 2, 3, 4, 5, 6))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, img.Encode(&buf))
	out := buf.Bytes()

	stride := bmp.Stride(3)
	require.Equal(t, 12, stride)
	require.Len(t, out, bmp.PixelDataOffset+2*stride)
	require.Equal(t, "BM", string(out[0:2]))
	le := binary.LittleEndian
	require.Equal(t, uint32(len(out)), le.Uint32(out[2:]))
	require.Equal(t, uint32(0), le.Uint32(out[6:]))
	require.Equal(t, uint32(0x36), le.Uint32(out[10:]))
	require.Equal(t, uint32(40), le.Uint32(out[14:]))
	require.Equal(t, uint32(3), le.Uint32(out[18:]))
	require.Equal(t, uint32(2), le.Uint32(out[22:]))
	require.Equal(t, uint16(1), le.Uint16(out[26:]))
	require.Equal(t, uint16(24), le.Uint16(out[28:]))
	for i := 30; i < bmp.PixelDataOffset; i++ {
		require.Equal(t, byte(0), out[i], "header byte %d", i)
	}
	require.Equal(t, img.Pix, out[bmp.PixelDataOffset:])
}
