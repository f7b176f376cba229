package dicom

import (
	"errors"

	"github.com/emperorkrosis/dicom/dicomio"
)

// Decoding errors. Every error returned by this package wraps one of these
// (or an I/O error), so callers can test with errors.Is.
var (
	// ErrMalformedHeader: the stream does not start with 128 zero bytes and "DICM".
	ErrMalformedHeader = errors.New("dicom: malformed file header")

	// ErrUnexpectedEndOfStream: the stream ended inside an element or an
	// open container. A clean end between top-level elements is not an error.
	ErrUnexpectedEndOfStream = dicomio.ErrUnexpectedEndOfStream

	// ErrUnknownTag: a tag is missing from the dictionary.
	ErrUnknownTag = errors.New("dicom: unknown tag")

	// ErrUnhandledValueRepresentation: DumpSink has no formatter for a VR.
	ErrUnhandledValueRepresentation = errors.New("dicom: unhandled value representation")

	// ErrUnsupportedPhotometricInterpretation: ImageSink saw neither
	// MONOCHROME1 nor MONOCHROME2.
	ErrUnsupportedPhotometricInterpretation = errors.New("dicom: unsupported photometric interpretation")

	// ErrInvalidLengthFieldWidth: a length field is neither 2 nor 4 bytes wide.
	ErrInvalidLengthFieldWidth = errors.New("dicom: invalid length field width")

	// ErrContainerOverrun: a child element extends past the end of its sequence or item.
	ErrContainerOverrun = errors.New("dicom: element overruns its container")

	// ErrUnsupportedTransferSyntax is only returned when
	// ParseOptions.StrictTransferSyntax is set.
	ErrUnsupportedTransferSyntax = errors.New("dicom: unsupported transfer syntax")

	// ErrNoPixelData: an image file was decoded without a top-level Pixel Data element.
	ErrNoPixelData = errors.New("dicom: no pixel data")
)
