package dicom

import (
	"github.com/emperorkrosis/dicom/dicomtag"
)

// Sink receives decoding events in stream order. A non-nil error aborts
// the decode and is returned from Decode.
//
// Depth is 0 for top-level elements and grows by one inside every sequence
// and item. ContainerEnd is called with the depth of the sequence or item
// that closed.
type Sink interface {
	SequenceStart(tag dicomtag.Tag, depth int) error
	ItemStart(depth int) error
	ContainerEnd(depth int) error
	Value(elem *Element) error
}

// NopSink ignores every event. Embed it to implement only some of the hooks.
type NopSink struct{}

func (NopSink) SequenceStart(dicomtag.Tag, int) error { return nil }
func (NopSink) ItemStart(int) error                   { return nil }
func (NopSink) ContainerEnd(int) error                { return nil }
func (NopSink) Value(*Element) error                  { return nil }

// MultiSink forwards every event to each sink in order, stopping at the
// first error.
type MultiSink []Sink

func (m MultiSink) SequenceStart(tag dicomtag.Tag, depth int) error {
	for _, s := range m {
		if err := s.SequenceStart(tag, depth); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiSink) ItemStart(depth int) error {
	for _, s := range m {
		if err := s.ItemStart(depth); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiSink) ContainerEnd(depth int) error {
	for _, s := range m {
		if err := s.ContainerEnd(depth); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiSink) Value(elem *Element) error {
	for _, s := range m {
		if err := s.Value(elem); err != nil {
			return err
		}
	}
	return nil
}
