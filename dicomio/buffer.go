// package io providers utility functions for encoding and decoding
// low-level DICOM data types, such as integers and strings
package dicomio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// ! ---- types/consts/variables ----

// ErrUnexpectedEndOfStream 表示在一个element中途读到了流的末尾。
// 与element边界处的干净EOF不同
var ErrUnexpectedEndOfStream = errors.New("unexpected end of stream")

// Encoder is a helper class for encoding low-level DICOM data types
type Encoder struct {
	err error

	out io.Writer

	byteorder binary.ByteOrder
}

// NewBytesEncoder创建一个新的encoder，数据会写入缓冲区
// 可以通过Bytes（）来获取
func NewBytesEncoder(byteorder binary.ByteOrder) *Encoder {
	return &Encoder{
		out:       &bytes.Buffer{},
		byteorder: byteorder,
	}
}

// SetError sets the error to be reported by future Error() calls.
// If called multiple times with different errors, Error()
// will return the first one.
//
// REQUIRES: err != nil
func (e *Encoder) SetError(err error) {
	if err != nil && e.err == nil {
		e.err = err
	}
}

// 返回一个由SetError设置的error，如果SetError没有被使用，则返回nil
func (e *Encoder) Error() error {
	return e.err
}

// Bytes returns the encoded data
//
// 须知: e.Error() == nil
func (e *Encoder) Bytes() []byte {
	if e.err != nil {
		logrus.Panic(e.err)
	}
	return e.out.(*bytes.Buffer).Bytes()
}

func (e *Encoder) write(v interface{}) {
	if e.err != nil {
		return
	}
	if err := binary.Write(e.out, e.byteorder, v); err != nil {
		e.SetError(err)
	}
}

func (e *Encoder) WriteUInt16(v uint16) { e.write(&v) }

func (e *Encoder) WriteUInt32(v uint32) { e.write(&v) }

func (e *Encoder) WriteInt16(v int16) { e.write(&v) }

func (e *Encoder) WriteInt32(v int32) { e.write(&v) }

// WriteString writes the string, withoutout any length prefix or padding.
func (e *Encoder) WriteString(v string) {
	e.WriteBytes([]byte(v))
}

// WriteZeros encodes an array of zero bytes.
func (e *Encoder) WriteZeros(len int) {
	e.WriteBytes(make([]byte, len))
}

// Copy the given data to output.
func (e *Encoder) WriteBytes(v []byte) {
	if e.err != nil {
		return
	}
	if _, err := e.out.Write(v); err != nil {
		e.SetError(err)
	}
}

// Decoder 是一个单向的顺序读取器。所有读取都是定长的，
// 短读统一报告为ErrUnexpectedEndOfStream
type Decoder struct {
	in        *bufio.Reader
	byteorder binary.ByteOrder

	// Cumulative # bytes read.
	pos int64

	// 将dicom文件的原始数据解码为utf-8，如果为空，则可能是ASCII编码。详情见Cf p3.5 6.1.2.1
	codingSystem CodingSystem
}

// NewDecoder创建一个decoder对象从"in"读取
func NewDecoder(in io.Reader, byteorder binary.ByteOrder) *Decoder {
	return &Decoder{
		in:        bufio.NewReader(in),
		byteorder: byteorder,
	}
}

// SetCodingSystem overrides the default (7bit ASCII) decoder used when
// converting a byte[] to a string.
func (d *Decoder) SetCodingSystem(cs CodingSystem) {
	d.codingSystem = cs
}

// CodingSystem returns the coding system set by SetCodingSystem.
func (d *Decoder) CodingSystem() CodingSystem {
	return d.codingSystem
}

// BytesRead returns the cumulative # of bytes read so far.
func (d *Decoder) BytesRead() int64 { return d.pos }

// AtEOF 检查是否没有可读数据了。底层的读取错误会被返回，而不是当作EOF
func (d *Decoder) AtEOF() (bool, error) {
	data, err := d.in.Peek(1)
	if len(data) > 0 {
		return false, nil
	}
	if err == io.EOF {
		return true, nil
	}
	return false, d.wrap(err)
}

func (d *Decoder) wrap(err error) error {
	return fmt.Errorf("%w (file offset %d)", err, d.pos)
}

// ReadBytes 读取正好length个byte。缓冲随数据增长，
// 所以一个伪造的巨大length不会提前分配内存
func (d *Decoder) ReadBytes(length int) ([]byte, error) {
	if length < 0 {
		return nil, d.wrap(fmt.Errorf("ReadBytes: negative length %d", length))
	}
	var buf bytes.Buffer
	n, err := io.CopyN(&buf, d.in, int64(length))
	d.pos += n
	if err == io.EOF {
		return nil, d.wrap(fmt.Errorf("%w: requested %d, available %d", ErrUnexpectedEndOfStream, length, n))
	}
	if err != nil {
		return nil, d.wrap(err)
	}
	return buf.Bytes(), nil
}

// Skip 丢弃length个byte
func (d *Decoder) Skip(length int) error {
	n, err := d.in.Discard(length)
	d.pos += int64(n)
	if err == io.EOF {
		return d.wrap(fmt.Errorf("%w: skip %d, available %d", ErrUnexpectedEndOfStream, length, n))
	}
	if err != nil {
		return d.wrap(err)
	}
	return nil
}

func (d *Decoder) ReadUInt16() (uint16, error) {
	b, err := d.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return d.byteorder.Uint16(b), nil
}

func (d *Decoder) ReadUInt32() (uint32, error) {
	b, err := d.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return d.byteorder.Uint32(b), nil
}
