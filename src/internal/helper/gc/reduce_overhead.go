// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"errors"
	"io"

	"github.com/valyala/bytebufferpool"
)

// ErrBodyTooLarge is returned by [ReadLimited] when the reader yields more than the allowed bytes.
var ErrBodyTooLarge = errors.New("gc: body exceeds size limit")

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	io.Writer
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	Bytes() []byte
	String() string
	Len() int
	Reset()
	ReadFrom(r io.Reader) (int64, error)
}

// Pool defines the interface for buffer pooling.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

type pool struct{ p *bytebufferpool.Pool }

func (p *pool) Get() Buffer { return p.p.Get() }

func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the process-wide buffer pool.
//
// Callers must Reset a buffer before handing it back:
//
//	buf := gc.Default.Get()
//	defer func() {
//		buf.Reset()
//		gc.Default.Put(buf)
//	}()
var Default Pool = &pool{p: &bytebufferpool.Pool{}}

// ReadLimited reads r fully through a pooled buffer and returns a private copy of the bytes.
//
// A limit <= 0 disables the size check. When more than limit bytes are
// available, ErrBodyTooLarge is returned and the partial data is discarded.
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	src := r
	if limit > 0 {
		// one extra byte tells an exact-limit body apart from an oversized one
		src = io.LimitReader(r, limit+1)
	}

	if _, err := buf.ReadFrom(src); err != nil {
		return nil, err
	}
	if limit > 0 && int64(buf.Len()) > limit {
		return nil, ErrBodyTooLarge
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
