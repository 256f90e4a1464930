package jelka

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Marker prefixes every header and frame line of the stream.
const Marker = '#'

var (
	// ErrDurationExceeded is returned when more frames are written than the
	// header's duration allows.
	ErrDurationExceeded = errors.New("frame count exceeds duration")
	// ErrFrameSize is returned when a frame does not have a color for every
	// LED.
	ErrFrameSize = errors.New("frame must have a value for every LED")
)

// Writer writes a header and frames in the line format:
//
//	#{"version": 0, "led_count": 500, ...}
//
//	#0032640133650234...
//	#0133650234660335...
//
// The header line is written lazily before the first frame and is followed
// by an empty line. Output is buffered; call Flush once done.
type Writer struct {
	w      *bufio.Writer
	header Header
	buf    []byte
	frames int
	wrote  bool
}

// NewWriter creates a new Writer that writes to w.
func NewWriter(w io.Writer, h Header) *Writer {
	return &Writer{
		w:      bufio.NewWriterSize(w, 64*1024),
		header: h,
		buf:    make([]byte, 0, 1+6*h.LEDCount+1),
	}
}

// Header returns the header of the stream.
func (w *Writer) Header() Header {
	return w.header
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int {
	return w.frames
}

// WriteHeader writes the header line if it has not been written yet.
func (w *Writer) WriteHeader() error {
	if w.wrote {
		return nil
	}

	w.buf = w.buf[:0]
	w.buf = append(w.buf, Marker)
	w.buf = append(w.buf, w.header.Encode()...)
	w.buf = append(w.buf, '\n', '\n')

	if _, err := w.w.Write(w.buf); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	w.wrote = true
	return nil
}

// WriteFrame writes a single frame, preceded by the header if this is the
// first frame.
func (w *Writer) WriteFrame(frame Frame) error {
	if w.frames >= w.header.Duration {
		return fmt.Errorf("%w of %d", ErrDurationExceeded, w.header.Duration)
	}
	if len(frame) != w.header.LEDCount {
		return fmt.Errorf("%w, has %d/%d", ErrFrameSize, len(frame), w.header.LEDCount)
	}

	if err := w.WriteHeader(); err != nil {
		return err
	}

	w.buf = w.buf[:0]
	w.buf = append(w.buf, Marker)
	w.buf = AppendFrame(w.buf, frame)
	w.buf = append(w.buf, '\n')

	if _, err := w.w.Write(w.buf); err != nil {
		return fmt.Errorf("failed to write frame %d: %w", w.frames, err)
	}

	w.frames++
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}
	return nil
}
