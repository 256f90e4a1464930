package jelka

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Version is the version of the stream format. It changes whenever the
// structure of the header or the frames changes.
const Version = 0

// Header describes a stream. It is written once, before any frame.
type Header struct {
	Version  int    `json:"version"`
	LEDCount int    `json:"led_count"`
	Duration int    `json:"duration"` // in frames
	FPS      int    `json:"fps"`
	Author   string `json:"author"`
	Title    string `json:"title"`
	School   string `json:"school"`
}

// DefaultHeader returns the header of the generated animation: 500 LEDs for
// three minutes at 60 frames per second.
func DefaultHeader() Header {
	return Header{
		Version:  Version,
		LEDCount: 500,
		Duration: ToDuration(3, 0, 60),
		FPS:      60,
		Author:   "Jošt",
		Title:    `čšđččsmf?=!9"'`,
		School:   "OŠ .-,",
	}
}

// ToDuration converts minutes and seconds to a number of frames.
func ToDuration(minutes, seconds, fps int) int {
	return (minutes*60 + seconds) * fps
}

// Encode encodes the header as a single line JSON object. Keys keep the
// order of the struct fields and every non-ASCII character is written as a
// \u escape, so the line is plain ASCII.
func (h Header) Encode() string {
	var b strings.Builder
	b.Grow(128)

	b.WriteString(`{"version": `)
	b.WriteString(strconv.Itoa(h.Version))
	b.WriteString(`, "led_count": `)
	b.WriteString(strconv.Itoa(h.LEDCount))
	b.WriteString(`, "duration": `)
	b.WriteString(strconv.Itoa(h.Duration))
	b.WriteString(`, "fps": `)
	b.WriteString(strconv.Itoa(h.FPS))
	b.WriteString(`, "author": `)
	writeASCIIString(&b, h.Author)
	b.WriteString(`, "title": `)
	writeASCIIString(&b, h.Title)
	b.WriteString(`, "school": `)
	writeASCIIString(&b, h.School)
	b.WriteByte('}')

	return b.String()
}

const hexDigits = "0123456789abcdef"

func writeASCIIString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r < 0x20 || r == 0x7F || r == utf8.RuneError:
				writeUnicodeEscape(b, r)
			case r < utf8.RuneSelf:
				b.WriteRune(r)
			case r > 0xFFFF:
				r1, r2 := utf16.EncodeRune(r)
				writeUnicodeEscape(b, r1)
				writeUnicodeEscape(b, r2)
			default:
				writeUnicodeEscape(b, r)
			}
		}
	}
	b.WriteByte('"')
}

func writeUnicodeEscape(b *strings.Builder, r rune) {
	b.WriteString(`\u`)
	b.WriteByte(hexDigits[r>>12&0xF])
	b.WriteByte(hexDigits[r>>8&0xF])
	b.WriteByte(hexDigits[r>>4&0xF])
	b.WriteByte(hexDigits[r&0xF])
}
