package jelka

// RGB is the color of a single LED.
type RGB struct {
	R, G, B uint8
}

// Frame holds the color of every LED for one time step of the animation.
type Frame []RGB

// HexByte formats v modulo 256 as exactly two lowercase hexadecimal digits.
func HexByte(v int) string {
	return string(appendHexByte(make([]byte, 0, 2), uint8(v&0xFF)))
}

// AppendFrame appends the hexadecimal encoding of the frame to dst and
// returns the extended buffer. Each LED takes six characters: two for each
// of R, G and B, in that order, with no separators.
func AppendFrame(dst []byte, frame Frame) []byte {
	for _, led := range frame {
		dst = appendHexByte(dst, led.R)
		dst = appendHexByte(dst, led.G)
		dst = appendHexByte(dst, led.B)
	}
	return dst
}

func appendHexByte(dst []byte, b uint8) []byte {
	return append(dst, hexDigits[b>>4], hexDigits[b&0xF])
}
