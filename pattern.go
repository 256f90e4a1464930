package jelka

// Pattern produces the colors of an animation.
type Pattern interface {
	// Color returns the color of the given LED at the given frame.
	Color(frame, led int) RGB
}

// PatternFunc is a function that implements Pattern.
type PatternFunc func(frame, led int) RGB

// Color implements Pattern.
func (f PatternFunc) Color(frame, led int) RGB {
	return f(frame, led)
}

// Gradient shifts a gradient along the strip by one LED every frame. The
// green and blue channels trail the red one by 50 and 100 steps.
var Gradient Pattern = PatternFunc(func(frame, led int) RGB {
	return RGB{
		R: gradientChannel(frame, led, 0),
		G: gradientChannel(frame, led, 1),
		B: gradientChannel(frame, led, 2),
	}
})

func gradientChannel(frame, led, channel int) uint8 {
	return uint8((led + frame + channel*50) % 256)
}

// RenderFrame fills every LED of dst with the pattern's color at the given
// frame.
func RenderFrame(dst Frame, p Pattern, frame int) {
	for led := range dst {
		dst[led] = p.Color(frame, led)
	}
}
