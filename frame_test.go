package jelka

import "testing"

func TestHexByte(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00"},
		{9, "09"},
		{15, "0f"},
		{16, "10"},
		{50, "32"},
		{171, "ab"},
		{255, "ff"},
		{256, "00"},
		{305, "31"},
	}

	for _, test := range tests {
		assertEq(t, test.want, HexByte(test.in))

		frame := Frame{{R: uint8(test.in & 0xFF)}}
		assertEq(t, test.want+"0000", string(AppendFrame(nil, frame)))
	}
}

func TestAppendFrame(t *testing.T) {
	frame := Frame{
		{0, 1, 2},
		{3, 4, 5},
		{0, 150, 255},
	}

	got := AppendFrame([]byte("#"), frame)
	assertEq(t, "#0001020304050096ff", string(got))
	assertEq(t, "", string(AppendFrame(nil, nil)))
}

func TestGradient(t *testing.T) {
	tests := []struct {
		name  string
		frame int
		led   int
		want  RGB
	}{
		{"first led", 0, 0, RGB{0, 50, 100}},
		{"wraps red", 1, 255, RGB{0, 50, 100}},
		{"wraps blue", 0, 200, RGB{200, 250, 44}},
		{"late frame", 10799, 499, RGB{
			uint8((499 + 10799) % 256),
			uint8((499 + 10799 + 50) % 256),
			uint8((499 + 10799 + 100) % 256),
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assertEq(t, test.want, Gradient.Color(test.frame, test.led))
		})
	}
}

func TestRenderFrame(t *testing.T) {
	frame := make(Frame, 4)
	RenderFrame(frame, PatternFunc(func(f, led int) RGB {
		return RGB{uint8(f), uint8(led), 7}
	}), 3)

	assertEq(t, Frame{{3, 0, 7}, {3, 1, 7}, {3, 2, 7}, {3, 3, 7}}, frame)
}
