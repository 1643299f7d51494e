package imgconv

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/bluenviron/goroslib/v2/pkg/msgs/sensor_msgs"

	"github.com/tsawler/rosconv"
)

func rampImage(encoding string, w, h, step int) *sensor_msgs.Image {
	data := make([]byte, step*h)
	for i := range data {
		data[i] = byte(i)
	}
	return &sensor_msgs.Image{
		Height:   uint32(h),
		Width:    uint32(w),
		Encoding: encoding,
		Step:     uint32(step),
		Data:     data,
	}
}

// ============================================================================
// ToImage
// ============================================================================

func TestToImageRGB8(t *testing.T) {
	// 4x2 rgb8 ramp with stride 12: every decoded channel value equals the
	// corresponding buffer byte in row-major order.
	msg := rampImage("rgb8", 4, 2, 12)

	img, err := ToImage(msg)
	if err != nil {
		t.Fatalf("ToImage error: %v", err)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		t.Fatalf("ToImage returned %T, want *image.RGBA", img)
	}
	if got := rgba.Bounds(); got.Dx() != 4 || got.Dy() != 2 {
		t.Fatalf("bounds = %v, want 4x2", got)
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			off := y*12 + x*3
			want := color.RGBA{msg.Data[off], msg.Data[off+1], msg.Data[off+2], 0xff}
			if got := rgba.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestToImageBGR8(t *testing.T) {
	msg := &sensor_msgs.Image{
		Height: 1, Width: 1, Encoding: "bgr8", Step: 3,
		Data: []byte{10, 20, 30},
	}

	img, err := ToImage(msg)
	if err != nil {
		t.Fatalf("ToImage error: %v", err)
	}
	want := color.RGBA{30, 20, 10, 0xff}
	if got := img.(*image.RGBA).RGBAAt(0, 0); got != want {
		t.Errorf("pixel = %+v, want %+v", got, want)
	}
}

func TestToImageMono8(t *testing.T) {
	msg := rampImage("mono8", 3, 2, 5)

	img, err := ToImage(msg)
	if err != nil {
		t.Fatalf("ToImage error: %v", err)
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("ToImage returned %T, want *image.Gray", img)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := msg.Data[y*5+x]
			if got := gray.GrayAt(x, y).Y; got != want {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestToImageMono16(t *testing.T) {
	tests := []struct {
		name        string
		isBigendian uint8
		data        []byte
	}{
		{"little endian", 0, []byte{0x34, 0x12, 0x78, 0x56}},
		{"big endian", 1, []byte{0x12, 0x34, 0x56, 0x78}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &sensor_msgs.Image{
				Height: 1, Width: 2, Encoding: "mono16", Step: 4,
				IsBigendian: tt.isBigendian,
				Data:        tt.data,
			}
			img, err := ToImage(msg)
			if err != nil {
				t.Fatalf("ToImage error: %v", err)
			}
			gray, ok := img.(*image.Gray16)
			if !ok {
				t.Fatalf("ToImage returned %T, want *image.Gray16", img)
			}
			if got := gray.Gray16At(0, 0).Y; got != 0x1234 {
				t.Errorf("pixel (0,0) = %#04x, want 0x1234", got)
			}
			if got := gray.Gray16At(1, 0).Y; got != 0x5678 {
				t.Errorf("pixel (1,0) = %#04x, want 0x5678", got)
			}
		})
	}
}

func TestToImageBGRA8(t *testing.T) {
	msg := &sensor_msgs.Image{
		Height: 1, Width: 1, Encoding: "bgra8", Step: 4,
		Data: []byte{10, 20, 30, 40},
	}

	img, err := ToImage(msg)
	if err != nil {
		t.Fatalf("ToImage error: %v", err)
	}
	want := color.NRGBA{30, 20, 10, 40}
	if got := img.(*image.NRGBA).NRGBAAt(0, 0); got != want {
		t.Errorf("pixel = %+v, want %+v", got, want)
	}
}

func TestToImageErrors(t *testing.T) {
	tests := []struct {
		name string
		msg  *sensor_msgs.Image
		want error
	}{
		{
			"unknown encoding",
			rampImage("64FC1", 2, 2, 16),
			rosconv.ErrUnsupportedEncoding,
		},
		{
			"short buffer",
			&sensor_msgs.Image{Height: 2, Width: 4, Encoding: "rgb8", Step: 12, Data: make([]byte, 23)},
			rosconv.ErrInvalidDimensions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := ToImage(tt.msg)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if img != nil {
				t.Error("got an image alongside an error")
			}
		})
	}
}

func TestToImageIdempotent(t *testing.T) {
	msg := rampImage("rgb8", 4, 2, 12)

	a, err := ToImage(msg)
	if err != nil {
		t.Fatalf("first conversion error: %v", err)
	}
	b, err := ToImage(msg)
	if err != nil {
		t.Fatalf("second conversion error: %v", err)
	}
	if !bytes.Equal(a.(*image.RGBA).Pix, b.(*image.RGBA).Pix) {
		t.Error("two conversions of the same message differ")
	}
}

// ============================================================================
// FromImage
// ============================================================================

func TestFromImageGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = byte(10 * i)
	}

	msg := FromImage(src)
	if msg.Encoding != "mono8" {
		t.Fatalf("encoding = %q, want mono8", msg.Encoding)
	}
	if msg.Width != 3 || msg.Height != 2 || msg.Step != 3 {
		t.Fatalf("dimensions = %dx%d step %d, want 3x2 step 3", msg.Width, msg.Height, msg.Step)
	}
	if !bytes.Equal(msg.Data, src.Pix) {
		t.Errorf("data = % x, want % x", msg.Data, src.Pix)
	}
}

func TestFromImageGray16RoundTrip(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 2, 1))
	src.SetGray16(0, 0, color.Gray16{Y: 0xabcd})
	src.SetGray16(1, 0, color.Gray16{Y: 0x0102})

	msg := FromImage(src)
	if msg.Encoding != "mono16" {
		t.Fatalf("encoding = %q, want mono16", msg.Encoding)
	}
	if msg.IsBigendian != 1 {
		t.Error("mono16 from Gray16 should be flagged big-endian")
	}

	back, err := ToImage(msg)
	if err != nil {
		t.Fatalf("ToImage error: %v", err)
	}
	if got := back.(*image.Gray16).Gray16At(0, 0).Y; got != 0xabcd {
		t.Errorf("round trip pixel (0,0) = %#04x, want 0xabcd", got)
	}
}

func TestFromImageNormalizesToRGBA8(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 200})

	msg := FromImage(src)
	if msg.Encoding != "rgba8" {
		t.Fatalf("encoding = %q, want rgba8", msg.Encoding)
	}

	off := 1 * 4
	got := [4]byte{msg.Data[off], msg.Data[off+1], msg.Data[off+2], msg.Data[off+3]}
	if got != [4]byte{1, 2, 3, 200} {
		t.Errorf("pixel (1,0) = %v, want [1 2 3 200]", got)
	}
}

func TestFromImageSubimageBounds(t *testing.T) {
	// A source whose bounds do not start at the origin converts by content,
	// not by coordinates.
	base := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	base.SetNRGBA(2, 2, color.NRGBA{R: 9, A: 255})
	sub := base.SubImage(image.Rect(2, 2, 4, 4)).(*image.NRGBA)

	msg := FromImage(sub)
	if msg.Width != 2 || msg.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", msg.Width, msg.Height)
	}
	if msg.Data[0] != 9 {
		t.Errorf("first pixel red = %d, want 9", msg.Data[0])
	}
}
