package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func TestProcessJPEG(t *testing.T) {
	data := createTestJPEG(100, 100)
	layout, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process JPEG: %v", err)
	}
	if layout.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", layout.MIME)
	}
	if len(layout.Data) == 0 {
		t.Error("expected non-empty data")
	}
	if layout.Width != 100 || layout.Height != 100 {
		t.Errorf("expected 100x100, got %dx%d", layout.Width, layout.Height)
	}
}

func TestProcessPNG(t *testing.T) {
	data := createTestPNG(100, 100)
	layout, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process PNG: %v", err)
	}
	if layout.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg (always outputs JPEG), got %s", layout.MIME)
	}
}

func TestProcessDownscale(t *testing.T) {
	data := createTestJPEG(2048, 2048)
	layout, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process large image: %v", err)
	}

	if layout.Width > MaxDimension || layout.Height > MaxDimension {
		t.Errorf("expected max %dx%d, got %dx%d", MaxDimension, MaxDimension, layout.Width, layout.Height)
	}

	// The reported dimensions must match the encoded bytes, since the
	// client derives marker bounds from them.
	img, _, err := image.Decode(bytes.NewReader(layout.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != layout.Width || bounds.Dy() != layout.Height {
		t.Errorf("reported %dx%d but encoded %dx%d", layout.Width, layout.Height, bounds.Dx(), bounds.Dy())
	}
}

func TestProcessSmallImageNotUpscaled(t *testing.T) {
	data := createTestJPEG(50, 50)
	layout, err := Process(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Process small image: %v", err)
	}
	if layout.Width != 50 || layout.Height != 50 {
		t.Errorf("small image should not be resized: got %dx%d", layout.Width, layout.Height)
	}
}

func TestProcessInvalidFormat(t *testing.T) {
	_, err := Process(bytes.NewReader([]byte("not an image")))
	if err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestProcessGIFRejected(t *testing.T) {
	// GIF magic bytes.
	_, err := Process(bytes.NewReader([]byte("GIF89a...")))
	if err == nil {
		t.Error("expected error for GIF")
	}
}

func TestDimensions(t *testing.T) {
	data := createTestPNG(320, 240)
	w, h, err := Dimensions(data)
	if err != nil {
		t.Fatalf("Dimensions: %v", err)
	}
	if w != 320 || h != 240 {
		t.Errorf("expected 320x240, got %dx%d", w, h)
	}

	if _, _, err := Dimensions([]byte("garbage")); err == nil {
		t.Error("expected error for non-image data")
	}
}
