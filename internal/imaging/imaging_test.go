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

func TestThumbnailJPEG(t *testing.T) {
	data := createTestJPEG(100, 100)
	result, err := Thumbnail(bytes.NewReader(data), ThumbDimension)
	if err != nil {
		t.Fatalf("Thumbnail JPEG: %v", err)
	}
	if len(result) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestThumbnailPNGOutputsJPEG(t *testing.T) {
	data := createTestPNG(100, 100)
	result, err := Thumbnail(bytes.NewReader(data), ThumbDimension)
	if err != nil {
		t.Fatalf("Thumbnail PNG: %v", err)
	}

	if _, format, err := image.Decode(bytes.NewReader(result)); err != nil || format != "jpeg" {
		t.Errorf("expected jpeg output, got format %q, err %v", format, err)
	}
}

func TestThumbnailDownscale(t *testing.T) {
	data := createTestJPEG(2048, 1024)
	result, err := Thumbnail(bytes.NewReader(data), ThumbDimension)
	if err != nil {
		t.Fatalf("Thumbnail large image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > ThumbDimension || bounds.Dy() > ThumbDimension {
		t.Errorf("expected max %dx%d, got %dx%d", ThumbDimension, ThumbDimension, bounds.Dx(), bounds.Dy())
	}
}

func TestThumbnailSmallImageNotUpscaled(t *testing.T) {
	data := createTestJPEG(50, 50)
	result, err := Thumbnail(bytes.NewReader(data), ThumbDimension)
	if err != nil {
		t.Fatalf("Thumbnail small image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("small image should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestThumbnailInvalidFormat(t *testing.T) {
	_, err := Thumbnail(bytes.NewReader([]byte("not an image")), ThumbDimension)
	if err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestThumbnailGIFRejected(t *testing.T) {
	// GIF magic bytes.
	_, err := Thumbnail(bytes.NewReader([]byte("GIF89a...")), ThumbDimension)
	if err == nil {
		t.Error("expected error for GIF")
	}
}
