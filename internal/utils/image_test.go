package utils

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// Byte awal file asli, cukup untuk deteksi content type
var (
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	pngHeader  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}
	gifHeader  = []byte("GIF87a\x01\x00\x01\x00")
)

func TestEncodeImageJPEG(t *testing.T) {
	dataURL, err := EncodeImage(jpegHeader)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasPrefix(dataURL, "data:image/jpeg;base64,") {
		t.Fatalf("unexpected data URL prefix: %.40s", dataURL)
	}
}

func TestEncodeImagePNG(t *testing.T) {
	dataURL, err := EncodeImage(pngHeader)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasPrefix(dataURL, "data:image/png;base64,") {
		t.Fatalf("unexpected data URL prefix: %.40s", dataURL)
	}
}

func TestEncodeImageRejectsGIF(t *testing.T) {
	if _, err := EncodeImage(gifHeader); !errors.Is(err, ErrImageFormat) {
		t.Fatalf("expected ErrImageFormat, got %v", err)
	}
}

func TestEncodeImageRejectsOversized(t *testing.T) {
	// 2MB berisi header JPEG valid: ukuran harus ditolak duluan
	big := make([]byte, 2*1024*1024)
	copy(big, jpegHeader)
	if _, err := EncodeImage(big); !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}
}

func TestDecodeDataURLRoundTrip(t *testing.T) {
	dataURL, err := EncodeImage(pngHeader)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	mime, data, err := DecodeDataURL(dataURL)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if mime != "image/png" {
		t.Fatalf("expected mime image/png, got %s", mime)
	}
	if !bytes.Equal(data, pngHeader) {
		t.Fatalf("decoded bytes differ from original")
	}
}

func TestDecodeDataURLRejectsPlainString(t *testing.T) {
	if _, _, err := DecodeDataURL("https://example.com/foto.jpg"); err == nil {
		t.Fatalf("expected error for non data URL input")
	}
}

func TestValidateImageDataURL(t *testing.T) {
	valid, err := EncodeImage(jpegHeader)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := ValidateImageDataURL(valid); err != nil {
		t.Fatalf("expected valid data URL to pass, got %v", err)
	}
	if err := ValidateImageDataURL("data:image/gif;base64,R0lGODdh"); err == nil {
		t.Fatalf("expected gif data URL to be rejected")
	}
}
