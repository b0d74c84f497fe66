package utils

import (
	"encoding/base64"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Batas ukuran file gambar yang diterima (sebelum encoding)
const MaxImageBytes = 1024 * 1024

var (
	ErrImageTooLarge = errors.New("ukuran file maksimal 1MB")
	ErrImageFormat   = errors.New("format file harus JPG, JPEG, atau PNG")
)

var allowedImageMimes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// EncodeImage memeriksa ukuran dan format, lalu mengubah bytes gambar
// menjadi data URL base64 yang bisa langsung disimpan dan disisipkan ke PDF.
func EncodeImage(data []byte) (string, error) {
	if len(data) > MaxImageBytes {
		return "", ErrImageTooLarge
	}

	mime := http.DetectContentType(data)
	if !allowedImageMimes[mime] {
		return "", ErrImageFormat
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// FileToDataURL membaca file upload multipart dan mengembalikan data URL.
// Pengecekan ukuran dilakukan sebelum file dibaca sama sekali.
func FileToDataURL(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxImageBytes {
		return "", ErrImageTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	return EncodeImage(data)
}

// DecodeDataURL membongkar data URL menjadi mime type dan bytes mentah.
func DecodeDataURL(dataURL string) (string, []byte, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", nil, errors.New("bukan data URL")
	}

	rest := strings.TrimPrefix(dataURL, "data:")
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, errors.New("data URL tidak berformat base64")
	}

	mime := rest[:sep]
	data, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return "", nil, err
	}

	return mime, data, nil
}

// ValidateImageDataURL memastikan data URL kiriman klien (foto absensi,
// tanda tangan) tetap memenuhi batas ukuran dan format yang sama dengan upload.
func ValidateImageDataURL(dataURL string) error {
	mime, data, err := DecodeDataURL(dataURL)
	if err != nil {
		return ErrImageFormat
	}
	if !allowedImageMimes[mime] {
		return ErrImageFormat
	}
	if len(data) > MaxImageBytes {
		return ErrImageTooLarge
	}
	return nil
}
