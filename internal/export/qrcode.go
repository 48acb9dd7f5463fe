package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultQRSize is the side of a generated QR code in pixels.
const DefaultQRSize = 256

// ErrEmptyAddress is returned when asked to encode an empty address.
var ErrEmptyAddress = errors.New("address is empty")

// WriteAddressQR writes a PNG QR code of address to w.
func WriteAddressQR(w io.Writer, address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrEmptyAddress
	}

	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("encode qr code: %w", err)
	}

	png, err := qr.PNG(DefaultQRSize)
	if err != nil {
		return fmt.Errorf("render qr code: %w", err)
	}

	_, err = w.Write(png)
	return err
}

// ExportAddressQR writes a PNG QR code of address to filename, defaulting
// to "<address>.png".
func ExportAddressQR(address, filename string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		filename = strings.TrimSpace(address) + ".png"
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}

	if err := WriteAddressQR(f, address); err != nil {
		return "", errors.Join(err, f.Close(), os.Remove(filename))
	}

	return filename, f.Close()
}
