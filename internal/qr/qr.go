// Package qr renders the scannable codes that link a physical shirt to its
// public product page.
package qr

import (
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Size is the default pixel size of generated codes.
const Size = 256

// ProductURL builds the public product URL for a code, the same URL the
// product page itself lives at, so scanning round-trips into the resolution
// flow.
func ProductURL(origin, code string) string {
	return fmt.Sprintf("%s/producto/%s", strings.TrimRight(origin, "/"), url.PathEscape(code))
}

// PNG encodes content as a QR code PNG of the given pixel size.
// Uses the highest error correction level so codes survive print damage.
func PNG(content string, size int) ([]byte, error) {
	data, err := qrcode.Encode(content, qrcode.High, size)
	if err != nil {
		return nil, fmt.Errorf("encoding QR code: %w", err)
	}
	return data, nil
}
