// Package qr turns a restaurant's public URL into an embeddable image.
// Everything here is a pure function of (protocol, host, slug).
package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// PublicURL builds the canonical public menu URL for a slug.
func PublicURL(protocol, host, slug string) string {
	return fmt.Sprintf("%s://%s/menu/%s", protocol, host, slug)
}

// DataURL encodes url as a PNG QR code and returns it as a data URI
// suitable for an <img> src attribute.
func DataURL(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
