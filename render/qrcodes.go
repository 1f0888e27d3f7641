/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package render

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
	"github.com/mikeb26/turnierplan-signage/signage"
	qrcode "github.com/skip2/go-qrcode"
)

const DefaultQrCodeSize = 256

type QrCodeOptions struct {
	// LogoImageFile is printed in both top corners of the page when set.
	LogoImageFile string
	// Size is the edge length of the generated bitmaps in pixels.
	Size int
}

// QrCodeDocument renders a grid of cards, each holding the code for the
// tournament's public page. All bitmaps are encoded up front so that a bad
// logo file or an unencodable url fails before anything is written.
func QrCodeDocument(layout *signage.QrCodeLayout,
	opts QrCodeOptions) (templ.Component, error) {

	size := opts.Size
	if size <= 0 {
		size = DefaultQrCodeSize
	}

	logo := ""
	if opts.LogoImageFile != "" {
		var err error
		logo, err = imageDataURI(opts.LogoImageFile)
		if err != nil {
			return nil, err
		}
	}

	codes := make(map[string]string)
	for _, sec := range layout.Grid.Sections {
		for _, row := range sec.Rows {
			for _, card := range row.Items() {
				if _, ok := codes[card.URL]; ok {
					continue
				}
				uri, err := qrDataURI(card.URL, size)
				if err != nil {
					return nil, err
				}
				codes[card.URL] = uri
			}
		}
	}

	return page("QR codes", qrCodeBody(layout, qrImages{
		Logo:  logo,
		Codes: codes,
	})), nil
}

// qrDataURI encodes content as a PNG data uri.
func qrDataURI(content string, size int) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return "", fmt.Errorf("unable to encode qr code for %v: %w", content, err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func imageDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read logo image: %w", err)
	}
	contentType := http.DetectContentType(data)
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		contentType = "image/svg+xml"
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("logo %v is not an image (%v)", path, contentType)
	}

	return "data:" + contentType + ";base64," +
		base64.StdEncoding.EncodeToString(data), nil
}
