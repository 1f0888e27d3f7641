/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"
)

const ContentTypeHTML = "text/html; charset=utf-8"

// Document is one rendered output file of a generator run.
type Document struct {
	Generator   string
	Index       int
	ContentType string
	Content     []byte
}

// FileName is the name the document is published under, e.g.
// ChangingRoomSigns-1.html.
func (d Document) FileName() string {
	return fmt.Sprintf("%v-%v.html", d.Generator, d.Index)
}

// RenderDocument renders c into a Document for the given generator.
func RenderDocument(ctx context.Context, generator string, index int,
	c templ.Component) (Document, error) {

	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return Document{}, fmt.Errorf("unable to render %v-%v: %w", generator,
			index, err)
	}

	return Document{
		Generator:   generator,
		Index:       index,
		ContentType: ContentTypeHTML,
		Content:     buf.Bytes(),
	}, nil
}

const pageStyle = `@page { size: A4 landscape; margin: 10mm; }
body { font-family: sans-serif; margin: 0; }
h1 { font-size: 28pt; text-align: center; margin: 0 0 6mm 0; }
table.grid { width: 100%; table-layout: fixed; border-collapse: separate; border-spacing: 4mm; }
td.card { vertical-align: top; border: 1px solid #444; border-radius: 3mm; padding: 3mm; }
td.card.empty { border: none; }
.tournament { font-size: 16pt; font-weight: bold; }
.date { font-size: 11pt; color: #555; margin-bottom: 2mm; }
ul.teams { list-style: none; margin: 0; padding: 0; font-size: 14pt; }
ul.teams .count { font-size: 10pt; color: #555; margin-left: 2mm; }
header.page-header { position: relative; min-height: 27.5mm; margin-bottom: 8mm; }
header.page-header img.logo { position: absolute; top: 0; width: 27.5mm; height: 27.5mm; }
header.page-header img.logo.left { left: 0; }
header.page-header img.logo.right { right: 0; }
p.intro { font-size: 16pt; font-weight: bold; text-align: center; padding: 0 30mm; }
.qr-box { width: 45mm; height: 45mm; margin: 0 auto; }
.qr-box img.qr { width: 100%; height: 100%; }
a.link { font-size: 8pt; word-break: break-all; color: #000; text-decoration: none; }
div.page-break { break-after: page; page-break-after: always; }
`
