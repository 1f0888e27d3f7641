/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mikeb26/turnierplan-signage/signage"
	"github.com/mikeb26/turnierplan-signage/turnierplan"
	qrcode "github.com/skip2/go-qrcode"
)

func testTournaments(names ...string) []turnierplan.Tournament {
	kickoff := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	var out []turnierplan.Tournament
	for i, name := range names {
		out = append(out, turnierplan.Tournament{
			ID:   fmt.Sprintf("t%v", i+1),
			Name: name,
			Teams: []turnierplan.Team{
				{ID: 1, Name: "FC Home 1"},
				{ID: 2, Name: "FC Home 2"},
				{ID: 3, Name: "SV Guest"},
			},
			Matches: []turnierplan.Match{{ID: 1, Kickoff: &kickoff}},
		})
	}
	return out
}

func parse(t *testing.T, doc Document) *goquery.Document {
	t.Helper()
	if doc.ContentType != ContentTypeHTML {
		t.Errorf("content type = %q", doc.ContentType)
	}
	gq, err := goquery.NewDocumentFromReader(bytes.NewReader(doc.Content))
	if err != nil {
		t.Fatalf("unable to parse rendered document: %v", err)
	}
	return gq
}

func TestChangingRoomDocument(t *testing.T) {
	layout, err := signage.BuildChangingRoomLayout(
		testTournaments("U9 <Cup> & Co", "U11", "U13", "U15"),
		signage.ChangingRoomOptions{
			NumberOfChangingRooms: 2,
			TitleFormat:           "Kabine {{NR}}",
			TeamCountFormat:       "{{COUNT}} Teams",
			RowCapacity:           3,
			Location:              time.UTC,
		})
	if err != nil {
		t.Fatalf("BuildChangingRoomLayout: %v", err)
	}

	doc, err := RenderDocument(context.Background(), "ChangingRoomSigns", 1,
		ChangingRoomDocument(layout))
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	if doc.FileName() != "ChangingRoomSigns-1.html" {
		t.Errorf("file name = %q", doc.FileName())
	}
	gq := parse(t, doc)

	var titles []string
	gq.Find("h1.title").Each(func(_ int, s *goquery.Selection) {
		titles = append(titles, s.Text())
	})
	if strings.Join(titles, "|") != "Kabine 1|Kabine 2" {
		t.Errorf("titles = %v", titles)
	}

	gq.Find("table.grid tr").Each(func(i int, s *goquery.Selection) {
		if n := s.Find("td").Length(); n != 3 {
			t.Errorf("row %v has %v cells; want 3", i, n)
		}
	})
	if n := gq.Find("table.grid tr").Length(); n != 4 {
		t.Errorf("expected 2 rows per room, got %v rows", n)
	}
	if n := gq.Find("td.card.empty").Length(); n != 4 {
		t.Errorf("expected 4 padded cells, got %v", n)
	}
	if n := gq.Find("div.page-break").Length(); n != 1 {
		t.Errorf("expected 1 page break, got %v", n)
	}

	first := gq.Find("section.room").First()
	if name := first.Find(".tournament").First().Text(); name != "U9 <Cup> & Co" {
		t.Errorf("tournament name = %q", name)
	}
	if date := first.Find(".date").First().Text(); date != "14.06.2025 09:00" {
		t.Errorf("date = %q", date)
	}
	if team := first.Find(".team").First().Text(); team != "FC Home" {
		t.Errorf("team = %q", team)
	}
	if count := first.Find(".count").First().Text(); count != "2 Teams" {
		t.Errorf("count = %q", count)
	}
	if n := gq.Find("section.room").Last().Find(".count").Length(); n != 0 {
		t.Errorf("single teams should not print a count, found %v", n)
	}
}

func buildQrLayout(t *testing.T, text string) *signage.QrCodeLayout {
	t.Helper()
	layout, err := signage.BuildQrCodeLayout(testTournaments("U13", "U11"),
		signage.QrCodeOptions{
			InstanceURL: "https://turnierplan.example/",
			Text:        text,
			Location:    time.UTC,
		})
	if err != nil {
		t.Fatalf("BuildQrCodeLayout: %v", err)
	}
	return layout
}

func TestQrCodeDocument(t *testing.T) {
	c, err := QrCodeDocument(buildQrLayout(t, "Live results"), QrCodeOptions{})
	if err != nil {
		t.Fatalf("QrCodeDocument: %v", err)
	}
	doc, err := RenderDocument(context.Background(), "QrCodes", 1, c)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	gq := parse(t, doc)

	if intro := gq.Find("p.intro").Text(); intro != "Live results" {
		t.Errorf("intro = %q", intro)
	}
	if n := gq.Find("table.grid tr").First().Find("td").Length(); n != signage.DefaultRowCapacity {
		t.Errorf("row has %v cells", n)
	}
	if n := gq.Find("img.logo").Length(); n != 0 {
		t.Errorf("unexpected logo images: %v", n)
	}

	imgs := gq.Find("img.qr")
	if imgs.Length() != 2 {
		t.Fatalf("expected 2 codes, got %v", imgs.Length())
	}
	src, _ := imgs.First().Attr("src")
	if !strings.HasPrefix(src, "data:image/png;base64,") {
		t.Errorf("src = %.40q", src)
	}
	alt, _ := imgs.First().Attr("alt")
	if alt != "https://turnierplan.example/tournament?id=t2" {
		t.Errorf("first card should be U11, alt = %q", alt)
	}
	href, _ := gq.Find("a.link").First().Attr("href")
	if href != alt {
		t.Errorf("href = %q; want %q", href, alt)
	}
}

func TestQrCodeDocumentLogo(t *testing.T) {
	dir := t.TempDir()
	png, err := qrcode.Encode("logo", qrcode.Low, 64)
	if err != nil {
		t.Fatalf("unable to create logo: %v", err)
	}
	logoPath := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(logoPath, png, 0o644); err != nil {
		t.Fatalf("unable to write logo: %v", err)
	}

	c, err := QrCodeDocument(buildQrLayout(t, ""), QrCodeOptions{
		LogoImageFile: logoPath,
		Size:          128,
	})
	if err != nil {
		t.Fatalf("QrCodeDocument: %v", err)
	}
	doc, err := RenderDocument(context.Background(), "QrCodes", 1, c)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	gq := parse(t, doc)
	if n := gq.Find("p.intro").Length(); n != 0 {
		t.Errorf("empty text should not print an intro")
	}
	logos := gq.Find("header.page-header img.logo")
	if logos.Length() != 2 || logos.Filter(".left").Length() != 1 ||
		logos.Filter(".right").Length() != 1 {
		t.Fatalf("expected a logo in each top corner, got %v", logos.Length())
	}
	if src, _ := logos.First().Attr("src"); !strings.HasPrefix(src, "data:image/png;base64,") {
		t.Errorf("logo src = %.40q", src)
	}

	notImage := filepath.Join(dir, "logo.txt")
	if err := os.WriteFile(notImage, []byte("hello"), 0o644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}
	cases := map[string]string{
		"missing":   filepath.Join(dir, "nope.png"),
		"not image": notImage,
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := QrCodeDocument(buildQrLayout(t, ""),
				QrCodeOptions{LogoImageFile: path})
			if err == nil {
				t.Errorf("expected error for logo %v", path)
			}
		})
	}
}

func TestQrCardOrder(t *testing.T) {
	c, err := QrCodeDocument(buildQrLayout(t, ""), QrCodeOptions{})
	if err != nil {
		t.Fatalf("QrCodeDocument: %v", err)
	}
	doc, err := RenderDocument(context.Background(), "QrCodes", 1, c)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	gq := parse(t, doc)

	var classes []string
	gq.Find("td.card").First().Children().Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		classes = append(classes, class)
	})
	want := "tournament,date,qr-box,link"
	if got := strings.Join(classes, ","); got != want {
		t.Errorf("card children = %v; want %v", got, want)
	}
	if name := gq.Find("td.card").First().Find(".tournament").Text(); name != "U11" {
		t.Errorf("first card name = %q", name)
	}
}
