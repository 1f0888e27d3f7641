/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package generator

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mikeb26/turnierplan-signage/config"
	"github.com/mikeb26/turnierplan-signage/render"
	"github.com/mikeb26/turnierplan-signage/signage"
)

const QrCodesName = "QrCodes"

// QrCodes prints a card per tournament with a code linking to its public
// page on the instance.
type QrCodes struct {
	Options     config.QrCodesOptions
	InstanceURL string
	Location    *time.Location
}

func (g *QrCodes) Name() string {
	return QrCodesName
}

func (g *QrCodes) Validate() error {
	if strings.TrimSpace(g.Options.FolderID) == "" {
		return &signage.ConfigError{Field: "folder_id", Reason: "is not specified"}
	}
	if err := g.layoutOptions().Validate(); err != nil {
		return err
	}
	if g.Options.LogoImageFile != "" {
		if _, err := os.Stat(g.Options.LogoImageFile); err != nil {
			return &signage.ConfigError{
				Field:  "logo_image_file",
				Reason: "cannot be read",
				Err:    err,
			}
		}
	}
	return nil
}

func (g *QrCodes) layoutOptions() signage.QrCodeOptions {
	return signage.QrCodeOptions{
		InstanceURL: g.InstanceURL,
		Text:        g.Options.Text,
		RowCapacity: g.Options.RowCapacity,
		Location:    g.Location,
	}
}

func (g *QrCodes) Generate(ctx context.Context,
	src TournamentSource) ([]render.Document, error) {

	if err := g.Validate(); err != nil {
		return nil, err
	}

	tournaments, err := src.GetAllTournamentsWithDetails(ctx,
		g.Options.FolderID, nil)
	if err != nil {
		return nil, err
	}
	log.Printf("generator.qrcodes: loaded %v tournaments", len(tournaments))

	layout, err := signage.BuildQrCodeLayout(tournaments, g.layoutOptions())
	if err != nil {
		return nil, err
	}
	component, err := render.QrCodeDocument(layout, render.QrCodeOptions{
		LogoImageFile: g.Options.LogoImageFile,
		Size:          g.Options.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to build qr code document: %w", err)
	}
	doc, err := render.RenderDocument(ctx, g.Name(), 1, component)
	if err != nil {
		return nil, err
	}

	return []render.Document{doc}, nil
}
