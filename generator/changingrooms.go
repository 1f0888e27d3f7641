/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package generator

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/mikeb26/turnierplan-signage/config"
	"github.com/mikeb26/turnierplan-signage/render"
	"github.com/mikeb26/turnierplan-signage/signage"
)

const ChangingRoomSignsName = "ChangingRoomSigns"

// ChangingRoomSigns prints one sign per changing room listing, for every
// tournament, the teams that change there.
type ChangingRoomSigns struct {
	Options  config.ChangingRoomSignsOptions
	Location *time.Location
}

func (g *ChangingRoomSigns) Name() string {
	return ChangingRoomSignsName
}

// Validate checks the options in the order they are reported to the user:
// folder, room count, formats, then the home team pattern.
func (g *ChangingRoomSigns) Validate() error {
	_, err := g.layoutOptions()
	return err
}

func (g *ChangingRoomSigns) layoutOptions() (signage.ChangingRoomOptions, error) {
	if strings.TrimSpace(g.Options.FolderID) == "" {
		return signage.ChangingRoomOptions{},
			&signage.ConfigError{Field: "folder_id", Reason: "is not specified"}
	}

	opts := signage.ChangingRoomOptions{
		NumberOfChangingRooms: g.Options.NumberOfChangingRooms,
		TitleFormat:           g.Options.TitleFormat,
		TeamCountFormat:       g.Options.TeamCountFormat,
		RowCapacity:           g.Options.RowCapacity,
		Location:              g.Location,
	}
	if err := opts.Validate(); err != nil {
		return signage.ChangingRoomOptions{}, err
	}
	pattern, err := signage.CompileHomeTeamPattern(g.Options.HomeTeamNamePattern)
	if err != nil {
		return signage.ChangingRoomOptions{}, err
	}
	opts.HomeTeamPattern = pattern

	return opts, nil
}

// Layout validates the options, fetches the folder and computes the room
// assignments without rendering them.
func (g *ChangingRoomSigns) Layout(ctx context.Context,
	src TournamentSource) (*signage.ChangingRoomLayout, error) {

	opts, err := g.layoutOptions()
	if err != nil {
		return nil, err
	}

	tournaments, err := src.GetAllTournamentsWithDetails(ctx,
		g.Options.FolderID, g.Options.SkipTournamentIDs)
	if err != nil {
		return nil, err
	}
	log.Printf("generator.changingrooms: loaded %v tournaments", len(tournaments))

	return signage.BuildChangingRoomLayout(tournaments, opts)
}

func (g *ChangingRoomSigns) Generate(ctx context.Context,
	src TournamentSource) ([]render.Document, error) {

	layout, err := g.Layout(ctx, src)
	if err != nil {
		return nil, err
	}
	doc, err := render.RenderDocument(ctx, g.Name(), 1,
		render.ChangingRoomDocument(layout))
	if err != nil {
		return nil, err
	}

	return []render.Document{doc}, nil
}
