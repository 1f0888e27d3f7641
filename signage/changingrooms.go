/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package signage

import (
	"regexp"
	"time"

	"github.com/mikeb26/turnierplan-signage/internal"
	"github.com/mikeb26/turnierplan-signage/turnierplan"
)

type ChangingRoomOptions struct {
	NumberOfChangingRooms int
	HomeTeamPattern       *regexp.Regexp
	TitleFormat           string
	TeamCountFormat       string
	RowCapacity           int
	Location              *time.Location
}

func (o ChangingRoomOptions) Validate() error {
	if o.NumberOfChangingRooms <= 0 {
		return &ConfigError{
			Field:  "number_of_changing_rooms",
			Reason: "is not specified or less than 1",
		}
	}
	if err := ValidateFormat("title_format", o.TitleFormat,
		internal.TitleFormatPlaceholder); err != nil {
		return err
	}
	return ValidateFormat("team_count_format", o.TeamCountFormat,
		internal.TeamCountFormatPlaceholder)
}

// LayoutEntry is one tournament with its rooms filled in.
type LayoutEntry struct {
	TournamentID   string
	TournamentName string
	Date           string
	Rooms          []Room
}

// PanelTeam is one line of a room panel. CountText is empty for single teams.
type PanelTeam struct {
	Name      string
	Count     int
	CountText string
}

// RoomPanel is the card for one tournament on one changing room's sign.
type RoomPanel struct {
	TournamentName string
	Date           string
	Teams          []PanelTeam
}

type ChangingRoomLayout struct {
	Entries []LayoutEntry
	// Titles[z] is the heading of section z (changing room z).
	Titles []string
	Grid   Grid[RoomPanel]
}

// BuildChangingRoomLayout assigns every tournament's teams to rooms and lays
// out one section per changing room, each listing all tournaments.
func BuildChangingRoomLayout(tournaments []turnierplan.Tournament,
	opts ChangingRoomOptions) (*ChangingRoomLayout, error) {

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	layout := &ChangingRoomLayout{
		Entries: make([]LayoutEntry, 0, len(tournaments)),
	}
	for _, t := range tournaments {
		date, err := TournamentDate(t, opts.Location)
		if err != nil {
			return nil, err
		}
		groups := GroupTeams(t.Teams, opts.HomeTeamPattern)
		layout.Entries = append(layout.Entries, LayoutEntry{
			TournamentID:   t.ID,
			TournamentName: t.Name,
			Date:           date,
			Rooms:          BalanceRooms(opts.NumberOfChangingRooms, groups),
		})
	}

	sections := make([][]RoomPanel, opts.NumberOfChangingRooms)
	for z := range sections {
		layout.Titles = append(layout.Titles, FormatTitle(opts.TitleFormat, z))
		for _, entry := range layout.Entries {
			sections[z] = append(sections[z],
				buildPanel(entry, entry.Rooms[z], opts.TeamCountFormat))
		}
	}
	layout.Grid = Paginate(sections, GridOptions{
		RowCapacity:          opts.RowCapacity,
		BreakBetweenSections: true,
	})

	return layout, nil
}

func buildPanel(entry LayoutEntry, room Room, teamCountFormat string) RoomPanel {
	panel := RoomPanel{
		TournamentName: entry.TournamentName,
		Date:           entry.Date,
	}
	for _, g := range room.Groups {
		pt := PanelTeam{Name: g.BaseName, Count: g.Count}
		if g.Count > 1 {
			pt.CountText = FormatTeamCount(teamCountFormat, g.Count)
		}
		panel.Teams = append(panel.Teams, pt)
	}

	return panel
}
