/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package signage

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// BuildRoomsOutput formats the room assignments of a layout into aligned
// plain text, one table per tournament.
func BuildRoomsOutput(layout *ChangingRoomLayout) string {
	var sb strings.Builder

	if len(layout.Entries) == 0 {
		return "No tournaments found\n"
	}

	for _, entry := range layout.Entries {
		type row struct{ room, team, count, util string }
		var rows []row
		for _, room := range entry.Rooms {
			r := row{
				room: fmt.Sprintf("%v", room.ID+1),
				util: fmt.Sprintf("%v", room.Utilization()),
			}
			if len(room.Groups) == 0 {
				rows = append(rows, r)
				continue
			}
			for idx, g := range room.Groups {
				if idx > 0 {
					r = row{}
				}
				r.team = g.BaseName
				r.count = fmt.Sprintf("%v", g.Count)
				rows = append(rows, r)
			}
		}

		// Compute column widths
		// (fmt pads by runes, so widths are counted in runes too)
		maxR, maxT, maxC := len("Room"), len("Team"), len("Count")
		for _, r := range rows {
			if l := utf8.RuneCountInString(r.room); l > maxR {
				maxR = l
			}
			if l := utf8.RuneCountInString(r.team); l > maxT {
				maxT = l
			}
			if l := utf8.RuneCountInString(r.count); l > maxC {
				maxC = l
			}
		}

		sb.WriteString(fmt.Sprintf("%s (%s)\n", entry.TournamentName, entry.Date))
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %s\n", maxR, "Room", maxT,
			"Team", maxC, "Count", "Total"))
		for _, r := range rows {
			line := fmt.Sprintf("%-*s  %-*s  %-*s  %s", maxR, r.room, maxT,
				r.team, maxC, r.count, r.util)
			sb.WriteString(strings.TrimRight(line, " "))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
