/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package turnierplan

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mikeb26/turnierplan-signage/internal"
)

// vended by {instance}/api/tournaments?folderId=<folderId>
// TournamentHeader is the summary returned when listing a folder.
type TournamentHeader struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FolderID   string `json:"folderId"`
	FolderName string `json:"folderName"`
	IsPublic   bool   `json:"isPublic"`
}

// vended by {instance}/api/tournaments/<tournamentId>
// Tournament is a single tournament with its teams and matches.
type Tournament struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Teams   []Team  `json:"teams"`
	Matches []Match `json:"matches"`
}

// Team is one registered team. Name is kept exactly as received.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Match carries the optional kickoff; matches that are not yet scheduled have
// a nil Kickoff.
type Match struct {
	ID      int        `json:"id"`
	Kickoff *time.Time `json:"kickoff"`
}

// Custom unmarshaller to handle non-RFC3339 timestamps, "null", and empty strings.
func (m *Match) UnmarshalJSON(data []byte) error {
	type Alias Match
	aux := &struct {
		Kickoff *string `json:"kickoff"`
		*Alias
	}{
		Alias: (*Alias)(m),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("Match unmarshal: %w", err)
	}

	m.Kickoff = nil
	if aux.Kickoff == nil {
		return nil
	}
	kickoff, err := internal.ParseDateOrNil(*aux.Kickoff)
	if err != nil {
		return fmt.Errorf("parsing Match.Kickoff: %w", err)
	}
	m.Kickoff = kickoff

	return nil
}

// EarliestKickoff returns the first scheduled kickoff of the tournament, or
// false when no match has one.
func (t Tournament) EarliestKickoff() (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, m := range t.Matches {
		if m.Kickoff == nil {
			continue
		}
		if !found || m.Kickoff.Before(earliest) {
			earliest = *m.Kickoff
			found = true
		}
	}

	return earliest, found
}
