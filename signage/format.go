/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package signage

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mikeb26/turnierplan-signage/internal"
	"github.com/mikeb26/turnierplan-signage/turnierplan"
)

// TournamentDate is the earliest kickoff of t in loc, formatted for print.
// A tournament without any kickoff is an error; no date is made up.
func TournamentDate(t turnierplan.Tournament, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.Local
	}
	kickoff, ok := t.EarliestKickoff()
	if !ok {
		return "", fmt.Errorf("%w: %v (id:%v)", ErrNoKickoff, t.Name, t.ID)
	}

	return kickoff.In(loc).Format(internal.DisplayDateLayout), nil
}

// ValidateFormat checks that a display format is set and contains placeholder.
func ValidateFormat(field string, format string, placeholder string) error {
	if strings.TrimSpace(format) == "" {
		return &ConfigError{Field: field, Reason: "is not specified"}
	}
	if !strings.Contains(format, placeholder) {
		return &ConfigError{
			Field:  field,
			Reason: fmt.Sprintf("does not contain the placeholder '%v'", placeholder),
		}
	}
	return nil
}

// FormatTitle renders a changing room title; room ids are printed 1-based.
func FormatTitle(format string, roomID int) string {
	return strings.ReplaceAll(format, internal.TitleFormatPlaceholder,
		strconv.Itoa(roomID+1))
}

func FormatTeamCount(format string, count int) string {
	return strings.ReplaceAll(format, internal.TeamCountFormatPlaceholder,
		strconv.Itoa(count))
}

// DeepLink is the public page of a tournament on the instance.
func DeepLink(instanceURL string, tournamentID string) string {
	return strings.TrimRight(instanceURL, "/") + "/tournament?id=" +
		url.QueryEscape(tournamentID)
}
