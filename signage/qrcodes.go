/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package signage

import (
	"net/url"
	"strings"
	"time"

	"github.com/mikeb26/turnierplan-signage/turnierplan"
)

type QrCodeOptions struct {
	InstanceURL string
	// Text is printed once above the grid when non-empty.
	Text        string
	RowCapacity int
	Location    *time.Location
}

func (o QrCodeOptions) Validate() error {
	if strings.TrimSpace(o.InstanceURL) == "" {
		return &ConfigError{Field: "instance_url", Reason: "is not specified"}
	}
	u, err := url.Parse(o.InstanceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ConfigError{
			Field:  "instance_url",
			Reason: "must be an absolute url",
			Err:    err,
		}
	}
	return nil
}

// QrCard is the card for one tournament; URL is what the code encodes.
type QrCard struct {
	TournamentID   string
	TournamentName string
	Date           string
	URL            string
}

type QrCodeLayout struct {
	Text string
	Grid Grid[QrCard]
}

// BuildQrCodeLayout lays out one card per tournament, ordered by name, in a
// single section.
func BuildQrCodeLayout(tournaments []turnierplan.Tournament,
	opts QrCodeOptions) (*QrCodeLayout, error) {

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	sorted := append([]turnierplan.Tournament(nil), tournaments...)
	turnierplan.SortByName(sorted)

	cards := make([]QrCard, 0, len(sorted))
	for _, t := range sorted {
		date, err := TournamentDate(t, opts.Location)
		if err != nil {
			return nil, err
		}
		cards = append(cards, QrCard{
			TournamentID:   t.ID,
			TournamentName: t.Name,
			Date:           date,
			URL:            DeepLink(opts.InstanceURL, t.ID),
		})
	}

	return &QrCodeLayout{
		Text: opts.Text,
		Grid: Paginate([][]QrCard{cards}, GridOptions{RowCapacity: opts.RowCapacity}),
	}, nil
}
