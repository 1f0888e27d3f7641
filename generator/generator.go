/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package generator

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikeb26/turnierplan-signage/config"
	"github.com/mikeb26/turnierplan-signage/publish"
	"github.com/mikeb26/turnierplan-signage/render"
	"github.com/mikeb26/turnierplan-signage/turnierplan"
)

// TournamentSource is where generators get their tournaments from;
// *turnierplan.Client implements it.
type TournamentSource interface {
	GetTournaments(ctx context.Context,
		folderID string) ([]turnierplan.TournamentHeader, error)
	GetAllTournamentsWithDetails(ctx context.Context, folderID string,
		skipIDs []string) ([]turnierplan.Tournament, error)
}

// Generator turns the tournaments of a folder into printable documents.
// Validate is always called before anything is fetched.
type Generator interface {
	Name() string
	Validate() error
	Generate(ctx context.Context, src TournamentSource) ([]render.Document, error)
}

// Entry is a configured generator and whether it should run.
type Entry struct {
	Generator Generator
	Enabled   bool
}

// Run executes generators against one source. All documents of a run are
// published under the same Timestamp.
type Run struct {
	Timestamp time.Time
	Sinks     []publish.Sink
}

func NewRun(sinks ...publish.Sink) *Run {
	return &Run{
		Timestamp: time.Now().UTC(),
		Sinks:     sinks,
	}
}

// Execute runs every enabled generator in order. The options of all enabled
// generators are validated before anything is fetched. A generator that
// fails stops the run; documents of generators that already completed have
// been published at that point, but nothing of the failing one is.
func (run *Run) Execute(ctx context.Context, src TournamentSource,
	entries []Entry) error {

	var enabled []Generator
	for _, e := range entries {
		if !e.Enabled {
			log.Printf("generator.run: %v is not enabled by configuration and will be skipped",
				e.Generator.Name())
			continue
		}
		if err := e.Generator.Validate(); err != nil {
			return fmt.Errorf("%v: %w", e.Generator.Name(), err)
		}
		enabled = append(enabled, e.Generator)
	}

	for _, g := range enabled {
		log.Printf("generator.run: running %v", g.Name())
		docs, err := g.Generate(ctx, src)
		if err != nil {
			return fmt.Errorf("%v failed: %w", g.Name(), err)
		}
		if err := run.publish(ctx, docs); err != nil {
			return fmt.Errorf("unable to publish %v output: %w", g.Name(), err)
		}
	}

	return nil
}

func (run *Run) publish(ctx context.Context, docs []render.Document) error {
	for _, sink := range run.Sinks {
		if err := sink.Publish(ctx, run.Timestamp, docs); err != nil {
			return fmt.Errorf("%v: %w", sink.Name(), err)
		}
	}
	return nil
}

// Entries builds the generators configured in cfg, in the order they run.
func Entries(cfg *config.Config, loc *time.Location) []Entry {
	crs := cfg.Generators.ChangingRoomSigns
	qr := cfg.Generators.QrCodes

	return []Entry{
		{
			Generator: &ChangingRoomSigns{Options: crs.Options, Location: loc},
			Enabled:   crs.Enabled,
		},
		{
			Generator: &QrCodes{
				Options:     qr.Options,
				InstanceURL: cfg.Adapter.InstanceURL,
				Location:    loc,
			},
			Enabled: qr.Enabled,
		},
	}
}
