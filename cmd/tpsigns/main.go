/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mikeb26/turnierplan-signage/config"
	"github.com/mikeb26/turnierplan-signage/generator"
	"github.com/mikeb26/turnierplan-signage/publish"
	"github.com/mikeb26/turnierplan-signage/signage"
	"github.com/mikeb26/turnierplan-signage/turnierplan"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":          handleHelp,
	"run":           handleRun,
	"changingrooms": handleChangingRooms,
	"qrcodes":       handleQrCodes,
	"preview":       handlePreview,
	"list":          handleList,
}

func init() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

// env is what every command needs: the loaded configuration, the zone dates
// are printed in and a client for the instance.
type env struct {
	cfg    *config.Config
	loc    *time.Location
	client *turnierplan.Client
}

func loadEnv(ctx context.Context, configPath string) *env {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if err := cfg.ValidateAdapter(); err != nil {
		log.Fatalf("%v; provide it via %v, environment variable or .env file",
			err, configPath)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("%v", err)
	}

	client, err := turnierplan.NewClient(ctx, turnierplan.ClientOptions{
		InstanceURL:  cfg.Adapter.InstanceURL,
		APIKey:       cfg.Adapter.APIKey,
		APIKeySecret: cfg.Adapter.APIKeySecret,
		CacheBucket:  cfg.Cache.Bucket,
		CacheMaxAge:  cfg.Cache.MaxAge,
	})
	if err != nil {
		log.Fatalf("Error creating turnierplan client: %v", err)
	}
	log.Printf("tpsigns: adapter configuration has been read successfully")

	return &env{cfg: cfg, loc: loc, client: client}
}

func parseFlags(name string, args []string, withOut bool) (string, string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	configPath := fs.String("config", config.DefaultPath, "Configuration file")
	var out *string
	if withOut {
		out = fs.String("out", "", "Override the output directory")
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if out == nil {
		return *configPath, ""
	}
	return *configPath, *out
}

func execute(ctx context.Context, e *env, outDir string,
	entries []generator.Entry) {

	if outDir != "" {
		e.cfg.Output.Directory = outDir
	}
	sinks, err := publish.NewSinks(ctx, e.cfg.Output)
	if err != nil {
		log.Fatalf("Error setting up output: %v", err)
	}

	run := generator.NewRun(sinks...)
	if err := run.Execute(ctx, e.client, entries); err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Printf("Output written to %v\n", publish.RunFolder(run.Timestamp))
}

func handleRun(ctx context.Context, args []string) {
	configPath, _ := parseFlags("run", args, false)
	e := loadEnv(ctx, configPath)

	execute(ctx, e, "", generator.Entries(e.cfg, e.loc))
}

// handleChangingRooms and handleQrCodes run a single generator whether or
// not it is enabled in the configuration.
func handleChangingRooms(ctx context.Context, args []string) {
	configPath, outDir := parseFlags("changingrooms", args, true)
	e := loadEnv(ctx, configPath)

	entries := generator.Entries(e.cfg, e.loc)
	execute(ctx, e, outDir, []generator.Entry{
		{Generator: entries[0].Generator, Enabled: true},
	})
}

func handleQrCodes(ctx context.Context, args []string) {
	configPath, outDir := parseFlags("qrcodes", args, true)
	e := loadEnv(ctx, configPath)

	entries := generator.Entries(e.cfg, e.loc)
	execute(ctx, e, outDir, []generator.Entry{
		{Generator: entries[1].Generator, Enabled: true},
	})
}

func handlePreview(ctx context.Context, args []string) {
	configPath, _ := parseFlags("preview", args, false)
	e := loadEnv(ctx, configPath)

	g := &generator.ChangingRoomSigns{
		Options:  e.cfg.Generators.ChangingRoomSigns.Options,
		Location: e.loc,
	}
	layout, err := g.Layout(ctx, e.client)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Print(signage.BuildRoomsOutput(layout))
}

func handleList(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	configPath := fs.String("config", config.DefaultPath, "Configuration file")
	folderID := fs.String("folder", "", "Folder to list")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	e := loadEnv(ctx, *configPath)

	if *folderID == "" {
		*folderID = e.cfg.Generators.ChangingRoomSigns.Options.FolderID
	}
	if *folderID == "" {
		fmt.Fprintln(os.Stderr, "Please provide a --folder ID.")
		fs.Usage()
		os.Exit(1)
	}

	headers, err := e.client.GetTournaments(ctx, *folderID)
	if err != nil {
		log.Fatalf("Error fetching tournaments: %v", err)
	}
	if len(headers) == 0 {
		fmt.Printf("No tournaments found in folder %v.\n", *folderID)
		return
	}
	for _, h := range headers {
		fmt.Printf("  - %s (TournamentID:%s)\n", h.Name, h.ID)
	}
	fmt.Printf("\nAdd TournamentIDs to skip_tournament_ids in %v to leave them off the signs\n",
		*configPath)
}
