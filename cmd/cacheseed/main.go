/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mikeb26/turnierplan-signage/config"
	"github.com/mikeb26/turnierplan-signage/turnierplan"
)

// this program exists just to seed the S3 response cache ahead of event day
// so that the signage runs on site do not depend on the instance being
// reachable quickly

func main() {
	configPath := flag.String("config", config.DefaultPath, "Configuration file")
	pause := flag.Duration("pause", time.Second,
		"Pause between requests to the instance")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if err := cfg.ValidateAdapter(); err != nil {
		log.Fatalf("%v", err)
	}
	if cfg.Cache.Bucket == "" || cfg.Cache.MaxAge <= 0 {
		fmt.Fprintln(os.Stderr, "cache.bucket and cache.max_age must be set to seed the cache.")
		os.Exit(1)
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

	seen := make(map[string]bool)
	for _, folderID := range []string{
		cfg.Generators.ChangingRoomSigns.Options.FolderID,
		cfg.Generators.QrCodes.Options.FolderID,
	} {
		if folderID == "" || seen[folderID] {
			continue
		}
		seen[folderID] = true

		headers, err := client.GetTournaments(ctx, folderID)
		if err != nil {
			// best effort
			log.Printf("cacheseed: skipping folder %v: %v", folderID, err)
			continue
		}
		for _, h := range headers {
			_, err := client.GetTournament(ctx, h.ID)
			time.Sleep(*pause) // avoid pegging the instance
			if err != nil {
				// best effort
				continue
			}

			fmt.Printf("seeded %v (id:%v)\n", h.Name, h.ID)
		}
	}
}
