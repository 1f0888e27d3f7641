/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package publish

import (
	"context"

	"github.com/mikeb26/turnierplan-signage/config"
)

// NewSinks builds the sinks enabled in cfg. The local directory sink is
// always first.
func NewSinks(ctx context.Context, cfg config.OutputConfig) ([]Sink, error) {
	sinks := []Sink{NewLocalSink(cfg.Directory)}

	if cfg.S3.Bucket != "" {
		s3Sink, err := NewS3Sink(ctx, S3SinkOptions{
			Bucket:          cfg.S3.Bucket,
			Prefix:          cfg.S3.Prefix,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			PublicBaseURL:   cfg.S3.PublicBaseURL,
		})
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s3Sink)
	}

	if cfg.Discord.ChannelID != "" {
		discordSink, err := NewDiscordSink(cfg.Discord.BotToken,
			cfg.Discord.ChannelID)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, discordSink)
	}

	return sinks, nil
}
