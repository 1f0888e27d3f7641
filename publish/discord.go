/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/mikeb26/turnierplan-signage/render"
)

// discord rejects messages with more attachments than this
const maxFilesPerMessage = 10

// DiscordSink posts the documents of a run as attachments to a channel so
// that whoever prints the signs on site can grab them from their phone.
type DiscordSink struct {
	Session   *discordgo.Session
	ChannelID string
}

func NewDiscordSink(botToken string, channelID string) (*DiscordSink, error) {
	if botToken == "" || channelID == "" {
		return nil, errors.New("publish: discord bot token and channel id are required")
	}
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize discord client: %w", err)
	}

	return &DiscordSink{Session: session, ChannelID: channelID}, nil
}

func (sink *DiscordSink) Name() string {
	return "discord"
}

func (sink *DiscordSink) Publish(ctx context.Context, timestamp time.Time,
	docs []render.Document) error {

	for start := 0; start < len(docs); start += maxFilesPerMessage {
		end := min(start+maxFilesPerMessage, len(docs))
		batch := docs[start:end]

		msg := &discordgo.MessageSend{
			Content: describeBatch(timestamp, batch),
		}
		for _, doc := range batch {
			msg.Files = append(msg.Files, &discordgo.File{
				Name:        doc.FileName(),
				ContentType: doc.ContentType,
				Reader:      bytes.NewReader(doc.Content),
			})
		}
		_, err := sink.Session.ChannelMessageSendComplex(sink.ChannelID, msg,
			discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("unable to post to discord channel %v: %w",
				sink.ChannelID, err)
		}
		log.Printf("publish.discord: posted %v document(s) to %v", len(batch),
			sink.ChannelID)
	}

	return nil
}

func describeBatch(timestamp time.Time, docs []render.Document) string {
	var names []string
	for _, doc := range docs {
		names = append(names, doc.FileName())
	}

	return fmt.Sprintf("Signage run %v: %v", RunFolder(timestamp),
		strings.Join(names, ", "))
}
