/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package publish

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mikeb26/turnierplan-signage/internal"
	"github.com/mikeb26/turnierplan-signage/render"
)

// LocalSink writes documents below Dir.
type LocalSink struct {
	Dir string
}

func NewLocalSink(dir string) *LocalSink {
	if dir == "" {
		dir = internal.DefaultOutputDirectory
	}
	return &LocalSink{Dir: dir}
}

func (sink *LocalSink) Name() string {
	return "local"
}

func (sink *LocalSink) Publish(ctx context.Context, timestamp time.Time,
	docs []render.Document) error {

	runDir := filepath.Join(sink.Dir, RunFolder(timestamp))
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		outPath := filepath.Join(sink.Dir, filepath.FromSlash(
			RelativePath(timestamp, doc)))
		if err := writeFileAtomic(outPath, doc.Content); err != nil {
			return fmt.Errorf("unable to write %v: %w", outPath, err)
		}
		log.Printf("publish.local: wrote %v", outPath)
	}

	return nil
}

// writeFileAtomic writes to a temporary file next to path and renames it
// into place, so readers never see a half-written document.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-"+filepath.Base(path))
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}
