/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package publish

import (
	"context"
	"path"
	"time"

	"github.com/mikeb26/turnierplan-signage/internal"
	"github.com/mikeb26/turnierplan-signage/render"
)

// Sink receives the documents of a run. All documents of one run share the
// same timestamp, so they end up side by side in one output folder.
type Sink interface {
	Name() string
	Publish(ctx context.Context, timestamp time.Time,
		docs []render.Document) error
}

// RunFolder is the folder name of a run, e.g. 2025-06-14_08-30-00.
func RunFolder(timestamp time.Time) string {
	return timestamp.Format(internal.OutputTimestampLayout)
}

// RelativePath is where doc goes below a sink's root, using forward slashes.
func RelativePath(timestamp time.Time, doc render.Document) string {
	return path.Join(RunFolder(timestamp), doc.FileName())
}
