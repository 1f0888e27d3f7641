/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent = "turnierplan-signage/0.3.0 (+https://github.com/mikeb26/turnierplan-signage)"

	// placeholders recognized in title/team count formats
	TitleFormatPlaceholder     = "{{NR}}"
	TeamCountFormatPlaceholder = "{{COUNT}}"

	// output directory used when the config does not name one
	DefaultOutputDirectory = "output"
	OutputTimestampLayout  = "2006-01-02_15-04-05"
	DisplayDateLayout      = "02.01.2006 15:04"
)
