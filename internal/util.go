/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseIn(s, time.UTC)
}

// ParseDateOrNil is ParseDateOrZero for optional timestamps; a missing value
// yields nil rather than the zero time.
func ParseDateOrNil(s string) (*time.Time, error) {
	t, err := ParseDateOrZero(s)
	if err != nil || t.IsZero() {
		return nil, err
	}

	return &t, nil
}
