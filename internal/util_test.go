/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
	"time"
)

func TestParseDateOrNil(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    *time.Time
		wantErr bool
	}{
		{name: "empty", in: ""},
		{name: "null", in: "null"},
		{name: "blank", in: "   "},
		{
			name: "rfc3339",
			in:   "2025-06-14T08:30:00Z",
			want: ptr(time.Date(2025, 6, 14, 8, 30, 0, 0, time.UTC)),
		},
		{
			name: "offset",
			in:   "2025-06-14T10:30:00+02:00",
			want: ptr(time.Date(2025, 6, 14, 8, 30, 0, 0, time.UTC)),
		},
		{
			name: "no zone is utc",
			in:   "2025-06-14 08:30:00",
			want: ptr(time.Date(2025, 6, 14, 8, 30, 0, 0, time.UTC)),
		},
		{name: "out of range", in: "2025-13-45T99:99:99Z", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseDateOrNil(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if got == nil || !got.Equal(*c.want) {
				t.Fatalf("got %v; want %v", got, c.want)
			}
		})
	}
}

func ptr(t time.Time) *time.Time {
	return &t
}
