/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import "testing"

func TestNameComparer(t *testing.T) {
	compare := NewNameComparer()
	tests := []struct {
		a, b string
		want int
	}{
		{"eintracht", "FC Zell", -1},
		{"Ölbronn", "Pforzheim", -1},
		{"FC Zell", "Ölbronn", -1},
		{"Zell-Cup", "bambini Cup", 1},
		{"Same", "Same", 0},
	}
	for _, tc := range tests {
		t.Run(tc.a+"_"+tc.b, func(t *testing.T) {
			got := compare(tc.a, tc.b)
			if (got < 0) != (tc.want < 0) || (got > 0) != (tc.want > 0) {
				t.Errorf("compare(%q, %q) = %v; want sign of %v", tc.a, tc.b, got,
					tc.want)
			}
		})
	}

	// collation-equal names still get a fixed order
	if compare("fc a", "FC A") == 0 || compare("fc a", "FC A") != -compare("FC A", "fc a") {
		t.Errorf("comparison is not total and antisymmetric")
	}
}
