/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NewNameComparer returns a comparison func for club and tournament names
// using German collation: case is a secondary difference and umlauts sort
// next to their base letter. Names that collate equal fall back to byte
// order so the result is total.
//
// The returned func is not safe for concurrent use.
func NewNameComparer() func(a, b string) int {
	coll := collate.New(language.German)

	return func(a, b string) int {
		if c := coll.CompareString(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	}
}
