/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package signage

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// BaseName returns the club identity of a team name: the trimmed name with a
// single trailing digit removed, so "FC Example 1" and "FC Example 2" both
// become "FC Example".
//
// Only one digit is stripped ("Team 10" -> "Team 1"). Squad numbers above 9
// therefore form their own group; keep it that way, printed signs depend on it.
func BaseName(name string) string {
	name = strings.TrimSpace(name)
	last, size := utf8.DecodeLastRuneInString(name)
	if size == 0 || !unicode.IsDigit(last) {
		return name
	}

	return strings.TrimSpace(name[:len(name)-size])
}
