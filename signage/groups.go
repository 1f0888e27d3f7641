/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package signage

import (
	"regexp"
	"sort"

	"github.com/mikeb26/turnierplan-signage/internal"
	"github.com/mikeb26/turnierplan-signage/turnierplan"
)

// Group is the set of teams of one tournament that share a base name.
type Group struct {
	BaseName string
	Count    int
	// IsHome is set when the base name matches the home team pattern.
	IsHome bool
}

// GroupSorter implements sort.Interface for placement order.
// Order: larger groups first, then home teams, then base name in German
// collation order.
type GroupSorter struct {
	Groups  []Group
	compare func(a, b string) int
}

func NewGroupSorter(groups []Group) GroupSorter {
	return GroupSorter{Groups: groups, compare: internal.NewNameComparer()}
}

func (s GroupSorter) Len() int { return len(s.Groups) }

func (s GroupSorter) Swap(i, j int) {
	s.Groups[i], s.Groups[j] = s.Groups[j], s.Groups[i]
}

func (s GroupSorter) Less(i, j int) bool {
	a, b := s.Groups[i], s.Groups[j]
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	if a.IsHome != b.IsHome {
		return a.IsHome
	}
	return s.compare(a.BaseName, b.BaseName) < 0
}

// GroupTeams consolidates teams by BaseName and returns the groups in
// placement order. pattern may be nil.
func GroupTeams(teams []turnierplan.Team, pattern *regexp.Regexp) []Group {
	counts := make(map[string]int)
	var names []string
	for _, team := range teams {
		base := BaseName(team.Name)
		if _, ok := counts[base]; !ok {
			names = append(names, base)
		}
		counts[base]++
	}

	groups := make([]Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, Group{
			BaseName: name,
			Count:    counts[name],
			IsHome:   pattern != nil && pattern.MatchString(name),
		})
	}
	sort.Sort(NewGroupSorter(groups))

	return groups
}

// CompileHomeTeamPattern compiles the optional home team pattern. An empty
// pattern means no preference; a malformed one is a configuration error.
func CompileHomeTeamPattern(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &ConfigError{
			Field:  "home_team_name_pattern",
			Reason: "failed to compile",
			Err:    err,
		}
	}

	return re, nil
}
