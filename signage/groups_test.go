/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package signage

import (
	"regexp"
	"sort"
	"testing"

	"github.com/mikeb26/turnierplan-signage/turnierplan"
)

func teamsNamed(names ...string) []turnierplan.Team {
	teams := make([]turnierplan.Team, 0, len(names))
	for i, n := range names {
		teams = append(teams, turnierplan.Team{ID: i + 1, Name: n})
	}
	return teams
}

func groupNames(groups []Group) []string {
	var names []string
	for _, g := range groups {
		names = append(names, g.BaseName)
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGroupSorterOrder(t *testing.T) {
	groups := []Group{
		{BaseName: "A", Count: 3},
		{BaseName: "B", Count: 3, IsHome: true},
		{BaseName: "C", Count: 5},
		{BaseName: "D", Count: 1},
	}
	sort.Sort(NewGroupSorter(groups))

	want := []string{"C", "B", "A", "D"}
	if got := groupNames(groups); !equalStrings(got, want) {
		t.Errorf("order = %v; want %v", got, want)
	}
}

func TestGroupTeams(t *testing.T) {
	teams := teamsNamed(
		"Delta",
		"Alpha 1", "Alpha 2", "Alpha 3",
		"Home 1", "Home 2", "Home 3",
		"Charlie 1", "Charlie 2", "Charlie 3", "Charlie 4", "Charlie 5",
	)
	groups := GroupTeams(teams, regexp.MustCompile(`^Home$`))

	want := []string{"Charlie", "Home", "Alpha", "Delta"}
	if got := groupNames(groups); !equalStrings(got, want) {
		t.Errorf("order = %v; want %v", got, want)
	}
	if !groups[1].IsHome || groups[2].IsHome {
		t.Errorf("home flags wrong: %+v", groups)
	}

	total := 0
	for _, g := range groups {
		if g.Count <= 0 {
			t.Errorf("group %v has non-positive count", g.BaseName)
		}
		total += g.Count
	}
	if total != len(teams) {
		t.Errorf("sum of counts = %v; want %v", total, len(teams))
	}
}

func TestGroupTeamsTieBreaks(t *testing.T) {
	teams := teamsNamed("Zeta 1", "Zeta 2", "Beta", "Alpha", "Gamma 1", "Gamma 2")

	cases := []struct {
		name    string
		pattern *regexp.Regexp
		want    []string
	}{
		{name: "no pattern", pattern: nil, want: []string{"Gamma", "Zeta", "Alpha", "Beta"}},
		{name: "matches nothing", pattern: regexp.MustCompile(`^Nobody$`), want: []string{"Gamma", "Zeta", "Alpha", "Beta"}},
		{name: "matches everything", pattern: regexp.MustCompile(`.*`), want: []string{"Gamma", "Zeta", "Alpha", "Beta"}},
		{name: "prefers home within count", pattern: regexp.MustCompile(`^(Zeta|Beta)$`), want: []string{"Zeta", "Gamma", "Beta", "Alpha"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := groupNames(GroupTeams(teams, c.pattern))
			if !equalStrings(got, c.want) {
				t.Errorf("order = %v; want %v", got, c.want)
			}
		})
	}
}

func TestGroupTeamsCollation(t *testing.T) {
	groups := GroupTeams(teamsNamed("Pforzheim", "Ölbronn", "eintracht", "FC Zell"),
		nil)

	want := []string{"eintracht", "FC Zell", "Ölbronn", "Pforzheim"}
	if got := groupNames(groups); !equalStrings(got, want) {
		t.Fatalf("order = %v; want %v", got, want)
	}

	rooms := BalanceRooms(2, groups)
	if got := groupNames(rooms[0].Groups); !equalStrings(got, []string{"eintracht", "Ölbronn"}) {
		t.Errorf("room 0 = %v", got)
	}
	if got := groupNames(rooms[1].Groups); !equalStrings(got, []string{"FC Zell", "Pforzheim"}) {
		t.Errorf("room 1 = %v", got)
	}
}

func TestGroupTeamsKeepsDoubleDigitSquadsApart(t *testing.T) {
	groups := GroupTeams(teamsNamed("Team", "Team 1", "Team 10"), nil)

	// "Team 1" -> "Team" but "Team 10" -> "Team 1"
	want := []string{"Team", "Team 1"}
	if got := groupNames(groups); !equalStrings(got, want) {
		t.Fatalf("groups = %v; want %v", got, want)
	}
	if groups[0].Count != 2 || groups[1].Count != 1 {
		t.Errorf("counts = %+v", groups)
	}
}

func TestGroupTeamsEmpty(t *testing.T) {
	if groups := GroupTeams(nil, nil); len(groups) != 0 {
		t.Errorf("expected no groups, got %+v", groups)
	}
}

func TestCompileHomeTeamPattern(t *testing.T) {
	re, err := CompileHomeTeamPattern("")
	if err != nil || re != nil {
		t.Errorf("empty pattern: got %v, %v", re, err)
	}

	re, err = CompileHomeTeamPattern(`^SV Musterstadt`)
	if err != nil || re == nil {
		t.Fatalf("valid pattern: got %v, %v", re, err)
	}

	_, err = CompileHomeTeamPattern(`(unclosed`)
	if err == nil {
		t.Fatalf("expected error for malformed pattern")
	}
	if !IsConfigError(err) {
		t.Errorf("expected a ConfigError, got %T", err)
	}
}
