/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package signage

// Room is one changing room of a tournament. ID is its index in [0, n).
type Room struct {
	ID     int
	Groups []Group
}

// Utilization is the number of teams assigned to the room.
func (r Room) Utilization() int {
	total := 0
	for _, g := range r.Groups {
		total += g.Count
	}
	return total
}

// BalanceRooms distributes groups over n fresh rooms. Groups are taken in the
// given order and each one goes to the least utilized room; ties go to the
// lowest room id. This is a greedy pass, not an optimal packing: the output
// for tied inputs is part of what gets printed, so do not change the rule.
func BalanceRooms(n int, groups []Group) []Room {
	if n <= 0 {
		return nil
	}

	rooms := make([]Room, n)
	utilization := make([]int, n)
	for i := range rooms {
		rooms[i].ID = i
	}

	for _, g := range groups {
		best := 0
		for i := 1; i < n; i++ {
			if utilization[i] < utilization[best] {
				best = i
			}
		}
		rooms[best].Groups = append(rooms[best].Groups, g)
		utilization[best] += g.Count
	}

	return rooms
}
