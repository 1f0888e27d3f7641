/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package render

import (
	"github.com/a-h/templ"
	"github.com/mikeb26/turnierplan-signage/signage"
)

// ChangingRoomDocument renders one section per changing room: the room
// title followed by a grid of tournament panels. Sections are separated by
// page breaks.
func ChangingRoomDocument(layout *signage.ChangingRoomLayout) templ.Component {
	return page("Changing rooms", changingRoomBody(layout))
}
