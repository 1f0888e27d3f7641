/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package signage

// DefaultRowCapacity is the number of cards printed side by side on a page.
const DefaultRowCapacity = 4

type GridOptions struct {
	RowCapacity int
	// BreakBetweenSections starts a new page after every section but the last.
	BreakBetweenSections bool
}

// Cell holds at most one item. Unfilled cells are still rendered (blank) so
// every card in a row has the same width.
type Cell[T any] struct {
	Item   T
	Filled bool
}

type Row[T any] struct {
	Cells []Cell[T]
}

// Items returns the filled items of the row in order.
func (r Row[T]) Items() []T {
	var items []T
	for _, c := range r.Cells {
		if c.Filled {
			items = append(items, c.Item)
		}
	}
	return items
}

type GridSection[T any] struct {
	Index          int
	Rows           []Row[T]
	PageBreakAfter bool
}

type Grid[T any] struct {
	RowCapacity int
	Sections    []GridSection[T]
}

// Paginate lays out each section's items into rows of RowCapacity cells.
// Every section starts on a fresh row; the last row of a section is padded
// with unfilled cells.
func Paginate[T any](sections [][]T, opts GridOptions) Grid[T] {
	capacity := opts.RowCapacity
	if capacity <= 0 {
		capacity = DefaultRowCapacity
	}

	grid := Grid[T]{
		RowCapacity: capacity,
		Sections:    make([]GridSection[T], 0, len(sections)),
	}
	for idx, items := range sections {
		sec := GridSection[T]{
			Index:          idx,
			PageBreakAfter: opts.BreakBetweenSections && idx != len(sections)-1,
		}
		for start := 0; start < len(items); start += capacity {
			row := Row[T]{Cells: make([]Cell[T], capacity)}
			for j := 0; j < capacity && start+j < len(items); j++ {
				row.Cells[j] = Cell[T]{Item: items[start+j], Filled: true}
			}
			sec.Rows = append(sec.Rows, row)
		}
		grid.Sections = append(grid.Sections, sec)
	}

	return grid
}

// Pages groups the sections by the page breaks between them.
func (g Grid[T]) Pages() [][]GridSection[T] {
	var pages [][]GridSection[T]
	var cur []GridSection[T]
	for _, sec := range g.Sections {
		cur = append(cur, sec)
		if sec.PageBreakAfter {
			pages = append(pages, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		pages = append(pages, cur)
	}

	return pages
}
