// Package state holds pure layout math for the terminal UI.
package state

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// ListHeight is the number of entry rows that fit once the header,
// footer and panel borders are accounted for.
func ListHeight(height int) int {
	if height <= 0 {
		return 10
	}
	chromeLines := 6
	rows := height - chromeLines
	if rows < 3 {
		rows = 3
	}
	return rows
}

// CenteredWindow returns the [start, end) slice of rows keeping the
// cursor near the middle of a viewport of the given height.
func CenteredWindow(totalRows, cursor, height int) (int, int) {
	if totalRows <= 0 {
		return 0, 0
	}
	if height <= 0 || totalRows <= height {
		return 0, totalRows
	}
	cursor = ClampCursor(cursor, totalRows)
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	maxStart := totalRows - height
	if start > maxStart {
		start = maxStart
	}
	return start, start + height
}
