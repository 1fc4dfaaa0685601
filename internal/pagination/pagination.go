// Package pagination lays out a variable-length list of tiles as a grid of
// rows sized to the container, and pages through it a fixed number of rows
// at a time.
package pagination

// Geometry describes tile sizing. All values share one unit (pixels,
// terminal cells, ...).
type Geometry struct {
	TileSize     int
	TileGap      int
	OuterPadding int
	MinWidth     int
	RowsPerPage  int
}

// Columns is how many tiles fit in one row of a container this wide.
// The container is never treated as narrower than MinWidth, and the
// result is never below one.
func Columns(containerWidth int, g Geometry) int {
	width := max(g.MinWidth, containerWidth)
	step := g.TileSize + g.TileGap
	if step <= 0 {
		return 1
	}
	return max(1, (width-g.OuterPadding)/step)
}

// TotalRows is ceil(itemCount / columns); zero items means zero rows.
func TotalRows(itemCount, columns int) int {
	if itemCount <= 0 || columns <= 0 {
		return 0
	}
	return (itemCount + columns - 1) / columns
}

// HasOverflow reports whether rows exist below the visible page.
func HasOverflow(offset, rowsPerPage, totalRows int) bool {
	return offset+rowsPerPage < totalRows
}

// Window groups items into rows of columns and returns rows
// [offset, offset+rowsPerPage], one more than a page. The extra peek row
// is what the overflow cut-off is drawn over.
func Window[T any](items []T, offset, columns, rowsPerPage int) [][]T {
	if columns <= 0 || offset < 0 {
		return nil
	}
	start := offset * columns
	if start >= len(items) {
		return nil
	}
	end := min(len(items), (offset+rowsPerPage+1)*columns)
	visible := items[start:end]
	rows := make([][]T, 0, (len(visible)+columns-1)/columns)
	for i := 0; i < len(visible); i += columns {
		rows = append(rows, visible[i:min(i+columns, len(visible))])
	}
	return rows
}

// GridWidth is the rendered width of a row of columns tiles; the cut-off
// line and footer are drawn this wide.
func GridWidth(columns, tileSize, tilePad, gap int) int {
	if columns <= 0 {
		return 0
	}
	return columns*(tileSize+tilePad) + (columns-1)*gap
}
