package pagination

// Layout is the derived grid state for one render.
type Layout struct {
	Columns     int
	TotalRows   int
	HasOverflow bool
	CanAdvance  bool
	CanRetreat  bool
}

// Pager owns the offset of the first visible row. Offset only moves through
// Advance and Retreat, and only when the matching control is enabled.
type Pager struct {
	geom   Geometry
	offset int
}

func NewPager(g Geometry) *Pager {
	return &Pager{geom: g}
}

func (p *Pager) Offset() int        { return p.offset }
func (p *Pager) Geometry() Geometry { return p.geom }

// Layout computes the grid for itemCount tiles in a container this wide.
func (p *Pager) Layout(itemCount, containerWidth int) Layout {
	cols := Columns(containerWidth, p.geom)
	rows := TotalRows(itemCount, cols)
	overflow := HasOverflow(p.offset, p.geom.RowsPerPage, rows)
	return Layout{
		Columns:     cols,
		TotalRows:   rows,
		HasOverflow: overflow,
		CanAdvance:  overflow,
		CanRetreat:  p.offset > 0,
	}
}

// Advance moves down one page if there is overflow.
func (p *Pager) Advance(itemCount, containerWidth int) bool {
	if !p.Layout(itemCount, containerWidth).CanAdvance {
		return false
	}
	p.offset += p.geom.RowsPerPage
	return true
}

// Retreat moves up one page unless already at the top.
func (p *Pager) Retreat() bool {
	if p.offset <= 0 {
		return false
	}
	p.offset -= p.geom.RowsPerPage
	return true
}

// Clamp moves the offset back to the last page when a width change left it
// past the final row. The offset stays a multiple of RowsPerPage.
func (p *Pager) Clamp(itemCount, containerWidth int) bool {
	rows := TotalRows(itemCount, Columns(containerWidth, p.geom))
	if p.offset == 0 || p.offset < rows {
		return false
	}
	last := 0
	if rows > 0 && p.geom.RowsPerPage > 0 {
		last = (rows - 1) / p.geom.RowsPerPage * p.geom.RowsPerPage
	}
	p.offset = last
	return true
}
