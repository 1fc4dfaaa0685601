package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var pixelGeometry = Geometry{TileSize: 88, TileGap: 12, OuterPadding: 48, MinWidth: 128, RowsPerPage: 3}

func TestColumns(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		width int
		want  int
	}{
		{"narrow phone", 300, 2},
		{"exact three", 348, 3},
		{"below minimum uses minimum", 0, 1},
		{"wide", 1000, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Columns(tc.width, pixelGeometry))
		})
	}
}

func TestColumnsNeverBelowOne(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, Columns(10, Geometry{TileSize: 88, TileGap: 12, OuterPadding: 48}))
	require.Equal(t, 1, Columns(10, Geometry{}))
}

func TestTotalRowsAndOverflow(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, TotalRows(7, 3))
	require.False(t, HasOverflow(0, 3, 3))
	require.Equal(t, 0, TotalRows(0, 3))
	require.Equal(t, 4, TotalRows(10, 3))
	require.True(t, HasOverflow(0, 3, 4))
	require.False(t, HasOverflow(3, 3, 4))
}

func TestWindowIncludesPeekRow(t *testing.T) {
	t.Parallel()

	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	rows := Window(items, 0, 3, 2)
	require.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}, rows)

	rows = Window(items, 3, 3, 3)
	require.Equal(t, [][]int{{9}}, rows)

	require.Nil(t, Window(items, 4, 3, 3))
	require.Nil(t, Window([]int{}, 0, 3, 3))
}

func TestGridWidth(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3*92+2*8, GridWidth(3, 88, 4, 8))
	require.Equal(t, 0, GridWidth(0, 88, 4, 8))
}
