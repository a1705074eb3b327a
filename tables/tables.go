package tables

import (
	"strings"

	"github.com/tsawler/blockform/block"
	"github.com/tsawler/blockform/model"
	"github.com/tsawler/blockform/resolver"
)

// Reconstructor rebuilds dense tables from Table blocks and their
// scattered Cell children.
type Reconstructor struct {
	res *resolver.Resolver
}

// NewReconstructor creates a reconstructor resolving blocks through res.
func NewReconstructor(res *resolver.Resolver) *Reconstructor {
	return &Reconstructor{res: res}
}

// Tables reconstructs every Table block in the collection, in encounter
// order. Table.Index is the zero-based position in that order.
func (r *Reconstructor) Tables(blocks block.Collection) []*model.Table {
	tables := make([]*model.Table, 0)
	for _, b := range blocks {
		if b.Kind != block.KindTable {
			continue
		}
		t := r.reconstruct(b)
		t.Index = len(tables)
		tables = append(tables, t)
	}
	return tables
}

// reconstruct builds one table from its block.
func (r *Reconstructor) reconstruct(tableBlock *block.Block) *model.Table {
	ix := r.res.Index()

	// Keep only resolvable Cell children that carry coordinates.
	// Traversal order is preserved: it is the tie-break for duplicate
	// grid claims.
	var cells []model.Cell
	maxRow, maxCol := 0, 0

	for _, id := range tableBlock.Targets(block.RelationContains) {
		child, ok := ix.Get(id)
		if !ok || child.Kind != block.KindCell || !child.HasCoordinates() {
			continue
		}
		if child.Row > maxRow {
			maxRow = child.Row
		}
		if child.Column > maxCol {
			maxCol = child.Column
		}
		cells = append(cells, model.Cell{
			Row:        child.Row,
			Column:     child.Column,
			Text:       r.res.Text(child),
			Confidence: child.Confidence,
			IsHeader:   child.HasRole(block.RoleColumnHeader),
		})
	}

	grid := buildGrid(cells, maxRow, maxCol)

	return &model.Table{
		RowCount:    maxRow,
		ColumnCount: maxCol,
		Cells:       cells,
		Grid:        grid,
		HeaderMap:   headerMap(grid),
	}
}

// buildGrid places cells into a dense rows × cols grid. Unclaimed
// positions stay ""; when two cells claim the same position the one
// earlier in traversal order wins.
func buildGrid(cells []model.Cell, rows, cols int) [][]string {
	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, cols)
	}

	placed := make([][]bool, rows)
	for i := range placed {
		placed[i] = make([]bool, cols)
	}

	for _, cell := range cells {
		r, c := cell.Row-1, cell.Column-1
		if placed[r][c] {
			continue
		}
		grid[r][c] = cell.Text
		placed[r][c] = true
	}
	return grid
}

// headerMap pairs each non-blank header cell of the first row with the
// value directly beneath it in the second row, preserving column order.
// Grids with fewer than two rows yield an empty map.
func headerMap(grid [][]string) *model.FieldMap {
	m := model.NewFieldMap()
	if len(grid) < 2 {
		return m
	}

	headers := grid[0]
	firstData := grid[1]
	for i := 0; i < len(headers) && i < len(firstData); i++ {
		header := strings.TrimSpace(headers[i])
		if header == "" {
			continue
		}
		m.Set(header, firstData[i])
	}
	return m
}
