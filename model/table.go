package model

import "strings"

// Cell is one reconstructed table cell. Row and Column are 1-based grid
// coordinates as reported by the recognition engine.
type Cell struct {
	Row        int     `json:"row"`
	Column     int     `json:"column"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	IsHeader   bool    `json:"is_header"`
}

// Table is one reconstructed table: the cells that were recognized,
// plus a dense grid covering every position up to the observed extents.
type Table struct {
	// Index is the zero-based sequence number of the table in block
	// encounter order.
	Index int `json:"index"`

	// RowCount and ColumnCount are the maximum observed coordinates,
	// not a declared size; 0 when the table has no placeable cells.
	RowCount    int `json:"row_count"`
	ColumnCount int `json:"column_count"`

	Cells []Cell `json:"cells"`

	// Grid is RowCount × ColumnCount. Grid[r][c] is "" when no cell
	// claims position (r+1, c+1).
	Grid [][]string `json:"grid"`

	// HeaderMap pairs each non-blank cell of the first grid row with
	// the cell directly beneath it in the second row. Populated only
	// when the grid has at least two rows.
	HeaderMap *FieldMap `json:"header_map"`
}

// GetCell returns the grid text at 1-based (row, column), or false when
// the position is outside the grid.
func (t *Table) GetCell(row, col int) (string, bool) {
	if row < 1 || row > len(t.Grid) {
		return "", false
	}
	if col < 1 || col > len(t.Grid[row-1]) {
		return "", false
	}
	return t.Grid[row-1][col-1], true
}

// Text returns the grid as tab-separated rows.
func (t *Table) Text() string {
	var sb strings.Builder
	for _, row := range t.Grid {
		for j, cell := range row {
			sb.WriteString(cell)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToMarkdown converts the grid to markdown table format, treating the
// first grid row as the header row.
func (t *Table) ToMarkdown() string {
	if len(t.Grid) == 0 {
		return ""
	}

	var sb strings.Builder

	// Header row
	for j, cell := range t.Grid[0] {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(cell, "\n", " "))
		sb.WriteString(" ")
		if j == len(t.Grid[0])-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	// Separator
	for j := range t.Grid[0] {
		sb.WriteString("|---")
		if j == len(t.Grid[0])-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	// Data rows
	for i := 1; i < len(t.Grid); i++ {
		for j, cell := range t.Grid[i] {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell, "\n", " "))
			sb.WriteString(" ")
			if j == len(t.Grid[i])-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToCSV converts the grid to CSV format.
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Grid {
		for j, cell := range row {
			// Escape quotes and wrap in quotes if necessary
			text := cell
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
