package partslist

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	enc "github.com/MrJamesThe3rd/struk/internal/encoding"
	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

// separators are tried in order until one yields a known header.
var separators = []rune{';', ',', '\t'}

// Parser reads parts lists exported from a spreadsheet and produces
// component params. The layout is detected by matching column headers
// against known profiles, case-insensitively.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]receipt.ComponentParams, error) {
	utf8r, charset, err := enc.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	for _, sep := range separators {
		rows, err := readRows(data, sep)
		if err != nil {
			continue
		}

		profile, cols, headerIdx := detectProfile(rows)
		if profile == nil {
			continue
		}

		slog.Debug("parts list detected", "profile", profile.Name, "charset", charset, "separator", string(sep))

		return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
	}

	return nil, fmt.Errorf("no matching parts list format found: expected columns %q and %q", "Nama Komponen", "Harga")
}

func readRows(data []byte, sep rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sep
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rows, nil
}

// colIndex maps lower-cased column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows turns data rows into component params. Blank rows are skipped;
// a row with a price but no name is an error.
// headerRowNum is the 1-based record number of the header, used in error messages.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]receipt.ComponentParams, error) {
	nameIdx := cols[p.NameCol]
	priceIdx := cols[p.PriceCol]

	qtyIdx, hasQty := cols[p.QtyCol]
	if !hasQty {
		qtyIdx = -1
	}

	var params []receipt.ComponentParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 1 // 1-based

		name := cellValue(row, nameIdx)
		priceStr := cellValue(row, priceIdx)

		if name == "" && priceStr == "" {
			continue
		}

		if name == "" {
			return nil, fmt.Errorf("row %d: missing component name", rowNum)
		}

		price, err := parseRupiah(priceStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q: %w", rowNum, priceStr, err)
		}

		params = append(params, receipt.ComponentParams{
			Name:     name,
			Quantity: parseQuantity(cellValue(row, qtyIdx)),
			Price:    price,
		})
	}

	return params, nil
}

func parseQuantity(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}

	return n
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
