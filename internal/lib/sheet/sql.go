package sheet

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the media type of OOXML workbooks.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ToSQL reads the first worksheet of an XLSX workbook and renders a
// CREATE TABLE statement followed by one INSERT per data row.
//
// Row 1 holds the column names. Column types are inferred from row 2.
func ToSQL(r io.Reader, tableName string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "failed to read upload")
	}
	if len(data) == 0 {
		return "", invalidf("file is empty")
	}
	if !isZipContainer(data) {
		return "", invalidf("file is not an xlsx workbook")
	}

	rows, err := readFirstSheet(data)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", invalidf("worksheet is empty")
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	columns := make([]string, width)
	for i := range columns {
		name := strings.TrimSpace(cell(rows[0], i))
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		columns[i] = name
	}

	var sample []string
	if len(rows) > 1 {
		sample = rows[1]
	}

	definitions := make([]string, width)
	for i, name := range columns {
		definitions[i] = name + " " + InferType(cell(sample, i))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "CREATE TABLE %s (%s);\n", tableName, strings.Join(definitions, ", "))

	columnList := strings.Join(columns, ", ")
	values := make([]string, width)
	for _, row := range rows[1:] {
		for i := range values {
			values[i] = Quote(cell(row, i))
		}
		fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES (%s);\n", tableName, columnList, strings.Join(values, ", "))
	}

	return sb.String(), nil
}

// InferType maps a sample cell to a SQL column type.
func InferType(sample string) string {
	sample = strings.TrimSpace(sample)
	if sample == "" {
		return TypeVarchar
	}
	if _, err := decimal.NewFromString(sample); err == nil {
		return TypeDecimal
	}
	if _, err := dateparse.ParseAny(sample); err == nil {
		return TypeDatetime
	}
	return TypeVarchar
}

// Quote renders s as a single-quoted SQL string literal.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func readFirstSheet(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, invalidf("file is not an xlsx workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, invalidf("workbook has no worksheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read worksheet %s", sheets[0])
	}
	return rows, nil
}

// isZipContainer sniffs data for a ZIP based format. XLSX files are ZIP
// archives, and some writers order entries so that the detector only sees
// a generic archive.
func isZipContainer(data []byte) bool {
	for mt := mimetype.Detect(data); mt != nil; mt = mt.Parent() {
		if mt.Is(ContentTypeXLSX) || mt.Is("application/zip") {
			return true
		}
	}
	return false
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
