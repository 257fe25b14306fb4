package sheet

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows ...[]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", ref, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestToSQL(t *testing.T) {
	buf := workbook(t,
		[]any{"name", "price", "created"},
		[]any{"O'Brien", "10.50", "2024-01-15"},
		[]any{"Ana", "3", "2024-02-01"},
	)

	got, err := ToSQL(buf, "products")
	require.NoError(t, err)

	want := "CREATE TABLE products (name VARCHAR(255), price DECIMAL(18,2), created DATETIME);\n" +
		"INSERT INTO products (name, price, created) VALUES ('O''Brien', '10.50', '2024-01-15');\n" +
		"INSERT INTO products (name, price, created) VALUES ('Ana', '3', '2024-02-01');\n"
	assert.Equal(t, want, got)
}

func TestToSQL_BlankHeadersAndRaggedRows(t *testing.T) {
	buf := workbook(t,
		[]any{"id"},
		[]any{"1", "extra", "more"},
	)

	got, err := ToSQL(buf, "public.items")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "CREATE TABLE public.items (id DECIMAL(18,2), column_2 VARCHAR(255), column_3 VARCHAR(255));", lines[0])
	assert.Equal(t, "INSERT INTO public.items (id, column_2, column_3) VALUES ('1', 'extra', 'more');", lines[1])
}

func TestToSQL_HeaderOnly(t *testing.T) {
	got, err := ToSQL(workbook(t, []any{"a", "b"}), "t")
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE t (a VARCHAR(255), b VARCHAR(255));\n", got)
}

func TestToSQL_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"plain text", []byte("name,price\nfoo,1\n")},
		{"empty workbook", workbook(t).Bytes()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToSQL(bytes.NewReader(tt.data), "t")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestInferType(t *testing.T) {
	tests := map[string]string{
		"":           TypeVarchar,
		"42":         TypeDecimal,
		"-3.14":      TypeDecimal,
		"2024-01-15": TypeDatetime,
		"hello":      TypeVarchar,
	}
	for in, want := range tests {
		assert.Equal(t, want, InferType(in), "input %q", in)
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "''", Quote(""))
	assert.Equal(t, "'it''s'", Quote("it's"))
}

func TestDecodeRecords_KeepsKeyOrder(t *testing.T) {
	records, err := DecodeRecords(strings.NewReader(`[{"z":1,"a":"x","m":true},{"a":"y"}]`))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"z", "a", "m"}, records[0].Keys)
	assert.Equal(t, []string{"a"}, records[1].Keys)
}

func TestDecodeRecords_Invalid(t *testing.T) {
	for _, body := range []string{`{"a":1}`, `[1,2]`, `not json`} {
		_, err := DecodeRecords(strings.NewReader(body))
		assert.True(t, errors.Is(err, ErrInvalidInput), "body %s", body)
	}
}

func TestFromRecords(t *testing.T) {
	records, err := DecodeRecords(strings.NewReader(
		`[{"name":"Ana","age":30,"tags":["a"]},{"age":41.5,"name":"Bo","ignored":1}]`))
	require.NoError(t, err)

	out, err := FromRecords(records)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"name", "age", "tags"},
		{"Ana", "30", `["a"]`},
		{"Bo", "41.5"},
	}, rows)
}

func TestFromRecords_Invalid(t *testing.T) {
	_, err := FromRecords(nil)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = FromRecords([]Record{{Values: map[string]any{}}})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
