package adapters

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"recovery-dashboard/internal/features/orders/domain"
	"recovery-dashboard/internal/features/orders/ports"
)

// ErrUnreadablePayload is returned when the payload is not valid UTF-8 text.
var ErrUnreadablePayload = errors.New("payload is not valid UTF-8 text")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DelimitedParser implements ports.RecordParser for CSV and TSV exports.
type DelimitedParser struct{}

// NewDelimitedParser creates a new DelimitedParser.
func NewDelimitedParser() *DelimitedParser {
	return &DelimitedParser{}
}

// Parse reads the header row and maps every following non-blank line onto it.
// Short rows leave the trailing columns out; cells beyond the header are dropped.
func (p *DelimitedParser) Parse(r io.Reader, opts ports.ParseOptions) ([]domain.RawRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, ErrUnreadablePayload
	}

	delim := opts.Delimiter
	if delim == 0 {
		delim = SniffDelimiter(data)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return []domain.RawRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header = uniqueHeaders(header)

	rows := make([]domain.RawRow, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(domain.RawRow, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// uniqueHeaders renames repeated column names to name_1, name_2, ... so no
// cell is lost to a later column with the same name.
func uniqueHeaders(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for _, col := range header {
		seen[col] = true
	}

	taken := make(map[string]bool, len(header))
	for i, col := range header {
		name := col
		for n := 1; taken[name]; n++ {
			if candidate := fmt.Sprintf("%s_%d", col, n); !seen[candidate] {
				name = candidate
			}
		}
		taken[name] = true
		out[i] = name
	}
	return out
}

// SniffDelimiter picks tab or comma by counting both in the header line.
func SniffDelimiter(data []byte) rune {
	line, _ := bufio.NewReader(bytes.NewReader(data)).ReadString('\n')
	if bytes.Count([]byte(line), []byte("\t")) > bytes.Count([]byte(line), []byte(",")) {
		return '\t'
	}
	return ','
}

// DelimiterFromName maps "comma", "tab" or "auto" to a delimiter. Auto and "" yield 0.
func DelimiterFromName(name string) (rune, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return 0, nil
	case "comma", ",":
		return ',', nil
	case "tab", "\\t":
		return '\t', nil
	}
	return 0, fmt.Errorf("unsupported delimiter: %s", name)
}
