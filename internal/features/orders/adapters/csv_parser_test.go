package adapters

import (
	"strings"
	"testing"

	"recovery-dashboard/internal/features/orders/domain"
	"recovery-dashboard/internal/features/orders/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tsvExport = "Order\tLine\t Part\tDesc\tOrderQty\tName\tShipBy\tRecovery Date\n" +
	"100234\t1\tPN-778\tBracket, steel\t40\tAcme\t06/10/25\t\"ETA 6/14\nPENDING\"\n" +
	"\n" +
	"100235\t2\tPN-901\tHousing\t5\tGlobex\t\t\n"

func TestDelimitedParser_TSV(t *testing.T) {
	rows, err := NewDelimitedParser().Parse(strings.NewReader(tsvExport), ports.ParseOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Acme", rows[0].Get(domain.ColumnName))
	assert.Equal(t, "PN-778", rows[0].Get(domain.ColumnPart))
	assert.Equal(t, "Bracket, steel", rows[0].Get(domain.ColumnDesc))
	assert.Equal(t, "ETA 6/14\nPENDING", rows[0].Get(domain.ColumnRecovery))
	assert.Equal(t, "", rows[1].Get(domain.ColumnRecovery))
	assert.Equal(t, "Globex", rows[1].Get(domain.ColumnName))
}

func TestDelimitedParser_CSV(t *testing.T) {
	payload := "\xEF\xBB\xBFName,ShipBy,Recovery Date\r\n" +
		"Acme,06/10/25,\"ETA 3/01\r\nCOMPLETE\"\r\n" +
		"\r\n" +
		"Globex,06/11/25\r\n" +
		"Initech,06/12/25,ETA 7/4,extra\r\n"

	rows, err := NewDelimitedParser().Parse(strings.NewReader(payload), ports.ParseOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Acme", rows[0].Get(domain.ColumnName), "BOM must not leak into the first header")
	assert.Equal(t, "ETA 3/01\nCOMPLETE", rows[0].Get(domain.ColumnRecovery))

	_, present := rows[1][domain.ColumnRecovery]
	assert.False(t, present)
	assert.Equal(t, "", rows[1].Get(domain.ColumnRecovery))

	assert.Len(t, rows[2], 3)
	assert.Equal(t, "ETA 7/4", rows[2].Get(domain.ColumnRecovery))
}

func TestDelimitedParser_ForcedDelimiter(t *testing.T) {
	payload := "Name\tDesc,Qty\nAcme\tBolt,10\n"

	rows, err := NewDelimitedParser().Parse(strings.NewReader(payload), ports.ParseOptions{Delimiter: ','})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "10", rows[0].Get("Qty"))
	assert.Equal(t, "Acme\tBolt", rows[0].Get("Name\tDesc"))
}

func TestDelimitedParser_Empty(t *testing.T) {
	rows, err := NewDelimitedParser().Parse(strings.NewReader(""), ports.ParseOptions{})
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = NewDelimitedParser().Parse(strings.NewReader("Name,ShipBy\n"), ports.ParseOptions{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDelimitedParser_InvalidEncoding(t *testing.T) {
	_, err := NewDelimitedParser().Parse(strings.NewReader("Name\n\xff\xfe\x00A"), ports.ParseOptions{})
	assert.ErrorIs(t, err, ErrUnreadablePayload)
}

func TestDelimitedParser_DuplicateHeaders(t *testing.T) {
	payload := "Name,Notes,Notes,Notes_1,Notes\nAcme,first,second,third,fourth\n"

	rows, err := NewDelimitedParser().Parse(strings.NewReader(payload), ports.ParseOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, domain.RawRow{
		"Name":    "Acme",
		"Notes":   "first",
		"Notes_2": "second",
		"Notes_1": "third",
		"Notes_3": "fourth",
	}, rows[0])
}

func TestSniffDelimiter(t *testing.T) {
	assert.Equal(t, '\t', SniffDelimiter([]byte("a\tb\tc\n1,2\t3")))
	assert.Equal(t, ',', SniffDelimiter([]byte("a,b\tc")))
	assert.Equal(t, ',', SniffDelimiter([]byte("single")))
}

func TestDelimiterFromName(t *testing.T) {
	for name, want := range map[string]rune{"": 0, "auto": 0, "Comma": ',', ",": ',', "tab": '\t', " TAB ": '\t'} {
		got, err := DelimiterFromName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := DelimiterFromName("pipe")
	assert.Error(t, err)
}
