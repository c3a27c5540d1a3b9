package output

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kmakeev/egrul-go/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("parquet")
	require.NoError(t, err)
	assert.Equal(t, Parquet, f)

	f, err = ParseFormat("NDJSON")
	require.NoError(t, err)
	assert.Equal(t, JSONLines, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func sampleLE(n int) []*model.LegalEntityRecord {
	out := make([]*model.LegalEntityRecord, n)
	for i := range out {
		out[i] = &model.LegalEntityRecord{OGRN: "1234567890123", INN: "1234567890", FullName: "ООО ТЕСТ"}
	}
	return out
}

func TestParquetRollingFileCountAndNaming(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "run")

	w := NewParquetWriter(stem, Limits{MaxRecordsPerFile: 100000})
	for _, batch := range [][]int{{100000}, {100000}, {50000}} {
		require.NoError(t, w.AppendLE(sampleLE(batch[0])))
	}
	require.NoError(t, w.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "run_le.parquet")
	assert.Contains(t, names, "run_le_part_002.parquet")
	assert.Contains(t, names, "run_le_part_003.parquet")
	assert.Len(t, names, 3)
}

func TestJSONLinesWriterWritesOneObjectPerLine(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "run")

	w, err := NewJSONLinesWriter(stem)
	require.NoError(t, err)
	require.NoError(t, w.AppendLE(sampleLE(3)))
	require.NoError(t, w.Close())

	f, err := os.Open(stem + "_le.jsonl")
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var lines int
	for scanner.Scan() {
		assert.True(t, strings.HasPrefix(scanner.Text(), "{"))
		lines++
	}
	assert.Equal(t, 3, lines)
}

func TestJSONArrayWriterProducesValidArray(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "run")

	w, err := NewJSONArrayWriter(stem)
	require.NoError(t, err)
	require.NoError(t, w.AppendLE(sampleLE(2)))
	require.NoError(t, w.Close())

	b, err := os.ReadFile(stem + "_le.json")
	require.NoError(t, err)
	s := string(b)
	assert.True(t, strings.HasPrefix(s, "["))
	assert.True(t, strings.HasSuffix(s, "]"))
	var elems []json.RawMessage
	require.NoError(t, json.Unmarshal(b, &elems))
	assert.Len(t, elems, 2)
}
