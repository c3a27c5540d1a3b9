package parallel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kmakeev/egrul-go/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributeBySizeBalancesLoad(t *testing.T) {
	files := []FileInfo{
		{Path: "a.xml", Size: 100},
		{Path: "b.xml", Size: 200},
		{Path: "c.xml", Size: 50},
		{Path: "d.xml", Size: 150},
	}

	bins := DistributeBySize(files, 2)
	require.Len(t, bins, 2)

	var total int
	for _, bin := range bins {
		total += len(bin)
	}
	assert.Equal(t, 4, total)

	var loadA, loadB int64
	for _, f := range bins[0] {
		loadA += f.Size
	}
	for _, f := range bins[1] {
		loadB += f.Size
	}
	// Largest file (200) must not land alone against the remaining 300.
	assert.InDelta(t, float64(loadA), float64(loadB), 50)
}

func TestDiscoverFindsXMLCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.xml"), []byte("<ФАЙЛ/>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.XML"), []byte("<ФАЙЛ/>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("ignored"), 0o644))

	files, err := Discover(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestProcessDirectoryZeroFilesYieldsZeroOutput(t *testing.T) {
	in := t.TempDir()
	outDir := t.TempDir()

	stats, err := ProcessDirectory(in, filepath.Join(outDir, "stem"), Options{
		Format: output.JSONLines,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalRecords())

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProcessDirectoryParsesMixedRecords(t *testing.T) {
	in := t.TempDir()
	outDir := t.TempDir()

	leDoc := `<ФАЙЛ><Документ><СвЮЛ ОГРН="1234567890123" ИНН="1234567890"><СвНаим НаимПолн="ООО ТЕСТ"/></СвЮЛ></Документ></ФАЙЛ>`
	spDoc := `<ФАЙЛ><Документ><СвИП ОГРНИП="123456789012345" ИНН="123456789012"><ФИОРус Фамилия="Иванов" Имя="Иван"/></СвИП></Документ></ФАЙЛ>`
	require.NoError(t, os.WriteFile(filepath.Join(in, "EGRUL_1.xml"), []byte(leDoc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "EGRIP_1.xml"), []byte(spDoc), 0o644))

	stats, err := ProcessDirectory(in, filepath.Join(outDir, "stem"), Options{
		Format:  output.JSONLines,
		Workers: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.LERecords.Load())
	assert.Equal(t, int64(1), stats.SPRecords.Load())
	assert.Equal(t, int64(2), stats.FilesProcessed.Load())
}
