// Package parallel implements the orchestrator of spec §4.6: file
// discovery, size-based load balancing across workers, bounded
// per-registry channels, worker/writer goroutines, and run statistics.
package parallel

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kmakeev/egrul-go/pkg/types"
)

// FileInfo is one discovered input file and its size in bytes.
type FileInfo struct {
	Path string
	Size int64
}

// Discover walks root recursively and returns every regular file whose
// extension is ".xml" (case-insensitive), in the order the filesystem
// walk visits them.
func Discover(root string) ([]FileInfo, error) {
	var files []FileInfo
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".xml") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, FileInfo{Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, types.IOError(err, "walking %s", root)
	}
	return files, nil
}

// DistributeBySize sorts files by descending size and repeatedly
// places the next file into whichever of numWorkers bins currently
// holds the least total size, per spec §4.6. The result always has
// exactly numWorkers bins (possibly empty ones when there are fewer
// files than workers).
func DistributeBySize(files []FileInfo, numWorkers int) [][]FileInfo {
	if numWorkers < 1 {
		numWorkers = 1
	}
	sorted := make([]FileInfo, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Size > sorted[j].Size })

	bins := make([][]FileInfo, numWorkers)
	loads := make([]int64, numWorkers)
	for _, f := range sorted {
		lightest := 0
		for i := 1; i < numWorkers; i++ {
			if loads[i] < loads[lightest] {
				lightest = i
			}
		}
		bins[lightest] = append(bins[lightest], f)
		loads[lightest] += f.Size
	}
	return bins
}

// DistributeFlat deals files round-robin into numWorkers bins (file i
// goes to bin i mod numWorkers), ignoring size. Used when size-based
// balancing is disabled.
func DistributeFlat(files []FileInfo, numWorkers int) [][]FileInfo {
	if numWorkers < 1 {
		numWorkers = 1
	}
	bins := make([][]FileInfo, numWorkers)
	for i, f := range files {
		bins[i%numWorkers] = append(bins[i%numWorkers], f)
	}
	return bins
}
