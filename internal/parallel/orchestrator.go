package parallel

import (
	"runtime"
	"sync"

	"github.com/kmakeev/egrul-go/internal/applog"
	"github.com/kmakeev/egrul-go/internal/output"
	"github.com/kmakeev/egrul-go/pkg/model"
	"github.com/kmakeev/egrul-go/pkg/types"
)

// Options configures one ProcessDirectory run.
type Options struct {
	Format            output.Format
	Limits            output.Limits
	Workers           int
	BatchSize         int
	ChannelBufferSize int
	ContinueOnError   bool
	DistributeBySize  bool

	// OnFileDone, when non-nil, is invoked from a worker goroutine
	// after each file is processed (err is nil on success). It may run
	// concurrently from as many goroutines as there are workers, so it
	// must be safe for concurrent use.
	OnFileDone func(file FileInfo, result ParseResult, err error)
}

func (o Options) workerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

func (o Options) batchSize() int {
	if o.BatchSize > 0 {
		return o.BatchSize
	}
	return 5000
}

func (o Options) channelBufferSize() int {
	if o.ChannelBufferSize > 0 {
		return o.ChannelBufferSize
	}
	return 10000
}

// ProcessDirectory discovers every *.xml file under inputDir, parses
// them across opts.workerCount() goroutines, and forwards emitted records
// through two bounded channels to dedicated LE/SP writer goroutines
// that batch into the columnar writer rooted at outputStem. It
// implements spec §4.6/§5 end to end: size-balanced dispatch, bounded
// channels as the back-pressure mechanism, per-file error containment,
// and a final join that surfaces any writer failure.
func ProcessDirectory(inputDir, outputStem string, opts Options) (*Stats, error) {
	stats := &Stats{}
	stats.Start()

	files, err := Discover(inputDir)
	if err != nil {
		return stats, err
	}
	if len(files) == 0 {
		stats.Stop()
		return stats, nil
	}

	workers := opts.workerCount()
	var bins [][]FileInfo
	if opts.DistributeBySize {
		bins = DistributeBySize(files, workers)
	} else {
		bins = DistributeFlat(files, workers)
	}

	writer, err := output.New(outputStem, opts.Format, opts.Limits)
	if err != nil {
		return stats, err
	}

	leCh := make(chan *model.LegalEntityRecord, opts.channelBufferSize())
	spCh := make(chan *model.SoleProprietorRecord, opts.channelBufferSize())

	writerErrs := make(chan error, 2)
	var writerWG sync.WaitGroup
	writerWG.Add(2)
	go runLEWriter(writer, leCh, opts.batchSize(), writerErrs, &writerWG)
	go runSPWriter(writer, spCh, opts.batchSize(), writerErrs, &writerWG)

	var workerWG sync.WaitGroup
	for _, bin := range bins {
		if len(bin) == 0 {
			continue
		}
		workerWG.Add(1)
		go func(bin []FileInfo) {
			defer workerWG.Done()
			processBin(bin, leCh, spCh, stats, opts)
		}(bin)
	}
	workerWG.Wait()

	close(leCh)
	close(spCh)
	writerWG.Wait()
	close(writerErrs)

	for werr := range writerErrs {
		if werr != nil {
			return stats, werr
		}
	}

	if err := writer.Close(); err != nil {
		return stats, err
	}

	stats.Stop()
	return stats, nil
}

func processBin(bin []FileInfo, leCh chan<- *model.LegalEntityRecord, spCh chan<- *model.SoleProprietorRecord, stats *Stats, opts Options) {
	for _, file := range bin {
		result, err := ParseFile(file.Path, func(recErr error) {
			stats.ParseErrors.Add(1)
			applog.Warn("record parse error", "file", file.Path, "error", recErr)
		})
		if err != nil {
			stats.FilesFailed.Add(1)
			stats.ParseErrors.Add(1)
			applog.Warn("file parse error", "file", file.Path, "error", err)
			if opts.OnFileDone != nil {
				opts.OnFileDone(file, result, err)
			}
			if !opts.ContinueOnError {
				return
			}
			continue
		}

		for _, r := range result.LE {
			leCh <- r
		}
		for _, r := range result.SP {
			spCh <- r
		}
		stats.LERecords.Add(int64(len(result.LE)))
		stats.SPRecords.Add(int64(len(result.SP)))
		stats.FilesProcessed.Add(1)
		stats.BytesProcessed.Add(file.Size)

		if opts.OnFileDone != nil {
			opts.OnFileDone(file, result, nil)
		}
	}
}

func runLEWriter(w output.Writer, ch <-chan *model.LegalEntityRecord, batchSize int, errs chan<- error, wg *sync.WaitGroup) {
	defer wg.Done()
	batch := make([]*model.LegalEntityRecord, 0, batchSize)
	for r := range ch {
		batch = append(batch, r)
		if len(batch) >= batchSize {
			if err := w.AppendLE(batch); err != nil {
				errs <- types.SerializationError(err, "writing LE batch")
				// Keep draining so producers blocked on send can finish.
				for range ch {
				}
				return
			}
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err := w.AppendLE(batch); err != nil {
			errs <- types.SerializationError(err, "flushing residual LE batch")
			return
		}
	}
	errs <- nil
}

func runSPWriter(w output.Writer, ch <-chan *model.SoleProprietorRecord, batchSize int, errs chan<- error, wg *sync.WaitGroup) {
	defer wg.Done()
	batch := make([]*model.SoleProprietorRecord, 0, batchSize)
	for r := range ch {
		batch = append(batch, r)
		if len(batch) >= batchSize {
			if err := w.AppendSP(batch); err != nil {
				errs <- types.SerializationError(err, "writing SP batch")
				// Keep draining so producers blocked on send can finish.
				for range ch {
				}
				return
			}
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err := w.AppendSP(batch); err != nil {
			errs <- types.SerializationError(err, "flushing residual SP batch")
			return
		}
	}
	errs <- nil
}
