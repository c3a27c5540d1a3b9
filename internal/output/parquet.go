package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/kmakeev/egrul-go/pkg/model"
	"github.com/kmakeev/egrul-go/pkg/types"
)

// Amortized per-record size estimates (bytes) from spec §4.5, used to
// trigger rolling without measuring actual serialized output. Crude,
// per spec §9's design note — a faithful future revision should track
// real flushed-batch byte counts instead.
const (
	leBytesPerRecord = 18 * 1024
	spBytesPerRecord = 8 * 1024
)

// Limits bounds a single rolled stream.
type Limits struct {
	MaxRecordsPerFile int
	MaxSizeMB         float64
}

func (l Limits) maxBytes() float64 { return l.MaxSizeMB * 1024 * 1024 }

// ParquetWriter is the columnar writer of spec §4.5: two independent
// rolling streams (LE and SP), each with its own accumulator, row
// counter, and file index.
type ParquetWriter struct {
	stem   string
	limits Limits
	le     *parquetStream
	sp     *parquetStream
}

// NewParquetWriter opens a writer rooted at stem (without extension);
// files are named "<stem>_le.parquet" / "<stem>_sp.parquet" and rolled
// siblings thereof.
func NewParquetWriter(stem string, limits Limits) *ParquetWriter {
	return &ParquetWriter{
		stem:   stem,
		limits: limits,
		le:     newParquetStream("le", leSchema, leBytesPerRecord),
		sp:     newParquetStream("sp", spSchema, spBytesPerRecord),
	}
}

// AppendLE buffers a batch of LE records, rolling to a new file when a
// ceiling is crossed.
func (w *ParquetWriter) AppendLE(batch []*model.LegalEntityRecord) error {
	for _, r := range batch {
		appendLERow(w.le.builder, r)
		w.le.rows++
	}
	return w.maybeRoll(w.le)
}

// AppendSP buffers a batch of SP records, rolling to a new file when a
// ceiling is crossed.
func (w *ParquetWriter) AppendSP(batch []*model.SoleProprietorRecord) error {
	for _, r := range batch {
		appendSPRow(w.sp.builder, r)
		w.sp.rows++
	}
	return w.maybeRoll(w.sp)
}

func (w *ParquetWriter) maybeRoll(s *parquetStream) error {
	estimatedBytes := float64(s.rows) * float64(s.bytesPerRecord)
	overRecords := w.limits.MaxRecordsPerFile > 0 && s.rows >= w.limits.MaxRecordsPerFile
	overSize := w.limits.MaxSizeMB > 0 && estimatedBytes >= w.limits.maxBytes()
	if !overRecords && !overSize {
		return nil
	}
	return w.flushStream(s)
}

func (w *ParquetWriter) flushStream(s *parquetStream) error {
	if s.rows == 0 {
		return nil
	}
	path := s.nextFilePath(w.stem)
	if err := writeParquetFile(path, s.schema, s.builder.NewRecord()); err != nil {
		return err
	}
	s.fileIndex++
	s.rows = 0
	return nil
}

// Close flushes any residual buffered rows for both streams.
func (w *ParquetWriter) Close() error {
	if err := w.flushStream(w.le); err != nil {
		return err
	}
	if err := w.flushStream(w.sp); err != nil {
		return err
	}
	w.le.builder.Release()
	w.sp.builder.Release()
	return nil
}

type parquetStream struct {
	label          string
	schema         *arrow.Schema
	builder        *array.RecordBuilder
	rows           int
	fileIndex      int
	bytesPerRecord int
}

func newParquetStream(label string, schema *arrow.Schema, bytesPerRecord int) *parquetStream {
	return &parquetStream{
		label:          label,
		schema:         schema,
		builder:        array.NewRecordBuilder(memory.DefaultAllocator, schema),
		fileIndex:      1,
		bytesPerRecord: bytesPerRecord,
	}
}

// nextFilePath returns the path for the stream's next file without
// advancing the numbering (flushStream does that after a successful
// write), per spec §4.5's naming scheme: the
// first file is "<stem>_<label>.parquet", subsequent ones are
// "<stem>_<label>_part_NNN.parquet" with a zero-padded 3-digit index
// starting at 002.
func (s *parquetStream) nextFilePath(stem string) string {
	if s.fileIndex == 1 {
		return fmt.Sprintf("%s_%s.parquet", stem, s.label)
	}
	return fmt.Sprintf("%s_%s_part_%03d.parquet", stem, s.label, s.fileIndex)
}

func writeParquetFile(path string, schema *arrow.Schema, rec arrow.Record) error {
	defer rec.Release()

	f, err := os.Create(path)
	if err != nil {
		return types.IOError(err, "creating %s", path)
	}
	defer f.Close()

	props := parquet.NewWriterProperties(
		parquet.WithCompression(compress.Codecs.Snappy),
		parquet.WithVersion(parquet.V2_LATEST),
	)
	fw, err := pqarrow.NewFileWriter(schema, f, props, pqarrow.DefaultWriterProps())
	if err != nil {
		return types.SerializationError(err, "opening parquet writer for %s", path)
	}
	if err := fw.Write(rec); err != nil {
		return types.SerializationError(err, "writing parquet batch to %s", path)
	}
	if err := fw.Close(); err != nil {
		return types.SerializationError(err, "closing parquet writer for %s", path)
	}
	return nil
}

func appendLERow(b *array.RecordBuilder, r *model.LegalEntityRecord) {
	str := func(i int, v string) { b.Field(i).(*array.StringBuilder).Append(v) }
	str(0, r.OGRN)
	str(1, r.OGRNDate)
	str(2, r.INN)
	str(3, r.KPP)
	str(4, r.FullName)
	str(5, r.ShortName)
	str(6, r.BrandName)
	str(7, r.OPFCode)
	str(8, r.OPFName)
	str(9, r.StatusCode)
	str(10, r.RegistrationDate)
	str(11, r.TerminationDate)
	str(12, r.TerminationMethod)
	str(13, r.ExtractDate)
	str(14, r.Address.PostalCode)
	str(15, r.Address.RegionCode)
	str(16, r.Address.RegionName)
	str(17, r.Address.District)
	str(18, r.Address.City)
	str(19, r.Address.Locality)
	str(20, r.Address.Street)
	str(21, r.Address.House)
	str(22, r.Address.Building)
	str(23, r.Address.Flat)
	str(24, r.Address.FullAddress)
	str(25, r.Address.FIAS)
	str(26, r.Address.KLADR)
	b.Field(27).(*array.Float64Builder).Append(r.Capital.Amount)
	str(28, r.Capital.Currency)
	str(29, r.MainActivity.Code)
	str(30, r.MainActivity.Name)
	str(31, jsonOf(r.AdditionalActivities))
	b.Field(32).(*array.Int32Builder).Append(int32(r.FoundersCount()))
	str(33, jsonOf(r.Founders))
	str(34, jsonOf(r.History))
	str(35, r.HeadOfficer.Person.FullName())
	str(36, r.RegistrationAuthorityCode)
	str(37, r.RegistrationAuthorityName)
	str(38, r.Registration.CertificateSeries)
	str(39, r.Registration.CertificateNumber)
	str(40, r.Registration.CertificateDate)
	str(41, r.Email)
}

func appendSPRow(b *array.RecordBuilder, r *model.SoleProprietorRecord) {
	str := func(i int, v string) { b.Field(i).(*array.StringBuilder).Append(v) }
	str(0, r.OGRNIP)
	str(1, r.OGRNIPDate)
	str(2, r.INN)
	str(3, r.Person.Last)
	str(4, r.Person.First)
	str(5, r.Person.Middle)
	str(6, r.Gender.String())
	str(7, r.Citizenship.Kind.String())
	str(8, r.Citizenship.OKSMCode)
	str(9, r.Citizenship.CountryName)
	str(10, r.StatusCode)
	str(11, r.TerminationDate)
	str(12, r.TerminationMethod)
	str(13, r.ExtractDate)
	str(14, r.Address.PostalCode)
	str(15, r.Address.RegionCode)
	str(16, r.Address.RegionName)
	str(17, r.Address.District)
	str(18, r.Address.City)
	str(19, r.Address.Locality)
	str(20, r.Address.Street)
	str(21, r.Address.House)
	str(22, r.Address.Flat)
	str(23, r.Address.FullAddress)
	str(24, r.MainActivity.Code)
	str(25, r.MainActivity.Name)
	str(26, jsonOf(r.AdditionalActivities))
	str(27, r.RegistrationAuthorityCode)
	str(28, r.RegistrationAuthorityName)
	str(29, jsonOf(r.History))
	str(30, r.Email)
}

func jsonOf(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
