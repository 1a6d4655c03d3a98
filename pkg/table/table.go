// Package table loads the delimiter-separated input tables into typed records.
package table

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/boekenvak/impactviz/models"
	"github.com/boekenvak/impactviz/pkg/nurgenre"
)

// MissingColumnError reports a required column absent from a table header.
type MissingColumnError struct {
	Path   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("table %s is missing required column %q", e.Path, e.Column)
}

// header indexes column names to positions.
type header map[string]int

func (h header) require(path string, cols ...string) error {
	for _, col := range cols {
		if _, ok := h[col]; !ok {
			return &MissingColumnError{Path: path, Column: col}
		}
	}
	return nil
}

func (h header) get(record []string, col string) string {
	idx, ok := h[col]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// open returns a reader for path, transparently decompressing .gz files.
func open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening table: %w", err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error opening gzip table: %w", err)
	}
	return &gzipFile{file: f, Reader: gz}, nil
}

type gzipFile struct {
	file *os.File
	*gzip.Reader
}

func (g *gzipFile) Close() error {
	gzErr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return gzErr
}

func newReader(r io.Reader, delimiter rune) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	return cr
}

// parseFloat interprets a numeric cell. The literal token "nan" and the empty
// string both encode a missing value.
func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// LoadImpactTerms reads the impact-term prevalence table. Expected columns:
// impact_term, nur_genre, normalized_frequency_genre, normalized_frequency_corpus
// and optionally prevalent_impact_type.
func LoadImpactTerms(path string, delimiter rune) ([]models.ImpactTermRecord, error) {
	rc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	cr := newReader(rc, delimiter)
	head, err := readHeader(cr, path)
	if err != nil {
		return nil, err
	}
	if err := head.require(path, "impact_term", "nur_genre",
		"normalized_frequency_genre", "normalized_frequency_corpus"); err != nil {
		return nil, err
	}

	var records []models.ImpactTermRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading table %s: %w", path, err)
		}
		records = append(records, models.ImpactTermRecord{
			Term:         strings.TrimSpace(head.get(row, "impact_term")),
			Genre:        strings.TrimSpace(head.get(row, "nur_genre")),
			FreqInGenre:  parseFloat(head.get(row, "normalized_frequency_genre")),
			FreqInCorpus: parseFloat(head.get(row, "normalized_frequency_corpus")),
			ImpactType:   strings.TrimSpace(head.get(row, "prevalent_impact_type")),
		})
	}
	return records, nil
}

// LoadTopicProportions reads the per-book topic-proportion table. Expected
// columns: isbn, nur_genre, topic_number, category and one of topic_proportion
// or doc_proportion (normalized to topic_proportion).
func LoadTopicProportions(path string, delimiter rune) ([]models.TopicProportionRecord, error) {
	rc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	cr := newReader(rc, delimiter)
	head, err := readHeader(cr, path)
	if err != nil {
		return nil, err
	}
	if err := head.require(path, "isbn", "topic_number", "category"); err != nil {
		return nil, err
	}
	_, hasGenre := head["nur_genre"]
	if !hasGenre {
		if _, ok := head["nur"]; !ok {
			return nil, &MissingColumnError{Path: path, Column: "nur_genre"}
		}
	}
	propCol := "topic_proportion"
	if _, ok := head[propCol]; !ok {
		propCol = "doc_proportion"
		if _, ok := head[propCol]; !ok {
			return nil, &MissingColumnError{Path: path, Column: "topic_proportion"}
		}
	}

	var records []models.TopicProportionRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading table %s: %w", path, err)
		}
		genre := strings.TrimSpace(head.get(row, "nur_genre"))
		if !hasGenre {
			genre = genreFromNURCell(head.get(row, "nur"))
		}
		records = append(records, models.TopicProportionRecord{
			ISBN:       strings.TrimSpace(head.get(row, "isbn")),
			Genre:      genre,
			TopicID:    strings.TrimSpace(head.get(row, "topic_number")),
			Category:   strings.TrimSpace(head.get(row, "category")),
			Proportion: parseFloat(head.get(row, propCol)),
		})
	}
	return records, nil
}

// genreFromNURCell derives a genre label from a cell of raw NUR codes,
// separated by semicolons or commas. Tables without a precomputed nur_genre
// column carry the codes instead.
func genreFromNURCell(cell string) string {
	cell = strings.ReplaceAll(cell, ";", ",")
	var codes []string
	for _, part := range strings.Split(cell, ",") {
		codes = append(codes, strings.TrimSpace(part))
	}
	genre, ok := nurgenre.GenreFromCodes(codes)
	if !ok {
		return ""
	}
	return genre
}

func readHeader(cr *csv.Reader, path string) (header, error) {
	row, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header of %s: %w", path, err)
	}
	head := make(header, len(row))
	for i, col := range row {
		head[strings.TrimSpace(col)] = i
	}
	return head, nil
}
