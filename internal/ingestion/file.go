package ingestion

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/careersight/careersight/internal/logger"
	"github.com/careersight/careersight/internal/schemas"
	"github.com/careersight/careersight/internal/types"
)

// RecordError reports a batch record that failed schema validation. The
// index refers to the record's position in the source array.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// LoadBatch reads a JSON array of raw posting records from a file. Invalid
// records are skipped and reported; the batch proceeds with the rest.
func LoadBatch(path string) ([]types.RawPosting, []RecordError, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, nil, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadBatch(f)
}

// ReadBatch reads a JSON array of raw posting records from a reader. Each
// record is validated individually so one malformed record does not reject
// the whole batch.
func ReadBatch(r io.Reader) ([]types.RawPosting, []RecordError, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read batch: %w", err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil, fmt.Errorf("batch is not a JSON array: %w", err)
	}

	postings := make([]types.RawPosting, 0, len(records))
	var invalid []RecordError

	for i, record := range records {
		if err := schemas.ValidatePostingRecord(record); err != nil {
			invalid = append(invalid, RecordError{Index: i, Err: err})
			continue
		}

		var posting types.RawPosting
		if err := json.Unmarshal(record, &posting); err != nil {
			invalid = append(invalid, RecordError{Index: i, Err: fmt.Errorf("failed to decode record: %w", err)})
			continue
		}

		posting.Description = CleanText(posting.Description)
		postings = append(postings, posting)
	}

	if len(invalid) > 0 {
		logger.Warn().
			Int("valid", len(postings)).
			Int("invalid", len(invalid)).
			Msg("batch contained invalid records")
	}

	return postings, invalid, nil
}
