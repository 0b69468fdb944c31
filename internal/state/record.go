package state

import (
	"encoding/json"
	"fmt"

	"github.com/danieljhkim/backupscope/internal/scope"
)

// FileListKey names the persisted [partial, excluded] record.
const FileListKey = "file-list"

// EncodeOverrides renders overrides as [[partial...], [excluded...]].
func EncodeOverrides(o *scope.Overrides) ([]byte, error) {
	record := [2][]string{o.Partial(), o.Excluded()}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal overrides: %w", err)
	}
	return data, nil
}

// DecodeOverrides parses a persisted record. Failures wrap scope.ErrDecode.
func DecodeOverrides(data []byte) (*scope.Overrides, error) {
	var record [][]string
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: file list record: %v", scope.ErrDecode, err)
	}
	if len(record) != 2 {
		return nil, fmt.Errorf("%w: file list record must hold 2 lists, got %d", scope.ErrDecode, len(record))
	}
	return scope.NewOverrides(record[1], record[0])
}
