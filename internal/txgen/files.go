package txgen

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileMode is the permission used for emitted JSON files.
const FileMode = 0o644

// WriteFiles writes one JSON payload file per transaction into dir and
// returns the written paths in order. Existing files are overwritten. dir
// must already exist; the first write failure stops the pass.
func WriteFiles(dir string, txs []Transaction) ([]string, error) {
	paths := make([]string, 0, len(txs))
	for _, tx := range txs {
		data, err := MarshalPayload(tx.Payload())
		if err != nil {
			return paths, fmt.Errorf("encoding %s: %w", tx.FileName(), err)
		}
		path := filepath.Join(dir, tx.FileName())
		if err := os.WriteFile(path, data, FileMode); err != nil {
			return paths, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
