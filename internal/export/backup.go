package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// Backup is the JSON backup document: the full working set plus an export
// timestamp.
type Backup struct {
	Contacts   []types.Contact  `json:"contacts"`
	Categories []types.Category `json:"categories"`
	Books      []types.Book     `json:"books"`
	Genres     []types.Genre    `json:"genres"`
	Sales      []types.Sale     `json:"sales"`
	ExportedAt time.Time        `json:"exported_at"`
}

// MarshalBackup renders the working set as a pretty-printed backup document.
func MarshalBackup(ws *types.Dataset, now time.Time) ([]byte, error) {
	b := Backup{
		Contacts:   ws.Contacts,
		Categories: ws.Categories,
		Books:      ws.Books,
		Genres:     ws.Genres,
		Sales:      ws.Sales,
		ExportedAt: now,
	}
	raw, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	return raw, nil
}

// BackupFilename returns the download filename with its timestamp suffix.
func BackupFilename(now time.Time) string {
	return fmt.Sprintf("shopkeep_backup_%d.json", now.UnixMilli())
}

// ParseBackup parses and shape-checks a backup document. Invalid JSON
// returns ErrBackupParse. A document that parses but does not expose at
// least one of the record collections as an array returns ErrBackupSchema.
func ParseBackup(raw []byte) (*Backup, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrBackupParse, err)
	}

	if !hasArray(top, "contacts") && !hasArray(top, "books") {
		return nil, fmt.Errorf("%w: need a contacts or books array", types.ErrBackupSchema)
	}

	var b Backup
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrBackupSchema, err)
	}
	return &b, nil
}

func hasArray(top map[string]json.RawMessage, key string) bool {
	raw, ok := top[key]
	if !ok {
		return false
	}
	var arr []json.RawMessage
	return json.Unmarshal(raw, &arr) == nil
}
