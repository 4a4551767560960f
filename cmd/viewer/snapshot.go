package viewer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/natefinch/atomic"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = "https://spacemesh.io/txview.snapshot.schema.json.1.0"

	schemaFile = "snapshot.schema.json"
)

// Schema of the file written by the dump command.
const Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "tip", "digest", "records"],
  "properties": {
    "version": {"type": "string"},
    "tip": {"type": "integer", "minimum": 0},
    "digest": {"type": "string", "pattern": "^0x[0-9a-f]{64}$"},
    "records": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["id", "index", "height", "position", "type", "time", "credit", "debit", "status", "depth"],
        "properties": {
          "id": {"type": "string"},
          "index": {"type": "integer", "minimum": 0},
          "height": {"type": "integer"},
          "position": {"type": "integer", "minimum": 0},
          "type": {"enum": ["other", "generated", "send", "receive", "spend", "self"]},
          "address": {"type": "string"},
          "memo": {"type": "string"},
          "time": {"type": "string"},
          "credit": {"type": "integer"},
          "debit": {"type": "integer"},
          "status": {"enum": [
            "open_until_block", "open_until_date", "offline", "unconfirmed", "abandoned", "confirming",
            "confirmed", "conflicted", "immature", "matures_warning", "not_accepted"
          ]},
          "depth": {"type": "integer"},
          "archived": {"type": "boolean"}
        }
      }
    }
  }
}`

// Snapshot is the serialized state of the view.
type Snapshot struct {
	Version string           `json:"version"`
	Tip     int64            `json:"tip"`
	Digest  string           `json:"digest"`
	Records []SnapshotRecord `json:"records"`
}

// SnapshotRecord is one row of a Snapshot.
type SnapshotRecord struct {
	ID       string    `json:"id"`
	Index    int       `json:"index"`
	Height   int64     `json:"height"`
	Position int64     `json:"position"`
	Type     string    `json:"type"`
	Address  string    `json:"address,omitempty"`
	Memo     string    `json:"memo,omitempty"`
	Time     time.Time `json:"time"`
	Credit   int64     `json:"credit"`
	Debit    int64     `json:"debit"`
	Status   string    `json:"status"`
	Depth    int64     `json:"depth"`
	Archived bool      `json:"archived,omitempty"`
}

// ValidateSchema checks data against the snapshot schema.
func ValidateSchema(data []byte) error {
	sch, err := jsonschema.CompileString(schemaFile, Schema)
	if err != nil {
		return fmt.Errorf("compile snapshot json schema: %w", err)
	}
	var v any
	if err = json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	if err = sch.Validate(v); err != nil {
		return fmt.Errorf("validate snapshot data: %w", err)
	}
	return nil
}

// WriteSnapshot replaces the file at path with snap. Readers never observe a
// partially written file.
func WriteSnapshot(path string, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// ReadSnapshot loads and validates a snapshot written by WriteSnapshot.
func ReadSnapshot(fs afero.Fs, path string) (*Snapshot, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	if snap.Version != SchemaVersion {
		return nil, fmt.Errorf("expected version %v, got %v", SchemaVersion, snap.Version)
	}
	return &snap, nil
}
