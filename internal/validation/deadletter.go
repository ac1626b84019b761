package validation

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/osse101/LootForge_Go/internal/event"
)

// DeadLetterSchemaPath is the schema every dead-letter line must satisfy
const DeadLetterSchemaPath = "configs/schemas/deadletter.schema.json"

// maxDeadLetterLine bounds a single JSONL record
const maxDeadLetterLine = 1 << 20

// RejectedLine is a dead-letter record that failed to parse or validate
type RejectedLine struct {
	Line int
	Err  error
}

// DeadLetterReport is the outcome of reading a dead-letter file
type DeadLetterReport struct {
	Entries  []event.DeadLetterEntry
	Rejected []RejectedLine
	ByType   map[event.Type]int
}

// ReadDeadLetters validates every non-empty line of r against schemaPath and
// decodes the valid ones. Invalid lines are reported, never fatal.
func ReadDeadLetters(r io.Reader, v SchemaValidator, schemaPath string) (*DeadLetterReport, error) {
	report := &DeadLetterReport{ByType: make(map[event.Type]int)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxDeadLetterLine)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if err := v.ValidateBytes(line, schemaPath); err != nil {
			report.Rejected = append(report.Rejected, RejectedLine{Line: lineNo, Err: err})
			continue
		}

		var entry event.DeadLetterEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			report.Rejected = append(report.Rejected, RejectedLine{Line: lineNo, Err: err})
			continue
		}
		report.Entries = append(report.Entries, entry)
		report.ByType[entry.Event.Type]++
	}
	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("failed to read dead-letter file at line %d: %w", lineNo+1, err)
	}
	return report, nil
}

// StalePlayers returns the distinct players named by dead-lettered inventory
// changes, in first-seen order.
func (r *DeadLetterReport) StalePlayers() ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, entry := range r.Entries {
		if entry.Event.Type != event.InventoryChanged {
			continue
		}
		payload, err := event.DecodePayload[event.InventoryChangedPayloadV1](entry.Event.Payload)
		if err != nil {
			return nil, err
		}
		for _, id := range payload.PlayerIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out, nil
}
