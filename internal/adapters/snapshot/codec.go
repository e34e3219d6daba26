package snapshot

import (
	"bytes"
	stderrs "errors"
	"fmt"
	"io"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/errors"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode renders the inventory as a sorted list, one descriptor per line.
// Entries that would not decode back to the same string are rejected.
func Encode(format Format, inv domain.Inventory) ([]byte, error) {
	entries := inv.Strings()
	for i, entry := range entries {
		if err := checkEntry(i, entry); err != nil {
			return nil, err
		}
	}
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to encode snapshot as YAML")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to encode snapshot as YAML")
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to encode snapshot as JSON")
		}
		return append(data, '\n'), nil
	}
}

func checkEntry(i int, entry string) error {
	switch {
	case entry == "":
		return errors.New(errors.CodeInvalidEntry, fmt.Sprintf("entry %d is empty", i))
	case !utf8.ValidString(entry):
		return errors.New(errors.CodeInvalidEntry, fmt.Sprintf("entry %d is not valid UTF-8: %q", i, entry))
	}
	return nil
}

// Decode parses a persisted snapshot. Anything other than a list of unique,
// non-empty strings is rejected as corrupt; malformed input never decodes to
// an empty inventory.
func Decode(format Format, data []byte) (domain.Inventory, error) {
	var (
		entries []string
		err     error
	)
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.Inventory{}, corrupt("snapshot is empty")
	}
	switch format {
	case FormatYAML:
		entries, err = decodeYAML(data)
	default:
		entries, err = decodeJSON(data)
	}
	if err != nil {
		return domain.Inventory{}, err
	}

	seen := make(map[string]struct{}, len(entries))
	descriptors := make([]domain.Descriptor, 0, len(entries))
	for i, entry := range entries {
		if entry == "" {
			return domain.Inventory{}, corrupt(fmt.Sprintf("entry %d is empty", i))
		}
		if _, dup := seen[entry]; dup {
			return domain.Inventory{}, corrupt(fmt.Sprintf("entry %d duplicates %q", i, entry))
		}
		seen[entry] = struct{}{}
		descriptors = append(descriptors, domain.Descriptor(entry))
	}
	return domain.NewInventory(descriptors...), nil
}

func decodeJSON(data []byte) ([]string, error) {
	iter := jsoniter.ParseBytes(json, data)
	if next := iter.WhatIsNext(); next != jsoniter.ArrayValue {
		return nil, corrupt("expected a JSON array of strings")
	}
	entries := []string{}
	for iter.ReadArray() {
		if iter.WhatIsNext() != jsoniter.StringValue {
			return nil, corrupt(fmt.Sprintf("entry %d is not a string", len(entries)))
		}
		entries = append(entries, iter.ReadString())
		if iter.Error != nil {
			break
		}
	}
	if iter.Error != nil {
		return nil, errors.Wrap(iter.Error, errors.CodeSnapshotCorrupt, "snapshot is not valid JSON")
	}
	// Only whitespace may follow the array.
	if iter.WhatIsNext() != jsoniter.InvalidValue || !stderrs.Is(iter.Error, io.EOF) {
		return nil, corrupt("unexpected data after the JSON array")
	}
	return entries, nil
}

func decodeYAML(data []byte) ([]string, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, errors.CodeSnapshotCorrupt, "snapshot is not valid YAML")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.SequenceNode {
		return nil, corrupt("expected a YAML sequence of strings")
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !stderrs.Is(err, io.EOF) {
		return nil, corrupt("unexpected data after the YAML sequence")
	}

	items := doc.Content[0].Content
	entries := make([]string, 0, len(items))
	for i, item := range items {
		if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
			return nil, corrupt(fmt.Sprintf("entry %d is not a string", i))
		}
		entries = append(entries, item.Value)
	}
	return entries, nil
}

func corrupt(msg string) error {
	return errors.New(errors.CodeSnapshotCorrupt, msg)
}
