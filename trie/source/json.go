package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "source")

// record mirrors one value of entities.json.
type record struct {
	Codepoints []rune  `json:"codepoints"`
	Characters *string `json:"characters"`
}

// readBufSize is the iterator's read buffer; entities.json is ~150KB.
const readBufSize = 16 * 1024

// Parse streams a JSON entity table from r, keeping source order.
func Parse(r io.Reader) (Table, error) {
	iter := jsoniter.Parse(jsoniter.ConfigCompatibleWithStandardLibrary, r, readBufSize)

	var (
		table  Table
		recErr error
	)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, fmt.Errorf("%w: top level is not an object", ErrMalformed)
	}
	ok := iter.ReadObjectCB(func(it *jsoniter.Iterator, name string) bool {
		var rec record
		it.ReadVal(&rec)
		if it.Error != nil {
			return false
		}
		if rec.Characters == nil {
			recErr = fmt.Errorf("%w: %q has no characters", ErrMalformed, name)
			return false
		}
		table = append(table, Entry{Name: name, Value: *rec.Characters, Codepoints: rec.Codepoints})
		return true
	})
	if recErr != nil {
		return nil, recErr
	}
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, iter.Error)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Load reads and parses the entity table at path. A missing file yields
// ErrSourceNotFound; callers show DownloadHint.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrSourceNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	log.WithField("path", path).WithField("entries", len(table)).Debug("loaded source table")
	return table, nil
}
