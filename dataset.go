package emojidata

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var ErrInvalidDataset = errors.New("dataset is not a json array of records")
var ErrInvalidRecord = errors.New("invalid emoji record")

const (
	unifiedField   = "unified"
	sortOrderField = "sort_order"
	charField      = "char"
)

// LoadDataset parses the source emoji dataset. Every element must be an
// object carrying a string unified field and a numeric sort_order.
func LoadDataset(b []byte) ([]*Record, error) {
	if !gjson.ValidBytes(b) {
		return nil, errors.Wrap(ErrInvalidDataset, "malformed json")
	}

	root := gjson.ParseBytes(b)
	if !root.IsArray() {
		return nil, errors.Wrapf(ErrInvalidDataset, "expected array, got %s", root.Type.String())
	}

	var records []*Record
	var err error
	idx := 0
	root.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			err = errors.Wrapf(ErrInvalidRecord, "record %d is not an object", idx)
			return false
		}

		r := newRecordFromJSON(v)
		if vErr := validateRecord(r); vErr != nil {
			err = errors.Wrapf(vErr, "record %d", idx)
			return false
		}

		records = append(records, r)
		idx++
		return true
	})

	if err != nil {
		return nil, err
	}

	return records, nil
}

func validateRecord(r *Record) error {
	unified := r.Get(unifiedField)
	if !unified.Exists() {
		return errors.Wrapf(ErrInvalidRecord, "missing %s", unifiedField)
	}

	if unified.Type != gjson.String {
		return errors.Wrapf(ErrInvalidRecord, "%s must be a string", unifiedField)
	}

	so := r.Get(sortOrderField)
	if !so.Exists() {
		return errors.Wrapf(ErrInvalidRecord, "missing %s", sortOrderField)
	}

	if so.Type != gjson.Number {
		return errors.Wrapf(ErrInvalidRecord, "%s must be a number", sortOrderField)
	}

	return nil
}
