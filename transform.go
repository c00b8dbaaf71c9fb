package emojidata

import (
	"github.com/pkg/errors"
	"github.com/tidwall/btree"
)

type orderedRecord struct {
	sortOrder float64
	seq       int
	r         *Record
}

// ties on sort_order fall back to the source position
func bySortOrder(a, b interface{}) bool {
	i1, i2 := a.(*orderedRecord), b.(*orderedRecord)
	if i1.sortOrder != i2.sortOrder {
		return i1.sortOrder < i2.sortOrder
	}

	return i1.seq < i2.seq
}

// Transform orders records by sort_order and produces for each one a new
// record that carries the decoded char and none of the denied fields.
// The input records are left untouched.
func Transform(records []*Record, deny Denylist) ([]*Record, error) {
	tr := btree.NewNonConcurrent(bySortOrder)
	for i, r := range records {
		so := r.Get(sortOrderField)
		if !so.Exists() {
			return nil, errors.Wrapf(ErrInvalidRecord, "record %d: missing %s", i, sortOrderField)
		}

		tr.Set(&orderedRecord{sortOrder: so.Float(), seq: i, r: r})
	}

	result := make([]*Record, 0, len(records))
	var err error
	tr.Ascend(nil, func(i interface{}) bool {
		or := i.(*orderedRecord)

		out, tErr := transformRecord(or.r, deny)
		if tErr != nil {
			err = errors.Wrapf(tErr, "record %d", or.seq)
			return false
		}

		result = append(result, out)
		return true
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

func transformRecord(r *Record, deny Denylist) (*Record, error) {
	unified := r.Get(unifiedField)
	if !unified.Exists() {
		return nil, errors.Wrapf(ErrInvalidRecord, "missing %s", unifiedField)
	}

	char, err := Decode(unified.String())
	if err != nil {
		return nil, err
	}

	out := r.Clone()
	if err := out.SetString(charField, char); err != nil {
		return nil, err
	}

	out.Delete(deny.Names()...)

	return out, nil
}
