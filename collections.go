package hexcodec

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/rawbytedev/hexcodec/internal/common"
)

// ArrayContainsArray reports whether every element of subset is in superset,
// or with some set, whether at least one is.
func ArrayContainsArray[T comparable](superset, subset []T, some bool) bool {
	members := make(map[T]struct{}, len(superset))
	for _, v := range superset {
		members[v] = struct{}{}
	}
	for _, v := range subset {
		_, found := members[v]
		if some && found {
			return true
		}
		if !some && !found {
			return false
		}
	}
	return !some
}

// ArrayContainsArrayAny is ArrayContainsArray for slices or arrays of unknown
// type. Elements are compared with reflect.DeepEqual.
func ArrayContainsArrayAny(superset, subset any, some bool) (bool, error) {
	sup := reflect.ValueOf(superset)
	sub := reflect.ValueOf(subset)
	if !common.IsSequenceKind(sup.Kind()) {
		return false, errors.Wrapf(ErrInvalidArgument, "superset must be a sequence, got %T", superset)
	}
	if !common.IsSequenceKind(sub.Kind()) {
		return false, errors.Wrapf(ErrInvalidArgument, "subset must be a sequence, got %T", subset)
	}

	contains := func(x any) bool {
		for i := 0; i < sup.Len(); i++ {
			if reflect.DeepEqual(sup.Index(i).Interface(), x) {
				return true
			}
		}
		return false
	}
	for i := 0; i < sub.Len(); i++ {
		found := contains(sub.Index(i).Interface())
		if some && found {
			return true, nil
		}
		if !some && !found {
			return false, nil
		}
	}
	return !some, nil
}

// GetKeys collects the string stored under key in each record, in order.
// With allowEmpty, missing or falsy values (nil, false, 0, "") become "".
// Any other non-string value fails with ErrInvalidFormat.
func GetKeys(records []map[string]any, key string, allowEmpty bool) ([]string, error) {
	out := make([]string, 0, len(records))
	for i, record := range records {
		value := record[key]
		if allowEmpty && common.IsFalsy(value) {
			out = append(out, "")
			continue
		}
		s, ok := value.(string)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidFormat, "record %d: value under %q is %T, not a string", i, key, value)
		}
		out = append(out, s)
	}
	return out, nil
}

// GetKeysAny is GetKeys for records and key of unknown type, e.g. a decoded
// JSON array. Elements that are not string-keyed maps are treated as records
// without the key.
func GetKeysAny(records any, key any, allowEmpty bool) ([]string, error) {
	rv := reflect.ValueOf(records)
	if !common.IsSequenceKind(rv.Kind()) {
		return nil, errors.Wrapf(ErrInvalidArgument, "records must be a sequence, got %T", records)
	}
	k, ok := key.(string)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "key must be a string, got %T", key)
	}

	recs := make([]map[string]any, rv.Len())
	for i := range recs {
		elem := rv.Index(i)
		for elem.Kind() == reflect.Interface && !elem.IsNil() {
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.Map || elem.Type().Key().Kind() != reflect.String {
			continue
		}
		m := make(map[string]any, elem.Len())
		iter := elem.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		recs[i] = m
	}
	return GetKeys(recs, k, allowEmpty)
}
