package docstore

import (
	"sort"
	"strings"
)

// ValueAtPath walks a dot-path through nested maps. Returns nil, false when
// any hop is missing or not a map.
func ValueAtPath(data map[string]interface{}, path string) (interface{}, bool) {
	parts := strings.Split(path, ".")
	current := interface{}(data)
	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// SetAtPath writes value at a dot-path, creating intermediate maps. Existing
// non-map intermediates are replaced.
func SetAtPath(data map[string]interface{}, path string, value interface{}) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// ValuesEqual is type-sensitive equality over JSON-shaped values. Numeric
// types are unified to float64, but a string never equals a number: the quote
// store holds foreign keys under both representations and queries must be able
// to target exactly one of them.
func ValuesEqual(a, b interface{}) bool {
	if an, ok := asNumber(a); ok {
		bn, ok := asNumber(b)
		return ok && an == bn
	}
	if _, ok := asNumber(b); ok {
		return false
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return false
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

type condition struct {
	field string
	value interface{}
}

func matches(doc Document, conds []condition) bool {
	for _, c := range conds {
		stored, ok := ValueAtPath(doc.Data, c.field)
		if !ok {
			return false
		}
		if !ValuesEqual(stored, c.value) {
			return false
		}
	}
	return true
}

func sortDocuments(docs []Document, field string, desc bool) {
	if field == "" {
		return
	}
	less := func(i, j int) bool {
		switch field {
		case "createdAt":
			return docs[i].CreatedAt.Before(docs[j].CreatedAt)
		case "updatedAt":
			return docs[i].UpdatedAt.Before(docs[j].UpdatedAt)
		}
		vi, _ := ValueAtPath(docs[i].Data, field)
		vj, _ := ValueAtPath(docs[j].Data, field)
		return lessValue(vi, vj)
	}
	if desc {
		sort.SliceStable(docs, func(i, j int) bool { return less(j, i) })
	} else {
		sort.SliceStable(docs, less)
	}
}

func lessValue(a, b interface{}) bool {
	an, aok := asNumber(a)
	bn, bok := asNumber(b)
	if aok && bok {
		return an < bn
	}
	as, _ := a.(string)
	bs, _ := b.(string)
	return as < bs
}

// DeepCopyData clones a document payload so callers can mutate snapshots
// without racing the store.
func DeepCopyData(data map[string]interface{}) map[string]interface{} {
	if data == nil {
		return nil
	}
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v interface{}) interface{} {
	switch tv := v.(type) {
	case map[string]interface{}:
		return DeepCopyData(tv)
	case []interface{}:
		out := make([]interface{}, len(tv))
		for i, e := range tv {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		return v
	}
}
