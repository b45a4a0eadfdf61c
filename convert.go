package treestore

import (
	"encoding/json"
	"fmt"
)

// FromGo converts a plain Go value into a Value. Supported inputs are nil,
// bool, string, all integer widths, float32/float64, json.Number, []any,
// map[string]any, map[string]Value, Object literals, and any Value
// (returned unchanged). Slices become index-keyed objects (see List).
func FromGo(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case int:
		return Int(val), nil
	case int8:
		return Int(val), nil
	case int16:
		return Int(val), nil
	case int32:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case uint:
		return Int(val), nil
	case uint8:
		return Int(val), nil
	case uint16:
		return Int(val), nil
	case uint32:
		return Int(val), nil
	case uint64:
		if val > 1<<63-1 {
			return nil, fmt.Errorf("uint64 out of int64 range: %d", val)
		}
		return Int(val), nil
	case float32:
		return Float(val), nil
	case float64:
		return Float(val), nil
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return Int(n), nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", val, err)
		}
		return Float(f), nil
	case []any:
		obj := make(Object, len(val))
		for i, elem := range val {
			child, err := FromGo(elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			obj[fmt.Sprintf("%d", i)] = child
		}
		return obj, nil
	case map[string]any:
		obj := make(Object, len(val))
		for k, elem := range val {
			child, err := FromGo(elem)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			obj[k] = child
		}
		return obj, nil
	case map[string]Value:
		obj := make(Object, len(val))
		for k, elem := range val {
			obj[k] = elem
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported value type: %T", v)
	}
}

// ToGo converts a Value back into plain Go data: Null becomes nil, scalars
// their underlying type, and Object a map[string]any. ToGo(nil) is nil.
func ToGo(v Value) any {
	switch val := v.(type) {
	case nil:
		return nil
	case Null:
		return nil
	case String:
		return string(val)
	case Int:
		return int64(val)
	case Float:
		return float64(val)
	case Bool:
		return bool(val)
	case Object:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = ToGo(child)
		}
		return out
	default:
		return nil
	}
}

// mustFromGo is the internal conversion used on write paths, where the
// public contract is a success boolean rather than an error.
func mustFromGo(v any) (Value, bool) {
	converted, err := FromGo(v)
	if err != nil {
		Logger.Error().Err(err).Msg("value conversion failed")
		return nil, false
	}
	return converted, true
}
