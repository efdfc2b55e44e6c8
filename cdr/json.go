package cdr

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON renders a CDR value tree to its JSON-compatible form.
// Tables are rendered as JSON objects in declared field order, with a
// trailing "__key_order" array recording that order; lists render as
// JSON arrays.
func MarshalJSON(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
		return nil
	case bool, int64, int, float64, string:
		enc, err := json.Marshal(val)
		if err != nil {
			return err
		}
		buf.Write(enc)
		return nil
	case List:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case *Table:
		buf.WriteByte('{')
		for i, k := range val.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, _ := json.Marshal(k)
			buf.Write(kb)
			buf.WriteByte(':')
			if err := writeJSON(buf, val.Values[k]); err != nil {
				return err
			}
		}
		if len(val.Keys) > 0 {
			buf.WriteByte(',')
		}
		order, _ := json.Marshal(val.Keys)
		buf.WriteString(fmt.Sprintf("%q:%s", keyOrderKey, order))
		buf.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("cdr: cannot marshal value of type %T", v)
	}
}

// UnmarshalJSON parses data into a CDR value tree. Objects become
// *Table (preserving key order as it appears on the wire), arrays
// become List, and JSON numbers without a fractional part or exponent
// become int64 (otherwise float64).
func UnmarshalJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			table := NewTable()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("cdr: expected object key, got %v", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				table.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return table, nil
		case '[':
			var list List
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				list = append(list, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return list, nil
		default:
			return nil, fmt.Errorf("cdr: unexpected delimiter %v", t)
		}
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	case string, bool, nil:
		return t, nil
	default:
		return nil, fmt.Errorf("cdr: unexpected token %v", t)
	}
}
