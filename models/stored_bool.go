package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StoredBool is the normalization boundary for correctness flags. Different
// stores (and old rows written by earlier versions of the schema) hand back
// booleans as native bools, integers, floats or strings; StoredBool accepts
// all of those on read and always writes a canonical 0/1. Services never
// touch the raw storage value.
type StoredBool bool

func (b StoredBool) Bool() bool {
	return bool(b)
}

// Value implements driver.Valuer. Writes are always 0 or 1.
func (b StoredBool) Value() (driver.Value, error) {
	if b {
		return int64(1), nil
	}
	return int64(0), nil
}

// Scan implements sql.Scanner. Native booleans, numeric 1/0 and the strings
// "true"/"1" read as true; everything else (including NULL) reads as false.
func (b *StoredBool) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*b = false
	case bool:
		*b = StoredBool(v)
	case int64:
		*b = v == 1
	case float64:
		*b = v == 1
	case []byte:
		*b = parseBoolString(string(v))
	case string:
		*b = parseBoolString(v)
	default:
		return fmt.Errorf("cannot scan %T into StoredBool", src)
	}
	return nil
}

func parseBoolString(s string) StoredBool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true
	default:
		return false
	}
}

func (b StoredBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

func (b *StoredBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = StoredBool(v)
	return nil
}
