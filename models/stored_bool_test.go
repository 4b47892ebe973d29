package models

import (
	"testing"
)

func TestStoredBoolScan(t *testing.T) {
	cases := []struct {
		name string
		src  interface{}
		want bool
	}{
		{"native true", true, true},
		{"native false", false, false},
		{"int one", int64(1), true},
		{"int zero", int64(0), false},
		{"int other", int64(2), false},
		{"float one", float64(1), true},
		{"float zero", float64(0), false},
		{"string true", "true", true},
		{"string TRUE", "TRUE", true},
		{"string one", "1", true},
		{"string false", "false", false},
		{"string garbage", "yes", false},
		{"bytes one", []byte("1"), true},
		{"bytes false", []byte("false"), false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b StoredBool
			if err := b.Scan(tc.src); err != nil {
				t.Fatalf("Scan(%v): %v", tc.src, err)
			}
			if bool(b) != tc.want {
				t.Fatalf("Scan(%v) = %v, want %v", tc.src, bool(b), tc.want)
			}
		})
	}
}

func TestStoredBoolScanUnsupportedType(t *testing.T) {
	var b StoredBool
	if err := b.Scan(struct{}{}); err == nil {
		t.Fatal("expected error scanning unsupported type")
	}
}

func TestStoredBoolValueCanonical(t *testing.T) {
	v, err := StoredBool(true).Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != int64(1) {
		t.Fatalf("Value(true) = %v, want 1", v)
	}

	v, err = StoredBool(false).Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != int64(0) {
		t.Fatalf("Value(false) = %v, want 0", v)
	}
}

func TestStoredBoolJSON(t *testing.T) {
	data, err := StoredBool(true).MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != "true" {
		t.Fatalf("MarshalJSON = %s, want true", data)
	}

	var b StoredBool
	if err := b.UnmarshalJSON([]byte("true")); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !b.Bool() {
		t.Fatal("UnmarshalJSON(true) = false")
	}
	if err := b.UnmarshalJSON([]byte(`"1"`)); err == nil {
		t.Fatal("expected error unmarshaling non-boolean JSON")
	}
}
