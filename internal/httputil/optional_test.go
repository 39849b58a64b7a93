package httputil

import (
	"encoding/json"
	"testing"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type payload struct {
		ProcessID Optional[int64]  `json:"process_id"`
		Notes     Optional[string] `json:"notes"`
	}

	tests := []struct {
		name         string
		input        string
		wantPresent  bool
		wantNull     bool
		wantValue    int64
		wantNotesSet bool
	}{
		{name: "absent", input: `{}`, wantPresent: false},
		{name: "null", input: `{"process_id": null}`, wantPresent: true, wantNull: true},
		{name: "value", input: `{"process_id": 7}`, wantPresent: true, wantValue: 7},
		{name: "other field only", input: `{"notes": "follow up"}`, wantPresent: false, wantNotesSet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			if err := json.Unmarshal([]byte(tt.input), &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if p.ProcessID.Present != tt.wantPresent {
				t.Errorf("Present = %v, want %v", p.ProcessID.Present, tt.wantPresent)
			}
			if p.ProcessID.IsNull() != tt.wantNull {
				t.Errorf("IsNull = %v, want %v", p.ProcessID.IsNull(), tt.wantNull)
			}
			if tt.wantValue != 0 && (p.ProcessID.Value == nil || *p.ProcessID.Value != tt.wantValue) {
				t.Errorf("Value = %v, want %d", p.ProcessID.Value, tt.wantValue)
			}
			if p.Notes.Present != tt.wantNotesSet {
				t.Errorf("Notes.Present = %v, want %v", p.Notes.Present, tt.wantNotesSet)
			}
		})
	}
}

func TestOptional_RejectsWrongType(t *testing.T) {
	var p struct {
		ProcessID Optional[int64] `json:"process_id"`
	}
	if err := json.Unmarshal([]byte(`{"process_id": "7"}`), &p); err == nil {
		t.Fatal("expected error for string where integer expected")
	}
}
