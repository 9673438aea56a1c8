package handlers

import (
	"encoding/json"
	"testing"
)

func TestField_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Field
		wantErr bool
	}{
		{name: "string", input: `"Chex Mix"`, want: "Chex Mix"},
		{name: "integer", input: `16`, want: "16"},
		{name: "large integer keeps digits", input: `12345678901234567890`, want: "12345678901234567890"},
		{name: "decimal", input: `1.50`, want: "1.50"},
		{name: "bool", input: `true`, want: "true"},
		{name: "null", input: `null`, want: ""},
		{name: "object", input: `{"a":1}`, wantErr: true},
		{name: "array", input: `[1,2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Field
			err := json.Unmarshal([]byte(tt.input), &f)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && f != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, f, tt.want)
			}
		})
	}
}

func TestField_InStruct(t *testing.T) {
	var input CreateStudentInput
	body := `{"NAME":"Ann","TITLE":"Ms","CLASS":"5","SECTION":"B","ROLLID":10}`
	if err := json.Unmarshal([]byte(body), &input); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if input.RollID != "10" || input.Class != "5" {
		t.Errorf("input = %+v, want ROLLID 10 and CLASS 5", input)
	}
}
