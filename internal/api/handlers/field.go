package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Field 請求本文中的單一欄位值，JSON 的字串、數字或布林值都轉為文字
type Field string

// UnmarshalJSON 接受任何 JSON 純量，null 視為未提供
func (f *Field) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch val := v.(type) {
	case nil:
		*f = ""
	case string:
		*f = Field(val)
	case json.Number:
		*f = Field(val.String())
	case bool:
		*f = Field(strconv.FormatBool(val))
	default:
		return fmt.Errorf("field must be a string or a number, got %T", v)
	}
	return nil
}
