package models

import (
	"bytes"
	"database/sql/driver"
	"fmt"
)

// BitBool is a boolean stored as 0/1 in SQLite and marshalled as 0/1 on the
// wire, matching the JSON shape the tracker clients already speak. Incoming
// JSON may carry either a number or a boolean.
type BitBool bool

func (flag BitBool) Bool() bool {
	return bool(flag)
}

func (flag BitBool) MarshalJSON() ([]byte, error) {
	if flag {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (flag *BitBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "0", "false":
		*flag = false
	case "1", "true":
		*flag = true
	default:
		return fmt.Errorf("invalid flag value %q", data)
	}
	return nil
}

func (flag BitBool) Value() (driver.Value, error) {
	if flag {
		return int64(1), nil
	}
	return int64(0), nil
}

func (flag *BitBool) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*flag = false
	case bool:
		*flag = BitBool(value)
	case int64:
		*flag = value != 0
	default:
		return fmt.Errorf("unsupported flag source %T", src)
	}
	return nil
}
