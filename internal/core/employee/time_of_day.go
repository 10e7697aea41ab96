package employee

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const timeOfDayLayout = "15:04:05.999999999"

// TimeOfDay は日付を持たない時刻 (SQL の TIME 型) を表します。
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// NewTimeOfDay は時・分から TimeOfDay を生成します。
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

// TimeOfDayOf は time.Time の時刻部分を取り出します。
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()}
}

// ParseTimeOfDay は "15:04" / "15:04:05" / "15:04:05.999999999" 形式の文字列を解析します。
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{timeOfDayLayout, "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("employee: invalid time of day %q", raw)
}

// IsValid は各フィールドが時刻として妥当な範囲にあるかを返します。
func (t TimeOfDay) IsValid() bool {
	return t.Hour >= 0 && t.Hour < 24 &&
		t.Minute >= 0 && t.Minute < 60 &&
		t.Second >= 0 && t.Second < 60 &&
		t.Nanosecond >= 0 && t.Nanosecond < int(time.Second)
}

// String は "15:04:05" 形式 (端数秒があれば付与) で返します。
func (t TimeOfDay) String() string {
	return time.Date(0, 1, 1, t.Hour, t.Minute, t.Second, t.Nanosecond, time.UTC).Format(timeOfDayLayout)
}

// Value は driver.Valuer を実装します。
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan は sql.Scanner を実装します。
func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
	case time.Time:
		*t = TimeOfDayOf(v)
	case nil:
		*t = TimeOfDay{}
	default:
		return fmt.Errorf("employee: cannot scan %T into TimeOfDay", src)
	}
	return nil
}
