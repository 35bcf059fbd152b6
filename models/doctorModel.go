package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// weekdayOrder fixes the canonical ordering of availability tokens.
var weekdayOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdaySet is a doctor's availability. On the wire it is canonically a
// comma-joined string ("Mon,Wed,Fri"), but older client revisions sent a
// JSON array; both shapes are accepted on ingest. Duplicates collapse and
// order is irrelevant.
type WeekdaySet []string

// Normalize trims, title-cases to the three-letter token, drops unknown
// tokens and duplicates, and applies the canonical weekday order.
func (w WeekdaySet) Normalize() WeekdaySet {
	seen := make(map[string]bool, len(w))
	for _, token := range w {
		token = strings.TrimSpace(token)
		if len(token) < 3 {
			continue
		}
		token = strings.ToUpper(token[:1]) + strings.ToLower(token[1:3])
		seen[token] = true
	}
	out := make(WeekdaySet, 0, len(seen))
	for _, day := range weekdayOrder {
		if seen[day] {
			out = append(out, day)
		}
	}
	return out
}

// Contains reports whether the set includes the given weekday token.
func (w WeekdaySet) Contains(day string) bool {
	for _, have := range w.Normalize() {
		for _, want := range (WeekdaySet{day}).Normalize() {
			if have == want {
				return true
			}
		}
	}
	return false
}

func (w WeekdaySet) String() string {
	return strings.Join(w.Normalize(), ",")
}

// MarshalJSON emits the canonical comma-joined string form.
func (w WeekdaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// UnmarshalJSON accepts either a comma-joined string or an array of tokens.
func (w *WeekdaySet) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*w = WeekdaySet(strings.Split(asString, ",")).Normalize()
		return nil
	}
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*w = WeekdaySet(asList).Normalize()
		return nil
	}
	return fmt.Errorf("availability must be a string or an array of weekdays")
}

// Value stores the canonical string form.
func (w WeekdaySet) Value() (driver.Value, error) {
	return w.String(), nil
}

// Scan reads the comma-joined string form back from the database.
func (w *WeekdaySet) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*w = nil
	case string:
		*w = WeekdaySet(strings.Split(v, ",")).Normalize()
	case []byte:
		*w = WeekdaySet(strings.Split(string(v), ",")).Normalize()
	default:
		return fmt.Errorf("unsupported availability column type %T", value)
	}
	return nil
}

// Doctor model
type Doctor struct {
	ID             string     `gorm:"primaryKey;column:id" json:"id"`
	Name           string     `gorm:"column:name;not null;index" json:"name"`
	Specialization string     `gorm:"column:specialization" json:"specialization"`
	Contact        string     `gorm:"column:contact" json:"contact"`
	Availability   WeekdaySet `gorm:"column:availability;type:text" json:"availability"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctor"
}
