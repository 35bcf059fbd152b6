package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeekdaySetNormalize(t *testing.T) {
	t.Run("dedupes and applies canonical order", func(t *testing.T) {
		set := WeekdaySet{"fri", "MON", "Wednesday", "mon"}
		assert.Equal(t, WeekdaySet{"Mon", "Wed", "Fri"}, set.Normalize())
	})

	t.Run("drops short tokens", func(t *testing.T) {
		set := WeekdaySet{"", " ", "Mo", "Tue"}
		assert.Equal(t, WeekdaySet{"Tue"}, set.Normalize())
	})
}

func TestWeekdaySetUnmarshalJSON(t *testing.T) {
	t.Run("accepts the comma-joined string form", func(t *testing.T) {
		var set WeekdaySet
		assert.NoError(t, json.Unmarshal([]byte(`"Mon,Wed,Fri"`), &set))
		assert.Equal(t, WeekdaySet{"Mon", "Wed", "Fri"}, set)
	})

	t.Run("accepts the legacy array form", func(t *testing.T) {
		var set WeekdaySet
		assert.NoError(t, json.Unmarshal([]byte(`["Fri","Mon"]`), &set))
		assert.Equal(t, WeekdaySet{"Mon", "Fri"}, set)
	})

	t.Run("rejects other shapes", func(t *testing.T) {
		var set WeekdaySet
		assert.Error(t, json.Unmarshal([]byte(`42`), &set))
	})
}

func TestWeekdaySetRoundTrip(t *testing.T) {
	doctor := Doctor{ID: "D-000001", Name: "Dr. Sarah Johnson", Availability: WeekdaySet{"fri", "mon"}}

	data, err := json.Marshal(doctor)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"availability":"Mon,Fri"`)

	value, err := doctor.Availability.Value()
	assert.NoError(t, err)
	assert.Equal(t, "Mon,Fri", value)

	var scanned WeekdaySet
	assert.NoError(t, scanned.Scan("Mon,Fri"))
	assert.Equal(t, WeekdaySet{"Mon", "Fri"}, scanned)
}

func TestWeekdaySetContains(t *testing.T) {
	set := WeekdaySet{"Mon", "Wed"}
	assert.True(t, set.Contains("monday"))
	assert.True(t, set.Contains("WED"))
	assert.False(t, set.Contains("Sun"))
}
