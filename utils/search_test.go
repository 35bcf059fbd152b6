package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesQuery(t *testing.T) {
	t.Run("blank query matches everything", func(t *testing.T) {
		assert.True(t, MatchesQuery("", "Emily Carter"))
		assert.True(t, MatchesQuery("   ", "Emily Carter"))
		assert.True(t, MatchesQuery(""))
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		assert.True(t, MatchesQuery("EMILY", "Emily Carter"))
		assert.True(t, MatchesQuery("emily", "EMILY CARTER"))
	})

	t.Run("matches a substring in any field", func(t *testing.T) {
		assert.True(t, MatchesQuery("pneum", "P-000001", "John Smith", "Pneumonia"))
		assert.True(t, MatchesQuery("p-0001", "P-000123", "P-000199"))
		assert.False(t, MatchesQuery("diabetes", "P-000001", "John Smith", "Pneumonia"))
	})

	t.Run("empty fields never match a non-blank query", func(t *testing.T) {
		assert.False(t, MatchesQuery("x", "", ""))
		assert.False(t, MatchesQuery("x"))
	})
}

func TestFilterRecords(t *testing.T) {
	type row struct {
		Name      string
		Condition string
	}
	rows := []row{
		{"Emily Carter", "Pneumonia"},
		{"John Smith", "Fracture"},
		{"Amina Diallo", "Pneumonia"},
	}
	fields := func(r row) []string { return []string{r.Name, r.Condition} }

	t.Run("blank query returns the input unchanged", func(t *testing.T) {
		assert.Equal(t, rows, FilterRecords(rows, "", fields))
	})

	t.Run("keeps every row any field of which matches", func(t *testing.T) {
		got := FilterRecords(rows, "pneumonia", fields)
		assert.Len(t, got, 2)
		assert.Equal(t, "Emily Carter", got[0].Name)
		assert.Equal(t, "Amina Diallo", got[1].Name)
	})

	t.Run("no match yields an empty slice", func(t *testing.T) {
		assert.Empty(t, FilterRecords(rows, "zzz", fields))
	})
}
