package services

import (
	"CareDesk/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDoctorAvailableOn(t *testing.T) {
	doctor := &models.Doctor{
		ID:           "D-000001",
		Name:         "Dr. Sarah Johnson",
		Availability: models.WeekdaySet{"Mon", "Wed", "Fri"},
	}

	t.Run("matches the weekday of the given date", func(t *testing.T) {
		// 2026-08-31 is a Monday, 2026-09-01 a Tuesday.
		available, err := DoctorAvailableOn(doctor, "2026-08-31")
		assert.NoError(t, err)
		assert.True(t, available)

		available, err = DoctorAvailableOn(doctor, "2026-09-01")
		assert.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("empty date means today", func(t *testing.T) {
		available, err := DoctorAvailableOn(doctor, "")
		assert.NoError(t, err)
		assert.Equal(t, doctor.Availability.Contains(time.Now().Weekday().String()), available)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		_, err := DoctorAvailableOn(doctor, "31/08/2026")
		assert.True(t, IsValidation(err))
	})

	t.Run("a doctor with no availability is never available", func(t *testing.T) {
		off := &models.Doctor{ID: "D-000002", Name: "Dr. Lee"}
		available, err := DoctorAvailableOn(off, "2026-08-31")
		assert.NoError(t, err)
		assert.False(t, available)
	})
}
