package utils

import (
	"CareDesk/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePatientData(t *testing.T) {
	valid := models.Patient{Name: "Emily Carter", Age: 34, Gender: "Female"}
	assert.NoError(t, ValidatePatientData(valid))

	missingName := valid
	missingName.Name = ""
	assert.Error(t, ValidatePatientData(missingName))

	badGender := valid
	badGender.Gender = "unknown"
	assert.Error(t, ValidatePatientData(badGender))
}

func TestValidateBedData(t *testing.T) {
	assert.NoError(t, ValidateBedData(models.Bed{Ward: "Ward A", BedNumber: "101"}))
	assert.Error(t, ValidateBedData(models.Bed{BedNumber: "101"}))
	assert.Error(t, ValidateBedData(models.Bed{Ward: "Ward A"}))
}

func TestValidateAppointmentData(t *testing.T) {
	valid := models.Appointment{
		PatientID:       "P-000001",
		DoctorID:        "D-000001",
		AppointmentDate: "2026-09-01",
		AppointmentTime: "14:30",
		Status:          "scheduled",
	}
	assert.NoError(t, ValidateAppointmentData(valid))

	badDate := valid
	badDate.AppointmentDate = "01/09/2026"
	assert.Error(t, ValidateAppointmentData(badDate))

	badStatus := valid
	badStatus.Status = "pending"
	assert.Error(t, ValidateAppointmentData(badStatus))
}
