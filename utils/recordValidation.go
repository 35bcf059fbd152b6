package utils

import (
	"CareDesk/models"
	"log"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

// ValidatePatientData validates patient data using ozzo-validation.
func ValidatePatientData(patient models.Patient) error {
	err := validation.ValidateStruct(&patient,
		validation.Field(&patient.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&patient.Age, validation.Required, validation.Min(0), validation.Max(150)),
		validation.Field(&patient.Gender, validation.Required, validation.In("Male", "Female", "Other")),
		validation.Field(&patient.Contact, validation.Length(0, 50)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateDoctorData validates doctor data using ozzo-validation.
func ValidateDoctorData(doctor models.Doctor) error {
	err := validation.ValidateStruct(&doctor,
		validation.Field(&doctor.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&doctor.Specialization, validation.Required, validation.Length(1, 100)),
		validation.Field(&doctor.Contact, validation.Length(0, 50)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateBedData validates bed data using ozzo-validation.
func ValidateBedData(bed models.Bed) error {
	err := validation.ValidateStruct(&bed,
		validation.Field(&bed.Ward, validation.Required, validation.Length(1, 50)),
		validation.Field(&bed.BedNumber, validation.Required, validation.Length(1, 10)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateAppointmentData validates appointment data using ozzo-validation.
func ValidateAppointmentData(appointment models.Appointment) error {
	err := validation.ValidateStruct(&appointment,
		validation.Field(&appointment.PatientID, validation.Required),
		validation.Field(&appointment.DoctorID, validation.Required),
		validation.Field(&appointment.AppointmentDate, validation.Required, validation.Match(datePattern).Error("must be in YYYY-MM-DD format")),
		validation.Field(&appointment.AppointmentTime, validation.Required, validation.Match(timePattern).Error("must be in HH:MM format")),
		validation.Field(&appointment.Status, validation.Required, validation.In("scheduled", "completed", "cancelled")),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateMedicineData validates medicine data using ozzo-validation.
func ValidateMedicineData(medicine models.Medicine) error {
	err := validation.ValidateStruct(&medicine,
		validation.Field(&medicine.PatientID, validation.Required),
		validation.Field(&medicine.Name, validation.Required, validation.Length(1, 100)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateDiagnosisData validates diagnosis data using ozzo-validation.
func ValidateDiagnosisData(diagnosis models.Diagnosis) error {
	err := validation.ValidateStruct(&diagnosis,
		validation.Field(&diagnosis.PatientID, validation.Required),
		validation.Field(&diagnosis.Condition, validation.Required, validation.Length(1, 200)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}
