package models

import (
	"time"

	"gorm.io/gorm"
)

// Patient model. AssignedBed normally holds a bed ID; records written by
// older client revisions may carry a pre-formatted "Ward - Number" label
// instead, which the directory resolvers tolerate.
type Patient struct {
	ID                 string    `gorm:"primaryKey;column:id" json:"id"`
	Name               string    `gorm:"column:name;not null;index" json:"name"`
	Age                int       `gorm:"column:age;not null" json:"age"`
	Gender             string    `gorm:"column:gender;check:gender IN ('Male', 'Female', 'Other');not null" json:"gender"`
	Contact            string    `gorm:"column:contact" json:"contact"`
	Address            string    `gorm:"column:address" json:"address"`
	EmergencyContact   string    `gorm:"column:emergency_contact" json:"emergency_contact"`
	Condition          string    `gorm:"column:condition" json:"condition"`
	AssignedBed        string    `gorm:"column:assigned_bed;index" json:"assigned_bed"`
	AssignedDoctor     string    `gorm:"column:assigned_doctor;index" json:"assigned_doctor"`
	AssignedDoctorName string    `gorm:"-" json:"assigned_doctor_name,omitempty"`
	BedLabel           string    `gorm:"-" json:"bed_label,omitempty"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patient"
}

// Bed model. Occupancy is tracked here; the occupant is tracked from the
// patient side only, so the two must be reconciled procedurally.
type Bed struct {
	ID         string    `gorm:"primaryKey;column:id" json:"id"`
	Ward       string    `gorm:"column:ward;not null;index;uniqueIndex:idx_ward_bed_number" json:"ward"`
	BedNumber  string    `gorm:"column:bed_number;not null;uniqueIndex:idx_ward_bed_number" json:"bed_number"`
	IsOccupied bool      `gorm:"column:is_occupied;not null" json:"is_occupied"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Bed) TableName() string {
	return "bed"
}

// Appointment model
type Appointment struct {
	ID              uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	PatientID       string    `gorm:"column:patient_id;not null;index" json:"patient"`
	DoctorID        string    `gorm:"column:doctor_id;not null;index" json:"doctor"`
	AppointmentDate string    `gorm:"column:appointment_date;not null;index" json:"appointment_date"`
	AppointmentTime string    `gorm:"column:appointment_time;not null" json:"appointment_time"`
	Status          string    `gorm:"column:status;check:status IN ('scheduled', 'completed', 'cancelled');not null" json:"status"`
	PatientName     string    `gorm:"-" json:"patient_name,omitempty"`
	DoctorName      string    `gorm:"-" json:"doctor_name,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// Medicine model
type Medicine struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	PatientID    string    `gorm:"column:patient_id;not null;index" json:"patient"`
	PrescribedBy string    `gorm:"column:prescribed_by;index" json:"prescribed_by"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	Dosage       string    `gorm:"column:dosage" json:"dosage"`
	Frequency    string    `gorm:"column:frequency" json:"frequency"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Medicine) TableName() string {
	return "medicine"
}

// Diagnosis model
type Diagnosis struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	PatientID string    `gorm:"column:patient_id;not null;index" json:"patient"`
	DoctorID  string    `gorm:"column:doctor_id;index" json:"doctor"`
	Condition string    `gorm:"column:condition;not null" json:"condition"`
	Notes     string    `gorm:"column:notes" json:"notes"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Diagnosis) TableName() string {
	return "diagnosis"
}

// SeedBeds provisions the initial ward layout. Beds are created out-of-band;
// occupancy only ever changes through allocate/discharge.
func SeedBeds(db *gorm.DB) error {
	wards := []struct {
		Name    string
		Numbers []string
	}{
		{"Ward A", []string{"101", "102", "103", "104"}},
		{"Ward B", []string{"201", "202", "203", "204"}},
		{"Ward C", []string{"301", "302", "303", "304"}},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, ward := range wards {
			for _, number := range ward.Numbers {
				bed := Bed{
					ID:        "BED-" + ward.Name[len(ward.Name)-1:] + "-" + number,
					Ward:      ward.Name,
					BedNumber: number,
				}
				if err := tx.FirstOrCreate(&bed, Bed{Ward: ward.Name, BedNumber: number}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
