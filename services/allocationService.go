package services

import (
	"CareDesk/models"
	"context"
	"log"

	"github.com/pkg/errors"
)

// PatientStore is the patient persistence surface the reconciler needs.
// GetByID returns (nil, nil) when the ID does not resolve.
type PatientStore interface {
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetAll(ctx context.Context) ([]models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
}

// BedStore is the bed persistence surface the reconciler needs.
type BedStore interface {
	GetByID(ctx context.Context, id string) (*models.Bed, error)
	GetAll(ctx context.Context) ([]models.Bed, error)
	Update(ctx context.Context, bed *models.Bed) error
}

// DoctorFinder resolves doctor IDs during allocation.
type DoctorFinder interface {
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
}

// AllocationService keeps patient.assigned_bed, patient.assigned_doctor and
// bed.is_occupied mutually consistent. The persistence layer does not
// enforce the occupancy invariant, so every multi-record mutation goes
// through here. All operations validate before mutating: a precondition
// failure leaves no partial state.
type AllocationService struct {
	patients PatientStore
	beds     BedStore
	doctors  DoctorFinder
}

func NewAllocationService(patients PatientStore, beds BedStore, doctors DoctorFinder) *AllocationService {
	return &AllocationService{patients: patients, beds: beds, doctors: doctors}
}

// DischargeResult reports the outcome of a discharge, including the
// non-fatal repair path.
type DischargeResult struct {
	PatientID string `json:"patient_id,omitempty"`
	Repaired  bool   `json:"repaired,omitempty"`
	Warning   string `json:"warning,omitempty"`
}

// AllocateBed assigns an unoccupied bed to a patient that holds none, and
// optionally attaches a doctor when the patient has no doctor yet. An
// existing doctor assignment is never overwritten here; it can only be
// cleared explicitly through a patient edit.
//
// The bed is claimed before the patient record is written. A crash between
// the two leaves an occupied bed with no occupant, which discharge repairs;
// the reverse order could let two patients reference one bed.
func (s *AllocationService) AllocateBed(ctx context.Context, patientID, bedID, doctorID string) error {
	patient, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return errors.Wrap(err, "failed to load patient")
	}
	if patient == nil {
		return &NotFoundError{Kind: "patient", ID: patientID}
	}
	if patient.AssignedBed != "" {
		return NewValidationError("patient %s already has a bed assigned", patientID)
	}

	bed, err := s.beds.GetByID(ctx, bedID)
	if err != nil {
		return errors.Wrap(err, "failed to load bed")
	}
	if bed == nil {
		return &NotFoundError{Kind: "bed", ID: bedID}
	}
	if bed.IsOccupied {
		return NewValidationError("bed %s is already occupied", bedID)
	}

	if doctorID != "" && patient.AssignedDoctor == "" {
		doctor, err := s.doctors.GetByID(ctx, doctorID)
		if err != nil {
			return errors.Wrap(err, "failed to load doctor")
		}
		if doctor == nil {
			return &NotFoundError{Kind: "doctor", ID: doctorID}
		}
		patient.AssignedDoctor = doctorID
	}

	bed.IsOccupied = true
	if err := s.beds.Update(ctx, bed); err != nil {
		return errors.Wrap(err, "failed to claim bed")
	}

	patient.AssignedBed = bedID
	if err := s.patients.Update(ctx, patient); err != nil {
		return errors.Wrap(err, "failed to assign bed to patient")
	}
	return nil
}

// DischargeBed frees a bed and clears the occupant's assignment. The doctor
// assignment is untouched. Discharging an unoccupied bed is a no-op. When
// the bed is marked occupied but no patient references it, the occupancy
// flag is cleared anyway and the desync is reported as a non-fatal warning:
// invariant repair wins over blocking the operation.
func (s *AllocationService) DischargeBed(ctx context.Context, bedID string) (*DischargeResult, error) {
	bed, err := s.beds.GetByID(ctx, bedID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load bed")
	}
	if bed == nil {
		return nil, &NotFoundError{Kind: "bed", ID: bedID}
	}
	if !bed.IsOccupied {
		return &DischargeResult{}, nil
	}

	occupant, err := s.findOccupant(ctx, bedID)
	if err != nil {
		return nil, err
	}

	result := &DischargeResult{}
	if occupant != nil {
		occupant.AssignedBed = ""
		if err := s.patients.Update(ctx, occupant); err != nil {
			return nil, errors.Wrap(err, "failed to clear patient bed assignment")
		}
		result.PatientID = occupant.ID
	} else {
		log.Printf("Discharge: bed %s marked occupied with no referencing patient, repairing", bedID)
		result.Repaired = true
		result.Warning = "bed was marked occupied with no referencing patient; occupancy cleared"
	}

	bed.IsOccupied = false
	if err := s.beds.Update(ctx, bed); err != nil {
		return nil, errors.Wrap(err, "failed to free bed")
	}
	return result, nil
}

// ReassignBed moves a patient to a new bed (or off any bed when newBedID is
// empty) as part of a patient edit. Keeping the current bed is a no-op for
// the bed records.
func (s *AllocationService) ReassignBed(ctx context.Context, patient *models.Patient, newBedID string) error {
	if patient == nil {
		return NewValidationError("patient is required")
	}
	oldBedID := patient.AssignedBed
	if oldBedID == newBedID {
		return nil
	}

	var newBed *models.Bed
	if newBedID != "" {
		var err error
		newBed, err = s.beds.GetByID(ctx, newBedID)
		if err != nil {
			return errors.Wrap(err, "failed to load bed")
		}
		if newBed == nil {
			return &NotFoundError{Kind: "bed", ID: newBedID}
		}
		if newBed.IsOccupied {
			return NewValidationError("bed %s is already occupied by a different patient", newBedID)
		}
	}

	if newBed != nil {
		newBed.IsOccupied = true
		if err := s.beds.Update(ctx, newBed); err != nil {
			return errors.Wrap(err, "failed to claim bed")
		}
	}

	patient.AssignedBed = newBedID
	if err := s.patients.Update(ctx, patient); err != nil {
		return errors.Wrap(err, "failed to update patient bed assignment")
	}

	if oldBedID != "" {
		if err := s.releaseBed(ctx, oldBedID); err != nil {
			return err
		}
	}
	return nil
}

// ReleaseFor frees whatever bed the patient holds. Used ahead of patient
// deletion so no bed stays occupied referencing a removed record.
func (s *AllocationService) ReleaseFor(ctx context.Context, patient *models.Patient) error {
	if patient == nil || patient.AssignedBed == "" {
		return nil
	}
	if err := s.releaseBed(ctx, patient.AssignedBed); err != nil {
		return err
	}
	patient.AssignedBed = ""
	return nil
}

func (s *AllocationService) releaseBed(ctx context.Context, bedID string) error {
	bed, err := s.beds.GetByID(ctx, bedID)
	if err != nil {
		return errors.Wrap(err, "failed to load bed")
	}
	if bed == nil {
		// Legacy label or stale reference, nothing to free.
		log.Printf("Release: bed %q does not resolve, skipping", bedID)
		return nil
	}
	if !bed.IsOccupied {
		return nil
	}
	bed.IsOccupied = false
	if err := s.beds.Update(ctx, bed); err != nil {
		return errors.Wrap(err, "failed to free bed")
	}
	return nil
}

// findOccupant linear-scans patients for the one referencing the bed. There
// is no reverse index; at front-desk scale the scan is fine.
func (s *AllocationService) findOccupant(ctx context.Context, bedID string) (*models.Patient, error) {
	patients, err := s.patients.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}
	for i := range patients {
		if patients[i].AssignedBed == bedID {
			return &patients[i], nil
		}
	}
	return nil, nil
}
