package services

import (
	"CareDesk/models"
	"context"
	"strings"

	"github.com/pkg/errors"
)

// PatientRecords is the persistence surface the patient service needs.
// Satisfied by repositories.PatientRepository.
type PatientRecords interface {
	PatientStore
	Create(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, id string) error
}

// PatientService wraps patient CRUD and routes every bed-affecting change
// through the allocation reconciler so the occupancy invariant survives
// edits and deletions, not just explicit allocate/discharge.
type PatientService struct {
	repository PatientRecords
	allocation *AllocationService
}

func NewPatientService(repository PatientRecords, allocation *AllocationService) *PatientService {
	return &PatientService{repository: repository, allocation: allocation}
}

func (s *PatientService) Create(ctx context.Context, patient *models.Patient) error {
	normalizePatient(patient)
	// Bed assignment is deferred to the allocation flow; a bed sent on
	// create is ignored rather than trusted.
	patient.AssignedBed = ""
	return s.repository.Create(ctx, patient)
}

func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.repository.GetAll(ctx)
}

// Update edits patient fields. A changed assigned_bed goes through the
// reconciler; requesting a bed occupied by a different patient fails before
// anything is written.
func (s *PatientService) Update(ctx context.Context, patient *models.Patient) error {
	normalizePatient(patient)

	existing, err := s.repository.GetByID(ctx, patient.ID)
	if err != nil {
		return errors.Wrap(err, "failed to load patient for update")
	}
	if existing == nil {
		return &NotFoundError{Kind: "patient", ID: patient.ID}
	}

	requestedBed := patient.AssignedBed
	patient.AssignedBed = existing.AssignedBed
	if requestedBed != existing.AssignedBed {
		// ReassignBed validates the target bed, persists the patient and
		// swaps the occupancy flags; nothing is written if the bed check
		// fails.
		return s.allocation.ReassignBed(ctx, patient, requestedBed)
	}
	return s.repository.Update(ctx, patient)
}

// Delete removes the patient, releasing any held bed first so no bed stays
// marked occupied referencing a removed record.
func (s *PatientService) Delete(ctx context.Context, id string) error {
	patient, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to load patient for deletion")
	}
	if patient == nil {
		return &NotFoundError{Kind: "patient", ID: id}
	}
	if err := s.allocation.ReleaseFor(ctx, patient); err != nil {
		return err
	}
	return s.repository.Delete(ctx, id)
}

// normalizePatient canonicalizes ingest shapes so the rest of the code sees
// one form.
func normalizePatient(patient *models.Patient) {
	patient.Name = strings.TrimSpace(patient.Name)
	patient.Gender = normalizeGender(patient.Gender)
	patient.AssignedBed = strings.TrimSpace(patient.AssignedBed)
	patient.AssignedDoctor = strings.TrimSpace(patient.AssignedDoctor)
}

func normalizeGender(gender string) string {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "m":
		return "Male"
	case "female", "f":
		return "Female"
	default:
		return "Other"
	}
}
