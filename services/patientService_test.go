package services

import (
	"CareDesk/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPatientRecords struct {
	mockPatientStore
}

func (m *mockPatientRecords) Create(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *mockPatientRecords) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newPatientFixture() (*PatientService, *mockPatientRecords, *mockBedStore) {
	patients := new(mockPatientRecords)
	beds := new(mockBedStore)
	doctors := new(mockDoctorFinder)
	allocation := NewAllocationService(patients, beds, doctors)
	return NewPatientService(patients, allocation), patients, beds
}

func TestPatientServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("a changed bed moves through the reconciler", func(t *testing.T) {
		svc, patients, beds := newPatientFixture()
		patients.On("GetByID", ctx, "P-000001").Return(&models.Patient{ID: "P-000001", AssignedBed: "BED-A-101"}, nil)
		beds.On("GetByID", ctx, "BED-B-201").Return(&models.Bed{ID: "BED-B-201"}, nil)
		beds.On("GetByID", ctx, "BED-A-101").Return(&models.Bed{ID: "BED-A-101", IsOccupied: true}, nil)
		beds.On("Update", ctx, mock.MatchedBy(func(b *models.Bed) bool {
			return b.ID == "BED-B-201" && b.IsOccupied
		})).Return(nil)
		beds.On("Update", ctx, mock.MatchedBy(func(b *models.Bed) bool {
			return b.ID == "BED-A-101" && !b.IsOccupied
		})).Return(nil)
		patients.On("Update", ctx, mock.MatchedBy(func(p *models.Patient) bool {
			return p.Name == "Emily Carter" && p.AssignedBed == "BED-B-201"
		})).Return(nil)

		err := svc.Update(ctx, &models.Patient{ID: "P-000001", Name: "Emily Carter", Gender: "female", AssignedBed: "BED-B-201"})

		assert.NoError(t, err)
		patients.AssertExpectations(t)
		beds.AssertExpectations(t)
	})

	t.Run("an edit requesting an occupied bed writes nothing", func(t *testing.T) {
		svc, patients, beds := newPatientFixture()
		patients.On("GetByID", ctx, "P-000001").Return(&models.Patient{ID: "P-000001", AssignedBed: "BED-A-101"}, nil)
		beds.On("GetByID", ctx, "BED-B-201").Return(&models.Bed{ID: "BED-B-201", IsOccupied: true}, nil)

		err := svc.Update(ctx, &models.Patient{ID: "P-000001", Name: "Emily Carter", Gender: "Female", AssignedBed: "BED-B-201"})

		assert.True(t, IsValidation(err))
		patients.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		beds.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("an unchanged bed takes the plain write path", func(t *testing.T) {
		svc, patients, beds := newPatientFixture()
		patients.On("GetByID", ctx, "P-000001").Return(&models.Patient{ID: "P-000001", AssignedBed: "BED-A-101"}, nil)
		patients.On("Update", ctx, mock.MatchedBy(func(p *models.Patient) bool {
			return p.AssignedBed == "BED-A-101" && p.Condition == "Pneumonia"
		})).Return(nil)

		err := svc.Update(ctx, &models.Patient{ID: "P-000001", Name: "Emily Carter", Gender: "Female", Condition: "Pneumonia", AssignedBed: "BED-A-101"})

		assert.NoError(t, err)
		beds.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("reports an unknown patient", func(t *testing.T) {
		svc, patients, _ := newPatientFixture()
		patients.On("GetByID", ctx, "P-999999").Return(nil, nil)

		err := svc.Update(ctx, &models.Patient{ID: "P-999999", Name: "Ghost", Gender: "Other"})

		assert.True(t, IsNotFound(err))
	})
}

func TestPatientServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("releases the held bed before removing the record", func(t *testing.T) {
		svc, patients, beds := newPatientFixture()
		patients.On("GetByID", ctx, "P-000001").Return(&models.Patient{ID: "P-000001", AssignedBed: "BED-A-101"}, nil)
		beds.On("GetByID", ctx, "BED-A-101").Return(&models.Bed{ID: "BED-A-101", IsOccupied: true}, nil)
		beds.On("Update", ctx, mock.MatchedBy(func(b *models.Bed) bool {
			return b.ID == "BED-A-101" && !b.IsOccupied
		})).Return(nil)
		patients.On("Delete", ctx, "P-000001").Return(nil)

		err := svc.Delete(ctx, "P-000001")

		assert.NoError(t, err)
		patients.AssertExpectations(t)
		beds.AssertExpectations(t)
	})

	t.Run("a patient without a bed deletes directly", func(t *testing.T) {
		svc, patients, beds := newPatientFixture()
		patients.On("GetByID", ctx, "P-000002").Return(&models.Patient{ID: "P-000002"}, nil)
		patients.On("Delete", ctx, "P-000002").Return(nil)

		err := svc.Delete(ctx, "P-000002")

		assert.NoError(t, err)
		beds.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("reports an unknown patient", func(t *testing.T) {
		svc, patients, _ := newPatientFixture()
		patients.On("GetByID", ctx, "P-999999").Return(nil, nil)

		err := svc.Delete(ctx, "P-999999")

		assert.True(t, IsNotFound(err))
		patients.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
