package services

import (
	"CareDesk/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPatientStore struct {
	mock.Mock
}

func (m *mockPatientStore) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *mockPatientStore) GetAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *mockPatientStore) Update(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

type mockBedStore struct {
	mock.Mock
}

func (m *mockBedStore) GetByID(ctx context.Context, id string) (*models.Bed, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bed), args.Error(1)
}

func (m *mockBedStore) GetAll(ctx context.Context) ([]models.Bed, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bed), args.Error(1)
}

func (m *mockBedStore) Update(ctx context.Context, bed *models.Bed) error {
	args := m.Called(ctx, bed)
	return args.Error(0)
}

type mockDoctorFinder struct {
	mock.Mock
}

func (m *mockDoctorFinder) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func newAllocationFixture() (*AllocationService, *mockPatientStore, *mockBedStore, *mockDoctorFinder) {
	patients := new(mockPatientStore)
	beds := new(mockBedStore)
	doctors := new(mockDoctorFinder)
	return NewAllocationService(patients, beds, doctors), patients, beds, doctors
}

func TestAllocateBed(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns a free bed and attaches the doctor", func(t *testing.T) {
		svc, patients, beds, doctors := newAllocationFixture()
		patients.On("GetByID", ctx, "P-000001").Return(&models.Patient{ID: "P-000001", Name: "John Smith"}, nil)
		beds.On("GetByID", ctx, "BED-A-101").Return(&models.Bed{ID: "BED-A-101", Ward: "Ward A", BedNumber: "101"}, nil)
		doctors.On("GetByID", ctx, "D-000001").Return(&models.Doctor{ID: "D-000001", Name: "Dr. Sarah Johnson"}, nil)
		beds.On("Update", ctx, mock.MatchedBy(func(b *models.Bed) bool {
			return b.ID == "BED-A-101" && b.IsOccupied
		})).Return(nil)
		patients.On("Update", ctx, mock.MatchedBy(func(p *models.Patient) bool {
			return p.AssignedBed == "BED-A-101" && p.AssignedDoctor == "D-000001"
		})).Return(nil)

		err := svc.AllocateBed(ctx, "P-000001", "BED-A-101", "D-000001")

		assert.NoError(t, err)
		patients.AssertExpectations(t)
		beds.AssertExpectations(t)
		doctors.AssertExpectations(t)
	})

	t.Run("rejects an occupied bed without mutating anything", func(t *testing.T) {
		svc, patients, beds, _ := newAllocationFixture()
		patients.On("GetByID", ctx, "P-000001").Return(&models.Patient{ID: "P-000001"}, nil)
		beds.On("GetByID", ctx, "BED-A-101").Return(&models.Bed{ID: "BED-A-101", IsOccupied: true}, nil)

		err := svc.AllocateBed(ctx, "P-000001", "BED-A-101", "")

		assert.Error(t, err)
		assert.True(t, IsValidation(err))
		patients.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		beds.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects a patient that already holds a bed", func(t *testing.T) {
		svc, patients, beds, _ := newAllocationFixture()
		patients.On("GetByID", ctx, "P-000001").Return(&models.Patient{ID: "P-000001", AssignedBed: "BED-B-201"}, nil)

		err := svc.AllocateBed(ctx, "P-000001", "BED-A-101", "")

		assert.True(t, IsValidation(err))
		beds.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("reports an unknown patient", func(t *testing.T) {
		svc, patients, _, _ := newAllocationFixture()
		patients.On("GetByID", ctx, "P-999999").Return(nil, nil)

		err := svc.AllocateBed(ctx, "P-999999", "BED-A-101", "")

		assert.True(t, IsNotFound(err))
	})

	t.Run("reports an unknown bed", func(t *testing.T) {
		svc, patients, beds, _ := newAllocationFixture()
		patients.On("GetByID", ctx, "P-000001").Return(&models.Patient{ID: "P-000001"}, nil)
		beds.On("GetByID", ctx, "BED-X-999").Return(nil, nil)

		err := svc.AllocateBed(ctx, "P-000001", "BED-X-999", "")

		assert.True(t, IsNotFound(err))
	})

	t.Run("reports an unknown doctor before claiming the bed", func(t *testing.T) {
		svc, patients, beds, doctors := newAllocationFixture()
		patients.On("GetByID", ctx, "P-000001").Return(&models.Patient{ID: "P-000001"}, nil)
		beds.On("GetByID", ctx, "BED-A-101").Return(&models.Bed{ID: "BED-A-101"}, nil)
		doctors.On("GetByID", ctx, "D-999999").Return(nil, nil)

		err := svc.AllocateBed(ctx, "P-000001", "BED-A-101", "D-999999")

		assert.True(t, IsNotFound(err))
		beds.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("keeps the existing doctor assignment", func(t *testing.T) {
		svc, patients, beds, doctors := newAllocationFixture()
		patients.On("GetByID", ctx, "P-000001").Return(&models.Patient{ID: "P-000001", AssignedDoctor: "D-000001"}, nil)
		beds.On("GetByID", ctx, "BED-A-101").Return(&models.Bed{ID: "BED-A-101"}, nil)
		beds.On("Update", ctx, mock.Anything).Return(nil)
		patients.On("Update", ctx, mock.MatchedBy(func(p *models.Patient) bool {
			return p.AssignedDoctor == "D-000001"
		})).Return(nil)

		err := svc.AllocateBed(ctx, "P-000001", "BED-A-101", "D-000002")

		assert.NoError(t, err)
		doctors.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestDischargeBed(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the occupant and frees the bed", func(t *testing.T) {
		svc, patients, beds, _ := newAllocationFixture()
		beds.On("GetByID", ctx, "BED-A-101").Return(&models.Bed{ID: "BED-A-101", IsOccupied: true}, nil)
		patients.On("GetAll", ctx).Return([]models.Patient{
			{ID: "P-000001", AssignedBed: "BED-A-101", AssignedDoctor: "D-000001"},
			{ID: "P-000002", AssignedBed: "BED-B-201"},
		}, nil)
		patients.On("Update", ctx, mock.MatchedBy(func(p *models.Patient) bool {
			return p.ID == "P-000001" && p.AssignedBed == "" && p.AssignedDoctor == "D-000001"
		})).Return(nil)
		beds.On("Update", ctx, mock.MatchedBy(func(b *models.Bed) bool {
			return b.ID == "BED-A-101" && !b.IsOccupied
		})).Return(nil)

		result, err := svc.DischargeBed(ctx, "BED-A-101")

		assert.NoError(t, err)
		assert.Equal(t, "P-000001", result.PatientID)
		assert.False(t, result.Repaired)
		patients.AssertExpectations(t)
		beds.AssertExpectations(t)
	})

	t.Run("is a no-op on an unoccupied bed", func(t *testing.T) {
		svc, patients, beds, _ := newAllocationFixture()
		beds.On("GetByID", ctx, "BED-A-101").Return(&models.Bed{ID: "BED-A-101"}, nil)

		result, err := svc.DischargeBed(ctx, "BED-A-101")

		assert.NoError(t, err)
		assert.Empty(t, result.PatientID)
		patients.AssertNotCalled(t, "GetAll", mock.Anything)
		beds.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("repairs an occupied bed with no referencing patient", func(t *testing.T) {
		svc, patients, beds, _ := newAllocationFixture()
		beds.On("GetByID", ctx, "BED-A-101").Return(&models.Bed{ID: "BED-A-101", IsOccupied: true}, nil)
		patients.On("GetAll", ctx).Return([]models.Patient{
			{ID: "P-000002", AssignedBed: "BED-B-201"},
		}, nil)
		beds.On("Update", ctx, mock.MatchedBy(func(b *models.Bed) bool {
			return !b.IsOccupied
		})).Return(nil)

		result, err := svc.DischargeBed(ctx, "BED-A-101")

		assert.NoError(t, err)
		assert.True(t, result.Repaired)
		assert.NotEmpty(t, result.Warning)
		patients.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("reports an unknown bed", func(t *testing.T) {
		svc, _, beds, _ := newAllocationFixture()
		beds.On("GetByID", ctx, "BED-X-999").Return(nil, nil)

		_, err := svc.DischargeBed(ctx, "BED-X-999")

		assert.True(t, IsNotFound(err))
	})
}

func TestReassignBed(t *testing.T) {
	ctx := context.Background()

	t.Run("keeping the current bed touches nothing", func(t *testing.T) {
		svc, patients, beds, _ := newAllocationFixture()
		patient := &models.Patient{ID: "P-000001", AssignedBed: "BED-A-101"}

		err := svc.ReassignBed(ctx, patient, "BED-A-101")

		assert.NoError(t, err)
		patients.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		beds.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("moves the patient and releases the old bed", func(t *testing.T) {
		svc, patients, beds, _ := newAllocationFixture()
		patient := &models.Patient{ID: "P-000001", AssignedBed: "BED-A-101"}
		beds.On("GetByID", ctx, "BED-B-201").Return(&models.Bed{ID: "BED-B-201"}, nil)
		beds.On("GetByID", ctx, "BED-A-101").Return(&models.Bed{ID: "BED-A-101", IsOccupied: true}, nil)
		beds.On("Update", ctx, mock.MatchedBy(func(b *models.Bed) bool {
			return b.ID == "BED-B-201" && b.IsOccupied
		})).Return(nil)
		beds.On("Update", ctx, mock.MatchedBy(func(b *models.Bed) bool {
			return b.ID == "BED-A-101" && !b.IsOccupied
		})).Return(nil)
		patients.On("Update", ctx, mock.MatchedBy(func(p *models.Patient) bool {
			return p.AssignedBed == "BED-B-201"
		})).Return(nil)

		err := svc.ReassignBed(ctx, patient, "BED-B-201")

		assert.NoError(t, err)
		beds.AssertExpectations(t)
		patients.AssertExpectations(t)
	})

	t.Run("rejects a move onto an occupied bed", func(t *testing.T) {
		svc, patients, beds, _ := newAllocationFixture()
		patient := &models.Patient{ID: "P-000001", AssignedBed: "BED-A-101"}
		beds.On("GetByID", ctx, "BED-B-201").Return(&models.Bed{ID: "BED-B-201", IsOccupied: true}, nil)

		err := svc.ReassignBed(ctx, patient, "BED-B-201")

		assert.True(t, IsValidation(err))
		assert.Equal(t, "BED-A-101", patient.AssignedBed)
		patients.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		beds.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("clearing the bed frees it", func(t *testing.T) {
		svc, patients, beds, _ := newAllocationFixture()
		patient := &models.Patient{ID: "P-000001", AssignedBed: "BED-A-101"}
		patients.On("Update", ctx, mock.MatchedBy(func(p *models.Patient) bool {
			return p.AssignedBed == ""
		})).Return(nil)
		beds.On("GetByID", ctx, "BED-A-101").Return(&models.Bed{ID: "BED-A-101", IsOccupied: true}, nil)
		beds.On("Update", ctx, mock.MatchedBy(func(b *models.Bed) bool {
			return b.ID == "BED-A-101" && !b.IsOccupied
		})).Return(nil)

		err := svc.ReassignBed(ctx, patient, "")

		assert.NoError(t, err)
		beds.AssertExpectations(t)
	})
}

func TestReleaseFor(t *testing.T) {
	ctx := context.Background()

	t.Run("frees the held bed before deletion", func(t *testing.T) {
		svc, _, beds, _ := newAllocationFixture()
		patient := &models.Patient{ID: "P-000001", AssignedBed: "BED-A-101"}
		beds.On("GetByID", ctx, "BED-A-101").Return(&models.Bed{ID: "BED-A-101", IsOccupied: true}, nil)
		beds.On("Update", ctx, mock.MatchedBy(func(b *models.Bed) bool {
			return !b.IsOccupied
		})).Return(nil)

		err := svc.ReleaseFor(ctx, patient)

		assert.NoError(t, err)
		assert.Empty(t, patient.AssignedBed)
		beds.AssertExpectations(t)
	})

	t.Run("does nothing for a patient without a bed", func(t *testing.T) {
		svc, _, beds, _ := newAllocationFixture()

		err := svc.ReleaseFor(ctx, &models.Patient{ID: "P-000001"})

		assert.NoError(t, err)
		beds.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("tolerates a legacy bed reference that does not resolve", func(t *testing.T) {
		svc, _, beds, _ := newAllocationFixture()
		patient := &models.Patient{ID: "P-000001", AssignedBed: "Ward A - 101"}
		beds.On("GetByID", ctx, "Ward A - 101").Return(nil, nil)

		err := svc.ReleaseFor(ctx, patient)

		assert.NoError(t, err)
		assert.Empty(t, patient.AssignedBed)
		beds.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
