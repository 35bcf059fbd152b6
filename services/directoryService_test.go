package services

import (
	"CareDesk/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockDoctorLister struct {
	mock.Mock
}

func (m *mockDoctorLister) GetAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

type mockAppointmentLister struct {
	mock.Mock
}

func (m *mockAppointmentLister) GetAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func TestResolveDoctorName(t *testing.T) {
	doctors := map[string]models.Doctor{
		"D-000001": {ID: "D-000001", Name: "Dr. Sarah Johnson"},
	}

	assert.Equal(t, "Dr. Sarah Johnson", ResolveDoctorName("D-000001", doctors))
	assert.Equal(t, NotAssignedLabel, ResolveDoctorName("", doctors))
	assert.Equal(t, NotAssignedLabel, ResolveDoctorName("   ", doctors))
	assert.Equal(t, UnknownDoctorLabel, ResolveDoctorName("D-999999", doctors))
	assert.Equal(t, UnknownDoctorLabel, ResolveDoctorName("D-999999", nil))
}

func TestResolveBedLabel(t *testing.T) {
	beds := map[string]models.Bed{
		"BED-A-101": {ID: "BED-A-101", Ward: "Ward A", BedNumber: "101"},
	}

	assert.Equal(t, "Ward A - 101", ResolveBedLabel("BED-A-101", beds))
	assert.Equal(t, NotAssignedLabel, ResolveBedLabel("", beds))
	assert.Equal(t, NotAssignedLabel, ResolveBedLabel("  ", beds))
	assert.Equal(t, BedNotFoundLabel, ResolveBedLabel("BED-X-999", beds))

	// Pre-rendered labels written by older client revisions pass through.
	assert.Equal(t, "Ward B - 203", ResolveBedLabel("Ward B - 203", beds))
}

func TestListPatients(t *testing.T) {
	ctx := context.Background()

	patients := new(mockPatientStore)
	beds := new(mockBedStore)
	doctors := new(mockDoctorLister)
	appointments := new(mockAppointmentLister)
	svc := NewDirectoryService(patients, beds, doctors, appointments)

	patients.On("GetAll", ctx).Return([]models.Patient{
		{ID: "P-000001", Name: "Emily Carter", AssignedBed: "BED-A-101", AssignedDoctor: "D-000001"},
		{ID: "P-000002", Name: "John Smith", AssignedDoctor: "D-999999"},
	}, nil)
	doctors.On("GetAll", ctx).Return([]models.Doctor{
		{ID: "D-000001", Name: "Dr. Sarah Johnson"},
	}, nil)
	beds.On("GetAll", ctx).Return([]models.Bed{
		{ID: "BED-A-101", Ward: "Ward A", BedNumber: "101", IsOccupied: true},
	}, nil)

	t.Run("renders names and labels for every row", func(t *testing.T) {
		result, err := svc.ListPatients(ctx, "")

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "Dr. Sarah Johnson", result[0].AssignedDoctorName)
		assert.Equal(t, "Ward A - 101", result[0].BedLabel)
		assert.Equal(t, UnknownDoctorLabel, result[1].AssignedDoctorName)
		assert.Equal(t, NotAssignedLabel, result[1].BedLabel)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		result, err := svc.ListPatients(ctx, "EMILY")

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "P-000001", result[0].ID)
	})

	t.Run("search matches the rendered doctor name", func(t *testing.T) {
		result, err := svc.ListPatients(ctx, "sarah")

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "P-000001", result[0].ID)
	})
}

func TestListAppointments(t *testing.T) {
	ctx := context.Background()

	patients := new(mockPatientStore)
	beds := new(mockBedStore)
	doctors := new(mockDoctorLister)
	appointments := new(mockAppointmentLister)
	svc := NewDirectoryService(patients, beds, doctors, appointments)

	appointments.On("GetAll", ctx).Return([]models.Appointment{
		{ID: 1, PatientID: "P-000001", DoctorID: "D-000001", AppointmentDate: "2026-09-01", Status: "scheduled"},
		{ID: 2, PatientID: "P-404404", DoctorID: "D-404404", AppointmentDate: "2026-09-02", Status: "completed"},
	}, nil)
	doctors.On("GetAll", ctx).Return([]models.Doctor{
		{ID: "D-000001", Name: "Dr. Sarah Johnson"},
	}, nil)
	patients.On("GetAll", ctx).Return([]models.Patient{
		{ID: "P-000001", Name: "Emily Carter"},
	}, nil)

	result, err := svc.ListAppointments(ctx, "")

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Emily Carter", result[0].PatientName)
	assert.Equal(t, "Dr. Sarah Johnson", result[0].DoctorName)
	// Dangling references degrade instead of failing the listing.
	assert.Equal(t, "P-404404", result[1].PatientName)
	assert.Equal(t, UnknownDoctorLabel, result[1].DoctorName)
}

func TestGroupBedsByWard(t *testing.T) {
	ctx := context.Background()

	patients := new(mockPatientStore)
	beds := new(mockBedStore)
	doctors := new(mockDoctorLister)
	appointments := new(mockAppointmentLister)
	svc := NewDirectoryService(patients, beds, doctors, appointments)

	beds.On("GetAll", ctx).Return([]models.Bed{
		{ID: "BED-A-101", Ward: "Ward A", BedNumber: "101"},
		{ID: "BED-A-102", Ward: "Ward A", BedNumber: "102"},
		{ID: "BED-B-201", Ward: "Ward B", BedNumber: "201"},
		{ID: "BED-Z-901", Ward: "", BedNumber: "901"},
	}, nil)

	grouped, err := svc.GroupBedsByWard(ctx)

	assert.NoError(t, err)
	assert.Len(t, grouped["Ward A"], 3) // two real plus the blank-ward fallback
	assert.Len(t, grouped["Ward B"], 1)

	total := 0
	for _, ward := range grouped {
		total += len(ward)
	}
	assert.Equal(t, 4, total)
}

func TestGetDashboardStats(t *testing.T) {
	ctx := context.Background()

	patients := new(mockPatientStore)
	beds := new(mockBedStore)
	doctors := new(mockDoctorLister)
	appointments := new(mockAppointmentLister)
	svc := NewDirectoryService(patients, beds, doctors, appointments)

	patients.On("GetAll", ctx).Return([]models.Patient{{ID: "P-000001"}, {ID: "P-000002"}}, nil)
	doctors.On("GetAll", ctx).Return([]models.Doctor{{ID: "D-000001"}}, nil)
	beds.On("GetAll", ctx).Return([]models.Bed{
		{ID: "BED-A-101", IsOccupied: true},
		{ID: "BED-A-102"},
		{ID: "BED-A-103"},
	}, nil)
	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	appointments.On("GetAll", ctx).Return([]models.Appointment{
		{ID: 1, AppointmentDate: today, Status: "scheduled"},
		{ID: 2, AppointmentDate: today, Status: "completed"},
		{ID: 3, AppointmentDate: tomorrow, Status: "cancelled"},
		{ID: 4, AppointmentDate: tomorrow, Status: "scheduled"},
	}, nil)

	stats, err := svc.GetDashboardStats(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPatients)
	assert.Equal(t, 1, stats.TotalDoctors)
	assert.Equal(t, 3, stats.TotalBeds)
	assert.Equal(t, 1, stats.OccupiedBeds)
	assert.Equal(t, 2, stats.AvailableBeds)
	assert.Equal(t, 2, stats.ScheduledAppointments)
	assert.Equal(t, 2, stats.AppointmentsToday)
	// Cancelled appointments stay out of the day counters.
	assert.Equal(t, 1, stats.AppointmentsTomorrow)
}
