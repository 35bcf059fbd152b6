package services

import (
	"CareDesk/models"
	"CareDesk/utils"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Placeholder strings rendered wherever a reference does not resolve. List
// endpoints never fail because of a dangling ID; they render one of these
// instead.
const (
	NotAssignedLabel   = "Not assigned"
	UnknownDoctorLabel = "Unknown Doctor"
	BedNotFoundLabel   = "Bed not found"
	DefaultWard        = "Ward A"
)

// DoctorLister lists doctors for directory lookups.
type DoctorLister interface {
	GetAll(ctx context.Context) ([]models.Doctor, error)
}

// AppointmentLister lists appointments for directory lookups.
type AppointmentLister interface {
	GetAll(ctx context.Context) ([]models.Appointment, error)
}

// DirectoryService renders cross-record views: patient lists with doctor
// names and bed labels joined in, appointments with participant names, beds
// grouped by ward, and the dashboard counters. All joins are done in memory
// from full-table reads; the tables are front-desk sized.
type DirectoryService struct {
	patients     PatientStore
	beds         BedStore
	doctors      DoctorLister
	appointments AppointmentLister
}

func NewDirectoryService(patients PatientStore, beds BedStore, doctors DoctorLister, appointments AppointmentLister) *DirectoryService {
	return &DirectoryService{patients: patients, beds: beds, doctors: doctors, appointments: appointments}
}

// ResolveDoctorName maps a doctor reference to a display name. Empty means
// no doctor was assigned; a reference that no longer resolves renders as
// "Unknown Doctor" rather than failing the listing.
func ResolveDoctorName(doctorID string, doctors map[string]models.Doctor) string {
	if strings.TrimSpace(doctorID) == "" {
		return NotAssignedLabel
	}
	if doctor, ok := doctors[doctorID]; ok {
		return doctor.Name
	}
	return UnknownDoctorLabel
}

// ResolveBedLabel maps a bed reference to a "Ward - Number" display label.
// Older records stored the rendered label itself instead of a bed ID; a
// reference that does not resolve but already looks like a label is passed
// through unchanged.
func ResolveBedLabel(bedRef string, beds map[string]models.Bed) string {
	ref := strings.TrimSpace(bedRef)
	if ref == "" {
		return NotAssignedLabel
	}
	if bed, ok := beds[ref]; ok {
		return fmt.Sprintf("%s - %s", bed.Ward, bed.BedNumber)
	}
	if strings.Contains(ref, " - ") {
		return ref
	}
	return BedNotFoundLabel
}

// ListPatients returns patients with doctor names and bed labels joined in,
// optionally narrowed by a search query. A blank query returns everyone.
func (s *DirectoryService) ListPatients(ctx context.Context, query string) ([]models.Patient, error) {
	patients, err := s.patients.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}
	doctors, err := s.doctorIndex(ctx)
	if err != nil {
		return nil, err
	}
	beds, err := s.bedIndex(ctx)
	if err != nil {
		return nil, err
	}

	for i := range patients {
		patients[i].AssignedDoctorName = ResolveDoctorName(patients[i].AssignedDoctor, doctors)
		patients[i].BedLabel = ResolveBedLabel(patients[i].AssignedBed, beds)
	}

	return utils.FilterRecords(patients, query, func(p models.Patient) []string {
		return []string{p.ID, p.Name, p.Gender, strconv.Itoa(p.Age), p.Condition, p.Contact, p.AssignedDoctorName, p.BedLabel}
	}), nil
}

// ListDoctors returns doctors, optionally narrowed by a search query.
func (s *DirectoryService) ListDoctors(ctx context.Context, query string) ([]models.Doctor, error) {
	doctors, err := s.doctors.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list doctors")
	}
	return utils.FilterRecords(doctors, query, func(d models.Doctor) []string {
		return []string{d.ID, d.Name, d.Specialization, d.Contact}
	}), nil
}

// ListAppointments returns appointments with patient and doctor names
// joined in, optionally narrowed by a search query.
func (s *DirectoryService) ListAppointments(ctx context.Context, query string) ([]models.Appointment, error) {
	appointments, err := s.appointments.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}
	doctors, err := s.doctorIndex(ctx)
	if err != nil {
		return nil, err
	}
	patients, err := s.patientIndex(ctx)
	if err != nil {
		return nil, err
	}

	for i := range appointments {
		if patient, ok := patients[appointments[i].PatientID]; ok {
			appointments[i].PatientName = patient.Name
		} else {
			appointments[i].PatientName = appointments[i].PatientID
		}
		appointments[i].DoctorName = ResolveDoctorName(appointments[i].DoctorID, doctors)
	}

	return utils.FilterRecords(appointments, query, func(a models.Appointment) []string {
		return []string{strconv.FormatUint(uint64(a.ID), 10), a.PatientName, a.DoctorName, a.AppointmentDate, a.Status}
	}), nil
}

// GroupBedsByWard buckets every bed under its ward. A bed with a blank ward
// is filed under the default ward so the grouping covers the full list.
func (s *DirectoryService) GroupBedsByWard(ctx context.Context) (map[string][]models.Bed, error) {
	beds, err := s.beds.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list beds")
	}
	grouped := make(map[string][]models.Bed)
	for _, bed := range beds {
		ward := strings.TrimSpace(bed.Ward)
		if ward == "" {
			ward = DefaultWard
		}
		grouped[ward] = append(grouped[ward], bed)
	}
	return grouped, nil
}

// DashboardStats holds the front-desk overview counters. Cancelled
// appointments are excluded from the day counters.
type DashboardStats struct {
	TotalPatients         int `json:"total_patients"`
	TotalDoctors          int `json:"total_doctors"`
	TotalBeds             int `json:"total_beds"`
	OccupiedBeds          int `json:"occupied_beds"`
	AvailableBeds         int `json:"available_beds"`
	ScheduledAppointments int `json:"scheduled_appointments"`
	AppointmentsToday     int `json:"appointments_today"`
	AppointmentsTomorrow  int `json:"appointments_tomorrow"`
}

func (s *DirectoryService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	patients, err := s.patients.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}
	doctors, err := s.doctors.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list doctors")
	}
	beds, err := s.beds.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list beds")
	}
	appointments, err := s.appointments.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	stats := &DashboardStats{
		TotalPatients: len(patients),
		TotalDoctors:  len(doctors),
		TotalBeds:     len(beds),
	}
	for _, bed := range beds {
		if bed.IsOccupied {
			stats.OccupiedBeds++
		} else {
			stats.AvailableBeds++
		}
	}
	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	for _, appointment := range appointments {
		if appointment.Status == "scheduled" {
			stats.ScheduledAppointments++
		}
		if appointment.Status == "cancelled" {
			continue
		}
		switch appointment.AppointmentDate {
		case today:
			stats.AppointmentsToday++
		case tomorrow:
			stats.AppointmentsTomorrow++
		}
	}
	return stats, nil
}

func (s *DirectoryService) doctorIndex(ctx context.Context) (map[string]models.Doctor, error) {
	doctors, err := s.doctors.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list doctors")
	}
	index := make(map[string]models.Doctor, len(doctors))
	for _, doctor := range doctors {
		index[doctor.ID] = doctor
	}
	return index, nil
}

func (s *DirectoryService) bedIndex(ctx context.Context) (map[string]models.Bed, error) {
	beds, err := s.beds.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list beds")
	}
	index := make(map[string]models.Bed, len(beds))
	for _, bed := range beds {
		index[bed.ID] = bed
	}
	return index, nil
}

func (s *DirectoryService) patientIndex(ctx context.Context) (map[string]models.Patient, error) {
	patients, err := s.patients.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}
	index := make(map[string]models.Patient, len(patients))
	for _, patient := range patients {
		index[patient.ID] = patient
	}
	return index, nil
}
