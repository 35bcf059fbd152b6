package controllers

import (
	"CareDesk/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRecordRoutes registers the front-desk record routes: patients,
// doctors, beds with the allocation endpoints, appointments, prescriptions,
// diagnoses and the dashboard counters.
func SetupRecordRoutes(router *gin.Engine, patientHandler *handlers.PatientHandler, doctorHandler *handlers.DoctorHandler, bedHandler *handlers.BedHandler, appointmentHandler *handlers.AppointmentHandler, medicineHandler *handlers.MedicineHandler, diagnosisHandler *handlers.DiagnosisHandler, dashboardHandler *handlers.DashboardHandler) {
	router.POST("/patients", patientHandler.CreatePatient)
	router.GET("/patients/:id", patientHandler.GetPatientByID)
	router.PUT("/patients/:id", patientHandler.UpdatePatient)
	router.DELETE("/patients/:id", patientHandler.DeletePatient)
	router.GET("/patients", patientHandler.GetAllPatients)

	router.POST("/doctors", doctorHandler.CreateDoctor)
	router.GET("/doctors/:id", doctorHandler.GetDoctorByID)
	router.PUT("/doctors/:id", doctorHandler.UpdateDoctor)
	router.DELETE("/doctors/:id", doctorHandler.DeleteDoctor)
	router.GET("/doctors", doctorHandler.GetAllDoctors)
	router.GET("/doctors/:id/availability", doctorHandler.GetDoctorAvailability)

	router.POST("/beds", bedHandler.CreateBed)
	router.GET("/beds", bedHandler.GetAllBeds)
	router.GET("/beds/grouped", bedHandler.GetBedsGroupedByWard)
	router.GET("/beds/:id", bedHandler.GetBedByID)
	router.PUT("/beds/:id", bedHandler.UpdateBed)
	router.DELETE("/beds/:id", bedHandler.DeleteBed)
	router.POST("/beds/allocate", bedHandler.AllocateBed)
	router.POST("/beds/:id/discharge", bedHandler.DischargeBed)

	router.POST("/appointments", appointmentHandler.CreateAppointment)
	router.GET("/appointments/:id", appointmentHandler.GetAppointmentByID)
	router.PUT("/appointments/:id", appointmentHandler.UpdateAppointment)
	router.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)
	router.GET("/appointments", appointmentHandler.GetAllAppointments)

	router.POST("/medicines", medicineHandler.CreateMedicine)
	router.GET("/medicines/:id", medicineHandler.GetMedicineByID)
	router.PUT("/medicines/:id", medicineHandler.UpdateMedicine)
	router.DELETE("/medicines/:id", medicineHandler.DeleteMedicine)
	router.GET("/medicines", medicineHandler.GetAllMedicines)

	router.POST("/diagnoses", diagnosisHandler.CreateDiagnosis)
	router.GET("/diagnoses/:id", diagnosisHandler.GetDiagnosisByID)
	router.PUT("/diagnoses/:id", diagnosisHandler.UpdateDiagnosis)
	router.DELETE("/diagnoses/:id", diagnosisHandler.DeleteDiagnosis)
	router.GET("/diagnoses", diagnosisHandler.GetAllDiagnoses)

	router.GET("/dashboard/stats", dashboardHandler.GetStats)
}
