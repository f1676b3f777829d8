package dto

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type PatientSummaryDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"nome"`
	Phone string `json:"telefone"`
}

type PhysicianSummaryDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"nome"`
	Specialty string `json:"especialidade"`
}

type AppointmentListDTO struct {
	ID        uint                `json:"id"`
	Code      int                 `json:"codigo_consulta"`
	Date      string              `json:"data_consulta"`
	Time      string              `json:"horario"`
	Status    string              `json:"status"`
	Notes     string              `json:"observacoes"`
	Patient   PatientSummaryDTO   `json:"paciente"`
	Physician PhysicianSummaryDTO `json:"medico"`
	CreatedAt time.Time           `json:"created_at"`
}

// NewAppointmentListDTO tolera paciente ou médico já excluídos: o resumo
// fica só com o id.
func NewAppointmentListDTO(ap models.Appointment) AppointmentListDTO {
	out := AppointmentListDTO{
		ID:        ap.ID,
		Code:      ap.Code,
		Date:      ap.Date,
		Time:      ap.Time,
		Status:    ap.Status,
		Notes:     ap.Notes,
		Patient:   PatientSummaryDTO{ID: ap.PatientID},
		Physician: PhysicianSummaryDTO{ID: ap.PhysicianID},
		CreatedAt: ap.CreatedAt,
	}
	if ap.Patient != nil {
		out.Patient.Name = ap.Patient.Name
		out.Patient.Phone = ap.Patient.Phone
	}
	if ap.Physician != nil {
		out.Physician.Name = ap.Physician.Name
		out.Physician.Specialty = ap.Physician.Specialty
	}
	return out
}
