package dbmodels

import (
	"fmt"
	"time"

	"conges-backend/models"
	leaveapimodels "conges-backend/models/api/leave"
)

type LeaveRequest struct {
	BaseModel
	Matricule   string               `gorm:"type:varchar(20);index"`
	Employee    *Employee            `gorm:"foreignKey:Matricule;references:Matricule"`
	LeaveTypeID string
	LeaveType   *LeaveType
	Statut      models.RequestStatus `gorm:"type:varchar(20);index"`
	DateDebut   time.Time
	DateFin     time.Time
	Motif       string `gorm:"type:text"`
	SubmittedAt time.Time
}

// FormatPeriode rend la période telle qu'elle apparaît dans les notifications.
func (r LeaveRequest) FormatPeriode() string {
	return fmt.Sprintf("du %s au %s", r.DateDebut.Format("02/01/2006"), r.DateFin.Format("02/01/2006"))
}

func (r LeaveRequest) ToModel(joursOuvres int) leaveapimodels.LeaveRequestView {
	view := leaveapimodels.LeaveRequestView{
		ID:          r.ID,
		Matricule:   r.Matricule,
		LeaveTypeID: r.LeaveTypeID,
		Statut:      string(r.Statut),
		StatutLabel: r.Statut.ToHuman(),
		DateDebut:   r.DateDebut.Format("2006-01-02"),
		DateFin:     r.DateFin.Format("2006-01-02"),
		Motif:       r.Motif,
		SubmittedAt: r.SubmittedAt,
		JoursOuvres: joursOuvres,
	}
	if r.Employee != nil {
		view.EmployeNom = r.Employee.GetFullName()
	}
	if r.LeaveType != nil {
		view.TypeConge = r.LeaveType.Nom
	}
	return view
}
