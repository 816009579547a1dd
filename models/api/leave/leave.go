package leaveapimodels

import (
	"errors"
	"time"

	apimodels "conges-backend/models/api"
)

type LeaveRequestCreateData struct {
	LeaveTypeID string `json:"leave_type_id"`
	DateDebut   string `json:"date_debut"` // format 2006-01-02
	DateFin     string `json:"date_fin"`   // format 2006-01-02
	Motif       string `json:"motif"`
}

func (r LeaveRequestCreateData) Validate() error {
	if r.LeaveTypeID == "" {
		return errors.New("type de congé non renseigné")
	}
	debut, err := time.Parse("2006-01-02", r.DateDebut)
	if err != nil {
		return errors.New("date de début invalide, format attendu AAAA-MM-JJ")
	}
	fin, err := time.Parse("2006-01-02", r.DateFin)
	if err != nil {
		return errors.New("date de fin invalide, format attendu AAAA-MM-JJ")
	}
	if fin.Before(debut) {
		return errors.New("la date de fin précède la date de début")
	}
	return nil
}

func (r LeaveRequestCreateData) GetPeriode() (debut, fin time.Time) {
	debut, _ = time.Parse("2006-01-02", r.DateDebut)
	fin, _ = time.Parse("2006-01-02", r.DateFin)
	return debut, fin
}

type LeaveRequestView struct {
	ID          string    `json:"id"`
	Matricule   string    `json:"matricule"`
	EmployeNom  string    `json:"employe_nom,omitempty"`
	LeaveTypeID string    `json:"leave_type_id"`
	TypeConge   string    `json:"type_conge,omitempty"`
	Statut      string    `json:"statut"`
	StatutLabel string    `json:"statut_label"`
	DateDebut   string    `json:"date_debut"`
	DateFin     string    `json:"date_fin"`
	Motif       string    `json:"motif"`
	SubmittedAt time.Time `json:"submitted_at"`
	JoursOuvres int       `json:"jours_ouvres"`
}

type LeaveRequestFilter struct {
	apimodels.Pagination
	Matricule string `json:"matricule"` // Filtre par employé
	Statut    string `json:"statut"`    // Filtre par statut
}
