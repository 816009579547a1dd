package dictapimodels

import (
	"errors"
	"time"
)

type OrgUnitData struct {
	Nom       string `json:"nom"`
	TypeUnite string `json:"type_unite"`
}

func (r OrgUnitData) Validate() error {
	if r.Nom == "" {
		return errors.New("nom non renseigné")
	}
	return nil
}

type OrgUnitView struct {
	ID string `json:"id"`
	OrgUnitData
}

type LeaveTypeData struct {
	Nom            string `json:"nom"`
	JoursAutorises int    `json:"jours_autorises"`
}

func (r LeaveTypeData) Validate() error {
	if r.Nom == "" {
		return errors.New("nom non renseigné")
	}
	if r.JoursAutorises < 0 {
		return errors.New("le nombre de jours autorisés ne peut pas être négatif")
	}
	return nil
}

type LeaveTypeView struct {
	ID string `json:"id"`
	LeaveTypeData
}

type HolidayData struct {
	Jour        string `json:"jour"` // format 2006-01-02
	Description string `json:"description"`
}

func (r HolidayData) Validate() error {
	if _, err := time.Parse("2006-01-02", r.Jour); err != nil {
		return errors.New("jour invalide, format attendu AAAA-MM-JJ")
	}
	return nil
}

func (r HolidayData) GetJour() time.Time {
	t, _ := time.Parse("2006-01-02", r.Jour)
	return t
}

type HolidayView struct {
	ID string `json:"id"`
	HolidayData
}

type StatusView struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
