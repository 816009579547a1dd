package dbmodels

import (
	"fmt"
	"time"

	employeeapimodels "conges-backend/models/api/employee"
)

// Employee est identifié par son matricule, attribué par les RH et immuable.
type Employee struct {
	Matricule          string    `gorm:"primaryKey;type:varchar(20)" json:"matricule"`
	CreatedAt          time.Time `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Nom                string    `gorm:"type:varchar(150)"`
	Prenom             string    `gorm:"type:varchar(150)"`
	Sexe               string    `gorm:"type:varchar(1)"`
	Poste              string    `gorm:"type:varchar(150)"`
	SoldeConges        int
	DateEmbauche       time.Time
	OrgUnitID          *string
	OrgUnit            *OrgUnit
	SuperieurMatricule *string   `gorm:"type:varchar(20)"`
	Superieur          *Employee `gorm:"foreignKey:SuperieurMatricule;references:Matricule"`
	User               *User     `gorm:"foreignKey:Matricule;references:Matricule"`
}

func (r Employee) GetFullName() string {
	return fmt.Sprintf("%s %s", r.Prenom, r.Nom)
}

func (r Employee) ToModel() employeeapimodels.EmployeeView {
	view := employeeapimodels.EmployeeView{
		EmployeeCommonData: employeeapimodels.EmployeeCommonData{
			Matricule:    r.Matricule,
			Nom:          r.Nom,
			Prenom:       r.Prenom,
			Sexe:         r.Sexe,
			Poste:        r.Poste,
			SoldeConges:  r.SoldeConges,
			DateEmbauche: r.DateEmbauche.Format("2006-01-02"),
		},
	}
	if r.OrgUnitID != nil {
		view.OrgUnitID = *r.OrgUnitID
	}
	if r.OrgUnit != nil {
		view.OrgUnitNom = r.OrgUnit.Nom
	}
	if r.SuperieurMatricule != nil {
		view.SuperieurMatricule = *r.SuperieurMatricule
	}
	if r.Superieur != nil {
		view.SuperieurNom = r.Superieur.GetFullName()
	}
	if r.User != nil {
		view.CompteEmail = r.User.Email
	}
	return view
}
