package employeeapimodels

import (
	"errors"
	"time"

	apimodels "conges-backend/models/api"
)

type EmployeeCommonData struct {
	Matricule          string `json:"matricule"`
	Nom                string `json:"nom"`
	Prenom             string `json:"prenom"`
	Sexe               string `json:"sexe"`
	Poste              string `json:"poste"`
	SoldeConges        int    `json:"solde_conges"`
	DateEmbauche       string `json:"date_embauche"` // format 2006-01-02
	OrgUnitID          string `json:"org_unit_id"`
	SuperieurMatricule string `json:"superieur_matricule"`
}

func (r EmployeeCommonData) Validate() error {
	if r.Matricule == "" {
		return errors.New("matricule non renseigné")
	}
	if r.Nom == "" {
		return errors.New("nom non renseigné")
	}
	if r.SoldeConges < 0 {
		return errors.New("le solde de congés ne peut pas être négatif")
	}
	if r.DateEmbauche != "" {
		if _, err := time.Parse("2006-01-02", r.DateEmbauche); err != nil {
			return errors.New("date d'embauche invalide, format attendu AAAA-MM-JJ")
		}
	}
	return nil
}

func (r EmployeeCommonData) GetDateEmbauche() time.Time {
	t, _ := time.Parse("2006-01-02", r.DateEmbauche)
	return t
}

type CreateEmployee struct {
	EmployeeCommonData
	// Email du compte à provisionner; vide = pas de compte créé.
	CompteEmail string `json:"compte_email"`
}

type UpdateEmployee struct {
	EmployeeCommonData
}

type EmployeeView struct {
	EmployeeCommonData
	OrgUnitNom   string `json:"org_unit_nom,omitempty"`
	SuperieurNom string `json:"superieur_nom,omitempty"`
	CompteEmail  string `json:"compte_email,omitempty"`
}

type EmployeeFilter struct {
	apimodels.Pagination
	Search    string `json:"search"`      // Recherche nom/prénom/matricule
	OrgUnitID string `json:"org_unit_id"` // Filtre par unité
}
