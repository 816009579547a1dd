package models

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleRH        UserRole = "rh"
	RoleSuperieur UserRole = "superieur"
	RoleEmploye   UserRole = "employe"
)

// AllRoles est l'ensemble fermé des rôles, sans hiérarchie :
// chaque endpoint énumère explicitement les rôles autorisés.
var AllRoles = []UserRole{RoleAdmin, RoleRH, RoleSuperieur, RoleEmploye}

var roleHumanName = map[UserRole]string{
	RoleAdmin:     "Administrateur",
	RoleRH:        "Ressources humaines",
	RoleSuperieur: "Supérieur hiérarchique",
	RoleEmploye:   "Employé",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

const SystemUser = "Système"
