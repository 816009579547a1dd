package employeehandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"conges-backend/config"
	"conges-backend/db"
	audithandler "conges-backend/lib/audit"
	orgunitstore "conges-backend/lib/dicts/org-unit/store"
	employeestore "conges-backend/lib/employee/store"
	notificationhandler "conges-backend/lib/notification"
	"conges-backend/lib/smtp"
	usersstore "conges-backend/lib/users/store"
	authutils "conges-backend/lib/utils/auth-utils"
	"conges-backend/models"
	employeeapimodels "conges-backend/models/api/employee"
	dbmodels "conges-backend/models/db"
)

// maxSupervisorDepth borne la remontée de la chaîne hiérarchique.
const maxSupervisorDepth = 50

type Provider interface {
	Create(userID string, data employeeapimodels.CreateEmployee) (view employeeapimodels.EmployeeView, err error)
	Update(userID, matricule string, data employeeapimodels.UpdateEmployee) error
	Delete(userID, matricule string) error
	GetByMatricule(matricule string) (view *employeeapimodels.EmployeeView, err error)
	List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error)
	ListSubordinates(matricule string) (list []employeeapimodels.EmployeeView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:        employeestore.NewInstance(db.DB),
		usersStore:   usersstore.NewInstance(db.DB),
		orgUnitStore: orgunitstore.NewInstance(db.DB),
		smtpClient:   smtp.Instance,
		notify:       notificationhandler.Instance,
		audit:        audithandler.Instance,
		loginURL:     config.Conf.App.LoginURL,
		emailFrom:    config.Conf.Smtp.EmailFrom,
	}
}

type impl struct {
	store        employeestore.Provider
	usersStore   usersstore.Provider
	orgUnitStore orgunitstore.Provider
	smtpClient   smtp.Provider
	notify       notificationhandler.Provider
	audit        audithandler.Provider
	loginURL     string
	emailFrom    string
}

func (i impl) Create(userID string, data employeeapimodels.CreateEmployee) (view employeeapimodels.EmployeeView, err error) {
	err = data.Validate()
	if err != nil {
		return view, err
	}
	exist, err := i.store.Exist(data.Matricule)
	if err != nil {
		return view, errors.Wrap(err, "erreur de vérification du matricule")
	}
	if exist {
		return view, errors.New("matricule déjà utilisé")
	}
	if data.OrgUnitID != "" {
		unit, err := i.orgUnitStore.GetByID(data.OrgUnitID)
		if err != nil {
			return view, errors.Wrap(err, "erreur de vérification de l'unité")
		}
		if unit == nil {
			return view, errors.New("unité organisationnelle inconnue")
		}
	}
	err = i.checkSupervisorChain(data.Matricule, data.SuperieurMatricule)
	if err != nil {
		return view, err
	}
	if data.CompteEmail != "" {
		exist, err = i.usersStore.ExistByEmail(data.CompteEmail)
		if err != nil {
			return view, errors.Wrap(err, "erreur de vérification de l'email")
		}
		if exist {
			return view, errors.New("email déjà utilisé")
		}
	}

	rec := dbmodels.Employee{
		Matricule:    data.Matricule,
		Nom:          data.Nom,
		Prenom:       data.Prenom,
		Sexe:         data.Sexe,
		Poste:        data.Poste,
		SoldeConges:  data.SoldeConges,
		DateEmbauche: data.GetDateEmbauche(),
	}
	if data.OrgUnitID != "" {
		rec.OrgUnitID = &data.OrgUnitID
	}
	if data.SuperieurMatricule != "" {
		rec.SuperieurMatricule = &data.SuperieurMatricule
	}
	err = i.store.Create(rec)
	if err != nil {
		return view, errors.Wrap(err, "erreur de création de l'employé")
	}

	// l'employé existe: le provisionnement et les diffusions sont au mieux
	if data.CompteEmail != "" {
		i.provisionAccount(rec, data.CompteEmail)
	}
	if i.notify != nil {
		i.notify.NotifyNewEmployee(rec, userID)
	}
	if i.audit != nil {
		i.audit.Log(userID, "employes.create", fmt.Sprintf("employé %s (%s) créé", rec.Matricule, rec.GetFullName()))
	}

	created, err := i.GetByMatricule(rec.Matricule)
	if err != nil || created == nil {
		return view, errors.Wrap(err, "erreur de relecture de l'employé")
	}
	return *created, nil
}

func (i impl) Update(userID, matricule string, data employeeapimodels.UpdateEmployee) error {
	data.Matricule = matricule
	err := data.Validate()
	if err != nil {
		return err
	}
	exist, err := i.store.Exist(matricule)
	if err != nil {
		return errors.Wrap(err, "erreur de vérification du matricule")
	}
	if !exist {
		return errors.New("employé introuvable")
	}
	if data.OrgUnitID != "" {
		unit, err := i.orgUnitStore.GetByID(data.OrgUnitID)
		if err != nil {
			return errors.Wrap(err, "erreur de vérification de l'unité")
		}
		if unit == nil {
			return errors.New("unité organisationnelle inconnue")
		}
	}
	err = i.checkSupervisorChain(matricule, data.SuperieurMatricule)
	if err != nil {
		return err
	}

	updMap := map[string]interface{}{
		"nom":          data.Nom,
		"prenom":       data.Prenom,
		"sexe":         data.Sexe,
		"poste":        data.Poste,
		"solde_conges": data.SoldeConges,
	}
	if data.DateEmbauche != "" {
		updMap["date_embauche"] = data.GetDateEmbauche()
	}
	if data.OrgUnitID != "" {
		updMap["org_unit_id"] = data.OrgUnitID
	} else {
		updMap["org_unit_id"] = nil
	}
	if data.SuperieurMatricule != "" {
		updMap["superieur_matricule"] = data.SuperieurMatricule
	} else {
		updMap["superieur_matricule"] = nil
	}
	err = i.store.Update(matricule, updMap)
	if err != nil {
		return errors.Wrap(err, "erreur de mise à jour de l'employé")
	}
	if i.audit != nil {
		i.audit.Log(userID, "employes.update", fmt.Sprintf("employé %s mis à jour", matricule))
	}
	return nil
}

// Delete supprime la fiche et désactive le compte lié sans l'effacer.
func (i impl) Delete(userID, matricule string) error {
	rec, err := i.store.GetByMatricule(matricule)
	if err != nil {
		return errors.Wrap(err, "erreur de récupération de l'employé")
	}
	if rec == nil {
		return errors.New("employé introuvable")
	}
	if rec.User != nil {
		err = i.usersStore.Update(rec.User.ID, map[string]interface{}{"is_active": false})
		if err != nil {
			return errors.Wrap(err, "erreur de désactivation du compte lié")
		}
	}
	err = i.store.Delete(matricule)
	if err != nil {
		return errors.Wrap(err, "erreur de suppression de l'employé")
	}
	if i.audit != nil {
		i.audit.Log(userID, "employes.delete", fmt.Sprintf("employé %s supprimé", matricule))
	}
	return nil
}

func (i impl) GetByMatricule(matricule string) (view *employeeapimodels.EmployeeView, err error) {
	rec, err := i.store.GetByMatricule(matricule)
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération de l'employé")
	}
	if rec == nil {
		return nil, nil
	}
	result := rec.ToModel()
	return &result, nil
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error) {
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erreur de récupération des employés")
	}
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erreur de décompte des employés")
	}
	list = make([]employeeapimodels.EmployeeView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) ListSubordinates(matricule string) (list []employeeapimodels.EmployeeView, err error) {
	recs, err := i.store.ListSubordinates(matricule)
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération des subordonnés")
	}
	list = make([]employeeapimodels.EmployeeView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

// checkSupervisorChain refuse un supérieur inexistant ainsi que toute
// affectation qui refermerait la chaîne hiérarchique sur elle-même.
func (i impl) checkSupervisorChain(matricule, superieurMatricule string) error {
	if superieurMatricule == "" {
		return nil
	}
	if superieurMatricule == matricule {
		return errors.New("un employé ne peut pas être son propre supérieur")
	}
	current := superieurMatricule
	for depth := 0; depth < maxSupervisorDepth; depth++ {
		sup, err := i.store.GetByMatricule(current)
		if err != nil {
			return errors.Wrap(err, "erreur de vérification de la hiérarchie")
		}
		if sup == nil {
			if current == superieurMatricule {
				return errors.New("supérieur introuvable")
			}
			return nil
		}
		if sup.SuperieurMatricule == nil {
			return nil
		}
		if *sup.SuperieurMatricule == matricule {
			return errors.New("cette affectation créerait un cycle hiérarchique")
		}
		current = *sup.SuperieurMatricule
	}
	return errors.New("chaîne hiérarchique trop profonde")
}

// provisionAccount crée le compte lié et envoie le mot de passe temporaire.
// Un échec est journalisé sans remettre en cause la création de l'employé.
func (i impl) provisionAccount(rec dbmodels.Employee, email string) {
	logger := log.
		WithField("matricule", rec.Matricule).
		WithField("email", email)
	tempPassword := authutils.GenerateTempPassword()
	hash, err := authutils.HashPassword(tempPassword)
	if err != nil {
		logger.WithError(err).Error("erreur de hachage du mot de passe temporaire")
		return
	}
	matricule := rec.Matricule
	_, err = i.usersStore.Create(dbmodels.User{
		Email:              email,
		Password:           hash,
		Nom:                rec.Nom,
		Prenom:             rec.Prenom,
		Role:               models.RoleEmploye,
		Matricule:          &matricule,
		TempPassword:       true,
		MustChangePassword: true,
		IsActive:           true,
	})
	if err != nil {
		logger.WithError(err).Error("erreur de création du compte lié")
		return
	}
	if i.smtpClient == nil {
		logger.Warn("client smtp absent, email de provisionnement non envoyé")
		return
	}
	message := fmt.Sprintf("Bonjour %s,\n\n"+
		"Votre compte d'accès à l'application de gestion des congés a été créé.\n\n"+
		"Identifiant : %s\n"+
		"Mot de passe temporaire : %s\n\n"+
		"Connectez-vous sur %s et changez votre mot de passe dès la première connexion.",
		rec.GetFullName(), email, tempPassword, i.loginURL)
	err = i.smtpClient.SendEMail(i.emailFrom, email, message, "Création de votre compte")
	if err != nil {
		logger.WithError(err).Error("erreur d'envoi de l'email de provisionnement")
	}
}
