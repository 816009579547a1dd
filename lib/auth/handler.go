package authhandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"conges-backend/config"
	"conges-backend/db"
	audithandler "conges-backend/lib/audit"
	employeestore "conges-backend/lib/employee/store"
	"conges-backend/lib/smtp"
	usersstore "conges-backend/lib/users/store"
	authutils "conges-backend/lib/utils/auth-utils"
	"conges-backend/models"
	authapimodels "conges-backend/models/api/auth"
	dbmodels "conges-backend/models/db"
)

type Provider interface {
	Login(data authapimodels.LoginRequest) (resp authapimodels.JWTResponse, err error)
	RefreshToken(refreshToken string) (resp authapimodels.JWTResponse, err error)
	Me(userID string) (view *authapimodels.UserView, err error)
	Register(data authapimodels.RegisterRequest) error
	ChangePassword(userID string, data authapimodels.PasswordChange) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		usersStore:    usersstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		smtpClient:    smtp.Instance,
		audit:         audithandler.Instance,
		loginURL:      config.Conf.App.LoginURL,
		emailFrom:     config.Conf.Smtp.EmailFrom,
	}
}

type impl struct {
	usersStore    usersstore.Provider
	employeeStore employeestore.Provider
	smtpClient    smtp.Provider
	audit         audithandler.Provider
	loginURL      string
	emailFrom     string
}

// identifiants invalides, compte inconnu et compte désactivé renvoient le
// même message pour ne rien révéler sur l'existence du compte
var errBadCredentials = errors.New("email ou mot de passe incorrect")

func (i impl) Login(data authapimodels.LoginRequest) (resp authapimodels.JWTResponse, err error) {
	err = data.Validate()
	if err != nil {
		return resp, err
	}
	user, err := i.usersStore.FindByEmail(data.Email)
	if err != nil {
		return resp, errors.Wrap(err, "erreur de récupération du compte")
	}
	if user == nil || !user.IsActive {
		return resp, errBadCredentials
	}
	if !authutils.CheckPassword(user.Password, data.Password) {
		return resp, errBadCredentials
	}
	resp, err = i.issueTokens(*user)
	if err != nil {
		return resp, err
	}
	err = i.usersStore.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		log.WithField("user_id", user.ID).WithError(err).Error("erreur de mise à jour de la dernière connexion")
	}
	return resp, nil
}

func (i impl) RefreshToken(refreshToken string) (resp authapimodels.JWTResponse, err error) {
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		return resp, errors.New("refresh token invalide")
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return resp, errors.New("refresh token invalide")
	}
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return resp, errors.Wrap(err, "erreur de récupération du compte")
	}
	if user == nil || !user.IsActive {
		return resp, errors.New("compte inconnu ou désactivé")
	}
	return i.issueTokens(*user)
}

func (i impl) Me(userID string) (view *authapimodels.UserView, err error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération du compte")
	}
	if user == nil {
		return nil, nil
	}
	result := authapimodels.UserView{
		ID:                 user.ID,
		Email:              user.Email,
		Nom:                user.Nom,
		Prenom:             user.Prenom,
		Role:               string(user.Role),
		RoleLabel:          user.Role.ToHuman(),
		MustChangePassword: user.MustChangePassword,
	}
	if user.Matricule != nil {
		result.Matricule = *user.Matricule
	}
	return &result, nil
}

// Register auto-inscrit un employé déjà présent dans le référentiel: la fiche
// doit exister et n'être liée à aucun compte, le mot de passe temporaire part
// par email.
func (i impl) Register(data authapimodels.RegisterRequest) error {
	err := data.Validate()
	if err != nil {
		return err
	}
	emp, err := i.employeeStore.GetByMatricule(data.Matricule)
	if err != nil {
		return errors.Wrap(err, "erreur de récupération de l'employé")
	}
	if emp == nil {
		return errors.New("matricule inconnu")
	}
	if emp.User != nil {
		return errors.New("un compte est déjà lié à ce matricule")
	}
	exist, err := i.usersStore.ExistByEmail(data.Email)
	if err != nil {
		return errors.Wrap(err, "erreur de vérification de l'email")
	}
	if exist {
		return errors.New("email déjà utilisé")
	}

	tempPassword := authutils.GenerateTempPassword()
	hash, err := authutils.HashPassword(tempPassword)
	if err != nil {
		return errors.Wrap(err, "erreur de hachage du mot de passe temporaire")
	}
	matricule := emp.Matricule
	userID, err := i.usersStore.Create(dbmodels.User{
		Email:              data.Email,
		Password:           hash,
		Nom:                emp.Nom,
		Prenom:             emp.Prenom,
		Role:               models.RoleEmploye,
		Matricule:          &matricule,
		TempPassword:       true,
		MustChangePassword: true,
		IsActive:           true,
	})
	if err != nil {
		return errors.Wrap(err, "erreur de création du compte")
	}
	if i.audit != nil {
		i.audit.Log(userID, "auth.register", fmt.Sprintf("auto-inscription du matricule %s", matricule))
	}

	if i.smtpClient == nil {
		log.WithField("matricule", matricule).Warn("client smtp absent, email d'inscription non envoyé")
		return nil
	}
	message := fmt.Sprintf("Bonjour %s,\n\n"+
		"Votre compte d'accès à l'application de gestion des congés a été créé.\n\n"+
		"Identifiant : %s\n"+
		"Mot de passe temporaire : %s\n\n"+
		"Connectez-vous sur %s et changez votre mot de passe dès la première connexion.",
		emp.GetFullName(), data.Email, tempPassword, i.loginURL)
	err = i.smtpClient.SendEMail(i.emailFrom, data.Email, message, "Création de votre compte")
	if err != nil {
		log.WithField("matricule", matricule).WithError(err).Error("erreur d'envoi de l'email d'inscription")
	}
	return nil
}

func (i impl) ChangePassword(userID string, data authapimodels.PasswordChange) error {
	err := data.Validate()
	if err != nil {
		return err
	}
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return errors.Wrap(err, "erreur de récupération du compte")
	}
	if user == nil {
		return errors.New("compte introuvable")
	}
	if !authutils.CheckPassword(user.Password, data.CurrentPassword) {
		return errors.New("mot de passe actuel incorrect")
	}
	hash, err := authutils.HashPassword(data.NewPassword)
	if err != nil {
		return errors.Wrap(err, "erreur de hachage du mot de passe")
	}
	err = i.usersStore.Update(userID, map[string]interface{}{
		"password":             hash,
		"temp_password":        false,
		"must_change_password": false,
	})
	if err != nil {
		return errors.Wrap(err, "erreur de mise à jour du mot de passe")
	}
	if i.audit != nil {
		i.audit.Log(userID, "auth.change-password", "mot de passe modifié")
	}
	return nil
}

func (i impl) issueTokens(user dbmodels.User) (resp authapimodels.JWTResponse, err error) {
	matricule := ""
	if user.Matricule != nil {
		matricule = *user.Matricule
	}
	accessToken, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role, matricule)
	if err != nil {
		return resp, errors.Wrap(err, "erreur de génération du token")
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return resp, errors.Wrap(err, "erreur de génération du refresh token")
	}
	return authapimodels.JWTResponse{
		AccessToken:        accessToken,
		RefreshToken:       refreshToken,
		MustChangePassword: user.MustChangePassword,
	}, nil
}
