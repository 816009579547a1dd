package notificationhandler

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"conges-backend/db"
	employeestore "conges-backend/lib/employee/store"
	notificationstore "conges-backend/lib/notification/store"
	usersstore "conges-backend/lib/users/store"
	connectionhub "conges-backend/lib/ws/hub/connection-hub"
	"conges-backend/models"
	notificationapimodels "conges-backend/models/api/notification"
	dbmodels "conges-backend/models/db"
	wsmodels "conges-backend/models/ws"
)

type Provider interface {
	Creer(userID, titre, message string, nType models.NotificationType, entiteLiee, entiteID string) error
	NotifyNewLeaveRequest(rec dbmodels.LeaveRequest)
	NotifyStatusChange(rec dbmodels.LeaveRequest)
	NotifyNewEmployee(emp dbmodels.Employee, creatorUserID string)
	List(userID string, page, limit int) (list []notificationapimodels.NotificationView, rowCount int64, err error)
	MarkAsRead(userID, notificationID string) error
	MarkAllAsRead(userID string) error
	UnreadCount(userID string) (int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:         notificationstore.NewInstance(db.DB),
		usersStore:    usersstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         notificationstore.Provider
	usersStore    usersstore.Provider
	employeeStore employeestore.Provider
}

func (i impl) Creer(userID, titre, message string, nType models.NotificationType, entiteLiee, entiteID string) error {
	rec, err := i.store.Create(dbmodels.Notification{
		UserID:     userID,
		Titre:      titre,
		Message:    message,
		Type:       nType,
		EntiteLiee: entiteLiee,
		EntiteID:   entiteID,
	})
	if err != nil {
		return errors.Wrap(err, "erreur de création de la notification")
	}
	if connectionhub.Instance != nil {
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     rec.CreatedAt.Format("02/01/2006 15:04:05"),
			Titre:    rec.Titre,
			Message:  rec.Message,
			Type:     string(rec.Type),
		})
	}
	return nil
}

// NotifyNewLeaveRequest prévient le supérieur de l'employé et chaque
// administrateur. L'envoi est au mieux : toute erreur est journalisée
// et jamais propagée à l'appelant.
func (i impl) NotifyNewLeaveRequest(rec dbmodels.LeaveRequest) {
	logger := log.
		WithField("leave_request_id", rec.ID).
		WithField("matricule", rec.Matricule)
	emp, err := i.employeeStore.GetByMatricule(rec.Matricule)
	if err != nil {
		logger.WithError(err).Error("notification de nouvelle demande: erreur de chargement de l'employé")
		return
	}
	if emp == nil {
		logger.Error("notification de nouvelle demande: employé introuvable")
		return
	}
	titre := "Nouvelle demande de congé"
	message := fmt.Sprintf("%s a soumis une demande de congé %s.", emp.GetFullName(), rec.FormatPeriode())
	if emp.Superieur != nil && emp.Superieur.User != nil {
		err = i.Creer(emp.Superieur.User.ID, titre, message, models.NotificationInfo, models.EntiteConges, rec.ID)
		if err != nil {
			logger.WithError(err).Error("erreur de notification du supérieur")
		}
	}
	admins, err := i.usersStore.ListByRoles(models.RoleAdmin)
	if err != nil {
		logger.WithError(err).Error("erreur de chargement des administrateurs")
		return
	}
	for _, admin := range admins {
		err = i.Creer(admin.ID, titre, message, models.NotificationInfo, models.EntiteConges, rec.ID)
		if err != nil {
			logger.WithError(err).WithField("user_id", admin.ID).Error("erreur de notification de l'administrateur")
		}
	}
}

// NotifyStatusChange prévient l'employé concerné puis chaque administrateur.
// Une approbation part en "success" pour les deux; tout autre statut part en
// "error" côté employé et en "warning" côté administrateurs.
func (i impl) NotifyStatusChange(rec dbmodels.LeaveRequest) {
	logger := log.
		WithField("leave_request_id", rec.ID).
		WithField("matricule", rec.Matricule)
	emp, err := i.employeeStore.GetByMatricule(rec.Matricule)
	if err != nil {
		logger.WithError(err).Error("notification de changement de statut: erreur de chargement de l'employé")
		return
	}
	if emp == nil {
		logger.Error("notification de changement de statut: employé introuvable")
		return
	}
	label := rec.Statut.ToHuman()
	titre := fmt.Sprintf("Demande de congé %s", strings.ToLower(label))
	empType := models.NotificationError
	adminType := models.NotificationWarning
	if rec.Statut == models.StatusApprouvee {
		empType = models.NotificationSuccess
		adminType = models.NotificationSuccess
	}
	if emp.User != nil {
		message := fmt.Sprintf("Votre demande de congé %s est passée au statut « %s ».", rec.FormatPeriode(), label)
		err = i.Creer(emp.User.ID, titre, message, empType, models.EntiteConges, rec.ID)
		if err != nil {
			logger.WithError(err).Error("erreur de notification de l'employé")
		}
	}
	admins, err := i.usersStore.ListByRoles(models.RoleAdmin)
	if err != nil {
		logger.WithError(err).Error("erreur de chargement des administrateurs")
		return
	}
	adminMessage := fmt.Sprintf("La demande de congé de %s (%s) a été %s.", emp.GetFullName(), rec.FormatPeriode(), strings.ToLower(label))
	for _, admin := range admins {
		err = i.Creer(admin.ID, titre, adminMessage, adminType, models.EntiteConges, rec.ID)
		if err != nil {
			logger.WithError(err).WithField("user_id", admin.ID).Error("erreur de notification de l'administrateur")
		}
	}
}

// NotifyNewEmployee émet deux diffusions: RH et administrateurs hors créateur,
// puis tous les administrateurs créateur compris avec la mention de l'auteur.
// Un administrateur non créateur reçoit donc les deux variantes.
func (i impl) NotifyNewEmployee(emp dbmodels.Employee, creatorUserID string) {
	logger := log.
		WithField("matricule", emp.Matricule).
		WithField("creator_user_id", creatorUserID)
	titre := "Nouvel employé"
	message := fmt.Sprintf("%s a été ajouté au système.", emp.GetFullName())

	recipients, err := i.usersStore.ListByRoles(models.RoleRH, models.RoleAdmin)
	if err != nil {
		logger.WithError(err).Error("erreur de chargement des destinataires RH/admin")
	} else {
		for _, user := range recipients {
			if user.ID == creatorUserID {
				continue
			}
			err = i.Creer(user.ID, titre, message, models.NotificationInfo, models.EntiteEmployes, emp.Matricule)
			if err != nil {
				logger.WithError(err).WithField("user_id", user.ID).Error("erreur de notification du destinataire")
			}
		}
	}

	creatorName := models.SystemUser
	if creatorUserID != "" {
		creator, err := i.usersStore.GetByID(creatorUserID)
		if err != nil {
			logger.WithError(err).Error("erreur de chargement du créateur")
		}
		if creator != nil {
			creatorName = creator.GetFullName()
		}
	}
	adminMessage := fmt.Sprintf("%s a été ajouté au système par %s.", emp.GetFullName(), creatorName)
	admins, err := i.usersStore.ListByRoles(models.RoleAdmin)
	if err != nil {
		logger.WithError(err).Error("erreur de chargement des administrateurs")
		return
	}
	for _, admin := range admins {
		err = i.Creer(admin.ID, titre, adminMessage, models.NotificationInfo, models.EntiteEmployes, emp.Matricule)
		if err != nil {
			logger.WithError(err).WithField("user_id", admin.ID).Error("erreur de notification de l'administrateur")
		}
	}
}

func (i impl) List(userID string, page, limit int) (list []notificationapimodels.NotificationView, rowCount int64, err error) {
	recs, err := i.store.List(userID, page, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erreur de récupération des notifications")
	}
	rowCount, err = i.store.ListCount(userID)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erreur de décompte des notifications")
	}
	list = make([]notificationapimodels.NotificationView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) MarkAsRead(userID, notificationID string) error {
	rec, err := i.store.GetByID(notificationID)
	if err != nil {
		return errors.Wrap(err, "erreur de récupération de la notification")
	}
	if rec == nil || rec.UserID != userID {
		return errors.New("notification introuvable")
	}
	return i.store.MarkAsRead(notificationID)
}

func (i impl) MarkAllAsRead(userID string) error {
	return i.store.MarkAllAsRead(userID)
}

func (i impl) UnreadCount(userID string) (int64, error) {
	return i.store.CountUnread(userID)
}
