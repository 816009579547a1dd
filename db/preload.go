package db

import (
	log "github.com/sirupsen/logrus"

	"conges-backend/config"
	leavetypestore "conges-backend/lib/dicts/leave-type/store"
	usersstore "conges-backend/lib/users/store"
	authutils "conges-backend/lib/utils/auth-utils"
	"conges-backend/models"
	dbmodels "conges-backend/models/db"
)

func InitPreload() {
	addAdmin()
	fillLeaveTypes()
}

func addAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("administrateur initial non créé, réglage ADMIN_EMAIL absent")
		return
	}
	userStore := usersstore.NewInstance(DB)
	existedRec, err := userStore.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("erreur de création de l'administrateur initial")
		return
	}
	if existedRec != nil {
		return
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("erreur de création de l'administrateur initial")
		return
	}
	rec := dbmodels.User{
		Email:    config.Conf.Admin.Email,
		Password: hash,
		Nom:      config.Conf.Admin.Nom,
		Prenom:   config.Conf.Admin.Prenom,
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	_, err = userStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("erreur de création de l'administrateur initial")
	}
}

var defaultLeaveTypes = []dbmodels.LeaveType{
	{Nom: "Congé annuel", JoursAutorises: 30},
	{Nom: "Congé maladie", JoursAutorises: 15},
	{Nom: "Congé maternité", JoursAutorises: 98},
	{Nom: "Congé sans solde", JoursAutorises: 0},
}

func fillLeaveTypes() {
	store := leavetypestore.NewInstance(DB)
	for _, rec := range defaultLeaveTypes {
		existed, err := store.GetByNom(rec.Nom)
		if err != nil {
			log.WithError(err).Error("erreur de préchargement des types de congé")
			return
		}
		if existed != nil {
			continue
		}
		if _, err := store.Create(rec); err != nil {
			log.WithError(err).Error("erreur de préchargement des types de congé")
			return
		}
	}
}
