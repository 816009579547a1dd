package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "conges-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("Lancement des migrations")
	if err := DB.AutoMigrate(&dbmodels.OrgUnit{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure OrgUnit")
	}
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure User")
	}
	if err := DB.AutoMigrate(&dbmodels.LeaveType{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure LeaveType")
	}
	if err := DB.AutoMigrate(&dbmodels.LeaveRequest{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure LeaveRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.Holiday{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure Holiday")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.AuditLog{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure AuditLog")
	}
	if err := DB.AutoMigrate(&dbmodels.Document{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure Document")
	}
	log.Info("Migration terminée avec succès")
	return nil
}
