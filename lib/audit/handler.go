package audithandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"conges-backend/db"
	auditstore "conges-backend/lib/audit/store"
	auditapimodels "conges-backend/models/api/audit"
	dbmodels "conges-backend/models/db"
)

type Provider interface {
	Log(userID, action, details string)
	List(filter auditapimodels.AuditFilter) (list []auditapimodels.AuditView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: auditstore.NewInstance(db.DB),
	}
}

type impl struct {
	store auditstore.Provider
}

// Log est au mieux: une trace perdue ne fait jamais échouer l'opération tracée.
func (i impl) Log(userID, action, details string) {
	err := i.store.Create(dbmodels.AuditLog{
		UserID:  userID,
		Action:  action,
		Details: details,
	})
	if err != nil {
		log.
			WithField("user_id", userID).
			WithField("action", action).
			WithError(err).
			Error("erreur d'écriture de la trace d'audit")
	}
}

func (i impl) List(filter auditapimodels.AuditFilter) (list []auditapimodels.AuditView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	recs, err := i.store.List(filter.UserID, page, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erreur de récupération des traces d'audit")
	}
	rowCount, err = i.store.ListCount(filter.UserID)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erreur de décompte des traces d'audit")
	}
	list = make([]auditapimodels.AuditView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}
