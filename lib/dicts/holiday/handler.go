package holidayhandler

import (
	"github.com/pkg/errors"

	"conges-backend/db"
	holidaystore "conges-backend/lib/dicts/holiday/store"
	dictapimodels "conges-backend/models/api/dict"
	dbmodels "conges-backend/models/db"
)

type Provider interface {
	Create(data dictapimodels.HolidayData) (id string, err error)
	Delete(id string) error
	List() (list []dictapimodels.HolidayView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: holidaystore.NewInstance(db.DB),
	}
}

type impl struct {
	store holidaystore.Provider
}

func (i impl) Create(data dictapimodels.HolidayData) (id string, err error) {
	err = data.Validate()
	if err != nil {
		return "", err
	}
	id, err = i.store.Create(dbmodels.Holiday{
		Jour:        data.GetJour(),
		Description: data.Description,
	})
	if err != nil {
		return "", errors.Wrap(err, "erreur de création du jour férié")
	}
	return id, nil
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) List() (list []dictapimodels.HolidayView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération des jours fériés")
	}
	list = make([]dictapimodels.HolidayView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}
