package leavetypehandler

import (
	"github.com/pkg/errors"

	"conges-backend/db"
	leavetypestore "conges-backend/lib/dicts/leave-type/store"
	dictapimodels "conges-backend/models/api/dict"
	dbmodels "conges-backend/models/db"
)

type Provider interface {
	Create(data dictapimodels.LeaveTypeData) (id string, err error)
	Update(id string, data dictapimodels.LeaveTypeData) error
	Delete(id string) error
	GetByID(id string) (view *dictapimodels.LeaveTypeView, err error)
	List() (list []dictapimodels.LeaveTypeView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: leavetypestore.NewInstance(db.DB),
	}
}

type impl struct {
	store leavetypestore.Provider
}

func (i impl) Create(data dictapimodels.LeaveTypeData) (id string, err error) {
	err = data.Validate()
	if err != nil {
		return "", err
	}
	exist, err := i.store.GetByNom(data.Nom)
	if err != nil {
		return "", errors.Wrap(err, "erreur de vérification du type de congé")
	}
	if exist != nil {
		return "", errors.New("un type de congé porte déjà ce nom")
	}
	id, err = i.store.Create(dbmodels.LeaveType{
		Nom:            data.Nom,
		JoursAutorises: data.JoursAutorises,
	})
	if err != nil {
		return "", errors.Wrap(err, "erreur de création du type de congé")
	}
	return id, nil
}

func (i impl) Update(id string, data dictapimodels.LeaveTypeData) error {
	err := data.Validate()
	if err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "erreur de récupération du type de congé")
	}
	if rec == nil {
		return errors.New("type de congé introuvable")
	}
	err = i.store.Update(id, map[string]interface{}{
		"nom":             data.Nom,
		"jours_autorises": data.JoursAutorises,
	})
	if err != nil {
		return errors.Wrap(err, "erreur de mise à jour du type de congé")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) GetByID(id string) (view *dictapimodels.LeaveTypeView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération du type de congé")
	}
	if rec == nil {
		return nil, nil
	}
	result := rec.ToModel()
	return &result, nil
}

func (i impl) List() (list []dictapimodels.LeaveTypeView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération des types de congé")
	}
	list = make([]dictapimodels.LeaveTypeView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}
