package orgunithandler

import (
	"github.com/pkg/errors"

	"conges-backend/db"
	orgunitstore "conges-backend/lib/dicts/org-unit/store"
	dictapimodels "conges-backend/models/api/dict"
	dbmodels "conges-backend/models/db"
)

type Provider interface {
	Create(data dictapimodels.OrgUnitData) (id string, err error)
	Update(id string, data dictapimodels.OrgUnitData) error
	Delete(id string) error
	GetByID(id string) (view *dictapimodels.OrgUnitView, err error)
	List() (list []dictapimodels.OrgUnitView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: orgunitstore.NewInstance(db.DB),
	}
}

type impl struct {
	store orgunitstore.Provider
}

func (i impl) Create(data dictapimodels.OrgUnitData) (id string, err error) {
	err = data.Validate()
	if err != nil {
		return "", err
	}
	id, err = i.store.Create(dbmodels.OrgUnit{
		Nom:       data.Nom,
		TypeUnite: data.TypeUnite,
	})
	if err != nil {
		return "", errors.Wrap(err, "erreur de création de l'unité")
	}
	return id, nil
}

func (i impl) Update(id string, data dictapimodels.OrgUnitData) error {
	err := data.Validate()
	if err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "erreur de récupération de l'unité")
	}
	if rec == nil {
		return errors.New("unité introuvable")
	}
	err = i.store.Update(id, map[string]interface{}{
		"nom":        data.Nom,
		"type_unite": data.TypeUnite,
	})
	if err != nil {
		return errors.Wrap(err, "erreur de mise à jour de l'unité")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) GetByID(id string) (view *dictapimodels.OrgUnitView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération de l'unité")
	}
	if rec == nil {
		return nil, nil
	}
	result := rec.ToModel()
	return &result, nil
}

func (i impl) List() (list []dictapimodels.OrgUnitView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération des unités")
	}
	list = make([]dictapimodels.OrgUnitView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}
