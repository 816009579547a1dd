package orgunitstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "conges-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.OrgUnit) (string, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.OrgUnit, err error)
	List() (list []dbmodels.OrgUnit, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.OrgUnit) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.OrgUnit{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.OrgUnit{}).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.OrgUnit, err error) {
	err = i.db.Model(dbmodels.OrgUnit{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) List() (list []dbmodels.OrgUnit, err error) {
	err = i.db.Model(dbmodels.OrgUnit{}).
		Order("nom").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
