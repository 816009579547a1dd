package leavetypestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "conges-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.LeaveType) (string, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.LeaveType, err error)
	GetByNom(nom string) (rec *dbmodels.LeaveType, err error)
	List() (list []dbmodels.LeaveType, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.LeaveType) (string, error) {
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
		Model(&dbmodels.LeaveType{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.LeaveType{}).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.LeaveType, err error) {
	err = i.db.Model(dbmodels.LeaveType{}).
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

func (i impl) GetByNom(nom string) (rec *dbmodels.LeaveType, err error) {
	err = i.db.Model(dbmodels.LeaveType{}).
		Where("nom = ?", nom).
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

func (i impl) List() (list []dbmodels.LeaveType, err error) {
	err = i.db.Model(dbmodels.LeaveType{}).
		Order("nom").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
