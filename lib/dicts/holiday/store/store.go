package holidaystore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "conges-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Holiday) (string, error)
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.Holiday, err error)
	List() (list []dbmodels.Holiday, err error)
	ListBetween(from, to time.Time) (list []dbmodels.Holiday, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Holiday) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Holiday{}).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.Holiday, err error) {
	err = i.db.Model(dbmodels.Holiday{}).
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

func (i impl) List() (list []dbmodels.Holiday, err error) {
	err = i.db.Model(dbmodels.Holiday{}).
		Order("jour").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListBetween(from, to time.Time) (list []dbmodels.Holiday, err error) {
	err = i.db.Model(dbmodels.Holiday{}).
		Where("jour >= ?", from).
		Where("jour <= ?", to).
		Order("jour").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
