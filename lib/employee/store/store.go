package employeestore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	employeeapimodels "conges-backend/models/api/employee"
	dbmodels "conges-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) error
	Update(matricule string, updMap map[string]interface{}) error
	Delete(matricule string) error
	GetByMatricule(matricule string) (rec *dbmodels.Employee, err error)
	Exist(matricule string) (bool, error)
	List(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error)
	ListCount(filter employeeapimodels.EmployeeFilter) (int64, error)
	ListSubordinates(matricule string) (list []dbmodels.Employee, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) Update(matricule string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.Employee{}).
		Where("matricule = ?", matricule).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(matricule string) error {
	return i.db.
		Where("matricule = ?", matricule).
		Delete(&dbmodels.Employee{}).
		Error
}

func (i impl) GetByMatricule(matricule string) (rec *dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("matricule = ?", matricule).
		Preload("OrgUnit").
		Preload("User").
		Preload("Superieur").
		Preload("Superieur.User").
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

func (i impl) Exist(matricule string) (bool, error) {
	err := i.db.
		Where("matricule = ?", matricule).
		First(&dbmodels.Employee{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error) {
	tx := i.listQuery(filter)
	i.setPage(tx, filter.Page, filter.Limit)
	err = tx.
		Preload("OrgUnit").
		Preload("User").
		Preload("Superieur").
		Order("matricule").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter employeeapimodels.EmployeeFilter) (count int64, err error) {
	err = i.listQuery(filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ListSubordinates(matricule string) (list []dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("superieur_matricule = ?", matricule).
		Order("matricule").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) listQuery(filter employeeapimodels.EmployeeFilter) *gorm.DB {
	tx := i.db.Model(dbmodels.Employee{})
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("LOWER(prenom || ' ' || nom) like ? OR LOWER(matricule) like ?", search, search)
	}
	if filter.OrgUnitID != "" {
		tx = tx.Where("org_unit_id = ?", filter.OrgUnitID)
	}
	return tx
}

func (i impl) setPage(tx *gorm.DB, pageValue, limitValue int) {
	page := 1
	limit := 10
	if pageValue > 0 {
		page = pageValue
	}
	if limitValue > 0 {
		limit = limitValue
	}
	if limit > 100 {
		limit = 100
	}
	tx.Limit(limit).Offset((page - 1) * limit)
}
