package leaverequeststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"conges-backend/models"
	leaveapimodels "conges-backend/models/api/leave"
	dbmodels "conges-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.LeaveRequest) (string, error)
	GetByID(id string) (rec *dbmodels.LeaveRequest, err error)
	List(filter leaveapimodels.LeaveRequestFilter) (list []dbmodels.LeaveRequest, err error)
	ListCount(filter leaveapimodels.LeaveRequestFilter) (int64, error)
	UpdateStatusIf(id string, from, to models.RequestStatus) (applied bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.LeaveRequest) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.LeaveRequest, err error) {
	err = i.db.Model(dbmodels.LeaveRequest{}).
		Where("id = ?", id).
		Preload("Employee").
		Preload("Employee.User").
		Preload("Employee.Superieur").
		Preload("Employee.Superieur.User").
		Preload("LeaveType").
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

func (i impl) List(filter leaveapimodels.LeaveRequestFilter) (list []dbmodels.LeaveRequest, err error) {
	tx := i.listQuery(filter)
	i.setPage(tx, filter.Page, filter.Limit)
	err = tx.
		Preload("Employee").
		Preload("LeaveType").
		Order("submitted_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter leaveapimodels.LeaveRequestFilter) (count int64, err error) {
	err = i.listQuery(filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateStatusIf n'applique la transition que si la demande est encore dans le
// statut attendu; une seconde transition concurrente retombe sur applied=false.
func (i impl) UpdateStatusIf(id string, from, to models.RequestStatus) (applied bool, err error) {
	tx := i.db.
		Model(&dbmodels.LeaveRequest{}).
		Where("id = ?", id).
		Where("statut = ?", from).
		Update("statut", to)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) listQuery(filter leaveapimodels.LeaveRequestFilter) *gorm.DB {
	tx := i.db.Model(dbmodels.LeaveRequest{})
	if filter.Matricule != "" {
		tx = tx.Where("matricule = ?", filter.Matricule)
	}
	if filter.Statut != "" {
		tx = tx.Where("statut = ?", filter.Statut)
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
