package auditstore

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "conges-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AuditLog) error
	List(userID string, page, limit int) (list []dbmodels.AuditLog, err error)
	ListCount(userID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AuditLog) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) List(userID string, page, limit int) (list []dbmodels.AuditLog, err error) {
	tx := i.db.Model(dbmodels.AuditLog{})
	if userID != "" {
		tx = tx.Where("user_id = ?", userID)
	}
	i.setPage(tx, page, limit)
	err = tx.
		Preload(clause.Associations).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(userID string) (count int64, err error) {
	tx := i.db.Model(dbmodels.AuditLog{})
	if userID != "" {
		tx = tx.Where("user_id = ?", userID)
	}
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
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
