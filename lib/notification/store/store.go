package notificationstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "conges-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (*dbmodels.Notification, error)
	GetByID(id string) (rec *dbmodels.Notification, err error)
	List(userID string, page, limit int) (list []dbmodels.Notification, err error)
	ListUnread(userID string) (list []dbmodels.Notification, err error)
	ListCount(userID string) (int64, error)
	MarkAsRead(id string) error
	MarkAllAsRead(userID string) error
	CountUnread(userID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (*dbmodels.Notification, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Notification, err error) {
	err = i.db.Model(dbmodels.Notification{}).
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

func (i impl) List(userID string, page, limit int) (list []dbmodels.Notification, err error) {
	tx := i.db.Model(dbmodels.Notification{})
	i.setPage(tx, page, limit)
	err = tx.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(userID string) (count int64, err error) {
	err = i.db.Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ListUnread(userID string) (list []dbmodels.Notification, err error) {
	err = i.db.Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("est_lu = ?", false).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// MarkAsRead ne touche que les notifications encore non lues : un second
// appel ne modifie ni est_lu ni lu_at.
func (i impl) MarkAsRead(id string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Where("est_lu = ?", false).
		Updates(map[string]interface{}{
			"est_lu": true,
			"lu_at":  time.Now(),
		}).
		Error
}

func (i impl) MarkAllAsRead(userID string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("est_lu = ?", false).
		Updates(map[string]interface{}{
			"est_lu": true,
			"lu_at":  time.Now(),
		}).
		Error
}

func (i impl) CountUnread(userID string) (count int64, err error) {
	err = i.db.Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("est_lu = ?", false).
		Count(&count).
		Error
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
