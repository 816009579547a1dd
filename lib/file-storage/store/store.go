package documentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "conges-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Document) (string, error)
	Update(id, s3Key string) error
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.Document, err error)
	ListByLeaveRequest(leaveRequestID string) (list []dbmodels.Document, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Document) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id, s3Key string) error {
	return i.db.
		Model(&dbmodels.Document{}).
		Where("id = ?", id).
		Update("s3_key", s3Key).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Document{}).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.Document, err error) {
	err = i.db.Model(dbmodels.Document{}).
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

func (i impl) ListByLeaveRequest(leaveRequestID string) (list []dbmodels.Document, err error) {
	err = i.db.Model(dbmodels.Document{}).
		Where("leave_request_id = ?", leaveRequestID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
