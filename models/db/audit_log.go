package dbmodels

import (
	auditapimodels "conges-backend/models/api/audit"
)

// AuditLog est une trace en append-only, jamais modifiée après création.
type AuditLog struct {
	BaseModel
	UserID  string `gorm:"index"`
	User    *User
	Action  string `gorm:"type:varchar(100)"`
	Details string `gorm:"type:text"`
}

func (r AuditLog) ToModel() auditapimodels.AuditView {
	view := auditapimodels.AuditView{
		ID:        r.ID,
		UserID:    r.UserID,
		Action:    r.Action,
		Details:   r.Details,
		CreatedAt: r.CreatedAt,
	}
	if r.User != nil {
		view.UserNom = r.User.GetFullName()
	}
	return view
}
