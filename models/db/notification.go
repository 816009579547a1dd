package dbmodels

import (
	"time"

	"conges-backend/models"
	notificationapimodels "conges-backend/models/api/notification"
)

// Notification est créée non lue; le marquage en lu est idempotent
// (est_lu false→true une seule fois, lu_at posé à ce moment-là).
type Notification struct {
	BaseModel
	UserID     string                  `gorm:"index"`
	User       *User
	Titre      string                  `gorm:"type:varchar(255)"`
	Message    string                  `gorm:"type:text"`
	Type       models.NotificationType `gorm:"type:varchar(20)"`
	EntiteLiee string                  `gorm:"type:varchar(50)"`
	EntiteID   string                  `gorm:"type:varchar(64)"`
	EstLu      bool
	LuAt       *time.Time
}

func (r Notification) ToModel() notificationapimodels.NotificationView {
	return notificationapimodels.NotificationView{
		ID:         r.ID,
		UserID:     r.UserID,
		Titre:      r.Titre,
		Message:    r.Message,
		Type:       string(r.Type),
		EntiteLiee: r.EntiteLiee,
		EntiteID:   r.EntiteID,
		EstLu:      r.EstLu,
		LuAt:       r.LuAt,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
