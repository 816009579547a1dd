package notificationapimodels

import "time"

// NotificationView reprend les clés du format historique consommé par le front.
type NotificationView struct {
	ID         string     `json:"idNotification"`
	UserID     string     `json:"idUtilisateur"`
	Titre      string     `json:"titre"`
	Message    string     `json:"message"`
	Type       string     `json:"type"` // info|success|warning|error
	EntiteLiee string     `json:"entite_liee,omitempty"`
	EntiteID   string     `json:"entite_id,omitempty"`
	EstLu      bool       `json:"est_lu"`
	LuAt       *time.Time `json:"lu_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type UnreadCount struct {
	Count int64 `json:"count"`
}
