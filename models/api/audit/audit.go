package auditapimodels

import (
	"time"

	apimodels "conges-backend/models/api"
)

type AuditView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserNom   string    `json:"user_nom,omitempty"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type AuditFilter struct {
	apimodels.Pagination
	UserID string `json:"user_id"` // Filtre par utilisateur
}
