package models

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// entités référencées par une notification
const (
	EntiteConges   = "conges"
	EntiteEmployes = "employes"
)
