package wsmodels

// ServerMessage est une notification poussée sur la socket d'un utilisateur.
type ServerMessage struct {
	ToUserID string `json:"-"`
	Time     string `json:"time"`
	Titre    string `json:"titre"`
	Message  string `json:"message"`
	Type     string `json:"type"`
}
