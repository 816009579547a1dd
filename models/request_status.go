package models

type RequestStatus string

const (
	StatusEnAttente RequestStatus = "EN_ATTENTE"
	StatusApprouvee RequestStatus = "APPROUVEE"
	StatusRejetee   RequestStatus = "REJETEE"
	StatusAnnulee   RequestStatus = "ANNULEE"
)

var AllStatuses = []RequestStatus{StatusEnAttente, StatusApprouvee, StatusRejetee, StatusAnnulee}

var statusHumanName = map[RequestStatus]string{
	StatusEnAttente: "En attente",
	StatusApprouvee: "Approuvée",
	StatusRejetee:   "Rejetée",
	StatusAnnulee:   "Annulée",
}

func (s RequestStatus) ToHuman() string {
	if human, exist := statusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s RequestStatus) IsValid() bool {
	_, exist := statusHumanName[s]
	return exist
}

// une demande ne quitte jamais un statut terminal
var allowedTransitions = map[RequestStatus][]RequestStatus{
	StatusEnAttente: {StatusApprouvee, StatusRejetee, StatusAnnulee},
	StatusApprouvee: {},
	StatusRejetee:   {},
	StatusAnnulee:   {},
}

func (s RequestStatus) IsAllowChange(to RequestStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s RequestStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}
