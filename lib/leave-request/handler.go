package leaverequesthandler

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"conges-backend/db"
	audithandler "conges-backend/lib/audit"
	holidaystore "conges-backend/lib/dicts/holiday/store"
	leavetypestore "conges-backend/lib/dicts/leave-type/store"
	employeestore "conges-backend/lib/employee/store"
	leaverequeststore "conges-backend/lib/leave-request/store"
	notificationhandler "conges-backend/lib/notification"
	"conges-backend/models"
	leaveapimodels "conges-backend/models/api/leave"
	dbmodels "conges-backend/models/db"
)

type Provider interface {
	Create(userID, matricule string, data leaveapimodels.LeaveRequestCreateData) (view leaveapimodels.LeaveRequestView, err error)
	GetByID(id string) (view *leaveapimodels.LeaveRequestView, err error)
	List(filter leaveapimodels.LeaveRequestFilter) (list []leaveapimodels.LeaveRequestView, rowCount int64, err error)
	Approve(userID, actorMatricule string, actorRole models.UserRole, id string) error
	Reject(userID, actorMatricule string, actorRole models.UserRole, id string) error
	Cancel(userID, actorMatricule, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:          leaverequeststore.NewInstance(db.DB),
		leaveTypeStore: leavetypestore.NewInstance(db.DB),
		employeeStore:  employeestore.NewInstance(db.DB),
		holidayStore:   holidaystore.NewInstance(db.DB),
		notify:         notificationhandler.Instance,
		audit:          audithandler.Instance,
	}
}

type impl struct {
	store          leaverequeststore.Provider
	leaveTypeStore leavetypestore.Provider
	employeeStore  employeestore.Provider
	holidayStore   holidaystore.Provider
	notify         notificationhandler.Provider
	audit          audithandler.Provider
}

func (i impl) Create(userID, matricule string, data leaveapimodels.LeaveRequestCreateData) (view leaveapimodels.LeaveRequestView, err error) {
	err = data.Validate()
	if err != nil {
		return view, err
	}
	leaveType, err := i.leaveTypeStore.GetByID(data.LeaveTypeID)
	if err != nil {
		return view, errors.Wrap(err, "erreur de récupération du type de congé")
	}
	if leaveType == nil {
		return view, errors.New("type de congé inconnu")
	}
	emp, err := i.employeeStore.GetByMatricule(matricule)
	if err != nil {
		return view, errors.Wrap(err, "erreur de récupération de l'employé")
	}
	if emp == nil {
		return view, errors.New("employé introuvable")
	}
	debut, fin := data.GetPeriode()
	rec := dbmodels.LeaveRequest{
		Matricule:   matricule,
		LeaveTypeID: data.LeaveTypeID,
		Statut:      models.StatusEnAttente,
		DateDebut:   debut,
		DateFin:     fin,
		Motif:       data.Motif,
		SubmittedAt: time.Now(),
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return view, errors.Wrap(err, "erreur de création de la demande de congé")
	}
	created, err := i.store.GetByID(id)
	if err != nil || created == nil {
		return view, errors.Wrap(err, "erreur de relecture de la demande de congé")
	}

	// la demande est validée: la suite est au mieux et ne la remet pas en cause
	if i.notify != nil {
		i.notify.NotifyNewLeaveRequest(*created)
	}
	if i.audit != nil {
		i.audit.Log(userID, "conges.create",
			fmt.Sprintf("demande %s de %s %s", created.ID, matricule, created.FormatPeriode()))
	}
	return created.ToModel(i.workingDays(created.DateDebut, created.DateFin)), nil
}

func (i impl) GetByID(id string) (view *leaveapimodels.LeaveRequestView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération de la demande de congé")
	}
	if rec == nil {
		return nil, nil
	}
	result := rec.ToModel(i.workingDays(rec.DateDebut, rec.DateFin))
	return &result, nil
}

func (i impl) List(filter leaveapimodels.LeaveRequestFilter) (list []leaveapimodels.LeaveRequestView, rowCount int64, err error) {
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erreur de récupération des demandes de congé")
	}
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erreur de décompte des demandes de congé")
	}
	holidays, err := i.holidayStore.List()
	if err != nil {
		return nil, 0, errors.Wrap(err, "erreur de récupération des jours fériés")
	}
	list = make([]leaveapimodels.LeaveRequestView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel(CountWorkingDays(rec.DateDebut, rec.DateFin, holidays)))
	}
	return list, rowCount, nil
}

func (i impl) Approve(userID, actorMatricule string, actorRole models.UserRole, id string) error {
	return i.decide(userID, actorMatricule, actorRole, id, models.StatusApprouvee)
}

func (i impl) Reject(userID, actorMatricule string, actorRole models.UserRole, id string) error {
	return i.decide(userID, actorMatricule, actorRole, id, models.StatusRejetee)
}

// Cancel n'est permis qu'au demandeur, et seulement tant que la demande est en attente.
func (i impl) Cancel(userID, actorMatricule, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "erreur de récupération de la demande de congé")
	}
	if rec == nil {
		return errors.New("demande de congé introuvable")
	}
	if rec.Matricule != actorMatricule {
		return errors.New("seul le demandeur peut annuler sa demande")
	}
	return i.changeStatus(userID, rec, models.StatusAnnulee)
}

// decide applique une approbation ou un rejet; un supérieur ne décide que pour
// les membres de son équipe.
func (i impl) decide(userID, actorMatricule string, actorRole models.UserRole, id string, to models.RequestStatus) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "erreur de récupération de la demande de congé")
	}
	if rec == nil {
		return errors.New("demande de congé introuvable")
	}
	if actorRole == models.RoleSuperieur {
		if rec.Employee == nil ||
			rec.Employee.SuperieurMatricule == nil ||
			*rec.Employee.SuperieurMatricule != actorMatricule {
			return errors.New("cette demande ne concerne pas votre équipe")
		}
	}
	return i.changeStatus(userID, rec, to)
}

func (i impl) changeStatus(userID string, rec *dbmodels.LeaveRequest, to models.RequestStatus) error {
	if !rec.Statut.IsAllowChange(to) {
		return errors.Errorf("la demande ne peut pas passer de « %s » à « %s »", rec.Statut.ToHuman(), to.ToHuman())
	}
	applied, err := i.store.UpdateStatusIf(rec.ID, rec.Statut, to)
	if err != nil {
		return errors.Wrap(err, "erreur de mise à jour du statut")
	}
	if !applied {
		return errors.New("la demande a déjà été traitée")
	}
	rec.Statut = to
	if i.notify != nil {
		i.notify.NotifyStatusChange(*rec)
	}
	if i.audit != nil {
		i.audit.Log(userID, "conges."+strings.ToLower(string(to)),
			fmt.Sprintf("demande %s de %s passée à %s", rec.ID, rec.Matricule, to.ToHuman()))
	}
	return nil
}

func (i impl) workingDays(debut, fin time.Time) int {
	holidays, err := i.holidayStore.ListBetween(debut, fin)
	if err != nil {
		holidays = nil
	}
	return CountWorkingDays(debut, fin, holidays)
}
