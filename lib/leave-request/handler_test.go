package leaverequesthandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	holidaystore "conges-backend/lib/dicts/holiday/store"
	leavetypestore "conges-backend/lib/dicts/leave-type/store"
	employeestore "conges-backend/lib/employee/store"
	leaverequeststore "conges-backend/lib/leave-request/store"
	"conges-backend/models"
	leaveapimodels "conges-backend/models/api/leave"
	dbmodels "conges-backend/models/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.Nil(t, err)
	err = db.AutoMigrate(
		&dbmodels.OrgUnit{},
		&dbmodels.Employee{},
		&dbmodels.User{},
		&dbmodels.LeaveType{},
		&dbmodels.LeaveRequest{},
		&dbmodels.Holiday{},
	)
	require.Nil(t, err)
	return db
}

func newTestHandler(db *gorm.DB) impl {
	return impl{
		store:          leaverequeststore.NewInstance(db),
		leaveTypeStore: leavetypestore.NewInstance(db),
		employeeStore:  employeestore.NewInstance(db),
		holidayStore:   holidaystore.NewInstance(db),
	}
}

func setupFixtures(t *testing.T, db *gorm.DB) (leaveTypeID string) {
	sup := dbmodels.Employee{Matricule: "M100", Nom: "Ba", Prenom: "Omar"}
	require.Nil(t, db.Create(&sup).Error)
	supMatricule := sup.Matricule
	emp := dbmodels.Employee{Matricule: "M101", Nom: "Diop", Prenom: "Awa", SuperieurMatricule: &supMatricule}
	require.Nil(t, db.Create(&emp).Error)

	leaveType := dbmodels.LeaveType{Nom: "Congé annuel", JoursAutorises: 30}
	require.Nil(t, db.Create(&leaveType).Error)
	return leaveType.ID
}

func createRequest(t *testing.T, handler impl, leaveTypeID string) leaveapimodels.LeaveRequestView {
	view, err := handler.Create("user-1", "M101", leaveapimodels.LeaveRequestCreateData{
		LeaveTypeID: leaveTypeID,
		DateDebut:   "2025-06-02",
		DateFin:     "2025-06-06",
		Motif:       "vacances",
	})
	require.Nil(t, err)
	return view
}

func TestCreateLeaveRequest(t *testing.T) {
	db := newTestDB(t)
	handler := newTestHandler(db)
	leaveTypeID := setupFixtures(t, db)

	t.Run("création en attente", func(t *testing.T) {
		view := createRequest(t, handler, leaveTypeID)
		require.Equal(t, string(models.StatusEnAttente), view.Statut)
		require.Equal(t, "En attente", view.StatutLabel)
		require.Equal(t, "Awa Diop", view.EmployeNom)
		require.Equal(t, "Congé annuel", view.TypeConge)
		require.Equal(t, 5, view.JoursOuvres)
		require.False(t, view.SubmittedAt.IsZero())
	})

	t.Run("type de congé inconnu", func(t *testing.T) {
		_, err := handler.Create("user-1", "M101", leaveapimodels.LeaveRequestCreateData{
			LeaveTypeID: "inconnu",
			DateDebut:   "2025-06-02",
			DateFin:     "2025-06-06",
		})
		require.EqualError(t, err, "type de congé inconnu")
	})

	t.Run("employé inconnu", func(t *testing.T) {
		_, err := handler.Create("user-1", "M999", leaveapimodels.LeaveRequestCreateData{
			LeaveTypeID: leaveTypeID,
			DateDebut:   "2025-06-02",
			DateFin:     "2025-06-06",
		})
		require.EqualError(t, err, "employé introuvable")
	})

	t.Run("période inversée refusée", func(t *testing.T) {
		_, err := handler.Create("user-1", "M101", leaveapimodels.LeaveRequestCreateData{
			LeaveTypeID: leaveTypeID,
			DateDebut:   "2025-06-06",
			DateFin:     "2025-06-02",
		})
		require.EqualError(t, err, "la date de fin précède la date de début")
	})

	t.Run("date illisible refusée", func(t *testing.T) {
		_, err := handler.Create("user-1", "M101", leaveapimodels.LeaveRequestCreateData{
			LeaveTypeID: leaveTypeID,
			DateDebut:   "02/06/2025",
			DateFin:     "2025-06-06",
		})
		require.NotNil(t, err)
	})
}

func TestLeaveRequestDecisions(t *testing.T) {
	db := newTestDB(t)
	handler := newTestHandler(db)
	leaveTypeID := setupFixtures(t, db)

	t.Run("approbation par le supérieur direct", func(t *testing.T) {
		view := createRequest(t, handler, leaveTypeID)
		err := handler.Approve("user-sup", "M100", models.RoleSuperieur, view.ID)
		require.Nil(t, err)

		updated, err := handler.GetByID(view.ID)
		require.Nil(t, err)
		require.Equal(t, string(models.StatusApprouvee), updated.Statut)
	})

	t.Run("un supérieur étranger est refusé", func(t *testing.T) {
		view := createRequest(t, handler, leaveTypeID)
		err := handler.Approve("user-x", "M999", models.RoleSuperieur, view.ID)
		require.EqualError(t, err, "cette demande ne concerne pas votre équipe")
	})

	t.Run("les RH décident sans lien hiérarchique", func(t *testing.T) {
		view := createRequest(t, handler, leaveTypeID)
		err := handler.Reject("user-rh", "", models.RoleRH, view.ID)
		require.Nil(t, err)

		updated, err := handler.GetByID(view.ID)
		require.Nil(t, err)
		require.Equal(t, string(models.StatusRejetee), updated.Statut)
	})

	t.Run("un statut terminal est figé", func(t *testing.T) {
		view := createRequest(t, handler, leaveTypeID)
		require.Nil(t, handler.Approve("user-rh", "", models.RoleRH, view.ID))
		err := handler.Reject("user-rh", "", models.RoleRH, view.ID)
		require.EqualError(t, err, "la demande ne peut pas passer de « Approuvée » à « Rejetée »")
	})

	t.Run("demande inconnue", func(t *testing.T) {
		err := handler.Approve("user-rh", "", models.RoleRH, "inconnue")
		require.EqualError(t, err, "demande de congé introuvable")
	})
}

func TestCancelLeaveRequest(t *testing.T) {
	db := newTestDB(t)
	handler := newTestHandler(db)
	leaveTypeID := setupFixtures(t, db)

	t.Run("annulation par le demandeur", func(t *testing.T) {
		view := createRequest(t, handler, leaveTypeID)
		require.Nil(t, handler.Cancel("user-1", "M101", view.ID))

		updated, err := handler.GetByID(view.ID)
		require.Nil(t, err)
		require.Equal(t, string(models.StatusAnnulee), updated.Statut)
	})

	t.Run("annulation par un tiers refusée", func(t *testing.T) {
		view := createRequest(t, handler, leaveTypeID)
		err := handler.Cancel("user-2", "M100", view.ID)
		require.EqualError(t, err, "seul le demandeur peut annuler sa demande")
	})

	t.Run("annulation après approbation refusée", func(t *testing.T) {
		view := createRequest(t, handler, leaveTypeID)
		require.Nil(t, handler.Approve("user-rh", "", models.RoleRH, view.ID))
		err := handler.Cancel("user-1", "M101", view.ID)
		require.EqualError(t, err, "la demande ne peut pas passer de « Approuvée » à « Annulée »")
	})
}

// la mise à jour conditionnelle protège contre deux décisions concurrentes
func TestUpdateStatusIf(t *testing.T) {
	db := newTestDB(t)
	handler := newTestHandler(db)
	leaveTypeID := setupFixtures(t, db)
	view := createRequest(t, handler, leaveTypeID)

	store := leaverequeststore.NewInstance(db)
	applied, err := store.UpdateStatusIf(view.ID, models.StatusEnAttente, models.StatusApprouvee)
	require.Nil(t, err)
	require.True(t, applied)

	// second gagnant potentiel: la ligne n'est plus en attente
	applied, err = store.UpdateStatusIf(view.ID, models.StatusEnAttente, models.StatusRejetee)
	require.Nil(t, err)
	require.False(t, applied)

	updated, err := handler.GetByID(view.ID)
	require.Nil(t, err)
	require.Equal(t, string(models.StatusApprouvee), updated.Statut)
}

func TestListLeaveRequests(t *testing.T) {
	db := newTestDB(t)
	handler := newTestHandler(db)
	leaveTypeID := setupFixtures(t, db)

	createRequest(t, handler, leaveTypeID)
	createRequest(t, handler, leaveTypeID)

	t.Run("filtre par matricule", func(t *testing.T) {
		list, rowCount, err := handler.List(leaveapimodels.LeaveRequestFilter{Matricule: "M101"})
		require.Nil(t, err)
		require.Equal(t, int64(2), rowCount)
		require.Len(t, list, 2)
		require.Equal(t, 5, list[0].JoursOuvres)
	})

	t.Run("filtre par statut sans résultat", func(t *testing.T) {
		_, rowCount, err := handler.List(leaveapimodels.LeaveRequestFilter{Statut: string(models.StatusApprouvee)})
		require.Nil(t, err)
		require.Equal(t, int64(0), rowCount)
	})
}
