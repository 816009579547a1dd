package notificationhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	employeestore "conges-backend/lib/employee/store"
	notificationstore "conges-backend/lib/notification/store"
	usersstore "conges-backend/lib/users/store"
	"conges-backend/models"
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
		&dbmodels.Notification{},
	)
	require.Nil(t, err)
	return db
}

func newTestHandler(db *gorm.DB) impl {
	return impl{
		store:         notificationstore.NewInstance(db),
		usersStore:    usersstore.NewInstance(db),
		employeeStore: employeestore.NewInstance(db),
	}
}

func addUser(t *testing.T, db *gorm.DB, email string, role models.UserRole, matricule *string) dbmodels.User {
	user := dbmodels.User{
		Email:     email,
		Nom:       "Testeur",
		Prenom:    "Jean",
		Role:      role,
		Matricule: matricule,
		IsActive:  true,
	}
	require.Nil(t, db.Create(&user).Error)
	return user
}

func addEmployee(t *testing.T, db *gorm.DB, matricule string, superieur *string) dbmodels.Employee {
	emp := dbmodels.Employee{
		Matricule:          matricule,
		Nom:                "Diop",
		Prenom:             "Awa",
		SuperieurMatricule: superieur,
	}
	require.Nil(t, db.Create(&emp).Error)
	return emp
}

func listNotifications(t *testing.T, db *gorm.DB, userID string) []dbmodels.Notification {
	var list []dbmodels.Notification
	require.Nil(t, db.Where("user_id = ?", userID).Order("created_at").Find(&list).Error)
	return list
}

func TestNotifyNewLeaveRequest(t *testing.T) {
	db := newTestDB(t)
	handler := newTestHandler(db)

	supEmp := addEmployee(t, db, "M100", nil)
	supMatricule := supEmp.Matricule
	supUser := addUser(t, db, "sup@exemple.sn", models.RoleSuperieur, &supMatricule)
	emp := addEmployee(t, db, "M101", &supMatricule)
	admin1 := addUser(t, db, "admin1@exemple.sn", models.RoleAdmin, nil)
	admin2 := addUser(t, db, "admin2@exemple.sn", models.RoleAdmin, nil)
	addUser(t, db, "rh@exemple.sn", models.RoleRH, nil)

	rec := dbmodels.LeaveRequest{
		Matricule: emp.Matricule,
		Statut:    models.StatusEnAttente,
		DateDebut: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		DateFin:   time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
	}
	rec.ID = "req-1"
	handler.NotifyNewLeaveRequest(rec)

	t.Run("le supérieur est prévenu", func(t *testing.T) {
		list := listNotifications(t, db, supUser.ID)
		require.Len(t, list, 1)
		require.Equal(t, "Nouvelle demande de congé", list[0].Titre)
		require.Equal(t, "Awa Diop a soumis une demande de congé du 02/06/2025 au 06/06/2025.", list[0].Message)
		require.Equal(t, models.NotificationInfo, list[0].Type)
		require.Equal(t, models.EntiteConges, list[0].EntiteLiee)
		require.Equal(t, "req-1", list[0].EntiteID)
		require.False(t, list[0].EstLu)
	})

	t.Run("chaque administrateur est prévenu", func(t *testing.T) {
		require.Len(t, listNotifications(t, db, admin1.ID), 1)
		require.Len(t, listNotifications(t, db, admin2.ID), 1)
	})

	t.Run("les RH ne sont pas prévenues", func(t *testing.T) {
		var count int64
		require.Nil(t, db.Model(&dbmodels.Notification{}).Count(&count).Error)
		require.Equal(t, int64(3), count)
	})
}

func TestNotifyNewLeaveRequestSansSuperieur(t *testing.T) {
	db := newTestDB(t)
	handler := newTestHandler(db)

	addEmployee(t, db, "M200", nil)
	admin := addUser(t, db, "admin@exemple.sn", models.RoleAdmin, nil)

	rec := dbmodels.LeaveRequest{
		Matricule: "M200",
		Statut:    models.StatusEnAttente,
		DateDebut: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		DateFin:   time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
	}
	rec.ID = "req-2"
	handler.NotifyNewLeaveRequest(rec)

	require.Len(t, listNotifications(t, db, admin.ID), 1)
	var count int64
	require.Nil(t, db.Model(&dbmodels.Notification{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestNotifyStatusChange(t *testing.T) {
	db := newTestDB(t)
	handler := newTestHandler(db)

	emp := addEmployee(t, db, "M300", nil)
	matricule := emp.Matricule
	empUser := addUser(t, db, "awa@exemple.sn", models.RoleEmploye, &matricule)
	admin := addUser(t, db, "admin@exemple.sn", models.RoleAdmin, nil)

	rec := dbmodels.LeaveRequest{
		Matricule: emp.Matricule,
		DateDebut: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		DateFin:   time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
	}
	rec.ID = "req-3"

	t.Run("approbation en success des deux côtés", func(t *testing.T) {
		rec.Statut = models.StatusApprouvee
		handler.NotifyStatusChange(rec)

		empList := listNotifications(t, db, empUser.ID)
		require.Len(t, empList, 1)
		require.Equal(t, models.NotificationSuccess, empList[0].Type)
		require.Equal(t, "Votre demande de congé du 02/06/2025 au 06/06/2025 est passée au statut « Approuvée ».", empList[0].Message)

		adminList := listNotifications(t, db, admin.ID)
		require.Len(t, adminList, 1)
		require.Equal(t, models.NotificationSuccess, adminList[0].Type)
		require.Equal(t, "La demande de congé de Awa Diop (du 02/06/2025 au 06/06/2025) a été approuvée.", adminList[0].Message)
	})

	t.Run("rejet en error côté employé, warning côté admin", func(t *testing.T) {
		rec.Statut = models.StatusRejetee
		handler.NotifyStatusChange(rec)

		empList := listNotifications(t, db, empUser.ID)
		require.Len(t, empList, 2)
		require.Equal(t, models.NotificationError, empList[1].Type)

		adminList := listNotifications(t, db, admin.ID)
		require.Len(t, adminList, 2)
		require.Equal(t, models.NotificationWarning, adminList[1].Type)
		require.Contains(t, adminList[1].Message, "a été rejetée.")
	})
}

// Un employé sans compte applicatif ne bloque pas la diffusion aux admins.
func TestNotifyStatusChangeSansCompte(t *testing.T) {
	db := newTestDB(t)
	handler := newTestHandler(db)

	emp := addEmployee(t, db, "M350", nil)
	admin := addUser(t, db, "admin@exemple.sn", models.RoleAdmin, nil)

	rec := dbmodels.LeaveRequest{
		Matricule: emp.Matricule,
		Statut:    models.StatusApprouvee,
		DateDebut: time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC),
		DateFin:   time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC),
	}
	rec.ID = "req-5"
	handler.NotifyStatusChange(rec)

	adminList := listNotifications(t, db, admin.ID)
	require.Len(t, adminList, 1)
	require.Equal(t, models.NotificationSuccess, adminList[0].Type)
	require.Equal(t, "La demande de congé de Awa Diop (du 07/07/2025 au 11/07/2025) a été approuvée.", adminList[0].Message)

	// seule la notification admin a été créée
	var count int64
	require.Nil(t, db.Model(&dbmodels.Notification{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestNotifyNewEmployee(t *testing.T) {
	db := newTestDB(t)
	handler := newTestHandler(db)

	creator := addUser(t, db, "createur@exemple.sn", models.RoleAdmin, nil)
	otherAdmin := addUser(t, db, "admin@exemple.sn", models.RoleAdmin, nil)
	rh := addUser(t, db, "rh@exemple.sn", models.RoleRH, nil)
	addUser(t, db, "employe@exemple.sn", models.RoleEmploye, nil)

	emp := dbmodels.Employee{Matricule: "M400", Nom: "Ndiaye", Prenom: "Moussa"}
	handler.NotifyNewEmployee(emp, creator.ID)

	t.Run("première diffusion hors créateur", func(t *testing.T) {
		rhList := listNotifications(t, db, rh.ID)
		require.Len(t, rhList, 1)
		require.Equal(t, "Moussa Ndiaye a été ajouté au système.", rhList[0].Message)
		require.Equal(t, models.EntiteEmployes, rhList[0].EntiteLiee)
		require.Equal(t, "M400", rhList[0].EntiteID)
	})

	t.Run("seconde diffusion vers tous les admins avec l'auteur", func(t *testing.T) {
		creatorList := listNotifications(t, db, creator.ID)
		require.Len(t, creatorList, 1)
		require.Equal(t, "Moussa Ndiaye a été ajouté au système par Jean Testeur.", creatorList[0].Message)

		// un admin non créateur reçoit les deux variantes
		otherList := listNotifications(t, db, otherAdmin.ID)
		require.Len(t, otherList, 2)
		require.Equal(t, "Moussa Ndiaye a été ajouté au système.", otherList[0].Message)
		require.Equal(t, "Moussa Ndiaye a été ajouté au système par Jean Testeur.", otherList[1].Message)
	})

	t.Run("les employés simples ne reçoivent rien", func(t *testing.T) {
		var count int64
		require.Nil(t, db.Model(&dbmodels.Notification{}).Count(&count).Error)
		require.Equal(t, int64(4), count)
	})
}

func TestNotifyNewEmployeeSansCreateur(t *testing.T) {
	db := newTestDB(t)
	handler := newTestHandler(db)

	admin := addUser(t, db, "admin@exemple.sn", models.RoleAdmin, nil)
	emp := dbmodels.Employee{Matricule: "M500", Nom: "Sow", Prenom: "Fatou"}
	handler.NotifyNewEmployee(emp, "")

	list := listNotifications(t, db, admin.ID)
	require.Len(t, list, 2)
	require.Equal(t, "Fatou Sow a été ajouté au système par Système.", list[1].Message)
}

func TestMarkAsRead(t *testing.T) {
	db := newTestDB(t)
	handler := newTestHandler(db)

	user := addUser(t, db, "awa@exemple.sn", models.RoleEmploye, nil)
	other := addUser(t, db, "autre@exemple.sn", models.RoleEmploye, nil)
	require.Nil(t, handler.Creer(user.ID, "Titre", "Message", models.NotificationInfo, "", ""))

	list := listNotifications(t, db, user.ID)
	require.Len(t, list, 1)
	notifID := list[0].ID

	t.Run("marquage initial", func(t *testing.T) {
		count, err := handler.UnreadCount(user.ID)
		require.Nil(t, err)
		require.Equal(t, int64(1), count)

		require.Nil(t, handler.MarkAsRead(user.ID, notifID))
		rec := listNotifications(t, db, user.ID)[0]
		require.True(t, rec.EstLu)
		require.NotNil(t, rec.LuAt)

		count, err = handler.UnreadCount(user.ID)
		require.Nil(t, err)
		require.Equal(t, int64(0), count)
	})

	t.Run("second marquage sans effet", func(t *testing.T) {
		before := listNotifications(t, db, user.ID)[0]
		require.Nil(t, handler.MarkAsRead(user.ID, notifID))
		after := listNotifications(t, db, user.ID)[0]
		require.Equal(t, before.LuAt.UnixNano(), after.LuAt.UnixNano())
	})

	t.Run("pas de marquage des notifications d'autrui", func(t *testing.T) {
		require.NotNil(t, handler.MarkAsRead(other.ID, notifID))
	})

	t.Run("notification inconnue", func(t *testing.T) {
		require.NotNil(t, handler.MarkAsRead(user.ID, "inconnue"))
	})
}

func TestMarkAllAsRead(t *testing.T) {
	db := newTestDB(t)
	handler := newTestHandler(db)

	user := addUser(t, db, "awa@exemple.sn", models.RoleEmploye, nil)
	other := addUser(t, db, "autre@exemple.sn", models.RoleEmploye, nil)
	require.Nil(t, handler.Creer(user.ID, "T1", "M1", models.NotificationInfo, "", ""))
	require.Nil(t, handler.Creer(user.ID, "T2", "M2", models.NotificationInfo, "", ""))
	require.Nil(t, handler.Creer(other.ID, "T3", "M3", models.NotificationInfo, "", ""))

	require.Nil(t, handler.MarkAllAsRead(user.ID))

	count, err := handler.UnreadCount(user.ID)
	require.Nil(t, err)
	require.Equal(t, int64(0), count)

	count, err = handler.UnreadCount(other.ID)
	require.Nil(t, err)
	require.Equal(t, int64(1), count)
}
