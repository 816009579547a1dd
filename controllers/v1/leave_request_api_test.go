package apiv1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"conges-backend/config"
	"conges-backend/db"
	xlsexport "conges-backend/lib/export/xls"
	filestoragehandler "conges-backend/lib/file-storage"
	leaverequesthandler "conges-backend/lib/leave-request"
	authutils "conges-backend/lib/utils/auth-utils"
	"conges-backend/models"
	leaveapimodels "conges-backend/models/api/leave"
	dbmodels "conges-backend/models/db"
	s3client "conges-backend/s3"
)

// fakeObjectStore tient les objets en mémoire à la place du bucket.
type fakeObjectStore struct {
	objects map[string][]byte
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string][]byte{}}
}

func (f *fakeObjectStore) MakeBucket(ctx context.Context) error { return nil }

func (f *fakeObjectStore) PutObject(ctx context.Context, key string, data []byte, contentType string) error {
	f.objects[key] = data
	return nil
}

func (f *fakeObjectStore) GetObject(ctx context.Context, key string) ([]byte, error) {
	return f.objects[key], nil
}

func (f *fakeObjectStore) RemoveObject(ctx context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	if config.Conf == nil {
		conf := new(config.Configuration)
		conf.Auth.JWTSecret = "secret-de-test"
		conf.Auth.JWTExpireInSec = 3600
		conf.Auth.JWTRefreshExpireInSec = 86400
		config.Conf = conf
	}
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.Nil(t, err)
	require.Nil(t, gormDB.AutoMigrate(
		&dbmodels.OrgUnit{},
		&dbmodels.Employee{},
		&dbmodels.User{},
		&dbmodels.LeaveType{},
		&dbmodels.LeaveRequest{},
		&dbmodels.Holiday{},
		&dbmodels.Notification{},
		&dbmodels.Document{},
	))
	db.DB = gormDB

	s3client.Instance = newFakeObjectStore()
	leaverequesthandler.NewHandler()
	filestoragehandler.NewHandler()
	xlsexport.NewHandler()

	app := fiber.New()
	InitLeaveRequestApiRouters(app)
	InitExportApiRouters(app)
	return app, gormDB
}

func seedLeaveFixtures(t *testing.T, gormDB *gorm.DB) (leaveTypeID string) {
	emp := dbmodels.Employee{Matricule: "M101", Nom: "Diop", Prenom: "Awa"}
	require.Nil(t, gormDB.Create(&emp).Error)
	autre := dbmodels.Employee{Matricule: "M102", Nom: "Ba", Prenom: "Omar"}
	require.Nil(t, gormDB.Create(&autre).Error)

	leaveType := dbmodels.LeaveType{Nom: "Congé annuel", JoursAutorises: 30}
	require.Nil(t, gormDB.Create(&leaveType).Error)
	return leaveType.ID
}

func bearer(t *testing.T, userID string, role models.UserRole, matricule string) string {
	token, err := authutils.GetToken(userID, "Testeur", role, matricule)
	require.Nil(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, app *fiber.App, method, path, auth string, body io.Reader, contentType string) *http.Response {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(fiber.HeaderAuthorization, auth)
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	resp, err := app.Test(req, -1)
	require.Nil(t, err)
	return resp
}

func uploadFile(t *testing.T, app *fiber.App, path, auth string) string {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile("file", "certificat.pdf")
	require.Nil(t, err)
	_, err = part.Write([]byte("contenu du justificatif"))
	require.Nil(t, err)
	require.Nil(t, writer.Close())

	resp := doRequest(t, app, "POST", path, auth, buf, writer.FormDataContentType())
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	payload := struct {
		Data string `json:"data"`
	}{}
	require.Nil(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.NotEmpty(t, payload.Data)
	return payload.Data
}

// Un employé simple ne voit que ses propres demandes, attestations et
// justificatifs; ceux d'autrui sont introuvables.
func TestLeaveRequestEmployeScope(t *testing.T) {
	app, gormDB := newTestApp(t)
	leaveTypeID := seedLeaveFixtures(t, gormDB)

	view, err := leaverequesthandler.Instance.Create("user-1", "M101", leaveapimodels.LeaveRequestCreateData{
		LeaveTypeID: leaveTypeID,
		DateDebut:   "2025-06-02",
		DateFin:     "2025-06-06",
		Motif:       "vacances",
	})
	require.Nil(t, err)
	require.Nil(t, leaverequesthandler.Instance.Approve("user-rh", "", models.RoleRH, view.ID))

	owner := bearer(t, "user-1", models.RoleEmploye, "M101")
	other := bearer(t, "user-2", models.RoleEmploye, "M102")
	rh := bearer(t, "user-rh", models.RoleRH, "")

	docID := uploadFile(t, app, "/conges/"+view.ID+"/documents", owner)

	t.Run("la demande d'autrui est introuvable", func(t *testing.T) {
		resp := doRequest(t, app, "GET", "/conges/"+view.ID, other, nil, "")
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("l'attestation d'autrui est introuvable", func(t *testing.T) {
		resp := doRequest(t, app, "GET", "/conges/"+view.ID+"/attestation", other, nil, "")
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("les justificatifs d'autrui sont introuvables", func(t *testing.T) {
		resp := doRequest(t, app, "GET", "/conges/"+view.ID+"/documents", other, nil, "")
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		resp = doRequest(t, app, "GET", "/conges/documents/"+docID, other, nil, "")
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("le dépôt sur la demande d'autrui est refusé", func(t *testing.T) {
		resp := doRequest(t, app, "POST", "/conges/"+view.ID+"/documents", other, nil, "")
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("le dépôt sur une demande inconnue est refusé", func(t *testing.T) {
		resp := doRequest(t, app, "POST", "/conges/inconnue/documents", owner, nil, "")
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("le demandeur accède à sa demande et ses pièces", func(t *testing.T) {
		resp := doRequest(t, app, "GET", "/conges/"+view.ID, owner, nil, "")
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp = doRequest(t, app, "GET", "/conges/"+view.ID+"/attestation", owner, nil, "")
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))

		resp = doRequest(t, app, "GET", "/conges/documents/"+docID, owner, nil, "")
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.Nil(t, err)
		require.Equal(t, "contenu du justificatif", string(body))
	})

	t.Run("les rh ne sont pas restreints", func(t *testing.T) {
		resp := doRequest(t, app, "GET", "/conges/"+view.ID+"/attestation", rh, nil, "")
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp = doRequest(t, app, "GET", "/conges/documents/"+docID, rh, nil, "")
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
