package connectionhub

import (
	"fmt"
	"sync"
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	notificationstore "conges-backend/lib/notification/store"
	dbmodels "conges-backend/models/db"
	wsmodels "conges-backend/models/ws"
)

func newTestHub(t *testing.T) *impl {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.Nil(t, err)
	require.Nil(t, db.AutoMigrate(&dbmodels.User{}, &dbmodels.Notification{}))
	return &impl{
		clients: map[string]clientSession{},
		store:   notificationstore.NewInstance(db),
	}
}

func TestHubAddDelete(t *testing.T) {
	hub := newTestHub(t)

	hub.AddClient("user-1", &websocket.Conn{})
	_, ok := hub.clients["user-1"]
	require.True(t, ok)

	// le remplacement d'une session arrête l'ancienne
	hub.AddClient("user-1", &websocket.Conn{})
	require.Len(t, hub.clients, 1)

	hub.DeleteClient("user-1")
	require.Empty(t, hub.clients)
	require.False(t, hub.IsConnected("user-1"))

	// retrait d'un utilisateur inconnu sans effet
	hub.DeleteClient("user-2")
}

// La table des sessions est touchée à la fois par les goroutines ws
// (connexion, déconnexion) et par les requêtes http qui poussent des
// notifications.
func TestHubConcurrentAccess(t *testing.T) {
	hub := newTestHub(t)

	wg := sync.WaitGroup{}
	for n := 0; n < 50; n++ {
		userID := fmt.Sprintf("user-%d", n%5)
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.AddClient(userID, &websocket.Conn{})
		}()
		go func() {
			defer wg.Done()
			hub.SendMessage(wsmodels.ServerMessage{ToUserID: userID, Message: "ping"})
			hub.IsConnected(userID)
		}()
	}
	wg.Wait()

	for n := 0; n < 5; n++ {
		hub.DeleteClient(fmt.Sprintf("user-%d", n))
	}
	require.Empty(t, hub.clients)
}
