package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"estate_market/internal/domain"
	"estate_market/internal/middleware"
	"estate_market/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// stubSender records outbound emails instead of delivering them
type stubSender struct {
	mu   sync.Mutex
	sent []sentEmail
}

type sentEmail struct {
	To      string
	Subject string
	Message string
}

func (s *stubSender) Send(to, subject, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentEmail{To: to, Subject: subject, Message: message})
	return nil
}

func (s *stubSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func (s *stubSender) emails() []sentEmail {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sentEmail, len(s.sent))
	copy(out, s.sent)
	return out
}

// newTestRouter builds the full route surface over an in-memory sqlite store.
// The redis client points at a closed port; the cache helpers degrade to
// plain database reads, which is the production failure mode as well.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *stubSender) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	// A named shared in-memory database keeps gorm's connection pool on the
	// same store for the duration of one test
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Property{}, &domain.Order{}, &domain.Review{}))

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	sender := &stubSender{}
	r := gin.New()
	SetupRoutes(r, db, rdb, sender, testSecret, false)
	return r, db, sender
}

// sessionCookie mints a valid session cookie for the given email
func sessionCookie(t *testing.T, email string) *http.Cookie {
	t.Helper()
	tok, err := utils.GenerateJWT(email, testSecret)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.CookieName, Value: tok}
}

// doRequest performs a JSON request against the router
func doRequest(r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// seedUser inserts a user row directly
func seedUser(t *testing.T, db *gorm.DB, email, role string) domain.User {
	t.Helper()
	user := domain.User{Email: email, Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// seedProperty inserts a property row directly
func seedProperty(t *testing.T, db *gorm.DB, title, agentEmail string) domain.Property {
	t.Helper()
	property := domain.Property{
		Title:    title,
		Image:    "https://img.example/" + title + ".jpg",
		Location: "Dhaka",
		Price:    150000,
		Quantity: 3,
		Agent:    domain.AgentInfo{Name: "Agent", Email: agentEmail},
	}
	require.NoError(t, db.Create(&property).Error)
	return property
}
