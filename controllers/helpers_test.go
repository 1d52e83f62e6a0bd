package controllers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/danielbonkowsky/sharayunet/config"
	"github.com/danielbonkowsky/sharayunet/migrations"
	"github.com/danielbonkowsky/sharayunet/routes"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "opensesame"
	testSecretKey     = "test-secret"
)

// fakeMediaStore stands in for the R2 delegate and records every call.
type fakeMediaStore struct {
	mu         sync.Mutex
	uploads    int
	uploaded   []string
	destroyed  []string
	failAfter  int // fail uploads once this many succeeded; -1 never fails
	destroyErr error
}

func newFakeMediaStore() *fakeMediaStore {
	return &fakeMediaStore{failAfter: -1}
}

func (f *fakeMediaStore) Upload(ctx context.Context, data []byte, filename, contentType, mediaType string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAfter >= 0 && f.uploads >= f.failAfter {
		return "", "", fmt.Errorf("upload rejected")
	}
	f.uploads++
	publicID := fmt.Sprintf("id-%d_%s", f.uploads, filename)
	f.uploaded = append(f.uploaded, publicID)
	return fmt.Sprintf("https://media.test/uploads/%s/%s", mediaType, publicID), publicID, nil
}

func (f *fakeMediaStore) Destroy(ctx context.Context, publicID, mediaType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyed = append(f.destroyed, fmt.Sprintf("%s/%s", mediaType, publicID))
	return f.destroyErr
}

func testConfig(t *testing.T) *config.Config {
	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		DatabasePath:      ":memory:",
		AdminUsername:     testAdminUser,
		AdminPasswordHash: string(hash),
		SecretKey:         testSecretKey,
	}
}

func testDB(t *testing.T) *gorm.DB {
	// A named shared in-memory database keeps every pooled connection on
	// the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))
	return db
}

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB, *fakeMediaStore, *config.Config) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig(t)
	db := testDB(t)
	media := newFakeMediaStore()

	r := gin.New()
	routes.SetupRoutes(r, db, media, cfg)
	return r, db, media, cfg
}

func doRequest(r *gin.Engine, req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doRequest(r, req, cookies...)
}

// loginAsAdmin runs the real login flow and returns the session cookie.
func loginAsAdmin(t *testing.T, r *gin.Engine) *http.Cookie {
	form := url.Values{}
	form.Set("username", testAdminUser)
	form.Set("password", testAdminPassword)

	w := postForm(r, "/login", form)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/upload", w.Header().Get("Location"))

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "session" && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
