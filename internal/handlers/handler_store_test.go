package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/mero_khata/internal/adapters/cache"
	"github.com/SscSPs/mero_khata/internal/adapters/flatfile"
	"github.com/SscSPs/mero_khata/internal/adapters/remote"
	"github.com/SscSPs/mero_khata/internal/core/domain"
	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/SscSPs/mero_khata/internal/core/services"
	"github.com/SscSPs/mero_khata/internal/handlers"
	"github.com/SscSPs/mero_khata/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	path := filepath.Join(t.TempDir(), "data.json")

	r := gin.New()
	handlers.RegisterStoreRoutes(r, services.NewStoreContainer(flatfile.NewDocumentFile(path)))
	return r, path
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStoreRoutes_GetSeedsDefault(t *testing.T) {
	r, _ := newStoreRouter(t)

	w := serve(r, http.MethodGet, "/api/document", "")

	require.Equal(t, http.StatusOK, w.Code)
	doc, err := domain.DecodeDocument(w.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultShopName, doc.ShopName)
	assert.Empty(t, doc.Customers)
}

func TestStoreRoutes_PostRejectsFalsyData(t *testing.T) {
	r, _ := newStoreRouter(t)

	for _, body := range []string{`{}`, `null`, `"0"`, `not json`, ``} {
		w := serve(r, http.MethodPost, "/api/document", body)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.JSONEq(t, `{"status":"error","message":"Invalid Data"}`, w.Body.String())
	}
}

func TestStoreRoutes_PostThenGet(t *testing.T) {
	r, _ := newStoreRouter(t)

	w := serve(r, http.MethodPost, "/api/document", `{"shopName":"Hari Store","customers":[],"expenses":[],"version":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/api/document", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "    \"shopName\": \"Hari Store\"")
}

// A backend wired to a live store process pushes each save and reloads it on sync.
func TestBackendRoundTripThroughStore(t *testing.T) {
	storeRouter, _ := newStoreRouter(t)
	store := httptest.NewServer(storeRouter)
	defer store.Close()

	container := services.NewBackendContainer(
		remote.NewHTTPDocumentStore(store.URL+"/api/document", 2*time.Second),
		cache.NewFileCache(t.TempDir()),
		services.BackendSettings{Location: time.UTC, NoticeCapacity: 10},
	)
	_, source := container.Gateway.Load(context.Background())
	require.Equal(t, portssvc.SourceRemote, source)

	backend := gin.New()
	handlers.RegisterBackendRoutes(backend, &config.Config{IsProduction: true}, container)

	w := serve(backend, http.MethodPost, "/api/v1/customers", `{"name":"Sita","phone":"9812345678"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	require.Eventually(t, func() bool {
		w := serve(storeRouter, http.MethodGet, "/api/document", "")
		doc, err := domain.DecodeDocument(w.Body.Bytes())
		return err == nil && len(doc.Customers) == 1 && doc.Customers[0].Name == "Sita"
	}, 2*time.Second, 20*time.Millisecond)

	w = serve(backend, http.MethodPost, "/api/v1/sync", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "remote", resp["source"])
	assert.Equal(t, true, resp["remoteSynced"])
}
