package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/auth"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/product"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error { return f.err }

func TestHealth_Connected(t *testing.T) {
	router := newTestRouter(nil, nil, nil, &fakePinger{})

	for _, path := range []string{"/health", "/api/mobile/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, path)

		var resp map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "healthy", resp["status"])
		assert.Equal(t, "connected", resp["database"])
		assert.NotEmpty(t, resp["timestamp"])
	}
}

func TestHealth_Degraded(t *testing.T) {
	router := newTestRouter(nil, nil, nil, &fakePinger{err: errors.New("no reachable servers")})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "degraded", resp["database"])
}

func TestVersion(t *testing.T) {
	router := newTestRouter(nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/mobile/version", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "mobile-api", resp["service"])
	assert.Equal(t, "2.0.0", resp["version"])
}

func TestFeatured(t *testing.T) {
	router := newTestRouter(nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/mobile/featured", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []product.Product
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 3)
}

func TestLogin_FabricatesSession(t *testing.T) {
	router := newTestRouter(nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/mobile/auth/login",
		jsonBody(`{"email":"ada@example.com","password":"whatever"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp auth.Session
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "Ada", resp.User.Name)
	assert.NotEmpty(t, resp.User.ID)

	// token must parse with the router's secret
	svc := auth.NewService("test-secret")
	userID, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
}

func TestLogin_RejectsMissingFields(t *testing.T) {
	router := newTestRouter(nil, nil, nil, nil)

	cases := map[string]string{
		"missing email":    `{"password":"x"}`,
		"missing password": `{"email":"a@b.c"}`,
		"not json":         `{{{`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/mobile/auth/login", jsonBody(body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}
