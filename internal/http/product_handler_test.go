package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/product"
)

type fakeProductRepo struct {
	listFunc      func(ctx context.Context, category string) ([]product.Product, error)
	getFunc       func(ctx context.Context, id string) (*product.Product, error)
	createFunc    func(ctx context.Context, p *product.Product) error
	updateFunc    func(ctx context.Context, id string, upd product.UpdateRequest) (*product.Product, error)
	deleteFunc    func(ctx context.Context, id string) error
	decrementFunc func(ctx context.Context, id string, qty int) error
}

func (f *fakeProductRepo) List(ctx context.Context, category string) ([]product.Product, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, category)
	}
	return nil, nil
}

func (f *fakeProductRepo) Get(ctx context.Context, id string) (*product.Product, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, id)
	}
	return nil, product.ErrNotFound
}

func (f *fakeProductRepo) Create(ctx context.Context, p *product.Product) error {
	if f.createFunc != nil {
		return f.createFunc(ctx, p)
	}
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, id string, upd product.UpdateRequest) (*product.Product, error) {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, id, upd)
	}
	return nil, product.ErrNotFound
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, id)
	}
	return product.ErrNotFound
}

func (f *fakeProductRepo) DecrementStock(ctx context.Context, id string, qty int) error {
	if f.decrementFunc != nil {
		return f.decrementFunc(ctx, id, qty)
	}
	return nil
}

func TestListProducts_Success(t *testing.T) {
	repo := &fakeProductRepo{
		listFunc: func(ctx context.Context, category string) ([]product.Product, error) {
			return []product.Product{{ID: "ab12cd34", Name: "Pen", Price: 1.5, Category: "Office", Stock: 10}}, nil
		},
	}
	router := newTestRouter(repo, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/mobile/products", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []product.Product
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Pen", resp[0].Name)
}

func TestListProducts_CategoryFilterPassedThrough(t *testing.T) {
	var gotCategory string
	repo := &fakeProductRepo{
		listFunc: func(ctx context.Context, category string) ([]product.Product, error) {
			gotCategory = category
			return []product.Product{{ID: "1a2b3c4d", Name: "Desk", Category: "Office"}}, nil
		},
	}
	router := newTestRouter(repo, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/mobile/products?category=Office", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Office", gotCategory)
}

func TestListProducts_FallbackOnStoreError(t *testing.T) {
	repo := &fakeProductRepo{
		listFunc: func(ctx context.Context, category string) ([]product.Product, error) {
			return nil, errors.New("server selection timeout")
		},
	}
	router := newTestRouter(repo, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/mobile/products", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []product.Product
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 3)
	assert.Equal(t, "Laptop Pro", resp[0].Name)
}

func TestListProducts_FallbackOnEmptyStore(t *testing.T) {
	repo := &fakeProductRepo{
		listFunc: func(ctx context.Context, category string) ([]product.Product, error) {
			return []product.Product{}, nil
		},
	}
	router := newTestRouter(repo, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/mobile/products", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []product.Product
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 3)
}

func TestGetProduct_Success(t *testing.T) {
	repo := &fakeProductRepo{
		getFunc: func(ctx context.Context, id string) (*product.Product, error) {
			return &product.Product{ID: id, Name: "Pen", Price: 1.5}, nil
		},
	}
	router := newTestRouter(repo, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/mobile/products/ab12cd34", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp product.Product
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "ab12cd34", resp.ID)
}

func TestGetProduct_FallbackIDWhileStoreDown(t *testing.T) {
	repo := &fakeProductRepo{
		getFunc: func(ctx context.Context, id string) (*product.Product, error) {
			return nil, errors.New("server selection timeout")
		},
	}
	router := newTestRouter(repo, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/mobile/products/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp product.Product
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Laptop Pro", resp.Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	router := newTestRouter(&fakeProductRepo{}, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/mobile/products/nope", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateProduct_AssignsDefaults(t *testing.T) {
	var stored *product.Product
	repo := &fakeProductRepo{
		createFunc: func(ctx context.Context, p *product.Product) error {
			stored = p
			return nil
		},
	}
	router := newTestRouter(repo, nil, nil, nil)

	body := `{"name":"Pen","price":1.5,"category":"Office","stock":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/mobile/products", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, stored)

	assert.Len(t, stored.ID, 8)
	assert.Equal(t, 10, stored.Stock)
	assert.Equal(t, float64(0), stored.Rating)
	assert.Equal(t, 0, stored.Reviews)
	assert.Equal(t, "Generic", stored.Brand)
	assert.False(t, stored.CreatedAt.IsZero())

	var resp product.Product
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, stored.ID, resp.ID)
}

func TestCreateProduct_RejectsBadPayload(t *testing.T) {
	router := newTestRouter(&fakeProductRepo{}, nil, nil, nil)

	cases := map[string]string{
		"zero price":     `{"name":"Pen","price":0,"category":"Office","stock":10}`,
		"negative stock": `{"name":"Pen","price":1.5,"category":"Office","stock":-1}`,
		"missing name":   `{"price":1.5,"category":"Office"}`,
		"not json":       `{{{`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/mobile/products", strings.NewReader(body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestCreateProduct_StoreDown(t *testing.T) {
	repo := &fakeProductRepo{
		createFunc: func(ctx context.Context, p *product.Product) error {
			return errors.New("server selection timeout")
		},
	}
	router := newTestRouter(repo, nil, nil, nil)

	body := `{"name":"Pen","price":1.5,"category":"Office","stock":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/mobile/products", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.NotContains(t, rr.Body.String(), "selection timeout")
}

func TestUpdateProduct_Success(t *testing.T) {
	var gotUpd product.UpdateRequest
	repo := &fakeProductRepo{
		updateFunc: func(ctx context.Context, id string, upd product.UpdateRequest) (*product.Product, error) {
			gotUpd = upd
			return &product.Product{ID: id, Name: "Pen", Price: 2.0, UpdatedAt: time.Now().UTC()}, nil
		},
	}
	router := newTestRouter(repo, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/mobile/products/ab12cd34", strings.NewReader(`{"price":2.0}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, gotUpd.Price)
	assert.Equal(t, 2.0, *gotUpd.Price)
	assert.Nil(t, gotUpd.Name)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	router := newTestRouter(&fakeProductRepo{}, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/mobile/products/nope", strings.NewReader(`{"price":2.0}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateProduct_RejectsBadFields(t *testing.T) {
	called := false
	repo := &fakeProductRepo{
		updateFunc: func(ctx context.Context, id string, upd product.UpdateRequest) (*product.Product, error) {
			called = true
			return nil, nil
		},
	}
	router := newTestRouter(repo, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/mobile/products/ab12cd34", strings.NewReader(`{"price":-5}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, called)
}

func TestDeleteProduct_Success(t *testing.T) {
	repo := &fakeProductRepo{
		deleteFunc: func(ctx context.Context, id string) error { return nil },
	}
	router := newTestRouter(repo, nil, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/mobile/products/ab12cd34", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Product deleted successfully", resp["message"])
}

func TestDeleteProduct_NotFound(t *testing.T) {
	router := newTestRouter(&fakeProductRepo{}, nil, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/mobile/products/nope", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}
