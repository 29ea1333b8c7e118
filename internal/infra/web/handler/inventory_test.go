package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DioGolang/StockFlow/internal/application/usecase/inventory"
	"github.com/DioGolang/StockFlow/pkg/result"
)

type stubCreateInventory struct {
	out result.Result[inventory.Output]
	err error
}

func (s stubCreateInventory) Execute(context.Context, inventory.CreateInput) (result.Result[inventory.Output], error) {
	return s.out, s.err
}

type stubGetInventory struct {
	out result.Result[inventory.Output]
	err error
}

func (s stubGetInventory) Execute(context.Context, inventory.GetInput) (result.Result[inventory.Output], error) {
	return s.out, s.err
}

type stubDeleteInventory struct {
	out result.Result[result.Unit]
	err error
}

func (s stubDeleteInventory) Execute(context.Context, inventory.DeleteInput) (result.Result[result.Unit], error) {
	return s.out, s.err
}

func newInventoryRouter(h *Inventory) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/inventory", h.Create)
	r.Get("/inventory/{id}", h.Get)
	r.Delete("/inventory/{id}", h.Delete)
	return r
}

func TestInventoryCreate_Created(t *testing.T) {
	h := &Inventory{CreateUseCase: stubCreateInventory{
		out: result.Ok(inventory.Output{ProductID: 1, ProductName: "Keyboard", Stock: 10, UnitPrice: 5.0}),
	}}
	req := httptest.NewRequest(http.MethodPost, "/inventory", strings.NewReader(
		`{"product_name":"Keyboard","stock":10,"unit_price":5.0}`))
	rec := httptest.NewRecorder()

	newInventoryRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"product_id":1`)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestInventoryCreate_MalformedBodyIsBadRequest(t *testing.T) {
	h := &Inventory{CreateUseCase: stubCreateInventory{}}
	req := httptest.NewRequest(http.MethodPost, "/inventory", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	newInventoryRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInventoryCreate_BoundaryValidationFields(t *testing.T) {
	h := &Inventory{CreateUseCase: stubCreateInventory{}}
	req := httptest.NewRequest(http.MethodPost, "/inventory", strings.NewReader(
		`{"product_name":"","stock":-1,"unit_price":0}`))
	rec := httptest.NewRecorder()

	newInventoryRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fields"`)
}

func TestInventoryCreate_DomainFailureMapsFields(t *testing.T) {
	h := &Inventory{CreateUseCase: stubCreateInventory{
		out: result.Err[inventory.Output](result.Validation(map[string][]string{
			"stock": {"must not be negative"},
		})),
	}}
	req := httptest.NewRequest(http.MethodPost, "/inventory", strings.NewReader(
		`{"product_name":"Keyboard","stock":10,"unit_price":5.0}`))
	rec := httptest.NewRecorder()

	newInventoryRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "must not be negative")
}

func TestInventoryGet_NotFound(t *testing.T) {
	h := &Inventory{GetUseCase: stubGetInventory{
		out: result.Err[inventory.Output](result.NotFoundf("product %d not found", 9)),
	}}
	req := httptest.NewRequest(http.MethodGet, "/inventory/9", nil)
	rec := httptest.NewRecorder()

	newInventoryRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInventoryGet_NonNumericIDIsBadRequest(t *testing.T) {
	h := &Inventory{GetUseCase: stubGetInventory{}}
	req := httptest.NewRequest(http.MethodGet, "/inventory/abc", nil)
	rec := httptest.NewRecorder()

	newInventoryRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInventoryGet_InfraErrorIsOpaque500(t *testing.T) {
	h := &Inventory{GetUseCase: stubGetInventory{err: errors.New("pq: connection refused")}}
	req := httptest.NewRequest(http.MethodGet, "/inventory/1", nil)
	rec := httptest.NewRecorder()

	newInventoryRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestInventoryDelete_NoContent(t *testing.T) {
	h := &Inventory{DeleteUseCase: stubDeleteInventory{out: result.Empty()}}
	req := httptest.NewRequest(http.MethodDelete, "/inventory/4", nil)
	rec := httptest.NewRecorder()

	newInventoryRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
