package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DioGolang/StockFlow/internal/application/usecase/inventory"
	"github.com/DioGolang/StockFlow/pkg/result"
)

type Inventory struct {
	CreateUseCase inventory.CreateUseCase
	UpdateUseCase inventory.UpdateUseCase
	DeleteUseCase inventory.DeleteUseCase
	GetUseCase    inventory.GetUseCase
	ListUseCase   inventory.ListUseCase
}

func NewInventoryHandler(
	create inventory.CreateUseCase,
	update inventory.UpdateUseCase,
	del inventory.DeleteUseCase,
	get inventory.GetUseCase,
	list inventory.ListUseCase,
) *Inventory {
	return &Inventory{
		CreateUseCase: create,
		UpdateUseCase: update,
		DeleteUseCase: del,
		GetUseCase:    get,
		ListUseCase:   list,
	}
}

type createInventoryRequest struct {
	ProductName string  `json:"product_name" validate:"required"`
	Stock       int64   `json:"stock" validate:"gte=0"`
	UnitPrice   float64 `json:"unit_price" validate:"required"`
}

func (h *Inventory) Create(w http.ResponseWriter, r *http.Request) {
	var req createInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if e := validateRequest(req); e != nil {
		writeFailure(w, e)
		return
	}

	out, err := h.CreateUseCase.Execute(r.Context(), inventory.CreateInput{
		ProductName: req.ProductName,
		Stock:       req.Stock,
		UnitPrice:   req.UnitPrice,
	})
	WriteResult(w, http.StatusCreated, out, err)
}

type updateInventoryRequest struct {
	ProductName string  `json:"product_name" validate:"required"`
	Stock       int64   `json:"stock" validate:"gte=0"`
	UnitPrice   float64 `json:"unit_price" validate:"required"`
}

func (h *Inventory) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if e := validateRequest(req); e != nil {
		writeFailure(w, e)
		return
	}

	out, err := h.UpdateUseCase.Execute(r.Context(), inventory.UpdateInput{
		ProductID:   id,
		ProductName: req.ProductName,
		Stock:       req.Stock,
		UnitPrice:   req.UnitPrice,
	})
	WriteResult(w, http.StatusOK, out, err)
}

func (h *Inventory) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := h.DeleteUseCase.Execute(r.Context(), inventory.DeleteInput{ProductID: id})
	WriteResult(w, http.StatusNoContent, out, err)
}

func (h *Inventory) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := h.GetUseCase.Execute(r.Context(), inventory.GetInput{ProductID: id})
	WriteResult(w, http.StatusOK, out, err)
}

func (h *Inventory) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.ListUseCase.Execute(r.Context())
	WriteResult(w, http.StatusOK, out, err)
}

// pathID parses a positive integer URL parameter, rendering the
// failure itself when the segment is not a number.
func pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeFailure(w, result.FieldError(param, "InvalidId", "must be an integer"))
		return 0, false
	}
	return id, true
}
