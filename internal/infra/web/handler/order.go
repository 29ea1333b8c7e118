package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DioGolang/StockFlow/internal/application/usecase/order"
)

type Order struct {
	CreateUseCase order.CreateUseCase
	GetUseCase    order.GetUseCase
}

func NewOrderHandler(create order.CreateUseCase, get order.GetUseCase) *Order {
	return &Order{
		CreateUseCase: create,
		GetUseCase:    get,
	}
}

type orderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int64 `json:"quantity" validate:"required"`
}

type createOrderRequest struct {
	CustomerID int64              `json:"customer_id" validate:"required"`
	Items      []orderItemRequest `json:"items" validate:"dive"`
}

func (h *Order) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if e := validateRequest(req); e != nil {
		writeFailure(w, e)
		return
	}

	input := order.CreateInput{CustomerID: req.CustomerID}
	for _, item := range req.Items {
		input.Items = append(input.Items, order.CreateItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	out, err := h.CreateUseCase.Execute(r.Context(), input)
	WriteResult(w, http.StatusCreated, out, err)
}

func (h *Order) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := h.GetUseCase.Execute(r.Context(), order.GetInput{OrderID: id})
	WriteResult(w, http.StatusOK, out, err)
}
