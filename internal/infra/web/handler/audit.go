package handler

import (
	"net/http"
	"strconv"

	"github.com/DioGolang/StockFlow/internal/application/usecase/audit"
)

type Audit struct {
	ListUseCase audit.ListUseCase
}

func NewAuditHandler(list audit.ListUseCase) *Audit {
	return &Audit{ListUseCase: list}
}

func (h *Audit) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		// non-numeric limits fall back to the usecase default
		limit, _ = strconv.Atoi(raw)
	}
	out, err := h.ListUseCase.Execute(r.Context(), audit.ListInput{Limit: limit})
	WriteResult(w, http.StatusOK, out, err)
}
