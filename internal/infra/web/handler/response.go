package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/DioGolang/StockFlow/pkg/result"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type errorBody struct {
	Error  string              `json:"error"`
	Code   string              `json:"code,omitempty"`
	Fields map[string][]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// statusFor maps failure kinds onto HTTP status codes; unrecognized
// kinds fall through to 500.
func statusFor(e *result.Error) int {
	switch e.Kind {
	case result.KindNotFound:
		return http.StatusNotFound
	case result.KindValidation, result.KindBusinessRule:
		return http.StatusBadRequest
	case result.KindConflict:
		return http.StatusConflict
	case result.KindUnauthorized:
		return http.StatusUnauthorized
	case result.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func writeFailure(w http.ResponseWriter, e *result.Error) {
	writeJSON(w, statusFor(e), errorBody{
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

// writeInternal hides infrastructure error detail from clients; the
// cause is logged where it happened.
func writeInternal(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}

// WriteResult renders a usecase outcome: payload with okStatus on
// success, mapped error body on failure.
func WriteResult[T any](w http.ResponseWriter, okStatus int, res result.Result[T], err error) {
	if err != nil {
		writeInternal(w)
		return
	}
	if res.IsFailure() {
		writeFailure(w, res.Err())
		return
	}
	if okStatus == http.StatusNoContent {
		w.WriteHeader(okStatus)
		return
	}
	writeJSON(w, okStatus, res.Value())
}

// validateRequest runs the boundary validation and converts the
// framework's errors into the shared field->messages shape.
func validateRequest(v any) *result.Error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return result.Failure("request validation failed")
	}
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], "failed on "+fe.Tag())
	}
	return result.Validation(fields)
}
