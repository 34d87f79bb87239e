// Package api define el envelope JSON común a todos los módulos:
// { success, message, data?, total? }. Antes estaba duplicado por handler;
// con cuatro módulos ya convenía extraerlo.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/fault"
)

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Total   *int   `json:"total,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func OK(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Created(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// List incluye total proveniente de un COUNT dedicado (no len(data)).
func List(w http.ResponseWriter, message string, data any, total int) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data, Total: &total})
}

func Fail(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Envelope{Success: false, Message: message})
}

// Error mapea la taxonomía de fault a status HTTP. Cualquier error fuera
// de la taxonomía es infraestructura: 500 con mensaje genérico, el detalle
// queda solo en logs.
func Error(w http.ResponseWriter, err error) {
	var (
		missing  fault.MissingFieldError
		invalid  fault.InvalidValueError
		notFound fault.NotFoundError
		conflict fault.ConflictError
	)
	switch {
	case errors.As(err, &missing):
		Fail(w, http.StatusBadRequest, missing.Error())
	case errors.As(err, &invalid):
		Fail(w, http.StatusBadRequest, invalid.Error())
	case errors.As(err, &notFound):
		Fail(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &conflict):
		Fail(w, http.StatusConflict, conflict.Error())
	default:
		Fail(w, http.StatusInternalServerError, "internal server error")
	}
}
