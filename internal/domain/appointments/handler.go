package appointments

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/api"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/appointment", func(ar chi.Router) {
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Post("/", createAppointmentHandler(svc))
		ar.Get("/{appointmentID}", getAppointmentHandler(svc))
		ar.Put("/{appointmentID}", updateAppointmentHandler(svc))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(svc))
	})
}

type createAppointmentRequest struct {
	PetID           string `json:"petId"`
	ServiceID       string `json:"serviceId"`
	VeterinarianID  string `json:"veterinarianId"`
	AppointmentDate string `json:"appointmentDate"`
	Notes           string `json:"notes"`
}

type updateAppointmentRequest struct {
	PetID           *string `json:"petId"`
	ServiceID       *string `json:"serviceId"`
	VeterinarianID  *string `json:"veterinarianId"`
	AppointmentDate *string `json:"appointmentDate"`
	Notes           *string `json:"notes"`
}

// appointmentResponse incluye los campos de display derivados por join.
type appointmentResponse struct {
	ID               string    `json:"id"`
	PetID            string    `json:"petId"`
	ServiceID        string    `json:"serviceId"`
	VeterinarianID   string    `json:"veterinarianId"`
	AppointmentDate  time.Time `json:"appointmentDate"`
	Notes            string    `json:"notes,omitempty"`
	PetName          string    `json:"petName,omitempty"`
	ServiceName      string    `json:"serviceName,omitempty"`
	VeterinarianName string    `json:"veterinarianName,omitempty"`
	ServicePrice     float64   `json:"servicePrice,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, total, err := svc.List(r.Context())
		if err != nil {
			api.Error(w, err)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toAppointmentResponse(d))
		}
		api.List(w, "appointments listed successfully", out, total)
	}
}

func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "appointmentID")
		if id == "" {
			api.Fail(w, http.StatusBadRequest, "appointment id is required")
			return
		}

		d, err := svc.GetByID(r.Context(), id)
		if err != nil {
			api.Error(w, err)
			return
		}
		api.OK(w, "appointment found successfully", toAppointmentResponse(d))
	}
}

func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		d, err := svc.Create(r.Context(), CreateInput{
			PetID:           req.PetID,
			ServiceID:       req.ServiceID,
			VeterinarianID:  req.VeterinarianID,
			AppointmentDate: req.AppointmentDate,
			Notes:           req.Notes,
		})
		if err != nil {
			api.Error(w, err)
			return
		}
		api.Created(w, "appointment created successfully", toAppointmentResponse(d))
	}
}

func updateAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "appointmentID")
		if id == "" {
			api.Fail(w, http.StatusBadRequest, "appointment id is required")
			return
		}

		var req updateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		d, err := svc.Update(r.Context(), id, UpdateInput{
			PetID:           req.PetID,
			ServiceID:       req.ServiceID,
			VeterinarianID:  req.VeterinarianID,
			AppointmentDate: req.AppointmentDate,
			Notes:           req.Notes,
		})
		if err != nil {
			api.Error(w, err)
			return
		}
		api.OK(w, "appointment updated successfully", toAppointmentResponse(d))
	}
}

func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "appointmentID")
		if id == "" {
			api.Fail(w, http.StatusBadRequest, "appointment id is required")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			api.Error(w, err)
			return
		}
		api.OK(w, "appointment deleted successfully", map[string]any{
			"id":        id,
			"deletedAt": time.Now().UTC(),
		})
	}
}

func toAppointmentResponse(d Details) appointmentResponse {
	return appointmentResponse{
		ID:               d.ID,
		PetID:            d.PetID,
		ServiceID:        d.ServiceID,
		VeterinarianID:   d.VeterinarianID,
		AppointmentDate:  d.AppointmentDate,
		Notes:            d.Notes,
		PetName:          d.PetName,
		ServiceName:      d.ServiceName,
		VeterinarianName: d.VeterinarianName,
		ServicePrice:     d.ServicePrice,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}
