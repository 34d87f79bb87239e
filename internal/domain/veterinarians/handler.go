package veterinarians

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/api"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/veterinarian", func(vr chi.Router) {
		vr.Get("/", listVeterinariansHandler(svc))
		vr.Post("/", createVeterinarianHandler(svc))
		vr.Get("/{vetID}", getVeterinarianHandler(svc))
		vr.Put("/{vetID}", updateVeterinarianHandler(svc))
		vr.Delete("/{vetID}", deleteVeterinarianHandler(svc))
	})
}

type createVeterinarianRequest struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

type updateVeterinarianRequest struct {
	Name          *string `json:"name"`
	LicenseNumber *string `json:"licenseNumber"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
}

type veterinarianResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	LicenseNumber string    `json:"licenseNumber"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func listVeterinariansHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, total, err := svc.List(r.Context())
		if err != nil {
			api.Error(w, err)
			return
		}

		out := make([]veterinarianResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVeterinarianResponse(v))
		}
		api.List(w, "veterinarians listed successfully", out, total)
	}
}

func getVeterinarianHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "vetID")
		if id == "" {
			api.Fail(w, http.StatusBadRequest, "veterinarian id is required")
			return
		}

		v, err := svc.GetByID(r.Context(), id)
		if err != nil {
			api.Error(w, err)
			return
		}
		api.OK(w, "veterinarian found successfully", toVeterinarianResponse(v))
	}
}

func createVeterinarianHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVeterinarianRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		v, err := svc.Create(r.Context(), CreateInput{
			Name:          req.Name,
			LicenseNumber: req.LicenseNumber,
			Phone:         req.Phone,
			Email:         req.Email,
		})
		if err != nil {
			api.Error(w, err)
			return
		}
		api.Created(w, "veterinarian created successfully", toVeterinarianResponse(v))
	}
}

func updateVeterinarianHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "vetID")
		if id == "" {
			api.Fail(w, http.StatusBadRequest, "veterinarian id is required")
			return
		}

		var req updateVeterinarianRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		v, err := svc.Update(r.Context(), id, UpdateInput{
			Name:          req.Name,
			LicenseNumber: req.LicenseNumber,
			Phone:         req.Phone,
			Email:         req.Email,
		})
		if err != nil {
			api.Error(w, err)
			return
		}
		api.OK(w, "veterinarian updated successfully", toVeterinarianResponse(v))
	}
}

func deleteVeterinarianHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "vetID")
		if id == "" {
			api.Fail(w, http.StatusBadRequest, "veterinarian id is required")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			api.Error(w, err)
			return
		}
		api.OK(w, "veterinarian deleted successfully", map[string]any{
			"id":        id,
			"deletedAt": time.Now().UTC(),
		})
	}
}

func toVeterinarianResponse(v Veterinarian) veterinarianResponse {
	return veterinarianResponse{
		ID:            v.ID,
		Name:          v.Name,
		LicenseNumber: v.LicenseNumber,
		Phone:         v.Phone,
		Email:         v.Email,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
