package services

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/api"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/service", func(sr chi.Router) {
		sr.Get("/", listServicesHandler(svc))
		sr.Post("/", createServiceHandler(svc))
		sr.Get("/{serviceID}", getServiceHandler(svc))
		sr.Put("/{serviceID}", updateServiceHandler(svc))
		sr.Delete("/{serviceID}", deleteServiceHandler(svc))
	})
}

type createServiceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
}

type updateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

type serviceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func listServicesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, total, err := svc.List(r.Context())
		if err != nil {
			api.Error(w, err)
			return
		}

		out := make([]serviceResponse, 0, len(items))
		for _, cs := range items {
			out = append(out, toServiceResponse(cs))
		}
		api.List(w, "services listed successfully", out, total)
	}
}

func getServiceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "serviceID")
		if id == "" {
			api.Fail(w, http.StatusBadRequest, "service id is required")
			return
		}

		cs, err := svc.GetByID(r.Context(), id)
		if err != nil {
			api.Error(w, err)
			return
		}
		api.OK(w, "service found successfully", toServiceResponse(cs))
	}
}

func createServiceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		cs, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
		})
		if err != nil {
			api.Error(w, err)
			return
		}
		api.Created(w, "service created successfully", toServiceResponse(cs))
	}
}

func updateServiceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "serviceID")
		if id == "" {
			api.Fail(w, http.StatusBadRequest, "service id is required")
			return
		}

		var req updateServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		cs, err := svc.Update(r.Context(), id, UpdateInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
		})
		if err != nil {
			api.Error(w, err)
			return
		}
		api.OK(w, "service updated successfully", toServiceResponse(cs))
	}
}

func deleteServiceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "serviceID")
		if id == "" {
			api.Fail(w, http.StatusBadRequest, "service id is required")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			api.Error(w, err)
			return
		}
		api.OK(w, "service deleted successfully", map[string]any{
			"id":        id,
			"deletedAt": time.Now().UTC(),
		})
	}
}

func toServiceResponse(cs ClinicService) serviceResponse {
	return serviceResponse{
		ID:          cs.ID,
		Name:        cs.Name,
		Description: cs.Description,
		Price:       cs.Price,
		CreatedAt:   cs.CreatedAt,
		UpdatedAt:   cs.UpdatedAt,
	}
}
