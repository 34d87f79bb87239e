package pets

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/api"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/pet", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name       string `json:"name"`
	Species    string `json:"species"`
	Breed      string `json:"breed"`
	Age        int    `json:"age"`
	OwnerName  string `json:"ownerName"`
	OwnerPhone string `json:"ownerPhone"`
	OwnerEmail string `json:"ownerEmail"`
}

// updatePetRequest: punteros para distinguir "ausente" de "vacío".
type updatePetRequest struct {
	Name       *string `json:"name"`
	Species    *string `json:"species"`
	Breed      *string `json:"breed"`
	Age        *int    `json:"age"`
	OwnerName  *string `json:"ownerName"`
	OwnerPhone *string `json:"ownerPhone"`
	OwnerEmail *string `json:"ownerEmail"`
}

type petResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Species    string    `json:"species"`
	Breed      string    `json:"breed"`
	Age        int       `json:"age"`
	OwnerName  string    `json:"ownerName"`
	OwnerPhone string    `json:"ownerPhone"`
	OwnerEmail string    `json:"ownerEmail"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, total, err := svc.List(r.Context())
		if err != nil {
			api.Error(w, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		api.List(w, "pets listed successfully", out, total)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "petID")
		if id == "" {
			api.Fail(w, http.StatusBadRequest, "pet id is required")
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			api.Error(w, err)
			return
		}
		api.OK(w, "pet found successfully", toPetResponse(p))
	}
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:       req.Name,
			Species:    req.Species,
			Breed:      req.Breed,
			Age:        req.Age,
			OwnerName:  req.OwnerName,
			OwnerPhone: req.OwnerPhone,
			OwnerEmail: req.OwnerEmail,
		})
		if err != nil {
			api.Error(w, err)
			return
		}
		api.Created(w, "pet created successfully", toPetResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "petID")
		if id == "" {
			api.Fail(w, http.StatusBadRequest, "pet id is required")
			return
		}

		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), id, UpdateInput{
			Name:       req.Name,
			Species:    req.Species,
			Breed:      req.Breed,
			Age:        req.Age,
			OwnerName:  req.OwnerName,
			OwnerPhone: req.OwnerPhone,
			OwnerEmail: req.OwnerEmail,
		})
		if err != nil {
			api.Error(w, err)
			return
		}
		api.OK(w, "pet updated successfully", toPetResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "petID")
		if id == "" {
			api.Fail(w, http.StatusBadRequest, "pet id is required")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			api.Error(w, err)
			return
		}
		api.OK(w, "pet deleted successfully", map[string]any{
			"id":        id,
			"deletedAt": time.Now().UTC(),
		})
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:         p.ID,
		Name:       p.Name,
		Species:    p.Species,
		Breed:      p.Breed,
		Age:        p.Age,
		OwnerName:  p.OwnerName,
		OwnerPhone: p.OwnerPhone,
		OwnerEmail: p.OwnerEmail,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
