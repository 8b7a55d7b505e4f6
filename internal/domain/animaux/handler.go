package animaux

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/chiens", func(rr chi.Router) {
		rr.Get("/", listChiensHandler(svc))
		rr.Post("/", createChienHandler(svc))
		rr.Put("/{id}", updateChienHandler(svc))
		rr.Delete("/{id}", deleteChienHandler(svc))
	})

	r.Route("/chiens12", func(rr chi.Router) {
		rr.Get("/", listChiens12Handler(svc))
		rr.Post("/", createChien12Handler(svc))
		rr.Put("/{id}", updateChien12Handler(svc))
		rr.Delete("/{id}", deleteChien12Handler(svc))
	})

	r.Route("/chats12", func(rr chi.Router) {
		rr.Get("/", listChats12Handler(svc))
		rr.Post("/", createChat12Handler(svc))
		rr.Put("/{id}", updateChat12Handler(svc))
		rr.Delete("/{id}", deleteChat12Handler(svc))
	})

	// Combined read-only view across the three families.
	r.Get("/animaux", listAnimauxHandler(svc))
}

// The three families share one wire shape.
type createAnimalRequest struct {
	Nom      string  `json:"nom"`
	Age      *int64  `json:"age"`
	Race     *string `json:"race"`
	RefugeID *int64  `json:"refuge_id"`
}

type animalResponse struct {
	ID       int64   `json:"id"`
	Nom      string  `json:"nom"`
	Age      *int64  `json:"age"`
	Race     *string `json:"race"`
	RefugeID *int64  `json:"refuge_id"`
}

type summaryResponse struct {
	ID   int64  `json:"id"`
	Nom  string `json:"nom"`
	Type string `json:"type"`
}

// decodeAnimalUpdate reads the body through a raw map so a field sent as
// null (clear the value) can be told apart from one not sent at all
// (keep the value). Matters for age and refuge_id.
func decodeAnimalUpdate(r *http.Request) (UpdateInput, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return UpdateInput{}, err
	}

	var in UpdateInput
	if v, ok := raw["nom"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return UpdateInput{}, err
		}
		in.Nom = &s
	}
	if v, ok := raw["race"]; ok {
		in.Race.Present = true
		if string(v) != "null" {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return UpdateInput{}, err
			}
			in.Race.Value = &s
		}
	}
	if v, ok := raw["age"]; ok {
		in.Age.Present = true
		if string(v) != "null" {
			var n int64
			if err := json.Unmarshal(v, &n); err != nil {
				return UpdateInput{}, err
			}
			in.Age.Value = &n
		}
	}
	if v, ok := raw["refuge_id"]; ok {
		in.RefugeID.Present = true
		if string(v) != "null" {
			var n int64
			if err := json.Unmarshal(v, &n); err != nil {
				return UpdateInput{}, err
			}
			in.RefugeID.Value = &n
		}
	}
	return in, nil
}

// ---- chiens ----

func listChiensHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListChiens(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}
		out := make([]animalResponse, 0, len(items))
		for _, c := range items {
			out = append(out, animalResponse{ID: c.ID, Nom: c.Nom, Age: c.Age, Race: c.Race, RefugeID: c.RefugeID})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createChienHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid json")
			return
		}

		created, err := svc.CreateChien(r.Context(), CreateInput{
			Nom:      req.Nom,
			Age:      req.Age,
			Race:     req.Race,
			RefugeID: req.RefugeID,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "bad_request", "nom est requis")
				return
			}
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"message": "Chien ajouté", "id": created.ID})
	}
}

func updateChienHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "not_found", "chien introuvable")
			return
		}

		in, err := decodeAnimalUpdate(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid json")
			return
		}

		if _, err := svc.UpdateChien(r.Context(), id, in); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "chien introuvable")
				return
			}
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Chien mis à jour"})
	}
}

func deleteChienHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "not_found", "chien introuvable")
			return
		}

		if err := svc.DeleteChien(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "chien introuvable")
				return
			}
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Chien supprimé"})
	}
}

// ---- chiens 12 mois ----

func listChiens12Handler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListChiens12(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}
		out := make([]animalResponse, 0, len(items))
		for _, c := range items {
			out = append(out, animalResponse{ID: c.ID, Nom: c.Nom, Age: c.Age, Race: c.Race, RefugeID: c.RefugeID})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createChien12Handler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid json")
			return
		}

		created, err := svc.CreateChien12(r.Context(), CreateInput{
			Nom:      req.Nom,
			Age:      req.Age,
			Race:     req.Race,
			RefugeID: req.RefugeID,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "bad_request", "nom est requis")
				return
			}
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"message": "Chien 12 mois ajouté", "id": created.ID})
	}
}

func updateChien12Handler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "not_found", "chien 12 mois introuvable")
			return
		}

		in, err := decodeAnimalUpdate(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid json")
			return
		}

		if _, err := svc.UpdateChien12(r.Context(), id, in); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "chien 12 mois introuvable")
				return
			}
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Chien 12 mois modifié"})
	}
}

func deleteChien12Handler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "not_found", "chien 12 mois introuvable")
			return
		}

		if err := svc.DeleteChien12(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "chien 12 mois introuvable")
				return
			}
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Chien 12 mois supprimé"})
	}
}

// ---- chats 12 mois ----

func listChats12Handler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListChats12(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}
		out := make([]animalResponse, 0, len(items))
		for _, c := range items {
			out = append(out, animalResponse{ID: c.ID, Nom: c.Nom, Age: c.Age, Race: c.Race, RefugeID: c.RefugeID})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createChat12Handler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid json")
			return
		}

		created, err := svc.CreateChat12(r.Context(), CreateInput{
			Nom:      req.Nom,
			Age:      req.Age,
			Race:     req.Race,
			RefugeID: req.RefugeID,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "bad_request", "nom est requis")
				return
			}
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"message": "Chat 12 mois ajouté", "id": created.ID})
	}
}

func updateChat12Handler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "not_found", "chat 12 mois introuvable")
			return
		}

		in, err := decodeAnimalUpdate(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid json")
			return
		}

		if _, err := svc.UpdateChat12(r.Context(), id, in); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "chat 12 mois introuvable")
				return
			}
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Chat 12 mois modifié"})
	}
}

func deleteChat12Handler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "not_found", "chat 12 mois introuvable")
			return
		}

		if err := svc.DeleteChat12(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "chat 12 mois introuvable")
				return
			}
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Chat 12 mois supprimé"})
	}
}

// ---- combined ----

func listAnimauxHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}
		out := make([]summaryResponse, 0, len(items))
		for _, s := range items {
			out = append(out, summaryResponse{ID: s.ID, Nom: s.Nom, Type: string(s.Type)})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// Same helpers as in the other handler packages, duplicated on purpose.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, kind, detail string) {
	writeJSON(w, status, map[string]string{"error": kind, "detail": detail})
}
