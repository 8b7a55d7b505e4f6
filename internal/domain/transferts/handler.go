package transferts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/transferts", func(rr chi.Router) {
		rr.Get("/", listTransfertsHandler(svc))
		rr.Post("/", createTransfertHandler(svc))
		rr.Put("/{id}", updateTransfertHandler(svc))
		rr.Delete("/{id}", deleteTransfertHandler(svc))
	})
}

type createTransfertRequest struct {
	AnimalType      string `json:"animal_type"`
	AnimalID        *int64 `json:"animal_id"`
	ChienID         *int64 `json:"chien_id"`
	RefugeDepartID  *int64 `json:"refuge_depart_id"`
	RefugeArriveeID *int64 `json:"refuge_arrivee_id"`
	Statut          string `json:"statut"`
}

type transfertResponse struct {
	ID              int64   `json:"id"`
	AnimalType      *string `json:"animal_type"`
	AnimalID        *int64  `json:"animal_id"`
	ChienID         *int64  `json:"chien_id"`
	RefugeDepartID  int64   `json:"refuge_depart_id"`
	RefugeArriveeID int64   `json:"refuge_arrivee_id"`
	DateTransfert   *string `json:"date_transfert"`
	Statut          *string `json:"statut"`
}

func listTransfertsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "serialization_error", err.Error())
			return
		}

		out := make([]transfertResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTransfertResponse(t))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createTransfertHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTransfertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid json")
			return
		}

		created, err := svc.Create(r.Context(), CreateInput{
			AnimalType:      req.AnimalType,
			AnimalID:        req.AnimalID,
			ChienID:         req.ChienID,
			RefugeDepartID:  req.RefugeDepartID,
			RefugeArriveeID: req.RefugeArriveeID,
			Statut:          req.Statut,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingRefuges):
				writeError(w, http.StatusBadRequest, "bad_request", err.Error())
			case errors.Is(err, ErrInvalidAnimal):
				writeError(w, http.StatusBadRequest, "bad_request", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			}
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"message": "Transfert ajouté", "id": created.ID})
	}
}

// decodeTransfertUpdate goes through a raw map: chien_id sent as null
// must clear the legacy column without triggering the coupling rule,
// which a plain pointer field cannot express.
func decodeTransfertUpdate(r *http.Request) (UpdateInput, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return UpdateInput{}, err
	}

	var in UpdateInput
	if v, ok := raw["animal_type"]; ok {
		in.AnimalType.Present = true
		if string(v) != "null" {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return UpdateInput{}, err
			}
			in.AnimalType.Value = &s
		}
	}
	if v, ok := raw["animal_id"]; ok {
		in.AnimalID.Present = true
		if string(v) != "null" {
			var n int64
			if err := json.Unmarshal(v, &n); err != nil {
				return UpdateInput{}, err
			}
			in.AnimalID.Value = &n
		}
	}
	if v, ok := raw["chien_id"]; ok {
		in.ChienID.Present = true
		if string(v) != "null" {
			var n int64
			if err := json.Unmarshal(v, &n); err != nil {
				return UpdateInput{}, err
			}
			in.ChienID.Value = &n
		}
	}
	if v, ok := raw["refuge_depart_id"]; ok && string(v) != "null" {
		var n int64
		if err := json.Unmarshal(v, &n); err != nil {
			return UpdateInput{}, err
		}
		in.RefugeDepartID = &n
	}
	if v, ok := raw["refuge_arrivee_id"]; ok && string(v) != "null" {
		var n int64
		if err := json.Unmarshal(v, &n); err != nil {
			return UpdateInput{}, err
		}
		in.RefugeArriveeID = &n
	}
	if v, ok := raw["statut"]; ok && string(v) != "null" {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return UpdateInput{}, err
		}
		in.Statut = &s
	}
	return in, nil
}

func updateTransfertHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "not_found", "transfert introuvable")
			return
		}

		in, err := decodeTransfertUpdate(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid json")
			return
		}

		if _, err := svc.Update(r.Context(), id, in); err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, "not_found", "transfert introuvable")
			case errors.Is(err, ErrInvalidAnimal):
				writeError(w, http.StatusBadRequest, "bad_request", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Transfert mis à jour"})
	}
}

func deleteTransfertHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "not_found", "transfert introuvable")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "transfert introuvable")
				return
			}
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Transfert supprimé"})
	}
}

func toTransfertResponse(t Transfert) transfertResponse {
	resp := transfertResponse{
		ID:              t.ID,
		AnimalID:        t.AnimalID,
		ChienID:         t.ChienID,
		RefugeDepartID:  t.RefugeDepartID,
		RefugeArriveeID: t.RefugeArriveeID,
		Statut:          t.Statut,
	}
	if t.AnimalType != nil {
		s := string(*t.AnimalType)
		resp.AnimalType = &s
	}
	if t.DateTransfert != nil {
		s := t.DateTransfert.Format("2006-01-02")
		resp.DateTransfert = &s
	}
	return resp
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
