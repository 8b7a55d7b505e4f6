package refuges

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/refuges", func(rr chi.Router) {
		rr.Get("/", listRefugesHandler(svc))
		rr.Post("/", createRefugeHandler(svc))
		rr.Put("/{id}", updateRefugeHandler(svc))
		rr.Delete("/{id}", deleteRefugeHandler(svc))
	})
}

type createRefugeRequest struct {
	Nom         string  `json:"nom"`
	Responsable *string `json:"responsable"`
	Telephone   *string `json:"telephone"`
	Adresse     *string `json:"adresse"`
}

type refugeResponse struct {
	ID          int64   `json:"id"`
	Nom         string  `json:"nom"`
	Responsable *string `json:"responsable"`
	Telephone   *string `json:"telephone"`
	Adresse     *string `json:"adresse"`
}

// decodeRefugeUpdate reads the body through a raw map so a contact field
// sent as null (clear the value) can be told apart from one not sent at
// all (keep the value).
func decodeRefugeUpdate(r *http.Request) (UpdateInput, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return UpdateInput{}, err
	}

	var in UpdateInput
	if v, ok := raw["nom"]; ok && string(v) != "null" {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return UpdateInput{}, err
		}
		in.Nom = &s
	}
	for key, dst := range map[string]*NullableString{
		"responsable": &in.Responsable,
		"telephone":   &in.Telephone,
		"adresse":     &in.Adresse,
	} {
		v, ok := raw[key]
		if !ok {
			continue
		}
		dst.Present = true
		if string(v) != "null" {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return UpdateInput{}, err
			}
			dst.Value = &s
		}
	}
	return in, nil
}

func listRefugesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}

		out := make([]refugeResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toRefugeResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createRefugeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRefugeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid json")
			return
		}

		created, err := svc.Create(r.Context(), CreateInput{
			Nom:         req.Nom,
			Responsable: req.Responsable,
			Telephone:   req.Telephone,
			Adresse:     req.Adresse,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, toRefugeResponse(created))
	}
}

func updateRefugeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "not_found", "refuge introuvable")
			return
		}

		in, err := decodeRefugeUpdate(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid json")
			return
		}

		updated, err := svc.Update(r.Context(), id, in)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "refuge introuvable")
				return
			}
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, toRefugeResponse(updated))
	}
}

func deleteRefugeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "not_found", "refuge introuvable")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "refuge introuvable")
				return
			}
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Refuge supprimé"})
	}
}

func toRefugeResponse(r Refuge) refugeResponse {
	return refugeResponse{
		ID:          r.ID,
		Nom:         r.Nom,
		Responsable: r.Responsable,
		Telephone:   r.Telephone,
		Adresse:     r.Adresse,
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
