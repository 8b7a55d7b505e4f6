package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"spa-transferts/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Logger:         zerolog.Nop(),
		AllowedOrigins: []string{"http://localhost:3000"},
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_RefugeLifecycle(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/refuges", map[string]any{
		"nom":         "Refuge Nord",
		"responsable": "Claire",
		"telephone":   "0102030405",
		"adresse":     "1 rue des Lilas",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create refuge, got %d body=%s", st, string(body))
	}
	var created struct {
		ID  int64  `json:"id"`
		Nom string `json:"nom"`
	}
	_ = json.Unmarshal(body, &created)
	if created.ID == 0 || created.Nom != "Refuge Nord" {
		t.Fatalf("create refuge: bad body %s", string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/api/refuges", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list refuges, got %d", st)
	}
	var listed []struct {
		ID          int64  `json:"id"`
		Nom         string `json:"nom"`
		Responsable string `json:"responsable"`
	}
	_ = json.Unmarshal(body, &listed)
	if len(listed) != 1 || listed[0].ID != created.ID || listed[0].Nom != "Refuge Nord" {
		t.Fatalf("listed refuges wrong: %s", string(body))
	}

	// partial update keeps the other fields
	st, body = doReq(t, ts.URL, "PUT", "/api/refuges/1", map[string]any{
		"telephone": "0607080910",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update refuge, got %d body=%s", st, string(body))
	}
	var updated struct {
		Nom         string `json:"nom"`
		Responsable string `json:"responsable"`
		Telephone   string `json:"telephone"`
	}
	_ = json.Unmarshal(body, &updated)
	if updated.Telephone != "0607080910" || updated.Nom != "Refuge Nord" || updated.Responsable != "Claire" {
		t.Fatalf("partial update broke fields: %s", string(body))
	}

	st, _ = doReq(t, ts.URL, "DELETE", "/api/refuges/1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 delete refuge, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "PUT", "/api/refuges/1", map[string]any{"nom": "X"})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
}

func TestHTTP_TransfertLegacyInference(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/transferts", map[string]any{
		"chien_id":          7,
		"refuge_depart_id":  1,
		"refuge_arrivee_id": 2,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create transfert, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/api/transferts", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list transferts, got %d", st)
	}
	var listed []transfertBody
	_ = json.Unmarshal(body, &listed)
	if len(listed) != 1 {
		t.Fatalf("expected 1 transfert, got %s", string(body))
	}
	tr := listed[0]
	if tr.AnimalType == nil || *tr.AnimalType != "chien" {
		t.Fatalf("expected inferred animal_type chien, got %s", string(body))
	}
	if tr.AnimalID == nil || *tr.AnimalID != 7 || tr.ChienID == nil || *tr.ChienID != 7 {
		t.Fatalf("expected animal_id=chien_id=7, got %s", string(body))
	}
	if tr.Statut == nil || *tr.Statut != "En attente" {
		t.Fatalf("expected default statut, got %v", tr.Statut)
	}
	if tr.DateTransfert == nil || *tr.DateTransfert == "" {
		t.Fatalf("expected creation date, got %s", string(body))
	}
}

func TestHTTP_TransfertMissingDepartIs400(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/transferts", map[string]any{
		"chien_id":          7,
		"refuge_arrivee_id": 2,
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", st, string(body))
	}
	var errBody struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &errBody)
	if errBody.Error != "bad_request" {
		t.Fatalf("expected bad_request kind, got %s", string(body))
	}

	// and no row was created
	st, body = doReq(t, ts.URL, "GET", "/api/transferts", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d", st)
	}
	var listed []transfertBody
	_ = json.Unmarshal(body, &listed)
	if len(listed) != 0 {
		t.Fatalf("expected empty list after rejected create, got %s", string(body))
	}
}

func TestHTTP_TransfertUpdateCouplingRule(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/transferts", map[string]any{
		"animal_type":       "chat12",
		"animal_id":         3,
		"refuge_depart_id":  1,
		"refuge_arrivee_id": 2,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}

	// legacy chien_id wins even against a conflicting animal_type in
	// the same request
	st, body = doReq(t, ts.URL, "PUT", "/api/transferts/1", map[string]any{
		"chien_id":    9,
		"animal_type": "chien12",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/api/transferts", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d", st)
	}
	var listed []transfertBody
	_ = json.Unmarshal(body, &listed)
	if len(listed) != 1 {
		t.Fatalf("expected 1 transfert, got %s", string(body))
	}
	tr := listed[0]
	if tr.AnimalType == nil || *tr.AnimalType != "chien" {
		t.Fatalf("expected forced animal_type chien, got %s", string(body))
	}
	if tr.AnimalID == nil || *tr.AnimalID != 9 || tr.ChienID == nil || *tr.ChienID != 9 {
		t.Fatalf("expected forced animal_id=chien_id=9, got %s", string(body))
	}
}

func TestHTTP_AnimauxCombinedListing(t *testing.T) {
	ts := newTestServer(t)

	for path, nom := range map[string]string{
		"/api/chiens":   "Rex",
		"/api/chiens12": "Junior",
		"/api/chats12":  "Misty",
	} {
		st, body := doReq(t, ts.URL, "POST", path, map[string]any{"nom": nom})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create on %s, got %d body=%s", path, st, string(body))
		}
	}

	st, body := doReq(t, ts.URL, "GET", "/api/animaux", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 combined listing, got %d", st)
	}
	var listed []struct {
		ID   int64  `json:"id"`
		Nom  string `json:"nom"`
		Type string `json:"type"`
	}
	_ = json.Unmarshal(body, &listed)
	if len(listed) != 3 {
		t.Fatalf("expected 3 animals, got %s", string(body))
	}

	byType := map[string]string{}
	for _, a := range listed {
		byType[a.Type] = a.Nom
	}
	if byType["chien"] != "Rex" || byType["chien12"] != "Junior" || byType["chat12"] != "Misty" {
		t.Fatalf("wrong tags in combined listing: %s", string(body))
	}
}

func TestHTTP_DeleteChienThenNotFound(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/chiens", map[string]any{"nom": "Rex"})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}

	st, _ = doReq(t, ts.URL, "DELETE", "/api/chiens/1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 delete, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "PUT", "/api/chiens/1", map[string]any{"nom": "Max"})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 update after delete, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "DELETE", "/api/chiens/1", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 second delete, got %d", st)
	}
}

func TestHTTP_UnsetTextFieldsSerializeAsNull(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/chiens", map[string]any{"nom": "Rex"})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create chien, got %d body=%s", st, string(body))
	}
	st, body = doReq(t, ts.URL, "GET", "/api/chiens", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list chiens, got %d", st)
	}
	var chiens []struct {
		Race     *string `json:"race"`
		Age      *int64  `json:"age"`
		RefugeID *int64  `json:"refuge_id"`
	}
	_ = json.Unmarshal(body, &chiens)
	if len(chiens) != 1 || chiens[0].Race != nil || chiens[0].Age != nil || chiens[0].RefugeID != nil {
		t.Fatalf("unset chien fields must be null, got %s", string(body))
	}

	st, body = doReq(t, ts.URL, "POST", "/api/refuges", map[string]any{"nom": "Refuge Sud"})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create refuge, got %d body=%s", st, string(body))
	}
	var created struct {
		Responsable *string `json:"responsable"`
		Telephone   *string `json:"telephone"`
		Adresse     *string `json:"adresse"`
	}
	_ = json.Unmarshal(body, &created)
	if created.Responsable != nil || created.Telephone != nil || created.Adresse != nil {
		t.Fatalf("unset refuge contact fields must be null, got %s", string(body))
	}
}

func TestHTTP_CORSAllowList(t *testing.T) {
	ts := newTestServer(t)

	// allowed origin gets the headers
	req, _ := http.NewRequest("OPTIONS", ts.URL+"/api/refuges", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", res.StatusCode)
	}
	if got := res.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allow-origin echo, got %q", got)
	}

	// unknown origin gets nothing
	req, _ = http.NewRequest("OPTIONS", ts.URL+"/api/refuges", nil)
	req.Header.Set("Origin", "https://evil.example")
	res, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	res.Body.Close()
	if got := res.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unknown origin must get no CORS header, got %q", got)
	}
}

type transfertBody struct {
	ID              int64   `json:"id"`
	AnimalType      *string `json:"animal_type"`
	AnimalID        *int64  `json:"animal_id"`
	ChienID         *int64  `json:"chien_id"`
	RefugeDepartID  int64   `json:"refuge_depart_id"`
	RefugeArriveeID int64   `json:"refuge_arrivee_id"`
	DateTransfert   *string `json:"date_transfert"`
	Statut          *string `json:"statut"`
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
