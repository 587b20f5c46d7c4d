package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"med-notebook/internal/platform/logger"
	"med-notebook/internal/router"
)

func TestHTTP_EndToEnd_MedicationLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Log: logger.Nop{}}))
	defer ts.Close()

	today := time.Now().Format("2006-01-02")

	// 1) Alta de medicación (recetada hoy => ventana 0)
	medID := createMedication(t, ts.URL, map[string]any{
		"name":            "Amlodipina",
		"dosage":          "5mg",
		"frequency":       "1 comprimido por toma",
		"hospital":        "Clínica Central",
		"timing":          []string{"morning", "night"},
		"total_count":     30,
		"prescribed_date": today,
	})

	// 2) Listado
	{
		st, body := doReq(t, ts.URL, "GET", "/medications", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}
		var list []map[string]any
		_ = json.Unmarshal(body, &list)
		if len(list) != 1 {
			t.Fatalf("expected 1 medication, got %d", len(list))
		}
		if list[0]["remaining_count"].(float64) != 30 {
			t.Fatalf("expected remaining 30, got %v", list[0]["remaining_count"])
		}
	}

	// 3) Vista del día: pendiente a la mañana
	{
		st, body := doReq(t, ts.URL, "GET", "/medications/today", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 today view, got %d body=%s", st, string(body))
		}
		var slots []struct {
			Timing  string `json:"timing"`
			Entries []struct {
				Taken bool `json:"taken"`
			} `json:"entries"`
		}
		_ = json.Unmarshal(body, &slots)
		if len(slots) != 2 || slots[0].Timing != "morning" {
			t.Fatalf("expected morning+night slots, got %+v", slots)
		}
		if slots[0].Entries[0].Taken {
			t.Fatalf("expected morning dose pending")
		}
	}

	// 4) Registrar toma de la mañana
	{
		st, body := doReq(t, ts.URL, "POST", "/medications/"+medID+"/doses", map[string]any{"timing": "morning"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 record dose, got %d body=%s", st, string(body))
		}
		var resp struct {
			Medication struct {
				RemainingCount int `json:"remaining_count"`
			} `json:"medication"`
			Log struct {
				Timing string `json:"timing"`
			} `json:"log"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Medication.RemainingCount != 29 {
			t.Fatalf("expected remaining 29 after dose, got %d", resp.Medication.RemainingCount)
		}
		if resp.Log.Timing != "morning" {
			t.Fatalf("expected morning log, got %+v", resp.Log)
		}
	}

	// 5) Segunda toma misma franja el mismo día => 409
	{
		st, _ := doReq(t, ts.URL, "POST", "/medications/"+medID+"/doses", map[string]any{"timing": "morning"})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on duplicate dose, got %d", st)
		}
	}

	// 6) Franja no programada => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/medications/"+medID+"/doses", map[string]any{"timing": "noon"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 on unscheduled slot, got %d", st)
		}
	}

	// 7) La vista del día refleja la toma
	{
		st, body := doReq(t, ts.URL, "GET", "/medications/today", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 today view, got %d", st)
		}
		var slots []struct {
			Timing  string `json:"timing"`
			Entries []struct {
				Taken   bool    `json:"taken"`
				TakenAt *string `json:"taken_at"`
			} `json:"entries"`
		}
		_ = json.Unmarshal(body, &slots)
		if !slots[0].Entries[0].Taken || slots[0].Entries[0].TakenAt == nil {
			t.Fatalf("expected morning marked taken, got %+v", slots[0])
		}
	}

	// 8) PATCH de campos descriptivos
	{
		st, body := doReq(t, ts.URL, "PATCH", "/medications/"+medID, map[string]any{
			"name": "Amlodipina genérica",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
		}
	}

	// 9) Registrar efectos adversos (dos síntomas en una acción)
	{
		st, body := doReq(t, ts.URL, "POST", "/medications/"+medID+"/side-effects", map[string]any{
			"symptoms": []string{"mareo", "náusea"},
			"severity": "mild",
			"note":     "después del desayuno",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 side effects, got %d body=%s", st, string(body))
		}
		var logs []map[string]any
		_ = json.Unmarshal(body, &logs)
		if len(logs) != 2 {
			t.Fatalf("expected 2 side effect logs, got %d", len(logs))
		}
		if logs[0]["recorded_at"] != logs[1]["recorded_at"] {
			t.Fatalf("expected shared recorded_at")
		}
	}

	// 10) Reporte de consulta: ventana 0 => adherencia 100
	{
		st, body := doReq(t, ts.URL, "GET", "/reports/consultation", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 consultation, got %d", st)
		}
		var rep struct {
			WindowDays       int `json:"window_days"`
			AverageAdherence int `json:"average_adherence"`
			Medications      []struct {
				AdherenceRate int `json:"adherence_rate"`
			} `json:"medications"`
			SideEffects []any `json:"side_effects"`
		}
		_ = json.Unmarshal(body, &rep)
		if rep.WindowDays != 0 {
			t.Fatalf("expected window 0 for today's prescription, got %d", rep.WindowDays)
		}
		if rep.AverageAdherence != 100 || rep.Medications[0].AdherenceRate != 100 {
			t.Fatalf("expected adherence 100 with empty window, got %+v", rep)
		}
		if len(rep.SideEffects) != 2 {
			t.Fatalf("expected 2 side effects in report, got %d", len(rep.SideEffects))
		}
	}

	// 11) Libreta: un evento de prescripción
	{
		st, body := doReq(t, ts.URL, "GET", "/reports/notebook", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 notebook, got %d", st)
		}
		var groups []struct {
			Hospital    string `json:"hospital"`
			Medications []struct {
				DaysOfSupply int `json:"days_of_supply"`
			} `json:"medications"`
		}
		_ = json.Unmarshal(body, &groups)
		if len(groups) != 1 || groups[0].Hospital != "Clínica Central" {
			t.Fatalf("expected single prescription group, got %+v", groups)
		}
		if groups[0].Medications[0].DaysOfSupply != 15 {
			t.Fatalf("expected 15 days of supply (30/2), got %d", groups[0].Medications[0].DaysOfSupply)
		}
	}

	// 12) Borrado en cascada
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/medications/"+medID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "GET", "/medications/"+medID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/side-effects", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 side effects list, got %d", st)
		}
		var logs []any
		_ = json.Unmarshal(body, &logs)
		if len(logs) != 0 {
			t.Fatalf("expected side effects cascaded, got %d", len(logs))
		}
	}

	// 13) Delete idempotente
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/medications/"+medID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 on repeated delete, got %d", st)
		}
	}
}

func TestHTTP_CreateMedication_RejectsInvalidInput(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Log: logger.Nop{}}))
	defer ts.Close()

	// sin franjas => 400
	st, _ := doReq(t, ts.URL, "POST", "/medications", map[string]any{
		"name":            "X",
		"total_count":     10,
		"timing":          []string{},
		"prescribed_date": "2024-05-01",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty timing, got %d", st)
	}

	// fecha mal formada => 400
	st, _ = doReq(t, ts.URL, "POST", "/medications", map[string]any{
		"name":            "X",
		"total_count":     10,
		"timing":          []string{"morning"},
		"prescribed_date": "01/05/2024",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date format, got %d", st)
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Log: logger.Nop{}}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

func createMedication(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/medications", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create medication, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create medication: missing id body=%s", string(body))
	}
	return resp.ID
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
