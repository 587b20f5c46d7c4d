package reports

import (
	"encoding/json"
	"net/http"
	"time"

	"med-notebook/internal/domain/meds"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reports", func(rr chi.Router) {
		rr.Get("/consultation", consultationHandler(svc))
		rr.Get("/notebook", notebookHandler(svc))
	})
}

type consultationResponse struct {
	GeneratedAt time.Time `json:"generated_at"`

	OldestPrescribedDate *time.Time `json:"oldest_prescribed_date,omitempty"`
	WindowDays           int        `json:"window_days"`

	Medications      []medicationStatsResponse `json:"medications"`
	AverageAdherence int                       `json:"average_adherence"`

	SideEffects []sideEffectResponse `json:"side_effects"`
}

type medicationStatsResponse struct {
	MedicationID   string `json:"medication_id"`
	Name           string `json:"name"`
	Dosage         string `json:"dosage"`
	RemainingCount int    `json:"remaining_count"`
	TotalCount     int    `json:"total_count"`

	ExpectedDoses int `json:"expected_doses"`
	ActualDoses   int `json:"actual_doses"`
	MissedDoses   int `json:"missed_doses"`
	AdherenceRate int `json:"adherence_rate"`
}

type sideEffectResponse struct {
	MedicationID string        `json:"medication_id"`
	Symptom      string        `json:"symptom"`
	Severity     meds.Severity `json:"severity,omitempty"`
	Note         string        `json:"note,omitempty"`
	RecordedAt   time.Time     `json:"recorded_at"`
}

type notebookGroupResponse struct {
	PrescribedDate time.Time               `json:"prescribed_date"`
	Hospital       string                  `json:"hospital"`
	Medications    []notebookEntryResponse `json:"medications"`
}

type notebookEntryResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Dosage       string        `json:"dosage"`
	Frequency    string        `json:"frequency"`
	Timing       []meds.Timing `json:"timing"`
	TotalCount   int           `json:"total_count"`
	DaysOfSupply int           `json:"days_of_supply"`
	PhotoURL     string        `json:"photo_url,omitempty"`
}

// consultationHandler godoc
// @Summary Reporte de consulta
// @Description Estadísticas de adherencia por medicación (ventana anclada en la receta más antigua), promedio general e historial de efectos adversos del más reciente al más antiguo.
// @Tags reports
// @Produce json
// @Success 200 {object} consultationResponse
// @Router /reports/consultation [get]
func consultationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep := svc.Consultation(r.Context())

		out := consultationResponse{
			GeneratedAt:      rep.GeneratedAt,
			WindowDays:       rep.WindowDays,
			Medications:      make([]medicationStatsResponse, 0, len(rep.Medications)),
			AverageAdherence: rep.AverageAdherence,
			SideEffects:      make([]sideEffectResponse, 0, len(rep.SideEffects)),
		}
		if !rep.OldestPrescribedDate.IsZero() {
			d := rep.OldestPrescribedDate
			out.OldestPrescribedDate = &d
		}

		for _, st := range rep.Medications {
			out.Medications = append(out.Medications, medicationStatsResponse{
				MedicationID:   st.Medication.ID,
				Name:           st.Medication.Name,
				Dosage:         st.Medication.Dosage,
				RemainingCount: st.Medication.RemainingCount,
				TotalCount:     st.Medication.TotalCount,
				ExpectedDoses:  st.ExpectedDoses,
				ActualDoses:    st.ActualDoses,
				MissedDoses:    st.MissedDoses,
				AdherenceRate:  st.AdherenceRate,
			})
		}

		for _, l := range rep.SideEffects {
			out.SideEffects = append(out.SideEffects, sideEffectResponse{
				MedicationID: l.MedicationID,
				Symptom:      l.Symptom,
				Severity:     l.Severity,
				Note:         l.Note,
				RecordedAt:   l.RecordedAt,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// notebookHandler godoc
// @Summary Libreta de medicación
// @Description Medicaciones agrupadas por evento de prescripción (misma fecha de receta + mismo emisor), secciones de la más nueva a la más vieja.
// @Tags reports
// @Produce json
// @Success 200 {array} notebookGroupResponse
// @Router /reports/notebook [get]
func notebookHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups := svc.Notebook(r.Context())

		out := make([]notebookGroupResponse, 0, len(groups))
		for _, g := range groups {
			gr := notebookGroupResponse{
				PrescribedDate: g.PrescribedDate,
				Hospital:       g.Hospital,
				Medications:    make([]notebookEntryResponse, 0, len(g.Entries)),
			}
			for _, e := range g.Entries {
				gr.Medications = append(gr.Medications, notebookEntryResponse{
					ID:           e.Medication.ID,
					Name:         e.Medication.Name,
					Dosage:       e.Medication.Dosage,
					Frequency:    e.Medication.Frequency,
					Timing:       e.Medication.Timings,
					TotalCount:   e.Medication.TotalCount,
					DaysOfSupply: e.DaysOfSupply,
					PhotoURL:     e.Medication.PhotoURL,
				})
			}
			out = append(out, gr)
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON está duplicado intencionalmente en los handlers de meds y
// reports para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
