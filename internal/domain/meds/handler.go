package meds

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Post("/", createMedicationHandler(svc))
		mr.Get("/", listMedicationsHandler(svc))

		// Vista del día: franjas con estado de toma
		mr.Get("/today", todayHandler(svc))

		mr.Get("/{medicationID}", getMedicationHandler(svc))
		mr.Patch("/{medicationID}", updateMedicationHandler(svc))
		mr.Delete("/{medicationID}", deleteMedicationHandler(svc))

		mr.Post("/{medicationID}/doses", recordDoseHandler(svc))
		mr.Post("/{medicationID}/side-effects", recordSideEffectsHandler(svc))
	})

	r.Route("/side-effects", func(sr chi.Router) {
		sr.Get("/", listSideEffectsHandler(svc))
		sr.Delete("/{logID}", deleteSideEffectLogHandler(svc))
	})
}

// createMedicationRequest es el cuerpo para registrar una medicación.
type createMedicationRequest struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Hospital  string `json:"hospital"`

	Timing     []Timing `json:"timing" enums:"morning,noon,night"`
	TotalCount int      `json:"total_count"`

	PhotoURL    string   `json:"photo_url"`    // referencia opaca, opcional
	SideEffects []string `json:"side_effects"` // efectos conocidos, opcional

	PrescribedDate string `json:"prescribed_date"` // YYYY-MM-DD
}

type medicationResponse struct {
	ID string `json:"id"`

	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Hospital  string `json:"hospital"`

	Timing         []Timing `json:"timing"`
	TotalCount     int      `json:"total_count"`
	RemainingCount int      `json:"remaining_count"`

	PhotoURL    string   `json:"photo_url,omitempty"`
	SideEffects []string `json:"side_effects,omitempty"`

	PrescribedDate time.Time `json:"prescribed_date"`
	CreatedAt      time.Time `json:"created_at"`
}

// updateMedicationRequest es un PATCH tipado: punteros/slices nil = no tocar.
// total_count y remaining_count no son editables por acá.
type updateMedicationRequest struct {
	Name      *string `json:"name"`
	Dosage    *string `json:"dosage"`
	Frequency *string `json:"frequency"`
	Hospital  *string `json:"hospital"`

	Timing         []Timing `json:"timing"`
	PhotoURL       *string  `json:"photo_url"`
	SideEffects    []string `json:"side_effects"`
	PrescribedDate *string  `json:"prescribed_date"` // YYYY-MM-DD
}

type recordDoseRequest struct {
	Timing Timing `json:"timing" enums:"morning,noon,night"`
}

type doseResponse struct {
	Log        medicationLogResponse `json:"log"`
	Medication medicationResponse    `json:"medication"`
}

type medicationLogResponse struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medication_id"`
	TakenAt      time.Time `json:"taken_at"`
	Timing       Timing    `json:"timing"`
}

type recordSideEffectsRequest struct {
	Symptoms []string `json:"symptoms"`
	Severity Severity `json:"severity" enums:"mild,moderate,severe"` // opcional
	Note     string   `json:"note"`                                  // opcional
}

type sideEffectLogResponse struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medication_id"`
	Symptom      string    `json:"symptom"`
	Severity     Severity  `json:"severity,omitempty"`
	Note         string    `json:"note,omitempty"`
	RecordedAt   time.Time `json:"recorded_at"`
}

type daySlotResponse struct {
	Timing  Timing             `json:"timing"`
	Entries []daySlotEntryJSON `json:"entries"`
}

type daySlotEntryJSON struct {
	Medication medicationResponse `json:"medication"`
	Taken      bool               `json:"taken"`
	TakenAt    *time.Time         `json:"taken_at,omitempty"`
}

// createMedicationHandler godoc
// @Summary Registrar medicación
// @Description Da de alta una medicación recetada. El remanente arranca igual al total recetado.
// @Tags medications
// @Accept json
// @Produce json
// @Param payload body createMedicationRequest true "Datos de la medicación; prescribed_date en formato YYYY-MM-DD"
// @Success 201 {object} medicationResponse
// @Failure 400 {string} string "invalid json / campos inválidos"
// @Router /medications [post]
func createMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		pd, err := time.ParseInLocation("2006-01-02", req.PrescribedDate, time.Local)
		if err != nil {
			http.Error(w, "prescribed_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		m, err := svc.AddMedication(r.Context(), CreateMedicationInput{
			Name:           req.Name,
			Dosage:         req.Dosage,
			Frequency:      req.Frequency,
			Hospital:       req.Hospital,
			Timings:        req.Timing,
			TotalCount:     req.TotalCount,
			PhotoURL:       req.PhotoURL,
			SideEffects:    req.SideEffects,
			PrescribedDate: pd,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toMedicationResponse(m))
	}
}

// listMedicationsHandler godoc
// @Summary Listar medicaciones
// @Tags medications
// @Produce json
// @Success 200 {array} medicationResponse
// @Router /medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := svc.Data(r.Context())

		out := make([]medicationResponse, 0, len(data.Medications))
		for _, m := range data.Medications {
			out = append(out, toMedicationResponse(m))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getMedicationHandler godoc
// @Summary Ver una medicación
// @Tags medications
// @Produce json
// @Param medicationID path string true "ID de la medicación"
// @Success 200 {object} medicationResponse
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID} [get]
func getMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetMedication(r.Context(), chi.URLParam(r, "medicationID"))
		if err != nil {
			http.Error(w, "medication not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// updateMedicationHandler godoc
// @Summary Editar medicación
// @Description PATCH tipado de los campos descriptivos. total_count es inmutable y remaining_count solo cambia registrando tomas.
// @Tags medications
// @Accept json
// @Produce json
// @Param medicationID path string true "ID de la medicación"
// @Param payload body updateMedicationRequest true "Campos a modificar; los ausentes no se tocan"
// @Success 200 {object} medicationResponse
// @Failure 400 {string} string "invalid json / campos inválidos"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID} [patch]
func updateMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateMedicationRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateDetailsInput{
			Name:        req.Name,
			Dosage:      req.Dosage,
			Frequency:   req.Frequency,
			Hospital:    req.Hospital,
			Timings:     req.Timing,
			PhotoURL:    req.PhotoURL,
			SideEffects: req.SideEffects,
		}

		if req.PrescribedDate != nil {
			pd, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(*req.PrescribedDate), time.Local)
			if err != nil {
				http.Error(w, "prescribed_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.PrescribedDate = &pd
		}

		m, err := svc.UpdateDetails(r.Context(), chi.URLParam(r, "medicationID"), in)
		if err != nil {
			switch err {
			case ErrNotFound:
				http.Error(w, "medication not found", http.StatusNotFound)
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// deleteMedicationHandler godoc
// @Summary Eliminar medicación
// @Description Elimina la medicación y en cascada todos sus registros de toma y de efectos adversos. Idempotente.
// @Tags medications
// @Param medicationID path string true "ID de la medicación"
// @Success 204 {string} string "sin contenido"
// @Router /medications/{medicationID} [delete]
func deleteMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteMedication(r.Context(), chi.URLParam(r, "medicationID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// todayHandler godoc
// @Summary Vista del día
// @Description Medicaciones agrupadas por franja (morning/noon/night) con su estado de toma de hoy.
// @Tags medications
// @Produce json
// @Success 200 {array} daySlotResponse
// @Router /medications/today [get]
func todayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slots := svc.TodayView(r.Context())

		out := make([]daySlotResponse, 0, len(slots))
		for _, slot := range slots {
			sr := daySlotResponse{Timing: slot.Timing, Entries: make([]daySlotEntryJSON, 0, len(slot.Entries))}
			for _, e := range slot.Entries {
				sr.Entries = append(sr.Entries, daySlotEntryJSON{
					Medication: toMedicationResponse(e.Medication),
					Taken:      e.Taken,
					TakenAt:    e.TakenAt,
				})
			}
			out = append(out, sr)
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// recordDoseHandler godoc
// @Summary Registrar toma
// @Description Registra la toma de hoy en una franja y descuenta el remanente (piso 0) en una sola escritura. Una segunda toma de la misma franja el mismo día devuelve 409.
// @Tags medications
// @Accept json
// @Produce json
// @Param medicationID path string true "ID de la medicación"
// @Param payload body recordDoseRequest true "Franja de la toma"
// @Success 201 {object} doseResponse
// @Failure 400 {string} string "invalid json / franja inválida"
// @Failure 404 {string} string "medication not found"
// @Failure 409 {string} string "dose already taken"
// @Router /medications/{medicationID}/doses [post]
func recordDoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordDoseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.RecordDose(r.Context(), chi.URLParam(r, "medicationID"), req.Timing)
		if err != nil {
			switch err {
			case ErrNotFound:
				http.Error(w, "medication not found", http.StatusNotFound)
			case ErrAlreadyTaken:
				http.Error(w, err.Error(), http.StatusConflict)
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, doseResponse{
			Log:        toLogResponse(res.Log),
			Medication: toMedicationResponse(res.Medication),
		})
	}
}

// recordSideEffectsHandler godoc
// @Summary Registrar efectos adversos
// @Description Crea un registro por cada síntoma; todos comparten fecha y nota (una acción del usuario => varios registros independientes).
// @Tags side-effects
// @Accept json
// @Produce json
// @Param medicationID path string true "ID de la medicación"
// @Param payload body recordSideEffectsRequest true "Síntomas; severity y note opcionales"
// @Success 201 {array} sideEffectLogResponse
// @Failure 400 {string} string "invalid json / sin síntomas / severidad inválida"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID}/side-effects [post]
func recordSideEffectsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordSideEffectsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		logs, err := svc.RecordSideEffects(r.Context(), RecordSideEffectsInput{
			MedicationID: chi.URLParam(r, "medicationID"),
			Symptoms:     req.Symptoms,
			Severity:     req.Severity,
			Note:         req.Note,
		})
		if err != nil {
			switch err {
			case ErrNotFound:
				http.Error(w, "medication not found", http.StatusNotFound)
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		out := make([]sideEffectLogResponse, 0, len(logs))
		for _, l := range logs {
			out = append(out, toSideEffectResponse(l))
		}

		writeJSON(w, http.StatusCreated, out)
	}
}

// listSideEffectsHandler godoc
// @Summary Listar efectos adversos registrados
// @Description Historial completo, del más reciente al más antiguo.
// @Tags side-effects
// @Produce json
// @Success 200 {array} sideEffectLogResponse
// @Router /side-effects [get]
func listSideEffectsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := svc.Data(r.Context())

		out := make([]sideEffectLogResponse, 0, len(data.SideEffectLogs))
		for _, l := range data.SideEffectLogs {
			out = append(out, toSideEffectResponse(l))
		}
		// más reciente primero
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RecordedAt.After(out[j].RecordedAt)
		})

		writeJSON(w, http.StatusOK, out)
	}
}

// deleteSideEffectLogHandler godoc
// @Summary Eliminar un efecto adverso registrado
// @Description Idempotente: un id inexistente también devuelve 204.
// @Tags side-effects
// @Param logID path string true "ID del registro"
// @Success 204 {string} string "sin contenido"
// @Router /side-effects/{logID} [delete]
func deleteSideEffectLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteSideEffectLog(r.Context(), chi.URLParam(r, "logID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toMedicationResponse(m Medication) medicationResponse {
	return medicationResponse{
		ID:             m.ID,
		Name:           m.Name,
		Dosage:         m.Dosage,
		Frequency:      m.Frequency,
		Hospital:       m.Hospital,
		Timing:         m.Timings,
		TotalCount:     m.TotalCount,
		RemainingCount: m.RemainingCount,
		PhotoURL:       m.PhotoURL,
		SideEffects:    m.SideEffects,
		PrescribedDate: m.PrescribedDate,
		CreatedAt:      m.CreatedAt,
	}
}

func toLogResponse(l MedicationLog) medicationLogResponse {
	return medicationLogResponse{
		ID:           l.ID,
		MedicationID: l.MedicationID,
		TakenAt:      l.TakenAt,
		Timing:       l.Timing,
	}
}

func toSideEffectResponse(l SideEffectLog) sideEffectLogResponse {
	return sideEffectLogResponse{
		ID:           l.ID,
		MedicationID: l.MedicationID,
		Symptom:      l.Symptom,
		Severity:     l.Severity,
		Note:         l.Note,
		RecordedAt:   l.RecordedAt,
	}
}

// writeJSON está duplicado intencionalmente en los handlers de meds y
// reports para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
