package meds

import (
	"context"
	"errors"
	"strings"
	"time"

	"med-notebook/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrAlreadyTaken = errors.New("dose already taken")
)

// Service implementa todas las mutaciones del documento como
// load-mutate-save completo contra el DocumentStore. Uso single-user,
// sin lock: dos escritores concurrentes pueden perder un update
// (riesgo conocido y aceptado para este caso de uso).
type Service struct {
	store DocumentStore
	log   logger.Logger

	now   func() time.Time
	newID func() string
}

func NewService(store DocumentStore, log logger.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Data devuelve el documento completo. Nunca falla: un documento
// ilegible se loguea y se trata como documento vacío.
func (s *Service) Data(ctx context.Context) AppData {
	data, err := s.store.Load(ctx)
	if err != nil {
		s.log.Error("load document failed, starting empty", map[string]any{"error": err.Error()})
		return EmptyAppData()
	}
	return data
}

// persist guarda best-effort: un fallo de escritura se loguea y se traga,
// el estado en memoria no se revierte y el llamador no recibe señal.
func (s *Service) persist(ctx context.Context, data AppData) {
	if err := s.store.Save(ctx, data); err != nil {
		s.log.Error("save document failed", map[string]any{"error": err.Error()})
	}
}

type CreateMedicationInput struct {
	Name      string
	Dosage    string
	Frequency string
	Hospital  string

	Timings    []Timing
	TotalCount int

	PhotoURL    string
	SideEffects []string

	PrescribedDate time.Time
}

func (s *Service) AddMedication(ctx context.Context, in CreateMedicationInput) (Medication, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Medication{}, ErrInvalidInput
	}
	if in.TotalCount <= 0 {
		return Medication{}, ErrInvalidInput
	}
	if in.PrescribedDate.IsZero() {
		return Medication{}, ErrInvalidInput
	}

	timings, err := normalizeTimings(in.Timings)
	if err != nil {
		return Medication{}, err
	}

	m := Medication{
		ID:             s.newID(),
		Name:           name,
		Dosage:         strings.TrimSpace(in.Dosage),
		Frequency:      strings.TrimSpace(in.Frequency),
		Hospital:       strings.TrimSpace(in.Hospital),
		Timings:        timings,
		TotalCount:     in.TotalCount,
		RemainingCount: in.TotalCount,
		PhotoURL:       strings.TrimSpace(in.PhotoURL),
		SideEffects:    cleanList(in.SideEffects),
		PrescribedDate: in.PrescribedDate,
		CreatedAt:      s.now(),
	}

	data := s.Data(ctx)
	data.Medications = append(data.Medications, m)
	s.persist(ctx, data)

	return m, nil
}

// UpdateDetailsInput es un PATCH tipado: nil = no tocar.
// TotalCount no es editable (inmutable), RemainingCount solo cambia
// vía RecordDose.
type UpdateDetailsInput struct {
	Name      *string
	Dosage    *string
	Frequency *string
	Hospital  *string

	Timings        []Timing // nil = no tocar; vacío explícito = inválido
	PhotoURL       *string
	SideEffects    []string // nil = no tocar
	PrescribedDate *time.Time
}

func (s *Service) UpdateDetails(ctx context.Context, id string, in UpdateDetailsInput) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, ErrNotFound
	}

	data := s.Data(ctx)
	idx := -1
	for i := range data.Medications {
		if data.Medications[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Medication{}, ErrNotFound
	}

	m := data.Medications[idx]

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Medication{}, ErrInvalidInput
		}
		m.Name = name
	}
	if in.Dosage != nil {
		m.Dosage = strings.TrimSpace(*in.Dosage)
	}
	if in.Frequency != nil {
		m.Frequency = strings.TrimSpace(*in.Frequency)
	}
	if in.Hospital != nil {
		m.Hospital = strings.TrimSpace(*in.Hospital)
	}
	if in.Timings != nil {
		timings, err := normalizeTimings(in.Timings)
		if err != nil {
			return Medication{}, err
		}
		m.Timings = timings
	}
	if in.PhotoURL != nil {
		m.PhotoURL = strings.TrimSpace(*in.PhotoURL)
	}
	if in.SideEffects != nil {
		m.SideEffects = cleanList(in.SideEffects)
	}
	if in.PrescribedDate != nil {
		if in.PrescribedDate.IsZero() {
			return Medication{}, ErrInvalidInput
		}
		m.PrescribedDate = *in.PrescribedDate
	}

	data.Medications[idx] = m
	s.persist(ctx, data)

	return m, nil
}

// DeleteMedication elimina la medicación y, en cascada, todos sus
// MedicationLog y SideEffectLog. Id inexistente => no-op silencioso.
func (s *Service) DeleteMedication(ctx context.Context, id string) error {
	data := s.Data(ctx)

	keep := data.Medications[:0]
	found := false
	for _, m := range data.Medications {
		if m.ID == id {
			found = true
			continue
		}
		keep = append(keep, m)
	}
	if !found {
		return nil
	}
	data.Medications = keep

	mlogs := data.MedicationLogs[:0]
	for _, l := range data.MedicationLogs {
		if l.MedicationID != id {
			mlogs = append(mlogs, l)
		}
	}
	data.MedicationLogs = mlogs

	selogs := data.SideEffectLogs[:0]
	for _, l := range data.SideEffectLogs {
		if l.MedicationID != id {
			selogs = append(selogs, l)
		}
	}
	data.SideEffectLogs = selogs

	s.persist(ctx, data)
	return nil
}

func (s *Service) GetMedication(ctx context.Context, id string) (Medication, error) {
	data := s.Data(ctx)
	for _, m := range data.Medications {
		if m.ID == id {
			return m, nil
		}
	}
	return Medication{}, ErrNotFound
}

// DoseResult agrupa lo que produce una toma: el log nuevo y la
// medicación con el remanente ya descontado.
type DoseResult struct {
	Log        MedicationLog
	Medication Medication
}

// RecordDose registra la toma de hoy en una franja: agrega el log y
// descuenta el remanente (piso 0) sobre el mismo documento en memoria,
// con un único Save. Una segunda toma misma franja mismo día se rechaza
// con ErrAlreadyTaken.
func (s *Service) RecordDose(ctx context.Context, medicationID string, timing Timing) (DoseResult, error) {
	if !ValidTiming(timing) {
		return DoseResult{}, ErrInvalidInput
	}

	data := s.Data(ctx)

	idx := -1
	for i := range data.Medications {
		if data.Medications[i].ID == medicationID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return DoseResult{}, ErrNotFound
	}

	m := data.Medications[idx]
	if !hasTiming(m.Timings, timing) {
		return DoseResult{}, ErrInvalidInput
	}

	now := s.now()
	if _, ok := TakenLog(data, medicationID, timing, now); ok {
		return DoseResult{}, ErrAlreadyTaken
	}

	log := MedicationLog{
		ID:           s.newID(),
		MedicationID: medicationID,
		TakenAt:      now,
		Timing:       timing,
	}
	data.MedicationLogs = append(data.MedicationLogs, log)

	if m.RemainingCount > 0 {
		m.RemainingCount--
	}
	data.Medications[idx] = m

	s.persist(ctx, data)

	return DoseResult{Log: log, Medication: m}, nil
}

type RecordSideEffectsInput struct {
	MedicationID string
	Symptoms     []string
	Severity     Severity
	Note         string
}

// RecordSideEffects crea un registro por síntoma. Todos comparten
// RecordedAt y Note (una sola acción del usuario => varios registros
// independientes).
func (s *Service) RecordSideEffects(ctx context.Context, in RecordSideEffectsInput) ([]SideEffectLog, error) {
	symptoms := cleanList(in.Symptoms)
	if len(symptoms) == 0 {
		return nil, ErrInvalidInput
	}
	if !ValidSeverity(in.Severity) {
		return nil, ErrInvalidInput
	}

	data := s.Data(ctx)

	found := false
	for _, m := range data.Medications {
		if m.ID == in.MedicationID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	now := s.now()
	note := strings.TrimSpace(in.Note)

	out := make([]SideEffectLog, 0, len(symptoms))
	for _, sym := range symptoms {
		l := SideEffectLog{
			ID:           s.newID(),
			MedicationID: in.MedicationID,
			Symptom:      sym,
			Severity:     in.Severity,
			Note:         note,
			RecordedAt:   now,
		}
		data.SideEffectLogs = append(data.SideEffectLogs, l)
		out = append(out, l)
	}

	s.persist(ctx, data)
	return out, nil
}

// DeleteSideEffectLog elimina un registro puntual. Inexistente => no-op.
func (s *Service) DeleteSideEffectLog(ctx context.Context, id string) error {
	data := s.Data(ctx)

	keep := data.SideEffectLogs[:0]
	found := false
	for _, l := range data.SideEffectLogs {
		if l.ID == id {
			found = true
			continue
		}
		keep = append(keep, l)
	}
	if !found {
		return nil
	}
	data.SideEffectLogs = keep

	s.persist(ctx, data)
	return nil
}

func hasTiming(ts []Timing, t Timing) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}

// cleanList recorta y descarta entradas vacías preservando el orden.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if v := strings.TrimSpace(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}
