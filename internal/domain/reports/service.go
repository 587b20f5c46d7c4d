package reports

import (
	"context"
	"math"
	"sort"
	"time"

	"med-notebook/internal/domain/meds"
)

// Service deriva vistas de solo lectura (reporte de consulta y libreta
// de medicación) a partir del documento. No tiene efectos secundarios.
type Service struct {
	meds *meds.Service
	now  func() time.Time
}

func NewService(medsSvc *meds.Service) *Service {
	return &Service{
		meds: medsSvc,
		now:  time.Now,
	}
}

// MedicationStats es la estadística de adherencia de una medicación
// dentro de la ventana de observación compartida.
type MedicationStats struct {
	Medication meds.Medication

	ExpectedDoses int
	ActualDoses   int
	MissedDoses   int
	// AdherenceRate en porcentaje entero. 100 cuando aún no se esperaba
	// ninguna toma (ventana 0).
	AdherenceRate int
}

// Stats calcula la adherencia de una medicación: tomas esperadas =
// franjas por día x días de ventana; tomas reales = todos los logs de la
// medicación (sin acotar por fecha, simplificación deliberada del
// modelo original).
func Stats(m meds.Medication, logs []meds.MedicationLog, windowDays int) MedicationStats {
	expected := len(m.Timings) * windowDays

	actual := 0
	for _, l := range logs {
		if l.MedicationID == m.ID {
			actual++
		}
	}

	missed := expected - actual
	if missed < 0 {
		missed = 0
	}

	rate := 100
	if expected > 0 {
		rate = int(math.Round(float64(actual) / float64(expected) * 100))
	}

	return MedicationStats{
		Medication:    m,
		ExpectedDoses: expected,
		ActualDoses:   actual,
		MissedDoses:   missed,
		AdherenceRate: rate,
	}
}

// ConsultationReport es el resumen imprimible para la visita médica.
type ConsultationReport struct {
	GeneratedAt time.Time

	// OldestPrescribedDate ancla la ventana de observación (se toma como
	// fecha de la última consulta). Zero cuando no hay medicaciones.
	OldestPrescribedDate time.Time
	WindowDays           int

	Medications     []MedicationStats
	AverageAdherence int

	// SideEffects ordenados del más reciente al más antiguo.
	SideEffects []meds.SideEffectLog
}

// Consultation arma el reporte completo. La ventana es única para todas
// las medicaciones: días transcurridos desde la receta más antigua.
func (s *Service) Consultation(ctx context.Context) ConsultationReport {
	data := s.meds.Data(ctx)
	now := s.now()

	rep := ConsultationReport{GeneratedAt: now}

	if len(data.Medications) > 0 {
		oldest := data.Medications[0].PrescribedDate
		for _, m := range data.Medications[1:] {
			if m.PrescribedDate.Before(oldest) {
				oldest = m.PrescribedDate
			}
		}
		rep.OldestPrescribedDate = oldest
		rep.WindowDays = daysBetween(oldest, now)
	}

	total := 0
	for _, m := range data.Medications {
		st := Stats(m, data.MedicationLogs, rep.WindowDays)
		rep.Medications = append(rep.Medications, st)
		total += st.AdherenceRate
	}
	if n := len(rep.Medications); n > 0 {
		rep.AverageAdherence = int(math.Round(float64(total) / float64(n)))
	}

	rep.SideEffects = append([]meds.SideEffectLog(nil), data.SideEffectLogs...)
	sort.SliceStable(rep.SideEffects, func(i, j int) bool {
		return rep.SideEffects[i].RecordedAt.After(rep.SideEffects[j].RecordedAt)
	})

	return rep
}

// NotebookEntry es una medicación dentro de una sección de la libreta.
type NotebookEntry struct {
	Medication meds.Medication
	// DaysOfSupply = ceil(TotalCount / franjas por día).
	DaysOfSupply int
}

// NotebookGroup es una sección de la libreta: un evento de prescripción
// (misma fecha de receta + mismo emisor).
type NotebookGroup struct {
	PrescribedDate time.Time
	Hospital       string
	Entries        []NotebookEntry
}

// Notebook agrupa por (día de receta, hospital), secciones ordenadas de
// la receta más nueva a la más vieja; dentro de cada sección se
// conserva el orden de inserción.
func (s *Service) Notebook(ctx context.Context) []NotebookGroup {
	data := s.meds.Data(ctx)

	type key struct {
		day      string
		hospital string
	}

	index := map[key]int{}
	groups := make([]NotebookGroup, 0)

	for _, m := range data.Medications {
		k := key{
			day:      m.PrescribedDate.Local().Format("2006-01-02"),
			hospital: m.Hospital,
		}

		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, NotebookGroup{
				PrescribedDate: m.PrescribedDate,
				Hospital:       m.Hospital,
			})
		}

		entry := NotebookEntry{Medication: m}
		if n := len(m.Timings); n > 0 {
			entry.DaysOfSupply = (m.TotalCount + n - 1) / n
		}
		groups[i].Entries = append(groups[i].Entries, entry)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].PrescribedDate.After(groups[j].PrescribedDate)
	})

	return groups
}

// daysBetween cuenta días calendario completos en hora local.
func daysBetween(from, to time.Time) int {
	f := from.Local()
	t := to.Local()
	fd := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	td := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	d := int(td.Sub(fd).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
