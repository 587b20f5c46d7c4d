package meds

import (
	"context"
	"time"
)

// sameLocalDay compara a día calendario en hora local.
func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// TakenLog busca el log de toma de una medicación/franja cuyo TakenAt
// cae en el mismo día calendario que day. Si hubiera más de uno (datos
// escritos por fuera del flujo normal) gana el primero encontrado.
func TakenLog(data AppData, medicationID string, timing Timing, day time.Time) (MedicationLog, bool) {
	for _, l := range data.MedicationLogs {
		if l.MedicationID != medicationID {
			continue
		}
		if l.Timing != timing {
			continue
		}
		if sameLocalDay(l.TakenAt, day) {
			return l, true
		}
	}
	return MedicationLog{}, false
}

// DaySlotEntry es una medicación dentro de una franja del día, con su
// estado de toma.
type DaySlotEntry struct {
	Medication Medication
	Taken      bool
	TakenAt    *time.Time
}

// DaySlot agrupa las medicaciones programadas para una franja.
type DaySlot struct {
	Timing  Timing
	Entries []DaySlotEntry
}

// TodayView arma la vista del día: para cada franja (en orden
// morning/noon/night), las medicaciones que la incluyen con su estado.
// Franjas sin medicaciones se omiten.
func (s *Service) TodayView(ctx context.Context) []DaySlot {
	data := s.Data(ctx)
	now := s.now()

	out := make([]DaySlot, 0, len(AllTimings))
	for _, timing := range AllTimings {
		slot := DaySlot{Timing: timing}
		for _, m := range data.Medications {
			if !hasTiming(m.Timings, timing) {
				continue
			}
			entry := DaySlotEntry{Medication: m}
			if l, ok := TakenLog(data, m.ID, timing, now); ok {
				entry.Taken = true
				t := l.TakenAt
				entry.TakenAt = &t
			}
			slot.Entries = append(slot.Entries, entry)
		}
		if len(slot.Entries) > 0 {
			out = append(out, slot)
		}
	}
	return out
}
