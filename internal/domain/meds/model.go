package meds

import "time"

// Medication representa un curso de medicación recetado.
// Los tags json siguen el esquema del documento persistido (camelCase,
// timestamps RFC3339), no el de la API HTTP.
type Medication struct {
	ID string `json:"id"`

	Name      string `json:"name"`
	Dosage    string `json:"dosage"`    // ej: "60mg"
	Frequency string `json:"frequency"` // ej: "1 comprimido por toma"
	Hospital  string `json:"hospital"`  // quién lo recetó

	Timings []Timing `json:"timing"` // franjas de toma, sin duplicados

	TotalCount     int `json:"totalCount"`     // cantidad recetada, inmutable
	RemainingCount int `json:"remainingCount"` // 0..TotalCount

	PhotoURL string `json:"photoUrl,omitempty"` // referencia opaca, no se interpreta

	// SideEffects son los efectos conocidos del prospecto (texto libre).
	// No confundir con SideEffectLog, que es lo que el usuario registró.
	SideEffects []string `json:"sideEffects,omitempty"`

	PrescribedDate time.Time `json:"prescribedDate"` // fecha clínica, agrupa la libreta
	CreatedAt      time.Time `json:"createdAt"`      // alta del registro
}

// MedicationLog es una toma registrada. Inmutable: solo se crea o se
// elimina en cascada con su medicación.
type MedicationLog struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medicationId"`
	TakenAt      time.Time `json:"takenAt"`
	Timing       Timing    `json:"timing"`
}

// SideEffectLog es un síntoma registrado por el usuario.
type SideEffectLog struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medicationId"`
	Symptom      string    `json:"symptom"`
	Severity     Severity  `json:"severity,omitempty"`
	Note         string    `json:"note,omitempty"`
	RecordedAt   time.Time `json:"recordedAt"`
}

// AppData es el documento completo persistido: tres listas en orden de
// inserción. Los consumidores reordenan según necesiten.
type AppData struct {
	Medications    []Medication    `json:"medications"`
	MedicationLogs []MedicationLog `json:"medicationLogs"`
	SideEffectLogs []SideEffectLog `json:"sideEffectLogs"`
}

// EmptyAppData devuelve el documento vacío (tres listas vacías, no nil,
// para que el JSON persistido siempre tenga los tres arrays).
func EmptyAppData() AppData {
	return AppData{
		Medications:    []Medication{},
		MedicationLogs: []MedicationLog{},
		SideEffectLogs: []SideEffectLog{},
	}
}

// Clone copia el documento en profundidad. Los adapters lo usan para que
// el llamador nunca comparta slices con lo almacenado.
func (d AppData) Clone() AppData {
	out := AppData{
		Medications:    make([]Medication, len(d.Medications)),
		MedicationLogs: make([]MedicationLog, len(d.MedicationLogs)),
		SideEffectLogs: make([]SideEffectLog, len(d.SideEffectLogs)),
	}
	copy(out.MedicationLogs, d.MedicationLogs)
	copy(out.SideEffectLogs, d.SideEffectLogs)
	for i, m := range d.Medications {
		if m.Timings != nil {
			m.Timings = append([]Timing(nil), m.Timings...)
		}
		if m.SideEffects != nil {
			m.SideEffects = append([]string(nil), m.SideEffects...)
		}
		out.Medications[i] = m
	}
	return out
}
