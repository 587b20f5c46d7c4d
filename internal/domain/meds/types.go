package meds

// Timing define las franjas horarias de toma.
// @Enum morning, noon, night
type Timing string

const (
	TimingMorning Timing = "morning"
	TimingNoon    Timing = "noon"
	TimingNight   Timing = "night"
)

// AllTimings en orden de día (útil para la vista "hoy" y el reporte).
var AllTimings = []Timing{TimingMorning, TimingNoon, TimingNight}

func ValidTiming(t Timing) bool {
	switch t {
	case TimingMorning, TimingNoon, TimingNight:
		return true
	default:
		return false
	}
}

// normalizeTimings valida estrictamente y deduplica preservando el orden
// canónico morning/noon/night. Vacío o franja desconocida => inválido.
func normalizeTimings(in []Timing) ([]Timing, error) {
	if len(in) == 0 {
		return nil, ErrInvalidInput
	}

	seen := map[Timing]bool{}
	for _, t := range in {
		if !ValidTiming(t) {
			return nil, ErrInvalidInput
		}
		seen[t] = true
	}

	out := make([]Timing, 0, len(seen))
	for _, t := range AllTimings {
		if seen[t] {
			out = append(out, t)
		}
	}
	return out, nil
}

// Severity define la severidad opcional de un efecto adverso.
// @Enum mild, moderate, severe
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// ValidSeverity acepta vacío (la severidad es opcional).
func ValidSeverity(s Severity) bool {
	switch s {
	case "", SeverityMild, SeverityModerate, SeveritySevere:
		return true
	default:
		return false
	}
}
