package meds

import (
	"context"
	"testing"
	"time"
)

func TestTakenLog_MatchesSameLocalDay(t *testing.T) {
	today := time.Date(2025, 3, 10, 9, 30, 0, 0, time.Local)

	data := AppData{
		MedicationLogs: []MedicationLog{
			{ID: "l1", MedicationID: "m1", Timing: TimingMorning, TakenAt: time.Date(2025, 3, 10, 8, 5, 0, 0, time.Local)},
			{ID: "l2", MedicationID: "m1", Timing: TimingNight, TakenAt: time.Date(2025, 3, 10, 21, 0, 0, 0, time.Local)},
			{ID: "l3", MedicationID: "m2", Timing: TimingMorning, TakenAt: time.Date(2025, 3, 10, 8, 6, 0, 0, time.Local)},
		},
	}

	l, ok := TakenLog(data, "m1", TimingMorning, today)
	if !ok || l.ID != "l1" {
		t.Fatalf("expected l1, got %+v ok=%v", l, ok)
	}

	// misma medicación, otra franja
	if _, ok := TakenLog(data, "m1", TimingNoon, today); ok {
		t.Fatalf("expected no log for noon")
	}
	// otra medicación no cuenta
	l, ok = TakenLog(data, "m2", TimingMorning, today)
	if !ok || l.ID != "l3" {
		t.Fatalf("expected l3, got %+v ok=%v", l, ok)
	}
}

func TestTakenLog_YesterdayLateNightDoesNotCount(t *testing.T) {
	today := time.Date(2025, 3, 10, 0, 30, 0, 0, time.Local)

	data := AppData{
		MedicationLogs: []MedicationLog{
			// ayer 23:59: día calendario distinto aunque pasó hace media hora
			{ID: "l1", MedicationID: "m1", Timing: TimingNight, TakenAt: time.Date(2025, 3, 9, 23, 59, 0, 0, time.Local)},
		},
	}

	if _, ok := TakenLog(data, "m1", TimingNight, today); ok {
		t.Fatalf("expected yesterday's 23:59 log to not count as today")
	}
}

func TestTakenLog_FirstMatchWinsOnDuplicates(t *testing.T) {
	today := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)

	// duplicado escrito por fuera del flujo normal: gana el primero
	data := AppData{
		MedicationLogs: []MedicationLog{
			{ID: "first", MedicationID: "m1", Timing: TimingMorning, TakenAt: time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)},
			{ID: "second", MedicationID: "m1", Timing: TimingMorning, TakenAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)},
		},
	}

	l, ok := TakenLog(data, "m1", TimingMorning, today)
	if !ok || l.ID != "first" {
		t.Fatalf("expected first match, got %+v", l)
	}
}

func TestTodayView_GroupsBySlotAndOmitsEmpty(t *testing.T) {
	store := &testStore{}
	svc := newTestService(store)

	inA := validInput() // morning + night
	a, _ := svc.AddMedication(context.Background(), inA)

	inB := validInput()
	inB.Name = "Loratadina"
	inB.Timings = []Timing{TimingMorning}
	b, _ := svc.AddMedication(context.Background(), inB)

	_, _ = svc.RecordDose(context.Background(), a.ID, TimingMorning)

	slots := svc.TodayView(context.Background())
	if len(slots) != 2 {
		t.Fatalf("expected morning + night slots (noon empty, omitted), got %d", len(slots))
	}

	morning := slots[0]
	if morning.Timing != TimingMorning || len(morning.Entries) != 2 {
		t.Fatalf("expected 2 medications at morning, got %+v", morning)
	}
	if !morning.Entries[0].Taken || morning.Entries[0].TakenAt == nil {
		t.Fatalf("expected A marked taken at morning")
	}
	if morning.Entries[1].Medication.ID != b.ID || morning.Entries[1].Taken {
		t.Fatalf("expected B pending at morning")
	}

	night := slots[1]
	if night.Timing != TimingNight || len(night.Entries) != 1 || night.Entries[0].Taken {
		t.Fatalf("expected only A pending at night, got %+v", night)
	}
}
