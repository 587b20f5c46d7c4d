package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"med-notebook/internal/domain/meds"
)

const DefaultDocumentKey = "medication-notebook"

// DocStore persiste el documento AppData serializado como JSONB en una
// única fila de app_documents, identificada por una clave conocida.
// Load/Save siempre operan sobre el documento completo.
type DocStore struct {
	db  *sql.DB
	key string
}

func NewDocStore(db *sql.DB, key string) *DocStore {
	if strings.TrimSpace(key) == "" {
		key = DefaultDocumentKey
	}
	return &DocStore{db: db, key: key}
}

// EnsureSchema crea la tabla si no existe. Sin migrador formal: una
// sola tabla no lo amerita todavía.
func (s *DocStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS app_documents (
			key        TEXT PRIMARY KEY,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

func (s *DocStore) Load(ctx context.Context) (meds.AppData, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT doc FROM app_documents WHERE key = $1
	`, s.key)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return meds.EmptyAppData(), nil
		}
		return meds.AppData{}, err
	}

	var data meds.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		// Documento ilegible: lo reporta tal cual, el service decide
		// degradar a documento vacío.
		return meds.AppData{}, fmt.Errorf("decode document %q: %w", s.key, err)
	}

	if data.Medications == nil {
		data.Medications = []meds.Medication{}
	}
	if data.MedicationLogs == nil {
		data.MedicationLogs = []meds.MedicationLog{}
	}
	if data.SideEffectLogs == nil {
		data.SideEffectLogs = []meds.SideEffectLog{}
	}

	return data, nil
}

func (s *DocStore) Save(ctx context.Context, data meds.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode document %q: %w", s.key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_documents (key, doc, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at
	`, s.key, raw, time.Now().UTC())
	return err
}
