package meds

import "context"

// DocumentStore persiste el documento AppData completo bajo una clave
// conocida. No hay updates parciales: toda mutación es load-mutate-save.
type DocumentStore interface {
	// Load devuelve el documento persistido. Sin documento previo => vacío.
	Load(ctx context.Context) (AppData, error)
	// Save sobreescribe el documento completo.
	Save(ctx context.Context, data AppData) error
}
