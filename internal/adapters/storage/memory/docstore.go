package memory

import (
	"context"
	"sync"

	"med-notebook/internal/domain/meds"
)

// docStore guarda el documento completo en memoria. Útil para dev y
// tests; mismo contrato que el adapter de Postgres.
type docStore struct {
	mu   sync.RWMutex
	data meds.AppData
	set  bool
}

func NewDocStore() meds.DocumentStore {
	return &docStore{}
}

func (s *docStore) Load(ctx context.Context) (meds.AppData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return meds.EmptyAppData(), nil
	}
	// Copia profunda: el llamador muta su copia y persiste vía Save.
	return s.data.Clone(), nil
}

func (s *docStore) Save(ctx context.Context, data meds.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = data.Clone()
	s.set = true
	return nil
}
