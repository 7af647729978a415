// Package dataset guarda o conjunto de vendas carregado em memória.
// O Store é criado na inicialização e repassado a quem consome os dados.
package dataset

import (
	"sync"
	"time"

	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

// Snapshot visão somente leitura do conjunto de vendas em um instante
type Snapshot struct {
	Records  []domain.Sale
	Version  uint64
	LoadedAt time.Time
	Source   string
}

// Empty indica se ainda não há vendas carregadas
func (s Snapshot) Empty() bool {
	return len(s.Records) == 0
}

type Store struct {
	mu       sync.RWMutex
	records  []domain.Sale
	version  uint64
	loadedAt time.Time
	source   string
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		records: []domain.Sale{},
		now:     time.Now,
	}
}

// Replace troca o conjunto inteiro e incrementa a versão.
// O slice recebido é copiado; alterações posteriores do chamador não afetam o Store.
func (s *Store) Replace(source string, records []domain.Sale) uint64 {
	copied := make([]domain.Sale, len(records))
	copy(copied, records)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = copied
	s.version++
	s.loadedAt = s.now()
	s.source = source

	return s.version
}

// Snapshot retorna a visão atual. Records não deve ser alterado pelo chamador.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Records:  s.records[:len(s.records):len(s.records)],
		Version:  s.version,
		LoadedAt: s.loadedAt,
		Source:   s.source,
	}
}

func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

func (s *Store) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
