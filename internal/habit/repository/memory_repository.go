package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"habitus-backend/internal/habit/domain"
	"habitus-backend/pkg/date"
)

// MemoryTaskDefinitionRepository is an in-memory TaskDefinitionRepository,
// used as a store double in tests.
type MemoryTaskDefinitionRepository struct {
	mu   sync.RWMutex
	defs map[string]*domain.TaskDefinition

	// FailNext makes the next call return this error, simulating an
	// unreachable store.
	FailNext error
}

// NewMemoryTaskDefinitionRepository creates an empty in-memory repository.
func NewMemoryTaskDefinitionRepository() *MemoryTaskDefinitionRepository {
	return &MemoryTaskDefinitionRepository{defs: make(map[string]*domain.TaskDefinition)}
}

func (r *MemoryTaskDefinitionRepository) fail() error {
	err := r.FailNext
	r.FailNext = nil
	return err
}

func (r *MemoryTaskDefinitionRepository) Create(def *domain.TaskDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail(); err != nil {
		return err
	}
	if def.ID == "" {
		def.ID = uuid.New().String()
	}
	def.IsActive = true
	def.CreatedAt = time.Now()
	def.UpdatedAt = time.Now()
	cp := *def
	r.defs[def.ID] = &cp
	return nil
}

func (r *MemoryTaskDefinitionRepository) FindByID(id string) (*domain.TaskDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.fail(); err != nil {
		return nil, err
	}
	def, ok := r.defs[id]
	if !ok {
		return nil, nil
	}
	cp := *def
	return &cp, nil
}

func (r *MemoryTaskDefinitionRepository) FindByUser(userID string, kind domain.Kind, includeInactive bool) ([]*domain.TaskDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.fail(); err != nil {
		return nil, err
	}
	var out []*domain.TaskDefinition
	for _, def := range r.defs {
		if def.UserID != userID || def.Kind != kind {
			continue
		}
		if !includeInactive && !def.IsActive {
			continue
		}
		cp := *def
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemoryTaskDefinitionRepository) FindActiveByUser(userID string, kind domain.Kind) ([]*domain.TaskDefinition, error) {
	return r.FindByUser(userID, kind, false)
}

func (r *MemoryTaskDefinitionRepository) Update(def *domain.TaskDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail(); err != nil {
		return err
	}
	def.UpdatedAt = time.Now()
	cp := *def
	r.defs[def.ID] = &cp
	return nil
}

func (r *MemoryTaskDefinitionRepository) Deactivate(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail(); err != nil {
		return err
	}
	if def, ok := r.defs[id]; ok {
		def.IsActive = false
		def.UpdatedAt = time.Now()
	}
	return nil
}

func (r *MemoryTaskDefinitionRepository) isActive(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[id]
	return ok && def.IsActive
}

// MemoryCompletionRepository is an in-memory CompletionRepository for tests.
// It needs the definition repository to honor the active-definitions-only
// contract of FindInRange.
type MemoryCompletionRepository struct {
	mu       sync.RWMutex
	recs     map[string]*domain.CompletionRecord // keyed by taskDefinitionID + "|" + date
	taskRepo *MemoryTaskDefinitionRepository

	FailNext error
}

// NewMemoryCompletionRepository creates an empty in-memory completion log.
func NewMemoryCompletionRepository(taskRepo *MemoryTaskDefinitionRepository) *MemoryCompletionRepository {
	return &MemoryCompletionRepository{
		recs:     make(map[string]*domain.CompletionRecord),
		taskRepo: taskRepo,
	}
}

func (r *MemoryCompletionRepository) fail() error {
	err := r.FailNext
	r.FailNext = nil
	return err
}

func key(taskID string, day date.Date) string {
	return taskID + "|" + day.String()
}

func (r *MemoryCompletionRepository) Create(rec *domain.CompletionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail(); err != nil {
		return err
	}
	k := key(rec.TaskDefinitionID, rec.Date)
	if _, exists := r.recs[k]; exists {
		return nil
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.CreatedAt = time.Now()
	cp := *rec
	r.recs[k] = &cp
	return nil
}

func (r *MemoryCompletionRepository) Delete(taskDefinitionID string, day date.Date) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail(); err != nil {
		return err
	}
	delete(r.recs, key(taskDefinitionID, day))
	return nil
}

func (r *MemoryCompletionRepository) FindInRange(userID string, kind domain.Kind, from, to date.Date) ([]*domain.CompletionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.fail(); err != nil {
		return nil, err
	}
	var out []*domain.CompletionRecord
	for _, rec := range r.recs {
		if rec.UserID != userID || rec.Kind != kind {
			continue
		}
		if rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		if !r.taskRepo.isActive(rec.TaskDefinitionID) {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemoryCompletionRepository) FindByTaskAndDate(taskDefinitionID string, day date.Date) (*domain.CompletionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.fail(); err != nil {
		return nil, err
	}
	rec, ok := r.recs[key(taskDefinitionID, day)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}
