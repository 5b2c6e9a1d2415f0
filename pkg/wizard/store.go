package wizard

import (
	"encoding/json"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"haven/entities"
)

// Draft is the durable snapshot of an in-progress wizard.
type Draft struct {
	Data        WizardData `json:"data"`
	CurrentStep int        `json:"current_step"`
	SavedAt     time.Time  `json:"saved_at"`
}

// DraftStore is the persistence port for drafts and completion markers.
// A nil, nil return from a Load means "nothing stored".
type DraftStore interface {
	LoadDraft(userID string) (*Draft, error)
	SaveDraft(userID string, d Draft) error
	DeleteDraft(userID string) error

	LoadCompleted(userID string) (*WizardData, error)
	SaveCompleted(userID string, d WizardData) error
	DeleteCompleted(userID string) error
}

const (
	kindDraft     = "draft"
	kindCompleted = "completed"
)

// ---- gorm-backed store ----

type gormStore struct{ db *gorm.DB }

func NewGormStore(db *gorm.DB) DraftStore { return &gormStore{db} }

func (s *gormStore) load(userID, kind string) (*entities.WizardRecord, error) {
	var rec entities.WizardRecord
	err := s.db.Where("user_id = ? AND kind = ?", userID, kind).First(&rec).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *gormStore) save(userID, kind, payload string) error {
	rec := entities.WizardRecord{UserID: userID, Kind: kind, Payload: payload, SavedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "kind"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "saved_at"}),
	}).Create(&rec).Error
}

func (s *gormStore) delete(userID, kind string) error {
	return s.db.Where("user_id = ? AND kind = ?", userID, kind).
		Delete(&entities.WizardRecord{}).Error
}

func (s *gormStore) LoadDraft(userID string) (*Draft, error) {
	rec, err := s.load(userID, kindDraft)
	if err != nil || rec == nil {
		return nil, err
	}
	var d Draft
	if err := json.Unmarshal([]byte(rec.Payload), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *gormStore) SaveDraft(userID string, d Draft) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.save(userID, kindDraft, string(b))
}

func (s *gormStore) DeleteDraft(userID string) error { return s.delete(userID, kindDraft) }

func (s *gormStore) LoadCompleted(userID string) (*WizardData, error) {
	rec, err := s.load(userID, kindCompleted)
	if err != nil || rec == nil {
		return nil, err
	}
	var d WizardData
	if err := json.Unmarshal([]byte(rec.Payload), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *gormStore) SaveCompleted(userID string, d WizardData) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.save(userID, kindCompleted, string(b))
}

func (s *gormStore) DeleteCompleted(userID string) error { return s.delete(userID, kindCompleted) }

// ---- in-memory store (tests, single-process dev) ----

type memoryStore struct {
	mu        sync.Mutex
	drafts    map[string]Draft
	completed map[string]WizardData
}

func NewMemoryStore() DraftStore {
	return &memoryStore{
		drafts:    map[string]Draft{},
		completed: map[string]WizardData{},
	}
}

func (s *memoryStore) LoadDraft(userID string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.drafts[userID]; ok {
		return &d, nil
	}
	return nil, nil
}

func (s *memoryStore) SaveDraft(userID string, d Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[userID] = d
	return nil
}

func (s *memoryStore) DeleteDraft(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
	return nil
}

func (s *memoryStore) LoadCompleted(userID string) (*WizardData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.completed[userID]; ok {
		return &d, nil
	}
	return nil, nil
}

func (s *memoryStore) SaveCompleted(userID string, d WizardData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed[userID] = d
	return nil
}

func (s *memoryStore) DeleteCompleted(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.completed, userID)
	return nil
}
