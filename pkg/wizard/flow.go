package wizard

import (
	"errors"
	"log"
	"sync"
	"time"

	"haven/entities"
)

// Phase is the explicit controller phase. Overlay phases
// (AwaitingResumeDecision, ShowingCompletion) suspend normal sequencing.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingResumeDecision
	PhaseActive
	PhaseSubmitting
	PhaseShowingCompletion
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingResumeDecision:
		return "awaiting_resume_decision"
	case PhaseActive:
		return "active"
	case PhaseSubmitting:
		return "submitting"
	case PhaseShowingCompletion:
		return "showing_completion"
	default:
		return "idle"
	}
}

var (
	ErrWrongPhase     = errors.New("operation not valid in current phase")
	ErrStepIncomplete = errors.New("current step is incomplete")
	ErrNotLastStep    = errors.New("finish is only valid on the last step")
)

// Creator performs the remote creation call with the accumulated data.
type Creator interface {
	CreateFromWizard(ownerID string, d WizardData) (*entities.Community, error)
}

// Enricher hooks AI content generation into step transitions. Both calls
// may fail; failures are non-fatal and the transition proceeds.
type Enricher interface {
	AnalyzeRisks(d *WizardData) (string, error)
	PromoContent(d *WizardData) (title, body string, err error)
}

// Flow is the wizard flow controller: step sequencer, draft persistence
// manager and completion handshake for one user.
type Flow struct {
	userID  string
	store   DraftStore
	creator Creator
	enrich  Enricher // may be nil
	steps   []Step

	mu      sync.Mutex
	phase   Phase
	step    int // 1-based, valid while phase is Active/Submitting
	data    WizardData
	pending *Draft // held draft while awaiting the resume decision
	created *entities.Community
}

func NewFlow(userID string, store DraftStore, creator Creator, enrich Enricher) *Flow {
	return &Flow{
		userID:  userID,
		store:   store,
		creator: creator,
		enrich:  enrich,
		steps:   Steps(),
		phase:   PhaseIdle,
		step:    1,
		data:    DefaultData(),
	}
}

// Open runs the mount logic: a completion marker wins over a draft; a draft
// with progress asks for a resume decision; a stale empty draft is deleted.
// Storage read failures fail open to a fresh wizard.
func (f *Flow) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseIdle {
		return
	}

	if done, err := f.store.LoadCompleted(f.userID); err != nil {
		log.Printf("[wizard] load completed marker: %v", err)
	} else if done != nil {
		f.data = *done
		f.phase = PhaseShowingCompletion
		return
	}

	draft, err := f.store.LoadDraft(f.userID)
	if err != nil {
		log.Printf("[wizard] load draft: %v", err)
		draft = nil
	}
	if draft != nil {
		if HasProgress(&draft.Data) {
			f.pending = draft
			f.phase = PhaseAwaitingResumeDecision
			return
		}
		// stale empty draft
		if err := f.store.DeleteDraft(f.userID); err != nil {
			log.Printf("[wizard] delete stale draft: %v", err)
		}
	}
	f.phase = PhaseActive
}

// Resume copies the pending draft into live state, unmodified.
func (f *Flow) Resume() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseAwaitingResumeDecision || f.pending == nil {
		return ErrWrongPhase
	}
	f.data = f.pending.Data
	f.step = clampStep(f.pending.CurrentStep, len(f.steps))
	f.pending = nil
	f.phase = PhaseActive
	return nil
}

// Discard deletes the durable draft and starts fresh at step 1.
func (f *Flow) Discard() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseAwaitingResumeDecision && f.phase != PhaseActive {
		return ErrWrongPhase
	}
	if err := f.store.DeleteDraft(f.userID); err != nil {
		log.Printf("[wizard] delete draft: %v", err)
	}
	f.data = DefaultData()
	f.step = 1
	f.pending = nil
	f.phase = PhaseActive
	return nil
}

// Update applies a field edit and autosaves.
func (f *Flow) Update(mutate func(d *WizardData)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseActive {
		return ErrWrongPhase
	}
	mutate(&f.data)
	f.autosave()
	return nil
}

// Advance moves to the next step if the current step validates. Enrichment
// hooks run before the index changes and are allowed to fail.
func (f *Flow) Advance() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseActive {
		return ErrWrongPhase
	}
	if f.step >= len(f.steps) {
		return ErrStepIncomplete
	}
	cur := f.steps[f.step-1]
	if !cur.Valid(&f.data) {
		return ErrStepIncomplete
	}
	f.runEnrichment(cur.ID)
	f.step++
	f.autosave()
	return nil
}

// Retreat moves back one step. No validation going backward.
func (f *Flow) Retreat() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseActive {
		return ErrWrongPhase
	}
	if f.step > 1 {
		f.step--
		f.autosave()
	}
	return nil
}

// Finish runs the completion handshake. Durable storage is transitioned to
// the completed marker BEFORE the creation call, so an interrupted call
// never re-prompts the user to resume a stale draft. On failure the draft
// is restored from in-memory data and the marker cleared.
func (f *Flow) Finish() (*entities.Community, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseActive {
		return nil, ErrWrongPhase
	}
	if f.step != len(f.steps) {
		return nil, ErrNotLastStep
	}
	if !f.steps[f.step-1].Valid(&f.data) {
		return nil, ErrStepIncomplete
	}

	if err := f.store.DeleteDraft(f.userID); err != nil {
		log.Printf("[wizard] delete draft before submit: %v", err)
	}
	if err := f.store.SaveCompleted(f.userID, f.data); err != nil {
		log.Printf("[wizard] save completed marker: %v", err)
	}
	f.phase = PhaseSubmitting

	com, err := f.creator.CreateFromWizard(f.userID, f.data)
	if err != nil {
		// roll durable state back so a reload resumes the wizard
		if derr := f.store.DeleteCompleted(f.userID); derr != nil {
			log.Printf("[wizard] clear completed marker: %v", derr)
		}
		if serr := f.store.SaveDraft(f.userID, Draft{Data: f.data, CurrentStep: f.step, SavedAt: time.Now()}); serr != nil {
			log.Printf("[wizard] restore draft: %v", serr)
		}
		f.phase = PhaseActive
		return nil, err
	}
	f.created = com
	f.phase = PhaseShowingCompletion
	return com, nil
}

// DismissCompletion clears the completed marker permanently and resets the
// flow to a fresh wizard.
func (f *Flow) DismissCompletion() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseShowingCompletion {
		return ErrWrongPhase
	}
	if err := f.store.DeleteCompleted(f.userID); err != nil {
		log.Printf("[wizard] delete completed marker: %v", err)
	}
	f.data = DefaultData()
	f.step = 1
	f.created = nil
	f.phase = PhaseActive
	return nil
}

// autosave persists the draft iff it has progress. A contentless session
// never writes, and nothing is deleted mid-session. Write failures are
// logged and dropped; the in-memory session continues.
func (f *Flow) autosave() {
	if !HasProgress(&f.data) {
		return
	}
	d := Draft{Data: f.data, CurrentStep: f.step, SavedAt: time.Now()}
	if err := f.store.SaveDraft(f.userID, d); err != nil {
		log.Printf("[wizard] save draft: %v", err)
	}
}

func (f *Flow) runEnrichment(stepID string) {
	if f.enrich == nil {
		return
	}
	switch stepID {
	case StepRiskProfile:
		notes, err := f.enrich.AnalyzeRisks(&f.data)
		if err != nil {
			log.Printf("[wizard] risk analysis skipped: %v", err)
			return
		}
		f.data.RiskNotes = notes
	case StepInvite:
		title, body, err := f.enrich.PromoContent(&f.data)
		if err != nil {
			log.Printf("[wizard] promo content skipped: %v", err)
			return
		}
		f.data.Promo = &PromoContent{Title: title, Body: body}
	}
}

func clampStep(s, max int) int {
	if s < 1 {
		return 1
	}
	if s > max {
		return max
	}
	return s
}

// ---- read-side accessors ----

func (f *Flow) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

func (f *Flow) StepIndex() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *Flow) Data() WizardData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

func (f *Flow) Pending() *Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending
}

func (f *Flow) Created() *entities.Community {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created
}

// CanAdvance reports whether the current step validates.
func (f *Flow) CanAdvance() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseActive {
		return false
	}
	return f.steps[f.step-1].Valid(&f.data)
}

func (f *Flow) Steps() []Step { return f.steps }
