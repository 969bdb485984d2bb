// Package viewmodel holds the client-side working copy of the application
// list and the UI state that drives it.
//
// Every mutation is confirm-before-apply: the server round-trip completes
// before any local state changes. On failure the local list stays in its last
// confirmed configuration and the error is surfaced through Err.
package viewmodel

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/apptrack/apptrack/internal/api/v1/handlers"
	"github.com/apptrack/apptrack/internal/db/models"
	apperrors "github.com/apptrack/apptrack/internal/errors"
	"github.com/apptrack/apptrack/pkg/api/v1/client"
)

// Phase represents the lifecycle phase of a session
type Phase int

// Session phases
const (
	// PhaseLoading is the initial phase before the first successful list fetch
	PhaseLoading Phase = iota
	// PhaseReady is entered after a successful load and is terminal for the session
	PhaseReady
)

// ErrBusy is returned when an action is requested while another call is
// still outstanding. The caller may simply retry once the call completes.
var ErrBusy = fmt.Errorf("an operation is already in progress")

// Form holds the transient input state for adding an application
type Form struct {
	Company     string
	Position    string
	Status      models.Status
	DateApplied string
}

// ViewModel synchronizes an in-memory application list with the record store
type ViewModel struct {
	mu   sync.Mutex
	api  client.Client
	now  func() time.Time
	apps []models.Application

	phase   Phase
	form    Form
	busy    bool
	lastErr error
}

// New creates a view model in the Loading phase with an empty list and a
// form preset to today's date and the default status
func New(api client.Client) *ViewModel {
	vm := &ViewModel{
		api:   api,
		now:   time.Now,
		phase: PhaseLoading,
	}
	vm.form = vm.emptyForm()
	return vm
}

func (vm *ViewModel) emptyForm() Form {
	return Form{
		Status:      models.StatusApplied,
		DateApplied: vm.now().Format(models.DateAppliedLayout),
	}
}

// begin marks an action as outstanding and clears the last error.
// It fails if another action is still in flight.
func (vm *ViewModel) begin() error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.busy {
		return ErrBusy
	}
	vm.busy = true
	vm.lastErr = nil
	return nil
}

func (vm *ViewModel) finish(err error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.busy = false
	vm.lastErr = err
}

// Load fetches the full list from the record store once at session start.
// On success the session transitions to Ready; on failure it stays in the
// Loading phase with an empty list and the error is surfaced. There is no
// automatic retry; the caller may invoke Load again.
func (vm *ViewModel) Load(ctx context.Context) error {
	if err := vm.begin(); err != nil {
		return err
	}

	apps, err := vm.api.ListApplications(ctx)
	if err != nil {
		vm.finish(err)
		return err
	}

	vm.mu.Lock()
	vm.apps = apps
	vm.phase = PhaseReady
	vm.mu.Unlock()

	vm.finish(nil)
	return nil
}

// Add validates the current form locally, then creates the record on the
// server. Only the server-returned record (with its assigned id) joins the
// local list; on failure the list and form are left untouched.
func (vm *ViewModel) Add(ctx context.Context) error {
	vm.mu.Lock()
	form := vm.form
	vm.mu.Unlock()

	if err := validateForm(form); err != nil {
		vm.mu.Lock()
		vm.lastErr = err
		vm.mu.Unlock()
		return err
	}

	if err := vm.begin(); err != nil {
		return err
	}

	created, err := vm.api.CreateApplication(ctx, handlers.CreateApplicationParams{
		Company:     strings.TrimSpace(form.Company),
		Position:    strings.TrimSpace(form.Position),
		Status:      string(form.Status),
		DateApplied: form.DateApplied,
	})
	if err != nil {
		vm.finish(err)
		return err
	}

	vm.mu.Lock()
	vm.apps = append([]models.Application{created}, vm.apps...)
	vm.form = vm.emptyForm()
	vm.mu.Unlock()

	vm.finish(nil)
	return nil
}

// SetStatus asks the server to change the status of the record matching id
// and applies the confirmed record locally. On failure the displayed status
// keeps its last confirmed value.
func (vm *ViewModel) SetStatus(ctx context.Context, id uint, status models.Status) error {
	if err := vm.begin(); err != nil {
		return err
	}

	updated, err := vm.api.UpdateApplicationStatus(ctx, id, handlers.UpdateApplicationStatusParams{
		Status: string(status),
	})
	if err != nil {
		vm.finish(err)
		return err
	}

	vm.mu.Lock()
	for i := range vm.apps {
		if vm.apps[i].ID == id {
			vm.apps[i] = updated
			break
		}
	}
	vm.mu.Unlock()

	vm.finish(nil)
	return nil
}

// Remove deletes the record matching id on the server, then drops it from
// the local list. On failure the record stays displayed.
func (vm *ViewModel) Remove(ctx context.Context, id uint) error {
	if err := vm.begin(); err != nil {
		return err
	}

	if err := vm.api.DeleteApplication(ctx, id); err != nil {
		vm.finish(err)
		return err
	}

	vm.mu.Lock()
	kept := vm.apps[:0]
	for _, app := range vm.apps {
		if app.ID != id {
			kept = append(kept, app)
		}
	}
	vm.apps = kept
	vm.mu.Unlock()

	vm.finish(nil)
	return nil
}

// Phase reports the current session phase
func (vm *ViewModel) Phase() Phase {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.phase
}

// Err reports the error surfaced by the most recent action, if any
func (vm *ViewModel) Err() error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.lastErr
}

// Form returns the current input form state
func (vm *ViewModel) Form() Form {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.form
}

// SetForm replaces the input form state
func (vm *ViewModel) SetForm(form Form) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.form = form
}

// Applications returns a copy of the local list ordered by applied date
// descending, ties broken by id descending. The ordering is a projection
// recomputed on every call.
func (vm *ViewModel) Applications() []models.Application {
	vm.mu.Lock()
	apps := make([]models.Application, len(vm.apps))
	copy(apps, vm.apps)
	vm.mu.Unlock()

	sort.SliceStable(apps, func(i, j int) bool {
		if apps[i].DateApplied != apps[j].DateApplied {
			return apps[i].DateApplied > apps[j].DateApplied
		}
		return apps[i].ID > apps[j].ID
	})
	return apps
}

// Len reports the number of applications in the local list
func (vm *ViewModel) Len() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return len(vm.apps)
}

// StatusCounts returns the number of applications per status. Every member
// of the status set is present in the result, zero counts included.
func (vm *ViewModel) StatusCounts() map[models.Status]int {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	counts := make(map[models.Status]int, len(models.Statuses))
	for _, status := range models.Statuses {
		counts[status] = 0
	}
	for _, app := range vm.apps {
		counts[app.Status]++
	}
	return counts
}

func validateForm(form Form) error {
	if strings.TrimSpace(form.Company) == "" {
		return fmt.Errorf("%w: company is required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(form.Position) == "" {
		return fmt.Errorf("%w: position is required", apperrors.ErrInvalidInput)
	}
	if _, err := models.ParseStatus(string(form.Status)); err != nil {
		return err
	}
	if _, err := time.Parse(models.DateAppliedLayout, form.DateApplied); err != nil {
		return fmt.Errorf("%w: dateApplied must be a %s date", apperrors.ErrInvalidInput, models.DateAppliedLayout)
	}
	return nil
}
