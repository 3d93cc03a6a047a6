package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/magickal-mortalz/coven-service/internal/repositories/sheet"
	"github.com/magickal-mortalz/coven-service/internal/tabular"
	"github.com/magickal-mortalz/coven-service/internal/utils"
	"github.com/magickal-mortalz/coven-service/internal/validator"
)

// captureRecorder collects audit events in memory for assertions.
type captureRecorder struct {
	mu     sync.Mutex
	events []capturedEvent
}

type capturedEvent struct {
	MemberID string
	Action   string
	Details  string
}

func (r *captureRecorder) Record(_ context.Context, memberID, action, details string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, capturedEvent{MemberID: memberID, Action: action, Details: details})
}

func (r *captureRecorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Action
	}
	return out
}

// testTime is second-precision UTC so values survive the store's
// "2006-01-02 15:04:05" round trip unchanged.
var testTime = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestManager(t *testing.T, clock utils.Clock) (ServiceManager, *captureRecorder) {
	t.Helper()
	if clock == nil {
		clock = utils.FixedClock{T: testTime}
	}

	store := tabular.NewMemoryStore()
	repo := sheet.NewSheetRepository(store)
	require.NoError(t, repo.Initialize(context.Background()))

	recorder := &captureRecorder{}
	manager := NewServiceManager(ServiceManagerDeps{
		Repo:      repo,
		Recorder:  recorder,
		Validator: validator.New(),
		Clock:     clock,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return manager, recorder
}
