package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/sdokania30/SayDone/internal/parser"
	"github.com/sdokania30/SayDone/internal/task/repository"
	"github.com/sdokania30/SayDone/pkg/gcalendar"
	pkgLog "github.com/sdokania30/SayDone/pkg/log"
)

// EventScheduler is the slice of the calendar client the usecase needs.
// *gcalendar.Client satisfies it.
type EventScheduler interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	engine     *parser.Engine
	repo       repository.Repository
	calendar   EventScheduler
	calendarID string

	// mu serializes mutations so each snapshot matches the state the
	// mutation actually ran against.
	mu      sync.Mutex
	history *history

	// loc anchors "today" when a request does not pin a reference
	// instant. now is swappable in tests.
	loc *time.Location
	now func() time.Time
}

// New creates a new task UseCase instance. calendar may be nil, in which
// case no events are scheduled. loc may be nil, in which case the server's
// local zone anchors date resolution.
func New(
	l pkgLog.Logger,
	engine *parser.Engine,
	repo repository.Repository,
	calendar EventScheduler,
	calendarID string,
	loc *time.Location,
) *implUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &implUseCase{
		l:          l,
		engine:     engine,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		history:    newHistory(defaultHistoryLimit),
		loc:        loc,
		now:        func() time.Time { return time.Now().In(loc) },
	}
}

// snapshot records the current list before a mutation and clears the redo
// stack. Caller must hold mu.
func (uc *implUseCase) snapshot(ctx context.Context) error {
	current, err := uc.repo.ListTasks(ctx)
	if err != nil {
		return err
	}
	uc.history.record(current)
	return nil
}
