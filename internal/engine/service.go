package engine

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/RicGue02/LifeOS/internal/logger"
	"github.com/RicGue02/LifeOS/internal/storage"
)

// Service wires the scheduler and character store to the SQLite activity
// repos and implements the flows that span them.
type Service struct {
	db           *sql.DB
	tasks        *storage.TaskRepo
	habits       *storage.HabitRepo
	transactions *storage.TransactionRepo

	scheduler  *Scheduler
	characters *CharacterStore
	events     *Events
	log        *logger.Logger
	loc        *time.Location
	now        func() time.Time
}

// NewService builds a Service over db. Snapshots go to the blobs table unless
// WithGateway supplies another store.
func NewService(ctx context.Context, db *sql.DB, opts ...Option) *Service {
	o := buildOptions(opts)
	if o.gateway == nil {
		o.gateway = storage.NewBlobRepo(db)
	}
	shared := []Option{
		WithLogger(o.log),
		WithLocation(o.loc),
		WithClock(o.now),
		WithEvents(o.events),
	}
	return &Service{
		db:           db,
		tasks:        storage.NewTaskRepo(db),
		habits:       storage.NewHabitRepo(db),
		transactions: storage.NewTransactionRepo(db),
		scheduler:    NewScheduler(ctx, o.gateway, shared...),
		characters:   NewCharacterStore(ctx, o.gateway, shared...),
		events:       o.events,
		log:          o.log,
		loc:          o.loc,
		now:          o.now,
	}
}

func (s *Service) Scheduler() *Scheduler                     { return s.scheduler }
func (s *Service) Characters() *CharacterStore               { return s.characters }
func (s *Service) Events() *Events                           { return s.events }
func (s *Service) TaskRepo() *storage.TaskRepo               { return s.tasks }
func (s *Service) HabitRepo() *storage.HabitRepo             { return s.habits }
func (s *Service) TransactionRepo() *storage.TransactionRepo { return s.transactions }
func (s *Service) Location() *time.Location                  { return s.loc }
func (s *Service) Character() Character                      { return s.characters.Character() }
func (s *Service) Today() time.Time                          { return s.scheduler.Today() }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}

// RefreshScores recomputes health, career and wealth from the activity
// stores and applies them one after another.
func (s *Service) RefreshScores(ctx context.Context) (Character, error) {
	updates, err := ActivityScores(ctx, habitRepoSource{s.habits}, s.tasks, s.transactions, s.now().In(s.loc))
	if err != nil {
		return Character{}, err
	}
	var saveErr error
	for _, u := range updates {
		if _, err := s.characters.UpdateDimensionScore(ctx, u.Dimension, u.Score); err != nil {
			saveErr = err
		}
	}
	return s.characters.Character(), saveErr
}
