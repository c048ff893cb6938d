package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/RicGue02/LifeOS/internal/logger"
)

// AwardResult describes the effect of one experience award.
type AwardResult struct {
	XPAwarded   int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// CharacterStore owns the single Character and saves it after every change.
type CharacterStore struct {
	mu        sync.Mutex
	gateway   Gateway
	log       *logger.Logger
	now       func() time.Time
	events    *Events
	character Character
}

// NewCharacterStore loads the stored character. When none is stored, or the
// stored one cannot be decoded, a fresh level 1 character is created and saved.
func NewCharacterStore(ctx context.Context, gw Gateway, opts ...Option) *CharacterStore {
	o := buildOptions(opts)
	cs := &CharacterStore{
		gateway: gw,
		log:     o.log.With("component", "character"),
		now:     o.now,
		events:  o.events,
	}

	data, err := gw.Load(ctx, KeyCharacter)
	if err != nil {
		cs.log.Warn("load character failed, using a new one", "error", err)
		cs.character = NewCharacter(cs.now())
		return cs
	}
	if data != nil {
		c, err := DecodeCharacter(data)
		if err == nil {
			cs.character = c
			return cs
		}
		cs.log.Warn("stored character unreadable, replacing it", "error", err)
	}

	cs.character = NewCharacter(cs.now())
	if err := cs.persist(ctx); err != nil {
		cs.log.Warn("save new character failed", "error", err)
	}
	return cs
}

// Character returns a copy of the current character.
func (cs *CharacterStore) Character() Character {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.character
}

// UpdateDimensionScore stores raw clamped to [0, 100] and awards
// ImprovementXP(raw). Unknown dimensions are ignored.
func (cs *CharacterStore) UpdateDimensionScore(ctx context.Context, t DimensionType, raw float64) (AwardResult, error) {
	cs.mu.Lock()
	if !cs.character.Dimensions.Update(t, raw) {
		lvl := cs.character.Level
		cs.mu.Unlock()
		return AwardResult{LevelBefore: lvl, LevelAfter: lvl}, nil
	}
	score, _ := cs.character.Dimensions.Get(t)
	cs.character.LastUpdated = cs.now()
	res := cs.award(ImprovementXP(raw))
	err := cs.persist(ctx)
	cs.mu.Unlock()

	cs.events.emit(Event{Kind: EventDimensionUpdated, Dimension: t, Score: score.Score})
	cs.emitAward(res)
	return res, err
}

// AddExperience adds points, rolling over levels. Non-positive points are
// ignored.
func (cs *CharacterStore) AddExperience(ctx context.Context, points int) (AwardResult, error) {
	cs.mu.Lock()
	if points <= 0 {
		lvl := cs.character.Level
		cs.mu.Unlock()
		return AwardResult{LevelBefore: lvl, LevelAfter: lvl}, nil
	}
	res := cs.award(points)
	err := cs.persist(ctx)
	cs.mu.Unlock()

	cs.emitAward(res)
	return res, err
}

func (cs *CharacterStore) CompleteTaskAward(ctx context.Context, p Priority) (AwardResult, error) {
	return cs.AddExperience(ctx, TaskXP(p))
}

func (cs *CharacterStore) CompleteHabitAward(ctx context.Context) (AwardResult, error) {
	return cs.AddExperience(ctx, HabitXP)
}

// ReviewCompletionAward awards ReviewXP for a submitted review.
func (cs *CharacterStore) ReviewCompletionAward(ctx context.Context, r DailyReview, completionRate float64) (AwardResult, error) {
	return cs.AddExperience(ctx, ReviewXP(r, completionRate))
}

// award must be called with mu held.
func (cs *CharacterStore) award(points int) AwardResult {
	before := cs.character.Level
	cs.character.AddExperience(points, cs.now())
	after := cs.character.Level
	if after > before {
		cs.log.Info("level up", "from", before, "to", after)
	}
	return AwardResult{
		XPAwarded:   max(points, 0),
		LevelBefore: before,
		LevelAfter:  after,
		LevelUp:     after > before,
	}
}

func (cs *CharacterStore) emitAward(res AwardResult) {
	if res.XPAwarded <= 0 {
		return
	}
	cs.events.emit(Event{Kind: EventExperienceAwarded, XP: res.XPAwarded, Level: res.LevelAfter})
	if res.LevelUp {
		cs.events.emit(Event{Kind: EventLevelUp, Level: res.LevelAfter})
	}
}

// persist must be called with mu held.
func (cs *CharacterStore) persist(ctx context.Context) error {
	data, err := EncodeCharacter(cs.character)
	if err != nil {
		cs.log.Error("encode character failed", "error", err)
		return err
	}
	if err := cs.gateway.Save(ctx, KeyCharacter, data); err != nil {
		cs.log.Warn("save character failed", "error", err)
		return fmt.Errorf("save character: %w", err)
	}
	cs.log.Debug("character saved", "level", cs.character.Level, "xp", cs.character.Experience)
	return nil
}
