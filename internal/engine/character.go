package engine

import (
	"math"
	"time"
)

const (
	DefaultDimensionScore = 50.0
	MinScore              = 0.0
	MaxScore              = 100.0

	// XPPerLevel scales the experience needed to leave a level: level*XPPerLevel.
	XPPerLevel = 100
)

type Dimension struct {
	Name  string  `json:"name"`
	Icon  string  `json:"icon"`
	Color string  `json:"color"`
	Score float64 `json:"score"`
}

// Level returns a label for the score band.
func (d Dimension) Level() string {
	switch {
	case d.Score < 0 || d.Score > 100 || math.IsNaN(d.Score):
		return "Unknown"
	case d.Score < 20:
		return "Critical"
	case d.Score < 40:
		return "Poor"
	case d.Score < 60:
		return "Average"
	case d.Score < 80:
		return "Good"
	default:
		return "Excellent"
	}
}

type LifeDimensions struct {
	Health        Dimension `json:"health"`
	Wealth        Dimension `json:"wealth"`
	Relationships Dimension `json:"relationships"`
	Career        Dimension `json:"career"`
	Personal      Dimension `json:"personal"`
	Fun           Dimension `json:"fun"`
}

func NewLifeDimensions() LifeDimensions {
	return LifeDimensions{
		Health:        Dimension{Name: "Health", Icon: "❤️", Color: "red", Score: DefaultDimensionScore},
		Wealth:        Dimension{Name: "Wealth", Icon: "💰", Color: "green", Score: DefaultDimensionScore},
		Relationships: Dimension{Name: "Relations", Icon: "👥", Color: "blue", Score: DefaultDimensionScore},
		Career:        Dimension{Name: "Career", Icon: "💼", Color: "orange", Score: DefaultDimensionScore},
		Personal:      Dimension{Name: "Personal", Icon: "🧠", Color: "purple", Score: DefaultDimensionScore},
		Fun:           Dimension{Name: "Fun", Icon: "🎮", Color: "pink", Score: DefaultDimensionScore},
	}
}

// All returns the dimensions in AllDimensions order.
func (l LifeDimensions) All() []Dimension {
	return []Dimension{l.Health, l.Wealth, l.Relationships, l.Career, l.Personal, l.Fun}
}

func (l *LifeDimensions) ref(t DimensionType) *Dimension {
	switch t {
	case DimensionHealth:
		return &l.Health
	case DimensionWealth:
		return &l.Wealth
	case DimensionRelationships:
		return &l.Relationships
	case DimensionCareer:
		return &l.Career
	case DimensionPersonal:
		return &l.Personal
	case DimensionFun:
		return &l.Fun
	default:
		return nil
	}
}

func (l LifeDimensions) Get(t DimensionType) (Dimension, bool) {
	d := l.ref(t)
	if d == nil {
		return Dimension{}, false
	}
	return *d, true
}

// Update stores score clamped to [0, 100]. It reports false for an unknown
// dimension type.
func (l *LifeDimensions) Update(t DimensionType, score float64) bool {
	d := l.ref(t)
	if d == nil {
		return false
	}
	d.Score = ClampScore(score)
	return true
}

func (l LifeDimensions) AverageScore() float64 {
	total := 0.0
	for _, d := range l.All() {
		total += d.Score
	}
	return total / float64(len(AllDimensions))
}

// Character is the single player profile. Experience always stays below
// ExperienceForNextLevel.
type Character struct {
	Level       int            `json:"level"`
	Experience  int            `json:"experience"`
	Dimensions  LifeDimensions `json:"dimensions"`
	LastUpdated time.Time      `json:"last_updated"`
}

func NewCharacter(now time.Time) Character {
	return Character{
		Level:       1,
		Dimensions:  NewLifeDimensions(),
		LastUpdated: now,
	}
}

func (c Character) ExperienceForNextLevel() int {
	return c.Level * XPPerLevel
}

// ExperienceProgress is the fraction of the current level completed, in [0, 1).
func (c Character) ExperienceProgress() float64 {
	return float64(c.Experience) / float64(c.ExperienceForNextLevel())
}

func (c Character) TotalScore() float64 {
	return c.Dimensions.AverageScore()
}

// AddExperience adds points and rolls over as many levels as they cover.
// Non-positive points leave the character untouched.
func (c *Character) AddExperience(points int, now time.Time) {
	if points <= 0 {
		return
	}
	c.Experience += points
	for c.Experience >= c.ExperienceForNextLevel() {
		c.Experience -= c.ExperienceForNextLevel()
		c.Level++
	}
	c.LastUpdated = now
}

// ClampScore bounds a dimension score to [0, 100]. NaN becomes the default
// score.
func ClampScore(v float64) float64 {
	if math.IsNaN(v) {
		return DefaultDimensionScore
	}
	return math.Min(MaxScore, math.Max(MinScore, v))
}
