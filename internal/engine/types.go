package engine

type BlockCategory string

const (
	CategoryWork     BlockCategory = "Work"
	CategoryPersonal BlockCategory = "Personal"
	CategoryHealth   BlockCategory = "Health"
	CategoryLearning BlockCategory = "Learning"
	CategorySocial   BlockCategory = "Social"
	CategoryBreak    BlockCategory = "Break"
	CategoryCommute  BlockCategory = "Commute"
	CategoryMeal     BlockCategory = "Meal"
	CategoryPlanning BlockCategory = "Planning"
	CategoryOther    BlockCategory = "Other"
)

// AllCategories lists block categories in display order.
var AllCategories = []BlockCategory{
	CategoryWork, CategoryPersonal, CategoryHealth, CategoryLearning, CategorySocial,
	CategoryBreak, CategoryCommute, CategoryMeal, CategoryPlanning, CategoryOther,
}

func (c BlockCategory) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c BlockCategory) Icon() string {
	switch c {
	case CategoryWork:
		return "💼"
	case CategoryPersonal:
		return "👤"
	case CategoryHealth:
		return "❤️"
	case CategoryLearning:
		return "📚"
	case CategorySocial:
		return "👥"
	case CategoryBreak:
		return "⏸️"
	case CategoryCommute:
		return "🚗"
	case CategoryMeal:
		return "🍴"
	case CategoryPlanning:
		return "📅"
	default:
		return "▫️"
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// BlockCategory maps a task priority to the category used when the task is
// placed on the schedule.
func (p Priority) BlockCategory() BlockCategory {
	switch p {
	case PriorityHigh:
		return CategoryWork
	case PriorityMedium:
		return CategoryPersonal
	default:
		return CategoryOther
	}
}

type DimensionType string

const (
	DimensionHealth        DimensionType = "Health"
	DimensionWealth        DimensionType = "Wealth"
	DimensionRelationships DimensionType = "Relationships"
	DimensionCareer        DimensionType = "Career"
	DimensionPersonal      DimensionType = "Personal"
	DimensionFun           DimensionType = "Fun"
)

var AllDimensions = []DimensionType{
	DimensionHealth, DimensionWealth, DimensionRelationships,
	DimensionCareer, DimensionPersonal, DimensionFun,
}

func (d DimensionType) IsValid() bool {
	switch d {
	case DimensionHealth, DimensionWealth, DimensionRelationships, DimensionCareer, DimensionPersonal, DimensionFun:
		return true
	default:
		return false
	}
}
