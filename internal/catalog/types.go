package catalog

// All is the sentinel criteria value that disables a clause.
const All = "All"

// Activity categories.
const (
	CategoryVirtual = "Virtual"
	CategoryOutdoor = "Outdoor"
	CategoryIndoor  = "Indoor"
)

// Activity difficulties.
const (
	DifficultyEasy        = "Easy"
	DifficultyModerate    = "Moderate"
	DifficultyChallenging = "Challenging"
)

// Event types.
const (
	EventVirtual  = "Virtual"
	EventInPerson = "In-Person"
	EventOutdoor  = "Outdoor"
)

var (
	activityCategories = []string{CategoryVirtual, CategoryOutdoor, CategoryIndoor}
	difficulties       = []string{DifficultyEasy, DifficultyModerate, DifficultyChallenging}
	eventTypes         = []string{EventVirtual, EventInPerson, EventOutdoor}
)

// Activity is a bookable team-building experience
type Activity struct {
	ID           int      `yaml:"id" bson:"_id" json:"id" validate:"gt=0"`
	Title        string   `yaml:"title" bson:"title" json:"title" validate:"required"`
	Description  string   `yaml:"description" bson:"description" json:"description" validate:"required"` // markdown
	Image        string   `yaml:"image" bson:"image" json:"image" validate:"omitempty,url"`
	Category     string   `yaml:"category" bson:"category" json:"category" validate:"oneof=Virtual Outdoor Indoor"`
	Duration     string   `yaml:"duration" bson:"duration" json:"duration"`
	Participants string   `yaml:"participants" bson:"participants" json:"participants"`
	Tags         []string `yaml:"tags" bson:"tags" json:"tags" validate:"dive,required"`
	Difficulty   string   `yaml:"difficulty" bson:"difficulty" json:"difficulty" validate:"oneof=Easy Moderate Challenging"`
}

// Event is a scheduled workshop or challenge
type Event struct {
	ID          int    `yaml:"id" bson:"_id" json:"id" validate:"gt=0"`
	Title       string `yaml:"title" bson:"title" json:"title" validate:"required"`
	Date        string `yaml:"date" bson:"date" json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `yaml:"time" bson:"time" json:"time"`
	Type        string `yaml:"type" bson:"type" json:"type" validate:"oneof=Virtual In-Person Outdoor"`
	Image       string `yaml:"image" bson:"image" json:"image" validate:"omitempty,url"`
	Description string `yaml:"description" bson:"description" json:"description" validate:"required"` // markdown
	Capacity    string `yaml:"capacity" bson:"capacity" json:"capacity"`
	Price       string `yaml:"price" bson:"price" json:"price"`
}

// Criteria holds the active filter selections. Empty Category or
// Difficulty behave like All; Search is matched verbatim.
type Criteria struct {
	Category   string
	Difficulty string
	Search     string
}

// Filters lists the options a filter control may offer.
type Filters struct {
	Categories   []string `json:"categories"`
	Difficulties []string `json:"difficulties"`
	EventTypes   []string `json:"eventTypes"`
}

// Options returns the filter choices, each led by All.
func Options() Filters {
	return Filters{
		Categories:   withAll(activityCategories),
		Difficulties: withAll(difficulties),
		EventTypes:   withAll(eventTypes),
	}
}

func withAll(values []string) []string {
	out := make([]string, 0, len(values)+1)
	out = append(out, All)
	return append(out, values...)
}
