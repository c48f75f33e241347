// AngelaMos | 2026
// workouts.go

package catalog

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type Workout struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	DurationLabel   string     `json:"duration_label"`
	CalorieEstimate int        `json:"calorie_estimate"`
	Difficulty      Difficulty `json:"difficulty"`
	Exercises       []string   `json:"exercises"`
}

var workouts = []Workout{
	{
		ID:              1,
		Name:            "Treino de Peito e Tríceps",
		DurationLabel:   "45 min",
		CalorieEstimate: 320,
		Difficulty:      DifficultyIntermediate,
		Exercises: []string{
			"Supino reto - 4x12",
			"Supino inclinado - 3x12",
			"Crucifixo - 3x15",
			"Tríceps testa - 3x12",
			"Tríceps corda - 3x15",
		},
	},
	{
		ID:              2,
		Name:            "Treino de Costas e Bíceps",
		DurationLabel:   "50 min",
		CalorieEstimate: 350,
		Difficulty:      DifficultyIntermediate,
		Exercises: []string{
			"Barra fixa - 4x10",
			"Remada curvada - 4x12",
			"Puxada frontal - 3x12",
			"Rosca direta - 3x12",
			"Rosca martelo - 3x12",
		},
	},
	{
		ID:              3,
		Name:            "Treino de Pernas",
		DurationLabel:   "60 min",
		CalorieEstimate: 420,
		Difficulty:      DifficultyAdvanced,
		Exercises: []string{
			"Agachamento livre - 4x12",
			"Leg press - 4x15",
			"Cadeira extensora - 3x15",
			"Cadeira flexora - 3x15",
			"Panturrilha em pé - 4x20",
		},
	},
	{
		ID:              4,
		Name:            "Treino de Ombros e Abdômen",
		DurationLabel:   "40 min",
		CalorieEstimate: 280,
		Difficulty:      DifficultyBeginner,
		Exercises: []string{
			"Desenvolvimento - 4x12",
			"Elevação lateral - 3x15",
			"Elevação frontal - 3x12",
			"Abdominal supra - 3x20",
			"Prancha - 3x60seg",
		},
	},
}

// Workouts returns a copy of the workout plan in display order.
func Workouts() []Workout {
	out := make([]Workout, len(workouts))
	for i, w := range workouts {
		w.Exercises = append([]string(nil), w.Exercises...)
		out[i] = w
	}
	return out
}

func WorkoutByID(id int) (Workout, bool) {
	for _, w := range workouts {
		if w.ID == id {
			w.Exercises = append([]string(nil), w.Exercises...)
			return w, true
		}
	}
	return Workout{}, false
}

func HasWorkout(id int) bool {
	_, ok := WorkoutByID(id)
	return ok
}

func WorkoutCount() int {
	return len(workouts)
}
