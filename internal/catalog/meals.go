// AngelaMos | 2026
// meals.go

package catalog

type Meal struct {
	Name     string   `json:"name"`
	Time     string   `json:"time"`
	Foods    []string `json:"foods"`
	Calories int      `json:"calories"`
	Protein  int      `json:"protein_g"`
	Carbs    int      `json:"carbs_g"`
	Fats     int      `json:"fats_g"`
}

type MealTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein_g"`
	Carbs    int `json:"carbs_g"`
	Fats     int `json:"fats_g"`
}

var meals = []Meal{
	{
		Name:     "Café da Manhã",
		Time:     "07:00",
		Foods:    []string{"2 ovos mexidos", "2 fatias de pão integral", "1 banana", "Café com leite"},
		Calories: 450,
		Protein:  25,
		Carbs:    55,
		Fats:     12,
	},
	{
		Name:     "Lanche da Manhã",
		Time:     "10:00",
		Foods:    []string{"1 iogurte grego", "30g de granola", "1 maçã"},
		Calories: 280,
		Protein:  15,
		Carbs:    40,
		Fats:     8,
	},
	{
		Name:     "Almoço",
		Time:     "12:30",
		Foods:    []string{"150g de frango grelhado", "1 xícara de arroz integral", "Salada verde", "Legumes cozidos"},
		Calories: 620,
		Protein:  45,
		Carbs:    70,
		Fats:     15,
	},
	{
		Name:     "Lanche da Tarde",
		Time:     "16:00",
		Foods:    []string{"1 shake de whey protein", "1 banana", "Pasta de amendoim"},
		Calories: 350,
		Protein:  30,
		Carbs:    35,
		Fats:     10,
	},
	{
		Name:     "Jantar",
		Time:     "19:30",
		Foods:    []string{"150g de peixe grelhado", "Batata doce", "Brócolis", "Salada"},
		Calories: 480,
		Protein:  40,
		Carbs:    50,
		Fats:     12,
	},
}

func Meals() []Meal {
	out := make([]Meal, len(meals))
	for i, m := range meals {
		m.Foods = append([]string(nil), m.Foods...)
		out[i] = m
	}
	return out
}

func SumMeals(ms []Meal) MealTotals {
	var t MealTotals
	for _, m := range ms {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fats += m.Fats
	}
	return t
}

func MealPlanTotals() MealTotals {
	return SumMeals(meals)
}
