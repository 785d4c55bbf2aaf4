// Package shopping merges the ingredients of planned meals into a shopping list.
package shopping

import (
	"strings"

	"github.com/pageza/mealprep/backend/internal/models"
)

// QuantitySeparator joins the quantities collected for one ingredient.
const QuantitySeparator = ", "

// Line is one entry of a shopping list.
type Line struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Result is the outcome of Aggregate. Skipped counts the ingredient lines
// that were ignored because their name or quantity was missing.
type Result struct {
	Lines   []Line
	Skipped int
}

// Aggregate walks every planned meal's ingredient links in order and groups
// them by exact ingredient name. Quantities are free text, so they are never
// summed: each group keeps every quantity it saw, joined in encounter order.
// Groups come out in the order their name was first seen.
//
// Plans must already carry their meal, links and ingredients. Aggregate does
// no I/O and returns the same result for the same input.
func Aggregate(plans []models.MealPlan) Result {
	res := Result{Lines: []Line{}}
	index := make(map[string]int)
	var quantities [][]string

	for _, plan := range plans {
		if plan.Meal == nil {
			continue
		}
		for _, link := range plan.Meal.Ingredients {
			if link.Ingredient == nil || link.Quantity == nil {
				res.Skipped++
				continue
			}

			name := link.Ingredient.Name
			i, ok := index[name]
			if !ok {
				i = len(res.Lines)
				index[name] = i
				res.Lines = append(res.Lines, Line{Name: name})
				quantities = append(quantities, nil)
			}
			quantities[i] = append(quantities[i], *link.Quantity)
		}
	}

	for i := range res.Lines {
		res.Lines[i].Quantity = strings.Join(quantities[i], QuantitySeparator)
	}
	return res
}
