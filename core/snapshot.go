package core

import (
	"sort"
	"time"

	"github.com/svisuals/seq4d/schema"
)

// BuildSnapshot classifies every assigned product at a single date. Tasks
// starting after the visualization finish are ignored; tasks finishing
// before the visualization start already ran, so their outputs are complete
// and their inputs gone. Tasks without usable dates for the source leave
// their products unassigned. Zero viz bounds disable the respective check.
func BuildSnapshot(date time.Time, vizStart, vizFinish time.Time, roots []schema.Task, source schema.DateSource) schema.SnapshotResult {
	states := map[schema.ProductState][]string{}
	add := func(state schema.ProductState, productID string) {
		states[state] = append(states[state], productID)
	}

	var walk func(tasks []schema.Task)
	walk = func(tasks []schema.Task) {
		for _, task := range tasks {
			walk(task.Children)

			dates, ok := task.DatesFor(source)
			if !ok {
				// No usable dates means the schedule says nothing about
				// these products at any point in time.
				for _, assignment := range task.Assignments {
					add(schema.Unassigned, assignment.ProductID)
				}
				continue
			}
			if !vizFinish.IsZero() && dates.Start.After(vizFinish) {
				continue
			}

			var outputState, inputState schema.ProductState
			switch {
			case !vizStart.IsZero() && dates.Finish.Before(vizStart):
				outputState, inputState = schema.Completed, schema.Demolished
			case date.Before(dates.Start):
				outputState, inputState = schema.ToBuild, schema.ToDemolish
			case !date.After(dates.Finish):
				outputState, inputState = schema.InConstruction, schema.InDemolition
			default:
				outputState, inputState = schema.Completed, schema.Demolished
			}

			for _, assignment := range task.Assignments {
				if assignment.Relationship == schema.OutputRelationship {
					add(outputState, assignment.ProductID)
				} else {
					add(inputState, assignment.ProductID)
				}
			}
		}
	}
	walk(roots)

	for state := range states {
		sort.Strings(states[state])
	}
	return schema.SnapshotResult{Date: date, Source: source, States: states}
}
