package model

// CategoryGroup pairs a category label with its timers in creation order.
type CategoryGroup struct {
	Name   string
	Timers []Timer
}

// GroupByCategory projects a snapshot into per-category groups.
// Categories appear in first-reference order and own no state of their
// own; the projection is recomputed from scratch for every snapshot.
func GroupByCategory(timers []Timer) []CategoryGroup {
	index := make(map[string]int, len(timers))
	groups := make([]CategoryGroup, 0, len(timers))
	for _, timer := range timers {
		position, seen := index[timer.Category]
		if !seen {
			position = len(groups)
			index[timer.Category] = position
			groups = append(groups, CategoryGroup{Name: timer.Category})
		}
		groups[position].Timers = append(groups[position].Timers, timer)
	}
	return groups
}
