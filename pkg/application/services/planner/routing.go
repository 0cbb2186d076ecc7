package planner

import (
	"sort"
	"time"

	"github.com/metalflow/scheduler/pkg/domain/entities"
)

// activeRoutes holds, per routing relation, the ordered step list of the
// single version active at the planning horizon start, keyed by owning
// entity ID. Owners with no active rows are simply absent.
type activeRoutes struct {
	product    map[int][]*entities.ProductOperationRoute
	line       map[int][]*entities.LineWorkCenterRoute
	workCenter map[int][]*entities.WorkCenterOperationRoute
}

// resolveRoutes collapses the raw versioned route rows into their active
// slices at the reference date.
func resolveRoutes(data *planningData, at time.Time) *activeRoutes {
	return &activeRoutes{
		product: resolveActive(data.productRoutes, at,
			func(r *entities.ProductOperationRoute) int { return r.ProductID }),
		line: resolveActive(data.lineRoutes, at,
			func(r *entities.LineWorkCenterRoute) int { return r.LineID }),
		workCenter: resolveActive(data.workCenterRoutes, at,
			func(r *entities.WorkCenterOperationRoute) int { return r.WorkCenterID }),
	}
}

// resolveActive selects, per owning entity, the highest version with an
// effective window containing the reference date, then returns all enabled
// rows of that exact version ordered by step position. Owners without any
// active row yield no entry.
func resolveActive[T interface{ RouteMeta() entities.RouteVersion }](rows []T, at time.Time, ownerID func(T) int) map[int][]T {
	winning := make(map[int]int)
	for _, row := range rows {
		meta := row.RouteMeta()
		if !meta.ActiveAt(at) {
			continue
		}
		owner := ownerID(row)
		if best, ok := winning[owner]; !ok || meta.Version > best {
			winning[owner] = meta.Version
		}
	}

	active := make(map[int][]T, len(winning))
	for _, row := range rows {
		meta := row.RouteMeta()
		if !meta.Enabled {
			continue
		}
		owner := ownerID(row)
		if version, ok := winning[owner]; ok && meta.Version == version {
			active[owner] = append(active[owner], row)
		}
	}

	for owner := range active {
		steps := active[owner]
		sort.SliceStable(steps, func(i, j int) bool {
			return steps[i].RouteMeta().Order < steps[j].RouteMeta().Order
		})
	}
	return active
}

// resolveStepWorkCenter walks a line's active work-center sequence and
// returns the first work center whose active operation route contains the
// operation type, together with the line route step that reaches it. Returns
// nils when no work center on the line can perform the operation type.
func resolveStepWorkCenter(data *planningData, routes *activeRoutes, lineID, operationTypeID int) (*entities.WorkCenter, *entities.LineWorkCenterRoute) {
	for _, lineStep := range routes.line[lineID] {
		for _, wcStep := range routes.workCenter[lineStep.WorkCenterID] {
			if wcStep.OperationTypeID == operationTypeID {
				if wc, ok := data.workCenters[lineStep.WorkCenterID]; ok {
					return wc, lineStep
				}
			}
		}
	}
	return nil, nil
}
