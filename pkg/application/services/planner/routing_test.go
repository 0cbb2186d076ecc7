package planner

import (
	"testing"
	"time"

	"github.com/metalflow/scheduler/pkg/domain/entities"
)

func routeRow(productID, version, order int, enabled bool, start time.Time, end *time.Time) *entities.ProductOperationRoute {
	return &entities.ProductOperationRoute{
		ProductID:       productID,
		OperationTypeID: order,
		RouteVersion: entities.RouteVersion{
			Version:        version,
			EffectiveStart: start,
			EffectiveEnd:   end,
			Enabled:        enabled,
			Order:          order,
		},
	}
}

func TestResolveActive_PicksHighestActiveVersion(t *testing.T) {
	at := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	longAgo := at.AddDate(-5, 0, 0)

	rows := []*entities.ProductOperationRoute{
		routeRow(1, 1, 1, true, longAgo, nil),
		routeRow(1, 1, 2, true, longAgo, nil),
		routeRow(1, 2, 1, true, longAgo, nil),
	}

	active := resolveActive(rows, at, func(r *entities.ProductOperationRoute) int { return r.ProductID })

	steps := active[1]
	if len(steps) != 1 {
		t.Fatalf("Expected 1 step from version 2, got %d", len(steps))
	}
	if steps[0].Version != 2 {
		t.Errorf("Expected version 2 to win, got version %d", steps[0].Version)
	}
}

func TestResolveActive_IgnoresVersionsOutsideEffectiveWindow(t *testing.T) {
	at := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	longAgo := at.AddDate(-5, 0, 0)
	expired := at.AddDate(0, -1, 0)

	rows := []*entities.ProductOperationRoute{
		routeRow(1, 1, 1, true, longAgo, nil),
		// Version 2 expired a month before the reference date.
		routeRow(1, 2, 1, true, longAgo, &expired),
		// Version 3 only becomes effective next year.
		routeRow(1, 3, 1, true, at.AddDate(1, 0, 0), nil),
	}

	active := resolveActive(rows, at, func(r *entities.ProductOperationRoute) int { return r.ProductID })

	steps := active[1]
	if len(steps) != 1 {
		t.Fatalf("Expected 1 active step, got %d", len(steps))
	}
	if steps[0].Version != 1 {
		t.Errorf("Expected version 1 to remain active, got version %d", steps[0].Version)
	}
}

func TestResolveActive_FiltersDisabledRowsOfWinningVersion(t *testing.T) {
	at := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	longAgo := at.AddDate(-5, 0, 0)

	rows := []*entities.ProductOperationRoute{
		routeRow(1, 2, 1, true, longAgo, nil),
		routeRow(1, 2, 2, false, longAgo, nil),
		routeRow(1, 2, 3, true, longAgo, nil),
	}

	active := resolveActive(rows, at, func(r *entities.ProductOperationRoute) int { return r.ProductID })

	steps := active[1]
	if len(steps) != 2 {
		t.Fatalf("Expected 2 enabled steps, got %d", len(steps))
	}
	for _, step := range steps {
		if step.Order == 2 {
			t.Error("Disabled step 2 should have been filtered out")
		}
	}
}

func TestResolveActive_OrdersStepsByPosition(t *testing.T) {
	at := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	longAgo := at.AddDate(-5, 0, 0)

	rows := []*entities.ProductOperationRoute{
		routeRow(1, 1, 3, true, longAgo, nil),
		routeRow(1, 1, 1, true, longAgo, nil),
		routeRow(1, 1, 2, true, longAgo, nil),
	}

	active := resolveActive(rows, at, func(r *entities.ProductOperationRoute) int { return r.ProductID })

	steps := active[1]
	if len(steps) != 3 {
		t.Fatalf("Expected 3 steps, got %d", len(steps))
	}
	for i, step := range steps {
		if step.Order != i+1 {
			t.Errorf("Expected step order %d at position %d, got %d", i+1, i, step.Order)
		}
	}
}

func TestResolveActive_OwnersWithoutActiveRowsAreAbsent(t *testing.T) {
	at := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	rows := []*entities.ProductOperationRoute{
		routeRow(1, 1, 1, false, at.AddDate(-1, 0, 0), nil),
		routeRow(2, 1, 1, true, at.AddDate(-1, 0, 0), nil),
	}

	active := resolveActive(rows, at, func(r *entities.ProductOperationRoute) int { return r.ProductID })

	if _, ok := active[1]; ok {
		t.Error("Product 1 has no active rows and should be absent")
	}
	if _, ok := active[2]; !ok {
		t.Error("Product 2 has an active row and should be present")
	}
}

func TestResolveStepWorkCenter(t *testing.T) {
	at := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	longAgo := at.AddDate(-5, 0, 0)
	active := entities.RouteVersion{Version: 1, EffectiveStart: longAgo, Enabled: true}

	data := &planningData{
		workCenters: map[int]*entities.WorkCenter{
			101: {ID: 101, Name: "Melt Shop", LineID: 10, Enabled: true},
			102: {ID: 102, Name: "Rolling Mill", LineID: 10, Enabled: true},
		},
	}
	routes := &activeRoutes{
		line: map[int][]*entities.LineWorkCenterRoute{
			10: {
				{LineID: 10, WorkCenterID: 101, TransportTimeMinutes: 15, RouteVersion: active},
				{LineID: 10, WorkCenterID: 102, TransportTimeMinutes: 10, RouteVersion: active},
			},
		},
		workCenter: map[int][]*entities.WorkCenterOperationRoute{
			101: {{WorkCenterID: 101, OperationTypeID: 1, RouteVersion: active}},
			102: {{WorkCenterID: 102, OperationTypeID: 3, RouteVersion: active}},
		},
	}

	wc, lineStep := resolveStepWorkCenter(data, routes, 10, 3)
	if wc == nil {
		t.Fatal("Expected to resolve a work center for operation type 3")
	}
	if wc.ID != 102 {
		t.Errorf("Expected work center 102, got %d", wc.ID)
	}
	if lineStep == nil || lineStep.WorkCenterID != 102 {
		t.Error("Expected the line route step reaching work center 102")
	}

	wc, lineStep = resolveStepWorkCenter(data, routes, 10, 9)
	if wc != nil || lineStep != nil {
		t.Error("Expected nils for an operation type no work center performs")
	}
}
