package planner

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/metalflow/scheduler/pkg/application/dto"
	"github.com/metalflow/scheduler/pkg/domain/entities"
)

// machineSlot keys the machines of a work center that perform one operation
// type.
type machineSlot struct {
	workCenterID    int
	operationTypeID int
}

type surplusKey struct {
	productID    int
	workCenterID int
}

// planningData is the read-only snapshot one planning run operates on. It is
// assembled once after the data barrier and never mutated afterwards.
type planningData struct {
	lines            []*entities.Line
	linesByID        map[int]*entities.Line
	workCenters      map[int]*entities.WorkCenter
	operationsByID   map[int]*entities.Operation
	machines         map[machineSlot][]*entities.Operation
	products         map[int]*entities.Product
	surplus          map[surplusKey]decimal.Decimal
	candidateLines   map[int][]int // product ID -> distinct line IDs, ascending
	productRoutes    []*entities.ProductOperationRoute
	lineRoutes       []*entities.LineWorkCenterRoute
	workCenterRoutes []*entities.WorkCenterOperationRoute
	orders           []*entities.ProductionOrder
}

// loadData fetches all reference data concurrently and waits for every read
// to complete before assembling the lookups. The reads are independent; the
// first error cancels the rest.
func (p *Planner) loadData(ctx context.Context, input dto.PlanningInput) (*planningData, error) {
	var (
		lines            []*entities.Line
		workCenters      []*entities.WorkCenter
		operations       []*entities.Operation
		products         []*entities.Product
		surplus          []*entities.Surplus
		productRoutes    []*entities.ProductOperationRoute
		lineRoutes       []*entities.LineWorkCenterRoute
		workCenterRoutes []*entities.WorkCenterOperationRoute
		availability     []*entities.ProductAvailability
		orders           []*entities.ProductionOrder
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { lines, err = p.data.Lines.AllEnabled(gctx); return })
	g.Go(func() (err error) { workCenters, err = p.data.WorkCenters.AllEnabled(gctx); return })
	g.Go(func() (err error) { operations, err = p.data.Operations.AllEnabled(gctx); return })
	g.Go(func() (err error) { products, err = p.data.Products.AllEnabled(gctx); return })
	g.Go(func() (err error) { surplus, err = p.data.Surplus.AllEnabled(gctx); return })
	g.Go(func() (err error) { productRoutes, err = p.data.Routing.ProductRoutes(gctx); return })
	g.Go(func() (err error) { lineRoutes, err = p.data.Routing.LineRoutes(gctx); return })
	g.Go(func() (err error) { workCenterRoutes, err = p.data.Routing.WorkCenterRoutes(gctx); return })
	g.Go(func() (err error) { availability, err = p.data.Availability.AllEnabled(gctx); return })
	g.Go(func() (err error) { orders, err = p.data.Orders.PendingOrders(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading planning data: %w", err)
	}

	if len(input.ProductionOrderIDs) > 0 {
		wanted := make(map[int]bool, len(input.ProductionOrderIDs))
		for _, id := range input.ProductionOrderIDs {
			wanted[id] = true
		}
		filtered := orders[:0]
		for _, order := range orders {
			if wanted[order.ID] {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}

	d := &planningData{
		lines:            lines,
		linesByID:        make(map[int]*entities.Line, len(lines)),
		workCenters:      make(map[int]*entities.WorkCenter, len(workCenters)),
		operationsByID:   make(map[int]*entities.Operation, len(operations)),
		machines:         make(map[machineSlot][]*entities.Operation),
		products:         make(map[int]*entities.Product, len(products)),
		surplus:          make(map[surplusKey]decimal.Decimal),
		candidateLines:   make(map[int][]int),
		productRoutes:    productRoutes,
		lineRoutes:       lineRoutes,
		workCenterRoutes: workCenterRoutes,
		orders:           orders,
	}
	for _, line := range lines {
		d.linesByID[line.ID] = line
	}
	for _, wc := range workCenters {
		d.workCenters[wc.ID] = wc
	}
	for _, op := range operations {
		if !op.Enabled {
			continue
		}
		d.operationsByID[op.ID] = op
		slot := machineSlot{workCenterID: op.WorkCenterID, operationTypeID: op.OperationTypeID}
		d.machines[slot] = append(d.machines[slot], op)
	}
	for _, product := range products {
		d.products[product.ID] = product
	}
	for _, s := range surplus {
		key := surplusKey{productID: s.ProductID, workCenterID: s.WorkCenterID}
		d.surplus[key] = d.surplus[key].Add(s.Quantity)
	}

	seen := make(map[[2]int]bool, len(availability))
	for _, avail := range availability {
		if !avail.Enabled {
			continue
		}
		pair := [2]int{avail.ProductID, avail.LineID}
		if seen[pair] {
			continue
		}
		seen[pair] = true
		d.candidateLines[avail.ProductID] = append(d.candidateLines[avail.ProductID], avail.LineID)
	}
	for productID := range d.candidateLines {
		sort.Ints(d.candidateLines[productID])
	}

	return d, nil
}

// surplusAt returns the total surplus of a product at a work center.
func (d *planningData) surplusAt(productID, workCenterID int) decimal.Decimal {
	return d.surplus[surplusKey{productID: productID, workCenterID: workCenterID}]
}

// machinesAt returns the enabled machines of a work center that perform the
// operation type.
func (d *planningData) machinesAt(workCenterID, operationTypeID int) []*entities.Operation {
	return d.machines[machineSlot{workCenterID: workCenterID, operationTypeID: operationTypeID}]
}
