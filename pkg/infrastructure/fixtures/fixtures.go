// Package fixtures builds the demo steel-mill dataset used by the CLI and by
// integration tests. Every call constructs a fresh dataset; nothing here is
// shared process-wide.
package fixtures

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/metalflow/scheduler/pkg/domain/entities"
	"github.com/metalflow/scheduler/pkg/infrastructure/repositories/memory"
)

// Operation type IDs of the demo dataset.
const (
	OpTypeMelting  = 1
	OpTypeRefining = 2
	OpTypeRolling  = 3
	OpTypeCutting  = 4
)

// Dataset bundles the in-memory repositories of one demo scenario.
type Dataset struct {
	Lines        *memory.LineRepository
	WorkCenters  *memory.WorkCenterRepository
	Operations   *memory.OperationRepository
	Products     *memory.ProductRepository
	Surplus      *memory.SurplusRepository
	Routing      *memory.RoutingRepository
	Availability *memory.AvailabilityRepository
	Orders       *memory.ProductionOrderRepository
}

// NewDataset returns an empty dataset ready to be populated.
func NewDataset() *Dataset {
	return &Dataset{
		Lines:        memory.NewLineRepository(),
		WorkCenters:  memory.NewWorkCenterRepository(),
		Operations:   memory.NewOperationRepository(),
		Products:     memory.NewProductRepository(),
		Surplus:      memory.NewSurplusRepository(),
		Routing:      memory.NewRoutingRepository(),
		Availability: memory.NewAvailabilityRepository(),
		Orders:       memory.NewProductionOrderRepository(),
	}
}

// DemoDataset builds the two-line steel mill scenario: a main line with melt
// shop, rolling mill and cutting, a secondary line with melt shop and
// refining, three alloy products with versioned routes, surplus stock, and
// two pending orders anchored at now.
func DemoDataset(now time.Time) *Dataset {
	d := NewDataset()
	longAgo := now.AddDate(-10, 0, 0)
	active := entities.RouteVersion{Version: 1, EffectiveStart: longAgo, Enabled: true}

	// Lines.
	d.Lines.Add(entities.Line{ID: 10, Name: "Main Line", Enabled: true})
	d.Lines.Add(entities.Line{ID: 20, Name: "Secondary Line", Enabled: true})

	// Work centers.
	d.WorkCenters.Add(entities.WorkCenter{ID: 101, Name: "Melt Shop L1", LineID: 10, OptimalBatch: decimal.NewFromInt(50), Enabled: true})
	d.WorkCenters.Add(entities.WorkCenter{ID: 102, Name: "Rolling Mill L1", LineID: 10, OptimalBatch: decimal.NewFromInt(30), Enabled: true})
	d.WorkCenters.Add(entities.WorkCenter{ID: 103, Name: "Cutting L1", LineID: 10, OptimalBatch: decimal.NewFromInt(10), Enabled: true})
	d.WorkCenters.Add(entities.WorkCenter{ID: 201, Name: "Melt Shop L2", LineID: 20, OptimalBatch: decimal.NewFromInt(40), Enabled: true})
	d.WorkCenters.Add(entities.WorkCenter{ID: 202, Name: "Refining L2", LineID: 20, OptimalBatch: decimal.NewFromInt(20), Enabled: true})

	// Machines.
	d.Operations.Add(entities.Operation{ID: 1011, Name: "Furnace 01 L1", WorkCenterID: 101, OperationTypeID: OpTypeMelting, Capacity: 10, SetupTimeMinutes: 60, Enabled: true})
	d.Operations.Add(entities.Operation{ID: 1012, Name: "Furnace 02 L1", WorkCenterID: 101, OperationTypeID: OpTypeMelting, Capacity: 12, SetupTimeMinutes: 75, Enabled: true})
	d.Operations.Add(entities.Operation{ID: 1021, Name: "Roller 01 L1", WorkCenterID: 102, OperationTypeID: OpTypeRolling, Capacity: 20, SetupTimeMinutes: 30, Enabled: true})
	d.Operations.Add(entities.Operation{ID: 1031, Name: "Cutter 01 L1", WorkCenterID: 103, OperationTypeID: OpTypeCutting, Capacity: 50, SetupTimeMinutes: 15, Enabled: true})
	d.Operations.Add(entities.Operation{ID: 2011, Name: "Furnace 01 L2", WorkCenterID: 201, OperationTypeID: OpTypeMelting, Capacity: 8, SetupTimeMinutes: 90, Enabled: true})
	d.Operations.Add(entities.Operation{ID: 2021, Name: "Refiner 01 L2", WorkCenterID: 202, OperationTypeID: OpTypeRefining, Capacity: 15, SetupTimeMinutes: 45, Enabled: true})

	// Products.
	d.Products.Add(entities.Product{ID: 1001, Name: "Alloy A", UnitPricePerTon: decimal.NewFromInt(1200), ProfitMargin: decimal.NewFromFloat(0.15), Priority: 1, PenaltyCost: decimal.NewFromInt(50), Enabled: true})
	d.Products.Add(entities.Product{ID: 1002, Name: "Alloy B", UnitPricePerTon: decimal.NewFromInt(1500), ProfitMargin: decimal.NewFromFloat(0.20), Priority: 2, PenaltyCost: decimal.NewFromInt(70), Enabled: true})
	d.Products.Add(entities.Product{ID: 1003, Name: "Alloy C", UnitPricePerTon: decimal.NewFromInt(1000), ProfitMargin: decimal.NewFromFloat(0.10), Priority: 1, PenaltyCost: decimal.NewFromInt(40), Enabled: true})

	// Product routes. Alloy A: melting -> rolling -> cutting.
	d.Routing.AddProductRoute(entities.ProductOperationRoute{ID: 501, ProductID: 1001, OperationTypeID: OpTypeMelting, RouteVersion: step(active, 1)})
	d.Routing.AddProductRoute(entities.ProductOperationRoute{ID: 502, ProductID: 1001, OperationTypeID: OpTypeRolling, RouteVersion: step(active, 2)})
	d.Routing.AddProductRoute(entities.ProductOperationRoute{ID: 503, ProductID: 1001, OperationTypeID: OpTypeCutting, RouteVersion: step(active, 3)})
	// Alloy B: melting -> refining.
	d.Routing.AddProductRoute(entities.ProductOperationRoute{ID: 504, ProductID: 1002, OperationTypeID: OpTypeMelting, RouteVersion: step(active, 1)})
	d.Routing.AddProductRoute(entities.ProductOperationRoute{ID: 505, ProductID: 1002, OperationTypeID: OpTypeRefining, RouteVersion: step(active, 2)})
	// Alloy C: a superseded v1 (melting only) and the active v2
	// (melting -> rolling), both with open effective windows, so version
	// resolution has to pick v2.
	d.Routing.AddProductRoute(entities.ProductOperationRoute{ID: 506, ProductID: 1003, OperationTypeID: OpTypeMelting, RouteVersion: step(active, 1)})
	v2 := entities.RouteVersion{Version: 2, EffectiveStart: now.AddDate(-1, 0, 0), Enabled: true}
	d.Routing.AddProductRoute(entities.ProductOperationRoute{ID: 507, ProductID: 1003, OperationTypeID: OpTypeMelting, RouteVersion: step(v2, 1)})
	d.Routing.AddProductRoute(entities.ProductOperationRoute{ID: 508, ProductID: 1003, OperationTypeID: OpTypeRolling, RouteVersion: step(v2, 2)})

	// Line routes. Main Line: melt shop -> rolling mill -> cutting.
	d.Routing.AddLineRoute(entities.LineWorkCenterRoute{ID: 601, LineID: 10, WorkCenterID: 101, TransportTimeMinutes: 15, RouteVersion: step(active, 1)})
	d.Routing.AddLineRoute(entities.LineWorkCenterRoute{ID: 602, LineID: 10, WorkCenterID: 102, TransportTimeMinutes: 10, RouteVersion: step(active, 2)})
	d.Routing.AddLineRoute(entities.LineWorkCenterRoute{ID: 603, LineID: 10, WorkCenterID: 103, TransportTimeMinutes: 5, RouteVersion: step(active, 3)})
	// Secondary Line: melt shop -> refining.
	d.Routing.AddLineRoute(entities.LineWorkCenterRoute{ID: 604, LineID: 20, WorkCenterID: 201, TransportTimeMinutes: 20, RouteVersion: step(active, 1)})
	d.Routing.AddLineRoute(entities.LineWorkCenterRoute{ID: 605, LineID: 20, WorkCenterID: 202, TransportTimeMinutes: 10, RouteVersion: step(active, 2)})

	// Work center operation routes.
	d.Routing.AddWorkCenterRoute(entities.WorkCenterOperationRoute{ID: 701, WorkCenterID: 101, OperationTypeID: OpTypeMelting, TransportTimeMinutes: 5, RouteVersion: step(active, 1)})
	d.Routing.AddWorkCenterRoute(entities.WorkCenterOperationRoute{ID: 702, WorkCenterID: 102, OperationTypeID: OpTypeRolling, TransportTimeMinutes: 5, RouteVersion: step(active, 1)})
	d.Routing.AddWorkCenterRoute(entities.WorkCenterOperationRoute{ID: 703, WorkCenterID: 103, OperationTypeID: OpTypeCutting, TransportTimeMinutes: 0, RouteVersion: step(active, 1)})
	d.Routing.AddWorkCenterRoute(entities.WorkCenterOperationRoute{ID: 704, WorkCenterID: 201, OperationTypeID: OpTypeMelting, TransportTimeMinutes: 5, RouteVersion: step(active, 1)})
	d.Routing.AddWorkCenterRoute(entities.WorkCenterOperationRoute{ID: 705, WorkCenterID: 202, OperationTypeID: OpTypeRefining, TransportTimeMinutes: 0, RouteVersion: step(active, 1)})

	// Product availability.
	d.Availability.Add(entities.ProductAvailability{ID: 801, ProductID: 1001, LineID: 10, Enabled: true})
	d.Availability.Add(entities.ProductAvailability{ID: 802, ProductID: 1002, LineID: 20, Enabled: true})
	d.Availability.Add(entities.ProductAvailability{ID: 803, ProductID: 1003, LineID: 10, Enabled: true})
	d.Availability.Add(entities.ProductAvailability{ID: 804, ProductID: 1003, LineID: 20, Enabled: true})

	// Initial surplus stock.
	d.Surplus.Add(entities.Surplus{ID: 901, ProductID: 1001, WorkCenterID: 101, Quantity: decimal.NewFromInt(15), Enabled: true})
	d.Surplus.Add(entities.Surplus{ID: 902, ProductID: 1003, WorkCenterID: 201, Quantity: decimal.NewFromInt(5), Enabled: true})

	// Pending orders.
	order1 := mustCreateOrder(10001, "PO-001", now.Add(time.Hour), now.AddDate(0, 0, 3))
	mustAddItem(order1, 20001, 1001, decimal.NewFromInt(80))
	mustAddItem(order1, 20002, 1003, decimal.NewFromInt(50))
	order2 := mustCreateOrder(10002, "PO-002", now.Add(2*time.Hour), now.AddDate(0, 0, 2))
	mustAddItem(order2, 20003, 1002, decimal.NewFromInt(60))
	d.Orders.Add(order1)
	d.Orders.Add(order2)

	return d
}

// step copies a route version with the given step position.
func step(v entities.RouteVersion, order int) entities.RouteVersion {
	v.Order = order
	return v
}

// mustCreateOrder builds a validated order - panics on validation error
func mustCreateOrder(id int, orderNumber string, earliestStart, deadline time.Time) *entities.ProductionOrder {
	order, err := entities.NewProductionOrder(id, orderNumber, earliestStart, deadline)
	if err != nil {
		panic(err)
	}
	return order
}

// mustAddItem appends a validated item - panics on validation error
func mustAddItem(order *entities.ProductionOrder, id, productID int, quantity decimal.Decimal) {
	if err := order.AddItem(id, productID, quantity); err != nil {
		panic(err)
	}
}
