package planner

import (
	"fmt"
	"time"

	log "github.com/golang/glog"
	"github.com/shopspring/decimal"

	"github.com/metalflow/scheduler/pkg/domain/entities"
)

// itemPlan carries the quantities derived for one order item before any
// solver variable exists: demand netted against surplus, the run count, and
// the surplus the rounded-up production will generate.
type itemPlan struct {
	item    *entities.ProductionOrderItem
	order   *entities.ProductionOrder
	product *entities.Product
	route   []*entities.ProductOperationRoute

	firstWorkCenter  *entities.WorkCenter
	initialSurplus   decimal.Decimal
	netDemand        decimal.Decimal
	runs             int
	producedQty      decimal.Decimal
	generatedSurplus decimal.Decimal
	// approxSingleRun marks the lower-confidence fallback taken when no
	// first relevant work center could be resolved: one unsized run, no
	// surplus accounting.
	approxSingleRun bool
}

// excludedItem is an order item dropped before model building. It never gets
// solver variables and is reported unscheduled with its reason in every
// terminal outcome.
type excludedItem struct {
	item    *entities.ProductionOrderItem
	order   *entities.ProductionOrder
	product *entities.Product // nil when the product itself is unresolvable
	reason  string
}

// preprocess nets each order item's demand against surplus at its first
// relevant work center and derives run count and per-run quantities. Items
// whose product or product route cannot be resolved are excluded.
func preprocess(data *planningData, routes *activeRoutes, at time.Time) ([]*itemPlan, []excludedItem) {
	var plans []*itemPlan
	var excluded []excludedItem

	for _, order := range data.orders {
		for i := range order.Items {
			item := &order.Items[i]
			if !item.Enabled {
				continue
			}

			product, ok := data.products[item.ProductID]
			if !ok {
				log.Warningf("product %d not found for order item %d, excluding item", item.ProductID, item.ID)
				excluded = append(excluded, excludedItem{
					item:   item,
					order:  order,
					reason: fmt.Sprintf("product %d not found", item.ProductID),
				})
				continue
			}

			route := routes.product[item.ProductID]
			if len(route) == 0 {
				log.Warningf("no active operation route for product %q at %s, excluding order item %d", product.Name, at.Format(time.RFC3339), item.ID)
				excluded = append(excluded, excludedItem{
					item:    item,
					order:   order,
					product: product,
					reason:  fmt.Sprintf("no active operation route for product %q at %s", product.Name, at.Format("2006-01-02")),
				})
				continue
			}

			plan := &itemPlan{
				item:    item,
				order:   order,
				product: product,
				route:   route,
			}
			plan.firstWorkCenter = firstRelevantWorkCenter(data, routes, item.ProductID, route[0].OperationTypeID)

			if plan.firstWorkCenter == nil {
				// Fallback: one unsized run, no surplus accounting. This
				// understates production time for large quantities; kept as a
				// known approximation of the netting step.
				log.Warningf("no work center performing operation type %d found for product %q, assuming a single unsized run for item %d", route[0].OperationTypeID, product.Name, item.ID)
				plan.netDemand = item.Quantity
				plan.producedQty = item.Quantity
				if item.Quantity.IsPositive() {
					plan.runs = 1
				}
				plan.approxSingleRun = true
				plans = append(plans, plan)
				continue
			}

			plan.initialSurplus = data.surplusAt(item.ProductID, plan.firstWorkCenter.ID)
			plan.netDemand = decimal.Max(decimal.Zero, item.Quantity.Sub(plan.initialSurplus))
			if plan.netDemand.IsPositive() {
				batch := plan.firstWorkCenter.OptimalBatch
				if batch.IsPositive() {
					plan.runs = int(plan.netDemand.Div(batch).Ceil().IntPart())
					plan.producedQty = batch.Mul(decimal.NewFromInt(int64(plan.runs)))
				} else {
					// Degenerate batch size: clamp to one run instead of
					// dividing by zero.
					log.Warningf("work center %q has optimal batch %s, assuming one run for item %d", plan.firstWorkCenter.Name, batch, item.ID)
					plan.runs = 1
					plan.producedQty = plan.netDemand
				}
			}
			plan.generatedSurplus = decimal.Max(decimal.Zero, plan.producedQty.Sub(plan.netDemand))

			log.V(1).Infof("item %d (product %q): demand=%s surplus=%s net=%s runs=%d produced=%s generated=%s (work center %q)",
				item.ID, product.Name, item.Quantity, plan.initialSurplus, plan.netDemand, plan.runs, plan.producedQty, plan.generatedSurplus, plan.firstWorkCenter.Name)
			plans = append(plans, plan)
		}
	}

	return plans, excluded
}

// firstRelevantWorkCenter finds the first work center able to perform the
// operation type, walking the active route of every line the product is
// available on.
func firstRelevantWorkCenter(data *planningData, routes *activeRoutes, productID, operationTypeID int) *entities.WorkCenter {
	for _, lineID := range data.candidateLines[productID] {
		if wc, _ := resolveStepWorkCenter(data, routes, lineID, operationTypeID); wc != nil {
			return wc
		}
	}
	return nil
}
