package planner

import (
	"fmt"
	"sort"
	"time"

	log "github.com/golang/glog"
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	"github.com/shopspring/decimal"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/metalflow/scheduler/pkg/application/dto"
)

// materialize reads the solved variable assignments into the structured plan:
// scheduled runs with absolute timestamps, generated surplus, unscheduled
// items with reasons, and the estimated profit.
func materialize(result *dto.PlanResult, response *cmpb.CpSolverResponse, pm *planModel, data *planningData, plans []*itemPlan, excluded []excludedItem, horizonStart time.Time) {
	profit := decimal.Zero
	lastCompletion := horizonStart

	for _, plan := range plans {
		vars := pm.vars[plan.item.ID]
		if vars == nil || !cpmodel.SolutionBooleanValue(response, vars.presence) {
			addUnscheduled(result, plan, fmt.Sprintf("solver status %s, item not selected", result.SolverStatus))
			profit = profit.Sub(plan.item.Quantity.Mul(plan.product.PenaltyCost))
			continue
		}

		assignedLineID := -1
		for _, lineID := range vars.lineIDs {
			if cpmodel.SolutionBooleanValue(response, vars.assignments[lineID]) {
				assignedLineID = lineID
				break
			}
		}
		lineName := "N/A"
		if line, ok := data.linesByID[assignedLineID]; ok {
			lineName = line.Name
		}
		log.V(1).Infof("item %d (product %q) scheduled on line %s", plan.item.ID, plan.product.Name, lineName)

		profit = profit.Add(plan.item.Quantity.Mul(plan.product.UnitPricePerTon).Mul(plan.product.ProfitMargin))

		qtyPerRun := decimal.Zero
		if plan.runs > 0 {
			qtyPerRun = plan.producedQty.Div(decimal.NewFromInt(int64(plan.runs)))
		}
		for _, key := range sortedRunKeys(vars, assignedLineID) {
			startVal := cpmodel.SolutionIntegerValue(response, vars.starts[key])
			endVal := cpmodel.SolutionIntegerValue(response, vars.ends[key])
			if startVal == endVal {
				// Degenerate timing on an inactive interval.
				continue
			}
			startTime := horizonStart.Add(time.Duration(startVal) * time.Minute)
			endTime := horizonStart.Add(time.Duration(endVal) * time.Minute)
			if endTime.After(lastCompletion) {
				lastCompletion = endTime
			}

			workCenterName := "N/A"
			if wc, ok := data.workCenters[key.workCenterID]; ok {
				workCenterName = wc.Name
			}
			result.ScheduledRuns = append(result.ScheduledRuns, dto.ScheduledRun{
				ProductionOrderNumber: plan.order.OrderNumber,
				ProductionOrderItemID: plan.item.ID,
				ProductName:           plan.product.Name,
				RunNumber:             key.runIdx + 1,
				LineName:              lineName,
				WorkCenterName:        workCenterName,
				OperationName:         chosenMachineName(response, data, vars, key),
				QuantityTons:          qtyPerRun,
				StartTime:             startTime,
				EndTime:               endTime,
			})
		}

		if plan.generatedSurplus.IsPositive() && plan.firstWorkCenter != nil {
			result.GeneratedSurplus = append(result.GeneratedSurplus, dto.SurplusSummary{
				ProductName:    plan.product.Name,
				WorkCenterName: plan.firstWorkCenter.Name,
				QuantityTons:   plan.generatedSurplus,
			})
		}
	}

	for _, ex := range excluded {
		addExcluded(result, ex)
		if ex.product != nil {
			profit = profit.Sub(ex.item.Quantity.Mul(ex.product.PenaltyCost))
		}
	}

	sort.SliceStable(result.ScheduledRuns, func(i, j int) bool {
		a, b := result.ScheduledRuns[i], result.ScheduledRuns[j]
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		if a.ProductionOrderNumber != b.ProductionOrderNumber {
			return a.ProductionOrderNumber < b.ProductionOrderNumber
		}
		if a.ProductionOrderItemID != b.ProductionOrderItemID {
			return a.ProductionOrderItemID < b.ProductionOrderItemID
		}
		return a.RunNumber < b.RunNumber
	})
	for i := range result.ScheduledRuns {
		result.ScheduledRuns[i].RunID = i + 1
	}

	result.EstimatedTotalProfit = profit
	if lastCompletion.After(horizonStart) {
		result.PlanActualCompletion = &lastCompletion
	}
}

// sortedRunKeys returns the run keys of the assigned line ordered by step
// position then run index, for deterministic output.
func sortedRunKeys(vars *itemVars, lineID int) []runKey {
	keys := make([]runKey, 0, len(vars.intervals))
	for key := range vars.intervals {
		if key.lineID == lineID {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].stepOrder != keys[j].stepOrder {
			return keys[i].stepOrder < keys[j].stepOrder
		}
		return keys[i].runIdx < keys[j].runIdx
	})
	return keys
}

// chosenMachineName resolves the machine a run committed to.
func chosenMachineName(response *cmpb.CpSolverResponse, data *planningData, vars *itemVars, key runKey) string {
	usage := vars.machineUsage[key]
	machineIDs := make([]int, 0, len(usage))
	for machineID := range usage {
		machineIDs = append(machineIDs, machineID)
	}
	sort.Ints(machineIDs)
	for _, machineID := range machineIDs {
		if cpmodel.SolutionBooleanValue(response, usage[machineID]) {
			if machine, ok := data.operationsByID[machineID]; ok {
				return machine.Name
			}
		}
	}
	return "N/A"
}

// markAllUnscheduled reports every pre-processed and excluded item as
// unscheduled. Excluded items keep their own recorded reasons; the given
// reason applies to the rest.
func markAllUnscheduled(result *dto.PlanResult, plans []*itemPlan, excluded []excludedItem, reason string) {
	for _, plan := range plans {
		addUnscheduled(result, plan, reason)
	}
	for _, ex := range excluded {
		addExcluded(result, ex)
	}
}

func addUnscheduled(result *dto.PlanResult, plan *itemPlan, reason string) {
	result.UnscheduledOrderItems = append(result.UnscheduledOrderItems, dto.UnscheduledOrderItem{
		ProductionOrderNumber: plan.order.OrderNumber,
		ProductionOrderItemID: plan.item.ID,
		ProductName:           plan.product.Name,
		RequiredQuantityTons:  plan.item.Quantity,
		OriginalDeadline:      plan.order.Deadline,
		Reason:                reason,
	})
}

func addExcluded(result *dto.PlanResult, ex excludedItem) {
	productName := "N/A"
	if ex.product != nil {
		productName = ex.product.Name
	}
	result.UnscheduledOrderItems = append(result.UnscheduledOrderItems, dto.UnscheduledOrderItem{
		ProductionOrderNumber: ex.order.OrderNumber,
		ProductionOrderItemID: ex.item.ID,
		ProductName:           productName,
		RequiredQuantityTons:  ex.item.Quantity,
		OriginalDeadline:      ex.order.Deadline,
		Reason:                ex.reason,
	})
}
