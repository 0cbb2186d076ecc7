package planner

import (
	"math"
	"sort"
	"time"

	log "github.com/golang/glog"
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/metalflow/scheduler/pkg/domain/entities"
)

// addConstraints emits the precedence/transport, machine no-overlap and
// deadline constraints on an already-built model.
func addConstraints(pm *planModel, data *planningData, routes *activeRoutes, plans []*itemPlan, horizonStart time.Time) {
	addPrecedence(pm, data, routes, plans)
	addMachineNoOverlap(pm)
	addDeadlines(pm, data, routes, plans, horizonStart)
}

// addPrecedence orders consecutive route steps of each item: under a given
// line assignment, every run of step i starts no earlier than the same run of
// step i-1 ends, plus the applicable transport time. The inter-work-center
// transport time is the one recorded on the line step leaving the previous
// work center; within one work center the intra transport time of the
// previous operation step applies.
func addPrecedence(pm *planModel, data *planningData, routes *activeRoutes, plans []*itemPlan) {
	for _, plan := range plans {
		vars := pm.vars[plan.item.ID]
		if vars == nil || plan.runs <= 0 {
			continue
		}
		for _, lineID := range vars.lineIDs {
			assign := vars.assignments[lineID]

			var prevWC *entities.WorkCenter
			var prevLineStep *entities.LineWorkCenterRoute
			var prevStep *entities.ProductOperationRoute
			for i, step := range plan.route {
				wc, lineStep := resolveStepWorkCenter(data, routes, lineID, step.OperationTypeID)
				if wc == nil {
					// Model building already forced this assignment off.
					continue
				}
				if i > 0 && prevWC != nil {
					transport := transportMinutes(routes, prevWC, wc, prevLineStep, prevStep)
					for runIdx := 0; runIdx < plan.runs; runIdx++ {
						currKey := runKey{lineID: lineID, workCenterID: wc.ID, stepOrder: step.Order, runIdx: runIdx}
						prevKey := runKey{lineID: lineID, workCenterID: prevWC.ID, stepOrder: prevStep.Order, runIdx: runIdx}
						currStart, okCurr := vars.starts[currKey]
						prevEnd, okPrev := vars.ends[prevKey]
						if !okCurr || !okPrev {
							log.Warningf("missing run interval for item %d line %d step %d run %d, skipping precedence", plan.item.ID, lineID, step.Order, runIdx)
							continue
						}
						after := cpmodel.NewLinearExpr().Add(prevEnd).AddConstant(transport)
						pm.builder.AddGreaterOrEqual(currStart, after).OnlyEnforceIf(assign)
					}
				}
				prevWC, prevLineStep, prevStep = wc, lineStep, step
			}
		}
	}
}

// transportMinutes picks the transport delay between two consecutive steps.
func transportMinutes(routes *activeRoutes, prevWC, currWC *entities.WorkCenter, prevLineStep *entities.LineWorkCenterRoute, prevStep *entities.ProductOperationRoute) int64 {
	if prevWC.ID != currWC.ID {
		if prevLineStep != nil {
			return int64(prevLineStep.TransportTimeMinutes)
		}
		return 0
	}
	for _, wcStep := range routes.workCenter[currWC.ID] {
		if wcStep.OperationTypeID == prevStep.OperationTypeID {
			return int64(wcStep.TransportTimeMinutes)
		}
	}
	return 0
}

// addMachineNoOverlap forbids two runs from holding the same machine at the
// same instant. This is the single constraint coupling unrelated order items.
func addMachineNoOverlap(pm *planModel) {
	machineIDs := make([]int, 0, len(pm.machineIntervals))
	for machineID := range pm.machineIntervals {
		machineIDs = append(machineIDs, machineID)
	}
	sort.Ints(machineIDs)
	for _, machineID := range machineIDs {
		intervals := pm.machineIntervals[machineID]
		if len(intervals) > 1 {
			pm.builder.AddNoOverlap(intervals...)
			log.V(1).Infof("no-overlap over %d optional intervals on machine %d", len(intervals), machineID)
		}
	}
}

// addDeadlines bounds the end of each item's last run by its order deadline,
// clamped to the horizon and only enforced while the item is present. The
// item-level end variable is pinned to zero when the item is absent.
func addDeadlines(pm *planModel, data *planningData, routes *activeRoutes, plans []*itemPlan, horizonStart time.Time) {
	for _, plan := range plans {
		vars := pm.vars[plan.item.ID]
		if vars == nil || plan.runs <= 0 || len(vars.lineIDs) == 0 {
			continue
		}
		lastStep := plan.route[len(plan.route)-1]

		deadlineMinutes := pm.horizonMinutes
		if deadline := plan.order.Deadline; deadline.After(horizonStart) {
			deadlineMinutes = int64(math.Ceil(deadline.Sub(horizonStart).Minutes()))
		}
		if deadlineMinutes > pm.horizonMinutes {
			deadlineMinutes = pm.horizonMinutes
		}

		lastEnd := pm.builder.NewIntVarFromDomain(pm.horizon)
		pm.builder.AddEquality(lastEnd, cpmodel.NewConstant(0)).OnlyEnforceIf(vars.presence.Not())
		for _, lineID := range vars.lineIDs {
			wc, _ := resolveStepWorkCenter(data, routes, lineID, lastStep.OperationTypeID)
			if wc == nil {
				continue
			}
			key := runKey{lineID: lineID, workCenterID: wc.ID, stepOrder: lastStep.Order, runIdx: plan.runs - 1}
			if end, ok := vars.ends[key]; ok {
				pm.builder.AddEquality(lastEnd, end).OnlyEnforceIf(vars.assignments[lineID])
			} else {
				log.Warningf("missing last run interval for item %d on line %d, skipping deadline link", plan.item.ID, lineID)
			}
		}
		pm.builder.AddLessOrEqual(lastEnd, cpmodel.NewConstant(deadlineMinutes)).OnlyEnforceIf(vars.presence)
	}
}
