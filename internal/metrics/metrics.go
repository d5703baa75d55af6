/*
Copyright 2025 Lissto.

Licensed under the Sustainable Use License, Version 1.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://github.com/lissto-dev/restore-operator/blob/main/LICENSE.md

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package metrics exposes restore operator counters on the
// controller-runtime metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	ctrlmetrics "sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	// Cycles counts orchestrator decision cycles.
	Cycles = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "restore_operator_cycles_total",
		Help: "Total number of restore decision cycles",
	})

	// RestoresStarted counts restore requests created by the orchestrator.
	RestoresStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "restore_operator_restores_started_total",
		Help: "Total number of restore requests created",
	})

	// RestoreOutcomes counts finished restore waits by outcome.
	RestoreOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "restore_operator_restore_outcomes_total",
		Help: "Total number of awaited restores by outcome",
	}, []string{"outcome"})

	// TransientFaults counts per-cycle faults that were logged and retried.
	TransientFaults = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "restore_operator_transient_faults_total",
		Help: "Total number of transient API faults by operation",
	}, []string{"operation"})
)

func init() {
	ctrlmetrics.Registry.MustRegister(Cycles, RestoresStarted, RestoreOutcomes, TransientFaults)
}
