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

package restore

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/utils/clock"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	drv1alpha1 "github.com/lissto-dev/restore-operator/api/v1alpha1"
	"github.com/lissto-dev/restore-operator/internal/faults"
)

// Outcome is the result of awaiting a restore request.
type Outcome string

const (
	// OutcomeSucceeded means the restore finished and the data store is serving
	OutcomeSucceeded Outcome = "Succeeded"

	// OutcomeFailed means the restore executor reported Failed or Error
	OutcomeFailed Outcome = "Failed"

	// OutcomeTimedOut means the bounded wait was exhausted
	OutcomeTimedOut Outcome = "TimedOut"
)

// Prober awaits the completion of a restore request in two phases:
// first the request itself reaching a terminal state, then the target
// data store reporting ready. The second phase exists because the
// executor marks a request Succeeded when the data transfer finishes,
// which may be well before the data store has reconverged to a serving
// state; advancing the high-water mark on transfer alone would record a
// restore that never actually completed.
type Prober struct {
	client        client.Client
	clock         clock.Clock
	namespace     string
	dataStoreName string
	interval      time.Duration
	timeout       time.Duration
}

// NewProber creates a prober for the destination namespace and data store
func NewProber(c client.Client, namespace, dataStoreName string, interval, timeout time.Duration) *Prober {
	return &Prober{
		client:        c,
		clock:         clock.RealClock{},
		namespace:     namespace,
		dataStoreName: dataStoreName,
		interval:      interval,
		timeout:       timeout,
	}
}

// Await polls the named restore request until it resolves, the timeout
// is exhausted, or the context is cancelled. Cancellation takes effect
// within one poll interval and returns the context error; no outcome is
// reported and the caller must leave the tracking record untouched.
// Transient read faults are logged and retried within the deadline.
func (p *Prober) Await(ctx context.Context, restoreName string) (Outcome, error) {
	log := logf.FromContext(ctx).WithValues("restore", restoreName)
	deadline := p.clock.Now().Add(p.timeout)

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if done, outcome := p.step(ctx, log, restoreName); done {
			return outcome, nil
		}

		if !p.clock.Now().Before(deadline) {
			return OutcomeTimedOut, nil
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-p.clock.After(p.interval):
		}
	}
}

// step performs one poll of the two-phase state machine. It returns
// done=false both while the restore is still running and on transient
// read faults, which only the deadline bounds.
func (p *Prober) step(ctx context.Context, log logr.Logger, restoreName string) (bool, Outcome) {
	var restore drv1alpha1.DataStoreRestore
	if err := p.client.Get(ctx, client.ObjectKey{Name: restoreName, Namespace: p.namespace}, &restore); err != nil {
		log.Error(err, "Failed to fetch restore request; will poll again",
			"hint", faults.Classify(err), "status", faults.StatusCode(err))
		return false, ""
	}

	switch restore.Status.State {
	case drv1alpha1.RestoreStateFailed, drv1alpha1.RestoreStateError:
		return true, OutcomeFailed

	case drv1alpha1.RestoreStateSucceeded:
		var dataStore drv1alpha1.DataStore
		if err := p.client.Get(ctx, client.ObjectKey{Name: p.dataStoreName, Namespace: p.namespace}, &dataStore); err != nil {
			log.Error(err, "Failed to fetch data store; will poll again",
				"dataStore", p.dataStoreName, "hint", faults.Classify(err), "status", faults.StatusCode(err))
			return false, ""
		}
		if dataStore.Readiness() == drv1alpha1.ReadinessReady {
			return true, OutcomeSucceeded
		}
		log.Info("Restore transfer finished; waiting for data store readiness",
			"dataStore", p.dataStoreName, "readiness", string(dataStore.Readiness()))
		return false, ""

	default:
		return false, ""
	}
}
