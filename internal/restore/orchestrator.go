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
	corev1 "k8s.io/api/core/v1"
	"k8s.io/client-go/tools/record"
	"k8s.io/utils/clock"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	drv1alpha1 "github.com/lissto-dev/restore-operator/api/v1alpha1"
	"github.com/lissto-dev/restore-operator/internal/faults"
	"github.com/lissto-dev/restore-operator/internal/metrics"
	"github.com/lissto-dev/restore-operator/pkg/config"
	"github.com/lissto-dev/restore-operator/pkg/locator"
)

// Action is what a decision cycle should do.
type Action string

const (
	// ActionNone means nothing to do this cycle
	ActionNone Action = "None"

	// ActionRestore means submit a restore for the chosen backup
	ActionRestore Action = "Restore"
)

// Decision is the outcome of the pure decision function.
type Decision struct {
	Action Action

	// Reason explains an ActionNone decision
	Reason string

	// Backup is the backup to restore when Action is ActionRestore
	Backup *drv1alpha1.DataStoreBackup
}

// Decide is the orchestrator's decision function. It is pure over its
// inputs so the whole policy is testable without any I/O: the loop is a
// thin shell that gathers current external state, calls Decide, and acts.
func Decide(newest *drv1alpha1.DataStoreBackup, tracking Tracking, inProgress bool) Decision {
	if inProgress {
		return Decision{Action: ActionNone, Reason: "a restore is already in progress"}
	}
	if newest == nil {
		return Decision{Action: ActionNone, Reason: "no successfully completed backups found"}
	}
	if newest.Status.StoragePath == "" {
		return Decision{Action: ActionNone, Reason: "newest completed backup has no storage path"}
	}
	if tracking.Matches(completedTimestamp(newest), newest.Status.StoragePath) {
		return Decision{Action: ActionNone, Reason: "newest backup is already restored"}
	}
	return Decision{Action: ActionRestore, Backup: newest}
}

// completedTimestamp renders the backup completion time the way the
// tracking record stores it.
func completedTimestamp(b *drv1alpha1.DataStoreBackup) string {
	return b.CompletedAt().UTC().Format(time.RFC3339)
}

// completionWaiter is the prober surface the orchestrator needs.
type completionWaiter interface {
	Await(ctx context.Context, restoreName string) (Outcome, error)
}

// Orchestrator is the restore control loop. Each cycle it consults the
// guard and observer, decides against the tracking record, and on a
// positive decision submits a restore request and awaits its completion,
// advancing the high-water mark only on confirmed end-to-end success.
// Every fault inside a cycle is transient: logged and retried next
// cycle, never fatal.
type Orchestrator struct {
	client   client.Client
	recorder record.EventRecorder
	observer *Observer
	tracker  *Tracker
	guard    *Guard
	waiter   completionWaiter
	clock    clock.Clock

	sourceNamespace string
	destNamespace   string
	dataStoreName   string
	storage       config.StorageConfig
	pollInterval  time.Duration
}

// NewOrchestrator wires the control loop from configuration
func NewOrchestrator(c client.Client, recorder record.EventRecorder, cfg *config.Config) *Orchestrator {
	return &Orchestrator{
		client:   c,
		recorder: recorder,
		observer: NewObserver(c, cfg.Source.Namespace),
		tracker:  NewTracker(c, cfg.Destination.Namespace, cfg.Tracking.ConfigMap),
		guard:    NewGuard(c, cfg.Destination.Namespace),
		waiter: NewProber(c, cfg.Destination.Namespace, cfg.Destination.DataStore,
			cfg.ProbeInterval(), cfg.RestoreTimeout()),
		clock:           clock.RealClock{},
		sourceNamespace: cfg.Source.Namespace,
		destNamespace:   cfg.Destination.Namespace,
		dataStoreName:   cfg.Destination.DataStore,
		storage:         cfg.Storage,
		pollInterval:    cfg.PollInterval(),
	}
}

// Start runs the control loop until the context is cancelled. It
// implements manager.Runnable. Shutdown finishes the step in flight and
// starts no new cycle; an in-flight restore is never cancelled, the
// external executor keeps ownership and the next process instance picks
// up via the guard and the tracking record.
func (o *Orchestrator) Start(ctx context.Context) error {
	log := logf.FromContext(ctx).WithValues("dataStore", o.dataStoreName)
	log.Info("Restore orchestrator started",
		"sourceNamespace", o.sourceNamespace, "destinationNamespace", o.destNamespace,
		"pollInterval", o.pollInterval)

	ticker := time.NewTicker(o.pollInterval)
	defer ticker.Stop()

	for {
		o.runCycle(logf.IntoContext(ctx, log))

		select {
		case <-ctx.Done():
			log.Info("Restore orchestrator stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// runCycle executes one decision/action cycle. It never returns an
// error; every fault is logged with diagnostic context and left for the
// next cycle to retry against whatever is then the newest backup.
func (o *Orchestrator) runCycle(ctx context.Context) {
	log := logf.FromContext(ctx)
	metrics.Cycles.Inc()

	// cheap early exit before any other reads
	inProgress, err := o.guard.RestoreInProgress(ctx)
	if err != nil {
		o.logTransient(log, err, "list restores", o.destNamespace)
		return
	}
	if inProgress {
		log.Info("Skipping cycle", "reason", "a restore is already in progress")
		return
	}

	newest, err := o.observer.FindNewestCompletedBackup(ctx)
	if err != nil {
		o.logTransient(log, err, "list backups", o.sourceNamespace)
		return
	}

	var tracking Tracking
	if newest != nil {
		if tracking, err = o.tracker.Read(ctx); err != nil {
			o.logTransient(log, err, "read tracking record", o.destNamespace)
			return
		}
	}

	decision := Decide(newest, tracking, false)
	if decision.Action == ActionNone {
		log.Info("No restore needed", "reason", decision.Reason)
		return
	}

	// re-check closes the race between decision and action
	inProgress, err = o.guard.RestoreInProgress(ctx)
	if err != nil {
		o.logTransient(log, err, "list restores", o.destNamespace)
		return
	}
	if inProgress {
		log.Info("Skipping cycle", "reason", "a restore appeared between decision and action")
		return
	}

	o.restore(ctx, log, decision.Backup)
}

// restore submits a restore request for the chosen backup and awaits its
// completion, advancing the tracking record only on confirmed success.
func (o *Orchestrator) restore(ctx context.Context, log logr.Logger, backup *drv1alpha1.DataStoreBackup) {
	storagePath := backup.Status.StoragePath

	bucket, err := locator.Bucket(storagePath)
	if err != nil {
		// locator is carried through verbatim either way; only the parsed
		// bucket annotation is lost
		log.Info("Storage path has no parseable bucket", "storagePath", storagePath)
	}

	request := Request{
		Name:          GenerateRestoreName(o.clock.Now()),
		Namespace:     o.destNamespace,
		DataStoreName: o.dataStoreName,
		Locator:       storagePath,
		Bucket:        bucket,
		Storage:       o.storage,
	}.Build()

	if err := o.client.Create(ctx, request); err != nil {
		o.logTransient(log, err, "create restore", request.Name)
		return
	}
	metrics.RestoresStarted.Inc()
	o.recorder.Eventf(request, corev1.EventTypeNormal, "RestoreStarted",
		"Restoring backup %s from %s", backup.Name, storagePath)
	log.Info("Created restore request",
		"restore", request.Name, "backup", backup.Name, "storagePath", storagePath)

	outcome, err := o.waiter.Await(ctx, request.Name)
	if err != nil {
		// shutdown while waiting; the tracking record stays untouched and
		// the next instance resumes via guard plus tracking
		log.Info("Stopped awaiting restore completion", "restore", request.Name, "cause", err.Error())
		return
	}
	metrics.RestoreOutcomes.WithLabelValues(string(outcome)).Inc()

	switch outcome {
	case OutcomeSucceeded:
		timestamp := completedTimestamp(backup)
		if err := o.tracker.Write(ctx, timestamp, storagePath); err != nil {
			o.logTransient(log, err, "write tracking record", o.destNamespace)
			return
		}
		o.recorder.Eventf(request, corev1.EventTypeNormal, "RestoreSucceeded",
			"Backup %s restored into %s", backup.Name, o.dataStoreName)
		log.Info("Restore completed; high-water mark advanced",
			"restore", request.Name, "lastCompletedBackupTimestamp", timestamp,
			"lastDestinationLocator", storagePath)

	case OutcomeFailed:
		o.recorder.Eventf(request, corev1.EventTypeWarning, "RestoreFailed",
			"Restore of backup %s failed", backup.Name)
		log.Info("Restore failed; tracking record unchanged, next cycle retries against the newest backup",
			"restore", request.Name, "backup", backup.Name)

	case OutcomeTimedOut:
		o.recorder.Eventf(request, corev1.EventTypeWarning, "RestoreTimedOut",
			"Timed out waiting for restore of backup %s", backup.Name)
		log.Info("Timed out waiting for restore completion; tracking record unchanged",
			"restore", request.Name, "backup", backup.Name)
	}
}

// logTransient records a per-cycle fault with enough context to diagnose
// it from logs alone. The hint is additive; nothing branches on it.
func (o *Orchestrator) logTransient(log logr.Logger, err error, operation, target string) {
	metrics.TransientFaults.WithLabelValues(operation).Inc()
	log.Error(err, "Transient fault; cycle will retry",
		"operation", operation, "target", target,
		"status", faults.StatusCode(err), "hint", faults.Classify(err))
}
