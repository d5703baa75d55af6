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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/client-go/tools/record"
	clocktesting "k8s.io/utils/clock/testing"
	"sigs.k8s.io/controller-runtime/pkg/client"

	drv1alpha1 "github.com/lissto-dev/restore-operator/api/v1alpha1"
	"github.com/lissto-dev/restore-operator/pkg/config"
)

// stubWaiter stands in for the prober so cycles resolve immediately.
type stubWaiter struct {
	outcome  Outcome
	err      error
	calls    int
	lastName string
}

func (s *stubWaiter) Await(_ context.Context, restoreName string) (Outcome, error) {
	s.calls++
	s.lastName = restoreName
	return s.outcome, s.err
}

// steppingClock advances one second on every Now so timestamp-derived
// restore names never collide within a test.
type steppingClock struct {
	*clocktesting.FakeClock
}

func newSteppingClock(fc *clocktesting.FakeClock) *steppingClock {
	return &steppingClock{FakeClock: fc}
}

func (s *steppingClock) Now() time.Time {
	s.Step(time.Second)
	return s.FakeClock.Now()
}

// newTestOrchestrator wires a fake clock so cycles in the same test get
// distinct restore names.
func newTestOrchestrator(c client.Client, waiter completionWaiter) (*Orchestrator, *record.FakeRecorder) {
	recorder := record.NewFakeRecorder(16)
	fakeClock := clocktesting.NewFakeClock(time.Now())
	o := &Orchestrator{
		client:   c,
		recorder: recorder,
		observer: NewObserver(c, "prod"),
		tracker:  NewTracker(c, "dr", "restore-tracking"),
		guard:    NewGuard(c, "dr"),
		waiter:   waiter,
		clock:    newSteppingClock(fakeClock),
		storage: config.StorageConfig{
			Region:            "us-east-1",
			Endpoint:          "https://minio.internal:9000",
			CredentialsSecret: "backup-s3-credentials",
		},
		sourceNamespace: "prod",
		destNamespace:   "dr",
		dataStoreName:   "main-db",
		pollInterval:    time.Minute,
	}
	return o, recorder
}

var _ = Describe("Decide", func() {
	newest := func() *drv1alpha1.DataStoreBackup {
		return newBackup("b1", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-01T00:00:00Z", "s3://bucket/b1")
	}

	It("defers to an in-flight restore before anything else", func() {
		d := Decide(newest(), Tracking{}, true)
		Expect(d.Action).To(Equal(ActionNone))
		Expect(d.Reason).To(ContainSubstring("in progress"))
	})

	It("does nothing when no backup has completed", func() {
		d := Decide(nil, Tracking{}, false)
		Expect(d.Action).To(Equal(ActionNone))
	})

	It("skips a backup with no storage path", func() {
		b := newest()
		b.Status.StoragePath = ""
		d := Decide(b, Tracking{}, false)
		Expect(d.Action).To(Equal(ActionNone))
		Expect(d.Reason).To(ContainSubstring("storage path"))
	})

	It("does nothing when the newest backup is already restored", func() {
		d := Decide(newest(), Tracking{
			LastCompletedBackupTimestamp: "2024-01-01T00:00:00Z",
			LastDestinationLocator:       "s3://bucket/b1",
		}, false)
		Expect(d.Action).To(Equal(ActionNone))
	})

	It("restores when the tracked pair differs", func() {
		d := Decide(newest(), Tracking{
			LastCompletedBackupTimestamp: "2023-12-01T00:00:00Z",
			LastDestinationLocator:       "s3://bucket/b0",
		}, false)
		Expect(d.Action).To(Equal(ActionRestore))
		Expect(d.Backup.Name).To(Equal("b1"))
	})

	It("restores on a fresh deployment with no tracking", func() {
		d := Decide(newest(), Tracking{}, false)
		Expect(d.Action).To(Equal(ActionRestore))
	})
})

var _ = Describe("Orchestrator", func() {
	Context("with one completed backup and no tracking record", func() {
		// Scenario: fresh destination, single backup b1
		It("restores it and records the high-water mark on confirmed success", func() {
			c := newFakeClient(
				newBackup("b1", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-01T00:00:00Z", "s3://bucket/b1"),
			)
			waiter := &stubWaiter{outcome: OutcomeSucceeded}
			o, recorder := newTestOrchestrator(c, waiter)

			o.runCycle(context.Background())

			restores := listRestores(c, "dr")
			Expect(restores).To(HaveLen(1))
			Expect(restores[0].Spec.DataStoreName).To(Equal("main-db"))
			Expect(restores[0].Spec.BackupSource.Locator).To(Equal("s3://bucket/b1"))
			Expect(restores[0].Spec.BackupSource.Bucket).To(Equal("bucket"))
			Expect(restores[0].Spec.BackupSource.Region).To(Equal("us-east-1"))
			Expect(restores[0].Spec.BackupSource.Endpoint).To(Equal("https://minio.internal:9000"))
			Expect(restores[0].Spec.BackupSource.CredentialsSecret).To(Equal("backup-s3-credentials"))

			Expect(waiter.calls).To(Equal(1))
			Expect(waiter.lastName).To(Equal(restores[0].Name))

			cm, err := getTracking(c, "dr", "restore-tracking")
			Expect(err).NotTo(HaveOccurred())
			Expect(cm.Data).To(Equal(map[string]string{
				"lastCompletedBackupTimestamp": "2024-01-01T00:00:00Z",
				"lastDestinationLocator":       "s3://bucket/b1",
			}))

			Expect(recorder.Events).To(Receive(ContainSubstring("RestoreStarted")))
			Expect(recorder.Events).To(Receive(ContainSubstring("RestoreSucceeded")))
		})

		It("creates no further restores when the cycle repeats unchanged", func() {
			c := newFakeClient(
				newBackup("b1", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-01T00:00:00Z", "s3://bucket/b1"),
			)
			waiter := &stubWaiter{outcome: OutcomeSucceeded}
			o, _ := newTestOrchestrator(c, waiter)

			o.runCycle(context.Background())
			o.runCycle(context.Background())
			o.runCycle(context.Background())

			Expect(listRestores(c, "dr")).To(HaveLen(1))
			Expect(waiter.calls).To(Equal(1))
		})
	})

	Context("with no backups in scope", func() {
		It("creates no restores across cycles", func() {
			c := newFakeClient()
			waiter := &stubWaiter{outcome: OutcomeSucceeded}
			o, _ := newTestOrchestrator(c, waiter)

			for i := 0; i < 3; i++ {
				o.runCycle(context.Background())
			}

			Expect(listRestores(c, "dr")).To(BeEmpty())
			Expect(waiter.calls).To(BeZero())
		})
	})

	Context("with only a non-succeeded backup", func() {
		It("creates no restores", func() {
			c := newFakeClient(newBackup("b1", "prod", drv1alpha1.BackupPhaseRunning, "", ""))
			waiter := &stubWaiter{outcome: OutcomeSucceeded}
			o, _ := newTestOrchestrator(c, waiter)

			o.runCycle(context.Background())

			Expect(listRestores(c, "dr")).To(BeEmpty())
		})
	})

	Context("with two completed backups and no prior restore", func() {
		It("targets the newest, never the older one", func() {
			c := newFakeClient(
				newBackup("b1", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-01T00:00:00Z", "s3://bucket/b1"),
				newBackup("b2", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-02T00:00:00Z", "s3://bucket/b2"),
			)
			waiter := &stubWaiter{outcome: OutcomeSucceeded}
			o, _ := newTestOrchestrator(c, waiter)

			o.runCycle(context.Background())

			restores := listRestores(c, "dr")
			Expect(restores).To(HaveLen(1))
			Expect(restores[0].Spec.BackupSource.Locator).To(Equal("s3://bucket/b2"))

			cm, err := getTracking(c, "dr", "restore-tracking")
			Expect(err).NotTo(HaveOccurred())
			Expect(cm.Data["lastDestinationLocator"]).To(Equal("s3://bucket/b2"))
		})
	})

	Context("with a restore already running for the target", func() {
		It("creates no second restore regardless of backup state", func() {
			c := newFakeClient(
				newBackup("b1", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-01T00:00:00Z", "s3://bucket/b1"),
				newRestore("r0", "dr", drv1alpha1.RestoreStateRunning),
			)
			waiter := &stubWaiter{outcome: OutcomeSucceeded}
			o, _ := newTestOrchestrator(c, waiter)

			o.runCycle(context.Background())

			Expect(listRestores(c, "dr")).To(HaveLen(1)) // only r0
			Expect(waiter.calls).To(BeZero())
		})
	})

	Context("with a malformed backup record", func() {
		It("skips a succeeded backup with no storage path", func() {
			c := newFakeClient(newBackup("b1", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-01T00:00:00Z", ""))
			waiter := &stubWaiter{outcome: OutcomeSucceeded}
			o, _ := newTestOrchestrator(c, waiter)

			o.runCycle(context.Background())

			Expect(listRestores(c, "dr")).To(BeEmpty())
		})
	})

	Context("when the restore fails", func() {
		It("leaves the tracking record absent and records a warning", func() {
			c := newFakeClient(
				newBackup("b1", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-01T00:00:00Z", "s3://bucket/b1"),
			)
			waiter := &stubWaiter{outcome: OutcomeFailed}
			o, recorder := newTestOrchestrator(c, waiter)

			o.runCycle(context.Background())

			Expect(listRestores(c, "dr")).To(HaveLen(1))
			_, err := getTracking(c, "dr", "restore-tracking")
			Expect(apierrors.IsNotFound(err)).To(BeTrue())

			Expect(recorder.Events).To(Receive(ContainSubstring("RestoreStarted")))
			Expect(recorder.Events).To(Receive(ContainSubstring("RestoreFailed")))
		})
	})

	Context("when the wait times out", func() {
		It("leaves a pre-existing tracking record exactly as it was", func() {
			c := newFakeClient(
				newBackup("b2", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-02-01T00:00:00Z", "s3://bucket/b2"),
			)
			tracker := NewTracker(c, "dr", "restore-tracking")
			Expect(tracker.Write(context.Background(), "2024-01-01T00:00:00Z", "s3://bucket/b1")).To(Succeed())

			waiter := &stubWaiter{outcome: OutcomeTimedOut}
			o, recorder := newTestOrchestrator(c, waiter)

			o.runCycle(context.Background())

			cm, err := getTracking(c, "dr", "restore-tracking")
			Expect(err).NotTo(HaveOccurred())
			Expect(cm.Data).To(Equal(map[string]string{
				"lastCompletedBackupTimestamp": "2024-01-01T00:00:00Z",
				"lastDestinationLocator":       "s3://bucket/b1",
			}))

			Expect(recorder.Events).To(Receive(ContainSubstring("RestoreStarted")))
			Expect(recorder.Events).To(Receive(ContainSubstring("RestoreTimedOut")))
		})
	})

	Context("when shutdown interrupts the wait", func() {
		It("writes nothing and reports no outcome", func() {
			c := newFakeClient(
				newBackup("b1", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-01T00:00:00Z", "s3://bucket/b1"),
			)
			waiter := &stubWaiter{err: context.Canceled}
			o, _ := newTestOrchestrator(c, waiter)

			o.runCycle(context.Background())

			_, err := getTracking(c, "dr", "restore-tracking")
			Expect(apierrors.IsNotFound(err)).To(BeTrue())
		})
	})

	Context("after a failed attempt", func() {
		It("retries against whatever is then the newest backup", func() {
			c := newFakeClient(
				newBackup("b1", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-01T00:00:00Z", "s3://bucket/b1"),
			)
			waiter := &stubWaiter{outcome: OutcomeFailed}
			o, _ := newTestOrchestrator(c, waiter)

			o.runCycle(context.Background())
			Expect(listRestores(c, "dr")).To(HaveLen(1))

			// a newer backup lands before the retry
			Expect(c.Create(context.Background(),
				newBackup("b2", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-02T00:00:00Z", "s3://bucket/b2"),
			)).To(Succeed())

			waiter.outcome = OutcomeSucceeded
			o.runCycle(context.Background())

			cm, err := getTracking(c, "dr", "restore-tracking")
			Expect(err).NotTo(HaveOccurred())
			Expect(cm.Data["lastDestinationLocator"]).To(Equal("s3://bucket/b2"))
		})
	})
})
