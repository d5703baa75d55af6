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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// RestoreLabelDataStore is the label key identifying the data store a
	// restore request targets
	RestoreLabelDataStore = "dr.lissto.dev/datastore"
)

// DataStoreRestoreState represents the current state of a DataStoreRestore
type DataStoreRestoreState string

const (
	// RestoreStatePending indicates the restore has not been picked up yet
	RestoreStatePending DataStoreRestoreState = "Pending"

	// RestoreStateStarting indicates the restore executor is preparing
	RestoreStateStarting DataStoreRestoreState = "Starting"

	// RestoreStateRunning indicates data is being restored
	RestoreStateRunning DataStoreRestoreState = "Running"

	// RestoreStateSucceeded indicates the restore executor finished the
	// data transfer
	RestoreStateSucceeded DataStoreRestoreState = "Succeeded"

	// RestoreStateFailed indicates the restore failed
	RestoreStateFailed DataStoreRestoreState = "Failed"

	// RestoreStateError indicates the restore executor hit an unexpected error
	RestoreStateError DataStoreRestoreState = "Error"
)

// InProgress returns true if the state represents a restore the executor
// has not finished with yet.
func (s DataStoreRestoreState) InProgress() bool {
	return s == RestoreStatePending || s == RestoreStateStarting || s == RestoreStateRunning
}

// Terminal returns true if the state represents a final state.
func (s DataStoreRestoreState) Terminal() bool {
	return s == RestoreStateSucceeded || s == RestoreStateFailed || s == RestoreStateError
}

// Known returns true if the state is one the executor is documented to set.
func (s DataStoreRestoreState) Known() bool {
	return s.InProgress() || s.Terminal()
}

// BackupSource describes where the restore executor should fetch the
// backup artifact from. Credentials, region and endpoint are carried
// verbatim from operator configuration; only the bucket is derived, by
// parsing the locator's scheme://bucket/... prefix.
type BackupSource struct {
	// Locator is the full artifact locator (e.g. "s3://bucket/backups/b1")
	// +required
	Locator string `json:"locator"`

	// Bucket is the bucket segment parsed out of the locator
	// +optional
	Bucket string `json:"bucket,omitempty"`

	// Region for the object storage service
	// +optional
	Region string `json:"region,omitempty"`

	// Endpoint overrides the object storage endpoint
	// +optional
	Endpoint string `json:"endpoint,omitempty"`

	// CredentialsSecret names the secret holding object storage credentials
	// +optional
	CredentialsSecret string `json:"credentialsSecret,omitempty"`
}

// DataStoreRestoreSpec defines the desired state of DataStoreRestore
type DataStoreRestoreSpec struct {
	// DataStoreName is the data store to restore into
	// +required
	DataStoreName string `json:"dataStoreName"`

	// BackupSource describes the backup artifact to restore from
	// +required
	BackupSource BackupSource `json:"backupSource"`
}

// DataStoreRestoreStatus defines the observed state of DataStoreRestore.
// The state is owned by the external restore executor once the request
// has been created.
type DataStoreRestoreStatus struct {
	// State represents the current state of the restore
	// +optional
	State DataStoreRestoreState `json:"state,omitempty"`

	// CompletionTime is when the restore reached a terminal state
	// +optional
	CompletionTime *metav1.Time `json:"completionTime,omitempty"`

	// Message provides additional information about the current state
	// +optional
	Message string `json:"message,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Data Store",type=string,JSONPath=`.spec.dataStoreName`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// DataStoreRestore is the Schema for the datastorerestores API.
// It instructs the external restore executor to materialize a backup
// artifact into a data store.
type DataStoreRestore struct {
	metav1.TypeMeta `json:",inline"`

	// metadata is standard object metadata
	// +optional
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// spec defines the desired state of DataStoreRestore
	// +required
	Spec DataStoreRestoreSpec `json:"spec"`

	// status defines the observed state of DataStoreRestore
	// +optional
	Status DataStoreRestoreStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// DataStoreRestoreList contains a list of DataStoreRestore
type DataStoreRestoreList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []DataStoreRestore `json:"items"`
}

func init() {
	SchemeBuilder.Register(&DataStoreRestore{}, &DataStoreRestoreList{})
}
