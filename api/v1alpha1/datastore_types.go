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
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DataStoreConditionReady is the condition type reporting whether the
// data store is serving.
const DataStoreConditionReady = "Ready"

// DataStoreReadiness is the coarse readiness signal derived from the
// Ready condition.
type DataStoreReadiness string

const (
	// ReadinessUnknown indicates the data store has not reported readiness
	ReadinessUnknown DataStoreReadiness = "Unknown"

	// ReadinessNotReady indicates the data store is not serving
	ReadinessNotReady DataStoreReadiness = "NotReady"

	// ReadinessReady indicates the data store is serving
	ReadinessReady DataStoreReadiness = "Ready"
)

// DataStoreSpec defines the desired state of DataStore. The data store
// is managed by its own operator; this operator only reads it.
type DataStoreSpec struct {
	// Engine identifies the database engine
	// +optional
	Engine string `json:"engine,omitempty"`

	// Replicas is the desired number of data store members
	// +optional
	Replicas *int32 `json:"replicas,omitempty"`
}

// DataStoreStatus defines the observed state of DataStore
type DataStoreStatus struct {
	// ReadyReplicas is the number of members currently serving
	// +optional
	ReadyReplicas int32 `json:"readyReplicas,omitempty"`

	// Conditions represent the latest observations of the data store state
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Engine",type=string,JSONPath=`.spec.engine`
// +kubebuilder:printcolumn:name="Ready",type=string,JSONPath=`.status.conditions[?(@.type=="Ready")].status`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// DataStore is the Schema for the datastores API.
// It represents the secondary data store restores converge onto.
type DataStore struct {
	metav1.TypeMeta `json:",inline"`

	// metadata is standard object metadata
	// +optional
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// spec defines the desired state of DataStore
	// +optional
	Spec DataStoreSpec `json:"spec,omitempty"`

	// status defines the observed state of DataStore
	// +optional
	Status DataStoreStatus `json:"status,omitempty"`
}

// Readiness derives the coarse readiness signal from the Ready condition.
// A missing condition means the data store never reported, which callers
// must not confuse with NotReady.
func (d *DataStore) Readiness() DataStoreReadiness {
	cond := meta.FindStatusCondition(d.Status.Conditions, DataStoreConditionReady)
	if cond == nil {
		return ReadinessUnknown
	}
	if cond.Status == metav1.ConditionTrue {
		return ReadinessReady
	}
	return ReadinessNotReady
}

// +kubebuilder:object:root=true

// DataStoreList contains a list of DataStore
type DataStoreList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []DataStore `json:"items"`
}

func init() {
	SchemeBuilder.Register(&DataStore{}, &DataStoreList{})
}
