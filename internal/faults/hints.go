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

// Package faults classifies API faults into coarse diagnostic hints for
// log lines. Hints are additive context only; callers must never branch
// on them, only on structured error predicates.
package faults

import (
	"crypto/x509"
	"errors"
	"net"
	"strings"
	"syscall"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// Hint values produced by Classify.
const (
	HintDNS               = "dns"
	HintTimeout           = "timeout"
	HintTLS               = "tls"
	HintPermissionDenied  = "permission-denied"
	HintConnectionRefused = "connection-refused"
	HintNotFound          = "not-found"
	HintThrottled         = "throttled"
)

// Classify maps an error to a coarse hint, or "" when nothing matches.
// Structured predicates are checked first; string matching is a last
// resort for faults that reach us flattened into text.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case apierrors.IsUnauthorized(err) || apierrors.IsForbidden(err):
		return HintPermissionDenied
	case apierrors.IsNotFound(err):
		return HintNotFound
	case apierrors.IsTooManyRequests(err):
		return HintThrottled
	case apierrors.IsTimeout(err) || apierrors.IsServerTimeout(err):
		return HintTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return HintDNS
	}

	var unknownAuthority x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	var certInvalid x509.CertificateInvalidError
	if errors.As(err, &unknownAuthority) || errors.As(err, &hostnameErr) || errors.As(err, &certInvalid) {
		return HintTLS
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return HintConnectionRefused
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return HintTimeout
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "no such host"):
		return HintDNS
	case strings.Contains(msg, "connection refused"):
		return HintConnectionRefused
	case strings.Contains(msg, "certificate") || strings.Contains(msg, "tls"):
		return HintTLS
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded"):
		return HintTimeout
	case strings.Contains(msg, "forbidden") || strings.Contains(msg, "unauthorized"):
		return HintPermissionDenied
	}

	return ""
}

// StatusCode returns the HTTP status code carried by a Kubernetes API
// error, or 0 when the error carries none.
func StatusCode(err error) int32 {
	var status apierrors.APIStatus
	if errors.As(err, &status) {
		return status.Status().Code
	}
	return 0
}
