// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	cnserrors "github.com/NVIDIA/dashboard-audit/pkg/errors"
	"github.com/NVIDIA/dashboard-audit/pkg/serializer"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes an ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cnserrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr writes err as an ErrorResponse. A StructuredError in the
// chain supplies the code, message and context; otherwise the reply is an
// internal error carrying fallbackMessage. The cause text is added under
// "error".
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	code := cnserrors.ErrCodeInternal
	message := fallbackMessage
	var details map[string]any

	var se *cnserrors.StructuredError
	if errors.As(err, &se) {
		code = se.Code
		message = se.Message
		details = mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
	} else {
		details = mergeDetails(extraDetails, nil)
		if err != nil {
			details = mergeDetails(details, map[string]any{"error": err.Error()})
		}
	}

	WriteError(w, r, HTTPStatusFromCode(code), code, message, retryableFromCode(code), details)
}

// HTTPStatusFromCode maps an error code to an HTTP status.
func HTTPStatusFromCode(code cnserrors.ErrorCode) int {
	return cnserrors.HTTPStatus(code)
}

// retryableFromCode reports transient codes and internal errors as
// retryable.
func retryableFromCode(code cnserrors.ErrorCode) bool {
	return code == cnserrors.ErrCodeInternal || cnserrors.IsRetryable(code)
}

// mergeDetails returns a new map with b's keys overriding a's, or nil when
// both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
