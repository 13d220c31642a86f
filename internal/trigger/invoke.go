package trigger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/shaharia-lab/uploadnotify/internal/notifier"
)

// invocationIDHeader carries the runtime-assigned invocation id, when the
// host supplies one. Invocations without it get a generated id.
const invocationIDHeader = "X-Invocation-Id"

// InvokeRequest is the invocation payload the hosting runtime POSTs for
// each uploaded blob. Content arrives base64-encoded in the JSON body and
// is never read by the handler.
type InvokeRequest struct {
	Name        string            `json:"name"`
	TriggerPath string            `json:"trigger_path"`
	Metadata    map[string]string `json:"metadata"`
	Content     []byte            `json:"content"`
}

// InvokeResponse acknowledges one invocation. Notification failures are
// logged, not reported here; the envelope is a success regardless.
type InvokeResponse struct {
	InvocationID string         `json:"invocation_id"`
	Outputs      map[string]any `json:"outputs"`
	Logs         []string       `json:"logs"`
}

// handleInvoke decodes the runtime's payload, runs the notification handler
// synchronously, and acknowledges. Only a payload the host encoded
// incorrectly yields a non-200.
func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	var req InvokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid invocation payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "invalid invocation payload: blob name is required", http.StatusBadRequest)
		return
	}

	invocationID := r.Header.Get(invocationIDHeader)
	if invocationID == "" {
		invocationID = uuid.NewString()
	}

	// A host disconnect must not cancel an in-flight sign or send; the
	// handler's flow runs to completion once an invocation is accepted.
	s.handler.Handle(context.WithoutCancel(r.Context()), notifier.UploadEvent{
		BlobName:    req.Name,
		TriggerPath: req.TriggerPath,
		Metadata:    req.Metadata,
		Content:     bytes.NewReader(req.Content),
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(InvokeResponse{
		InvocationID: invocationID,
		Outputs:      map[string]any{},
		Logs:         []string{},
	})
}
