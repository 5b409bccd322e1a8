package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/sse"
)

const streamKeepaliveInterval = 30 * time.Second

type StreamHandler interface {
	// Stream serves attendance updates over SSE
	Stream(w http.ResponseWriter, r *http.Request)
}

type streamHandlerImpl struct {
	jwtService jwt.Service
	hub        *sse.Hub
	keepalive  time.Duration
}

func NewStreamHandler(jwtService jwt.Service, hub *sse.Hub) StreamHandler {
	return &streamHandlerImpl{
		jwtService: jwtService,
		hub:        hub,
		keepalive:  streamKeepaliveInterval,
	}
}

// Stream handles GET /attendance/stream?token=
func (h *streamHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// EventSource cannot set headers, so the short-lived token arrives in the query
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	employeeID, role, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	topic := sse.EmployeeTopic(employeeID)
	if role.Can(employee.PermissionAttendanceViewAll) {
		topic = sse.TopicTeam
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(topic)
	defer func() {
		cleanup()
		slog.Info("SSE client disconnected", "employee_id", employeeID, "topic", topic, "total_subscribers", h.hub.TotalSubscribers())
	}()
	slog.Info("SSE client connected",
		"employee_id", employeeID,
		"topic", topic,
		"topic_subscribers", h.hub.SubscriberCount(topic),
		"total_subscribers", h.hub.TotalSubscribers(),
	)

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"topic\":%q}\n\n", topic)
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
