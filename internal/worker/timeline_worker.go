package worker

import (
	"github.com/spec-kit/agent-console/internal/events"
	"github.com/spec-kit/agent-console/internal/service"
)

// StartTimelineWorker wires the timeline projector to the dispatcher.
func StartTimelineWorker(projector *service.TimelineProjector, dispatcher events.Dispatcher) {
	if projector == nil {
		return
	}
	projector.RegisterHandlers(dispatcher)
}
