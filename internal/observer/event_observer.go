// Package observer fan-outs pipeline lifecycle events to registered sinks.
package observer

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"go-jobpost-verifier/pkg/models"
)

const (
	EventExtractionCompleted     = "extraction_completed"
	EventClassificationCompleted = "classification_completed"
	EventAnalyzerFailed          = "analyzer_failed"
)

// Event is one pipeline occurrence worth reporting
type Event struct {
	Type       string
	Filename   string
	Prediction models.Prediction
	Confidence float64
	Duration   time.Duration
	Details    map[string]interface{}
}

// Observer consumes pipeline events. Implementations must be safe for
// concurrent Notify calls.
type Observer interface {
	Notify(event Event)
}

// Publisher distributes events to every registered observer
type Publisher struct {
	mu        sync.RWMutex
	observers []Observer
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Register(o Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, o)
}

func (p *Publisher) Publish(e Event) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, o := range p.observers {
		o.Notify(e)
	}
}

// LoggingObserver writes every event to the structured log
type LoggingObserver struct {
	log *logrus.Entry
}

func NewLoggingObserver(log *logrus.Entry) *LoggingObserver {
	return &LoggingObserver{log: log}
}

func (o *LoggingObserver) Notify(e Event) {
	fields := logrus.Fields{
		"event":       e.Type,
		"duration_ms": e.Duration.Milliseconds(),
	}
	if e.Filename != "" {
		fields["filename"] = e.Filename
	}
	if e.Prediction != "" {
		fields["prediction"] = e.Prediction
		fields["confidence"] = e.Confidence
	}
	for k, v := range e.Details {
		fields[k] = v
	}
	o.log.WithFields(fields).Info("Pipeline event")
}
