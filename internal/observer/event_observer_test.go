package observer

import (
	"sync"
	"sync/atomic"
	"testing"

	"go-jobpost-verifier/pkg/models"
)

type countingObserver struct {
	count int32
	last  Event
	mu    sync.Mutex
}

func (o *countingObserver) Notify(e Event) {
	atomic.AddInt32(&o.count, 1)
	o.mu.Lock()
	o.last = e
	o.mu.Unlock()
}

func TestPublisherFansOut(t *testing.T) {
	p := NewPublisher()
	a, b := &countingObserver{}, &countingObserver{}
	p.Register(a)
	p.Register(b)

	p.Publish(Event{
		Type:       EventClassificationCompleted,
		Filename:   "posting.png",
		Prediction: models.PredictionGenuine,
		Confidence: 82,
	})

	for _, o := range []*countingObserver{a, b} {
		if got := atomic.LoadInt32(&o.count); got != 1 {
			t.Errorf("notify count = %d, want 1", got)
		}
		if o.last.Prediction != models.PredictionGenuine {
			t.Errorf("prediction = %s", o.last.Prediction)
		}
	}
}

func TestPublisherNoObservers(t *testing.T) {
	// publishing with nothing registered must not panic
	NewPublisher().Publish(Event{Type: EventExtractionCompleted})
}

func TestPublisherConcurrentPublish(t *testing.T) {
	p := NewPublisher()
	o := &countingObserver{}
	p.Register(o)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Publish(Event{Type: EventAnalyzerFailed})
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&o.count); got != 20 {
		t.Errorf("notify count = %d, want 20", got)
	}
}
