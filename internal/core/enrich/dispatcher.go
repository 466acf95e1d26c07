package enrich

import (
	"context"
	"log"
	"sync"

	"github.com/graphbio/helix/internal/core/model"
	"github.com/graphbio/helix/internal/core/registry"
	"github.com/graphbio/helix/internal/refsource"
)

// PlaceholderDescription is shown for namespaces no reference service
// covers when no fallback summarizer is configured.
const PlaceholderDescription = "No reference summary is available for this entity."

// ErrorDescription is the user-facing message for any failed fetch. Network
// errors, bad statuses and malformed payloads all collapse into it.
const ErrorDescription = "Could not load a summary for this entity. Try again later."

// Update notifies a subscriber that one entity's enrichment state changed.
type Update struct {
	Key   string
	State model.EnrichmentState
}

// Dispatcher runs the lazy per-entity enrichment pipeline. State and cached
// summaries live for one catalog and are discarded wholesale on Reset; an
// in-flight fetch that outlives its catalog completes against the stale
// generation and is ignored. Catalog records are never mutated: a fetched
// summary lands in the dispatcher's own cache and is folded into copies via
// Enriched, so readers marshaling records never race with a completing
// fetch.
type Dispatcher struct {
	mu         sync.Mutex
	generation uint64
	states     map[string]model.EnrichmentState
	summaries  map[string]*model.SummaryRecord
	messages   map[string]string
	subs       []chan Update

	sources  map[string]refsource.Fetcher
	fallback refsource.Summarizer
}

func NewDispatcher(sources map[string]refsource.Fetcher, fallback refsource.Summarizer) *Dispatcher {
	return &Dispatcher{
		states:    make(map[string]model.EnrichmentState),
		summaries: make(map[string]*model.SummaryRecord),
		messages:  make(map[string]string),
		sources:   sources,
		fallback:  fallback,
	}
}

// Enrich triggers enrichment for one entity and returns the resulting state.
// Idempotent while loading or ready: a second trigger before the first fetch
// completes performs no additional network call. An errored entity may be
// retried. The fetch itself runs detached from the caller's context, there
// is no cancellation; a collapsed entity's fetch simply finishes unobserved.
func (d *Dispatcher) Enrich(ctx context.Context, rec *model.EntityRecord) model.EnrichmentState {
	key := rec.Key()

	d.mu.Lock()
	state := d.states[key]
	if state == model.StateLoading || state == model.StateReady {
		d.mu.Unlock()
		return state
	}
	d.states[key] = model.StateLoading
	generation := d.generation
	d.notifyLocked(Update{Key: key, State: model.StateLoading})
	d.mu.Unlock()

	go d.run(context.WithoutCancel(ctx), generation, rec)

	return model.StateLoading
}

func (d *Dispatcher) run(ctx context.Context, generation uint64, rec *model.EntityRecord) {
	summary, err := d.fetch(ctx, rec)

	d.mu.Lock()
	defer d.mu.Unlock()

	// A newer catalog replaced this one while the fetch was in flight; the
	// result belongs to a session nobody can see anymore.
	if generation != d.generation {
		return
	}

	key := rec.Key()
	if err != nil {
		log.Printf("enrichment failed for %s: %v", rec.ID, err)
		d.states[key] = model.StateError
		d.messages[key] = ErrorDescription
		d.notifyLocked(Update{Key: key, State: model.StateError})
		return
	}

	d.summaries[key] = summary
	d.states[key] = model.StateReady
	delete(d.messages, key)
	d.notifyLocked(Update{Key: key, State: model.StateReady})
}

// fetch selects the capability for the record's namespace. Unsupported
// namespaces go to the configured fallback summarizer, or to the static
// placeholder when none is configured.
func (d *Dispatcher) fetch(ctx context.Context, rec *model.EntityRecord) (*model.SummaryRecord, error) {
	if fetcher, ok := d.sources[rec.Namespace()]; ok {
		return fetcher.Fetch(ctx, rec.ID)
	}
	if d.fallback != nil {
		return d.fallback.Summarize(ctx, rec)
	}
	return &model.SummaryRecord{Description: PlaceholderDescription, Source: "placeholder"}, nil
}

// Enriched returns a copy of the record with its cached summary folded in:
// the description and data keys widen the property map non-destructively,
// and a display name that was only a formatted identifier is upgraded to the
// summary's name. The live record is left untouched.
func (d *Dispatcher) Enriched(rec *model.EntityRecord) *model.EntityRecord {
	d.mu.Lock()
	summary := d.summaries[rec.Key()]
	d.mu.Unlock()

	out := rec.Clone()
	if summary == nil {
		return out
	}
	if summary.Description != "" {
		if _, ok := out.RawProperties["description"]; !ok {
			out.RawProperties["description"] = summary.Description
		}
	}
	for k, v := range summary.Data {
		if _, ok := out.RawProperties[k]; !ok {
			out.RawProperties[k] = v
		}
	}
	if summary.Name != "" && out.DisplayName == registry.FormatIdentifier(out.ID) {
		out.DisplayName = summary.Name
	}
	return out
}

// State returns the current enrichment state for a catalog key.
func (d *Dispatcher) State(key string) model.EnrichmentState {
	d.mu.Lock()
	defer d.mu.Unlock()
	if s, ok := d.states[key]; ok {
		return s
	}
	return model.StateIdle
}

// Summary returns the cached summary for a catalog key, or nil.
func (d *Dispatcher) Summary(key string) *model.SummaryRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.summaries[key]
}

// Message returns the user-facing failure message for an errored key.
func (d *Dispatcher) Message(key string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.messages[key]
}

// Subscribe registers a listener for state transitions. Slow subscribers
// miss updates rather than block the dispatcher.
func (d *Dispatcher) Subscribe() <-chan Update {
	d.mu.Lock()
	defer d.mu.Unlock()
	ch := make(chan Update, 64)
	d.subs = append(d.subs, ch)
	return ch
}

// Unsubscribe removes a listener registered with Subscribe and closes its
// channel. A subscriber that is dropped without unsubscribing keeps its
// buffer alive for the dispatcher's lifetime.
func (d *Dispatcher) Unsubscribe(ch <-chan Update) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, sub := range d.subs {
		if sub == ch {
			d.subs = append(d.subs[:i], d.subs[i+1:]...)
			close(sub)
			return
		}
	}
}

// Reset discards all enrichment state. Called when a new result set replaces
// the catalog; in-flight fetches from the old generation are ignored when
// they complete.
func (d *Dispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	d.states = make(map[string]model.EnrichmentState)
	d.summaries = make(map[string]*model.SummaryRecord)
	d.messages = make(map[string]string)
}

func (d *Dispatcher) notifyLocked(u Update) {
	for _, ch := range d.subs {
		select {
		case ch <- u:
		default:
		}
	}
}
