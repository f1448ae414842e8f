package query

import "context"

// Stream event type discriminators, carried in each event's "type" field.
const (
	EventStart    = "start"
	EventResult   = "result"
	EventError    = "error"
	EventComplete = "complete"
)

// StartEvent opens a stream and fixes the candidate total.
type StartEvent struct {
	Type  string `json:"type"`
	Total int    `json:"total"`
}

// ResultEvent reports one completed lookup with running progress.
type ResultEvent struct {
	Type         string `json:"type"`
	Domain       string `json:"domain"`
	DomainSuffix string `json:"domain_suffix"`
	IsRegistered bool   `json:"is_registered"`
	QueryTime    string `json:"query_time,omitempty"`
	Completed    int    `json:"completed"`
	Total        int    `json:"total"`
}

// ErrorEvent terminates a stream after a failed lookup.
type ErrorEvent struct {
	Type      string `json:"type"`
	Error     string `json:"error"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// CompleteEvent terminates a stream that exhausted all candidates, listing
// the domains found unregistered in completion order.
type CompleteEvent struct {
	Type         string   `json:"type"`
	Total        int      `json:"total"`
	Completed    int      `json:"completed"`
	Unregistered []string `json:"unregistered"`
}

// EventWriter delivers one event to the stream consumer. A non-nil return
// means the consumer is gone; it is routine flow control, not a fault, and
// the stream stops issuing lookups.
type EventWriter func(event any) error

// StreamState is the terminal state of a streaming operation.
type StreamState int

const (
	// StreamCompleted means every candidate was looked up and the complete
	// event was delivered.
	StreamCompleted StreamState = iota
	// StreamAborted means the stream stopped early: consumer disconnect or a
	// failed lookup reported through an error event.
	StreamAborted
)

// ErrNoCandidates reports input that yields no base fragments.
var ErrNoCandidates = &ValidationError{Reason: "no valid domain fragments in input"}

// StreamQueryFromText drives the candidate sequence through the client,
// emitting one event per completed lookup. Setup failures (no fragments, bad
// suffix config, bad combination) are returned before any event is written so
// the caller can report a request-level error. After the start event, lookup
// failures terminate the stream with an error event and a write failure
// aborts it silently; neither is returned as an error.
func StreamQueryFromText(ctx context.Context, client Lookuper, configPath string, write EventWriter, inputs ...string) (StreamState, error) {
	bases := ParseTextLines(inputs...)
	if len(bases) == 0 {
		return StreamAborted, ErrNoCandidates
	}

	suffixes, err := LoadSuffixes(configPath)
	if err != nil {
		return StreamAborted, err
	}
	candidates, err := BuildCandidates(bases, suffixes)
	if err != nil {
		return StreamAborted, err
	}

	total := len(candidates)
	if err := write(StartEvent{Type: EventStart, Total: total}); err != nil {
		return StreamAborted, nil
	}

	completed := 0
	unregistered := make([]string, 0, total)
	for _, domain := range candidates {
		result, err := client.Lookup(ctx, domain)
		if err != nil {
			// Best effort: the consumer may already be gone.
			_ = write(ErrorEvent{Type: EventError, Error: err.Error(), Completed: completed, Total: total})
			return StreamAborted, nil
		}

		completed++
		if !result.IsRegistered {
			unregistered = append(unregistered, result.Domain)
		}
		event := ResultEvent{
			Type:         EventResult,
			Domain:       result.Domain,
			DomainSuffix: result.DomainSuffix,
			IsRegistered: result.IsRegistered,
			QueryTime:    result.QueryTime,
			Completed:    completed,
			Total:        total,
		}
		if err := write(event); err != nil {
			return StreamAborted, nil
		}
	}

	if err := write(CompleteEvent{Type: EventComplete, Total: total, Completed: completed, Unregistered: unregistered}); err != nil {
		return StreamAborted, nil
	}
	return StreamCompleted, nil
}
