package mocks

import (
	"context"
	"sync"

	"stayops/infras/otel"
)

// Span is what a Recorder keeps for every scope it hands out.
type Span struct {
	Scope      string
	Name       string
	Attributes map[string]any
	Events     []string
	Errors     []error
	Ended      bool
}

// Recorder is an otel.Otel that records spans in memory instead of exporting them.
type Recorder struct {
	mu    sync.Mutex
	spans []*Span
}

func NewOtel() otel.Otel {
	return NewRecorder()
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	span := &Span{Scope: scopeName, Name: spanName, Attributes: map[string]any{}}

	r.mu.Lock()
	r.spans = append(r.spans, span)
	r.mu.Unlock()

	return ctx, &scope{recorder: r, span: span}
}

func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Span returns a copy of the first span opened with name.
func (r *Recorder) Span(name string) (Span, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, span := range r.spans {
		if span.Name == name {
			return r.copy(span), true
		}
	}

	return Span{}, false
}

// Spans returns copies of every span in the order they were opened.
func (r *Recorder) Spans() []Span {
	r.mu.Lock()
	defer r.mu.Unlock()

	spans := make([]Span, len(r.spans))
	for i, span := range r.spans {
		spans[i] = r.copy(span)
	}

	return spans
}

func (r *Recorder) copy(span *Span) Span {
	out := *span
	out.Attributes = make(map[string]any, len(span.Attributes))

	for k, v := range span.Attributes {
		out.Attributes[k] = v
	}

	out.Events = append([]string(nil), span.Events...)
	out.Errors = append([]error(nil), span.Errors...)

	return out
}

type scope struct {
	recorder *Recorder
	span     *Span
}

func (s *scope) End() {
	s.recorder.mu.Lock()
	s.span.Ended = true
	s.recorder.mu.Unlock()
}

func (s *scope) TraceError(err error) {
	s.recorder.mu.Lock()
	s.span.Errors = append(s.span.Errors, err)
	s.recorder.mu.Unlock()
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scope) AddEvent(name string) {
	s.recorder.mu.Lock()
	s.span.Events = append(s.span.Events, name)
	s.recorder.mu.Unlock()
}

func (s *scope) SetAttribute(key string, value any) {
	s.recorder.mu.Lock()
	s.span.Attributes[key] = value
	s.recorder.mu.Unlock()
}

func (s *scope) SetAttributes(attributes map[string]any) {
	s.recorder.mu.Lock()
	for k, v := range attributes {
		s.span.Attributes[k] = v
	}
	s.recorder.mu.Unlock()
}
