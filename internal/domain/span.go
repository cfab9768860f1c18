package domain

import (
	"context"
	"time"
)

type Span struct {
	Name    string `json:"name"`
	startTs time.Time
	Elapsed *time.Duration `json:"elapsed"`
}

type contextKey string

const ContextProfileKey contextKey = "performanceProfile"

// GetProfile returns the profile stored on ctx, or a detached one so
// callers never have to nil check
func GetProfile(ctx context.Context) (profile *Profile, endProfile func()) {
	profile, ok := ctx.Value(ContextProfileKey).(*Profile)
	if !ok {
		profile, _ = NewProfile()
	}
	return profile, profile.End
}

// Profile is simply a list of spans
type Profile struct {
	Spans   []*Span
	startTs time.Time
	Total   *time.Duration
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
	return newProfile, newProfile.End
}

func NewCtxWithProfile(ctx context.Context, profile *Profile) context.Context {
	return context.WithValue(ctx, ContextProfileKey, profile)
}

func (p *Profile) End() {
	if p.Total == nil {
		t := time.Since(p.startTs)
		p.Total = &t
	}
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs)
		s.Elapsed = &t
	}
}

// StartNewSpan ends the last span and begins a new one
// not thread safe
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	newSpan = &Span{
		Name:    name,
		startTs: time.Now(),
	}
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, newSpan)
	return newSpan, newSpan.End
}

// Durations flattens the spans for logging
func (p *Profile) Durations() map[string]time.Duration {
	out := map[string]time.Duration{}
	for _, s := range p.Spans {
		if s.Elapsed != nil {
			out[s.Name] = *s.Elapsed
		}
	}
	return out
}
