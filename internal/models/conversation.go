package models

import "sort"

// Ключи контекста, которые понимает генератор шаблонов.
const (
	ContextKeyTone     = "tone"
	ContextKeyAudience = "audience"
	ContextKeyPurpose  = "purpose"
	ContextKeyStyle    = "style"
)

// ConversationContext holds the preferences collected during the chat. The
// server keeps no session: the caller sends it with every request and gets it
// back in every response.
type ConversationContext map[string]string

// Clone returns an independent copy. A nil context clones to an empty one.
func (c ConversationContext) Clone() ConversationContext {
	out := make(ConversationContext, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// GetOrDefault returns the value stored under key, or def when the key is absent.
func (c ConversationContext) GetOrDefault(key, def string) string {
	if v, ok := c[key]; ok {
		return v
	}
	return def
}

// ExtraKeys returns the keys outside of tone/audience/purpose/style, sorted.
func (c ConversationContext) ExtraKeys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		switch k {
		case ContextKeyTone, ContextKeyAudience, ContextKeyPurpose, ContextKeyStyle:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FlowStep identifies a stage of the template-building conversation.
type FlowStep string

const (
	StepInitial          FlowStep = "initial"
	StepCollectDetails   FlowStep = "collect_details"
	StepCollectURLs      FlowStep = "collect_urls"
	StepGenerateTemplate FlowStep = "generate_template"
	StepComplete         FlowStep = "complete"
)

// ParseFlowStep maps the raw step sent by the client onto a known step.
// Empty and unknown values become StepInitial.
func ParseFlowStep(raw string) FlowStep {
	switch step := FlowStep(raw); step {
	case StepCollectDetails, StepCollectURLs, StepGenerateTemplate, StepComplete:
		return step
	default:
		return StepInitial
	}
}

// String implements fmt.Stringer.
func (s FlowStep) String() string {
	return string(s)
}
