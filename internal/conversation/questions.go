package conversation

import "math/rand"

var greetings = []string{
	"Hello! I'm your health assistant. How are you feeling today? Please describe any symptoms you're experiencing.",
	"Hi! I'm here to help you understand your health concerns better. What symptoms would you like to discuss?",
	"Welcome! I'm your AI health assistant. Please tell me what's bothering you, and I'll help assess your symptoms.",
}

var clarifyingQuestions = []string{
	"Could you describe your symptoms in more detail? For example, when did they start and where do you feel discomfort?",
	"To help you better, could you tell me more about what you're experiencing and when it started?",
	"I'd like to understand your symptoms better. Could you describe what you're feeling and how long it's been happening?",
}

// Picker selects greetings and clarifying questions from fixed pools using an
// injected randomness source, so tests can pin the selection.
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a Picker drawing from rng.
func NewPicker(rng *rand.Rand) *Picker {
	return &Picker{rng: rng}
}

// Greeting picks one of the fixed greetings.
func (p *Picker) Greeting() string {
	return greetings[p.rng.Intn(len(greetings))]
}

// Clarifying picks a clarifying question not yet in asked. Once the pool is
// exhausted it falls back to reusing questions rather than retrying forever.
func (p *Picker) Clarifying(asked map[string]bool) string {
	var fresh []string
	for _, q := range clarifyingQuestions {
		if !asked[q] {
			fresh = append(fresh, q)
		}
	}
	if len(fresh) == 0 {
		fresh = clarifyingQuestions
	}
	return fresh[p.rng.Intn(len(fresh))]
}
