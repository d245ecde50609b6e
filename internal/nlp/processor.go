package nlp

import "math/rand"

// Processor composes the full text pipeline: tokenize, recognize entities,
// classify intent, update the dialogue context, and generate a reply.
type Processor struct {
	context   *ContextManager
	responder *Responder
}

// NewProcessor wires a pipeline around the given randomness source.
func NewProcessor(rng *rand.Rand) *Processor {
	return &Processor{
		context:   NewContextManager(),
		responder: NewResponder(rng),
	}
}

// Turn is the pipeline output for one utterance.
type Turn struct {
	Tokens   []Token
	Entities []Entity
	Intent   Classification
	Reply    string
}

// Process runs one utterance through the pipeline and returns the turn's
// extracted state plus the generated reply.
func (p *Processor) Process(text string) Turn {
	tokens := Tokenize(text)
	entities := Recognize(tokens)
	intent := Classify(text)

	p.context.Update(entities, intent)
	reply := p.responder.Respond(entities, intent, p.context.Snapshot())

	return Turn{
		Tokens:   tokens,
		Entities: entities,
		Intent:   intent,
		Reply:    reply,
	}
}

// Context exposes the current dialogue context snapshot.
func (p *Processor) Context() Context {
	return p.context.Snapshot()
}

// Reset discards all accumulated dialogue context.
func (p *Processor) Reset() {
	p.context.Reset()
}
