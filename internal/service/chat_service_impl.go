package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"healthassist/internal/conversation"
	"healthassist/internal/db"
	"healthassist/internal/domain"
	"healthassist/internal/nlp"
	"healthassist/internal/repository"
	"healthassist/internal/triage"
)

type chatService struct {
	mu sync.Mutex

	transcripts repository.TranscriptRepo
	profiles    repository.ProfileRepo
	uow         db.UnitOfWork

	session   domain.ChatSession
	step      domain.OnboardingStep
	profile   domain.UserProfile
	state     *domain.ConversationState
	processor *nlp.Processor
	flow      *conversation.Flow

	now func() time.Time
}

// NewChatService wires the conversational engine. The randomness source feeds
// greeting and clarifying-question selection; pass a fixed seed for
// deterministic replies in tests.
func NewChatService(transcripts repository.TranscriptRepo, profiles repository.ProfileRepo, uow db.UnitOfWork, rng *rand.Rand) ChatService {
	return &chatService{
		transcripts: transcripts,
		profiles:    profiles,
		uow:         uow,
		step:        domain.StepInitial,
		state:       domain.NewConversationState(),
		processor:   nlp.NewProcessor(rng),
		flow:        conversation.NewFlow(conversation.NewPicker(rng)),
		now:         time.Now,
	}
}

func (s *chatService) StartSession(ctx context.Context) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startSessionLocked(ctx)
}

// startSessionLocked opens a session and emits the onboarding intro. The
// intro consumes the initial onboarding step, so the first user message is
// read as the name answer.
func (s *chatService) startSessionLocked(ctx context.Context) (domain.Message, error) {
	s.session = domain.ChatSession{
		ID:        uuid.New().String(),
		StartedAt: s.now().UTC(),
	}
	s.step = domain.StepName
	s.profile = domain.UserProfile{}
	s.state = domain.NewConversationState()
	// Hand the turn-gated flow its gathering position: the onboarding intro
	// stands in for the flow's own greeting.
	s.state.CurrentStep = domain.ConvGathering
	s.processor.Reset()

	intro := s.botMessage(conversation.IntroMessage)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTranscripts := repository.NewSQLiteTranscriptRepo(tx)
		if err := txTranscripts.CreateSession(ctx, &s.session); err != nil {
			return err
		}
		return txTranscripts.AppendMessage(ctx, &intro)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return intro, nil
}

func (s *chatService) SubmitUtterance(ctx context.Context, text string) (*ChatTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userMsg := domain.Message{
		ID:        uuid.New().String(),
		SessionID: s.session.ID,
		Role:      domain.RoleUser,
		Content:   text,
		CreatedAt: s.now().UTC(),
	}

	turn := &ChatTurn{UserMessage: userMsg}

	var reply string
	if s.step != domain.StepSymptoms && s.step != domain.StepComplete {
		var err error
		reply, err = s.advanceOnboarding(ctx, text)
		if err != nil {
			return nil, err
		}
	} else {
		reply = s.analysisTurn(text, turn)
	}

	turn.BotMessage = s.botMessage(reply)
	turn.Step = s.step

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTranscripts := repository.NewSQLiteTranscriptRepo(tx)
		if err := txTranscripts.AppendMessage(ctx, &turn.UserMessage); err != nil {
			return err
		}
		return txTranscripts.AppendMessage(ctx, &turn.BotMessage)
	})
	if err != nil {
		return nil, err
	}
	return turn, nil
}

// advanceOnboarding feeds one answer to the intake machine and persists the
// profile snapshot once the machine moved.
func (s *chatService) advanceOnboarding(ctx context.Context, text string) (string, error) {
	reply, next := conversation.AdvanceOnboarding(&s.profile, s.step, text)
	if next != s.step {
		s.step = next
		if err := s.profiles.Upsert(ctx, s.session.ID, &s.profile); err != nil {
			return "", fmt.Errorf("persist profile: %w", err)
		}
	}
	return reply, nil
}

// analysisTurn runs both pipelines over a symptoms-phase utterance and picks
// the reply: emergency overrides first, then the turn-gated flow for detected
// symptoms, then the intent-driven response tree, then a clarifying question.
func (s *chatService) analysisTurn(text string, turn *ChatTurn) string {
	nlpTurn := s.processor.Process(text)
	analysis := triage.Analyze(text)

	turn.Analysis = analysis
	turn.Entities = nlpTurn.Entities
	turn.Intent = nlpTurn.Intent

	// Emergency signaled only by the entity/intent pipeline (for example an
	// emergency_help intent with no catalog symptom) still overrides.
	if !triage.IsEmergencyUtterance(text, analysis.Severity) &&
		nlp.IsEmergency(nlpTurn.Entities, nlpTurn.Intent) {
		return nlpTurn.Reply
	}

	if len(analysis.DetectedSymptoms) == 0 &&
		!triage.IsEmergencyUtterance(text, analysis.Severity) &&
		nlpTurn.Intent.Intent != domain.IntentUnknown {
		// A recognizable intent without catalog symptoms gets the response
		// generator's guidance (describe-first prompts, clarifications).
		return nlpTurn.Reply
	}

	return s.flow.Respond(s.state, analysis, text, s.profile)
}

func (s *chatService) Reset(ctx context.Context) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.ID != "" {
		if err := s.transcripts.EndSession(ctx, s.session.ID); err != nil {
			return domain.Message{}, err
		}
	}
	return s.startSessionLocked(ctx)
}

func (s *chatService) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.ID
}

func (s *chatService) Profile() domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *chatService) Step() domain.OnboardingStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *chatService) botMessage(content string) domain.Message {
	return domain.Message{
		ID:        uuid.New().String(),
		SessionID: s.session.ID,
		Role:      domain.RoleBot,
		Content:   content,
		CreatedAt: s.now().UTC(),
	}
}
