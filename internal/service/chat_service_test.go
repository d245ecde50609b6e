package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthassist/internal/conversation"
	"healthassist/internal/domain"
	"healthassist/internal/repository"
	"healthassist/internal/testutil"
)

func newTestChatService(t *testing.T) (ChatService, *repository.SQLiteTranscriptRepo, *repository.SQLiteProfileRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	transcripts := repository.NewSQLiteTranscriptRepo(db)
	profiles := repository.NewSQLiteProfileRepo(db)
	uow := testutil.NewTestUoW(db)
	svc := NewChatService(transcripts, profiles, uow, rand.New(rand.NewSource(1)))
	return svc, transcripts, profiles
}

func completeOnboarding(t *testing.T, svc ChatService) {
	t.Helper()
	ctx := context.Background()
	for _, answer := range []string{"Alice", "30", "female", "none", "none", "none"} {
		_, err := svc.SubmitUtterance(ctx, answer)
		require.NoError(t, err)
	}
	require.Equal(t, domain.StepSymptoms, svc.Step())
}

func TestChatService_StartSessionEmitsIntro(t *testing.T) {
	svc, transcripts, _ := newTestChatService(t)
	ctx := context.Background()

	intro, err := svc.StartSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, conversation.IntroMessage, intro.Content)
	assert.Equal(t, domain.RoleBot, intro.Role)
	assert.Equal(t, domain.StepName, svc.Step())

	messages, err := transcripts.ListMessages(ctx, svc.SessionID())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, conversation.IntroMessage, messages[0].Content)
}

func TestChatService_OnboardingCollectsProfile(t *testing.T) {
	svc, _, profiles := newTestChatService(t)
	ctx := context.Background()

	_, err := svc.StartSession(ctx)
	require.NoError(t, err)

	completeOnboarding(t, svc)

	profile := svc.Profile()
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, 30, profile.Age)
	assert.Equal(t, "female", profile.Gender)
	assert.Equal(t, "none", profile.MedicalHistory)
	assert.Equal(t, "none", profile.CurrentMedications)
	assert.Equal(t, "none", profile.Allergies)

	stored, err := profiles.Get(ctx, svc.SessionID())
	require.NoError(t, err)
	assert.Equal(t, profile, *stored)
}

func TestChatService_InvalidAgeDoesNotAdvance(t *testing.T) {
	svc, _, _ := newTestChatService(t)
	ctx := context.Background()

	_, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SubmitUtterance(ctx, "Alice")
	require.NoError(t, err)

	turn, err := svc.SubmitUtterance(ctx, "twenty")
	require.NoError(t, err)
	assert.Equal(t, "Please enter a valid age in numbers.", turn.BotMessage.Content)
	assert.Equal(t, domain.StepAge, svc.Step())

	turn, err = svc.SubmitUtterance(ctx, "30")
	require.NoError(t, err)
	assert.Equal(t, domain.StepGender, svc.Step())
	assert.Contains(t, turn.BotMessage.Content, "your gender")
}

func TestChatService_SymptomTurnRunsAnalysis(t *testing.T) {
	svc, _, _ := newTestChatService(t)
	ctx := context.Background()

	_, err := svc.StartSession(ctx)
	require.NoError(t, err)
	completeOnboarding(t, svc)

	turn, err := svc.SubmitUtterance(ctx, "I am having a headache")
	require.NoError(t, err)

	assert.NotEmpty(t, turn.Analysis.DetectedSymptoms)
	assert.NotEqual(t, domain.Intent(""), turn.Intent.Intent)
	assert.Contains(t, turn.BotMessage.Content, "How long have you had these symptoms?")
}

func TestChatService_EmergencyPhraseShortCircuits(t *testing.T) {
	svc, _, _ := newTestChatService(t)
	ctx := context.Background()

	_, err := svc.StartSession(ctx)
	require.NoError(t, err)
	completeOnboarding(t, svc)

	turn, err := svc.SubmitUtterance(ctx, "I can't breathe")
	require.NoError(t, err)

	assert.Equal(t, domain.SeveritySevere, turn.Analysis.Severity)
	assert.Contains(t, turn.BotMessage.Content, "Call emergency services (911) immediately")
}

func TestChatService_EmergencyIntentWithoutSymptoms(t *testing.T) {
	svc, _, _ := newTestChatService(t)
	ctx := context.Background()

	_, err := svc.StartSession(ctx)
	require.NoError(t, err)
	completeOnboarding(t, svc)

	// "urgent" carries the emergency intent but matches no catalog keyword
	// and no severity phrase, so only the entity/intent pipeline fires.
	turn, err := svc.SubmitUtterance(ctx, "urgent")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentEmergencyHelp, turn.Intent.Intent)
	assert.Contains(t, turn.BotMessage.Content, "Call emergency services (911) immediately")
}

func TestChatService_KnownIntentWithoutSymptoms(t *testing.T) {
	svc, _, _ := newTestChatService(t)
	ctx := context.Background()

	_, err := svc.StartSession(ctx)
	require.NoError(t, err)
	completeOnboarding(t, svc)

	turn, err := svc.SubmitUtterance(ctx, "what should we do")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentAskRecommendations, turn.Intent.Intent)
	assert.Equal(t, "To provide specific recommendations, could you please describe your symptoms first?",
		turn.BotMessage.Content)
}

func TestChatService_UnrecognizedInputGetsClarifyingQuestion(t *testing.T) {
	svc, _, _ := newTestChatService(t)
	ctx := context.Background()

	_, err := svc.StartSession(ctx)
	require.NoError(t, err)
	completeOnboarding(t, svc)

	turn, err := svc.SubmitUtterance(ctx, "hello")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentUnknown, turn.Intent.Intent)
	assert.Contains(t, turn.BotMessage.Content, "symptoms")
	assert.Contains(t, turn.BotMessage.Content, "?")
}

func TestChatService_TurnsArePersisted(t *testing.T) {
	svc, transcripts, _ := newTestChatService(t)
	ctx := context.Background()

	_, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SubmitUtterance(ctx, "Alice")
	require.NoError(t, err)

	messages, err := transcripts.ListMessages(ctx, svc.SessionID())
	require.NoError(t, err)
	// Intro plus one user/bot pair.
	require.Len(t, messages, 3)
	assert.Equal(t, domain.RoleBot, messages[0].Role)
	assert.Equal(t, domain.RoleUser, messages[1].Role)
	assert.Equal(t, "Alice", messages[1].Content)
	assert.Equal(t, domain.RoleBot, messages[2].Role)
}

func TestChatService_ResetStartsFreshSession(t *testing.T) {
	svc, transcripts, _ := newTestChatService(t)
	ctx := context.Background()

	_, err := svc.StartSession(ctx)
	require.NoError(t, err)
	firstID := svc.SessionID()
	completeOnboarding(t, svc)

	intro, err := svc.Reset(ctx)
	require.NoError(t, err)

	assert.Equal(t, conversation.IntroMessage, intro.Content)
	assert.NotEqual(t, firstID, svc.SessionID())
	assert.Equal(t, domain.StepName, svc.Step())
	assert.Equal(t, domain.UserProfile{}, svc.Profile())

	old, err := transcripts.GetSession(ctx, firstID)
	require.NoError(t, err)
	assert.NotNil(t, old.EndedAt)
}

func TestChatService_IntakeConsumesEmergencyPhrases(t *testing.T) {
	svc, _, _ := newTestChatService(t)
	ctx := context.Background()

	_, err := svc.StartSession(ctx)
	require.NoError(t, err)

	// Before the symptoms phase every utterance is read as the intake answer,
	// even an alarming one.
	turn, err := svc.SubmitUtterance(ctx, "I can't breathe")
	require.NoError(t, err)

	assert.Equal(t, domain.StepAge, svc.Step())
	assert.Contains(t, turn.BotMessage.Content, "Thank you, I can't breathe.")
	assert.NotContains(t, turn.BotMessage.Content, "911")
	assert.Empty(t, turn.Analysis.DetectedSymptoms)
}

type failingProfileRepo struct {
	repository.ProfileRepo
	err error
}

func (r *failingProfileRepo) Upsert(ctx context.Context, sessionID string, p *domain.UserProfile) error {
	return r.err
}

func TestChatService_ProfilePersistenceFailureFailsTurn(t *testing.T) {
	db := testutil.NewTestDB(t)
	transcripts := repository.NewSQLiteTranscriptRepo(db)
	profiles := &failingProfileRepo{err: errors.New("disk full")}
	uow := testutil.NewTestUoW(db)
	svc := NewChatService(transcripts, profiles, uow, rand.New(rand.NewSource(1)))
	ctx := context.Background()

	_, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SubmitUtterance(ctx, "Alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist profile")
	assert.ErrorIs(t, err, profiles.err)
}
