package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tutorloop/tutorloop/internal/agents"
	"github.com/tutorloop/tutorloop/internal/assess"
	"github.com/tutorloop/tutorloop/internal/plan"
	"github.com/tutorloop/tutorloop/internal/store"
	"github.com/tutorloop/tutorloop/internal/taxonomy"
)

// ErrSessionNotFound is returned for turns against unknown sessions.
var ErrSessionNotFound = errors.New("session not found")

// RunTurn processes one student utterance and returns the next
// question or the completion summary. Turns of the same session are
// serialized; collaborator failures degrade per their contracts while
// persistence failures abort the turn.
func (o *Orchestrator) RunTurn(ctx context.Context, sessionID, utterance string) (*TurnResult, error) {
	mu := o.locks.lock(sessionID)
	defer mu.Unlock()

	sess, err := o.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	if sess.Status != store.StatusActive {
		return nil, store.ErrSessionCompleted
	}

	mode := plan.ParseMode(sess.Mode)

	prior, err := o.messages.LastQuestion(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading last question: %w", err)
	}

	// Record phase.
	var scored *agents.ScoreResult
	if prior != nil {
		result, recErr := o.recordAnswer(ctx, sess, prior, utterance)
		if recErr != nil {
			return nil, recErr
		}
		scored = result
	} else {
		bare := &store.Message{
			SessionID: sessionID,
			Role:      store.RoleUser,
			Content:   utterance,
			TS:        time.Now(),
		}
		if err := o.messages.Append(ctx, bare); err != nil {
			return nil, fmt.Errorf("recording opening turn: %w", err)
		}
	}

	askedCount, err := o.messages.AskedCount(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("counting questions: %w", err)
	}

	// Completion check: only the answer to the final exam question
	// completes, never the initial turn.
	if mode == plan.ModeExam && prior != nil && askedCount >= o.questionLimit(sess) {
		return o.complete(ctx, sess, scored)
	}

	// Planning phase.
	score := initialScore
	if scored != nil {
		score = scored.Score
	}
	prevBloom := taxonomy.DefaultBloom
	prevDifficulty := plan.DefaultDifficulty
	if prior != nil {
		if prior.BloomLevel != "" {
			prevBloom = taxonomy.BloomLevel(prior.BloomLevel)
		}
		if prior.Difficulty != "" {
			prevDifficulty = plan.Difficulty(prior.Difficulty)
		}
	}
	targetBloom := plan.NextBloom(prevBloom, score, mode)
	targetDifficulty := plan.NextDifficulty(prevDifficulty, score)

	// Selection phase. askedCount doubles as the curated-bank index.
	question, err := o.selector.Next(ctx, mode, askedCount, agents.GenerateInput{
		Topic:       sess.Topic,
		TargetBloom: targetBloom,
		Difficulty:  targetDifficulty,
		LastAnswer:  utterance,
	})
	if err != nil {
		return nil, fmt.Errorf("selecting question: %w", err)
	}

	assistant := &store.Message{
		SessionID:  sessionID,
		Role:       store.RoleAssistant,
		Content:    question,
		BloomLevel: string(targetBloom),
		Difficulty: string(targetDifficulty),
		TS:         time.Now(),
	}
	if err := o.messages.Append(ctx, assistant); err != nil {
		return nil, fmt.Errorf("recording question: %w", err)
	}

	// Telemetry phase.
	result := &TurnResult{
		Question:         question,
		TargetBloom:      targetBloom,
		TargetDifficulty: targetDifficulty,
	}
	if scored != nil {
		result.Score = &scored.Score
		result.Confidence = &scored.Confidence
		result.Errors = scored.Errors
	}
	o.gatherTelemetry(ctx, sess, result)

	return result, nil
}

// recordAnswer scores the utterance against the prior question,
// updates every named skill, and appends the user turn record.
func (o *Orchestrator) recordAnswer(ctx context.Context, sess *store.Session, prior *store.Message, utterance string) (*agents.ScoreResult, error) {
	result := o.scorer.Score(ctx, prior.Content, utterance)

	bloom := o.bloomTagger.TagBloom(ctx, utterance)
	solo := o.soloTagger.TagSOLO(ctx, utterance)

	skills := result.Skills
	if len(skills) == 0 {
		skills = []string{generalSkill}
	}
	for _, skill := range skills {
		if _, err := o.estimator.Update(ctx, sess.ID, skill, result.Score, recordAlpha); err != nil {
			return nil, fmt.Errorf("updating skill %q: %w", skill, err)
		}
		if _, err := o.estimator.UpdateAbility(ctx, sess.ID, skill, result.Score, assess.DefaultIRTParams()); err != nil {
			return nil, fmt.Errorf("updating ability for %q: %w", skill, err)
		}
	}

	score := result.Score
	confidence := result.Confidence
	msg := &store.Message{
		SessionID:  sess.ID,
		Role:       store.RoleUser,
		Content:    utterance,
		BloomLevel: string(bloom),
		SoloLevel:  string(solo),
		Score:      &score,
		Confidence: &confidence,
		Payload: map[string]any{
			"score":       result.Score,
			"confidence":  result.Confidence,
			"bloom_level": string(result.BloomLevel),
			"errors":      result.Errors,
			"skills":      result.Skills,
		},
		TS: time.Now(),
	}
	if err := o.messages.Append(ctx, msg); err != nil {
		return nil, fmt.Errorf("recording answer: %w", err)
	}
	return &result, nil
}

// complete closes an exam session: mean score, closing recommendation,
// final assistant record, status flip. Failures here are fatal; a
// completion without its summary record would leave the session in a
// half-closed state.
func (o *Orchestrator) complete(ctx context.Context, sess *store.Session, scored *agents.ScoreResult) (*TurnResult, error) {
	mean, err := o.messages.MeanScore(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("computing mean score: %w", err)
	}

	profile, err := o.estimator.Profile(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("aggregating profile: %w", err)
	}

	history, err := o.messages.History(ctx, sess.ID, agents.MaxHistoryTurns)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	emas := make(map[string]float64, len(profile))
	for skill, s := range profile {
		emas[skill] = s.Ema
	}

	recommendation, err := o.summarizer.Summarize(ctx, sess.Topic, history, emas)
	if err != nil {
		return nil, fmt.Errorf("closing recommendation: %w", err)
	}

	message := fmt.Sprintf("That completes the session. Your mean score was %.2f. %s", mean, recommendation)

	// A summary, not a question: no Bloom level on this record.
	final := &store.Message{
		SessionID: sess.ID,
		Role:      store.RoleAssistant,
		Content:   message,
		TS:        time.Now(),
	}
	if err := o.messages.Append(ctx, final); err != nil {
		return nil, fmt.Errorf("recording completion: %w", err)
	}

	if err := o.sessions.Complete(ctx, sess.ID); err != nil {
		return nil, fmt.Errorf("completing session: %w", err)
	}

	result := &TurnResult{
		Completed:       true,
		Question:        message,
		Profile:         profile,
		Recommendations: recommendation,
	}
	if scored != nil {
		result.Score = &scored.Score
		result.Confidence = &scored.Confidence
		result.Errors = scored.Errors
	}
	return result, nil
}

// gatherTelemetry fills in the profile and advisory recommendations.
// This path is advisory: failures become an errors entry, not an abort.
func (o *Orchestrator) gatherTelemetry(ctx context.Context, sess *store.Session, result *TurnResult) {
	profile, err := o.estimator.Profile(ctx, sess.ID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("profile unavailable: %v", err))
		return
	}
	result.Profile = profile

	history, err := o.messages.History(ctx, sess.ID, agents.MaxHistoryTurns)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("history unavailable: %v", err))
		return
	}

	emas := make(map[string]float64, len(profile))
	for skill, s := range profile {
		emas[skill] = s.Ema
	}

	recommendation, err := o.summarizer.Summarize(ctx, sess.Topic, history, emas)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("recommendations unavailable: %v", err))
		return
	}
	result.Recommendations = recommendation
}

func (o *Orchestrator) questionLimit(sess *store.Session) int {
	if sess.MaxQuestions != nil && *sess.MaxQuestions > 0 {
		return *sess.MaxQuestions
	}
	return examQuestionLimit
}
