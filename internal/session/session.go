// Package session orchestrates one generation run: it holds the active
// configuration, asks the synthesizer for candidates, and enforces
// uniqueness through the dedup ledger.
//
// A Session is not safe for concurrent use. One generation run owns one
// session; callers that share a session must serialize their calls.
package session

import (
	"errors"
	"math/rand"

	"go.uber.org/zap"

	"github.com/abhisek/mathsheets/internal/curriculum"
	"github.com/abhisek/mathsheets/internal/dedup"
	"github.com/abhisek/mathsheets/internal/problemgen"
	"github.com/abhisek/mathsheets/internal/wordbank"
)

// MaxAttempts bounds how many candidates NextUnique synthesizes before
// giving up and accepting the last one. Generation always completes.
const MaxAttempts = 100

// ErrNoSubjects is returned by Configure when the subject list is empty
// after normalization.
var ErrNoSubjects = errors.New("session: no subjects configured")

// Config is the session's resolved generation configuration, rebuilt in
// full on every Configure call.
type Config struct {
	Grade      curriculum.GradeProfile
	Difficulty curriculum.Difficulty

	// Subjects is the active subject set in caller order.
	Subjects []curriculum.SubjectID

	// Ceiling is floor(Grade.NumberCeiling * Difficulty.Multiplier).
	Ceiling int
}

// Session produces unique problems for one generation run.
type Session struct {
	cfg    Config
	ledger *dedup.Ledger
	rng    *rand.Rand
	words  *wordbank.Picker
	log    *zap.Logger

	configured  bool
	dupAccepted int
}

// New creates a Session drawing randomness from rng and vocabulary from
// bank. A nil logger is replaced with a no-op one; a nil bank uses the
// built-in vocabulary.
func New(rng *rand.Rand, bank *wordbank.Bank, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	if bank == nil {
		bank = wordbank.Default()
	}
	return &Session{
		ledger: dedup.NewLedger(dedup.DefaultThreshold),
		rng:    rng,
		words:  wordbank.NewPicker(bank, rng),
		log:    log,
	}
}

// Config returns the current configuration. Meaningful only after a
// successful Configure.
func (s *Session) Config() Config { return s.cfg }

// Configure resolves and stores the run configuration, fully replacing any
// prior one. Unknown grade or difficulty ids degrade to the defaults with a
// warning rather than failing; an empty subject list is the one hard error.
func (s *Session) Configure(gradeID, difficultyID string, subjects []string) error {
	grade, ok := curriculum.GradeByID(gradeID)
	if !ok {
		grade = curriculum.DefaultGrade()
		s.log.Warn("unknown grade, using default",
			zap.String("requested", gradeID),
			zap.String("default", grade.ID))
	}

	diff, ok := curriculum.DifficultyByID(difficultyID)
	if !ok {
		diff = curriculum.DefaultDifficulty()
		s.log.Warn("unknown difficulty, using default",
			zap.String("requested", difficultyID),
			zap.String("default", diff.ID))
	}

	var active []curriculum.SubjectID
	for _, raw := range subjects {
		active = append(active, curriculum.SubjectID(raw))
	}
	if len(active) == 0 {
		return ErrNoSubjects
	}

	ceiling := int(float64(grade.NumberCeiling) * diff.Multiplier)
	if ceiling < 1 {
		ceiling = 1
	}

	s.cfg = Config{
		Grade:      grade,
		Difficulty: diff,
		Subjects:   active,
		Ceiling:    ceiling,
	}
	s.configured = true
	return nil
}

// Reset clears the uniqueness ledger. Call it before starting a new run so
// the previous run's output does not suppress this one's.
func (s *Session) Reset() {
	s.ledger.Reset()
	s.dupAccepted = 0
}

// Accepted returns how many problems the run has accepted so far.
func (s *Session) Accepted() int { return s.ledger.Len() }

// DuplicatesAccepted returns how many problems were accepted after the
// uniqueness budget ran out.
func (s *Session) DuplicatesAccepted() int { return s.dupAccepted }

// NextUnique produces the next problem for the run. Each call picks a
// subject uniformly from the active set, synthesizes a candidate, and
// checks it against the ledger; rejected candidates are retried (with a
// fresh subject pick) up to MaxAttempts. When the budget runs out, the last
// candidate is accepted anyway with a warning so generation never stalls.
func (s *Session) NextUnique(op curriculum.OperationID, ptype curriculum.ProblemType, topics TopicSelection) (problemgen.Problem, error) {
	if !s.configured {
		return problemgen.Problem{}, ErrNoSubjects
	}

	var last problemgen.Problem
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		last = s.synthesize(op, ptype, topics)
		if s.ledger.Accept(last.Question) {
			return last, nil
		}
	}

	s.log.Warn("uniqueness budget exhausted, accepting near-duplicate",
		zap.Int("attempts", MaxAttempts),
		zap.String("question", last.Question))
	s.ledger.Record(last.Question)
	s.dupAccepted++
	return last, nil
}

// synthesize produces one candidate: subject pick, topic/type precedence,
// mixed-type coin flip, then dispatch.
func (s *Session) synthesize(op curriculum.OperationID, ptype curriculum.ProblemType, topics TopicSelection) problemgen.Problem {
	subject := s.cfg.Subjects[s.rng.Intn(len(s.cfg.Subjects))]

	topic := s.pickTopic(subject, topics)
	if forced, ok := topicForcesType(topic); ok {
		ptype = forced
	}
	if ptype == curriculum.TypeMixed {
		if s.rng.Float64() < 0.5 {
			ptype = curriculum.TypeEquations
		} else {
			ptype = curriculum.TypeWord
		}
	}

	ctx := problemgen.NewContext(s.rng, s.cfg.Ceiling, s.cfg.Grade, s.words, s.log)
	return problemgen.Synthesize(ctx, subject, op, ptype, topic)
}

// pickTopic resolves the topic filter for this candidate. Topics only apply
// to arithmetic; other subjects dispatch on the subject itself.
func (s *Session) pickTopic(subject curriculum.SubjectID, topics TopicSelection) curriculum.TopicID {
	if subject != curriculum.SubjectArithmetic {
		return ""
	}
	ids := topics.ids
	if topics.all || len(ids) == 0 {
		return ""
	}
	return ids[s.rng.Intn(len(ids))]
}

// topicForcesType maps topics that only make sense in one format to that
// format: fraction simplification has no word form here, and the
// word-problems topic is nothing but the word form.
func topicForcesType(topic curriculum.TopicID) (curriculum.ProblemType, bool) {
	switch topic {
	case curriculum.TopicWordProblems:
		return curriculum.TypeWord, true
	case curriculum.TopicBasicOperations, curriculum.TopicFractions, curriculum.TopicPlaceValue:
		return curriculum.TypeEquations, true
	case curriculum.TopicEstimation, curriculum.TopicPatterns:
		return curriculum.TypeMixed, true
	default:
		return "", false
	}
}
