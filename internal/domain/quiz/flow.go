package quiz

import (
	"context"
	"errors"
	"fmt"

	"vahis-pet-care-hub/internal/domain/matching"
)

var (
	ErrInvalidAnswer     = errors.New("answer is not one of the options")
	ErrInvalidTransition = errors.New("invalid quiz transition")
)

type State string

const (
	StateCollecting  State = "Collecting"
	StateSubmitting  State = "Submitting"
	StateMatched     State = "Matched"
	StateFailed      State = "Failed"
	StateUnsupported State = "Unsupported"
)

// Terminal: desde acá solo se sale con Restart.
func (s State) Terminal() bool {
	return s == StateMatched || s == StateFailed || s == StateUnsupported
}

// FailureReason es el sub-estado de StateFailed.
type FailureReason string

const (
	FailureNoCandidates            FailureReason = "NoCandidates"
	FailureOracleUnavailable       FailureReason = "OracleUnavailable"
	FailureOracleResponseMalformed FailureReason = "OracleResponseMalformed"
	FailureRateLimited             FailureReason = "RateLimited"
	FailureInternal                FailureReason = "Internal"
)

// Matcher es lo que necesita el flujo del motor (matching.Engine lo cumple).
type Matcher interface {
	Match(ctx context.Context, prefs *matching.Preferences) (matching.Result, error)
}

// Flow es una sesión de quiz de un usuario. No es seguro para uso concurrente.
type Flow struct {
	questions []Question
	matcher   Matcher

	state   State
	step    int
	answers map[string]string

	result  matching.Result
	failure FailureReason
	err     error
}

func NewFlow(questions []Question, matcher Matcher) *Flow {
	f := &Flow{
		questions: questions,
		matcher:   matcher,
	}
	f.reset()
	return f
}

func (f *Flow) reset() {
	f.state = StateCollecting
	f.step = 0
	f.answers = make(map[string]string, len(f.questions))
	f.result = matching.Result{}
	f.failure = ""
	f.err = nil
}

func (f *Flow) State() State { return f.state }

// Step es el índice de la pregunta actual (0-based).
func (f *Flow) Step() int { return f.step }

func (f *Flow) Total() int { return len(f.questions) }

// Current devuelve la pregunta pendiente; false fuera de Collecting.
func (f *Flow) Current() (Question, bool) {
	if f.state != StateCollecting || f.step >= len(f.questions) {
		return Question{}, false
	}
	return f.questions[f.step], true
}

// Answer registra la respuesta a la pregunta actual y avanza.
// Con la última respuesta pasa a Submitting, llama al matcher y termina
// en Matched o Failed. Una respuesta fuera de las opciones no avanza.
func (f *Flow) Answer(ctx context.Context, answer string) error {
	q, ok := f.Current()
	if !ok {
		return fmt.Errorf("%w: answer in state %s", ErrInvalidTransition, f.state)
	}

	opt, ok := q.HasOption(answer)
	if !ok {
		return fmt.Errorf("%w: %q for %s", ErrInvalidAnswer, answer, q.Key)
	}
	f.answers[q.Key] = opt

	if q.Key == KeyPetType && !matching.IsSupportedSpecies(opt) {
		f.state = StateUnsupported
		return nil
	}

	f.step++
	if f.step < len(f.questions) {
		return nil
	}

	f.submit(ctx)
	return nil
}

func (f *Flow) submit(ctx context.Context) {
	f.state = StateSubmitting

	prefs := f.Preferences()
	res, err := f.matcher.Match(ctx, &prefs)
	if err != nil {
		f.state = StateFailed
		f.failure = failureFor(err)
		f.err = err
		return
	}
	f.state = StateMatched
	f.result = res
}

// Restart vuelve a la primera pregunta descartando respuestas.
// Solo desde un estado terminal.
func (f *Flow) Restart() error {
	if !f.state.Terminal() {
		return fmt.Errorf("%w: restart in state %s", ErrInvalidTransition, f.state)
	}
	f.reset()
	return nil
}

// Result es válido solo en Matched.
func (f *Flow) Result() (matching.Result, bool) {
	return f.result, f.state == StateMatched
}

// Failure es válido solo en Failed.
func (f *Flow) Failure() (FailureReason, bool) {
	return f.failure, f.state == StateFailed
}

// Err es el error del motor que llevó a Failed (para mostrar el mensaje).
func (f *Flow) Err() error { return f.err }

// Preferences arma el pedido al motor con lo respondido hasta ahora.
func (f *Flow) Preferences() matching.Preferences {
	return matching.Preferences{
		PetType:     f.answers[KeyPetType],
		Budget:      f.answers[KeyBudget],
		Housing:     f.answers[KeyHousing],
		Exercise:    f.answers[KeyExercise],
		Temperament: f.answers[KeyTemperament],
		Kids:        f.answers[KeyKids],
		Experience:  f.answers[KeyExperience],
	}
}

func failureFor(err error) FailureReason {
	switch {
	case errors.Is(err, matching.ErrNoCandidates):
		return FailureNoCandidates
	case errors.Is(err, matching.ErrRateLimited):
		return FailureRateLimited
	case errors.Is(err, matching.ErrOracleResponseMalformed):
		return FailureOracleResponseMalformed
	case errors.Is(err, matching.ErrOracleUnavailable):
		return FailureOracleUnavailable
	default:
		return FailureInternal
	}
}
