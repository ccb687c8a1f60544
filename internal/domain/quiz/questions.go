package quiz

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Keys válidas; coinciden con los campos JSON de matching.Preferences.
const (
	KeyPetType     = "petType"
	KeyBudget      = "budget"
	KeyHousing     = "housing"
	KeyExercise    = "exercise"
	KeyTemperament = "temperament"
	KeyKids        = "kids"
	KeyExperience  = "experience"
)

var ErrInvalidQuestions = errors.New("invalid quiz questions")

//go:embed questions.yaml
var defaultQuestionsYAML []byte

type Question struct {
	Key     string   `yaml:"key" json:"key"`
	Text    string   `yaml:"text" json:"text"`
	Options []string `yaml:"options" json:"options"`
}

// HasOption compara sin espacios alrededor y sin importar mayúsculas.
// Devuelve la opción canónica (como está en el YAML).
func (q Question) HasOption(answer string) (string, bool) {
	answer = strings.TrimSpace(answer)
	for _, o := range q.Options {
		if strings.EqualFold(o, answer) {
			return o, true
		}
	}
	return "", false
}

type questionsDoc struct {
	Questions []Question `yaml:"questions"`
}

var (
	defaultOnce      sync.Once
	defaultQuestions []Question
	defaultErr       error
)

// DefaultQuestions devuelve el quiz embebido. Se parsea una sola vez.
// El slice es una copia: modificarlo no afecta otras llamadas.
func DefaultQuestions() ([]Question, error) {
	defaultOnce.Do(func() {
		defaultQuestions, defaultErr = ParseQuestions(defaultQuestionsYAML)
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	out := make([]Question, len(defaultQuestions))
	for i, q := range defaultQuestions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out, nil
}

// ParseQuestions lee y valida un documento YAML de preguntas.
func ParseQuestions(data []byte) ([]Question, error) {
	var doc questionsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuestions, err)
	}
	if err := validateQuestions(doc.Questions); err != nil {
		return nil, err
	}
	return doc.Questions, nil
}

func validateQuestions(qs []Question) error {
	if len(qs) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidQuestions)
	}
	if qs[0].Key != KeyPetType {
		return fmt.Errorf("%w: first question must be %s", ErrInvalidQuestions, KeyPetType)
	}

	seen := make(map[string]bool, len(qs))
	for i, q := range qs {
		if !isKnownKey(q.Key) {
			return fmt.Errorf("%w: question %d has unknown key %q", ErrInvalidQuestions, i, q.Key)
		}
		if seen[q.Key] {
			return fmt.Errorf("%w: duplicated key %q", ErrInvalidQuestions, q.Key)
		}
		seen[q.Key] = true

		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("%w: question %q has no text", ErrInvalidQuestions, q.Key)
		}
		if len(q.Options) == 0 {
			return fmt.Errorf("%w: question %q has no options", ErrInvalidQuestions, q.Key)
		}
	}
	return nil
}

func isKnownKey(k string) bool {
	switch k {
	case KeyPetType, KeyBudget, KeyHousing, KeyExercise, KeyTemperament, KeyKids, KeyExperience:
		return true
	}
	return false
}
