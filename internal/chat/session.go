package chat

import (
	"errors"
	"regexp"
	"strings"

	"fxalerts/internal/domain"
)

type Step int

const (
	StepAwaitBase Step = iota + 1
	StepAwaitQuote
	StepAwaitOperator
	StepAwaitThreshold
)

var (
	errWizardSymbol    = errors.New("send a currency code of 2-6 latin letters, e.g. BTC")
	errWizardSameCode  = errors.New("quote must differ from base, send another code")
	errWizardOperator  = errors.New("send one of: >, >=, <, <=, ==")
	errWizardThreshold = errors.New("send a positive number, e.g. 50000 or 0,95")
)

var wizardSymbol = regexp.MustCompile(`^[A-Z]{2,6}$`)

// Session is the state of the step-by-step alert wizard for one user.
type Session struct {
	Step      Step
	Base      string
	Quote     string
	Operator  string
	Threshold float64
}

func newSession() Session { return Session{Step: StepAwaitBase} }

// Done reports whether every field has been collected.
func (s Session) Done() bool { return s.Step > StepAwaitThreshold }

// Advance consumes one answer. On invalid input the session is returned
// unchanged together with an error meant for the user.
func (s Session) Advance(input string) (Session, error) {
	switch s.Step {
	case StepAwaitBase:
		code := domain.NormalizeSymbol(input)
		if !wizardSymbol.MatchString(code) {
			return s, errWizardSymbol
		}
		s.Base = code
	case StepAwaitQuote:
		code := domain.NormalizeSymbol(input)
		if !wizardSymbol.MatchString(code) {
			return s, errWizardSymbol
		}
		if code == s.Base {
			return s, errWizardSameCode
		}
		s.Quote = code
	case StepAwaitOperator:
		op, err := domain.ParseOperator(strings.TrimSpace(input))
		if err != nil {
			return s, errWizardOperator
		}
		s.Operator = string(op)
	case StepAwaitThreshold:
		v, ok := parseAmount(strings.TrimSpace(input))
		if !ok || v <= 0 {
			return s, errWizardThreshold
		}
		s.Threshold = v
	default:
		return s, nil
	}
	s.Step++
	return s, nil
}

// Prompt is the question asked for the current step.
func (s Session) Prompt() string {
	switch s.Step {
	case StepAwaitBase:
		return "Which currency to watch? Send a code, e.g. BTC"
	case StepAwaitQuote:
		return "Price of " + s.Base + " in which currency? e.g. USD"
	case StepAwaitOperator:
		return "Condition for " + s.Base + "/" + s.Quote + "? One of: >, >=, <, <=, =="
	case StepAwaitThreshold:
		return "Threshold value for " + s.Base + "/" + s.Quote + " " + s.Operator + " ?"
	default:
		return ""
	}
}
