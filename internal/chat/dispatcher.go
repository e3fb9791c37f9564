package chat

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fxalerts/internal/alert"
	"fxalerts/internal/domain"
	"fxalerts/internal/rate"

	"github.com/sirupsen/logrus"
)

const (
	helpText = "I convert currencies and watch rates for you.\n\n" +
		"Conversion: 100 USD to EUR, 0,5 btc -> rub\n" +
		"Alert: notify when BTC > 50000 to USD\n\n" +
		"/alert - create an alert step by step\n" +
		"/subs - list your alerts\n" +
		"/unsub BTC USD - remove alerts on a pair\n" +
		"/cancel - stop the current dialog"
	startText       = "Hi! " + helpText
	unknownText     = "Didn't get that. Examples: \"100 USD to EUR\" or \"notify when BTC > 50000 to USD\". Send /help for more."
	unavailableText = "Couldn't get the rate right now, try again later."
	internalText    = "Something went wrong, try again later."
	unsubUsageText  = "Usage: /unsub BTC USD"
)

type RateService interface {
	Convert(ctx context.Context, amount float64, from string, to string) (rate.Conversion, error)
}

type SubscriptionService interface {
	Subscribe(ctx context.Context, userID int64, base string, quote string, op string, threshold float64) (domain.Subscription, error)
	List(ctx context.Context, userID int64) ([]domain.Subscription, error)
	Unsubscribe(ctx context.Context, userID int64, base string, quote string) (int64, error)
}

// SessionStore keeps wizard sessions between messages.
type SessionStore interface {
	Get(userID int64) (Session, bool)
	Set(userID int64, s Session)
	Delete(userID int64)
}

// Dispatcher turns one incoming chat message into one reply.
type Dispatcher struct {
	rates    RateService
	subs     SubscriptionService
	sessions SessionStore
}

func (d *Dispatcher) Handle(ctx context.Context, userID int64, text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "/") {
		return d.handleCommand(ctx, userID, text)
	}

	if s, ok := d.sessions.Get(userID); ok {
		return d.continueWizard(ctx, userID, s, text)
	}

	// alerts are matched before conversions
	if q, ok := ParseAlert(text); ok {
		return d.subscribe(ctx, userID, q)
	}
	if q, ok := ParseConvert(text); ok {
		return d.convert(ctx, userID, q)
	}
	return unknownText
}

func (d *Dispatcher) handleCommand(ctx context.Context, userID int64, text string) string {
	fields := strings.Fields(text)
	cmd := strings.ToLower(fields[0])
	if i := strings.IndexByte(cmd, '@'); i >= 0 {
		cmd = cmd[:i]
	}
	args := fields[1:]

	switch cmd {
	case "/start":
		return startText
	case "/help":
		return helpText
	case "/subs":
		return d.listSubscriptions(ctx, userID)
	case "/unsub":
		return d.unsubscribe(ctx, userID, args)
	case "/alert":
		s := newSession()
		d.sessions.Set(userID, s)
		return s.Prompt()
	case "/cancel":
		if _, ok := d.sessions.Get(userID); !ok {
			return "Nothing to cancel."
		}
		d.sessions.Delete(userID)
		return "Cancelled."
	default:
		return "Unknown command. Send /help"
	}
}

func (d *Dispatcher) continueWizard(ctx context.Context, userID int64, s Session, text string) string {
	next, err := s.Advance(text)
	if err != nil {
		return err.Error()
	}
	if !next.Done() {
		d.sessions.Set(userID, next)
		return next.Prompt()
	}
	d.sessions.Delete(userID)
	return d.subscribe(ctx, userID, AlertQuery{
		Base:      next.Base,
		Quote:     next.Quote,
		Operator:  next.Operator,
		Threshold: next.Threshold,
	})
}

func (d *Dispatcher) subscribe(ctx context.Context, userID int64, q AlertQuery) string {
	sub, err := d.subs.Subscribe(ctx, userID, q.Base, q.Quote, q.Operator, q.Threshold)
	if err != nil {
		if isValidationErr(err) {
			return "Can't create the alert: " + err.Error()
		}
		logrus.WithField("user_id", userID).WithError(err).Error("Failed to create subscription from chat")
		return internalText
	}
	return fmt.Sprintf("Done! I'll notify you when %s", describe(sub))
}

func (d *Dispatcher) convert(ctx context.Context, userID int64, q ConvertQuery) string {
	res, err := d.rates.Convert(ctx, q.Amount, q.Base, q.Quote)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRateUnavailable):
			return unavailableText
		case errors.Is(err, rate.ErrAmountInvalid), errors.Is(err, rate.ErrSymbolInvalid):
			return "Can't convert: " + err.Error()
		}
		logrus.WithField("user_id", userID).WithError(err).Error("Failed to convert from chat")
		return internalText
	}
	return fmt.Sprintf("%s %s = %s %s\nRate: %s",
		strconv.FormatFloat(res.Amount, 'f', -1, 64), res.From,
		strconv.FormatFloat(res.Result, 'g', 6, 64), res.To,
		strconv.FormatFloat(res.Rate, 'g', 6, 64))
}

func (d *Dispatcher) listSubscriptions(ctx context.Context, userID int64) string {
	subs, err := d.subs.List(ctx, userID)
	if err != nil {
		logrus.WithField("user_id", userID).WithError(err).Error("Failed to list subscriptions from chat")
		return internalText
	}
	if len(subs) == 0 {
		return "You have no alerts yet."
	}

	var b strings.Builder
	b.WriteString("Your alerts:")
	for i, s := range subs {
		fmt.Fprintf(&b, "\n%d. %s", i+1, describe(s))
	}
	return b.String()
}

func (d *Dispatcher) unsubscribe(ctx context.Context, userID int64, args []string) string {
	var base, quote string
	switch len(args) {
	case 1:
		var ok bool
		base, quote, ok = strings.Cut(args[0], "/")
		if !ok {
			return unsubUsageText
		}
	case 2:
		base, quote = args[0], args[1]
	default:
		return unsubUsageText
	}

	removed, err := d.subs.Unsubscribe(ctx, userID, base, quote)
	switch {
	case err == nil:
		return fmt.Sprintf("Removed %d alert(s) on %s.", removed, domain.NewPair(base, quote))
	case errors.Is(err, domain.ErrSubscriptionNotFound):
		return "No alerts on " + domain.NewPair(base, quote).String() + "."
	case isValidationErr(err):
		return unsubUsageText
	default:
		logrus.WithField("user_id", userID).WithError(err).Error("Failed to remove subscription from chat")
		return internalText
	}
}

func describe(s domain.Subscription) string {
	return fmt.Sprintf("%s %s %s", s.Pair(), s.Operator, strconv.FormatFloat(s.Threshold, 'f', -1, 64))
}

func isValidationErr(err error) bool {
	return errors.Is(err, alert.ErrUserInvalid) ||
		errors.Is(err, alert.ErrSameCodes) ||
		errors.Is(err, alert.ErrThresholdInvalid) ||
		errors.Is(err, domain.ErrInvalidOperator) ||
		errors.Is(err, rate.ErrBaseRequired) ||
		errors.Is(err, rate.ErrQuoteRequired) ||
		errors.Is(err, rate.ErrSymbolInvalid)
}

func NewDispatcher(rates RateService, subs SubscriptionService, sessions SessionStore) *Dispatcher {
	return &Dispatcher{rates: rates, subs: subs, sessions: sessions}
}
