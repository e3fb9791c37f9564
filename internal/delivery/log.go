package delivery

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogNotifier writes alerts to the application log. Used when no external channel is configured.
type LogNotifier struct {
	logger logrus.FieldLogger
}

func (n *LogNotifier) Send(_ context.Context, userID int64, text string) error {
	n.logger.WithField("user_id", userID).Info(text)
	return nil
}

func NewLogNotifier(logger logrus.FieldLogger) *LogNotifier {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogNotifier{logger: logger}
}
