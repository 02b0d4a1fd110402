// internal/pkg/notify/notify.go
package notify

import "github.com/sirupsen/logrus"

// Severity classifies a user-facing outcome.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier receives user-facing outcomes (coupon applied/invalid, missing
// address, order placed). Formatting and display belong to the caller side of
// this boundary; the engines only report.
type Notifier interface {
	Notify(title, message string, severity Severity)
}

// LogNotifier reports outcomes through the application logger.
type LogNotifier struct {
	logger *logrus.Logger
}

// NewLogNotifier creates a logrus-backed notifier.
func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the outcome at a level matching its severity.
func (n *LogNotifier) Notify(title, message string, severity Severity) {
	entry := n.logger.WithFields(logrus.Fields{
		"title":    title,
		"severity": severity,
	})

	switch severity {
	case SeverityError:
		entry.Warn(message)
	default:
		entry.Info(message)
	}
}
