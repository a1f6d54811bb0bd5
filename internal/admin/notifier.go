package admin

import "log"

// Notifier receives non-blocking feedback for every completed or failed
// action: the action name plus a short human-readable reason.
type Notifier interface {
	Success(action, detail string)
	Error(action, reason string)
}

// LogNotifier writes feedback to a standard logger.
type LogNotifier struct {
	logger *log.Logger
}

func NewLogNotifier(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(action, detail string) {
	n.logger.Printf("%s: %s", action, detail)
}

func (n *LogNotifier) Error(action, reason string) {
	n.logger.Printf("ERROR: %s failed: %s", action, reason)
}
