package expand_recurrence

import "time"

// RuleEvaluator вычисляет вхождения правила повторения (RFC 5545)
type RuleEvaluator interface {
	// HasTerminator сообщает, ограничено ли правило собственным COUNT или UNTIL
	HasTerminator(rule string) (bool, error)
	// Occurrences возвращает вхождения правила в интервале [dtstart, until].
	// Нулевое until означает отсутствие верхней границы.
	Occurrences(rule string, dtstart, until time.Time) ([]time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
