package recurrence

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// ErrInvalidRule возвращается, когда правило повторения не разбирается по RFC 5545
var ErrInvalidRule = errors.New("recurrence: invalid recurrence rule")

// Evaluator вычисляет вхождения правил повторения формата RFC 5545
// ("FREQ=WEEKLY;BYDAY=MO,WE") поверх библиотеки rrule-go.
type Evaluator struct{}

// NewEvaluator создает новый вычислитель правил повторения
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// HasTerminator сообщает, ограничено ли правило собственным COUNT или UNTIL
func (e *Evaluator) HasTerminator(rule string) (bool, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return false, fmt.Errorf("%w: HasTerminator - parse rule: %v", ErrInvalidRule, err)
	}
	return opt.Count > 0 || !opt.Until.IsZero(), nil
}

// Occurrences возвращает вхождения правила в интервале [dtstart, until]
// по возрастанию. Собственные ограничители правила (COUNT, UNTIL)
// применяются поверх переданного интервала. Нулевое until означает
// "без верхней границы": правило обязано ограничивать себя само.
func (e *Evaluator) Occurrences(rule string, dtstart, until time.Time) ([]time.Time, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("%w: Occurrences - parse rule: %v", ErrInvalidRule, err)
	}
	opt.Dtstart = dtstart

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("%w: Occurrences - build rule: %v", ErrInvalidRule, err)
	}

	if until.IsZero() {
		return r.All(), nil
	}
	return r.Between(dtstart, until, true), nil
}
