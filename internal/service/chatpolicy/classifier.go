// Package chatpolicy классифицирует текст сообщения чата на предмет
// попытки обмена офф-платформенными контактами (телефон, email,
// фраза-приглашение).
//
// Это эвристический фильтр по best-effort принципу, а не гарантия:
// возможны и ложные срабатывания (легитимный 10-значный номер заказа
// триггерит телефонное правило), и пропуски (обфусцированные контакты).
package chatpolicy

// Result результат классификации текста
type Result struct {
	Violation   bool
	Kind        Kind
	MatchedSpan string
}

// Classify проверяет текст по упорядоченной таблице правил.
// Порядок видов строгий: телефон, затем email, затем фразы - текст,
// содержащий и номер, и фразу "call me", репортится только как phone.
// Отсутствие нарушения - валидный исход (Kind = none), не ошибка.
func Classify(text string) Result {
	for _, r := range rules {
		if span := r.pattern.FindString(text); span != "" {
			return Result{
				Violation:   true,
				Kind:        r.kind,
				MatchedSpan: span,
			}
		}
	}
	return Result{Violation: false, Kind: KindNone}
}
