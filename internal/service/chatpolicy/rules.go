package chatpolicy

import "regexp"

// Kind вид нарушения политики обмена контактами
type Kind string

const (
	KindNone   Kind = "none"
	KindPhone  Kind = "phone"
	KindEmail  Kind = "email"
	KindPhrase Kind = "phrase"
)

// rule одно правило классификации: паттерн и вид нарушения
// Правила проверяются строго по порядку, первый матч выигрывает,
// поэтому все телефонные правила стоят раньше email и фраз
type rule struct {
	kind    Kind
	pattern *regexp.Regexp
}

// rules упорядоченная таблица правил
// Таблица данных, а не цепочка условий: правила добавляются и тюнингуются здесь
// и тестируются независимо от мест вызова
var rules = []rule{
	// Телефоны: группы 3-3-4 через дефис/точку/пробел
	{KindPhone, regexp.MustCompile(`\d{3}[-.\s]\d{3}[-.\s]\d{4}`)},
	// Телефоны: код города в скобках
	{KindPhone, regexp.MustCompile(`\(\d{3}\)[-.\s]?\d{3}[-.\s]?\d{4}`)},
	// Телефоны: международный префикс
	{KindPhone, regexp.MustCompile(`\+\d{1,3}[-.\s]?\d[\d\-.\s]{5,}\d`)},
	// Телефоны: просто длинная последовательность цифр
	{KindPhone, regexp.MustCompile(`\d{10,}`)},

	// Email
	{KindEmail, regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)},

	// Фразы-приглашения к офф-платформенному контакту (без учета регистра)
	{KindPhrase, regexp.MustCompile(`(?i)\bcall me\b`)},
	{KindPhrase, regexp.MustCompile(`(?i)\btext me\b`)},
	{KindPhrase, regexp.MustCompile(`(?i)\bwhatsapp\b`)},
	{KindPhrase, regexp.MustCompile(`(?i)\btelegram\b`)},
	{KindPhrase, regexp.MustCompile(`(?i)\bmy number\b`)},
	{KindPhrase, regexp.MustCompile(`(?i)\byour number\b`)},
	{KindPhrase, regexp.MustCompile(`(?i)\bemail me\b`)},
	{KindPhrase, regexp.MustCompile(`(?i)\bcontact me at\b`)},
	{KindPhrase, regexp.MustCompile(`(?i)\breach me at\b`)},
	{KindPhrase, regexp.MustCompile(`(?i)\bget in touch at\b`)},
}
