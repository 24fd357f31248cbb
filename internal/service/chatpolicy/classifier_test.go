package chatpolicy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPhone(t *testing.T) {
	texts := []string{
		"my cell is 555-123-4567",
		"dial (555) 123 4567 anytime",
		"+7 921 123-45-67",
		"номер 89211234567 запиши",
	}

	for _, text := range texts {
		result := Classify(text)
		assert.True(t, result.Violation, "text=%q", text)
		assert.Equal(t, KindPhone, result.Kind, "text=%q", text)
		assert.NotEmpty(t, result.MatchedSpan, "text=%q", text)
	}
}

func TestClassifyEmail(t *testing.T) {
	result := Classify("напиши на ivan.petrov@example.com пожалуйста")
	assert.True(t, result.Violation)
	assert.Equal(t, KindEmail, result.Kind)
	assert.Equal(t, "ivan.petrov@example.com", result.MatchedSpan)
}

func TestClassifyPhrase(t *testing.T) {
	texts := []string{
		"just call me tomorrow",
		"Text Me when ready",
		"I am on WhatsApp",
		"add me in telegram",
		"this is my number",
		"reach me at the usual place",
	}

	for _, text := range texts {
		result := Classify(text)
		assert.True(t, result.Violation, "text=%q", text)
		assert.Equal(t, KindPhrase, result.Kind, "text=%q", text)
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// Телефон выигрывает у фразы
	result := Classify("call me at 555-123-4567")
	assert.Equal(t, KindPhone, result.Kind)
	assert.Equal(t, "555-123-4567", result.MatchedSpan)

	// Email выигрывает у фразы
	result = Classify("reach me at a@b.com")
	assert.Equal(t, KindEmail, result.Kind)
}

func TestClassifyClean(t *testing.T) {
	texts := []string{
		"Здравствуйте! Во сколько вам удобно завтра?",
		"The gate code is 1234",
		"I will arrive around 10:00",
		"",
	}

	for _, text := range texts {
		result := Classify(text)
		assert.False(t, result.Violation, "text=%q", text)
		assert.Equal(t, KindNone, result.Kind, "text=%q", text)
		assert.Empty(t, result.MatchedSpan, "text=%q", text)
	}
}
