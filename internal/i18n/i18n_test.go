package i18n

import (
	"context"
	"testing"
)

func initLang(t *testing.T, lang string) context.Context {
	t.Helper()
	if err := Init(lang); err != nil {
		t.Fatalf("Init(%q): %v", lang, err)
	}
	loc := NewLocalizer(lang)
	return WithLocalizer(context.Background(), loc)
}

func TestTranslateEnglish(t *testing.T) {
	ctx := initLang(t, "en")

	got := T(ctx, "AppTitle")
	if got != "Pathfinder" {
		t.Errorf("T(AppTitle) = %q, want 'Pathfinder'", got)
	}

	got = T(ctx, "QuizResumed")
	if got != "Welcome back! Your progress was saved." {
		t.Errorf("T(QuizResumed) = %q, want 'Welcome back! Your progress was saved.'", got)
	}
}

func TestTranslateRussian(t *testing.T) {
	ctx := initLang(t, "ru")

	got := T(ctx, "AppTitle")
	if got != "Патфайндер" {
		t.Errorf("T(AppTitle) = %q, want 'Патфайндер'", got)
	}

	got = T(ctx, "QuizResumed")
	if got != "С возвращением! Ваш прогресс сохранён." {
		t.Errorf("T(QuizResumed) = %q, want russian QuizResumed", got)
	}
}

func TestPluralTranslation(t *testing.T) {
	ctx := initLang(t, "en")

	got1 := Tp(ctx, "QuestionsRemaining", 1)
	if got1 != "1 question remaining." {
		t.Errorf("Tp(QuestionsRemaining, 1) = %q, want '1 question remaining.'", got1)
	}

	got5 := Tp(ctx, "QuestionsRemaining", 5)
	if got5 != "5 questions remaining." {
		t.Errorf("Tp(QuestionsRemaining, 5) = %q, want '5 questions remaining.'", got5)
	}
}

func TestTemplateDataTranslation(t *testing.T) {
	ctx := initLang(t, "en")

	got := Td(ctx, "PillarComplete", map[string]any{"Pillar": "Mind"})
	if got != "Mind section complete!" {
		t.Errorf("Td(PillarComplete, Pillar=Mind) = %q, want 'Mind section complete!'", got)
	}
}

func TestMissingKey(t *testing.T) {
	ctx := initLang(t, "en")

	got := T(ctx, "NonExistentKey")
	if got != "NonExistentKey" {
		t.Errorf("T(NonExistentKey) = %q, want 'NonExistentKey'", got)
	}
}
