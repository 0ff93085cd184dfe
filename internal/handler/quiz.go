package handler

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	appI18n "pathfinder/internal/i18n"
	"pathfinder/internal/model"
	"pathfinder/internal/quiz"
	"pathfinder/internal/subscription"
)

// quizStatePayload describes the live quiz position returned by resume,
// start, answer, and next. Question is nil when no quiz is active.
type quizStatePayload struct {
	Active        bool           `json:"active"`
	Question      *quiz.Question `json:"question,omitempty"`
	QuestionIndex int            `json:"questionIndex"`
	Total         int            `json:"total"`
	Answered      bool           `json:"answered"`
	Message       string         `json:"message,omitempty"`
}

// quizResultsPayload is returned when advancing past the final question.
type quizResultsPayload struct {
	Completed bool            `json:"completed"`
	Scores    quiz.Dimensions `json:"scores"`
	Archetype quiz.Archetype  `json:"archetype"`
	Chart     quiz.ChartData  `json:"chart"`
	Profile   string          `json:"profile"`
}

func statePayload(state *quiz.SessionState, message string) quizStatePayload {
	current := state.Current()
	return quizStatePayload{
		Active:        true,
		Question:      &current,
		QuestionIndex: state.QuestionIndex,
		Total:         len(state.Questions),
		Answered:      state.Answers.IsAnswered(current),
		Message:       message,
	}
}

func (h *Handler) handleQuizResume(w http.ResponseWriter, r *http.Request) {
	owner, err := h.ownerKey(w, r, false)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if owner == "" {
		writeJSON(w, http.StatusOK, quizStatePayload{})
		return
	}

	state, err := h.store.LoadQuizState(owner)
	if err != nil {
		slog.Error("failed to load quiz state", "owner", owner, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if state == nil {
		writeJSON(w, http.StatusOK, quizStatePayload{})
		return
	}

	msg := appI18n.T(r.Context(), "QuizResumed") + " " +
		appI18n.Tp(r.Context(), "QuestionsRemaining", len(state.Questions)-state.QuestionIndex)
	writeJSON(w, http.StatusOK, statePayload(state, msg))
}

func (h *Handler) handleQuizStart(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())
	if ok, reason := subscription.CanTakeTest(user); !ok {
		access := subscription.Access(user)
		writeError(w, http.StatusForbidden,
			appI18n.Td(r.Context(), reason, map[string]any{"Max": access.MaxTests}))
		return
	}

	owner, err := h.ownerKey(w, r, true)
	if err != nil {
		slog.Error("failed to resolve quiz owner", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	state := quiz.SessionState{Questions: quiz.BuildSession(h.bank, rng)}
	if err := h.store.SaveQuizState(owner, state); err != nil {
		slog.Error("failed to save quiz state", "owner", owner, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.recordEvent("quiz_started", owner)
	writeJSON(w, http.StatusCreated, statePayload(&state, ""))
}

type answerRequest struct {
	QuestionID int        `json:"questionId"`
	Value      quiz.Value `json:"value"`
}

func (h *Handler) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	owner, state, ok := h.activeQuiz(w, r)
	if !ok {
		return
	}

	current := state.Current()
	if req.QuestionID != current.ID {
		writeError(w, http.StatusConflict, "answer does not match the current question")
		return
	}
	if err := validateAnswer(current, req.Value); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state.Answers = state.Answers.Record(quiz.UserAnswer{QuestionID: req.QuestionID, Value: req.Value})
	if err := h.store.SaveQuizState(owner, *state); err != nil {
		slog.Error("failed to save quiz state", "owner", owner, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.recordEvent("question_answered", owner)

	msg := ""
	if pillar, done := h.pillarCompleted(state, current); done {
		msg = appI18n.Td(r.Context(), "PillarComplete", map[string]any{"Pillar": pillar})
	}
	writeJSON(w, http.StatusOK, statePayload(state, msg))
}

func (h *Handler) handleQuizNext(w http.ResponseWriter, r *http.Request) {
	owner, state, ok := h.activeQuiz(w, r)
	if !ok {
		return
	}

	current := state.Current()
	// The free-text question may be skipped; everything else needs an answer
	// before the session can advance.
	if current.Type != quiz.TypeTextInput && !state.Answers.IsAnswered(current) {
		writeError(w, http.StatusConflict, "current question has no answer")
		return
	}

	state.QuestionIndex++
	if !state.Complete() {
		if err := h.store.SaveQuizState(owner, *state); err != nil {
			slog.Error("failed to save quiz state", "owner", owner, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, statePayload(state, ""))
		return
	}

	// Final question answered: score, resolve, and drop the saved state.
	scores := quiz.ComputeScores(state.Questions, state.Answers)
	archetype := quiz.ResolveArchetype(scores)
	qualitative, _ := quiz.QualitativeAnswer(state.Questions, state.Answers)

	if err := h.store.DeleteQuizState(owner); err != nil {
		slog.Error("failed to delete quiz state", "owner", owner, "error", err)
	}
	h.recordEvent("quiz_completed", owner)

	if user := model.UserFromContext(r.Context()); user != nil {
		if err := h.store.IncrementTestCount(user.ID); err != nil {
			slog.Error("failed to increment test count", "user_id", user.ID, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, quizResultsPayload{
		Completed: true,
		Scores:    scores,
		Archetype: archetype,
		Chart:     quiz.BuildChartData(scores),
		Profile:   quiz.BuildProfileText(scores, archetype, qualitative),
	})
}

func (h *Handler) handleQuizRestart(w http.ResponseWriter, r *http.Request) {
	owner, err := h.ownerKey(w, r, false)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if owner != "" {
		if err := h.store.DeleteQuizState(owner); err != nil {
			slog.Error("failed to delete quiz state", "owner", owner, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		h.recordEvent("quiz_restarted", owner)
	}
	w.WriteHeader(http.StatusNoContent)
}

// activeQuiz loads the caller's in-progress quiz, writing the error
// response itself when there is none.
func (h *Handler) activeQuiz(w http.ResponseWriter, r *http.Request) (string, *quiz.SessionState, bool) {
	owner, err := h.ownerKey(w, r, false)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return "", nil, false
	}
	if owner == "" {
		writeError(w, http.StatusConflict, "no quiz in progress")
		return "", nil, false
	}

	state, err := h.store.LoadQuizState(owner)
	if err != nil {
		slog.Error("failed to load quiz state", "owner", owner, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return "", nil, false
	}
	if state == nil {
		writeError(w, http.StatusConflict, "no quiz in progress")
		return "", nil, false
	}
	return owner, state, true
}

var pillarTitle = cases.Title(language.English)

// pillarCompleted reports whether answering q just finished its pillar:
// every session question sharing q's trait now has a usable answer. The
// qualitative question has no pillar.
func (h *Handler) pillarCompleted(state *quiz.SessionState, q quiz.Question) (string, bool) {
	if q.TraitKey == quiz.TraitQualitative {
		return "", false
	}
	for _, other := range state.Questions {
		if other.TraitKey != q.TraitKey {
			continue
		}
		if !state.Answers.IsAnswered(other) {
			return "", false
		}
	}
	return pillarTitle.String(q.TraitKey), true
}

// validateAnswer checks the payload variant and range against the question
// it answers.
func validateAnswer(q quiz.Question, v quiz.Value) error {
	switch q.Type {
	case quiz.TypeSlider, quiz.TypeRating:
		if v.Kind != quiz.ValueNumber {
			return fmt.Errorf("question %d expects a numeric value", q.ID)
		}
		if v.Number < 0 || v.Number > 100 {
			return fmt.Errorf("value must be between 0 and 100")
		}
	case quiz.TypeMultipleChoice, quiz.TypeImageChoice:
		if v.Kind != quiz.ValueText {
			return fmt.Errorf("question %d expects an option text", q.ID)
		}
		for _, opt := range q.Options {
			if opt.Text == v.Text {
				return nil
			}
		}
		return fmt.Errorf("value does not match any option of question %d", q.ID)
	case quiz.TypeTextInput, quiz.TypeRanking:
		if v.Kind != quiz.ValueText {
			return fmt.Errorf("question %d expects a text value", q.ID)
		}
	}
	return nil
}
