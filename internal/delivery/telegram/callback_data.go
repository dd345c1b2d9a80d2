package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuiz  = "quiz"
	actionLink  = "link"
	actionShare = "share"
	actionTheme = "theme"
)

// Quiz sub-actions.
const (
	quizStart   = "start"
	quizAnswer  = "answer"
	quizNext    = "next"
	quizRestart = "restart"
)

// Answer values.
const (
	answerTrue  = "t"
	answerFalse = "f"
)

// Link kinds.
const (
	linkMDN        = "mdn"
	linkCurriculum = "curriculum"
	linkGithub     = "github"
	linkDiscord    = "discord"
)

// Share sub-actions.
const (
	shareText  = "text"
	shareStory = "story"
)

const themeToggle = "toggle"

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// intParam parses the i-th parameter as an int.
func (cd callbackData) intParam(i int) (int, bool) {
	n, err := strconv.Atoi(cd.param(i))
	if err != nil {
		return 0, false
	}
	return n, true
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func buildQuizStartCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizStart}}.encode()
}

// buildQuizAnswerCallback builds callback data for answering the statement
// shown at position.
func buildQuizAnswerCallback(position int, answer bool) string {
	value := answerFalse
	if answer {
		value = answerTrue
	}
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizAnswer, strconv.Itoa(position), value},
	}.encode()
}

// buildQuizNextCallback builds callback data for leaving the statement at position.
func buildQuizNextCallback(position int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizNext, strconv.Itoa(position)},
	}.encode()
}

func buildQuizRestartCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizRestart}}.encode()
}

// buildMDNLinkCallback builds callback data for a statement's reference link.
func buildMDNLinkCallback(statementID int) string {
	return callbackData{
		Action: actionLink,
		Params: []string{linkMDN, strconv.Itoa(statementID)},
	}.encode()
}

func buildLinkCallback(kind string) string {
	return callbackData{Action: actionLink, Params: []string{kind}}.encode()
}

func buildShareCallback(kind string) string {
	return callbackData{Action: actionShare, Params: []string{kind}}.encode()
}

func buildThemeToggleCallback() string {
	return callbackData{Action: actionTheme, Params: []string{themeToggle}}.encode()
}
