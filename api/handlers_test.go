package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"quizzo-bot/quiz"
	"quizzo-bot/utils"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	registry = quiz.NewRegistry()
	board = quiz.NewLeaderboard()
	resolveName = func(id int64) string { return "user:" + strconv.FormatInt(id, 10) }
	bounds = quiz.DefaultBounds
	expectedTokenHash = utils.TokenHash("secret")

	return setupRouter()
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthIsPublic(t *testing.T) {
	router := testRouter()

	rec := doRequest(router, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAuthRequired(t *testing.T) {
	router := testRouter()

	rec := doRequest(router, http.MethodGet, "/leaderboard", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(router, http.MethodGet, "/leaderboard", "wrong", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(router, http.MethodGet, "/leaderboard", "secret", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestStageQuiz(t *testing.T) {
	router := testRouter()

	body := `{"host_id":42,"question":{"description":"Q","choices":["A","B"],"answer":1,"limit":10000}}`
	rec := doRequest(router, http.MethodPost, "/quiz", "secret", body)
	require.Equal(t, http.StatusOK, rec.Code)

	q, ok := registry.Take(42)
	require.True(t, ok)
	require.Equal(t, "Q", q.Description)
	require.Equal(t, 1, q.Answer)
}

func TestStageQuizRejectsInvalid(t *testing.T) {
	router := testRouter()

	tests := map[string]string{
		"not json":     `nope`,
		"no host":      `{"question":{"description":"Q","choices":["A","B"],"answer":0,"limit":10000}}`,
		"no question":  `{"host_id":42}`,
		"malformed":    `{"host_id":42,"question":{"choices":["A","B"],"answer":0,"limit":10000}}`,
		"out of range": `{"host_id":42,"question":{"description":"Q","choices":["A"],"answer":0,"limit":10000}}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(router, http.MethodPost, "/quiz", "secret", body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			_, ok := registry.Take(42)
			require.False(t, ok, "nothing may be staged on rejection")
		})
	}
}

func TestLeaderboardContents(t *testing.T) {
	router := testRouter()
	board.Increment(2)
	board.Increment(2)
	board.Increment(1)

	rec := doRequest(router, http.MethodGet, "/leaderboard", "secret", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LeaderboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, []quiz.Entry{
		{UserID: 2, Name: "user:2", Wins: 2},
		{UserID: 1, Name: "user:1", Wins: 1},
	}, resp.Entries)
}
