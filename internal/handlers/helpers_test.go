// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lingo_progress/internal/handlers"
	"lingo_progress/internal/middleware"
	"lingo_progress/internal/model"
	svc_mocks "lingo_progress/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-123"

type testServices struct {
	progress    *svc_mocks.ProgressService
	challenge   *svc_mocks.ChallengeService
	economy     *svc_mocks.EconomyService
	leaderboard *svc_mocks.LeaderboardService
}

// newTestRouter wires every handler to fresh mocks behind the dev identity middleware.
func newTestRouter(t *testing.T) (*chi.Mux, *testServices) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	services := &testServices{
		progress:    svc_mocks.NewProgressService(t),
		challenge:   svc_mocks.NewChallengeService(t),
		economy:     svc_mocks.NewEconomyService(t),
		leaderboard: svc_mocks.NewLeaderboardService(t),
	}

	r := chi.NewRouter()
	handlers.RegisterRoutes(r, handlers.Handlers{
		Progress:    handlers.NewProgressHandler(services.progress, logger),
		Challenge:   handlers.NewChallengeHandler(services.challenge, logger),
		Economy:     handlers.NewEconomyHandler(services.economy, logger),
		Leaderboard: handlers.NewLeaderboardHandler(services.leaderboard, logger),
	}, middleware.DevUserContextMiddleware)
	return r, services
}

// newJSONRequest builds a request as testUserID. A string body is sent verbatim.
func newJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req := httptest.NewRequest(method, target, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-User-ID", testUserID)
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}
