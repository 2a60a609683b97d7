package middlewares

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	defer func() { log.Logger = original }()

	var hasContextLogger bool
	handler := Logger(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		hasContextLogger = log.Ctx(req.Context()).GetLevel() != zerolog.Disabled
		res.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/holidays", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if !hasContextLogger {
		t.Fatal("expected a logger in the request context")
	}

	if res.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, res.Code)
	}

	output := buf.String()
	for _, want := range []string{`"request_id"`, `"method":"GET"`, `"path":"/holidays"`, `"status_code":418`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected log output to contain %s, got %s", want, output)
		}
	}
}
