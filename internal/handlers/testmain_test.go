package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/mdayat/holidays-backend-service/configs"
	"github.com/mdayat/holidays-backend-service/internal/services"
	"github.com/mdayat/holidays-backend-service/internal/testutil"
	"github.com/rs/zerolog"
)

var testServer *httptest.Server
var testClient *http.Client
var testQuerier *testutil.Querier

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)

	env := configs.Env{
		AllowedOrigins:     "*",
		RateLimitPerMinute: 100000,
	}

	testQuerier = testutil.NewQuerier()
	holidayService := services.NewHolidayService(services.NewHolidayRepository(testQuerier))
	router := NewRestHandler(configs.NewConfigs(env, configs.Db{}), holidayService)

	testServer = httptest.NewServer(router)
	testClient = testServer.Client()

	exitCode := m.Run()
	testServer.Close()
	os.Exit(exitCode)
}
