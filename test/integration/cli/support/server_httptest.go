package support

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"time"

	"github.com/MeKo-Tech/scandefaults/internal/catalog"
	"github.com/MeKo-Tech/scandefaults/internal/server"
)

// HTTPTestServerWrapper wraps httptest.Server for integration tests.
type HTTPTestServerWrapper struct {
	Server     *httptest.Server
	TestServer *server.Server
}

// createTestHTTPServer serves the real defaults API from an httptest server.
func (testCtx *TestContext) createTestHTTPServer(corsOrigin string) error {
	if testCtx.HTTPTestServer != nil {
		if err := testCtx.stopTestHTTPServer(); err != nil {
			return err
		}
	}

	srv, err := server.NewServer(server.Config{
		Host:             "localhost",
		Port:             testCtx.ServerPort,
		CORSOrigin:       corsOrigin,
		WebSocketEnabled: true,
		DeletionDelay:    time.Second,
		CacheCapacity:    64,
		Registry:         catalog.Default(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	mux := http.NewServeMux()
	srv.SetupRoutes(mux)
	ts := httptest.NewServer(mux)

	u, err := url.Parse(ts.URL)
	if err != nil {
		ts.Close()
		return fmt.Errorf("failed to parse server URL: %w", err)
	}

	testCtx.ServerHost = u.Hostname()
	if portStr := u.Port(); portStr != "" {
		testCtx.ServerPort, _ = strconv.Atoi(portStr)
	}

	testCtx.HTTPTestServer = &HTTPTestServerWrapper{
		Server:     ts,
		TestServer: srv,
	}

	return nil
}

// stopTestHTTPServer stops the httptest server.
func (testCtx *TestContext) stopTestHTTPServer() error {
	if testCtx.HTTPTestServer == nil {
		return nil
	}
	if testCtx.HTTPTestServer.Server != nil {
		testCtx.HTTPTestServer.Server.Close()
	}
	var err error
	if testCtx.HTTPTestServer.TestServer != nil {
		err = testCtx.HTTPTestServer.TestServer.Close()
	}
	testCtx.HTTPTestServer = nil
	return err
}
