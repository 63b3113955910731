package support

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gorilla/websocket"
)

// GetServerURL returns the base URL of the running test server.
func (testCtx *TestContext) GetServerURL() string {
	if testCtx.HTTPTestServer != nil && testCtx.HTTPTestServer.Server != nil {
		return testCtx.HTTPTestServer.Server.URL
	}
	return fmt.Sprintf("http://%s:%d", testCtx.ServerHost, testCtx.ServerPort)
}

// theDefaultsServerIsRunning starts the API with permissive CORS.
func (testCtx *TestContext) theDefaultsServerIsRunning() error {
	return testCtx.createTestHTTPServer("*")
}

func (testCtx *TestContext) theDefaultsServerIsRunningWithCORSOrigin(origin string) error {
	return testCtx.createTestHTTPServer(origin)
}

// iGET issues a GET request.
func (testCtx *TestContext) iGET(endpoint string) error {
	return testCtx.makeHTTPRequest(http.MethodGet, endpoint, "", nil)
}

// iGETWithHeader issues a GET request carrying one extra header.
func (testCtx *TestContext) iGETWithHeader(endpoint, name, value string) error {
	return testCtx.makeHTTPRequest(http.MethodGet, endpoint, "", map[string]string{name: value})
}

// iPOSTTo sends the doc string as a JSON body.
func (testCtx *TestContext) iPOSTTo(endpoint string, body *godog.DocString) error {
	return testCtx.makeHTTPRequest(http.MethodPost, endpoint, body.Content,
		map[string]string{"Content-Type": "application/json"})
}

// iMakeAnOPTIONSRequestTo makes an OPTIONS request.
func (testCtx *TestContext) iMakeAnOPTIONSRequestTo(endpoint string) error {
	return testCtx.makeHTTPRequest(http.MethodOptions, endpoint, "", nil)
}

// theResponseStatusShouldBe verifies the last HTTP status.
func (testCtx *TestContext) theResponseStatusShouldBe(expectedStatus int) error {
	if testCtx.LastHTTPStatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d\nResponse: %s",
			expectedStatus, testCtx.LastHTTPStatusCode, testCtx.LastHTTPResponse)
	}
	return nil
}

// theResponseShouldBeValidJSON verifies response is valid JSON.
func (testCtx *TestContext) theResponseShouldBeValidJSON() error {
	var js json.RawMessage
	if err := json.Unmarshal([]byte(testCtx.LastHTTPResponse), &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w\nResponse: %s", err, testCtx.LastHTTPResponse)
	}
	return nil
}

func (testCtx *TestContext) theResponseShouldContain(text string) error {
	if !strings.Contains(testCtx.LastHTTPResponse, text) {
		return fmt.Errorf("response does not contain '%s'\nResponse: %s", text, testCtx.LastHTTPResponse)
	}
	return nil
}

func (testCtx *TestContext) theResponseFieldShouldBe(field, expected string) error {
	var data any
	if err := json.Unmarshal([]byte(testCtx.LastHTTPResponse), &data); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return checkJSONField(data, field, expected)
}

// theResponseHeaderShouldBe verifies a response header value.
func (testCtx *TestContext) theResponseHeaderShouldBe(name, expected string) error {
	got := testCtx.LastHTTPHeaders[http.CanonicalHeaderKey(name)]
	if got != expected {
		return fmt.Errorf("expected header %s to be %q, got %q", name, expected, got)
	}
	return nil
}

// accessControlAllowOriginShouldBe verifies CORS Access-Control-Allow-Origin header.
func (testCtx *TestContext) accessControlAllowOriginShouldBe(origin string) error {
	return testCtx.theResponseHeaderShouldBe("Access-Control-Allow-Origin", origin)
}

// theResponseShouldIncludeCORSHeaders verifies CORS headers are present.
func (testCtx *TestContext) theResponseShouldIncludeCORSHeaders() error {
	for _, h := range []string{"Access-Control-Allow-Origin", "Access-Control-Allow-Methods", "Access-Control-Allow-Headers"} {
		if testCtx.LastHTTPHeaders[h] == "" {
			return fmt.Errorf("missing CORS header %s", h)
		}
	}
	return nil
}

// allEndpointsShouldBeFunctional verifies every read endpoint answers 200.
func (testCtx *TestContext) allEndpointsShouldBeFunctional() error {
	endpoints := []string{
		"/health",
		"/defaults",
		"/defaults/settings",
		"/defaults/settings/barcodeArView.soundEnabled",
		"/defaults/presets/barcodeArView.circleHighlightSize/dot",
		"/metrics",
	}
	for _, endpoint := range endpoints {
		if err := testCtx.iGET(endpoint); err != nil {
			return fmt.Errorf("endpoint %s not functional: %w", endpoint, err)
		}
		if testCtx.LastHTTPStatusCode != http.StatusOK {
			return fmt.Errorf("endpoint %s returned %d", endpoint, testCtx.LastHTTPStatusCode)
		}
	}
	return nil
}

// iOpenATrackingSession dials the WebSocket tracking endpoint.
func (testCtx *TestContext) iOpenATrackingSession() error {
	if testCtx.HTTPTestServer == nil {
		return errors.New("server is not running")
	}
	wsURL := "ws" + strings.TrimPrefix(testCtx.HTTPTestServer.Server.URL, "http") + "/ws/session"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("failed to open tracking session: %w", err)
	}
	testCtx.WebSocketConn = conn
	return nil
}

// iSendTheTrackingMessage writes the doc string and reads one reply.
func (testCtx *TestContext) iSendTheTrackingMessage(msg *godog.DocString) error {
	if testCtx.WebSocketConn == nil {
		return errors.New("no tracking session open")
	}
	if err := testCtx.WebSocketConn.WriteMessage(websocket.TextMessage, []byte(msg.Content)); err != nil {
		return fmt.Errorf("failed to send tracking message: %w", err)
	}

	_ = testCtx.WebSocketConn.SetReadDeadline(time.Now().Add(5 * time.Second))
	reply := map[string]any{}
	if err := testCtx.WebSocketConn.ReadJSON(&reply); err != nil {
		return fmt.Errorf("failed to read tracking reply: %w", err)
	}
	testCtx.LastTrackingReply = reply
	return nil
}

func (testCtx *TestContext) theTrackingReplyFieldShouldBe(field, expected string) error {
	if testCtx.LastTrackingReply == nil {
		return errors.New("no tracking reply received")
	}
	return checkJSONField(testCtx.LastTrackingReply, field, expected)
}

// makeHTTPRequest makes an HTTP request to the server.
func (testCtx *TestContext) makeHTTPRequest(method, endpoint, body string, headers map[string]string) error {
	client := &http.Client{Timeout: 5 * time.Second}
	url := testCtx.GetServerURL() + endpoint

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		testCtx.LastError = err
		testCtx.LastExitCode = 1
		return nil // verification steps report the failure
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	testCtx.LastOutput = string(respBody)
	testCtx.LastHTTPStatusCode = resp.StatusCode
	testCtx.LastHTTPResponse = string(respBody)
	testCtx.LastExitCode = 0
	testCtx.LastError = nil
	if resp.StatusCode >= 400 {
		testCtx.LastExitCode = 1
		testCtx.LastError = fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	testCtx.LastHTTPHeaders = make(map[string]string, len(resp.Header))
	for key, values := range resp.Header {
		if len(values) > 0 {
			testCtx.LastHTTPHeaders[key] = values[0]
		}
	}

	return nil
}

// RegisterServerSteps registers all server mode step definitions.
func (testCtx *TestContext) RegisterServerSteps(sc *godog.ScenarioContext) {
	// Server lifecycle
	sc.Step(`^the defaults server is running$`, testCtx.theDefaultsServerIsRunning)
	sc.Step(`^the defaults server is running with CORS origin "([^"]*)"$`, testCtx.theDefaultsServerIsRunningWithCORSOrigin)

	// Requests
	sc.Step(`^I GET "([^"]*)"$`, testCtx.iGET)
	sc.Step(`^I GET "([^"]*)" with header "([^"]*)" set to "([^"]*)"$`, testCtx.iGETWithHeader)
	sc.Step(`^I POST to "([^"]*)" with body:$`, testCtx.iPOSTTo)
	sc.Step(`^I make an OPTIONS request to "([^"]*)"$`, testCtx.iMakeAnOPTIONSRequestTo)

	// Responses
	sc.Step(`^the response status should be (\d+)$`, func(statusStr string) error {
		status, err := strconv.Atoi(statusStr)
		if err != nil {
			return fmt.Errorf("invalid status: %s", statusStr)
		}
		return testCtx.theResponseStatusShouldBe(status)
	})
	sc.Step(`^the response should be valid JSON$`, testCtx.theResponseShouldBeValidJSON)
	sc.Step(`^the response should contain "([^"]*)"$`, testCtx.theResponseShouldContain)
	sc.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, testCtx.theResponseFieldShouldBe)
	sc.Step(`^the response header "([^"]*)" should be "([^"]*)"$`, testCtx.theResponseHeaderShouldBe)
	sc.Step(`^Access-Control-Allow-Origin should be "([^"]*)"$`, testCtx.accessControlAllowOriginShouldBe)
	sc.Step(`^the response should include CORS headers$`, testCtx.theResponseShouldIncludeCORSHeaders)
	sc.Step(`^all endpoints should be functional$`, testCtx.allEndpointsShouldBeFunctional)

	// Tracking sessions
	sc.Step(`^I open a tracking session$`, testCtx.iOpenATrackingSession)
	sc.Step(`^I send the tracking message:$`, testCtx.iSendTheTrackingMessage)
	sc.Step(`^the tracking reply field "([^"]*)" should be "([^"]*)"$`, testCtx.theTrackingReplyFieldShouldBe)
}
