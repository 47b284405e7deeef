package testserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halverson/promptforge/internal/domain/activity"
	"github.com/halverson/promptforge/internal/domain/prompt"
	"github.com/halverson/promptforge/internal/domain/version"
	"github.com/halverson/promptforge/internal/export"
	"github.com/halverson/promptforge/internal/sqlite"
	"github.com/halverson/promptforge/internal/transport"
)

// TestServer runs the full HTTP stack over an in-memory database.
type TestServer struct {
	Server  *httptest.Server
	DB      *sqlite.DB
	OwnerID string
}

func New(t *testing.T, ownerID string) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	promptRepo := sqlite.NewPromptRepository(db)
	versionRepo := sqlite.NewVersionRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	activitySvc := activity.NewService(activityRepo, nil)
	promptSvc := prompt.NewService(promptRepo, activityRepo, nil, nil)
	versionSvc := version.NewService(versionRepo, promptRepo, activityRepo, nil, nil)

	server := httptest.NewServer(transport.NewServer(transport.Services{
		Prompts:  promptSvc,
		Versions: versionSvc,
		Activity: activitySvc,
		Exporter: export.NewEngine(),
	}, []string{"*"}, nil))

	ts := &TestServer{
		Server:  server,
		DB:      db,
		OwnerID: ownerID,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

// Do sends a JSON request and decodes the JSON response body into out
// (when out is non-nil), returning the status code.
func (ts *TestServer) Do(t *testing.T, method, path string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", ts.OwnerID)

	resp, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}
