package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"caza_backend/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

type sheetServer struct {
	mu      sync.Mutex
	values  [][]interface{}
	updates []string
	appends int
	bodies  []string
}

func (s *sheetServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, _ := io.ReadAll(r.Body)
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet:
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"range": "x", "values": s.values})
	case r.Method == http.MethodPut:
		s.updates = append(s.updates, r.URL.Path)
		s.bodies = append(s.bodies, string(body))
		_, _ = w.Write([]byte(`{}`))
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":append"):
		s.appends++
		s.bodies = append(s.bodies, string(body))
		_, _ = w.Write([]byte(`{}`))
	default:
		http.NotFound(w, r)
	}
}

func newTestSheets(t *testing.T, values [][]interface{}) (*SheetsClient, *sheetServer) {
	t.Helper()
	srv := &sheetServer{values: values}
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	client, err := NewSheetsClient(context.Background(), option.WithEndpoint(ts.URL+"/"), option.WithHTTPClient(ts.Client()))
	require.NoError(t, err)
	return client, srv
}

func sampleSheet() [][]interface{} {
	return [][]interface{}{
		{"numero_inscripcion", "email", "Estado de Pago"},
		{"INS-1", "a@b.com"},
		{},
		{"12.0", "c@d.com", "Pending"},
	}
}

func TestSheetsClient_ReadRowsPadsShortRows(t *testing.T) {
	client, _ := newTestSheets(t, sampleSheet())

	rows, err := client.ReadRows(context.Background(), "sheet-1", "inscrip")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "INS-1", rows[0]["numero_inscripcion"])
	v, ok := rows[0]["Estado de Pago"]
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, "Pending", rows[1]["Estado de Pago"])
}

func TestSheetsClient_ReadRowsHeaderOnly(t *testing.T) {
	client, _ := newTestSheets(t, [][]interface{}{{"ID"}})

	rows, err := client.ReadRows(context.Background(), "sheet-1", "permisos")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSheetsClient_UpdateCell(t *testing.T) {
	client, srv := newTestSheets(t, sampleSheet())

	err := client.UpdateCell(context.Background(), "sheet-1", "inscrip", "numero_inscripcion", "12", "estado de pago", "Paid")
	require.NoError(t, err)
	require.Len(t, srv.updates, 1)
	assert.Contains(t, srv.updates[0], "C4")
	assert.Contains(t, srv.bodies[0], "Paid")
}

func TestSheetsClient_UpdateCellErrors(t *testing.T) {
	client, srv := newTestSheets(t, sampleSheet())
	ctx := context.Background()

	err := client.UpdateCell(ctx, "sheet-1", "inscrip", "numero_inscripcion", "INS-9", "Estado de Pago", "Paid")
	assert.ErrorIs(t, err, interfaces.ErrRecordNotFound)

	err = client.UpdateCell(ctx, "sheet-1", "inscrip", "numero_inscripcion", "INS-1", "Observaciones", "x")
	assert.ErrorIs(t, err, interfaces.ErrColumnNotFound)

	assert.Empty(t, srv.updates)
}

func TestSheetsClient_AppendRows(t *testing.T) {
	client, srv := newTestSheets(t, nil)

	require.NoError(t, client.AppendRows(context.Background(), "sheet-1", "logs", [][]string{{"a", "b"}}))
	require.NoError(t, client.AppendRows(context.Background(), "sheet-1", "logs", nil))
	assert.Equal(t, 1, srv.appends)
	assert.Contains(t, srv.bodies[0], `"a"`)
}

func TestColumnLetter(t *testing.T) {
	cases := map[int]string{0: "A", 2: "C", 25: "Z", 26: "AA", 51: "AZ", 701: "ZZ"}
	for idx, want := range cases {
		assert.Equal(t, want, columnLetter(idx))
	}
}

func TestQuoteSheet(t *testing.T) {
	assert.Equal(t, "'inscrip'", quoteSheet("inscrip"))
	assert.Equal(t, "'it''s'", quoteSheet("it's"))
}

func TestDriveClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("alt") == "media" {
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF-1.4"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("pageToken") == "" {
			_, _ = w.Write([]byte(`{"nextPageToken":"p2","files":[{"id":"f1","name":"15.pdf","webViewLink":"https://drive/f1"}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"files":[{"id":"f2","name":"ins-1.pdf"}]}`))
	}))
	defer ts.Close()

	opts := []option.ClientOption{option.WithEndpoint(ts.URL + "/"), option.WithHTTPClient(ts.Client())}
	client, err := NewDriveClient(context.Background(), "folder-1", opts...)
	require.NoError(t, err)

	files, err := client.ListPDFs(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, interfaces.BlobFile{ID: "f1", Name: "15.pdf", Link: "https://drive/f1"}, files[0])

	content, err := client.Download(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))

	unconfigured, err := NewDriveClient(context.Background(), "", opts...)
	require.NoError(t, err)
	_, err = unconfigured.ListPDFs(context.Background())
	assert.ErrorIs(t, err, ErrFolderNotConfigured)
}
