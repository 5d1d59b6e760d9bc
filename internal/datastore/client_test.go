package datastore

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Al69m/top10-streaming-fr/internal/errors"
)

func TestDatasetteClientBatchInsert(t *testing.T) {
	var gotPath, gotAuth string
	var payload struct {
		Rows []map[string]any `json:"rows"`
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewDatasetteClient(ts.URL, "testtoken")
	require.NoError(t, client.Connect())
	require.NoError(t, client.CreateTable(RankingsSchema))

	records := []map[string]any{{"catalog_id": "netflix-movies", "rank": 1}}
	require.NoError(t, client.BatchInsert("top10", RankingsTable, records))

	assert.Equal(t, "/-/insert/top10/top10_rankings", gotPath)
	assert.Equal(t, "Bearer testtoken", gotAuth)
	require.Len(t, payload.Rows, 1)
	assert.Equal(t, "netflix-movies", payload.Rows[0]["catalog_id"])
}

func TestDatasetteClientBatchInsertAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "forbidden"})
	}))
	defer ts.Close()

	client := NewDatasetteClient(ts.URL, "")
	err := client.BatchInsert("top10", "t", []map[string]any{{"foo": "bar"}})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperrors.StatusCode(err))
	assert.Contains(t, err.Error(), "forbidden")
}

func TestDatasetteClientEmptyBatch(t *testing.T) {
	client := NewDatasetteClient("http://127.0.0.1:1", "")
	assert.NoError(t, client.BatchInsert("top10", "t", nil))
}

func TestDatasetteClientConnectInvalidURL(t *testing.T) {
	assert.Error(t, NewDatasetteClient("not a url", "").Connect())
	assert.Error(t, NewDatasetteClient("://bad", "").Connect())
}
