package dataset_test

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovplanner/ovplanner/pkg/config"
	"github.com/ovplanner/ovplanner/pkg/dataset"
)

func bundleBytes(t *testing.T) []byte {
	t.Helper()

	var buffer bytes.Buffer
	writer := zip.NewWriter(&buffer)

	files := map[string]string{
		"stops.txt":      "stop_id,stop_name\nstop-1,Amsterdam Centraal\n",
		"routes.txt":     "route_id,route_short_name,route_type\nroute-1,52,1\n",
		"trips.txt":      "route_id,service_id,trip_id\nroute-1,daily,trip-1\n",
		"stop_times.txt": "trip_id,stop_id,stop_sequence\ntrip-1,stop-1,1\n",
	}
	for name, content := range files {
		fileWriter, err := writer.Create(name)
		require.NoError(t, err)
		_, err = fileWriter.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return buffer.Bytes()
}

func TestLoadDownloadsAndParses(t *testing.T) {
	bundle := bundleBytes(t)

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests += 1
		w.Write(bundle)
	}))
	defer server.Close()

	manager := dataset.NewManager(config.DatasetConfig{
		SourceURL: server.URL,
		CacheDir:  t.TempDir(),
	})

	schedule, err := manager.Load(false)
	require.NoError(t, err)
	assert.Len(t, schedule.Stops, 1)
	assert.Equal(t, 1, requests)
}

func TestFetchUsesCache(t *testing.T) {
	bundle := bundleBytes(t)

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests += 1
		w.Write(bundle)
	}))
	defer server.Close()

	manager := dataset.NewManager(config.DatasetConfig{
		SourceURL: server.URL,
		CacheDir:  t.TempDir(),
	})

	_, err := manager.Fetch(false)
	require.NoError(t, err)
	_, err = manager.Fetch(false)
	require.NoError(t, err)
	assert.Equal(t, 1, requests)

	_, err = manager.Fetch(true)
	require.NoError(t, err)
	assert.Equal(t, 2, requests)
}
