// Package dataset fetches and caches the GTFS bundle and loads it into a
// parsed schedule.
package dataset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ovplanner/ovplanner/pkg/config"
	"github.com/ovplanner/ovplanner/pkg/gtfs"
	"github.com/rs/zerolog/log"
)

const bundleFilename = "gtfs.zip"

type Manager struct {
	SourceURL string
	CacheDir  string

	client *http.Client
}

func NewManager(datasetConfig config.DatasetConfig) *Manager {
	return &Manager{
		SourceURL: datasetConfig.SourceURL,
		CacheDir:  datasetConfig.CacheDir,

		client: &http.Client{
			Timeout: 10 * time.Minute,
		},
	}
}

func (m *Manager) bundlePath() string {
	return filepath.Join(m.CacheDir, bundleFilename)
}

// Fetch returns the path of the cached GTFS bundle, downloading it first
// when the cache is cold or force is set. Downloads are retried with
// exponential backoff before giving up.
func (m *Manager) Fetch(force bool) (string, error) {
	bundlePath := m.bundlePath()

	if _, err := os.Stat(bundlePath); err == nil && !force {
		log.Info().Str("path", bundlePath).Msg("Using cached GTFS bundle")
		return bundlePath, nil
	}

	if err := os.MkdirAll(m.CacheDir, 0755); err != nil {
		return "", err
	}

	operation := func() error {
		return m.download(bundlePath)
	}

	err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4))
	if err != nil {
		return "", fmt.Errorf("failed to download GTFS bundle: %w", err)
	}

	return bundlePath, nil
}

func (m *Manager) download(bundlePath string) error {
	log.Info().Str("url", m.SourceURL).Msg("Downloading GTFS bundle")

	req, err := http.NewRequest("GET", m.SourceURL, nil)
	if err != nil {
		return backoff.Permanent(err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	tempFile, err := os.CreateTemp(m.CacheDir, "ovplanner-download-")
	if err != nil {
		return backoff.Permanent(err)
	}
	defer os.Remove(tempFile.Name())

	written, err := io.Copy(tempFile, resp.Body)
	tempFile.Close()
	if err != nil {
		return err
	}

	// Rename so a failed download never replaces a good cached bundle
	if err := os.Rename(tempFile.Name(), bundlePath); err != nil {
		return backoff.Permanent(err)
	}

	log.Info().Int64("bytes", written).Str("path", bundlePath).Msg("Downloaded GTFS bundle")

	return nil
}

// Load runs the whole pipeline: fetch (or reuse) the bundle and parse it.
func (m *Manager) Load(force bool) (*gtfs.Schedule, error) {
	bundlePath, err := m.Fetch(force)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(bundlePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	schedule := &gtfs.Schedule{}
	if err := schedule.ParseFile(file); err != nil {
		return nil, err
	}

	log.Info().
		Int("stops", len(schedule.Stops)).
		Int("routes", len(schedule.Routes)).
		Int("trips", len(schedule.Trips)).
		Int("stoptimes", len(schedule.StopTimes)).
		Msg("Loaded GTFS schedule")

	return schedule, nil
}
