package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// Schedule holds the parsed tables of one GTFS bundle.
type Schedule struct {
	Agencies      []Agency
	Stops         []Stop
	Routes        []Route
	Trips         []Trip
	StopTimes     []StopTime
	Calendars     []Calendar
	CalendarDates []CalendarDate
}

var requiredFiles = []string{"stops.txt", "routes.txt", "trips.txt", "stop_times.txt"}

// ParseFile reads a GTFS zip bundle. The four core tables must be present;
// agency and calendar files are loaded when the feed provides them.
func (schedule *Schedule) ParseFile(reader io.Reader) error {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})

	fileMap := map[string]interface{}{
		"agency.txt":         &schedule.Agencies,
		"stops.txt":          &schedule.Stops,
		"routes.txt":         &schedule.Routes,
		"trips.txt":          &schedule.Trips,
		"stop_times.txt":     &schedule.StopTimes,
		"calendar.txt":       &schedule.Calendars,
		"calendar_dates.txt": &schedule.CalendarDates,
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	archive, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return err
	}

	parsedFiles := map[string]bool{}

	for _, zipFile := range archive.File {
		destination, exists := fileMap[zipFile.Name]
		if !exists {
			log.Debug().Str("file", zipFile.Name).Msg("Skipping unused gtfs file")
			continue
		}

		log.Info().Str("file", zipFile.Name).Msg("Loading file")

		fileReader, err := zipFile.Open()
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", zipFile.Name, err)
		}

		err = gocsv.Unmarshal(fileReader, destination)
		fileReader.Close()
		if err != nil {
			log.Error().Str("file", zipFile.Name).Err(err).Msg("Failed to parse csv file")
			return err
		}

		parsedFiles[zipFile.Name] = true
	}

	for _, fileName := range requiredFiles {
		if !parsedFiles[fileName] {
			return fmt.Errorf("gtfs bundle is missing required file %s", fileName)
		}
	}

	return nil
}
