package gtfs_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovplanner/ovplanner/pkg/gtfs"
)

func buildBundle(t *testing.T, files map[string]string) *bytes.Reader {
	t.Helper()

	var buffer bytes.Buffer
	writer := zip.NewWriter(&buffer)

	for name, content := range files {
		fileWriter, err := writer.Create(name)
		require.NoError(t, err)
		_, err = fileWriter.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return bytes.NewReader(buffer.Bytes())
}

func coreFiles() map[string]string {
	return map[string]string{
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
			"stop-1,Amsterdam Centraal,52.3791,4.9003\n" +
			"stop-2,Amsterdam Zuid,52.3389,4.8729\n",
		"routes.txt": "route_id,route_short_name,route_long_name,route_type\n" +
			"route-1,52,Noord - Zuid,1\n",
		"trips.txt": "route_id,service_id,trip_id\n" +
			"route-1,daily,trip-1\n",
		"stop_times.txt": "trip_id,stop_id,stop_sequence\n" +
			"trip-1,stop-1,1\n" +
			"trip-1,stop-2,2\n",
	}
}

func TestParseFileCoreTables(t *testing.T) {
	schedule := &gtfs.Schedule{}
	err := schedule.ParseFile(buildBundle(t, coreFiles()))
	require.NoError(t, err)

	require.Len(t, schedule.Stops, 2)
	assert.Equal(t, "stop-1", schedule.Stops[0].ID)
	assert.Equal(t, "Amsterdam Centraal", schedule.Stops[0].Name)
	assert.InDelta(t, 52.3791, schedule.Stops[0].Latitude, 0.0001)

	require.Len(t, schedule.Routes, 1)
	assert.Equal(t, 1, schedule.Routes[0].Type)

	require.Len(t, schedule.Trips, 1)
	assert.Equal(t, "route-1", schedule.Trips[0].RouteID)

	require.Len(t, schedule.StopTimes, 2)
	assert.Equal(t, 2, schedule.StopTimes[1].StopSequence)
}

func TestParseFileOptionalTables(t *testing.T) {
	files := coreFiles()
	files["agency.txt"] = "agency_id,agency_name,agency_url,agency_timezone\n" +
		"gvb,GVB,https://gvb.nl,Europe/Amsterdam\n"
	files["calendar_dates.txt"] = "service_id,date,exception_type\n" +
		"daily,20260427,2\n"

	schedule := &gtfs.Schedule{}
	err := schedule.ParseFile(buildBundle(t, files))
	require.NoError(t, err)

	require.Len(t, schedule.Agencies, 1)
	assert.Equal(t, "GVB", schedule.Agencies[0].Name)
	require.Len(t, schedule.CalendarDates, 1)
	assert.Equal(t, 2, schedule.CalendarDates[0].ExceptionType)
}

func TestParseFileIgnoresUnknownFiles(t *testing.T) {
	files := coreFiles()
	files["shapes.txt"] = "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\n"

	schedule := &gtfs.Schedule{}
	assert.NoError(t, schedule.ParseFile(buildBundle(t, files)))
}

func TestParseFileMissingRequiredTable(t *testing.T) {
	files := coreFiles()
	delete(files, "stop_times.txt")

	schedule := &gtfs.Schedule{}
	err := schedule.ParseFile(buildBundle(t, files))
	assert.ErrorContains(t, err, "stop_times.txt")
}

func TestParseFileRowsWithMissingColumns(t *testing.T) {
	files := coreFiles()
	files["stops.txt"] = "stop_id,stop_name,stop_lat,stop_lon\n" +
		"stop-1,Amsterdam Centraal\n"

	schedule := &gtfs.Schedule{}
	err := schedule.ParseFile(buildBundle(t, files))
	require.NoError(t, err)

	require.Len(t, schedule.Stops, 1)
	assert.Equal(t, float64(0), schedule.Stops[0].Latitude)
}

func TestParseFileNotAZip(t *testing.T) {
	schedule := &gtfs.Schedule{}
	err := schedule.ParseFile(bytes.NewReader([]byte("definitely not a zip")))
	assert.Error(t, err)
}
