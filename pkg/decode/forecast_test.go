package decode

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/meteoscope/pkg/domain"
)

func loadTestData(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name)) //nolint:gosec // test fixture
	require.NoError(t, err)
	return data
}

func ptr(v float64) *float64 { return &v }

func TestForecastDecoder_Decode(t *testing.T) {
	fetched := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	meta := Meta{SnapshotHash: "abc", FetchedAt: fetched}

	res, err := NewForecastDecoder().Decode(loadTestData(t, "forecast.xml"), meta)
	require.NoError(t, err)

	assert.Equal(t, domain.SyncState, res.Kind)
	assert.Equal(t, 6, res.Total)
	assert.Equal(t, 5, res.Valid)
	assert.True(t, res.Partial)
	assert.Equal(t, domain.DecodePartial, res.State())

	want := []domain.ForecastRecord{
		{Region: "Bucuresti", Date: "2026-10-19", TempMin: ptr(5), TempMax: ptr(14), Condition: "Clear Sky",
			ConditionCode: "1", IssuedDate: "2026-10-19", SnapshotHash: "abc", FetchedAt: fetched},
		{Region: "Bucuresti", Date: "2026-10-20", TempMin: ptr(6.5), TempMax: ptr(15), Condition: "Light Rain, Rain",
			ConditionCode: "7", IssuedDate: "2026-10-19", SnapshotHash: "abc", FetchedAt: fetched},
		{Region: "Cluj-Napoca", Date: "2026-10-19", TempMin: nil, TempMax: ptr(11), Condition: "Cloudy",
			ConditionCode: "3", IssuedDate: "2026-10-19", Partial: true, SnapshotHash: "abc", FetchedAt: fetched},
		{Region: "Cluj-Napoca", Date: "2026-10-20", TempMin: ptr(2), TempMax: nil, Condition: "Fog",
			ConditionCode: "9", IssuedDate: "2026-10-19", Partial: true, SnapshotHash: "abc", FetchedAt: fetched},
		{Region: "Iasi", Date: "2026-10-19", TempMin: ptr(1), TempMax: ptr(9), Condition: "Unknown",
			IssuedDate: "2026-10-19", Partial: true, SnapshotHash: "abc", FetchedAt: fetched},
	}
	if diff := cmp.Diff(want, res.Forecasts, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("forecasts mismatch (-want +got):\n%s", diff)
	}
}

func TestForecastDecoder_DecodeFailures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"no localities", `<?xml version="1.0"?><Prognoza_Oras></Prognoza_Oras>`},
		{"no usable dates", `<r><localitate nume="Arad"><prognoza data="someday"><temp_min>1</temp_min></prognoza></localitate></r>`},
		{"nameless locality", `<r><localitate nume=""><prognoza data="2026-10-19"><temp_min>1</temp_min></prognoza></localitate></r>`},
		{"broken xml", `<r><localitate nume="Arad"><prognoza data="2026-10-19">`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewForecastDecoder().Decode([]byte(tt.payload), Meta{})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrDecode)
		})
	}
}

func TestForecastDecoder_DateFormats(t *testing.T) {
	payload := `<r><localitate nume="Arad"><DataPrognozei>19.10.2026</DataPrognozei>
<prognoza data="20.10.2026"><temp_min>1,5</temp_min><temp_max>8</temp_max><fenomen_descriere>ceata</fenomen_descriere></prognoza>
</localitate></r>`
	res, err := NewForecastDecoder().Decode([]byte(payload), Meta{})
	require.NoError(t, err)
	require.Len(t, res.Forecasts, 1)
	assert.Equal(t, "2026-10-20", res.Forecasts[0].Date)
	assert.Equal(t, "2026-10-19", res.Forecasts[0].IssuedDate)
	require.NotNil(t, res.Forecasts[0].TempMin)
	assert.InDelta(t, 1.5, *res.Forecasts[0].TempMin, 0.001)
	assert.False(t, res.Partial)
}

func TestForecastDecoder_MalformedTemperatures(t *testing.T) {
	tests := []struct {
		name     string
		min, max string
		partial  bool
	}{
		{name: "finite", min: "-3.5", max: "4", partial: false},
		{name: "nan and inf", min: "NaN", max: "Inf", partial: true},
		{name: "infinity", min: "1", max: "+Infinity", partial: true},
		{name: "negative inf", min: "-Inf", max: "2", partial: true},
		{name: "text", min: "minus doi", max: "2", partial: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := fmt.Sprintf(`<r><localitate nume="Arad"><prognoza data="2026-10-19"><temp_min>%s</temp_min>`+
				`<temp_max>%s</temp_max><fenomen_descriere>ceata</fenomen_descriere></prognoza></localitate></r>`, tt.min, tt.max)
			res, err := NewForecastDecoder().Decode([]byte(payload), Meta{})
			require.NoError(t, err)
			require.Len(t, res.Forecasts, 1)
			rec := res.Forecasts[0]
			assert.Equal(t, tt.partial, rec.Partial)
			assert.Equal(t, tt.partial, res.Partial)
			for _, v := range []*float64{rec.TempMin, rec.TempMax} {
				if v != nil {
					assert.False(t, math.IsNaN(*v) || math.IsInf(*v, 0), "non-finite temperature kept")
				}
			}
		})
	}
}

func TestForecastDecoder_ByteOrderMark(t *testing.T) {
	payload := "\xEF\xBB\xBF" + `<?xml version="1.0" encoding="UTF-8"?><r><localitate nume="Arad">` +
		`<prognoza data="2026-10-19"><temp_min>1</temp_min><temp_max>8</temp_max><fenomen_descriere>ceata</fenomen_descriere></prognoza>` +
		`</localitate></r>`
	res, err := NewForecastDecoder().Decode([]byte(payload), Meta{})
	require.NoError(t, err)
	require.Len(t, res.Forecasts, 1)
	assert.Equal(t, "Arad", res.Forecasts[0].Region)

	rss := "\xEF\xBB\xBF" + `<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>a</title>` +
		`<item><title>Avertizare</title><guid>bom-1</guid><description>COD : GALBEN In zona : Judetul Arad</description>` +
		`<pubDate>Mon, 19 Oct 2026 08:00:00 +0300</pubDate></item></channel></rss>`
	alerts, err := NewAlertDecoder(24*time.Hour).Decode([]byte(rss), Meta{})
	require.NoError(t, err)
	require.Len(t, alerts.Alerts, 1)
	assert.Equal(t, "bom-1", alerts.Alerts[0].ExternalID)
}

func TestDecoder_Dispatch(t *testing.T) {
	d := New(24 * time.Hour)

	res, err := d.Decode(domain.SyncState, loadTestData(t, "forecast.xml"), Meta{})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Records())

	res, err = d.Decode(domain.SyncEvent, loadTestData(t, "alerts.rss"), Meta{})
	require.NoError(t, err)
	assert.Equal(t, domain.SyncEvent, res.Kind)
	assert.Equal(t, 4, res.Records())

	_, err = d.Decode("stream", []byte("<x/>"), Meta{})
	require.ErrorIs(t, err, domain.ErrDecode)
}
