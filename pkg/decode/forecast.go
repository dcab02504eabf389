package decode

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/umputun/meteoscope/pkg/domain"
)

// utf8BOM prefixes some upstream documents, xml.Decoder rejects it
var utf8BOM = []byte("\xEF\xBB\xBF")

// dateLayouts are the calendar-day formats accepted in forecast payloads
var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

type xmlLocality struct {
	Name     string       `xml:"nume,attr"`
	Issued   string       `xml:"DataPrognozei"`
	Forecast []xmlDayInfo `xml:"prognoza"`
}

type xmlDayInfo struct {
	Date        string `xml:"data,attr"`
	TempMin     string `xml:"temp_min"`
	TempMax     string `xml:"temp_max"`
	Description string `xml:"fenomen_descriere"`
	Symbol      string `xml:"fenomen_simbol"`
}

// ForecastDecoder decodes the regional forecast XML document
type ForecastDecoder struct{}

// NewForecastDecoder makes a forecast decoder
func NewForecastDecoder() *ForecastDecoder { return &ForecastDecoder{} }

// Decode extracts region-day records. Entries with a missing or malformed temperature or
// condition are kept and flagged partial, entries without a usable date are dropped.
// A payload with no usable entries is a decode failure.
func (d *ForecastDecoder) Decode(payload []byte, meta Meta) (Result, error) {
	res := Result{Kind: domain.SyncState}

	dec := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(payload, utf8BOM)))
	dec.CharsetReader = charset.NewReaderLabel

	seen := map[string]int{} // region|date -> index in res.Forecasts
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("%w: forecast xml: %w", domain.ErrDecode, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "localitate" {
			continue
		}
		var loc xmlLocality
		if err := dec.DecodeElement(&loc, &se); err != nil {
			return Result{}, fmt.Errorf("%w: locality element: %w", domain.ErrDecode, err)
		}
		region := strings.TrimSpace(loc.Name)
		if region == "" {
			continue
		}
		issued, _ := normalizeDate(loc.Issued)
		for _, day := range loc.Forecast {
			res.Total++
			rec, ok := d.record(region, issued, day, meta)
			if !ok {
				continue
			}
			res.Valid++
			if rec.Partial {
				res.Partial = true
			}
			key := rec.Region + "|" + rec.Date
			if idx, dup := seen[key]; dup {
				res.Forecasts[idx] = rec
				continue
			}
			seen[key] = len(res.Forecasts)
			res.Forecasts = append(res.Forecasts, rec)
		}
	}

	if len(res.Forecasts) == 0 {
		return res, fmt.Errorf("%w: no usable forecast entries in %d seen", domain.ErrDecode, res.Total)
	}

	sort.Slice(res.Forecasts, func(i, j int) bool {
		if res.Forecasts[i].Region != res.Forecasts[j].Region {
			return res.Forecasts[i].Region < res.Forecasts[j].Region
		}
		return res.Forecasts[i].Date < res.Forecasts[j].Date
	})
	return res, nil
}

func (d *ForecastDecoder) record(region, issued string, day xmlDayInfo, meta Meta) (domain.ForecastRecord, bool) {
	date, ok := normalizeDate(day.Date)
	if !ok {
		return domain.ForecastRecord{}, false
	}
	rec := domain.ForecastRecord{
		Region:        region,
		Date:          date,
		Condition:     TranslateCondition(day.Description),
		ConditionCode: strings.TrimSpace(day.Symbol),
		IssuedDate:    issued,
		SnapshotHash:  meta.SnapshotHash,
		FetchedAt:     meta.FetchedAt,
	}
	rec.TempMin, ok = parseTemp(day.TempMin)
	rec.Partial = !ok
	rec.TempMax, ok = parseTemp(day.TempMax)
	rec.Partial = rec.Partial || !ok
	if strings.TrimSpace(day.Description) == "" {
		rec.Partial = true
	}
	return rec, true
}

// normalizeDate converts a date in any accepted layout to YYYY-MM-DD
func normalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// parseTemp parses a temperature, accepting decimal comma. NaN and infinities are malformed
func parseTemp(s string) (*float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return nil, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return &v, true
}
