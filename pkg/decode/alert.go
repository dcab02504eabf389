package decode

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/meteoscope/pkg/domain"
)

const (
	maxZonesLen       = 200
	maxDescriptionLen = 500
	unknownSeverity   = "UNKNOWN"
)

// alertNamespace scopes synthesized alert ids
var alertNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("meteoscope/alerts"))

var (
	reLevel     = regexp.MustCompile(`(?i)\bCOD\b\s*:?\s*(\p{L}+)`)
	reZones     = regexp.MustCompile(`In zona\s*:\s*(.+?)(?:Se vor|$)`)
	reTimeRange = regexp.MustCompile(`Intre orele\s*:\s*(\d{1,2}:\d{2})\s*si\s*(\d{1,2}:\d{2})`)
	reValidity  = regexp.MustCompile(`(?i)\s*Interval de valabilitate.*$`)
	reSpaces    = regexp.MustCompile(`\s+`)

	descriptionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Se vor semnala\s*:\s*(.+?)$`),
		regexp.MustCompile(`(?i)Fenomene vizate\s*:\s*(.+?)$`),
		regexp.MustCompile(`(?i)Fenomene\s*:\s*conform textelor\s+Mesaj\s*:\s*(.+?)(?:Interval de valabilitate|$)`),
		regexp.MustCompile(`(?i)Mesaj\s*:\s*(?:MESAJ\s*\d+/\d+\s*)?(.+?)(?:Interval de valabilitate|$)`),
	}

	severityNames = map[string]domain.Severity{
		"GALBEN": domain.SeverityYellow, "YELLOW": domain.SeverityYellow,
		"PORTOCALIU": domain.SeverityOrange, "ORANGE": domain.SeverityOrange,
		"ROSU": domain.SeverityRed, "ROȘU": domain.SeverityRed, "ROŞU": domain.SeverityRed, "RED": domain.SeverityRed,
	}
)

// AlertDecoder decodes the alerts RSS feed
type AlertDecoder struct {
	defaultValidity time.Duration
	policy          *bluemonday.Policy
}

// NewAlertDecoder makes an alert decoder
func NewAlertDecoder(defaultValidity time.Duration) *AlertDecoder {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return &AlertDecoder{defaultValidity: defaultValidity, policy: p}
}

// Decode extracts alerts from an RSS payload. An empty feed is a valid result with no alerts.
// Alerts with unrecognized severity are kept with SeverityKnown=false.
func (d *AlertDecoder) Decode(payload []byte, meta Meta) (Result, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(bytes.TrimPrefix(payload, utf8BOM)))
	if err != nil {
		return Result{}, fmt.Errorf("%w: alert feed: %w", domain.ErrDecode, err)
	}

	res := Result{Kind: domain.SyncEvent}
	seen := map[string]bool{}
	for _, item := range feed.Items {
		res.Total++
		rec, partial := d.record(item, meta)
		if seen[rec.ExternalID] {
			continue
		}
		seen[rec.ExternalID] = true
		res.Valid++
		res.Partial = res.Partial || partial
		res.Alerts = append(res.Alerts, rec)
	}
	return res, nil
}

// record builds an alert from a feed item, partial is set when severity or publish time is missing
func (d *AlertDecoder) record(item *gofeed.Item, meta Meta) (rec domain.AlertRecord, partial bool) {
	raw := item.Description
	if raw == "" {
		raw = item.Content
	}
	text := d.clean(raw)
	title := d.clean(item.Title)
	if title == "" {
		title = "Weather Alert"
	}

	severity, known := extractSeverity(text)
	if !known && severity == unknownSeverity {
		severity, known = extractSeverity(title)
	}

	var published time.Time
	switch {
	case item.PublishedParsed != nil:
		published = *item.PublishedParsed
	case item.UpdatedParsed != nil:
		published = *item.UpdatedParsed
	}

	rec = domain.AlertRecord{
		Title:         title,
		Severity:      severity,
		SeverityKnown: known,
		Description:   extractDescription(text),
		Zones:         extractZones(text),
		Link:          strings.TrimSpace(item.Link),
		PublishedAt:   published,
		SnapshotHash:  meta.SnapshotHash,
		FetchedAt:     meta.FetchedAt,
	}

	rec.ExternalID = strings.TrimSpace(item.GUID)
	if rec.ExternalID == "" {
		rec.ExternalID = SyntheticID(severity, published, rec.Description)
	}

	base := published
	if base.IsZero() {
		base = meta.FetchedAt
	}
	rec.ValidFrom, rec.ValidUntil, rec.TimeRange = d.validity(text, base)

	return rec, !known || published.IsZero()
}

// validity derives the window from "Intre orele: HH:MM si HH:MM" anchored at base's day,
// an end before the start rolls over to the next day
func (d *AlertDecoder) validity(text string, base time.Time) (from, until time.Time, rng string) {
	m := reTimeRange.FindStringSubmatch(text)
	if m == nil {
		return base, base.Add(d.defaultValidity), ""
	}
	start, errS := time.Parse("15:04", m[1])
	end, errE := time.Parse("15:04", m[2])
	if errS != nil || errE != nil {
		return base, base.Add(d.defaultValidity), ""
	}
	rng = m[1] + " - " + m[2]
	day := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, base.Location())
	from = day.Add(time.Duration(start.Hour())*time.Hour + time.Duration(start.Minute())*time.Minute)
	until = day.Add(time.Duration(end.Hour())*time.Hour + time.Duration(end.Minute())*time.Minute)
	if !until.After(from) {
		until = until.Add(24 * time.Hour)
	}
	return from, until, rng
}

// clean strips html tags, decodes entities and collapses whitespace
func (d *AlertDecoder) clean(s string) string {
	if s == "" {
		return ""
	}
	s = html.UnescapeString(d.policy.Sanitize(html.UnescapeString(s)))
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// SyntheticID makes a deterministic id for alerts published without a guid
func SyntheticID(severity domain.Severity, published time.Time, description string) string {
	name := string(severity) + "|" + published.UTC().Format(time.RFC3339) + "|" + description
	return uuid.NewSHA1(alertNamespace, []byte(name)).String()
}

// extractSeverity finds the alert level, unrecognized text is returned upper-cased and unknown
func extractSeverity(text string) (domain.Severity, bool) {
	m := reLevel.FindStringSubmatch(text)
	if m == nil {
		return unknownSeverity, false
	}
	level := strings.ToUpper(m[1])
	if sev, ok := severityNames[level]; ok {
		return sev, true
	}
	return domain.Severity(level), false
}

func extractZones(text string) string {
	m := reZones.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return truncate(strings.TrimSpace(m[1]), maxZonesLen)
}

func extractDescription(text string) string {
	for _, re := range descriptionPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		res := strings.TrimSpace(reValidity.ReplaceAllString(m[1], ""))
		if len([]rune(res)) > 20 {
			return truncate(res, maxDescriptionLen)
		}
	}
	return truncate(text, maxDescriptionLen)
}

// truncate limits s to n runes
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
