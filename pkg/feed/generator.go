// Package feed republishes stored alerts as an RSS 2.0 feed.
package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/meteoscope/pkg/domain"
)

// feedTTL hints readers to refresh at the alert polling rate
const feedTTL = 10

// Generator creates RSS feeds from alert records
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateAlertsRSS creates an RSS 2.0 feed of active alerts, level is optional
func (g *Generator) GenerateAlertsRSS(alerts []domain.AlertRecord, level domain.Severity, now time.Time) (string, error) {
	title := "Meteoscope - Active Weather Alerts"
	selfLink := g.baseURL + "/rss/alerts"
	if level != "" {
		title = fmt.Sprintf("Meteoscope - Active %s Weather Alerts", level)
		selfLink += "?level=" + string(level)
	}

	rssItems := make([]*Item, 0, len(alerts))
	for _, a := range alerts {
		rssItems = append(rssItems, g.convertToRSSItem(a))
	}

	feed := &Document{
		Version:   "2.0",
		AtomSpace: "http://www.w3.org/2005/Atom",
		Channel: &Channel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   "Weather alerts for Romania, republished while in force",
			Language:      "ro",
			Generator:     "meteoscope",
			TTL:           feedTTL,
			SelfLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: now.Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

// convertToRSSItem converts an alert to an RSS item
func (g *Generator) convertToRSSItem(a domain.AlertRecord) *Item {
	title := a.Title
	if title == "" {
		title = "Weather alert"
	}

	var desc strings.Builder
	desc.WriteString(a.Description)
	if a.Zones != "" {
		desc.WriteString("\nZones: " + a.Zones)
	}
	fmt.Fprintf(&desc, "\nValid: %s to %s", a.ValidFrom.UTC().Format(time.RFC3339), a.ValidUntil.UTC().Format(time.RFC3339))
	if a.TimeRange != "" {
		desc.WriteString(" (" + a.TimeRange + ")")
	}

	link := a.Link
	if link == "" {
		link = g.baseURL + "/api/v1/alerts"
	}

	pubDate := ""
	if !a.PublishedAt.IsZero() {
		pubDate = a.PublishedAt.Format(time.RFC1123Z)
	}

	return &Item{
		Title:       fmt.Sprintf("[%s] %s", a.Severity, title),
		Link:        link,
		GUID:        &GUID{Value: a.ExternalID, IsPermaLink: "false"},
		Description: strings.TrimSpace(desc.String()),
		PubDate:     pubDate,
		Categories:  []string{string(a.Severity)},
	}
}
