package dispatch

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"time"
)

// Work describes a published article pushed to an author's ORCID record.
type Work struct {
	Title           string
	JournalName     string
	DOI             string
	PublicationDate time.Time
	URL             string
}

// OrcidClient pushes published works to ORCID profiles. Publish-only,
// best-effort, and conditional on the author having linked credentials.
type OrcidClient interface {
	PushWork(ctx context.Context, orcidID, accessToken string, work Work) error
}

// HTTPOrcidClient talks to the ORCID v3 member API.
type HTTPOrcidClient struct {
	apiURL string
	client *http.Client
}

// NewHTTPOrcidClient creates an HTTPOrcidClient.
func NewHTTPOrcidClient(apiURL string) *HTTPOrcidClient {
	return &HTTPOrcidClient{
		apiURL: apiURL,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type orcidWorkXML struct {
	XMLName      xml.Name `xml:"work"`
	Title        string   `xml:"title>title"`
	JournalTitle string   `xml:"journal-title"`
	Type         string   `xml:"type"`
	Year         int      `xml:"publication-date>year"`
	Month        int      `xml:"publication-date>month"`
	DOI          string   `xml:"external-ids>external-id>external-id-value"`
	URL          string   `xml:"url"`
}

// PushWork adds the work to the author's ORCID record.
func (c *HTTPOrcidClient) PushWork(ctx context.Context, orcidID, accessToken string, work Work) error {
	payload, err := xml.Marshal(orcidWorkXML{
		Title:        work.Title,
		JournalTitle: work.JournalName,
		Type:         "journal-article",
		Year:         work.PublicationDate.Year(),
		Month:        int(work.PublicationDate.Month()),
		DOI:          work.DOI,
		URL:          work.URL,
	})
	if err != nil {
		return fmt.Errorf("marshal work: %w", err)
	}

	url := fmt.Sprintf("%s/%s/work", c.apiURL, orcidID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build work request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/vnd.orcid+xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("work request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("work rejected: status %d", resp.StatusCode)
	}
	return nil
}
