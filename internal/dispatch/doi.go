package dispatch

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"peer-review-workflow/internal/logger"
)

// DOIDeposit carries the article metadata registered with the DOI agency
// at publish time.
type DOIDeposit struct {
	ArticleID       string
	DOI             string
	Title           string
	JournalName     string
	AuthorName      string
	Volume          int
	Issue           int
	PublicationDate time.Time
}

// DOIRegistrar registers DOIs with an external agency. Publish-only,
// best-effort: registration failures never roll back publication.
type DOIRegistrar interface {
	Register(ctx context.Context, deposit DOIDeposit) error
}

// CrossrefRegistrar deposits DOI metadata with the Crossref API.
// Without credentials it runs in mock mode and only logs the deposit,
// so development environments never hit the live agency.
type CrossrefRegistrar struct {
	depositURL string
	username   string
	password   string
	client     *http.Client
}

// NewCrossrefRegistrar creates a CrossrefRegistrar.
func NewCrossrefRegistrar(depositURL, username, password string) *CrossrefRegistrar {
	return &CrossrefRegistrar{
		depositURL: depositURL,
		username:   username,
		password:   password,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

type doiDepositXML struct {
	XMLName     xml.Name `xml:"doi_deposit"`
	DOI         string   `xml:"doi"`
	Title       string   `xml:"title"`
	Journal     string   `xml:"journal"`
	Author      string   `xml:"author"`
	Volume      int      `xml:"volume"`
	Issue       int      `xml:"issue"`
	Published   string   `xml:"publication_date"`
	ResourceURL string   `xml:"resource"`
}

// Register deposits the DOI metadata.
func (r *CrossrefRegistrar) Register(ctx context.Context, deposit DOIDeposit) error {
	if r.username == "" || r.password == "" {
		logger.Warn("DOI registration running in mock mode, missing credentials",
			"doi", deposit.DOI)
		return nil
	}

	payload, err := xml.Marshal(doiDepositXML{
		DOI:         deposit.DOI,
		Title:       deposit.Title,
		Journal:     deposit.JournalName,
		Author:      deposit.AuthorName,
		Volume:      deposit.Volume,
		Issue:       deposit.Issue,
		Published:   deposit.PublicationDate.Format("2006-01-02"),
		ResourceURL: fmt.Sprintf("https://doi.org/%s", deposit.DOI),
	})
	if err != nil {
		return fmt.Errorf("marshal deposit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.depositURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build deposit request: %w", err)
	}
	req.SetBasicAuth(r.username, r.password)
	req.Header.Set("Content-Type", "application/xml")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("deposit request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("deposit rejected: status %d", resp.StatusCode)
	}

	logger.Info("DOI registered", "doi", deposit.DOI, "article_id", deposit.ArticleID)
	return nil
}
