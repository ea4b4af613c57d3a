package proxy

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultMaxResults caps an article listing when the caller does not ask
// for a specific size. MaxResultsLimit bounds what a caller may ask for;
// the limit carries through to the upstream retmax parameter and to the
// result allocation, so a request cannot make us reserve more.
const (
	DefaultMaxResults = 10
	MaxResultsLimit   = 100
)

// Article is one open-access record served to the web client.
type Article struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Journal         string `json:"journal"`
	PublicationDate string `json:"publicationDate"`
	Link            string `json:"link,omitempty"`
	License         string `json:"license,omitempty"`
	Format          string `json:"format,omitempty"`
}

// PMC OA service wire format (XML).
type oaResponse struct {
	XMLName xml.Name `xml:"OA"`
	Records struct {
		Record []oaRecord `xml:"record"`
	} `xml:"records"`
}

type oaRecord struct {
	ID       string `xml:"id,attr"`
	Citation string `xml:"citation,attr"`
	License  string `xml:"license,attr"`
	Link     struct {
		Href    string `xml:"href,attr"`
		Format  string `xml:"format,attr"`
		Updated string `xml:"updated,attr"`
	} `xml:"link"`
}

// ResearchClient queries the PubMed Central open access service.
type ResearchClient struct {
	baseURL string
	hc      *http.Client
}

// NewResearchClient constructs a client for the given NCBI base URL.
func NewResearchClient(baseURL string, timeout time.Duration) *ResearchClient {
	return &ResearchClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

// FetchArticles returns up to maxResults open-access records matching query.
// An empty result set yields ErrNoResults.
func (c *ResearchClient) FetchArticles(ctx context.Context, query string, maxResults int) ([]Article, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if maxResults > MaxResultsLimit {
		maxResults = MaxResultsLimit
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("retmax", fmt.Sprint(maxResults))
	q.Set("format", "pdf")
	endpoint := c.baseURL + "/pmc/utils/oa/oa.fcgi?" + q.Encode()

	body, err := fetchWithRetry(ctx, c.hc, endpoint)
	if err != nil {
		return nil, err
	}

	var decoded oaResponse
	if err := xml.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decoding OA response: %w", err)
	}
	if len(decoded.Records.Record) == 0 {
		return nil, ErrNoResults
	}

	articles := make([]Article, 0, min(maxResults, len(decoded.Records.Record)))
	for _, r := range decoded.Records.Record {
		if len(articles) == maxResults {
			break
		}
		articles = append(articles, Article{
			ID:              r.ID,
			Title:           citationTitle(r.Citation),
			Journal:         citationJournal(r.Citation),
			PublicationDate: r.Link.Updated,
			Link:            r.Link.Href,
			License:         r.License,
			Format:          r.Link.Format,
		})
	}
	return articles, nil
}

func citationTitle(citation string) string {
	if citation == "" {
		return "No title available"
	}
	return citation
}

// citationJournal extracts the leading journal name from an OA citation,
// which is formatted as "Journal. Year Month; ...".
func citationJournal(citation string) string {
	if citation == "" {
		return "Unknown journal"
	}
	if i := strings.IndexByte(citation, '.'); i > 0 {
		return citation[:i]
	}
	return citation
}
