// Package proxy contains the outbound clients behind the server's
// third-party proxy routes: openFDA drug labels and PubMed Central open
// access articles. Calls are retried with exponential backoff because both
// upstreams throttle aggressively.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/sethvargo/go-retry"
)

// ErrNoResults marks an upstream response that contained no usable records.
var ErrNoResults = errors.New("no results")

const (
	retryAttempts  = 3
	retryBaseDelay = 200 * time.Millisecond
)

// DrugLabel is the flattened label summary served to the web client.
type DrugLabel struct {
	BrandName            string   `json:"brandName,omitempty"`
	GenericName          string   `json:"genericName,omitempty"`
	Manufacturer         string   `json:"manufacturer,omitempty"`
	Indications          string   `json:"indications,omitempty"`
	Warnings             string   `json:"warnings,omitempty"`
	DosageForms          []string `json:"dosageForms,omitempty"`
	ClinicalPharmacology string   `json:"clinicalPharmacology,omitempty"`
	AdverseReactions     string   `json:"adverseReactions,omitempty"`
	FDALabelLink         string   `json:"fdaLabelLink,omitempty"`
}

// openFDA wire format, reduced to the fields the summary needs.
type fdaLabelResponse struct {
	Results []struct {
		ID                   string   `json:"id"`
		IndicationsAndUsage  []string `json:"indications_and_usage"`
		Warnings             []string `json:"warnings"`
		ClinicalPharmacology []string `json:"clinical_pharmacology"`
		AdverseReactions     []string `json:"adverse_reactions"`
		OpenFDA              struct {
			BrandName        []string `json:"brand_name"`
			GenericName      []string `json:"generic_name"`
			ManufacturerName []string `json:"manufacturer_name"`
			DosageForm       []string `json:"dosage_form"`
		} `json:"openfda"`
	} `json:"results"`
}

// DrugLabelClient queries the openFDA drug label API.
type DrugLabelClient struct {
	baseURL string
	hc      *http.Client
}

// NewDrugLabelClient constructs a client for the given openFDA base URL.
func NewDrugLabelClient(baseURL string, timeout time.Duration) *DrugLabelClient {
	return &DrugLabelClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

// FetchLabel returns the label summary for the given generic drug name.
// Unknown drugs yield ErrNoResults.
func (c *DrugLabelClient) FetchLabel(ctx context.Context, drugName string) (*DrugLabel, error) {
	q := url.Values{}
	q.Set("search", fmt.Sprintf("openfda.generic_name:%q", drugName))
	q.Set("limit", "1")
	endpoint := c.baseURL + "/drug/label.json?" + q.Encode()

	body, err := fetchWithRetry(ctx, c.hc, endpoint)
	if err != nil {
		return nil, err
	}

	var decoded fdaLabelResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decoding openFDA response: %w", err)
	}
	if len(decoded.Results) == 0 {
		return nil, ErrNoResults
	}

	r := decoded.Results[0]
	label := &DrugLabel{
		BrandName:            first(r.OpenFDA.BrandName),
		GenericName:          first(r.OpenFDA.GenericName),
		Manufacturer:         first(r.OpenFDA.ManufacturerName),
		Indications:          first(r.IndicationsAndUsage),
		Warnings:             first(r.Warnings),
		DosageForms:          r.OpenFDA.DosageForm,
		ClinicalPharmacology: first(r.ClinicalPharmacology),
		AdverseReactions:     first(r.AdverseReactions),
	}
	if r.ID != "" {
		label.FDALabelLink = "https://www.accessdata.fda.gov/scripts/cder/daf/index.cfm?event=overview.process&ApplNo=" + r.ID
	}
	return label, nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// fetchWithRetry performs a GET with bounded exponential backoff. Upstream
// 5xx and transport errors are retried; 4xx are terminal.
func fetchWithRetry(ctx context.Context, hc *http.Client, endpoint string) ([]byte, error) {
	var body []byte

	backoff := retry.WithMaxRetries(retryAttempts, retry.NewExponential(retryBaseDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}

		res, err := hc.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer res.Body.Close()

		if res.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableError(fmt.Errorf("upstream status %d", res.StatusCode))
		}
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("upstream status %d", res.StatusCode)
		}

		body, err = io.ReadAll(res.Body)
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
