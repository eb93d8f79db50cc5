package fetch

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"emperror.dev/errors"
	"github.com/hashicorp/go-cleanhttp"
)

// maxBody caps how much of a questionnaire document we are willing to read.
const maxBody = 1 << 20

// ErrBadURL is returned for URLs that are not plain http(s).
var ErrBadURL = errors.New("unsupported quiz URL")

// Client resolves user-supplied URLs to raw questionnaire bytes. One GET, no
// retries: a failed fetch surfaces to the user as a single "could not parse"
// style reply.
type Client struct {
	http *http.Client
}

func NewClient() *Client {
	c := cleanhttp.DefaultPooledClient()
	c.Timeout = 10 * time.Second
	return &Client{http: c}
}

// JSON fetches the document behind rawURL.
func (c *Client) JSON(rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.WrapIf(err, "invalid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, ErrBadURL
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.WrapIf(err, "building request failed")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapIf(err, "fetching quiz failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetching quiz failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, errors.WrapIf(err, "reading quiz body failed")
	}
	return body, nil
}
