package source

import (
	"context"
	"io"
	"net/http"

	"github.com/samber/oops"
)

func (l *Loader) loadURL(ctx context.Context, url string) (Document, error) {
	response, err := l.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain, text/markdown, */*").
		Get(url)
	if err != nil {
		return Document{}, oops.
			Code("DOWNLOAD_FAILED").
			With("url", url).
			Wrapf(err, "downloading answer")
	}

	if response.StatusCode() < http.StatusOK || response.StatusCode() >= http.StatusMultipleChoices {
		return Document{}, oops.
			Code("DOWNLOAD_FAILED").
			With("url", url).
			With("status", response.StatusCode()).
			Errorf("answer url returned non-success status %d", response.StatusCode())
	}

	content, err := io.ReadAll(response.Body)
	if err != nil {
		return Document{}, oops.
			Code("DOWNLOAD_FAILED").
			With("url", url).
			Wrapf(err, "reading response body")
	}

	return newDocument(url, content)
}
