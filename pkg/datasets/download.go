package datasets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/rs/zerolog/log"
)

func isValidUrl(toTest string) bool {
	_, err := url.ParseRequestURI(toTest)
	if err != nil {
		return false
	}

	u, err := url.Parse(toTest)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}

// ResolveSource returns a local path for source, downloading it to a temporary file
// when it is a URL. cleanup removes anything that was downloaded.
func ResolveSource(ctx context.Context, source string) (string, func(), error) {
	if !isValidUrl(source) {
		return source, func() {}, nil
	}

	tempFile, err := tempDownloadFile(ctx, source)
	if err != nil {
		return "", func() {}, err
	}

	return tempFile, func() { os.Remove(tempFile) }, nil
}

func tempDownloadFile(ctx context.Context, source string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "curl/7.54.1")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: unexpected status %s", source, resp.Status)
	}

	tmpFile, err := os.CreateTemp(os.TempDir(), "agency-tools-data-")
	if err != nil {
		return "", err
	}
	defer tmpFile.Close()

	written, err := io.Copy(tmpFile, resp.Body)
	if err != nil {
		os.Remove(tmpFile.Name())
		return "", err
	}

	log.Info().Str("source", source).Int64("bytes", written).Msg("Downloaded dataset")

	return tmpFile.Name(), nil
}
