package candidates

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-getter"
	"github.com/hashicorp/go-safetemp"
)

// fetch downloads a word list addressed by a go-getter source string (URL,
// git::, or a local path relative to pwd) into cacheDir and returns the cached
// file. A source is only downloaded once per cache directory.
func fetch(ctx context.Context, src, pwd, cacheDir string) (string, error) {
	s := strings.TrimSpace(src)
	if s == "" {
		return "", fmt.Errorf("empty source")
	}
	if cacheDir == "" {
		return "", fmt.Errorf("cacheDir required for remote sources")
	}
	if err := os.MkdirAll(cacheDir, 0o700); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}
	ext := sourceExt(s)
	dest := filepath.Join(cacheDir, fingerprint(s)+ext)
	if fi, err := os.Stat(dest); err == nil && !fi.IsDir() {
		return dest, nil
	}
	// Stage inside cacheDir so the final rename stays on one filesystem
	tmpDir, cleanup, err := safetemp.Dir(cacheDir, "fetch-")
	if err != nil {
		return "", fmt.Errorf("temp dir: %w", err)
	}
	defer func() { _ = cleanup.Close() }()

	tmpFile := filepath.Join(tmpDir, "words"+ext)
	client := &getter.Client{
		Ctx:  ctx,
		Src:  s,
		Dst:  tmpFile,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
		Getters: map[string]getter.Getter{
			"http":  &getter.HttpGetter{Netrc: true, Client: defaultHTTPClient()},
			"https": &getter.HttpGetter{Netrc: true, Client: defaultHTTPClient()},
			"git":   &getter.GitGetter{},
			"file":  &getter.FileGetter{Copy: true},
		},
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("fetch %s: %w", s, err)
	}
	if err := os.Rename(tmpFile, dest); err != nil {
		return "", fmt.Errorf("cache move: %w", err)
	}
	return dest, nil
}

func defaultHTTPClient() *http.Client {
	return cleanhttp.DefaultClient()
}

func fingerprint(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:])
}

// sourceExt keeps the extension of the addressed file so the cached copy is
// parsed the same way (".json" vs plain text).
func sourceExt(s string) string {
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	ext := path.Ext(s)
	if strings.ContainsAny(ext, "/:") {
		return ""
	}
	return ext
}
