package catalogsync

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/winterarc/winterarc/internal/catalog"
)

var (
	ErrAlreadyLatest = errors.New("catalog is already the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

const (
	assetName     = "catalog.yaml"
	checksumsName = "checksums.txt"
)

type PullInput struct {
	// CurrentVersion is the installed catalog version.
	CurrentVersion string
	// TargetVersion pins a release tag. Empty means the latest release.
	TargetVersion string
	// Dest is the path the catalog is installed to.
	Dest string
}

type PullProgress struct {
	Stage   string
	Message string
}

// Pull downloads a catalog release, verifies it against the release
// checksums, validates it and installs it at input.Dest.
func (c *Checker) Pull(ctx context.Context, input *PullInput, progress func(PullProgress)) (*catalog.Catalog, error) {
	tag := input.TargetVersion
	if tag == "" {
		progress(PullProgress{Stage: "check", Message: "Checking for latest catalog..."})
		result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return nil, fmt.Errorf("check for updates: %w", err)
		}
		if !result.UpdateAvailable {
			return nil, ErrAlreadyLatest
		}
		tag = result.LatestVersion
	}

	base := strings.TrimRight(c.downloadBaseURL, "/")
	assetURL := fmt.Sprintf("%s/%s/%s/releases/download/%s/%s", base, c.owner, c.repo, tag, assetName)
	checksumsURL := fmt.Sprintf("%s/%s/%s/releases/download/%s/%s", base, c.owner, c.repo, tag, checksumsName)

	progress(PullProgress{Stage: "download", Message: fmt.Sprintf("Downloading catalog %s...", tag)})
	data, err := c.downloadFile(ctx, assetURL)
	if err != nil {
		return nil, fmt.Errorf("download catalog: %w", err)
	}

	progress(PullProgress{Stage: "verify", Message: "Verifying checksum..."})
	checksumsData, err := c.downloadFile(ctx, checksumsURL)
	if err != nil {
		return nil, fmt.Errorf("download checksums: %w", err)
	}
	expectedHash, ok := parseChecksums(checksumsData)[assetName]
	if !ok {
		return nil, fmt.Errorf("no checksum found for %s in %s", assetName, checksumsName)
	}
	if err := verifyChecksum(data, expectedHash); err != nil {
		return nil, err
	}

	progress(PullProgress{Stage: "validate", Message: "Validating catalog..."})
	cat, err := catalog.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	if cat.Version() != tag {
		return nil, fmt.Errorf("validate catalog: release %s contains catalog version %s", tag, cat.Version())
	}

	progress(PullProgress{Stage: "install", Message: fmt.Sprintf("Installing to %s...", input.Dest)})
	h := sha256.Sum256(data)
	if err := install(data, input.Dest, h[:]); err != nil {
		return nil, fmt.Errorf("install catalog: %w", err)
	}

	progress(PullProgress{Stage: "done", Message: fmt.Sprintf("Catalog updated to %s", tag)})
	return cat, nil
}

func (c *Checker) downloadFile(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// parseChecksums reads sha256sum output ("<hex>  <name>" per line).
func parseChecksums(data []byte) map[string]string {
	result := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		parts := strings.Fields(line)
		if len(parts) != 2 {
			continue
		}
		result[parts[1]] = parts[0]
	}
	return result
}

func verifyChecksum(data []byte, expectedHex string) error {
	h := sha256.Sum256(data)
	actual := hex.EncodeToString(h[:])
	if !strings.EqualFold(actual, expectedHex) {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, expectedHex, actual)
	}
	return nil
}

// install writes data next to target and renames it into place, so readers
// never see a partial catalog.
func install(data []byte, target string, expectedHash []byte) error {
	parentDir := filepath.Dir(target)
	if err := os.MkdirAll(parentDir, 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}

	f, err := os.CreateTemp(parentDir, ".catalog-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpFile := f.Name()
	defer func() { _ = os.Remove(tmpFile) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	written, err := os.ReadFile(tmpFile)
	if err != nil {
		return fmt.Errorf("re-read temp file: %w", err)
	}
	writtenHash := sha256.Sum256(written)
	if !bytes.Equal(writtenHash[:], expectedHash) {
		return fmt.Errorf("%w: temp file changed after write", ErrChecksum)
	}

	if err := os.Chmod(tmpFile, 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpFile, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
