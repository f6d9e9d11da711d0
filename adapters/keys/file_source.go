package keys

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/layer-3/questrun/adapters/signer"
	"github.com/layer-3/questrun/core"
	"github.com/layer-3/questrun/ports"
)

// FileSource is a file implementation of the WalletSource interface.
// The key file holds one hex private key per line; blank lines and
// #-prefixed lines are skipped.
type FileSource struct {
	path   string
	logger *slog.Logger
}

// NewFileSource creates a wallet source backed by a key-list file
func NewFileSource(path string, logger *slog.Logger) ports.WalletSource {
	return &FileSource{path: path, logger: logger}
}

// Load reads and parses the key list. Unparseable lines are logged
// (masked) and skipped; an empty resulting list is an error since the
// scheduler has nothing to do without wallets.
func (s *FileSource) Load() ([]ports.Signer, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file: %w", err)
	}
	defer f.Close()

	var signers []ports.Signer
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		sg, err := signer.FromHex(raw)
		if err != nil {
			s.logger.Warn("skipping unparseable key",
				"line", line,
				"key", core.Mask(raw),
				"error", err)
			continue
		}
		signers = append(signers, sg)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	if len(signers) == 0 {
		return nil, core.ErrNoWallets
	}
	return signers, nil
}
