package quest

import (
	"bytes"
	"encoding/json"
)

// NonceFallback is the sentinel used when the nonce cannot be extracted
// from the server response. The server will almost certainly reject a
// signature over it; extraction degrades rather than aborts.
const NonceFallback = "unknown-nonce"

// ExtractNonce pulls the nonce out of a nonce-endpoint response body.
// Three shapes are tolerated: a bare string (JSON-quoted or raw text),
// {"nonce": "..."} and {"data": {"nonce": "..."}}. The second return
// value reports whether a real nonce was found; when false, the sentinel
// is returned.
func ExtractNonce(body []byte) (string, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return NonceFallback, false
	}

	var bare string
	if err := json.Unmarshal(trimmed, &bare); err == nil && bare != "" {
		return bare, true
	}

	var envelope struct {
		Nonce string `json:"nonce"`
		Data  struct {
			Nonce string `json:"nonce"`
		} `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err == nil {
		if envelope.Nonce != "" {
			return envelope.Nonce, true
		}
		if envelope.Data.Nonce != "" {
			return envelope.Data.Nonce, true
		}
		return NonceFallback, false
	}

	// Not JSON at all: treat a plain-text body as the nonce itself.
	if trimmed[0] != '{' && trimmed[0] != '[' && trimmed[0] != '"' {
		return string(trimmed), true
	}
	return NonceFallback, false
}
