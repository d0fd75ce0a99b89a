package qrtoken

import (
	"net/url"
	"strings"
)

// ExtractValue menerima isi QR mentah: token langsung, atau URL ber-query ?token=.
func ExtractValue(scanned string) string {
	s := strings.TrimSpace(scanned)
	if !strings.Contains(s, "://") {
		return s
	}
	u, err := url.Parse(s)
	if err != nil {
		return s
	}
	if v := u.Query().Get("token"); v != "" {
		return v
	}
	return s
}

// Content: isi yang di-encode ke gambar QR.
func Content(baseURL string, tok Token) string {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		return tok.Value
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "token=" + url.QueryEscape(tok.Value)
}
