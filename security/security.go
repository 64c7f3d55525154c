package security

import (
	"net/http"
	"net/url"
	"strings"
)

const redacted = "REDACTED"

var sensitiveHeaders = []string{
	"Authorization",
	"Cookie",
	"Set-Cookie",
	"X-CSRF-Token",
}

var sensitiveParams = map[string]bool{
	"token":        true,
	"access_token": true,
	"password":     true,
}

// SanitizeHeaders returns a copy of headers without credentials
func SanitizeHeaders(headers http.Header) http.Header {
	clean := headers.Clone()
	for _, header := range sensitiveHeaders {
		clean.Del(header)
	}
	return clean
}

// RedactURI masks credential-bearing query parameters in a request URI
func RedactURI(uri string) string {
	path, rawQuery, found := strings.Cut(uri, "?")
	if !found {
		return uri
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return path + "?" + redacted
	}
	changed := false
	for key := range query {
		if sensitiveParams[strings.ToLower(key)] {
			query.Set(key, redacted)
			changed = true
		}
	}
	if !changed {
		return uri
	}
	return path + "?" + query.Encode()
}
