package http

import (
	"fmt"
	"net/url"
	"strings"
)

// isAbsoluteURL reports whether target already names a scheme and host.
func isAbsoluteURL(target string) bool {
	lower := strings.ToLower(target)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// joinURLPath appends resourcePath to base with exactly one slash between them.
func joinURLPath(base, resourcePath string) string {
	if resourcePath == "" {
		return base
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(resourcePath, "/")
}

// resolveURL turns a descriptor target into the final URL, query included.
func (c *clientImpl) resolveURL(desc Descriptor) (string, error) {
	target := desc.URLPath
	if !isAbsoluteURL(target) {
		if c.config.BaseURL == "" {
			return "", fmt.Errorf("%w: relative path %q without base URL", ErrInvalidDescriptor, target)
		}
		target = joinURLPath(c.config.BaseURL, target)
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}
	if len(desc.Query) > 0 {
		q := u.Query()
		for k, vs := range desc.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// isFirstParty reports whether target is served by the configured ERP origin. Only those
// calls carry the session token, and only their 401s end the session.
func (c *clientImpl) isFirstParty(target string) bool {
	if c.config.BaseURL == "" {
		return true
	}
	base, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return true
	}
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, base.Host)
}
