package http

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"time"
)

// Descriptor is the caller-specified shape of one outgoing call.
//
// Treat it as immutable once built: the With* helpers return copies and the core never
// modifies the descriptor it is given.
type Descriptor struct {
	// Method defaults to GET when empty.
	Method string
	// URLPath is a path joined with the configured base URL, or an absolute http(s) URL
	// used verbatim.
	URLPath string
	Query   url.Values
	Body    []byte
	// ContentType is sent only when Body is set.
	ContentType string
	Accept      string
	// Header overrides; an Authorization entry here suppresses session injection.
	Header map[string]string
	// Timeout overrides the client default for each attempt.
	Timeout time.Duration
}

// NewGETDescriptor creates a descriptor for a GET expecting JSON.
func NewGETDescriptor(urlPath string, query url.Values) Descriptor {
	return Descriptor{
		Method:  http.MethodGet,
		URLPath: urlPath,
		Query:   query,
		Accept:  ApplicationJSON,
	}
}

// NewPOSTJSONDescriptor creates a descriptor that POSTs body as JSON. It only fails when
// body cannot be serialized.
func NewPOSTJSONDescriptor(urlPath string, body any) (Descriptor, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: failed to marshal body: %v", ErrInvalidDescriptor, err)
	}
	return Descriptor{
		Method:      http.MethodPost,
		URLPath:     urlPath,
		Body:        raw,
		ContentType: ApplicationJSON,
		Accept:      ApplicationJSON,
	}, nil
}

// WithTimeout returns a copy of d with a per-attempt timeout override.
func (d Descriptor) WithTimeout(timeout time.Duration) Descriptor {
	out := d.clone()
	out.Timeout = timeout
	return out
}

// WithHeader returns a copy of d with one more header override.
func (d Descriptor) WithHeader(key, value string) Descriptor {
	out := d.clone()
	if out.Header == nil {
		out.Header = make(map[string]string, 1)
	}
	out.Header[key] = value
	return out
}

// WithQuery returns a copy of d with key set to value in the query.
func (d Descriptor) WithQuery(key, value string) Descriptor {
	out := d.clone()
	if out.Query == nil {
		out.Query = url.Values{}
	}
	out.Query.Set(key, value)
	return out
}

func (d Descriptor) clone() Descriptor {
	out := d
	out.Header = maps.Clone(d.Header)
	if d.Query != nil {
		out.Query = make(url.Values, len(d.Query))
		for k, v := range d.Query {
			out.Query[k] = append([]string(nil), v...)
		}
	}
	if d.Body != nil {
		out.Body = append([]byte(nil), d.Body...)
	}
	return out
}

func (d Descriptor) method() string {
	if d.Method == "" {
		return http.MethodGet
	}
	return d.Method
}
