package descriptor

import (
	"sort"
	"strconv"
	"strings"
)

// ResolveHeaders turns raw header values into concrete strings. A null
// content-length (any casing) becomes the byte length of body; any other null
// is an UnresolvedHeaderError.
func ResolveHeaders(headers map[string]HeaderValue, body string) (map[string]string, error) {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	resolved := make(map[string]string, len(headers))
	for _, name := range names {
		value := headers[name]
		if v, ok := value.Value(); ok {
			resolved[name] = v
			continue
		}
		if !strings.EqualFold(name, ContentLengthHeader) {
			return nil, &UnresolvedHeaderError{Header: name}
		}
		resolved[name] = strconv.Itoa(len(body))
	}
	return resolved, nil
}

// Resolve produces the request that will be sent.
func Resolve(req *Request) (*Resolved, error) {
	body := req.BodyString()
	headers, err := ResolveHeaders(req.Headers, body)
	if err != nil {
		return nil, err
	}
	return &Resolved{
		URL:     req.URL,
		Method:  req.Method,
		Headers: headers,
		Body:    body,
	}, nil
}
