package client

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// acceptEncoding lists the content encodings the transport can decode.
const acceptEncoding = "gzip, br, zstd"

// decoderFunc wraps a compressed body with the matching decompressor.
type decoderFunc func(io.ReadCloser) (io.ReadCloser, error)

// decoders maps a Content-Encoding token to its decoder.
var decoders = map[string]decoderFunc{
	"gzip": func(body io.ReadCloser) (io.ReadCloser, error) {
		gr, err := gzip.NewReader(body)
		if err != nil {
			return nil, err
		}
		return gr, nil
	},
	"br": func(body io.ReadCloser) (io.ReadCloser, error) {
		return io.NopCloser(brotli.NewReader(body)), nil
	},
	"zstd": func(body io.ReadCloser) (io.ReadCloser, error) {
		zr, err := zstd.NewReader(body)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	},
}

// decodingTransport advertises compressed encodings on the way out and
// transparently decompresses response bodies on the way back.
type decodingTransport struct {
	next http.RoundTripper
}

func newDecodingTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &decodingTransport{next: next}
}

// RoundTrip executes a single HTTP transaction. The request is shallow-cloned
// before the Accept-Encoding header is added so callers never see it mutated.
func (t *decodingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if req.Header.Get("Accept-Encoding") == "" {
		req.Header.Set("Accept-Encoding", acceptEncoding)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// Nothing to decode for bodyless responses (HEAD, 204, 304).
	if resp.Body == nil || resp.Body == http.NoBody {
		return resp, nil
	}

	decode, ok := decoders[outerEncoding(resp.Header.Get("Content-Encoding"))]
	if !ok {
		// Identity or an encoding we did not ask for: pass through untouched.
		return resp, nil
	}

	decoded, err := decode(resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, err
	}
	resp.Body = &cascadeCloser{Reader: decoded, underlying: resp.Body}

	// The body no longer matches the encoding headers.
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1

	return resp, nil
}

// outerEncoding returns the last (outermost) token of a Content-Encoding
// header, lowercased, or "" when the header is empty.
func outerEncoding(header string) string {
	if header = strings.TrimSpace(header); header == "" {
		return ""
	}
	tokens := strings.Split(header, ",")
	return strings.ToLower(strings.TrimSpace(tokens[len(tokens)-1]))
}

// cascadeCloser closes both the decompressor and the network body.
type cascadeCloser struct {
	io.Reader
	underlying io.ReadCloser
}

func (c *cascadeCloser) Close() error {
	var readerErr error
	if rc, ok := c.Reader.(io.Closer); ok {
		readerErr = rc.Close()
	}
	if err := c.underlying.Close(); readerErr == nil {
		return err
	}
	return readerErr
}
