package client

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/mitchellh/mapstructure"
)

// Response is the uniform result of every API call. The upstream API
// is inconsistent about where it places error detail (sometimes a flat
// field, sometimes buried in a metadata/status array), so every raw
// HTTP response is normalized into this one shape.
type Response struct {
	Success    bool
	Data       any
	Message    string
	StatusCode int
	Errors     []string
}

// Decode maps the Data payload into a typed value.
func (r *Response) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(r.Data)
}

// The known body shapes, tried in order: the list wrapper
// (metadata.status + result), a flat top-level status, a generic
// message/error object, then an opaque body.

type statusEntry struct {
	Message string `mapstructure:"message"`
	Error   string `mapstructure:"error"`
}

type listWrapperShape struct {
	Metadata struct {
		Status []statusEntry `mapstructure:"status"`
	} `mapstructure:"metadata"`
	Result any `mapstructure:"result"`
}

type messageShape struct {
	Message string `mapstructure:"message"`
	Error   string `mapstructure:"error"`
}

func normalize(statusCode int, reason string, header http.Header, body []byte) *Response {
	resp := &Response{
		Success:    statusCode >= 200 && statusCode < 300,
		StatusCode: statusCode,
	}

	resp.Data = decodeBody(header, body)

	if obj, ok := resp.Data.(map[string]any); ok {
		switch {
		case isListWrapper(obj):
			var shape listWrapperShape
			if err := mapstructure.Decode(obj, &shape); err == nil {
				for _, st := range shape.Metadata.Status {
					if st.Error != "" {
						resp.Errors = append(resp.Errors, st.Error)
						if resp.Message == "" && st.Message != "" {
							resp.Message = st.Message
						}
					}
				}
				resp.Data = shape.Result
			}
		case hasKey(obj, "status"):
			resp.Data = obj["status"]
		case hasKey(obj, "message") || hasKey(obj, "error"):
			var shape messageShape
			if err := mapstructure.Decode(obj, &shape); err == nil {
				resp.Message = shape.Message
				if shape.Error != "" {
					resp.Errors = append(resp.Errors, shape.Error)
					if resp.Message == "" {
						resp.Message = shape.Error
					}
				}
			}
		}
	}

	if !resp.Success && resp.Message == "" && len(resp.Errors) == 0 {
		resp.Message = fmt.Sprintf("HTTP %d: %s", statusCode, reason)
	}

	return resp
}

// decodeBody decodes a JSON body into structured data, falling back to
// raw text when the content type is not JSON or decoding fails.
func decodeBody(header http.Header, body []byte) any {
	if len(body) == 0 {
		return nil
	}
	if !isJSON(header.Get("Content-Type")) {
		return string(body)
	}
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return string(body)
	}
	return data
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || mediaType == "application/problem+json"
}

func isListWrapper(obj map[string]any) bool {
	if !hasKey(obj, "result") {
		return false
	}
	meta, ok := obj["metadata"].(map[string]any)
	if !ok {
		return false
	}
	_, ok = meta["status"].([]any)
	return ok
}

func hasKey(obj map[string]any, key string) bool {
	_, ok := obj[key]
	return ok
}
