package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/NielsdaWheelz/genelection/internal/errors"
)

// Field order of both payloads is the wire order: start, end, title,
// description, candidates.

type stringPayload struct {
	Start       int64    `json:"start,string"`
	End         int64    `json:"end,string"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Candidates  []string `json:"candidates"`
}

type numberPayload struct {
	Start       int64    `json:"start"`
	End         int64    `json:"end"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Candidates  []string `json:"candidates"`
}

func payload(e Election, enc Encoding) (any, error) {
	candidates := e.Candidates
	if candidates == nil {
		candidates = []string{}
	}
	switch enc {
	case EncodingString:
		return stringPayload{e.Start, e.End, e.Title, e.Description, candidates}, nil
	case EncodingNumber:
		return numberPayload{e.Start, e.End, e.Title, e.Description, candidates}, nil
	default:
		return nil, errors.New(errors.EInternal, fmt.Sprintf("unsupported timestamp encoding %s", enc))
	}
}

// Marshal returns the JSON document for e in variant v, without a trailing newline.
func Marshal(e Election, v Variant) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, e, v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Encode writes e to w as a single line of JSON followed by a newline.
// Separators are ", " and ": ", as Python's json.dumps writes them.
func Encode(w io.Writer, e Election, v Variant) error {
	p, err := payload(e, v.Encoding)
	if err != nil {
		return err
	}

	var doc any = p
	if v.Wrapper != "" {
		doc = map[string]any{v.Wrapper: p}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return encodeErr(v, err)
	}
	if _, err := w.Write(spaceSeparators(buf.Bytes())); err != nil {
		return encodeErr(v, err)
	}
	return nil
}

// spaceSeparators adds a space after every ',' and ':' that separates
// members or elements of compact JSON. Bytes inside strings are untouched.
func spaceSeparators(compact []byte) []byte {
	out := make([]byte, 0, len(compact)+len(compact)/8)
	inString, escaped := false, false
	for _, c := range compact {
		out = append(out, c)
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case ',', ':':
			out = append(out, ' ')
		}
	}
	return out
}

func encodeErr(v Variant, err error) error {
	return errors.WrapWithDetails(
		errors.EEncodeFailed,
		"failed to write election fixture",
		err,
		map[string]string{"op": "encode", "variant": v.Name},
	)
}

// Decode parses a document produced by Encode with the same variant.
func Decode(data []byte, v Variant) (Election, error) {
	body := data
	if v.Wrapper != "" {
		var outer map[string]json.RawMessage
		if err := json.Unmarshal(data, &outer); err != nil {
			return Election{}, decodeErr(v, err)
		}
		inner, ok := outer[v.Wrapper]
		if !ok {
			return Election{}, errors.NewWithDetails(
				errors.EDecodeFailed,
				fmt.Sprintf("missing %q wrapper key", v.Wrapper),
				map[string]string{"op": "decode", "variant": v.Name, "wrapper": v.Wrapper},
			)
		}
		body = inner
	}

	switch v.Encoding {
	case EncodingString:
		var p stringPayload
		if err := json.Unmarshal(body, &p); err != nil {
			return Election{}, decodeErr(v, err)
		}
		return Election(p), nil
	case EncodingNumber:
		var p numberPayload
		if err := json.Unmarshal(body, &p); err != nil {
			return Election{}, decodeErr(v, err)
		}
		return Election(p), nil
	default:
		return Election{}, errors.New(errors.EInternal, fmt.Sprintf("unsupported timestamp encoding %s", v.Encoding))
	}
}

func decodeErr(v Variant, err error) error {
	return errors.WrapWithDetails(
		errors.EDecodeFailed,
		"failed to parse election fixture",
		err,
		map[string]string{"op": "decode", "variant": v.Name},
	)
}
