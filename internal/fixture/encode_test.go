package fixture

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NielsdaWheelz/genelection/internal/errors"
)

func TestEncode_Flat(t *testing.T) {
	v := lookup(t, VariantFlat)
	var buf bytes.Buffer

	require.NoError(t, Encode(&buf, Generate(mockNow, v), v))

	want := `{"start": "1700000060000000000", "end": "1700259200000000000", "title": "My Election", "description": "Some short description", "candidates": ["Alice", "Bob"]}` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestEncode_Wrapped(t *testing.T) {
	tests := []struct {
		variant string
		want    string
	}{
		{
			VariantInput,
			`{"input": {"start": 1700086400000000000, "end": 1700259200000000000, "title": "My Election", "description": "Some short description", "candidates": ["Alice", "Bob"]}}`,
		},
		{
			VariantElection,
			`{"election": {"start": 1700086400000000000, "end": 1700259200000000000, "title": "My Election", "description": "Some short description", "candidates": ["Alice", "Bob"]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			v := lookup(t, tt.variant)
			got, err := Marshal(Generate(mockNow, v), v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestEncode_SingleLine(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.Name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, Generate(time.Now(), v), v))

			out := buf.String()
			assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
			assert.True(t, json.Valid([]byte(out)))
		})
	}
}

func TestEncode_NilCandidatesWrittenAsArray(t *testing.T) {
	v := lookup(t, VariantFlat)
	e := Generate(mockNow, v)
	e.Candidates = nil

	got, err := Marshal(e, v)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"candidates": []`)
}

func TestSpaceSeparators(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"object", `{"a":1,"b":2}`, `{"a": 1, "b": 2}`},
		{"array", `["x","y"]`, `["x", "y"]`},
		{"empty containers", `{"a":[],"b":{}}`, `{"a": [], "b": {}}`},
		{"separators inside strings", `{"t":"a, b: c"}`, `{"t": "a, b: c"}`},
		{"escaped quote", `{"t":"say \"hi\", ok"}`, `{"t": "say \"hi\", ok"}`},
		{"escaped backslash before quote", `{"t":"x\\","u":1}`, `{"t": "x\\", "u": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(spaceSeparators([]byte(tt.in)))
			assert.Equal(t, tt.want, got)
			assert.True(t, json.Valid([]byte(got)))
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, stderrors.New("broken pipe")
}

func TestEncode_WriteFailure(t *testing.T) {
	v := lookup(t, VariantFlat)

	err := Encode(failingWriter{}, Generate(mockNow, v), v)
	require.Error(t, err)
	assert.Equal(t, errors.EEncodeFailed, errors.GetCode(err))
}

func TestEncode_UnsupportedEncoding(t *testing.T) {
	v := Variant{Name: "bogus", Encoding: Encoding(9)}

	_, err := Marshal(Generate(mockNow, v), v)
	require.Error(t, err)
	assert.Equal(t, errors.EInternal, errors.GetCode(err))
}

func TestRoundTrip(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.Name, func(t *testing.T) {
			want := Generate(time.Now(), v)

			data, err := Marshal(want, v)
			require.NoError(t, err)

			got, err := Decode(data, v)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecode_StandardDecoderSeesStrings(t *testing.T) {
	v := lookup(t, VariantFlat)
	data, err := Marshal(Generate(mockNow, v), v)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
	assert.Equal(t, "1700000060000000000", generic["start"])
	assert.Equal(t, "1700259200000000000", generic["end"])
	assert.Equal(t, []any{"Alice", "Bob"}, generic["candidates"])
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		data    string
	}{
		{"not json", VariantFlat, `{`},
		{"number where string expected", VariantFlat, `{"start":1,"end":2}`},
		{"missing wrapper", VariantInput, `{"election":{"start":1,"end":2}}`},
		{"wrapper not an object", VariantElection, `{"election":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), lookup(t, tt.variant))
			require.Error(t, err)
			assert.Equal(t, errors.EDecodeFailed, errors.GetCode(err))
		})
	}
}

func TestLookupVariant_Unknown(t *testing.T) {
	_, err := LookupVariant("nested")
	require.Error(t, err)

	fe, ok := errors.AsFixtureError(err)
	require.True(t, ok)
	assert.Equal(t, errors.EUnknownVariant, fe.Code)
	assert.Equal(t, "nested", fe.Details["variant"])
	assert.Equal(t, "flat,input,election", fe.Details["known"])
}

func TestValidate(t *testing.T) {
	good := Generate(mockNow, lookup(t, VariantFlat))

	tests := []struct {
		name    string
		mutate  func(e *Election)
		now     time.Time
		wantErr string
	}{
		{"generated fixture passes", func(*Election) {}, mockNow, ""},
		{"one candidate", func(e *Election) { e.Candidates = []string{"Alice"} }, mockNow, "more than one candidate"},
		{"no candidates", func(e *Election) { e.Candidates = nil }, mockNow, "more than one candidate"},
		{"start in the past", func(*Election) {}, mockNow.Add(2 * time.Minute), "in the future"},
		{"start equals now", func(*Election) {}, mockNow.Add(time.Minute), "in the future"},
		{"start after end", func(e *Election) { e.End = e.Start - 1 }, mockNow, "before end"},
		{"start equals end", func(e *Election) { e.End = e.Start }, mockNow, "before end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := good
			e.Candidates = append([]string(nil), good.Candidates...)
			tt.mutate(&e)

			err := Validate(e, tt.now)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errors.EInvalidFixture, errors.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
