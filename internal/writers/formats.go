package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"quickdna/internal/jsonutil"
	"quickdna/internal/output"
	"quickdna/internal/pretty"
	"quickdna/pkg/api"
)

func init() {
	Register(output.FormatText, func(w io.Writer, opt Options) Encoder { return &textEncoder{w: w, opt: opt} })
	Register(output.FormatFASTA, func(w io.Writer, _ Options) Encoder { return fastaEncoder{w} })
	Register(output.FormatJSON, func(w io.Writer, _ Options) Encoder { return &jsonEncoder{w: w} })
	Register(output.FormatJSONL, func(w io.Writer, _ Options) Encoder {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return jsonlEncoder{enc}
	})
	Register(output.FormatYAML, func(w io.Writer, _ Options) Encoder { return yamlEncoder{yaml.NewEncoder(w)} })
	Register(output.FormatMsgpack, func(w io.Writer, _ Options) Encoder { return msgpackEncoder{msgpack.NewEncoder(w)} })
}

/* ---------------- text ---------------- */

type textEncoder struct {
	w      io.Writer
	opt    Options
	headed bool
}

func (e *textEncoder) Encode(v any) error {
	if x, ok := v.(api.TranslationV1); ok && e.opt.Pretty {
		_, err := io.WriteString(e.w, pretty.RenderFrames(x, pretty.Options{Width: e.opt.Width, Color: e.opt.Color}))
		return err
	}
	if e.opt.Header && !e.headed {
		h, err := output.Header(v)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(e.w, h); err != nil {
			return err
		}
		e.headed = true
	}
	rows, err := output.Rows(v)
	if err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(e.w, r); err != nil {
			return err
		}
	}
	return nil
}

func (e *textEncoder) Close() error { return nil }

/* ---------------- fasta ---------------- */

type fastaEncoder struct{ w io.Writer }

func (e fastaEncoder) Encode(v any) error { return output.WriteFASTA(e.w, v) }
func (e fastaEncoder) Close() error       { return nil }

/* ---------------- json (single array) ---------------- */

type jsonEncoder struct {
	w   io.Writer
	buf []any
}

func (e *jsonEncoder) Encode(v any) error {
	e.buf = append(e.buf, v)
	return nil
}

func (e *jsonEncoder) Close() error { return jsonutil.EncodeArray(e.w, e.buf) }

/* ---------------- jsonl / yaml / msgpack (streaming) ---------------- */

type jsonlEncoder struct{ enc *json.Encoder }

func (e jsonlEncoder) Encode(v any) error { return e.enc.Encode(v) }
func (e jsonlEncoder) Close() error       { return nil }

// yaml emits one document per result.
type yamlEncoder struct{ enc *yaml.Encoder }

func (e yamlEncoder) Encode(v any) error { return e.enc.Encode(v) }
func (e yamlEncoder) Close() error       { return e.enc.Close() }

// msgpack emits a concatenated stream of maps, one per result.
type msgpackEncoder struct{ enc *msgpack.Encoder }

func (e msgpackEncoder) Encode(v any) error { return e.enc.Encode(v) }
func (e msgpackEncoder) Close() error       { return nil }
