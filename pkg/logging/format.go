package logging

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/my-go-utils/nogging/pkg/diag"
	"github.com/my-go-utils/nogging/pkg/errors"
)

// DefaultPattern is used by handlers with no explicit formatter: the bare
// record message.
const DefaultPattern = "%(message)s"

// record fields a pattern may reference.
var formatFields = map[string]bool{
	"asctime":   true,
	"created":   true,
	"thread":    true,
	"name":      true,
	"levelname": true,
	"levelno":   true,
	"message":   true,
	"funcName":  true,
	"lineno":    true,
	"filename":  true,
	"pathname":  true,
}

type segment struct {
	literal string
	field   string
	verb    string
}

// Formatter renders log records according to a "%(field)verb" pattern,
// e.g. "%(asctime)s | %(name)s | %(levelname)s | %(message)s". Unknown
// field names are rejected at construction.
type Formatter struct {
	pattern string
	segs    []segment
}

var defaultFormatter = mustFormatter(DefaultPattern)

func mustFormatter(pattern string) *Formatter {
	f, err := NewFormatter(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// NewFormatter parses a format pattern.
func NewFormatter(pattern string) (*Formatter, error) {
	f := &Formatter{pattern: pattern}
	rest := pattern
	var lit strings.Builder
	for rest != "" {
		i := strings.IndexByte(rest, '%')
		if i < 0 {
			lit.WriteString(rest)
			break
		}
		lit.WriteString(rest[:i])
		rest = rest[i+1:]
		switch {
		case rest == "":
			lit.WriteByte('%')
		case rest[0] == '%':
			lit.WriteByte('%')
			rest = rest[1:]
		case rest[0] == '(':
			end := strings.IndexByte(rest, ')')
			if end < 0 {
				return nil, errors.Newf(errors.CodeInvalidArgument,
					"format pattern %q: unterminated field reference", pattern)
			}
			field := rest[1:end]
			if !formatFields[field] {
				return nil, errors.Newf(errors.CodeInvalidArgument,
					"format pattern %q: unknown field %q", pattern, field)
			}
			rest = rest[end+1:]
			verb, n, err := scanVerb(rest)
			if err != nil {
				return nil, errors.Wrap(err, errors.CodeInvalidArgument,
					fmt.Sprintf("format pattern %q", pattern))
			}
			rest = rest[n:]
			if lit.Len() > 0 {
				f.segs = append(f.segs, segment{literal: lit.String()})
				lit.Reset()
			}
			f.segs = append(f.segs, segment{field: field, verb: "%" + verb})
		default:
			lit.WriteByte('%')
		}
	}
	if lit.Len() > 0 {
		f.segs = append(f.segs, segment{literal: lit.String()})
	}
	return f, nil
}

// scanVerb consumes the printf verb following a field reference: optional
// flag/width/precision characters and a terminating letter.
func scanVerb(s string) (string, int, error) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return s[:i+1], i + 1, nil
		}
		if !strings.ContainsRune("-+ #.0123456789", rune(c)) {
			break
		}
	}
	return "", 0, fmt.Errorf("missing conversion after field reference")
}

// Pattern returns the source pattern.
func (f *Formatter) Pattern() string {
	return f.pattern
}

var bufferPool = buffer.NewPool()

// patternEncoder adapts a Formatter to the facility's encoder contract.
// Structured fields attached to a record or its logger are appended after
// the rendered pattern as key=value pairs.
type patternEncoder struct {
	*zapcore.MapObjectEncoder
	f *Formatter
}

func newPatternEncoder(f *Formatter) zapcore.Encoder {
	return &patternEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder(), f: f}
}

func (e *patternEncoder) Clone() zapcore.Encoder {
	clone := &patternEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder(), f: e.f}
	for k, v := range e.Fields {
		clone.Fields[k] = v
	}
	return clone
}

func (e *patternEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := bufferPool.Get()
	for _, seg := range e.f.segs {
		if seg.field == "" {
			line.AppendString(seg.literal)
			continue
		}
		fmt.Fprintf(line, seg.verb, fieldValue(seg.field, ent))
	}

	if len(fields) > 0 || len(e.Fields) > 0 {
		extra := zapcore.NewMapObjectEncoder()
		for k, v := range e.Fields {
			extra.Fields[k] = v
		}
		for _, f := range fields {
			f.AddTo(extra)
		}
		keys := make([]string, 0, len(extra.Fields))
		for k := range extra.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(line, " %s=%v", k, extra.Fields[k])
		}
	}

	line.AppendString("\n")
	return line, nil
}

func fieldValue(field string, ent zapcore.Entry) interface{} {
	switch field {
	case "asctime":
		return diag.Timestamp(ent.Time)
	case "created":
		return float64(ent.Time.UnixNano()) / 1e9
	case "thread":
		return diag.GoroutineID()
	case "name":
		return ent.LoggerName
	case "levelname":
		return levelFromZap(ent.Level).String()
	case "levelno":
		return int(levelFromZap(ent.Level))
	case "message":
		return ent.Message
	case "funcName":
		if !ent.Caller.Defined {
			return "?"
		}
		fn := ent.Caller.Function
		if i := strings.LastIndexByte(fn, '.'); i >= 0 {
			fn = fn[i+1:]
		}
		return fn
	case "lineno":
		return ent.Caller.Line
	case "filename":
		file := ent.Caller.File
		if i := strings.LastIndexByte(file, '/'); i >= 0 {
			file = file[i+1:]
		}
		return file
	case "pathname":
		return ent.Caller.File
	default:
		return ""
	}
}
