package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/go-secs2/logger"
	"github.com/arloliu/go-secs2/secs2"
)

// stdinName is the input name that reads from standard input.
const stdinName = "-"

// Dumper decodes SECS-II inputs and renders the resulting items.
type Dumper struct {
	cfg    Config
	log    logger.Logger
	stdin  io.Reader
	counts *xsync.MapOf[secs2.FormatCode, *xsync.Counter]
}

// NewDumper creates a Dumper with the given settings and logger.
func NewDumper(cfg Config, l logger.Logger) *Dumper {
	return &Dumper{
		cfg:    cfg,
		log:    l,
		stdin:  os.Stdin,
		counts: xsync.NewMapOf[secs2.FormatCode, *xsync.Counter](),
	}
}

// Run decodes the inputs concurrently and writes their rendering to w in input order.
//
// Inputs are processed by at most Config.Workers goroutines. The first input
// that fails to read or decode cancels the remaining ones and is returned.
func (d *Dumper) Run(ctx context.Context, w io.Writer, inputs []string) error {
	results := make([]string, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Workers)

	for i, name := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out, err := d.dumpInput(name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range results {
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}

	return nil
}

// Counts returns the number of decoded items per format code, nested items included.
func (d *Dumper) Counts() map[secs2.FormatCode]int64 {
	result := make(map[secs2.FormatCode]int64)
	d.counts.Range(func(fc secs2.FormatCode, c *xsync.Counter) bool {
		result[fc] = c.Value()
		return true
	})

	return result
}

// LogSummary logs the per-format item counts collected so far.
func (d *Dumper) LogSummary() {
	counts := d.Counts()
	codes := make([]secs2.FormatCode, 0, len(counts))
	for fc := range counts {
		codes = append(codes, fc)
	}
	slices.Sort(codes)

	kv := make([]any, 0, len(codes)*2)
	for _, fc := range codes {
		kv = append(kv, fc.String(), counts[fc])
	}
	d.log.Info("item summary", kv...)
}

func (d *Dumper) dumpInput(name string) (string, error) {
	l := d.log.With("input", name)

	data, err := d.readInput(name)
	if err != nil {
		return "", err
	}

	items, err := secs2.DecodeAll(data)
	if err != nil {
		var decErr *secs2.DecodeError
		if errors.As(err, &decErr) {
			l.Error("malformed item", "offset", decErr.Offset, "length", decErr.Length,
				"format", decErr.FormatCode.String(), "error", decErr.Err)
		}

		return "", err
	}
	l.Debug("decoded input", "bytes", len(data), "items", len(items))

	var sb strings.Builder
	for _, item := range items {
		d.count(item)

		out, err := render(d.cfg.Format, item)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
		if !strings.HasSuffix(out, "\n") {
			sb.WriteByte('\n')
		}
	}

	return sb.String(), nil
}

func (d *Dumper) readInput(name string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if name == stdinName {
		data, err = io.ReadAll(d.stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}

	if d.cfg.Hex {
		return parseHex(data)
	}

	return data, nil
}

func (d *Dumper) count(item secs2.Item) {
	c, _ := d.counts.LoadOrCompute(item.FormatCode(), xsync.NewCounter)
	c.Inc()

	if list, ok := item.(*secs2.ListItem); ok {
		values, _ := list.ToList()
		for _, v := range values {
			d.count(v)
		}
	}
}

// parseHex decodes hex text such as "01 02 a5 01 07" or "0x01,0x02".
//
// Whitespace, commas and "0x" prefixes are ignored.
func parseHex(text []byte) ([]byte, error) {
	cleaned := make([]byte, 0, len(text))
	for _, field := range bytes.FieldsFunc(text, isHexSeparator) {
		field = bytes.TrimPrefix(bytes.TrimPrefix(field, []byte("0x")), []byte("0X"))
		if len(field)%2 != 0 {
			field = append([]byte{'0'}, field...)
		}
		cleaned = append(cleaned, field...)
	}

	result := make([]byte, hex.DecodedLen(len(cleaned)))
	if _, err := hex.Decode(result, cleaned); err != nil {
		return nil, fmt.Errorf("parse hex input: %w", err)
	}

	return result, nil
}

func isHexSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
