package corpus

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jsphweid/makamdex/constants"
	"golang.org/x/sync/errgroup"
)

type Opener func(path string) (io.ReadCloser, error)

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Extractor reads transcriptions. The zero configuration reads files one at a
// time in the order given.
type Extractor struct {
	open     Opener
	workers  int
	logger   *slog.Logger
	progress func(path string)
}

type Option func(*Extractor)

// WithWorkers processes up to n files at once. Results keep input order.
func WithWorkers(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.workers = n
		}
	}
}

func WithOpener(open Opener) Option {
	return func(e *Extractor) {
		e.open = open
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// WithProgress is called once per finished file, possibly from several
// goroutines.
func WithProgress(fn func(path string)) Option {
	return func(e *Extractor) {
		e.progress = fn
	}
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		open:    openFile,
		workers: 1,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExtractor = NewExtractor()

// MatchesMakam reports whether path follows the naming convention of makam.
// An empty makam matches everything.
func MatchesMakam(path, makam string) bool {
	return makam == "" || strings.Contains(path, makam+constants.MakamSeparator)
}

func FilterByMakam(paths []string, makam string) []string {
	res := make([]string, 0, len(paths))
	for _, p := range paths {
		if MatchesMakam(p, makam) {
			res = append(res, p)
		}
	}
	return res
}

// forEach runs fn for every path, fn writing its result into slot i. With
// several workers every file is read and the error of the earliest failing
// path in input order wins.
func (e *Extractor) forEach(ctx context.Context, paths []string, fn func(i int, path string) error) error {
	if e.workers <= 1 {
		for i, path := range paths {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i, path); err != nil {
				return err
			}
			e.done(path)
		}
		return nil
	}

	errs := make([]error, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := fn(i, path); err != nil {
				errs[i] = err
				return nil
			}
			e.done(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *Extractor) done(path string) {
	if e.progress != nil {
		e.progress(path)
	}
}
