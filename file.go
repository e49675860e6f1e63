package mp4meta

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/mp4meta/internal/atom"
	"github.com/simonhull/mp4meta/internal/binary"
)

// ReadFile opens an MPEG-4 file and reads its metadata.
//
// Only the ftyp and moov atoms are read; sample data is skipped without
// being loaded into memory.
//
// If an item's value cannot be decoded, ReadFile returns the tag with a
// warning instead of an error. Check Tag.Warnings for details.
//
// Example:
//
//	tag, err := mp4meta.ReadFile("song.m4a")
//	if err != nil {
//		return err
//	}
//	if title, ok := tag.Title(); ok {
//		fmt.Println(title)
//	}
func ReadFile(path string, opts ...Option) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return read(f, stat.Size(), path, opts)
}

// ReadFrom reads metadata from r.
//
// r is consumed up to the end of the moov atom. When r is an io.Seeker the
// remaining size is known, which allows oversized atoms to be rejected
// before they are read.
func ReadFrom(r io.Reader, opts ...Option) (*Tag, error) {
	return read(r, -1, "", opts)
}

func read(r io.Reader, size int64, path string, opts []Option) (*Tag, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	popts := []atom.ParserOption{atom.WithLogger(options.logger)}
	if options.maxDataSize > 0 {
		popts = append(popts, atom.WithMaxDataSize(options.maxDataSize))
	}

	tree, err := atom.ReadTagItems(binary.NewStream(r, size, path), options.itemList(), popts...)
	if err != nil {
		return nil, err
	}

	tag := newTag(tree, path, options.logger)

	if options.strictParsing && len(tag.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", tag.Warnings[0])
	}
	if options.ignoreWarnings {
		tag.Warnings = nil
	}

	return tag, nil
}

// ReadContext reads a file with context support for cancellation.
//
// The context is checked before the file is opened.
func ReadContext(ctx context.Context, path string, opts ...Option) (*Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadFile(path, opts...)
}

// ReadMany reads multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. The first
// error cancels the remaining reads.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	tags, err := mp4meta.ReadMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, tag := range tags {
//		title, _ := tag.Title()
//		fmt.Printf("%s: %s\n", tag.Path, title)
//	}
func ReadMany(ctx context.Context, paths ...string) ([]*Tag, error) {
	return ReadManyWith(ctx, paths)
}

// ReadManyWith is ReadMany with read options applied to every file.
func ReadManyWith(ctx context.Context, paths []string, opts ...Option) ([]*Tag, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Tag, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			tag, err := ReadContext(ctx, path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = tag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
