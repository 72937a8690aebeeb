package billy

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/memio/errors"
	"github.com/jmgilman/go/memio/stringio"
)

// FS opens files of a billy.Filesystem as in-memory streams.
type FS struct {
	bfs    billy.Filesystem
	perm   fs.FileMode
	logger *slog.Logger
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	perm   fs.FileMode
	logger *slog.Logger
}

// WithPerm sets the permission bits used when a file is stored. Defaults to
// 0644.
func WithPerm(perm fs.FileMode) Option {
	return func(c *config) {
		c.perm = perm
	}
}

// WithLogger sets the logger passed to every opened stream and used for
// load and store events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New wraps an existing billy.Filesystem.
func New(bfs billy.Filesystem, opts ...Option) *FS {
	cfg := &config{perm: 0644}
	for _, opt := range opts {
		opt(cfg)
	}
	return &FS{
		bfs:    bfs,
		perm:   cfg.perm,
		logger: cfg.logger,
	}
}

// NewLocal creates a filesystem backed by billy's osfs, rooted at root.
func NewLocal(root string, opts ...Option) *FS {
	return New(osfs.New(root), opts...)
}

// NewMemory creates a filesystem backed by billy's memfs.
// The filesystem is initially empty.
func NewMemory(opts ...Option) *FS {
	return New(memfs.New(), opts...)
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// normalize converts paths to use forward slashes consistently.
// This is a simplified path normalization since billy handles security.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

func (f *FS) log() *slog.Logger {
	if f.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return f.logger
}

// Open opens the named file for reading.
func (f *FS) Open(name string) (*File, error) {
	return f.OpenFile(name, "r")
}

// Create creates or truncates the named file and opens it for reading and
// writing.
func (f *FS) Create(name string) (*File, error) {
	return f.OpenFile(name, "w+")
}

// OpenFile opens the named file with an access mode as accepted by
// stringio.ParseMode. Modes without the create flag ("r", "r+") require the
// file to exist. The "w" and "a" modes create it immediately.
func (f *FS) OpenFile(name, mode string) (*File, error) {
	name = normalize(name)
	flags, err := stringio.ParseMode(mode)
	if err != nil {
		return nil, errors.WithOp(err, "open")
	}

	var content []byte
	if !flags.Has(stringio.Trunc) {
		content, err = f.load(name, flags.Has(stringio.Create))
		if err != nil {
			return nil, err
		}
	}

	s, err := stringio.NewBytes(content,
		stringio.WithMode(mode),
		stringio.WithName(name),
		stringio.WithLogger(f.logger),
	)
	if err != nil {
		return nil, errors.WithContext(errors.WithOp(err, "open"), "name", name)
	}

	file := &File{StringIO: s, fs: f, persist: flags.Has(stringio.Writable)}
	if flags.Has(stringio.Create) {
		if err := file.flush("open"); err != nil {
			_ = s.Release()
			return nil, err
		}
	}
	return file, nil
}

// Exists reports whether the named file or directory exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrap(err, errors.CodeInternal, "failed to stat file")
}

// load reads the whole file. A missing file is empty content when create is
// set and a CodeNotFound error otherwise.
func (f *FS) load(name string, create bool) ([]byte, error) {
	data, err := util.ReadFile(f.bfs, name)
	switch {
	case err == nil:
		f.log().Debug("file loaded", "name", name, "size", len(data))
		return data, nil
	case errors.Is(err, fs.ErrNotExist) && create:
		return nil, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, errors.WithContext(errors.WithOp(errors.Wrap(err, errors.CodeNotFound, "file does not exist"), "open"), "name", name)
	default:
		return nil, errors.WithContext(errors.WithOp(errors.Wrap(err, errors.CodeInternal, "failed to load file"), "open"), "name", name)
	}
}

// store replaces the whole file with data.
func (f *FS) store(name string, data []byte) error {
	if err := util.WriteFile(f.bfs, name, data, f.perm); err != nil {
		return errors.WithContext(errors.Wrap(err, errors.CodeInternal, "failed to store file"), "name", name)
	}
	f.log().Debug("file stored", "name", name, "size", len(data))
	return nil
}
