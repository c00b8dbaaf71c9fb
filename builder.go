package emojidata

import (
	"github.com/denismitr/emojidata/internal/storage/jsonstorage"
	"github.com/pkg/errors"
)

var ErrSourceReadFailed = errors.New("source dataset read failed")
var ErrArtifactWriteFailed = errors.New("artifact write failed")
var ErrArtifactStale = errors.New("artifact is out of date")

// classError tags err with a failure class. errors.Is matches the class,
// errors.Cause and errors.As still reach err.
type classError struct {
	class error
	err   error
}

func (e *classError) Error() string {
	return e.class.Error() + ": " + e.err.Error()
}

func (e *classError) Cause() error {
	return e.err
}

func (e *classError) Unwrap() error {
	return e.err
}

func (e *classError) Is(target error) bool {
	return target == e.class
}

type Report struct {
	Source  string
	Output  string
	Records int
	Bytes   int
	Digest  uint64
}

type Builder struct {
	cfg    *Config
	logger logger
}

type logger interface {
	Printf(format string, v ...interface{})
}

func New(cfg *Config) (*Builder, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	var b Builder
	if err := cfg.applyTo(&b); err != nil {
		return nil, err
	}

	return &b, nil
}

// Build regenerates the artifact from the source dataset, replacing
// whatever was at the output path.
func (b *Builder) Build() (*Report, error) {
	out, rep, err := b.render()
	if err != nil {
		return nil, err
	}

	if err := jsonstorage.Replace(b.cfg.OutputPath, out); err != nil {
		return nil, &classError{class: ErrArtifactWriteFailed, err: err}
	}

	b.logger.Printf("wrote %d emojis to %s (%d bytes, digest %016x)", rep.Records, rep.Output, rep.Bytes, rep.Digest)

	return rep, nil
}

// Check renders the artifact without writing it and fails with
// ErrArtifactStale when the file on disk differs or is missing.
func (b *Builder) Check() (*Report, error) {
	_, rep, err := b.render()
	if err != nil {
		return nil, err
	}

	exists, err := jsonstorage.Exists(b.cfg.OutputPath)
	if err != nil {
		return nil, err
	}

	if !exists {
		return rep, errors.Wrapf(ErrArtifactStale, "%s does not exist", b.cfg.OutputPath)
	}

	current, err := jsonstorage.ReadAll(b.cfg.OutputPath, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read artifact %s", b.cfg.OutputPath)
	}

	if Digest(current) != rep.Digest {
		return rep, errors.Wrapf(
			ErrArtifactStale,
			"%s has digest %016x, expected %016x",
			b.cfg.OutputPath, Digest(current), rep.Digest,
		)
	}

	b.logger.Printf("%s is up to date (%d emojis, digest %016x)", rep.Output, rep.Records, rep.Digest)

	return rep, nil
}

func (b *Builder) render() ([]byte, *Report, error) {
	src, err := jsonstorage.ReadAll(b.cfg.SourcePath, b.cfg.MaxSourceBytes)
	if err != nil {
		return nil, nil, &classError{class: ErrSourceReadFailed, err: err}
	}

	records, err := LoadDataset(src)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not load %s", b.cfg.SourcePath)
	}

	b.logger.Printf("loaded %d emojis from %s (%d bytes)", len(records), b.cfg.SourcePath, len(src))

	transformed, err := Transform(records, b.cfg.Denylist)
	if err != nil {
		return nil, nil, err
	}

	out, err := Marshal(transformed)
	if err != nil {
		return nil, nil, err
	}

	rep := &Report{
		Source:  b.cfg.SourcePath,
		Output:  b.cfg.OutputPath,
		Records: len(transformed),
		Bytes:   len(out),
		Digest:  Digest(out),
	}

	return out, rep, nil
}
