package emojidata

import (
	"github.com/pbnjay/memory"
	"io"
	"log"
)

const (
	DefaultSourcePath = "node_modules/emoji-datasource-google/emoji.json"
	DefaultOutputPath = "src/emoji.json"
)

const fallbackMaxSourceBytes int64 = 1 << 30

type Config struct {
	SourcePath     string
	OutputPath     string
	MaxSourceBytes int64
	Denylist       Denylist
	Log            bool
	Logger         *log.Logger
}

func (cfg *Config) applyTo(b *Builder) error {
	if cfg.SourcePath == "" {
		cfg.SourcePath = DefaultSourcePath
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}

	if cfg.MaxSourceBytes == 0 {
		cfg.MaxSourceBytes = defaultMaxSourceBytes()
	}

	if cfg.Denylist == nil {
		cfg.Denylist = DefaultDenylist()
	}

	switch {
	case !cfg.Log:
		b.logger = log.New(io.Discard, "", 0)
	case cfg.Logger != nil:
		b.logger = cfg.Logger
	default:
		b.logger = log.Default()
	}

	b.cfg = cfg

	return nil
}

// the dataset is held in memory twice over, once raw and once parsed
func defaultMaxSourceBytes() int64 {
	total := memory.TotalMemory()
	if total == 0 {
		return fallbackMaxSourceBytes
	}

	return int64(total / 4)
}
