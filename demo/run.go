package demo

import (
	"go.uber.org/zap"

	"github.com/reoring/goclone"
)

// Report is what one strategy shows: the names seen through the original and
// through the copy after the copy's dog was renamed.
type Report struct {
	Strategy        Strategy        `json:"strategy" yaml:"strategy"`
	Rename          string          `json:"rename" yaml:"rename"`
	DogIndex        int             `json:"dog_index" yaml:"dog_index"`
	Original        []string        `json:"original" yaml:"original"`
	Copy            []string        `json:"copy" yaml:"copy"`
	OriginalChanged bool            `json:"original_changed" yaml:"original_changed"`
	Aliases         []goclone.Alias `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Run builds the pack described by cfg, copies it with s, renames the copy's
// dog to cfg.Rename and reports what each handle sees.
func Run(cfg Config, s Strategy, log *zap.Logger) (Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	orig := NewPack(cfg.Dog, cfg.Others...)
	before := orig.Dog().Name()

	cp, err := s.Copy(orig)
	if err != nil {
		return Report{}, err
	}
	log.Debug("copied pack", zap.String("strategy", string(s)), zap.Int("len", len(cp)))

	dog := cp.Dog()
	if dog == nil {
		return Report{}, goclone.Issues{goclone.Root().Issue(goclone.CodeCodec,
			"copy has no dog", "strategy", string(s))}
	}
	dog.SetName(cfg.Rename)
	log.Debug("renamed dog in copy", zap.String("from", before), zap.String("to", cfg.Rename))

	r := Report{
		Strategy:        s,
		Rename:          cfg.Rename,
		DogIndex:        cp.DogIndex(),
		Original:        orig.Names(),
		Copy:            cp.Names(),
		OriginalChanged: orig.Dog().Name() != before,
		Aliases:         goclone.Aliases(orig, cp),
	}
	log.Info("strategy finished",
		zap.String("strategy", string(s)),
		zap.Bool("original_changed", r.OriginalChanged),
		zap.Int("aliases", len(r.Aliases)),
	)
	return r, nil
}

// RunAll runs every strategy listed in cfg, in order, stopping at the first
// failure.
func RunAll(cfg Config, log *zap.Logger) ([]Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	out := make([]Report, 0, len(cfg.Strategies))
	for _, name := range cfg.Strategies {
		s, err := ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		r, err := Run(cfg, s, log)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
