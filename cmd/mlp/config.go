package main

import (
	"flag"
	"os"

	"github.com/born-ml/mlp/nn"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of an xor run. It can be loaded from YAML and
// then overridden by explicitly set command-line flags.
type Config struct {
	Sizes        []int   `yaml:"sizes"`
	Epochs       int     `yaml:"epochs"`
	LearningRate float32 `yaml:"learning_rate"`
	Momentum     float32 `yaml:"momentum"`
	Loss         string  `yaml:"loss"`
	Mode         string  `yaml:"mode"`
	Optimizer    string  `yaml:"optimizer"`
	Init         string  `yaml:"init"`
	Seed         uint64  `yaml:"seed"`
	Restarts     int     `yaml:"restarts"`
	Table        string  `yaml:"table"`
	Output       string  `yaml:"output"`
	Progress     bool    `yaml:"progress"`
}

// DefaultConfig returns the settings used when neither a config file nor
// flags say otherwise.
func DefaultConfig() Config {
	return Config{
		Sizes:     []int{2, 2, 1},
		Epochs:    10_000,
		Loss:      "mse",
		Mode:      "stochastic",
		Optimizer: "sgd",
		Init:      "uniform",
		Seed:      1,
		Restarts:  1,
		Table:     "xor",
		Output:    "table",
		Progress:  true,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from
// the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %q", path)
	}
	return cfg, nil
}

// Validate checks ranges and enum names.
func (c Config) Validate() error {
	if len(c.Sizes) < 2 {
		return errors.Errorf("sizes needs at least 2 entries, got %v", c.Sizes)
	}
	if c.Sizes[0] != 2 || c.Sizes[len(c.Sizes)-1] != 1 {
		return errors.Errorf("sizes must start with 2 and end with 1 for a 2-input truth table, got %v", c.Sizes)
	}
	if c.Epochs < 0 {
		return errors.Errorf("epochs must be >= 0, got %d", c.Epochs)
	}
	if c.Restarts < 1 {
		return errors.Errorf("restarts must be >= 1, got %d", c.Restarts)
	}
	if c.LearningRate < 0 {
		return errors.Errorf("learning rate must be >= 0, got %g", c.LearningRate)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return errors.Errorf("momentum must be in [0, 1), got %g", c.Momentum)
	}
	switch c.Init {
	case "uniform", "xavier":
	default:
		return errors.Errorf("unknown init %q (want uniform or xavier)", c.Init)
	}
	if _, ok := truthTables[c.Table]; !ok {
		return errors.Errorf("unknown table %q (want xor, conflicting, and or or)", c.Table)
	}
	switch c.Output {
	case "table", "text":
	default:
		return errors.Errorf("unknown output %q (want table or text)", c.Output)
	}
	_, err := c.TrainConfig()
	return err
}

// TrainConfig converts the enum names to an nn.TrainConfig.
func (c Config) TrainConfig() (nn.TrainConfig, error) {
	loss, err := nn.ParseLossKind(c.Loss)
	if err != nil {
		return nn.TrainConfig{}, err
	}
	mode, err := nn.ParseUpdateMode(c.Mode)
	if err != nil {
		return nn.TrainConfig{}, err
	}
	optimizer, err := nn.ParseOptimizerKind(c.Optimizer)
	if err != nil {
		return nn.TrainConfig{}, err
	}
	return nn.TrainConfig{
		LearningRate: c.LearningRate,
		Momentum:     c.Momentum,
		Loss:         loss,
		Mode:         mode,
		Optimizer:    optimizer,
	}, nil
}

// configFlags binds flags for every Config field.
type configFlags struct {
	fs           *flag.FlagSet
	configPath   *string
	sizes        *intList
	epochs       *int
	learningRate *float64
	momentum     *float64
	loss         *string
	mode         *string
	optimizer    *string
	init         *string
	seed         *uint64
	restarts     *int
	table        *string
	output       *string
	progress     *bool
}

func newConfigFlags(fs *flag.FlagSet) *configFlags {
	def := DefaultConfig()
	f := &configFlags{fs: fs, sizes: &intList{}}
	*f.sizes = def.Sizes
	f.configPath = fs.String("config", "", "YAML file with run settings. Explicitly set flags override it.")
	fs.Var(f.sizes, "sizes", "Comma-separated layer sizes, input first.")
	f.epochs = fs.Int("epochs", def.Epochs, "Number of training epochs.")
	f.learningRate = fs.Float64("lr", 0, "Learning rate. 0 uses the optimizer default.")
	f.momentum = fs.Float64("momentum", 0, "SGD momentum in [0, 1).")
	f.loss = fs.String("loss", def.Loss, "Loss function: mse or bce.")
	f.mode = fs.String("mode", def.Mode, "Update mode: stochastic or batch.")
	f.optimizer = fs.String("optimizer", def.Optimizer, "Optimizer: sgd or adam.")
	f.init = fs.String("init", def.Init, "Weight initialization: uniform or xavier.")
	f.seed = fs.Uint64("seed", def.Seed, "Seed of the random initialization.")
	f.restarts = fs.Int("restarts", def.Restarts, "Train this many networks, seeded seed, seed+1, ..., concurrently and keep the best.")
	f.table = fs.String("table", def.Table, "Truth table to learn: xor, conflicting, and or or.")
	f.output = fs.String("output", def.Output, "Prediction output: table or text.")
	f.progress = fs.Bool("progress", def.Progress, "Show a progress bar while training.")
	return f
}

// Resolve loads the -config file, if any, and applies the flags that were
// set explicitly on the command line.
func (f *configFlags) Resolve() (Config, error) {
	cfg := DefaultConfig()
	if *f.configPath != "" {
		var err error
		if cfg, err = LoadConfig(*f.configPath); err != nil {
			return cfg, err
		}
	}

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "sizes":
			cfg.Sizes = append([]int(nil), (*f.sizes)...)
		case "epochs":
			cfg.Epochs = *f.epochs
		case "lr":
			cfg.LearningRate = float32(*f.learningRate)
		case "momentum":
			cfg.Momentum = float32(*f.momentum)
		case "loss":
			cfg.Loss = *f.loss
		case "mode":
			cfg.Mode = *f.mode
		case "optimizer":
			cfg.Optimizer = *f.optimizer
		case "init":
			cfg.Init = *f.init
		case "seed":
			cfg.Seed = *f.seed
		case "restarts":
			cfg.Restarts = *f.restarts
		case "table":
			cfg.Table = *f.table
		case "output":
			cfg.Output = *f.output
		case "progress":
			cfg.Progress = *f.progress
		}
	})
	return cfg, cfg.Validate()
}
