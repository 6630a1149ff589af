package config

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"automaton/src/grid"
	"automaton/src/universe"
)

//Mode selects the front end of the application
type Mode string

const (
	ModeConsole Mode = "console" //interactive terminal UI
	ModeBatch   Mode = "batch"   //runs the simulation and prints the progress
	ModeWindow  Mode = "window"  //desktop window, requires the ebiten build tag
)

//ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("config: invalid configuration")

//Config holds the configuration of the application
type Config struct {
	File            string        `json:"-"`
	Mode            Mode          `json:"mode"`
	Size            int           `json:"size"`
	CellSize        int           `json:"cell_size"`
	Interval        time.Duration `json:"interval"`
	MaxSteps        int           `json:"max_steps"`
	MaxSkippedTicks int           `json:"max_skipped_ticks"`
	Engine          grid.Engine   `json:"engine"`
	HaltOnStable    bool          `json:"halt_on_stable"`
	Random          bool          `json:"random"`
	Seed            int64         `json:"seed"`
	Template        string        `json:"template"`
	FramesPerStep   int           `json:"frames_per_step"`
}

//Default returns the configuration of the interactive terminal game on the 35x35 grid
func Default() Config {
	return Config{
		Mode:            ModeConsole,
		Size:            universe.DefSize,
		CellSize:        20,
		Interval:        universe.DefSimulationInterval,
		MaxSteps:        0,
		MaxSkippedTicks: universe.DefMaxSkippedTicks,
		Engine:          grid.EngineFresh,
		HaltOnStable:    false,
		Seed:            42,
		FramesPerStep:   universe.DefFramesPerStep,
	}
}

//Load loads configuration from JSON file over the defaults
func Load(filename string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return c, errors.Wrapf(err, "[config.Load] failed to read file: %s", filename)
	}

	if err = json.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "[config.Load] failed to unmarshal data from file: %s", filename)
	}
	c.File = filename
	return c, nil
}

//Parse builds the configuration from the command line arguments (without the program name)
//values from the file given by --config are overridden by the other flags
func Parse(args []string) (Config, error) {
	c := Default()
	if err := newParser(&c).ParseArgs(args); err != nil {
		return c, errors.Wrap(err, "[config.Parse] failed to parse arguments")
	}
	if c.File != "" {
		fc, err := Load(c.File)
		if err != nil {
			return fc, err
		}
		if err = newParser(&fc).ParseArgs(args); err != nil {
			return fc, errors.Wrap(err, "[config.Parse] failed to parse arguments")
		}
		c = fc
	}
	return c, c.Validate()
}

//Validate checks the configuration
func (c Config) Validate() error {
	var problems []string
	if c.Size <= 0 {
		problems = append(problems, "size must be positive")
	}
	if c.CellSize <= 0 {
		problems = append(problems, "cell size must be positive")
	}
	if c.Interval < 0 {
		problems = append(problems, "interval must not be negative")
	}
	if c.MaxSteps < 0 {
		problems = append(problems, "max steps must not be negative")
	}
	if c.MaxSkippedTicks < 0 {
		problems = append(problems, "max skipped ticks must not be negative")
	}
	if c.FramesPerStep <= 0 {
		problems = append(problems, "frames per step must be positive")
	}
	if !knownEngine(c.Engine) {
		problems = append(problems, "unknown engine "+string(c.Engine))
	}
	switch c.Mode {
	case ModeConsole, ModeBatch, ModeWindow:
	default:
		problems = append(problems, "unknown mode "+string(c.Mode))
	}
	if len(problems) > 0 {
		return errors.Wrap(ErrInvalidConfig, strings.Join(problems, ", "))
	}
	return nil
}

//UniverseOptions converts the configuration to the universe's options
func (c Config) UniverseOptions() universe.Options {
	return universe.Options{
		Size:            c.Size,
		Engine:          c.Engine,
		Interval:        c.Interval,
		MaxSteps:        c.MaxSteps,
		MaxSkippedTicks: c.MaxSkippedTicks,
		HaltOnStable:    c.HaltOnStable,
		Seed:            c.Seed,
	}
}

func newParser(c *Config) *flaggy.Parser {
	engineNames := make([]string, 0)
	for _, e := range grid.Engines() {
		engineNames = append(engineNames, string(e))
	}

	p := flaggy.NewParser("automaton")
	p.Description = "Conway's Game of Life"
	p.ShowHelpOnUnexpected = true
	p.String(&c.File, "f", "config", "JSON configuration file, the other flags override its values")
	p.String((*string)(&c.Mode), "m", "mode", "Front end [console|batch|window]")
	p.Int(&c.Size, "x", "size", "Width and height of the field in cells")
	p.Int(&c.CellSize, "z", "cellSize", "Cell size in pixels (window mode)")
	p.Duration(&c.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	p.Int(&c.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 means no limit")
	p.Int(&c.MaxSkippedTicks, "k", "maxSkippedTicks", "Finish the simulation after so many ticks skipped in a row")
	p.String((*string)(&c.Engine), "e", "engine", "Engine to use ["+strings.Join(engineNames, "|")+"]")
	p.Bool(&c.HaltOnStable, "t", "haltOnStable", "Finish the simulation when the field dies out or repeats itself")
	p.Bool(&c.Random, "r", "random", "Settle with random data")
	p.Int64(&c.Seed, "d", "seed", "Seed of the random data")
	p.String(&c.Template, "p", "template", "Settle with the named template [block|blinker|glider|sample]")
	p.Int(&c.FramesPerStep, "a", "framesPerStep", "Frames between two steps of the automatic mode (window mode)")
	return p
}

func knownEngine(name grid.Engine) bool {
	for _, e := range grid.Engines() {
		if e == name {
			return true
		}
	}
	return false
}
