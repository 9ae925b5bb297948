package workout

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type CLI struct {
	writer         io.Writer
	errWriter      io.Writer
	workoutService *Service
	args           []string
	logger         *slog.Logger
}

// NewCLI writes report lines to w; usage and flag errors go to errW.
func NewCLI(w, errW io.Writer, logger *slog.Logger, workoutService *Service, args []string) *CLI {
	return &CLI{
		writer:         w,
		errWriter:      errW,
		workoutService: workoutService,
		args:           args,
		logger:         logger,
	}
}

func (c *CLI) Run(ctx context.Context) error {
	if len(c.args) == 0 {
		c.Usage()
		return nil
	}

	var err error
	switch c.args[0] {
	case "demo":
		err = c.Demo(ctx)
	case "report":
		err = c.ReportOne(ctx)
	case "batch":
		err = c.Batch(ctx)
	case "import":
		err = c.ImportGPX(ctx)
	default:
		c.Usage()
		err = fmt.Errorf("unknown command %q", c.args[0])
	}
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func (c *CLI) Usage() {
	fmt.Fprint(c.errWriter, "Usage: ftracker [-log-level level] [-log-format text|json] [command] [flags]\n\n"+
		"\tdemo\n"+
		"\treport --type RUN|WLK|SWM --data v1,v2,...\n"+
		"\tbatch --file workouts.yaml\n"+
		"\timport --gpx track.gpx --weight kg [--height cm]\n")
}

func (c *CLI) Demo(ctx context.Context) error {
	return c.print(ctx, DemoPackages())
}

func (c *CLI) ReportOne(ctx context.Context) error {
	fs := c.flagSet("report")
	var code, data string
	fs.StringVar(&code, "type", "", "workout type code (RUN, WLK or SWM)")
	fs.StringVar(&data, "data", "", "comma separated sensor values")

	if err := fs.Parse(c.args[1:]); err != nil {
		return err
	}

	if code == "" || data == "" {
		fs.Usage()
		return errors.New("report requires --type and --data")
	}

	code = strings.ToUpper(code)
	if _, err := ParseKind(code); err != nil {
		return err
	}

	values, err := parseValues(data)
	if err != nil {
		return err
	}

	return c.print(ctx, []Package{{Type: code, Data: values}})
}

func (c *CLI) Batch(ctx context.Context) error {
	fs := c.flagSet("batch")
	var path string
	fs.StringVar(&path, "file", "", "path to a yaml or json list of packages")

	if err := fs.Parse(c.args[1:]); err != nil {
		return err
	}

	if path == "" {
		fs.Usage()
		return errors.New("batch requires --file")
	}

	c.logger.Info("Reading packages", slog.String("file", path))

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening batch file: %w", err)
	}
	defer file.Close()

	packages, err := DecodePackages(file)
	if err != nil {
		return err
	}

	return c.print(ctx, packages)
}

func (c *CLI) ImportGPX(ctx context.Context) error {
	fs := c.flagSet("import")
	var gpxFile string
	var opts GPXOptions
	fs.StringVar(&gpxFile, "gpx", "", "path to gpx file")
	fs.Float64Var(&opts.WeightKg, "weight", 0, "athlete weight in kg")
	fs.Float64Var(&opts.HeightCm, "height", 0, "athlete height in cm, imports the track as sports walking")

	if err := fs.Parse(c.args[1:]); err != nil {
		return err
	}

	if gpxFile == "" {
		fs.Usage()
		return errors.New("import requires --gpx")
	}

	c.logger.Info("Importing gpx file", slog.String("gpx_file", gpxFile))

	gpxBytes, err := readGPXFile(gpxFile)
	if err != nil {
		return err
	}

	p, err := PackageFromGPX(gpxBytes, opts)
	if err != nil {
		return err
	}

	return c.print(ctx, []Package{p})
}

func (c *CLI) print(ctx context.Context, packages []Package) error {
	lines, err := c.workoutService.Report(ctx, packages)
	if err != nil {
		return err
	}

	for _, line := range lines {
		fmt.Fprintln(c.writer, line)
	}

	return nil
}

func (c *CLI) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.errWriter)
	fs.Usage = c.Usage
	return fs
}

// ExitCode maps an error returned by Run to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUnknownWorkoutType):
		return 2
	case errors.Is(err, ErrInvalidArity):
		return 3
	case errors.Is(err, ErrInvalidMeasurement):
		return 4
	default:
		return 1
	}
}

func parseValues(data string) ([]float64, error) {
	parts := strings.Split(data, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidMeasurement, part)
		}
		values = append(values, v)
	}
	return values, nil
}
