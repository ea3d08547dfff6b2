// Command spectro reduces slitless spectrograph exposures stored as FITS
// files: binning, dark subtraction, auto-cropping, wavelength calibration,
// stacking, normalisation, response correction and plotting.
//
// Usage:
//
//	spectro <command> [flags] args...
//
// Examples:
//
//	spectro autocrop -o cropped.fits raw.fits
//	spectro autocal -spacing 10.2 -maxx 400 -o cal.fits cropped.fits
//	spectro wlcrop -min 3900 -max 7000 -o trimmed.fits cal.fits
//	spectro plot -lines Ha,Hb -reference A0V -o vega.png trimmed.fits
//	spectro lines
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/soniakeys/exit"
)

var errUsage = errors.New("usage")

// env carries the output streams of one invocation.
type env struct {
	stdout io.Writer
	stderr io.Writer
	log    *log.Logger
}

func (e *env) printf(format string, args ...any) {
	fmt.Fprintf(e.stdout, format, args...)
}

func (e *env) warn(err error) {
	e.log.Printf("WARN: %v", err)
}

type command struct {
	name    string
	args    string
	summary string
	run     func(e *env, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"bin", "file", "sum a 2-D exposure along columns into a 1-D trace", runBin},
		{"darksub", "dark file", "subtract a dark frame, clipping to 0..255", runDarkSub},
		{"autocrop", "file", "crop an exposure to the rows holding the spectrum", runAutoCrop},
		{"autocal", "file", "locate the zero order and write a single-point calibration", runAutoCal},
		{"calibrate", "file", "write a calibration given on the command line", runCalibrate},
		{"wlcrop", "file", "crop a calibrated trace to a wavelength range", runWavelengthCrop},
		{"normalise", "file", "divide a trace by its maximum", runNormalise},
		{"stack", "file...", "average exposures pixel by pixel", runStack},
		{"specstack", "master file...", "average calibrated traces on the master's grid", runSpecStack},
		{"correct", "file", "divide a trace by its response against a reference", runCorrect},
		{"to16bit", "file", "scale 8-bit data into the 16-bit range", runTo16Bit},
		{"decdate", "file", "print the observation date with a fractional day", runDecDate},
		{"plot", "file", "plot a trace or exposure to an image file", runPlot},
		{"colourize", "file", "render a calibrated trace as a colour strip", runColourize},
		{"info", "file", "print header cards and pixel statistics", runInfo},
		{"lines", "", "list the element lines", runLines},
		{"catalog", "", "list the reference spectra", runCatalog},
	}
}

func main() {
	defer exit.Handler()

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}

		exit.Log(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	e := &env{stdout: stdout, stderr: stderr, log: log.New(stderr, "", 0)}

	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		usage(stderr)
		return errUsage
	}

	for _, c := range commands {
		if c.name == args[0] {
			return c.run(e, args[1:])
		}
	}

	usage(stderr)

	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: spectro <command> [flags] args...\n\n")
	fmt.Fprintf(w, "Commands:\n")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range commands {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", c.name, c.args, c.summary)
	}

	_ = tw.Flush()

	fmt.Fprintf(w, "\nRun 'spectro <command> -h' for the flags of a command.\n")
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(e *env, c string) *flag.FlagSet {
	fs := flag.NewFlagSet(c, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		for _, cmd := range commands {
			if cmd.name == c {
				fmt.Fprintf(e.stderr, "Usage: spectro %s [flags] %s\n\n%s.\n\nFlags:\n", c, cmd.args, cmd.summary)
			}
		}

		fs.PrintDefaults()
	}

	return fs
}

// parse parses args and checks the positional argument count.
func parse(fs *flag.FlagSet, args []string, minArgs, maxArgs int) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	if n := fs.NArg(); n < minArgs || (maxArgs >= 0 && n > maxArgs) {
		fs.Usage()
		return fmt.Errorf("%w: %s: unexpected number of arguments (%d)", errUsage, fs.Name(), n)
	}

	return nil
}

func requireOutput(fs *flag.FlagSet, out string) error {
	if out == "" {
		fs.Usage()
		return fmt.Errorf("%w: %s requires -o", errUsage, fs.Name())
	}

	return nil
}
