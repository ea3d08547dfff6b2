package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/cwbudde/algo-spectro/frame"
	"github.com/cwbudde/algo-spectro/internal/fitsfile"
	"github.com/cwbudde/algo-spectro/lines"
	"github.com/cwbudde/algo-spectro/reference"
)

func runInfo(e *env, args []string) error {
	fs := newFlagSet(e, "info")

	if err := parse(fs, args, 1, 1); err != nil {
		return err
	}

	img, err := fitsfile.Read(fs.Arg(0))
	if err != nil {
		return err
	}

	e.printf("%s: BITPIX %d, axes %v\n\n", fs.Arg(0), img.Bitpix, img.Axes)

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	for _, c := range img.Header.Cards() {
		fmt.Fprintf(tw, "%s\t%v\t%s\n", c.Name, c.Value, c.Comment)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if cal, err := img.Header.Calibration(); err == nil {
		e.printf("\n%s\n", cal)
	}

	if len(img.Data) == 0 {
		return nil
	}

	s, err := frame.Describe(img.Data)
	if err != nil {
		return err
	}

	e.printf("\ncount %d  min %g  max %g  mean %g  median %g  std %g\n",
		s.Count, s.Min, s.Max, s.Mean, s.Median, s.Std)

	return nil
}

func runLines(e *env, args []string) error {
	fs := newFlagSet(e, "lines")

	if err := parse(fs, args, 0, 0); err != nil {
		return err
	}

	return printLines(e)
}

func printLines(e *env) error {
	for _, l := range lines.All() {
		e.printf("%4s %s\n", l.Key, l)
	}

	return nil
}

func runCatalog(e *env, args []string) error {
	fs := newFlagSet(e, "catalog")
	refs := fs.String("references", "", "reference catalog directory (default $"+reference.EnvRoot+" or references/ beside the executable)")

	if err := parse(fs, args, 0, 0); err != nil {
		return err
	}

	c := reference.New(reference.DefaultRoot(*refs))

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tFile\tPresent\n")
	fmt.Fprintf(tw, "----\t----\t-------\n")

	for _, name := range c.Names() {
		p, err := c.Path(name)
		if err != nil {
			return err
		}

		_, statErr := os.Stat(p)
		fmt.Fprintf(tw, "%s\t%s\t%t\n", name, filepath.Base(p), statErr == nil)
	}

	return tw.Flush()
}

// timestampLayouts are the DATE-OBS forms accepted by decdate.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func runDecDate(e *env, args []string) error {
	fs := newFlagSet(e, "decdate")
	key := fs.String("k", fitsfile.KeyDateObs, "header keyword holding the timestamp")

	if err := parse(fs, args, 1, 1); err != nil {
		return err
	}

	img, err := fitsfile.Read(fs.Arg(0))
	if err != nil {
		return err
	}

	raw, err := img.Header.String(*key)
	if err != nil {
		return fmt.Errorf("%s: %w", fs.Arg(0), err)
	}

	t, err := parseTimestamp(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", fs.Arg(0), err)
	}

	e.printf("%s\n", decimalDate(t))

	return nil
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// decimalDate formats t as "YYYY Mon DD.ddd", the day carrying the
// fraction elapsed in whole seconds.
func decimalDate(t time.Time) string {
	t = t.UTC().Truncate(time.Second)

	y, m, d := julian.JDToCalendar(julian.TimeToJD(t))

	return fmt.Sprintf("%d %s %.3f", y, time.Month(m).String()[:3], d)
}
