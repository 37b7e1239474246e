package main

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/taigrr/blockshade/pkg/math3d"
)

// options holds the raw persistent flags.
type options struct {
	fps       int
	light     string
	color     string
	detail    int
	flat      bool
	wireframe bool
	debug     bool
}

// config is options after parsing, shared by every subcommand.
type config struct {
	fps       int
	light     math3d.Vec3
	color     color.RGBA
	detail    int
	flat      bool
	wireframe bool
	debug     bool
	logger    *log.Logger
}

func (o *options) resolve() (*config, error) {
	if o.fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", o.fps)
	}
	if o.detail < 0 {
		return nil, fmt.Errorf("detail must not be negative, got %d", o.detail)
	}

	light, err := parseVec3(o.light)
	if err != nil {
		return nil, fmt.Errorf("light: %w", err)
	}
	c, err := parseRGB(o.color)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}

	return &config{
		fps:       o.fps,
		light:     light,
		color:     c,
		detail:    o.detail,
		flat:      o.flat,
		wireframe: o.wireframe,
		debug:     o.debug,
		logger:    newLogger(o.debug),
	}, nil
}

// detailOr returns the configured detail level, or def when none was given.
func (c *config) detailOr(def int) int {
	if c.detail == 0 {
		return def
	}
	return c.detail
}

func newLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "blockshade",
		ReportTimestamp: true,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func splitTriple(s string) ([]string, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("parse %q: want three comma separated values", s)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// parseVec3 parses "x,y,z".
func parseVec3(s string) (math3d.Vec3, error) {
	parts, err := splitTriple(s)
	if err != nil {
		return math3d.Vec3{}, err
	}
	var f [3]float64
	for i, p := range parts {
		f[i], err = strconv.ParseFloat(p, 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("parse %q: %w", s, err)
		}
	}
	return math3d.V3(f[0], f[1], f[2]), nil
}

// parseRGB parses "r,g,b" with each channel in 0..255.
func parseRGB(s string) (color.RGBA, error) {
	parts, err := splitTriple(s)
	if err != nil {
		return color.RGBA{}, err
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parse %q: %w", s, err)
		}
		ch[i] = uint8(v)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
}
