package tools

import (
	"flag"
)

type ClampDemoFlags struct {
	Input            *string
	Srid             *int
	ZOffset          *float64
	ZGeoidCorrection *bool
	Recursive        *bool
	Seed             *int64
	Steps            *int
	Lat              *float64
	Lon              *float64
	Silent           *bool
	LogTimestamp     *bool
	Help             *bool
}

func ParseFlagsForClampDemo() ClampDemoFlags {
	input := defineStringFlag("input", "i", "", "Optional csv heightmap file/folder to load as terrain refinement levels. A procedural terrain is generated when empty.")
	srid := defineIntFlag("srid", "e", 4326, "EPSG srid code of heightmap bounds.")
	zOffset := defineFloat64Flag("zoffset", "z", 0, "Vertical offset to apply to terrain heights, in meters.")
	zGeoidCorrection := defineBoolFlag("geoid", "g", false, "Enables Geoid to Ellipsoid elevation correction. Use this flag if your heightmaps have heights specified relative to the Earth geoid rather than to the standard ellipsoid.")
	recursive := defineBoolFlag("recursive", "r", false, "Enables recursive lookup for .csv heightmap files inside subfolders.")
	seed := defineInt64Flag("seed", "d", 1, "Seed for the procedural terrain source.")
	steps := defineIntFlag("steps", "n", 40, "Number of simulation steps to run.")
	lat := defineFloat64Flag("lat", "a", 46.0, "Latitude of the flight path center, in degrees.")
	lon := defineFloat64Flag("lon", "o", 11.0, "Longitude of the flight path center, in degrees.")
	silent := defineBoolFlag("silent", "s", false, "Use to suppress all the non-error messages.")
	logTimestamp := defineBoolFlag("timestamp", "t", false, "Adds timestamp to log messages.")
	help := defineBoolFlag("help", "h", false, "Displays this help.")

	flag.Parse()

	return ClampDemoFlags{
		Input:            input,
		Srid:             srid,
		ZOffset:          zOffset,
		ZGeoidCorrection: zGeoidCorrection,
		Recursive:        recursive,
		Seed:             seed,
		Steps:            steps,
		Lat:              lat,
		Lon:              lon,
		Silent:           silent,
		LogTimestamp:     logTimestamp,
		Help:             help,
	}
}

func defineStringFlag(name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	flag.StringVar(&output, name, defaultValue, usage)
	if shortHand != name {
		flag.StringVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineIntFlag(name string, shortHand string, defaultValue int, usage string) *int {
	var output int
	flag.IntVar(&output, name, defaultValue, usage)
	if shortHand != name {
		flag.IntVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineInt64Flag(name string, shortHand string, defaultValue int64, usage string) *int64 {
	var output int64
	flag.Int64Var(&output, name, defaultValue, usage)
	if shortHand != name {
		flag.Int64Var(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineFloat64Flag(name string, shortHand string, defaultValue float64, usage string) *float64 {
	var output float64
	flag.Float64Var(&output, name, defaultValue, usage)
	if shortHand != name {
		flag.Float64Var(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineBoolFlag(name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flag.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name {
		flag.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}
