package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/lc1292131741/cesium/internal/converters"
	"github.com/lc1292131741/cesium/internal/converters/elevation/geoid_elevation_corrector"
	"github.com/lc1292131741/cesium/internal/converters/elevation/offset_elevation_corrector"
	"github.com/lc1292131741/cesium/internal/converters/elevation/pipeline_elevation_corrector"
	"github.com/lc1292131741/cesium/internal/converters/proj4_coordinate_converter"
	"github.com/lc1292131741/cesium/internal/ellipsoid"
	"github.com/lc1292131741/cesium/internal/geometry"
	"github.com/lc1292131741/cesium/internal/property"
	"github.com/lc1292131741/cesium/internal/scene"
	"github.com/lc1292131741/cesium/internal/terrain"
	"github.com/lc1292131741/cesium/tools"
)

const VERSION = "0.9.0"

const logo = `
      _
  ___| | __ _ _ __ ___  _ __   ___ _ __
 / __| |/ _  | '_   _ \| '_ \ / _ \ '__|
| (__| | (_| | | | | | | |_) |  __/ |
 \___|_|\__,_|_| |_| |_| .__/ \___|_|
                       |_|  terrain clamping for a cesium-style globe
`

func main() {
	log.SetPrefix("[clamper] ")
	log.SetFlags(log.LUTC | log.Ldate | log.Lmicroseconds | log.Lshortfile)

	flags := tools.ParseFlagsForClampDemo()

	if *flags.Help {
		showHelp()
		return
	}

	if *flags.Silent {
		tools.DisableLogger()
	} else {
		printLogo()
	}
	if !*flags.LogTimestamp {
		tools.DisableLoggerTimestamp()
	}

	if msg, ok := validateFlags(&flags); !ok {
		log.Fatal("Error parsing input parameters: " + msg)
	}

	converter := proj4_coordinate_converter.NewProj4CoordinateConverter()
	defer converter.Cleanup()

	provider := buildTerrainProvider(&flags, converter)

	globe := scene.NewGlobe(ellipsoid.WGS84)
	sc := scene.NewScene(globe)
	sc.SetTerrainProvider(provider)

	runClampDemo(sc, &flags)

	tools.LogOutput("Simulation Completed")
}

// buildTerrainProvider assembles the demo terrain: heightmap levels from csv
// files when -input is given, a seeded procedural terrain otherwise, with the
// elevation correction pipeline applied either way.
func buildTerrainProvider(flags *tools.ClampDemoFlags, converter converters.CoordinateConverter) terrain.Provider {
	correctors := []converters.ElevationCorrector{
		offset_elevation_corrector.NewOffsetElevationCorrector(*flags.ZOffset),
	}
	if *flags.ZGeoidCorrection {
		correctors = append(correctors, geoid_elevation_corrector.NewGeoidElevationCorrector())
	}
	corrector := pipeline_elevation_corrector.NewPipelineElevationCorrector(correctors...)

	if *flags.Input != "" {
		files := tools.NewStandardFileFinder().GetHeightmapFilesToProcess(*flags.Input, *flags.Recursive)
		tools.LogOutput("heightmap file list", files)
		levels := make([]*terrain.HeightmapLevel, 0, len(files))
		for i, filePath := range files {
			level, err := terrain.LoadHeightmapLevel(filePath, *flags.Srid, converter)
			if err != nil {
				log.Fatal("Error loading heightmap: ", err)
			}
			tools.LogOutput(fmt.Sprintf("loaded level %d/%d from %s", i+1, len(files), filePath))
			levels = append(levels, level)
		}
		return terrain.NewHeightmapProvider(corrector, levels...)
	}

	source := terrain.NewProceduralSource(*flags.Seed)
	provider, err := terrain.NewProceduralProvider(
		source,
		*flags.Lat-0.5, *flags.Lon-0.5, *flags.Lat+0.5, *flags.Lon+0.5,
		3, 33, 33,
		corrector,
	)
	if err != nil {
		log.Fatal("Error building procedural terrain: ", err)
	}
	return provider
}

// runClampDemo flies a point in a small circle around the configured center
// and logs the terrain offset it resolves to, morphing the scene halfway
// through to show forced recomputation.
func runClampDemo(sc *scene.Scene, flags *tools.ClampDemoFlags) {
	e := sc.Globe().Ellipsoid()
	centerLat, centerLon := *flags.Lat, *flags.Lon

	flightPath := func(t float64) (geometry.Coordinate, bool) {
		lat := centerLat + 0.2*math.Sin(t/10)
		lon := centerLon + 0.2*math.Cos(t/10)
		return e.GeodeticToCartesian(geometry.Geodetic{Lat: lat, Lon: lon}), true
	}

	offset := property.NewTerrainOffsetProperty(
		sc,
		property.ConstantHeightReference(property.HeightReferenceClampToGround),
		property.ConstantHeightReference(property.HeightReferenceNone),
		flightPath,
	)
	defer offset.Destroy()

	removeListener := offset.DefinitionChanged().AddListener(func() {
		tools.LogOutput(fmt.Sprintf("terrain height changed: %.2fm", offset.TerrainHeight()))
	})
	defer removeListener()

	steps := *flags.Steps
	for i := 0; i < steps; i++ {
		t := float64(i)
		value := offset.GetValue(t, nil)
		tools.LogOutput(fmt.Sprintf("t=%5.1f offset=(%.2f, %.2f, %.2f) height=%.2fm",
			t, value.X, value.Y, value.Z, offset.TerrainHeight()))

		// pump async refinement
		sc.Tick(1)

		if i == steps/2 {
			tools.LogOutput("morphing to 2D and back")
			sc.MorphTo2D()
			sc.MorphTo3D()
		}
	}
}

func validateFlags(flags *tools.ClampDemoFlags) (string, bool) {
	if *flags.Input != "" {
		if _, err := os.Stat(*flags.Input); os.IsNotExist(err) {
			return "Input file/folder not found", false
		}
	}
	if *flags.Steps <= 0 {
		return "steps must be positive", false
	}
	if *flags.Lat < -90 || *flags.Lat > 90 {
		return "lat must be within [-90, 90]", false
	}
	if *flags.Lon < -180 || *flags.Lon > 180 {
		return "lon must be within [-180, 180]", false
	}
	return "", true
}

func printLogo() {
	fmt.Print(logo + "\n")
}

func showHelp() {
	printLogo()
	fmt.Println("***")
	fmt.Println("clamper evaluates terrain-clamped offsets for a moving point on a globe scene")
	fmt.Println("v." + VERSION)
	fmt.Println("***")
	fmt.Println("")
	fmt.Println("Command line flags: ")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}
