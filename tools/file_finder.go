package tools

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileFinder locates heightmap grid files to load as terrain refinement
// levels.
type FileFinder interface {
	GetHeightmapFilesToProcess(input string, recursive bool) []string
}

type StandardFileFinder struct{}

func NewStandardFileFinder() FileFinder {
	return &StandardFileFinder{}
}

// GetHeightmapFilesToProcess returns the csv heightmap files under input.
// When input is a single file it is returned as-is; for a folder, nested
// folders are only descended into with recursive enabled. Files are sorted by
// name so coarse-to-fine level ordering can be encoded in filenames.
func (f *StandardFileFinder) GetHeightmapFilesToProcess(input string, recursive bool) []string {
	baseInfo, err := os.Stat(input)
	if err != nil {
		log.Fatal(err)
	}
	if !baseInfo.IsDir() {
		return []string{input}
	}

	var files = make([]string, 0)
	err = filepath.Walk(
		input,
		func(path string, info os.FileInfo, err error) error {
			if info.IsDir() && !recursive && !os.SameFile(info, baseInfo) {
				return filepath.SkipDir
			}
			if strings.ToLower(filepath.Ext(info.Name())) == ".csv" {
				files = append(files, path)
			}
			return nil
		},
	)
	if err != nil {
		log.Fatal(err)
	}

	sort.Strings(files)
	return files
}
