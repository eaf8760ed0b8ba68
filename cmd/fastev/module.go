package main

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/fastev/configs"
	"github.com/reusee/fastev/debugs"
	"github.com/reusee/fastev/interpreters"
	"github.com/reusee/fastev/logs"
	"github.com/reusee/fastev/vars"
)

type Module struct {
	dscope.Module
	Interpreters interpreters.Module
	Debugs       debugs.Module
}

//go:embed schema.cue
var schema string

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	filenames := []string{
		"fastev.cue",
		".fastev.cue",
	}

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, schema)
}

type Seed uint64

func (Module) Seed(
	loader configs.Loader,
) Seed {
	if *seedFlag != 0 {
		return Seed(*seedFlag)
	}
	return Seed(vars.DerefOrZero(configs.First[*uint64](loader, "seed")))
}
