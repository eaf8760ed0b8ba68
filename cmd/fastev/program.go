package main

import (
	_ "embed"
	"fmt"

	"github.com/reusee/fastev/configs"
	"github.com/reusee/fastev/events"
	"github.com/reusee/fastev/games"
)

//go:embed program.cue
var programSchema string

type commonEventRecord struct {
	ID   int             `json:"id"`
	Name string          `json:"name"`
	List []events.Record `json:"list"`
}

type variableRecord struct {
	ID    int `json:"id"`
	Value int `json:"value"`
}

// Program is an event program file: a main list, common events and initial game state.
// Each Load decodes fresh lists, so resolutions stored by one run are not shared with another.
type Program struct {
	path   string
	loader configs.Loader
}

func OpenProgram(path string) (*Program, error) {
	loader := configs.NewLoader([]string{path}, programSchema)
	if err := loader.Err(); err != nil {
		return nil, fmt.Errorf("load program %s: %w", path, err)
	}
	return &Program{
		path:   path,
		loader: loader,
	}, nil
}

func (p *Program) Load(seed uint64) (list *events.List, state *games.State, err error) {
	var records []events.Record
	if err := p.loader.AssignFirst("main", &records); err != nil {
		return nil, nil, fmt.Errorf("program %s: %w", p.path, err)
	}
	list = events.FromRecords("main", records)

	state = games.NewState(seed)

	for _, commonEvent := range configs.First[[]commonEventRecord](p.loader, "common_events") {
		name := commonEvent.Name
		if name == "" {
			name = fmt.Sprintf("common event %d", commonEvent.ID)
		}
		state.AddCommonEvent(commonEvent.ID, name, events.FromRecords(name, commonEvent.List))
	}

	for _, id := range configs.First[[]int](p.loader, "switches") {
		state.Switches.SetValue(id, true)
	}
	for _, variable := range configs.First[[]variableRecord](p.loader, "variables") {
		state.Variables.SetValue(variable.ID, variable.Value)
	}

	return
}
