package cli

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Option holds the probe flags. Input is either a comma-separated list of
// manifest URLs or a path to a JSON file of options.
type Option struct {
	Input   string        `json:"input"`
	Output  string        `json:"output"`
	Format  string        `json:"format"`
	Title   string        `json:"title"`
	Timeout time.Duration `json:"timeout"`
	Copy    bool
	Serve   bool
	Threads int
}

func (p *Option) UnmarshalJSON(b []byte) error {
	type Alias Option
	aux := &struct {
		Timeout string `json:"timeout"`
		*Alias
	}{
		Alias: (*Alias)(p),
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	var err error
	if aux.Timeout != "" {
		p.Timeout, err = time.ParseDuration(aux.Timeout)
		if err != nil {
			return err
		}
	}

	return nil
}

// Unit is one manifest URL queued for probing.
type Unit struct {
	ID     string
	URL    string
	Format string
	Title  string
	Err    error
}

func (u Unit) GetID() any {
	return u.ID
}

func (u Unit) GetTitle() string {
	return u.URL
}

func (u Unit) GetError() error {
	return u.Err
}

func level(main, fallback *Option) {
	if main.Output == "" && fallback.Output != "" {
		main.Output = fallback.Output
	}
	if main.Format == "" && fallback.Format != "" {
		main.Format = fallback.Format
	}
	if main.Timeout == 0 && fallback.Timeout != 0 {
		main.Timeout = fallback.Timeout
	}
}

func (opt Option) unitsFromFileInput() []Unit {
	content, err := os.ReadFile(opt.Input)
	if err != nil {
		log.Fatal(err)
	}

	var inputOpts []Option
	if err := json.Unmarshal(content, &inputOpts); err != nil {
		log.Fatal(err)
	}

	units := make([]Unit, len(inputOpts))
	for i, u := range inputOpts {
		level(&u, &opt)
		units[i] = Unit{
			ID:     uuid.NewString(),
			URL:    strings.TrimSpace(u.Input),
			Format: u.Format,
			Title:  u.Title,
		}
	}

	return units
}

func (opt Option) unitsFromFlagInput() []Unit {
	inputs := strings.Split(opt.Input, ",")
	units := make([]Unit, len(inputs))

	for i, input := range inputs {
		units[i] = Unit{
			ID:     uuid.NewString(),
			URL:    strings.TrimSpace(input),
			Format: opt.Format,
			Title:  opt.Title,
		}
	}

	return units
}

// GetUnitsFromInput resolves the probe units: when Input names an existing
// file it is read as a JSON array of options, otherwise it is split on
// commas as direct URLs.
func (opt Option) GetUnitsFromInput() []Unit {
	if opt.Input == "" {
		log.Fatalf("Input was not provided.")
	}

	_, err := os.Stat(opt.Input)
	if os.IsNotExist(err) {
		return opt.unitsFromFlagInput()
	}
	return opt.unitsFromFileInput()
}
