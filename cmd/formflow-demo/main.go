// Command formflow-demo runs a small contact form: wrapped intro text,
// three validated fields, and a clear button, laid out by formflow inside
// a scrollable terminal view.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"formflow"
	"formflow/tuikit"
)

type config struct {
	Theme    string `mapstructure:"theme"`
	RowWidth int    `mapstructure:"row_width"`
	LogFile  string `mapstructure:"log_file"`
}

// loadConfig reads defaults, an optional TOML file, and FORMFLOW_* env
// overrides.
func loadConfig() (config, error) {
	v := viper.New()
	v.SetDefault("theme", "dark")
	v.SetDefault("row_width", 72)
	v.SetDefault("log_file", "")

	v.SetConfigType("toml")
	if p := os.Getenv("FORMFLOW_CONFIG"); p != "" {
		v.SetConfigFile(p)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "formflow"))
		v.SetConfigName("config")
	}
	v.SetEnvPrefix("FORMFLOW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.ReadInConfig() // config file is optional

	var c config
	if err := v.Unmarshal(&c); err != nil {
		return config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// demoDelegate logs validity changes and ends editing once the form is
// fully valid.
type demoDelegate struct{}

func (demoDelegate) ValidationChanged(allValid bool) {
	log.Printf("validation changed: allValid=%v", allValid)
}

func (demoDelegate) DoneRequested(allValid bool) bool {
	log.Printf("done requested: allValid=%v", allValid)
	return allValid
}

// use adapts an existing field to a FieldFactory, so the demo keeps a
// reference to it after the builder appends it.
func use(f *tuikit.Field) formflow.FieldFactory {
	return func() formflow.FieldHandle { return f }
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "formflow")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard) // no log file configured; keep stdout clean
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	if cfg.RowWidth > 0 && width > cfg.RowWidth {
		width = cfg.RowWidth
	}

	theme := tuikit.ThemeByName(cfg.Theme)
	view := tuikit.NewScrollView(width, height-1)
	labels := tuikit.Labels(theme)

	name := tuikit.NewField(theme).Placeholder("name").Width(24)
	email := tuikit.NewField(theme).Placeholder("you@example.com").Width(28)
	age := tuikit.NewField(theme).Placeholder("age").Width(6)
	clear := tuikit.NewButton(theme, "Clear")

	b := formflow.NewBuilder(view, formflow.Metrics{
		RowWidth:   width,
		RowHeight:  1,
		FieldWidth: 24,
	}, demoDelegate{})

	b.AddLabel(labels, "Before we begin, tell us a little about yourself so we can tailor the narration to you.").
		AddLabel(labels, "Name").
		AddField(use(name), formflow.Check(formflow.VRequired)).
		AddLabel(labels, "Email").
		AddField(use(email), formflow.Check(formflow.VRequired, formflow.VEmail)).
		AddLabel(labels, "Age").
		AddField(use(age), formflow.Check(formflow.VNumber)).
		AddButton(func() formflow.ButtonHandle { return clear }, func() {
			name.SetValue("")
			email.SetValue("")
			age.SetValue("")
		})
	b.Commit()

	m := tuikit.NewModel(b, view, theme)
	m.FocusFirst()

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
