package pipeline

import (
	"time"

	"github.com/fatih/color"
)

// Reporter receives stage progress.
type Reporter interface {
	StageStarted(name string)
	StageFinished(res Result)
	StageFailed(name string, err error)
}

type nopReporter struct{}

func (nopReporter) StageStarted(string)       {}
func (nopReporter) StageFinished(Result)      {}
func (nopReporter) StageFailed(string, error) {}

// ConsoleReporter prints colored progress lines.
type ConsoleReporter struct{}

func (ConsoleReporter) StageStarted(name string) {
	color.Cyan("  📝 Generating %s...", name)
}

func (ConsoleReporter) StageFinished(res Result) {
	color.Green("  ✅ %s: %d rows in %s", res.Stage, res.Rows, res.Elapsed.Round(time.Millisecond))
}

func (ConsoleReporter) StageFailed(name string, err error) {
	color.Red("  ❌ %s failed: %v", name, err)
}
