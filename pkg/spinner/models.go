package spinner

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

var spinners = map[string]spinner.Spinner{
	"meter":     spinner.Meter,
	"line":      spinner.Line,
	"pulse":     spinner.Pulse,
	"ellipsis":  spinner.Ellipsis,
	"jump":      spinner.Jump,
	"points":    spinner.Points,
	"globe":     spinner.Globe,
	"hamburger": spinner.Hamburger,
	"minidot":   spinner.MiniDot,
	"monkey":    spinner.Monkey,
	"moon":      spinner.Moon,
	"dot": {
		Frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"},
		FPS:    time.Second / 10,
	},
}

func validateSpinnerModel(model string) spinner.Spinner {
	if s, ok := spinners[model]; ok {
		return s
	}
	return spinners["dot"]
}
