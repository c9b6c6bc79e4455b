package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/regatta/internal/race"
)

const trackWidth = 60

type TickMsg time.Time

// Model steps a race one day per tick and renders both fleets' progress.
// The simulation is advanced only from Update, so no locking is needed.
type Model struct {
	cfg    race.Config
	src    race.WeatherSource
	wind   *race.Fleet
	solar  *race.Fleet
	paired bool
	fps    int

	day     int
	running bool
	done    bool
	err     error

	windMeans  []float64
	solarMeans []float64
}

func NewModel(cfg race.Config, src race.WeatherSource, n int, paired bool, fps int) (Model, error) {
	wind, err := race.NewFleet(race.WindOnly, n, cfg)
	if err != nil {
		return Model{}, err
	}
	solar, err := race.NewFleet(race.WindSolar, n, cfg)
	if err != nil {
		return Model{}, err
	}
	if fps <= 0 {
		fps = 10
	}
	return Model{
		cfg:        cfg,
		src:        src,
		wind:       wind,
		solar:      solar,
		paired:     paired,
		fps:        fps,
		running:    true,
		windMeans:  []float64{0},
		solarMeans: []float64{0},
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.running {
			return m, m.tick()
		}

		if m.paired {
			ws := m.src.DrawN(m.wind.Size())
			if err := m.wind.AdvanceShared(ws); err != nil {
				m.err = err
				return m, tea.Quit
			}
			if err := m.solar.AdvanceShared(ws); err != nil {
				m.err = err
				return m, tea.Quit
			}
		} else {
			m.wind.Advance(m.src)
			m.solar.Advance(m.src)
		}
		m.day++

		m.windMeans = append(m.windMeans, fleetMean(m.wind))
		m.solarMeans = append(m.solarMeans, fleetMean(m.solar))

		if m.wind.AllArrived() && m.solar.AllArrived() {
			m.done = true
			return m, nil
		}
		if m.cfg.MaxDays > 0 && m.day >= m.cfg.MaxDays {
			m.err = race.ErrNoFinish
			m.done = true
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	mode := "independent weather"
	if m.paired {
		mode = "shared weather"
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("regatta · %s · day %d", mode, m.day)))
	b.WriteString("\n")

	b.WriteString(m.fleetLine("wind only", m.wind, windStyle))
	b.WriteString(m.fleetLine("wind+solar", m.solar, solarStyle))

	if len(m.windMeans) > 1 {
		b.WriteString("\n")
		b.WriteString(PlotCompare(m.windMeans, m.solarMeans, "mean distance per day"))
		b.WriteString("\n")
	}

	if m.done {
		if m.err != nil {
			b.WriteString(doneStyle.Render(fmt.Sprintf("stopped: %v", m.err)))
		} else {
			b.WriteString(doneStyle.Render(fmt.Sprintf("all boats arrived after %d days", m.day)))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) fleetLine(name string, f *race.Fleet, style lipgloss.Style) string {
	mean := fleetMean(f)
	frac := mean / float64(m.cfg.Finish)
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * trackWidth)

	arrived := 0
	for _, b := range f.Boats() {
		if b.Arrived() {
			arrived++
		}
	}

	bar := style.Render(strings.Repeat("█", filled)) +
		trackStyle.Render(strings.Repeat("░", trackWidth-filled))

	return labelStyle.Render(name) + bar + " " +
		valueStyle.Render(fmt.Sprintf("%4.0f/%d · %d/%d arrived", mean, m.cfg.Finish, arrived, f.Size())) + "\n"
}

func fleetMean(f *race.Fleet) float64 {
	if f.Size() == 0 {
		return 0
	}
	sum := 0
	for _, b := range f.Boats() {
		sum += b.Position()
	}
	return float64(sum) / float64(f.Size())
}
