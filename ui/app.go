package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CodedInternet/golinact/protocol"
)

const (
	// MAX_SPEED is the full range of the 16 bit speed field in the wire format.
	MAX_SPEED = 65535

	SPEED_STEP      = 1000
	SPEED_STEP_FAST = 5000

	// tickInterval bounds the input poll so the display refreshes even when
	// the operator is idle.
	tickInterval = 100 * time.Millisecond
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the view-model of the controller. It exclusively owns all operator
// facing state; the background tasks only ever produce into the status and
// telemetry queues it drains each tick.
type Model struct {
	speed     int
	direction protocol.Direction
	actuator  protocol.Actuator
	status    string
	lenMeters float64

	cmds      chan<- protocol.Command
	statusCh  <-chan string
	telemetry <-chan float64

	keys     keyMap
	help     help.Model
	quitting bool
}

func NewModel(cmds chan<- protocol.Command, statusCh <-chan string, telemetry <-chan float64) Model {
	h := help.New()
	h.ShowAll = true

	return Model{
		direction: protocol.DIR_FORWARD,
		actuator:  protocol.ACTUATOR_M1,
		status:    "Ready",
		cmds:      cmds,
		statusCh:  statusCh,
		telemetry: telemetry,
		keys:      defaultKeyMap(),
		help:      h,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// drain at most one of each per tick; rendering follows on return
		select {
		case s := <-m.statusCh:
			m.status = s
		default:
		}
		select {
		case v := <-m.telemetry:
			m.lenMeters = v
		default:
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Faster):
		m.speed = clampSpeed(m.speed + SPEED_STEP)
		m.enqueue(protocol.SetSpeed{Speed: uint16(m.speed), Actuator: m.actuator})

	case key.Matches(msg, m.keys.Slower):
		m.speed = clampSpeed(m.speed - SPEED_STEP)
		m.enqueue(protocol.SetSpeed{Speed: uint16(m.speed), Actuator: m.actuator})

	case key.Matches(msg, m.keys.Boost):
		m.speed = clampSpeed(m.speed + SPEED_STEP_FAST)
		m.enqueue(protocol.SetSpeed{Speed: uint16(m.speed), Actuator: m.actuator})

	case key.Matches(msg, m.keys.Brake):
		m.speed = clampSpeed(m.speed - SPEED_STEP_FAST)
		m.enqueue(protocol.SetSpeed{Speed: uint16(m.speed), Actuator: m.actuator})

	case key.Matches(msg, m.keys.Stop):
		m.speed = 0
		m.enqueue(protocol.SetSpeed{Speed: 0, Actuator: m.actuator})

	case key.Matches(msg, m.keys.Backward):
		m.direction = protocol.DIR_BACKWARD
		m.enqueue(protocol.SetDirection{Direction: protocol.DIR_BACKWARD, Actuator: m.actuator})

	case key.Matches(msg, m.keys.Forward):
		m.direction = protocol.DIR_FORWARD
		m.enqueue(protocol.SetDirection{Direction: protocol.DIR_FORWARD, Actuator: m.actuator})

	case key.Matches(msg, m.keys.Switch):
		// stop the outgoing actuator before handing control to the other one
		m.speed = 0
		m.enqueue(protocol.SetSpeed{Speed: 0, Actuator: m.actuator})
		m.actuator = m.actuator.Other()
		m.status = fmt.Sprintf("Switched to %s", m.actuator)
	}

	return m, nil
}

// enqueue hands a command to the dispatcher without ever stalling the render
// loop; a full queue drops the command.
func (m Model) enqueue(cmd protocol.Command) {
	select {
	case m.cmds <- cmd:
	default:
	}
}

func clampSpeed(speed int) int {
	if speed > MAX_SPEED {
		return MAX_SPEED
	}
	if speed < 0 {
		return 0
	}
	return speed
}
