package zplane

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Step is one line of an event script: an Event, or Ticks frame advances.
type Step struct {
	Event Event
	Ticks int
}

// Apply runs the step against s.
func (st Step) Apply(s *Session) {
	if st.Ticks > 0 {
		for range st.Ticks {
			s.Tick()
		}
		return
	}
	s.HandleEvent(st.Event)
}

var (
	errArgCount = errors.New("wrong number of arguments")
	errVerb     = errors.New("unknown verb")
	errKeyName  = errors.New("unknown key")
	errButton   = errors.New("unknown button")
)

// ParseScript reads an event script. Each non-empty line not starting with
// '#' is one of:
//
//	down X Y [left|right|middle]
//	move X Y
//	up X Y [left|right|middle]
//	key NAME      (clear, derivative, up, down, left, right)
//	keyup NAME
//	resize W H
//	tick [N]
func ParseScript(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		st, err := parseStep(strings.Fields(text))
		if err != nil {
			return nil, &ScriptError{Line: line, Text: text, Err: err}
		}
		steps = append(steps, st)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("zplane: read script: %w", err)
	}
	return steps, nil
}

// Replay parses a script and applies every step to s.
func Replay(s *Session, r io.Reader) error {
	steps, err := ParseScript(r)
	if err != nil {
		return err
	}
	for _, st := range steps {
		st.Apply(s)
	}
	return nil
}

func parseStep(f []string) (Step, error) {
	verb, args := f[0], f[1:]
	switch verb {
	case "down", "up":
		if len(args) != 2 && len(args) != 3 {
			return Step{}, errArgCount
		}
		x, y, err := parseXY(args)
		if err != nil {
			return Step{}, err
		}
		b := ButtonLeft
		if len(args) == 3 {
			if b, err = parseButton(args[2]); err != nil {
				return Step{}, err
			}
		}
		if verb == "down" {
			return Step{Event: PointerDownEvent(x, y, b)}, nil
		}
		return Step{Event: PointerUpEvent(x, y, b)}, nil
	case "move", "resize":
		if len(args) != 2 {
			return Step{}, errArgCount
		}
		x, y, err := parseXY(args)
		if err != nil {
			return Step{}, err
		}
		if verb == "move" {
			return Step{Event: PointerMoveEvent(x, y)}, nil
		}
		return Step{Event: ResizeEvent(x, y)}, nil
	case "key", "keyup":
		if len(args) != 1 {
			return Step{}, errArgCount
		}
		k, ok := ParseKey(args[0])
		if !ok {
			return Step{}, fmt.Errorf("%w %q", errKeyName, args[0])
		}
		if verb == "key" {
			return Step{Event: KeyDownEvent(k)}, nil
		}
		return Step{Event: KeyUpEvent(k)}, nil
	case "tick":
		switch len(args) {
		case 0:
			return Step{Ticks: 1}, nil
		case 1:
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return Step{}, fmt.Errorf("bad tick count %q", args[0])
			}
			return Step{Ticks: n}, nil
		}
		return Step{}, errArgCount
	}
	return Step{}, fmt.Errorf("%w %q", errVerb, verb)
}

func parseXY(args []string) (x, y int, err error) {
	if x, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, err
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func parseButton(s string) (Button, error) {
	switch s {
	case "left":
		return ButtonLeft, nil
	case "right":
		return ButtonRight, nil
	case "middle":
		return ButtonMiddle, nil
	}
	return 0, fmt.Errorf("%w %q", errButton, s)
}
