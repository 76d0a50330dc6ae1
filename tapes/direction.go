package tapes

import (
	"fmt"
	"strings"
)

type Direction int

const (
	NoMove Direction = iota
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	case NoMove:
		return "N"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func ParseDirection(str string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "l", "left", "<":
		return Left, nil
	case "r", "right", ">":
		return Right, nil
	case "n", "none", "nomove", "no-move", "stay", "-":
		return NoMove, nil
	}
	return NoMove, fmt.Errorf("invalid direction: %q", str)
}
