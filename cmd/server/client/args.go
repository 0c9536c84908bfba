package client

import (
	"fmt"
	"strconv"
	"strings"

	gardenv1alpha1 "github.com/KirkDiggler/garden-api/internal/api/garden/v1alpha1"
	"github.com/KirkDiggler/garden-api/internal/entities/garden"
)

// parsePos reads "row,col"
func parsePos(s string) (gardenv1alpha1.Pos, error) {
	row, col, err := splitPair(s)
	if err != nil {
		return gardenv1alpha1.Pos{}, fmt.Errorf("invalid position %q: want row,col", s)
	}
	r, errR := strconv.Atoi(row)
	c, errC := strconv.Atoi(col)
	if errR != nil || errC != nil {
		return gardenv1alpha1.Pos{}, fmt.Errorf("invalid position %q: want row,col", s)
	}
	return gardenv1alpha1.Pos{Row: r, Col: c}, nil
}

// parsePoint reads "x,y" in field units
func parsePoint(s string) (gardenv1alpha1.Point, error) {
	xs, ys, err := splitPair(s)
	if err != nil {
		return gardenv1alpha1.Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, errX := strconv.ParseFloat(xs, 64)
	y, errY := strconv.ParseFloat(ys, 64)
	if errX != nil || errY != nil {
		return gardenv1alpha1.Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	return gardenv1alpha1.Point{X: x, Y: y}, nil
}

func splitPair(s string) (string, string, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("want two comma separated values")
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// resolveLevel accepts a numeric level or a species name, tolerating typos
func resolveLevel(arg string, suggest func(string) (int, bool)) (int, error) {
	if level, err := strconv.Atoi(strings.TrimSpace(arg)); err == nil {
		return level, nil
	}
	level, ok := suggest(arg)
	if !ok {
		return 0, fmt.Errorf("unknown species %q", arg)
	}
	return level, nil
}

func resolveTreeLevel(arg string) (int, error) {
	return resolveLevel(arg, garden.SuggestTreeLevel)
}

func resolveFruitLevel(arg string) (int, error) {
	return resolveLevel(arg, garden.SuggestFruitLevel)
}
