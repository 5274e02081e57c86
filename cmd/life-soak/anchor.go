package main

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// parseAnchor reads an "x,y" cell coordinate.
func parseAnchor(s string) (image.Point, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return image.Point{}, fmt.Errorf("glider anchor %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return image.Point{}, fmt.Errorf("glider anchor %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return image.Point{}, fmt.Errorf("glider anchor %q: %w", s, err)
	}
	return image.Pt(x, y), nil
}
