package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/colorwheel"
)

// parsePoints parses "x,y;x,y;..." into canvas positions.
// An empty string yields no points.
func parsePoints(s string) ([]colorwheel.Vector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var points []colorwheel.Vector
	for i, pair := range strings.Split(s, ";") {
		xs, ys, ok := strings.Cut(strings.TrimSpace(pair), ",")
		if !ok {
			return nil, fmt.Errorf("point %d: %q is not x,y", i, pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points = append(points, colorwheel.Vec(x, y))
	}
	return points, nil
}
