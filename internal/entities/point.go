package entities

import (
	"errors"
	"fmt"
	"math"
)

const (
	CoordinateMin = 0.0
	CoordinateMax = 100.0
)

var ErrCoordinateOutOfRange = errors.New("coordinate out of range")

// Point - точка на карте города. Значение валидируется при создании,
// после этого неизменяемо.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) (Point, error) {
	if x < CoordinateMin || x > CoordinateMax {
		return Point{}, fmt.Errorf("x=%v must be in [%v, %v]: %w", x, CoordinateMin, CoordinateMax, ErrCoordinateOutOfRange)
	}
	if y < CoordinateMin || y > CoordinateMax {
		return Point{}, fmt.Errorf("y=%v must be in [%v, %v]: %w", y, CoordinateMin, CoordinateMax, ErrCoordinateOutOfRange)
	}
	return Point{X: x, Y: y}, nil
}

// DistanceTo возвращает евклидово расстояние до другой точки.
func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
