// Package calc implements the paint-quantity calculator and the color
// visualizer used by the storefront tools.
package calc

import (
	"errors"
	"math"
)

// DefaultCoverage is square meters covered per liter of paint per coat.
const DefaultCoverage = 10.0

// PaintInput describes one wall job: dimensions in meters, openings
// (doors/windows) subtracted from the paintable area.
type PaintInput struct {
	WallWidth    float64 `json:"wallWidth"`
	WallHeight   float64 `json:"wallHeight"`
	Walls        int     `json:"walls"`
	OpeningsArea float64 `json:"openingsArea"`
	Coats        int     `json:"coats"`
	Coverage     float64 `json:"coverage"`   // m² per liter, 0 means default
	CanSizeL     float64 `json:"canSize"`    // liters per can, 0 means 4 L
}

type PaintResult struct {
	Area   float64 `json:"area"`   // paintable m², openings removed
	Liters float64 `json:"liters"` // exact liters needed
	Cans   int     `json:"cans"`   // whole cans to buy
}

// PaintQuantity computes how much paint a job needs. Openings never push
// the area below zero; liters are rounded up to a tenth, cans to a whole.
func PaintQuantity(in PaintInput) (PaintResult, error) {
	if in.WallWidth <= 0 || in.WallHeight <= 0 {
		return PaintResult{}, errors.New("wall dimensions must be positive")
	}
	if in.Walls < 1 {
		in.Walls = 1
	}
	if in.Coats < 1 {
		in.Coats = 1
	}
	if in.Coverage <= 0 {
		in.Coverage = DefaultCoverage
	}
	if in.CanSizeL <= 0 {
		in.CanSizeL = 4
	}

	area := in.WallWidth*in.WallHeight*float64(in.Walls) - in.OpeningsArea
	if area < 0 {
		area = 0
	}

	liters := area * float64(in.Coats) / in.Coverage
	liters = math.Ceil(liters*10) / 10
	cans := int(math.Ceil(liters / in.CanSizeL))

	return PaintResult{Area: area, Liters: liters, Cans: cans}, nil
}
