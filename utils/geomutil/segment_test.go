package geomutil_test

import (
	"testing"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/roadsim-oss/utils/geomutil"
)

func pt(x, y float64) geometry.Point {
	return geometry.Point{X: x, Y: y}
}

func TestSegmentsIntersect(t *testing.T) {
	// crossing at (5, 0)
	assert.True(t, geomutil.SegmentsIntersect(
		pt(0, 0), pt(10, 0),
		pt(5, -5), pt(5, 5),
	))

	// lines cross but outside the second segment's bounds
	assert.False(t, geomutil.SegmentsIntersect(
		pt(0, 0), pt(10, 0),
		pt(5, 1), pt(5, 5),
	))

	// lines cross but outside the first segment's bounds
	assert.False(t, geomutil.SegmentsIntersect(
		pt(0, 0), pt(4, 0),
		pt(5, -5), pt(5, 5),
	))

	// touching at a shared endpoint counts as a hit (t = 1, u = 0)
	assert.True(t, geomutil.SegmentsIntersect(
		pt(0, 0), pt(5, 0),
		pt(5, 0), pt(5, 5),
	))
}

func TestSegmentsIntersectParallel(t *testing.T) {
	// parallel, disjoint
	assert.False(t, geomutil.SegmentsIntersect(
		pt(0, 0), pt(10, 0),
		pt(0, 1), pt(10, 1),
	))

	// collinear and overlapping: reported as non-intersecting by contract
	assert.False(t, geomutil.SegmentsIntersect(
		pt(0, 0), pt(10, 0),
		pt(5, 0), pt(15, 0),
	))
}
