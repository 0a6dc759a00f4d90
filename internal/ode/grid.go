package ode

// Linspace returns n points evenly spaced over [start, stop], both
// endpoints included. The spacing is (stop-start)/(n-1); with n == 1 the
// single point is start. n <= 0 yields an empty grid.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	grid := make([]float64, n)
	if n == 1 {
		grid[0] = start
		return grid
	}
	step := (stop - start) / float64(n-1)
	for i := range grid {
		grid[i] = start + float64(i)*step
	}
	grid[n-1] = stop
	return grid
}
