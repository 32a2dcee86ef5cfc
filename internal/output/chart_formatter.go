package output

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/rgehrsitz/mpgo/internal/domain"
)

// ChartFormatter plots loan balance against investment balance for each
// scenario as a plain text line chart, one chart per scenario.
type ChartFormatter struct{}

func (c ChartFormatter) Name() string { return "chart" }

const (
	chartWidth  = 64
	chartHeight = 14
	yAxisWidth  = 9
)

func (c ChartFormatter) Format(results *domain.ProjectionSet) ([]byte, error) {
	var buf bytes.Buffer
	for i, sc := range results.Scenarios {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		fmt.Fprintf(&buf, "%s: loan balance (*) vs investments (+)\n", sc.Name)
		renderBalanceChart(&buf, sc.Years)
	}
	return buf.Bytes(), nil
}

// renderBalanceChart draws both balance series on a shared grid.
func renderBalanceChart(buf *bytes.Buffer, years []domain.YearRecord) {
	if len(years) == 0 {
		fmt.Fprintln(buf, "  (no data)")
		return
	}

	loan := make([]float64, len(years))
	invest := make([]float64, len(years))
	for i, yr := range years {
		loan[i] = yr.LoanBalance.InexactFloat64()
		invest[i] = yr.InvestmentBalance.InexactFloat64()
	}

	minVal, maxVal := chartBounds(loan, invest)
	grid := make([][]rune, chartHeight)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	plotSeries(grid, loan, minVal, maxVal, '*')
	plotSeries(grid, invest, minVal, maxVal, '+')

	valueRange := maxVal - minVal
	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(chartHeight-1))*valueRange
		fmt.Fprintf(buf, "%*s | %s\n", yAxisWidth, formatChartValue(yValue), string(row))
	}
	fmt.Fprintf(buf, "%s +%s\n", strings.Repeat(" ", yAxisWidth), strings.Repeat("-", chartWidth))
	fmt.Fprintf(buf, "%s  year 1 to year %d\n", strings.Repeat(" ", yAxisWidth), len(years))
}

// chartBounds finds the plot range across all series with 10% padding.
func chartBounds(series ...[]float64) (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, points := range series {
		for _, p := range points {
			if p < minVal {
				minVal = p
			}
			if p > maxVal {
				maxVal = p
			}
		}
	}
	padding := (maxVal - minVal) * 0.1
	return minVal - padding, maxVal + padding
}

// plotSeries maps each point onto the grid and connects consecutive points
// with a line. Occupied cells are left alone so overlapping series stay
// distinguishable.
func plotSeries(grid [][]rune, points []float64, minVal, maxVal float64, ch rune) {
	if len(points) == 0 {
		return
	}
	height := len(grid)
	width := len(grid[0])
	span := maxVal - minVal
	if span == 0 {
		span = 1
	}

	prevX, prevY := -1, -1
	for i, point := range points {
		x := 0
		if len(points) > 1 {
			x = int(float64(i) / float64(len(points)-1) * float64(width-1))
		}
		y := height - 1 - int((point-minVal)/span*float64(height-1))
		if y < 0 {
			y = 0
		}
		if y >= height {
			y = height - 1
		}
		grid[y][x] = ch
		if prevX >= 0 {
			drawLine(grid, prevX, prevY, x, y, ch)
		}
		prevX, prevY = x, y
	}
}

// drawLine draws a simple line between two points using Bresenham's algorithm.
func drawLine(grid [][]rune, x0, y0, x1, y1 int, ch rune) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0

	for {
		if x >= 0 && x < len(grid[0]) && y >= 0 && y < len(grid) {
			if grid[y][x] == ' ' {
				grid[y][x] = ch
			}
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// formatChartValue formats a value for display on the Y-axis.
func formatChartValue(value float64) string {
	if math.Abs(value) >= 1000000 {
		return fmt.Sprintf("$%.1fM", value/1000000)
	} else if math.Abs(value) >= 1000 {
		return fmt.Sprintf("$%.0fK", value/1000)
	}
	return fmt.Sprintf("$%.0f", value)
}

// abs returns absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
