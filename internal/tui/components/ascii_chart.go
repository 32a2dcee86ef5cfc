package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mpgo/internal/tui/tuistyles"
)

// DataSeries is a single line in a chart.
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart plots one or more series as a character-grid line chart. It is
// how the TUI visualizes the loan balance running down while the investment
// balance compounds up.
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Labels     []string // X-axis labels, one per point
	Width      int
	Height     int
	ShowLegend bool
	XAxisLabel string
}

// NewASCIIChart creates a chart with default dimensions.
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Width:      72,
		Height:     16,
		ShowLegend: true,
	}
}

// AddSeries appends a data series.
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// WithLabels sets the X-axis labels.
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions.
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	if width > 20 {
		c.Width = width
	}
	if height > 4 {
		c.Height = height
	}
	return c
}

// WithXAxisLabel sets the X-axis caption.
func (c *ASCIIChart) WithXAxisLabel(label string) *ASCIIChart {
	c.XAxisLabel = label
	return c
}

// Render returns the styled chart.
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder

	if c.Title != "" {
		content.WriteString(tuistyles.TitleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	minVal, maxVal := c.bounds()
	content.WriteString(c.renderGrid(minVal, maxVal))

	if c.XAxisLabel != "" {
		content.WriteString("\n")
		content.WriteString(tuistyles.SubtitleStyle.Render(c.XAxisLabel))
	}

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

// bounds finds the plotted value range across all series, padded upward so
// the top line never clips. The floor is not padded below zero when every
// point is nonnegative, since balances live on a dollar axis.
func (c *ASCIIChart) bounds() (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)

	for _, series := range c.Series {
		for _, point := range series.Points {
			minVal = math.Min(minVal, point)
			maxVal = math.Max(maxVal, point)
		}
	}
	if minVal > maxVal {
		return 0, 0
	}

	padding := (maxVal - minVal) * 0.1
	padded := minVal - padding
	if minVal >= 0 && padded < 0 {
		padded = 0
	}
	return padded, maxVal + padding
}

// renderGrid renders the plot area with the Y-axis scale.
func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := c.yAxisWidth(minVal, maxVal)
	chartWidth := c.Width - yAxisWidth - 3
	if chartWidth < 10 {
		chartWidth = 10
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for seriesIdx, series := range c.Series {
		c.plotSeries(grid, series.Points, seriesChar(seriesIdx), minVal, maxVal)
	}

	yAxisStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Width(yAxisWidth).
		Align(lipgloss.Right)

	var output strings.Builder
	valueRange := maxVal - minVal
	for i, row := range grid {
		yValue := maxVal
		if c.Height > 1 {
			yValue = maxVal - float64(i)/float64(c.Height-1)*valueRange
		}
		output.WriteString(yAxisStyle.Render(tuistyles.FormatCurrencyShort(yValue)))
		output.WriteString(" │ ")
		output.WriteString(string(row))
		output.WriteString("\n")
	}

	output.WriteString(strings.Repeat(" ", yAxisWidth))
	output.WriteString(" └")
	output.WriteString(strings.Repeat("─", chartWidth))

	if labels := c.renderXAxisLabels(yAxisWidth, chartWidth); labels != "" {
		output.WriteString("\n")
		output.WriteString(labels)
	}

	return output.String()
}

// plotSeries maps each point to a grid cell and connects neighbors.
func (c *ASCIIChart) plotSeries(grid [][]rune, points []float64, char rune, minVal, maxVal float64) {
	if len(points) == 0 {
		return
	}
	chartWidth := len(grid[0])

	prevX, prevY := -1, -1
	for i, point := range points {
		x := 0
		if len(points) > 1 {
			x = int(float64(i) / float64(len(points)-1) * float64(chartWidth-1))
		}
		y := c.rowFor(point, minVal, maxVal)

		if x >= 0 && x < chartWidth && y >= 0 && y < c.Height {
			grid[y][x] = char
		}
		if prevX >= 0 {
			drawSegment(grid, prevX, prevY, x, y, char)
		}
		prevX, prevY = x, y
	}
}

// rowFor converts a value to a grid row. A flat range lands mid-chart.
func (c *ASCIIChart) rowFor(point, minVal, maxVal float64) int {
	if maxVal <= minVal {
		return c.Height / 2
	}
	return c.Height - 1 - int((point-minVal)/(maxVal-minVal)*float64(c.Height-1))
}

// yAxisWidth sizes the scale column to its widest label.
func (c *ASCIIChart) yAxisWidth(minVal, maxVal float64) int {
	width := len(tuistyles.FormatCurrencyShort(maxVal))
	if w := len(tuistyles.FormatCurrencyShort(minVal)); w > width {
		width = w
	}
	if width < 6 {
		width = 6
	}
	return width
}

// seriesChar picks the marker for a series by index.
func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// drawSegment connects two cells with Bresenham's line algorithm, never
// overwriting an existing marker.
func drawSegment(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx := intAbs(x1 - x0)
	dy := intAbs(y1 - y0)

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
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) && grid[y][x] == ' ' {
			grid[y][x] = char
		}
		if x == x1 && y == y1 {
			return
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

// renderXAxisLabels anchors up to five labels across the axis.
func (c *ASCIIChart) renderXAxisLabels(yAxisWidth, chartWidth int) string {
	if len(c.Labels) == 0 {
		return ""
	}

	row := make([]byte, chartWidth)
	for i := range row {
		row[i] = ' '
	}

	anchors := 5
	if len(c.Labels) < anchors {
		anchors = len(c.Labels)
	}
	for a := 0; a < anchors; a++ {
		idx := 0
		pos := 0
		if anchors > 1 {
			idx = a * (len(c.Labels) - 1) / (anchors - 1)
			pos = a * (chartWidth - 1) / (anchors - 1)
		}
		label := c.Labels[idx]
		if pos+len(label) > chartWidth {
			pos = chartWidth - len(label)
		}
		if pos < 0 {
			continue
		}
		copy(row[pos:], label)
	}

	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	return strings.Repeat(" ", yAxisWidth+3) + labelStyle.Render(string(row))
}

// renderLegend lists each series with its marker.
func (c *ASCIIChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(seriesChar(i)))
		name := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(series.Name)
		items = append(items, symbol+" "+name)
	}
	return tuistyles.HelpStyle.Render("Legend: " + strings.Join(items, " • "))
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
