package components

import (
	"strings"
	"testing"

	"github.com/rgehrsitz/mpgo/internal/tui/tuistyles"
)

func TestASCIIChart_Render(t *testing.T) {
	chart := NewASCIIChart("Balances").
		AddSeries("Loan balance", []float64{100000, 50000, 0}, tuistyles.ColorChartLoan).
		AddSeries("Investments", []float64{0, 60000, 130000}, tuistyles.ColorChartInvestment).
		WithLabels([]string{"1", "2", "3"}).
		WithXAxisLabel("Year")

	output := chart.Render()

	if !strings.Contains(output, "Balances") {
		t.Error("Expected chart title in output")
	}
	if !strings.Contains(output, "●") || !strings.Contains(output, "■") {
		t.Error("Expected both series markers in output")
	}
	if !strings.Contains(output, "│") || !strings.Contains(output, "└") {
		t.Error("Expected axis frame in output")
	}
	if !strings.Contains(output, "Legend:") {
		t.Error("Expected legend for a multi-series chart")
	}
	if !strings.Contains(output, "Loan balance") || !strings.Contains(output, "Investments") {
		t.Error("Expected series names in legend")
	}
	if !strings.Contains(output, "Year") {
		t.Error("Expected X-axis caption in output")
	}
}

func TestASCIIChart_RenderEmpty(t *testing.T) {
	output := NewASCIIChart("Empty").Render()

	if !strings.Contains(output, "No data to display") {
		t.Errorf("Expected empty-state message, got %q", output)
	}
}

func TestASCIIChart_NonnegativeFloorClampsAtZero(t *testing.T) {
	chart := NewASCIIChart("").
		AddSeries("Loan balance", []float64{100, 50, 0}, tuistyles.ColorChartLoan)

	output := chart.Render()

	if !strings.Contains(output, "$0") {
		t.Error("Expected the Y axis floor at $0 for nonnegative data")
	}
	if strings.Contains(output, "-$") {
		t.Error("Expected no negative Y-axis label for nonnegative data")
	}
}

func TestASCIIChart_FlatSeries(t *testing.T) {
	chart := NewASCIIChart("").
		AddSeries("Investments", []float64{55, 55, 55}, tuistyles.ColorChartInvestment)

	output := chart.Render()

	if output == "" {
		t.Fatal("Expected output for a flat series")
	}
	if !strings.Contains(output, "●") {
		t.Error("Expected the series marker for a flat series")
	}
}

func TestASCIIChart_SinglePoint(t *testing.T) {
	chart := NewASCIIChart("").
		AddSeries("Loan balance", []float64{42000}, tuistyles.ColorChartLoan)

	output := chart.Render()

	if !strings.Contains(output, "●") {
		t.Error("Expected a marker for a single-point series")
	}
}

func TestASCIIChart_NoLegendForSingleSeries(t *testing.T) {
	chart := NewASCIIChart("").
		AddSeries("Loan balance", []float64{10, 5}, tuistyles.ColorChartLoan)

	output := chart.Render()

	if strings.Contains(output, "Legend:") {
		t.Error("Expected no legend for a single series")
	}
}
