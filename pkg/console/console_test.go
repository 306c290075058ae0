package console

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestTableRender(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	table := NewConsole().CreateTable()
	table.AddColumn("Case")
	table.AddColumn("Total")
	table.AddRow("Current", 1865.66)
	table.AddRow("Typical HP Install", "£1,496.40")

	out := table.Render()
	assert.Contains(t, out, "Case")
	assert.Contains(t, out, "Current")
	assert.Contains(t, out, "1865.66")
	assert.Contains(t, out, "£1,496.40")
}

func TestPrinterThousands(t *testing.T) {
	c := NewConsole()
	assert.Equal(t, "12,000", c.printer.Sprintf("%.0f", 12000.0))
}
