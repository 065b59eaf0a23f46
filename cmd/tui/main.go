package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Colors for modern design
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	surfaceColor   = lipgloss.Color("#1F2937") // Dark gray
	textColor      = lipgloss.Color("#F3F4F6") // Light gray
	mutedColor     = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor    = lipgloss.Color("#374151") // Border gray
)

// Styles
var (
	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Align(lipgloss.Center)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	metricValueStyle = lipgloss.NewStyle().
				Foreground(secondaryColor).
				Bold(true)

	metricLabelStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	barStyle = lipgloss.NewStyle().
			Foreground(accentColor)
)

// GenomeRow is one parsed line of an astur results TSV.
type GenomeRow struct {
	Genome        string
	NARSC         float64
	CARSC         float64
	SARSC         float64
	AvgResMW      float64
	AAComposition map[string]float64
	TotalAALength uint64
	HasExtended   bool
}

// parseTSV reads an astur results table. The header row is required so
// extended amino-acid columns can be located by name.
func parseTSV(r io.Reader) ([]GenomeRow, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("empty results file")
	}
	header := strings.Split(scanner.Text(), "\t")
	if len(header) < 5 || header[0] != "File" {
		return nil, fmt.Errorf("not an astur results TSV: run astur without -no-header first")
	}
	extended := len(header) > 5 && header[len(header)-1] == "TotalAALength"

	var rows []GenomeRow
	for scanner.Scan() {
		cols := strings.Split(scanner.Text(), "\t")
		if len(cols) != len(header) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", len(rows)+2, len(header), len(cols))
		}
		row := GenomeRow{Genome: cols[0], HasExtended: extended}
		vals := make([]float64, 4)
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseFloat(cols[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad numeric field %q", len(rows)+2, cols[i+1])
			}
			vals[i] = v
		}
		row.NARSC, row.CARSC, row.SARSC, row.AvgResMW = vals[0], vals[1], vals[2], vals[3]
		if extended {
			row.AAComposition = make(map[string]float64, len(header)-6)
			for i := 5; i < len(header)-1; i++ {
				v, err := strconv.ParseFloat(cols[i], 64)
				if err != nil {
					return nil, fmt.Errorf("row %d: bad composition field %q", len(rows)+2, cols[i])
				}
				row.AAComposition[header[i]] = v
			}
			n, err := strconv.ParseUint(cols[len(cols)-1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad length field %q", len(rows)+2, cols[len(cols)-1])
			}
			row.TotalAALength = n
		}
		rows = append(rows, row)
	}
	return rows, scanner.Err()
}

type listItem struct {
	row GenomeRow
}

func (i listItem) FilterValue() string { return i.row.Genome }

func (i listItem) Title() string { return i.row.Genome }

func (i listItem) Description() string {
	// Metadata line shown below the title in the selector list
	if i.row.HasExtended {
		return fmt.Sprintf("N: %.3f    C: %.3f    AA: %d", i.row.NARSC, i.row.CARSC, i.row.TotalAALength)
	}
	return fmt.Sprintf("N: %.3f    C: %.3f    S: %.3f", i.row.NARSC, i.row.CARSC, i.row.SARSC)
}

type mode int

const (
	modeMetrics mode = iota
	modeComposition
)

func (m mode) String() string {
	switch m {
	case modeMetrics:
		return "Elemental metrics"
	case modeComposition:
		return "AA composition"
	default:
		return "Unknown"
	}
}

type model struct {
	list          list.Model
	rows          []GenomeRow
	currentMode   mode
	showHelp      bool
	width         int
	height        int
	totalRows     int
	selectedIndex int
}

func newModel(rows []GenomeRow) model {
	items := make([]list.Item, len(rows))
	for i, row := range rows {
		items[i] = listItem{row: row}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Genomes"
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	return model{
		list:        l,
		rows:        rows,
		currentMode: modeMetrics,
		totalRows:   len(rows),
	}
}

// cycleMode advances to the next display mode, wrapping around.
func (m model) cycleMode() model {
	if m.currentMode == modeMetrics {
		m.currentMode = modeComposition
	} else {
		m.currentMode = modeMetrics
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// left panel takes 1/3 of width
		listWidth := msg.Width / 3
		listHeight := msg.Height - 4

		m.list.SetWidth(listWidth)
		m.list.SetHeight(listHeight)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "h":
			m.showHelp = !m.showHelp
			return m, nil

		case "tab":
			return m.cycleMode(), nil

		case "1":
			m.currentMode = modeMetrics
			return m, nil

		case "2":
			m.currentMode = modeComposition
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.selectedIndex = m.list.Index()
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpModal()
	}

	leftPanel := m.renderLeftPanel()
	rightPanel := m.renderRightPanel()
	statusBar := m.renderStatusBar()

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		rightPanel,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		statusBar,
	)
}

func (m model) renderLeftPanel() string {
	listWidth := m.width / 3

	return containerStyle.
		Width(listWidth - 2).
		Height(m.height - 4).
		Render(m.list.View())
}

func (m model) renderRightPanel() string {
	rightWidth := (m.width * 2) / 3

	if len(m.rows) == 0 {
		return containerStyle.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No results available")
	}

	selectedItem := m.list.SelectedItem()
	if selectedItem == nil {
		return containerStyle.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No genome selected")
	}

	row := selectedItem.(listItem).row

	header := titleStyle.Render(row.Genome)

	var content string
	switch m.currentMode {
	case modeMetrics:
		content = strings.Join(m.buildMetricLines(row), "\n")
	case modeComposition:
		content = strings.Join(m.buildCompositionLines(row), "\n")
	}

	panelContent := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		content,
	)

	return containerStyle.
		Width(rightWidth - 2).
		Height(m.height - 4).
		Render(panelContent)
}

// buildMetricLines renders the four base metrics for one genome.
func (m model) buildMetricLines(row GenomeRow) []string {
	lines := []string{
		metricLabelStyle.Render("N_ARSC    ") + metricValueStyle.Render(fmt.Sprintf("%10.6f", row.NARSC)),
		metricLabelStyle.Render("C_ARSC    ") + metricValueStyle.Render(fmt.Sprintf("%10.6f", row.CARSC)),
		metricLabelStyle.Render("S_ARSC    ") + metricValueStyle.Render(fmt.Sprintf("%10.6f", row.SARSC)),
		metricLabelStyle.Render("AvgResMW  ") + metricValueStyle.Render(fmt.Sprintf("%10.6f", row.AvgResMW)),
	}
	if row.HasExtended {
		lines = append(lines, "", metricLabelStyle.Render("Length    ")+metricValueStyle.Render(fmt.Sprintf("%10d", row.TotalAALength)))
	}
	return lines
}

// buildCompositionLines renders the per-residue fractions as a bar chart,
// one row per amino acid in column order.
func (m model) buildCompositionLines(row GenomeRow) []string {
	if !row.HasExtended {
		return []string{metricLabelStyle.Render("No composition data: re-run astur with -aa-composition")}
	}
	codes := make([]string, 0, len(row.AAComposition))
	for code := range row.AAComposition {
		codes = append(codes, code)
	}
	// header order is already sorted in the TSV; map iteration is not
	sortStrings(codes)

	barWidth := m.width/3 - 10
	if barWidth < 10 {
		barWidth = 10
	}
	lines := make([]string, 0, len(codes))
	for _, code := range codes {
		frac := row.AAComposition[code]
		filled := int(frac * float64(barWidth) * 5) // 20% of residues fills the bar
		if filled > barWidth {
			filled = barWidth
		}
		bar := barStyle.Render(strings.Repeat("█", filled))
		lines = append(lines, fmt.Sprintf("%s %s %s", metricLabelStyle.Render(code), metricValueStyle.Render(fmt.Sprintf("%8.4f", frac)), bar))
	}
	return lines
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

func (m model) renderStatusBar() string {
	leftInfo := fmt.Sprintf("%d/%d genomes", m.selectedIndex+1, m.totalRows)
	centerInfo := fmt.Sprintf("Mode: %s", m.currentMode.String())
	rightInfo := "Press 'h' for help • 'q' to quit"

	totalUsed := len(leftInfo) + len(centerInfo) + len(rightInfo)
	spacing := m.width - totalUsed - 6

	var statusContent string
	if spacing > 0 {
		leftSpacing := spacing / 2
		rightSpacing := spacing - leftSpacing

		statusContent = fmt.Sprintf("%s%s%s%s%s",
			leftInfo,
			strings.Repeat(" ", leftSpacing),
			centerInfo,
			strings.Repeat(" ", rightSpacing),
			rightInfo,
		)
	} else {
		// Fallback for narrow terminals
		statusContent = fmt.Sprintf("%s | %s", leftInfo, centerInfo)
	}

	return statusBarStyle.
		Width(m.width).
		Render(statusContent)
}

func (m model) renderHelpModal() string {
	helpContent := `ASTUR Results Browser - Help

Navigation:
  ↑/↓, j/k     Navigate list
  /            Filter genomes
  Enter        Select genome

View Modes:
  1            Elemental metrics (N/C/S-ARSC, AvgResMW)
  2            Amino acid composition
  Tab          Cycle modes

General:
  h            Toggle this help
  q, Ctrl+C    Quit application

Current Mode: ` + m.currentMode.String() + `
Total Genomes: ` + fmt.Sprintf("%d", m.totalRows) + `
`

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(surfaceColor).
		Foreground(textColor).
		Width(60).
		Align(lipgloss.Center)

	modal := modalStyle.Render(helpContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

func main() {
	tsvPath := flag.String("tsv", "astur.tsv", "path to an astur results TSV (written with a header)")
	flag.Parse()
	if flag.NArg() == 1 {
		*tsvPath = flag.Arg(0)
	}

	f, err := os.Open(*tsvPath)
	if err != nil {
		log.Fatal(err)
	}
	rows, err := parseTSV(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	p := tea.NewProgram(newModel(rows), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
