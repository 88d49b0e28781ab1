package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gqlgate/gqlgate-cli/internal/core/config"
	"github.com/gqlgate/gqlgate-cli/internal/infrastructure/configload"
)

func newInspectCommand(newLogger loggerFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [config-file]",
		Short: "Interactive browser over a gateway configuration",
		Long: `Inspect opens a terminal browser over the type registry: pick a type to
see its fields with their flags, resolution steps and arguments.

With no argument the stored effective configuration is used (see
'gqlgate merge --save').

Examples:
  gqlgate inspect gateway.json
  gqlgate inspect`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			var (
				cfg    config.Config
				source string
				err    error
			)
			if len(args) > 0 {
				source = args[0]
				cfg, err = configload.NewFileLoader(source).Load(cmd.Context())
			} else {
				repo := configload.NewRepository()
				exists, existsErr := repo.Exists(cmd.Context())
				if existsErr != nil {
					return existsErr
				}
				if !exists {
					return fmt.Errorf("no stored configuration; pass a file or run 'gqlgate merge --save' first")
				}
				source, _ = repo.Path()
				cfg, err = repo.Load(cmd.Context())
			}
			if err != nil {
				return err
			}

			log.Debug().Str("source", source).Int("types", len(cfg.GraphQL.Types)).Msg("starting inspector")

			program := tea.NewProgram(newInspectModel(cfg, source), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("inspector failed: %w", err)
			}
			return nil
		},
	}

	return cmd
}

// inspectModel holds the state for the Bubble Tea inspector.
type inspectModel struct {
	cfg    config.Config
	source string

	typeNames    []string
	selectedType int

	// fieldView switches between the type list and the field table of the
	// selected type.
	fieldView     bool
	selectedField int

	windowWidth  int
	windowHeight int
}

// newInspectModel creates an inspector model over cfg.
func newInspectModel(cfg config.Config, source string) inspectModel {
	names := make([]string, 0, len(cfg.GraphQL.Types))
	for name := range cfg.GraphQL.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	return inspectModel{
		cfg:       cfg,
		source:    source,
		typeNames: names,
	}
}

// Init implements the Bubble Tea init method.
func (m inspectModel) Init() tea.Cmd {
	return nil
}

// Update implements the Bubble Tea update method.
func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.fieldView {
				if m.selectedField > 0 {
					m.selectedField--
				}
			} else if m.selectedType > 0 {
				m.selectedType--
			}
			return m, nil

		case "down", "j":
			if m.fieldView {
				if m.selectedField < len(m.selectedFields())-1 {
					m.selectedField++
				}
			} else if m.selectedType < len(m.typeNames)-1 {
				m.selectedType++
			}
			return m, nil

		case "enter":
			if !m.fieldView && len(m.typeNames) > 0 {
				m.fieldView = true
				m.selectedField = 0
			}
			return m, nil

		case "esc":
			m.fieldView = false
			return m, nil
		}
	}

	return m, nil
}

// selectedFields returns the sorted field names of the selected type.
func (m inspectModel) selectedFields() []string {
	if len(m.typeNames) == 0 {
		return nil
	}
	fields := m.cfg.GraphQL.Types[m.typeNames[m.selectedType]]
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// View implements the Bubble Tea view method.
func (m inspectModel) View() string {
	header := m.renderHeader()

	var body string
	if m.fieldView {
		body = m.renderFieldTable()
	} else {
		body = m.renderTypeList()
	}

	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderHeader renders the inspector header.
func (m inspectModel) renderHeader() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Render("gqlgate inspector")

	schema := m.cfg.GraphQL.Schema
	roots := schema.Query
	if schema.Mutation != "" {
		roots += "/" + schema.Mutation
	}
	if roots == "" {
		roots = "-"
	}

	info := fmt.Sprintf("Source: %s | Version: %d | Roots: %s | Types: %d",
		m.source,
		m.cfg.Version,
		roots,
		len(m.typeNames),
	)

	divider := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(strings.Repeat("─", max(m.windowWidth, 40)))

	return lipgloss.JoinVertical(lipgloss.Left, title, info, divider)
}

// renderTypeList renders the type registry list.
func (m inspectModel) renderTypeList() string {
	if len(m.typeNames) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Render("\n  No types registered.\n")
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Render(fmt.Sprintf("%-24s │ %s", "TYPE", "FIELDS"))

	rows := []string{header}
	for i, name := range m.typeNames {
		rowStyle := lipgloss.NewStyle()
		if i == m.selectedType {
			rowStyle = rowStyle.Background(lipgloss.Color("240"))
		}
		row := fmt.Sprintf("%-24s │ %d", truncateString(name, 24), len(m.cfg.GraphQL.Types[name]))
		rows = append(rows, rowStyle.Render(row))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFieldTable renders the fields of the selected type.
func (m inspectModel) renderFieldTable() string {
	typeName := m.typeNames[m.selectedType]
	fields := m.cfg.GraphQL.Types[typeName]

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Render(fmt.Sprintf("%s  %-20s │ %-16s │ %-5s │ %-24s │ %s",
			typeName, "FIELD", "TYPE", "FLAGS", "STEPS", "ARGS"))

	rows := []string{header}
	for i, name := range m.selectedFields() {
		field := fields[name]

		rowStyle := lipgloss.NewStyle()
		if i == m.selectedField {
			rowStyle = rowStyle.Background(lipgloss.Color("240"))
		}

		row := fmt.Sprintf("%-*s  %-20s │ %-16s │ %-5s │ %-24s │ %d",
			len(typeName), "",
			truncateString(name, 20),
			truncateString(renderFieldType(field), 16),
			renderFieldFlags(field),
			truncateString(renderSteps(field.Steps), 24),
			len(field.Args),
		)
		rows = append(rows, rowStyle.Render(row))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFooter renders the control instructions footer.
func (m inspectModel) renderFooter() string {
	divider := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(strings.Repeat("─", max(m.windowWidth, 40)))

	controls := "Controls: [↑↓] Navigate | [Enter] Fields | [Esc] Types | [q] Quit"
	if m.fieldView {
		controls = "Controls: [↑↓] Navigate | [Esc] Back to types | [q] Quit"
	}

	return lipgloss.JoinVertical(lipgloss.Left, divider,
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(controls))
}

// renderFieldType renders a field's type with GraphQL list/required markers.
func renderFieldType(f config.Field) string {
	out := f.Type
	if f.List {
		out = "[" + out + "]"
	}
	if f.Required {
		out += "!"
	}
	return out
}

// renderFieldFlags summarizes the list/required flags.
func renderFieldFlags(f config.Field) string {
	flags := ""
	if f.List {
		flags += "L"
	}
	if f.Required {
		flags += "R"
	}
	if flags == "" {
		flags = "-"
	}
	return flags
}

// renderSteps summarizes a resolution pipeline.
func renderSteps(steps []config.Step) string {
	if len(steps) == 0 {
		return "-"
	}

	parts := make([]string, len(steps))
	for i, step := range steps {
		switch s := step.(type) {
		case config.HTTPStep:
			method := s.Method
			if method == "" {
				method = "GET"
			}
			parts[i] = fmt.Sprintf("http %s %s", method, s.Path)
		case config.ConstStep:
			parts[i] = "const"
		case config.ObjectPathStep:
			parts[i] = fmt.Sprintf("objectPath(%d)", len(s.Spec))
		default:
			parts[i] = "?"
		}
	}
	return strings.Join(parts, " → ")
}

// truncateString shortens s to maxLen runes, appending "..." when truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
