// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the interactive registration form. The model owns a
// registration.FormState and projects it onto a column of form inputs; every
// input change is copied into the state, and validation results are copied
// back as inline errors.
package tui // import "github.com/toeirei/regform/internal/tui"

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/regform/internal/avatar"
	"github.com/toeirei/regform/internal/countries"
	"github.com/toeirei/regform/internal/i18n"
	"github.com/toeirei/regform/internal/logging"
	"github.com/toeirei/regform/internal/registration"
	"github.com/toeirei/regform/internal/theme"
	"github.com/toeirei/regform/internal/tui/form"
	forminput "github.com/toeirei/regform/internal/tui/form/input"
	"github.com/toeirei/regform/internal/tui/frame"
)

const (
	submitID = "submit"
	resetID  = "reset"
)

// CountryLoader supplies the country options. Failures are the loader's
// business; it returns an empty list.
type CountryLoader interface {
	Load(ctx context.Context) []countries.Option
}

// Options configures a Model.
type Options struct {
	Countries CountryLoader
	Store     theme.Store
	Theme     theme.Theme
	Clock     func() time.Time
	Clipboard func(string) error
	StartDir  string
}

// countriesLoadedMsg carries the result of the one country fetch.
type countriesLoadedMsg struct {
	options []countries.Option
}

// blurMsg is sent when focus leaves an input.
type blurMsg struct {
	field registration.Field
}

// submitMsg carries the decoded form values of a submit request.
type submitMsg struct {
	values registration.Values
	err    error
}

type resetMsg struct{}

type openTermsMsg struct{}

type themeSavedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

// Model is the bubbletea model of the registration form.
type Model struct {
	ctx       context.Context
	state     *registration.FormState
	form      form.Form[registration.Values]
	avatar    *avatar.Handler
	country   *forminput.Select
	progress  progress.Model
	help      help.Model
	keys      keyMap
	theme     theme.Theme
	palette   theme.Palette
	store     theme.Store
	loader    CountryLoader
	clipboard func(string) error
	terms     *frame.Dialog
	focusCmd  tea.Cmd
	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool
}

// New builds the form model. ctx bounds the country fetch.
func New(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	var stateOpts []registration.Option
	if opts.Clock != nil {
		stateOpts = append(stateOpts, registration.WithClock(opts.Clock))
	}
	if opts.Store == nil {
		opts.Store = &theme.MemoryStore{}
	}
	if opts.Theme == "" {
		opts.Theme = theme.Dark
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	m := Model{
		ctx:       ctx,
		state:     registration.New(stateOpts...),
		avatar:    &avatar.Handler{},
		help:      help.New(),
		keys:      defaultKeyMap,
		store:     opts.Store,
		loader:    opts.Countries,
		clipboard: opts.Clipboard,
		width:     80,
	}
	m.progress = progress.New(progress.WithSolidFill("196"), progress.WithWidth(40))
	m.country = forminput.NewSelect(
		registration.FieldCountry.Label(),
		registration.FieldCountry.Label(),
		i18n.T("countries.loading"),
		i18n.T("countries.empty"),
	)
	m.country.Hint = i18n.T("countries.filter_hint")
	m.form = m.newForm(opts.StartDir)
	m.applyTheme(opts.Theme)
	m.focusCmd, _ = m.form.Focus()
	return m
}

func (m *Model) newForm(startDir string) form.Form[registration.Values] {
	window := func() (time.Time, time.Time) {
		w := m.state.Window()
		return w.Min, w.Max
	}
	genders := make([]forminput.Option, 0, len(registration.Genders))
	for _, g := range registration.Genders {
		genders = append(genders, forminput.Option{Value: string(g), Label: g.Label()})
	}
	file := forminput.NewFile(registration.FieldAvatar.Label(), forminput.FileTexts{
		Choose:     i18n.T("avatar.choose"),
		FileFormat: i18n.T("avatar.file"),
		PreviewAlt: i18n.T("avatar.preview_alt"),
		Hint:       i18n.T("avatar.picker_hint"),
		DeleteHint: i18n.T("avatar.delete_hint"),
	}, m.avatar)
	file.StartIn = startDir

	field := func(f registration.Field, in form.FormInput) form.NewOpt[registration.Values] {
		return form.WithInput[registration.Values](string(f), in)
	}

	return form.New(
		field(registration.FieldName, forminput.NewText(registration.FieldName.Label(), "")),
		field(registration.FieldEmail, forminput.NewText(registration.FieldEmail.Label(), "name@example.com")),
		field(registration.FieldPassword, forminput.NewPassword(registration.FieldPassword.Label())),
		field(registration.FieldConfirmPassword, forminput.NewPassword(registration.FieldConfirmPassword.Label())),
		field(registration.FieldDateOfBirth, forminput.NewDate(registration.FieldDateOfBirth.Label(), forminput.DateTexts{
			Placeholder: i18n.T("date.placeholder"),
			Invalid:     i18n.T("date.invalid"),
			Hint:        i18n.T("date.hint"),
		}, window)),
		field(registration.FieldGender, forminput.NewRadio(registration.FieldGender.Label(), genders...)),
		field(registration.FieldCountry, m.country),
		field(registration.FieldAvatar, file),
		field(registration.FieldAcceptTerms, forminput.NewCheckbox(registration.FieldAcceptTerms.Label(), i18n.T("terms.link"))),
		form.WithRow[registration.Values](
			form.Item{ID: submitID, Input: forminput.NewButton(i18n.T("button.submit"), form.ActionSubmit)},
			form.Item{ID: resetID, Input: forminput.NewButton(i18n.T("button.reset"), form.ActionReset)},
		),
		form.WithOnSubmit(func(values registration.Values, err error) tea.Cmd {
			return func() tea.Msg { return submitMsg{values: values, err: err} }
		}),
		form.WithOnReset[registration.Values](func() tea.Cmd {
			return func() tea.Msg { return resetMsg{} }
		}),
		form.WithOnBlur[registration.Values](func(id string) tea.Cmd {
			f, ok := registration.ParseField(id)
			if !ok {
				return nil
			}
			return func() tea.Msg { return blurMsg{field: f} }
		}),
		form.WithOnOpen[registration.Values](func(id string) tea.Cmd {
			if id != string(registration.FieldAcceptTerms) {
				return nil
			}
			return func() tea.Msg { return openTermsMsg{} }
		}),
	)
}

// Init focuses the first input and starts the country fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.focusCmd, loadCountriesCmd(m.ctx, m.loader))
}

func loadCountriesCmd(ctx context.Context, loader CountryLoader) tea.Cmd {
	return func() tea.Msg {
		if loader == nil {
			return countriesLoadedMsg{options: []countries.Option{}}
		}
		return countriesLoadedMsg{options: loader.Load(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.progress.Width = max(min(msg.Width-30, 60), 10)
		m.form, cmd = m.form.Update(tea.WindowSizeMsg{Width: min(msg.Width-4, 80), Height: msg.Height})
		return m, cmd

	case countriesLoadedMsg:
		if m.quitting {
			return m, nil
		}
		opts := make([]forminput.Option, len(msg.options))
		for i, o := range msg.options {
			opts[i] = forminput.Option{Value: o.Value, Label: o.Label}
		}
		m.country.SetOptions(opts)
		return m, nil

	case spinner.TickMsg:
		return m, m.form.UpdateAll(msg)

	case blurMsg:
		m.state.Blur(msg.field)
		m.syncErrors()
		return m, nil

	case submitMsg:
		m.submit(msg)
		return m, nil

	case resetMsg:
		return m, m.reset()

	case openTermsMsg:
		m.terms = frame.NewDialog(i18n.T("terms.title"), i18n.T("terms.body"), i18n.T("terms.close"))
		m.terms.SetWidth(min(m.width-4, 60))
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			logging.Warnf("could not save theme: %v", msg.err)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
		} else {
			m.setStatus(i18n.T("submit.copied"), false)
		}
		return m, nil

	case tea.KeyMsg:
		if m.terms != nil {
			m.updateTerms(msg)
			return m, nil
		}
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
		m.form, cmd = m.form.Update(msg)
		m.sync()
		return m, cmd
	}

	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// handleGlobalKey runs the form-wide bindings. Plain keys such as ? and esc
// stay with the input while it captures them.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return tea.Quit, true
	}
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.sync()
		return m.form.Submit(), true
	case key.Matches(msg, m.keys.Reset):
		return func() tea.Msg { return resetMsg{} }, true
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme(), true
	case key.Matches(msg, m.keys.Copy):
		return m.copySubmission(), true
	}
	if m.form.Capturing() {
		return nil, false
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit, true
	case key.Matches(msg, m.keys.Help) && !m.typing():
		m.help.ShowAll = !m.help.ShowAll
		return nil, true
	}
	return nil, false
}

// typing reports whether the focused input takes free text.
func (m *Model) typing() bool {
	in, ok := m.form.Input(m.form.ActiveID())
	if !ok {
		return false
	}
	_, text := in.(*forminput.Text)
	return text
}

func (m *Model) updateTerms(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		m.terms.ScrollUp()
	case "down", "j":
		m.terms.ScrollDown()
	case "enter", "esc", "q", " ":
		m.terms = nil
	}
}

// sync copies the input values into the form state and the resulting
// errors back onto the inputs.
func (m *Model) sync() {
	values, err := m.form.Get()
	if err != nil {
		logging.Debugf("decode form values: %v", err)
		return
	}
	if changed := m.state.Apply(values); len(changed) > 0 && m.state.Phase() == registration.PhaseEditing {
		m.status = ""
	}
	m.syncErrors()
}

func (m *Model) syncErrors() {
	errs := m.state.Errors()
	msgs := make(map[string]string, len(errs))
	for f, msg := range errs {
		msgs[string(f)] = msg
	}
	m.form.SetErrors(msgs)
}

func (m *Model) submit(msg submitMsg) {
	if msg.err != nil {
		logging.Errorf("decode form values: %v", msg.err)
		return
	}
	m.state.Apply(msg.values)
	sub, ok := m.state.Submit()
	m.syncErrors()
	if !ok {
		m.setStatus(i18n.T("submit.failed", len(m.state.Errors())), true)
		return
	}
	sub.Log()
	m.setStatus(i18n.T("submit.success", shortID(sub.ID)), false)
}

// reset restores the empty form, drops the avatar preview and focuses the
// first input.
func (m *Model) reset() tea.Cmd {
	m.state.Reset()
	cmd := m.form.Reset()
	m.syncErrors()
	m.status, m.statusErr = "", false
	return cmd
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

func (m *Model) applyTheme(t theme.Theme) {
	m.theme = t
	m.palette = theme.PaletteFor(t)
	m.form.SetStyles(formStyles(m.palette))
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(m.palette.Highlight)
	m.help.Styles.FullKey = lipgloss.NewStyle().Foreground(m.palette.Highlight)
	m.help.Styles.ShortDesc = m.palette.Help
	m.help.Styles.FullDesc = m.palette.Help
	m.progress.EmptyColor = string(m.palette.Subtle)
}

func (m *Model) toggleTheme() tea.Cmd {
	next := m.theme.Toggle()
	m.applyTheme(next)
	store := m.store
	return func() tea.Msg {
		return themeSavedMsg{err: store.Save(next)}
	}
}

func (m *Model) copySubmission() tea.Cmd {
	sub := m.state.LastSubmission()
	if sub == nil {
		m.setStatus(i18n.T("submit.nothing_to_copy"), true)
		return nil
	}
	data, err := sub.JSON()
	if err != nil {
		m.setStatus(err.Error(), true)
		return nil
	}
	write := m.clipboard
	return func() tea.Msg {
		return copiedMsg{err: write(data)}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// State exposes the form state, mainly for callers that report the result
// after the program ends.
func (m Model) State() *registration.FormState { return m.state }

// Theme returns the active theme.
func (m Model) Theme() theme.Theme { return m.theme }

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	p := m.palette
	width := min(max(m.width-4, 40), 80)

	header := frame.Footer(
		p.Title.Render(i18n.T("app.title")),
		p.Help.Render(m.theme.Label()+" (ctrl+t)"),
		width,
	)

	percent := m.state.Progress()
	m.progress.FullColor = string(p.BandColor(registration.BandFor(percent)))
	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		p.Label.Render(i18n.T("progress.label")+" "),
		m.progress.ViewAs(float64(percent)/100),
	)

	var status string
	switch {
	case m.status != "" && m.statusErr:
		status = p.ErrorText.Render(m.status)
	case m.status != "":
		status = p.SuccessText.Render(m.status)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		bar,
		"",
		m.form.View(),
		status,
		m.help.View(form.MergeKeyMaps(m.form.KeyMap(), m.keys)),
	)
	view := p.Doc.Render(body)

	if m.terms != nil {
		return lipgloss.Place(max(m.width, lipgloss.Width(view)), max(m.height, lipgloss.Height(view)),
			lipgloss.Center, lipgloss.Center, m.terms.Render())
	}
	return view
}

// Run starts the form on the terminal and blocks until the user quits. The
// returned model holds the final state.
func Run(ctx context.Context, opts Options) (Model, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return Model{}, fmt.Errorf("run form: %w", err)
	}
	m, _ := final.(Model)
	return m, nil
}
