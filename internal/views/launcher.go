package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const welcomeTextSize = 40

// LauncherActions are the handlers a controller attaches to the launcher
type LauncherActions struct {
	OpenNotes    func()
	OpenTodo     func()
	OpenRecent   func(path string)
	ClearHistory func()
}

// LauncherView is the main window with the category buttons and File menu
type LauncherView struct {
	window      fyne.Window
	notesButton *widget.Button
	todoButton  *widget.Button
	mainMenu    *fyne.MainMenu
	recentItem  *fyne.MenuItem
	clearItem   *fyne.MenuItem

	actions LauncherActions
}

// NewLauncherView creates the launcher window; it is the master window of fyneApp
func NewLauncherView(fyneApp fyne.App, title string, size fyne.Size) *LauncherView {
	lv := &LauncherView{
		window: fyneApp.NewWindow(title),
	}

	lv.window.Resize(size)
	lv.window.CenterOnScreen()
	lv.window.SetMaster()

	lv.initializeComponents()
	lv.buildLayout()
	lv.buildMenu()

	return lv
}

func (lv *LauncherView) initializeComponents() {
	lv.notesButton = widget.NewButton("Notes", func() {
		if lv.actions.OpenNotes != nil {
			lv.actions.OpenNotes()
		}
	})
	lv.notesButton.Importance = widget.HighImportance

	lv.todoButton = widget.NewButton("To-do", func() {
		if lv.actions.OpenTodo != nil {
			lv.actions.OpenTodo()
		}
	})
	lv.todoButton.Importance = widget.HighImportance
}

func (lv *LauncherView) buildLayout() {
	welcome := canvas.NewText("Welcome User", theme.Color(theme.ColorNameForeground))
	welcome.TextSize = welcomeTextSize
	welcome.Alignment = fyne.TextAlignCenter

	buttons := container.NewGridWithColumns(2, lv.notesButton, lv.todoButton)

	lv.window.SetContent(container.NewBorder(nil, buttons, nil, nil, container.NewCenter(welcome)))
}

func (lv *LauncherView) buildMenu() {
	lv.recentItem = fyne.NewMenuItem("Open Recent", nil)
	lv.recentItem.ChildMenu = fyne.NewMenu("")

	lv.clearItem = fyne.NewMenuItem("Clear History", func() {
		if lv.actions.ClearHistory != nil {
			lv.actions.ClearHistory()
		}
	})

	lv.mainMenu = fyne.NewMainMenu(fyne.NewMenu("File", lv.recentItem, lv.clearItem))
	lv.window.SetMainMenu(lv.mainMenu)
}

// SetActions connects the launcher to its controller
func (lv *LauncherView) SetActions(actions LauncherActions) {
	lv.actions = actions
}

// SetRecentFiles rebuilds the Open Recent submenu
func (lv *LauncherView) SetRecentFiles(paths []string) {
	items := make([]*fyne.MenuItem, 0, len(paths))
	for _, path := range paths {
		items = append(items, fyne.NewMenuItem(path, func() {
			if lv.actions.OpenRecent != nil {
				lv.actions.OpenRecent(path)
			}
		}))
	}

	if len(items) == 0 {
		empty := fyne.NewMenuItem("No recent files", nil)
		empty.Disabled = true
		items = append(items, empty)
	}

	lv.recentItem.ChildMenu.Items = items
	lv.mainMenu.Refresh()
}

// RecentItems returns the entries currently under Open Recent
func (lv *LauncherView) RecentItems() []*fyne.MenuItem {
	return lv.recentItem.ChildMenu.Items
}

func (lv *LauncherView) ShowWarning(title, message string) {
	dialog.ShowInformation(title, message, lv.window)
}

func (lv *LauncherView) Show() {
	lv.window.Show()
}

func (lv *LauncherView) Hide() {
	lv.window.Hide()
}

func (lv *LauncherView) Window() fyne.Window {
	return lv.window
}
