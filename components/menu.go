package components

import "github.com/yohamta/donburi"

type MainMenuOption int

const (
	MainMenuNewGame MainMenuOption = iota
	MainMenuContinue
	MainMenuExit
)

type MenuData struct {
	SelectedIndex  int
	VisibleOptions []MainMenuOption
}

var Menu = donburi.NewComponentType[MenuData]()
