package menu

// Choice is a numbered menu entry.
type Choice int

const (
	ChoiceSetDimensions Choice = iota + 1
	ChoiceGenerate
	ChoiceDisplay
	ChoiceSave
	ChoiceLoad
	ChoiceExit
	// ChoiceView is only offered when a viewer is configured.
	ChoiceView
)

// String returns the menu label for the choice.
func (c Choice) String() string {
	switch c {
	case ChoiceSetDimensions:
		return "Set dimensions"
	case ChoiceGenerate:
		return "Generate New Maze"
	case ChoiceDisplay:
		return "Display Maze"
	case ChoiceSave:
		return "Save Maze"
	case ChoiceLoad:
		return "Load Maze"
	case ChoiceExit:
		return "Exit"
	case ChoiceView:
		return "View Maze Full Screen"
	default:
		return "unknown"
	}
}
