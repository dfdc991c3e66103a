package commands

// Undo restores the previous committed state.
type Undo struct{}

// Word returns "undo".
func (Undo) Word() string { return WordUndo }

// Execute steps the history back.
func (Undo) Execute(model Model, _ *CommandHistory) (Result, error) {
	if err := model.Undo(); err != nil {
		return Result{}, err
	}
	return Result{Feedback: "Undo success!"}, nil
}

// Redo restores the most recently undone state.
type Redo struct{}

// Word returns "redo".
func (Redo) Word() string { return WordRedo }

// Execute steps the history forward.
func (Redo) Execute(model Model, _ *CommandHistory) (Result, error) {
	if err := model.Redo(); err != nil {
		return Result{}, err
	}
	return Result{Feedback: "Redo success!"}, nil
}
