package app

// viewController keeps the cursor of the current document in view.
type viewController struct {
	app *Application
}

// ScrollToCursor scrolls the viewport so the cursor line sits inside the
// vertical margins and the cursor column inside the horizontal ones.
func (v viewController) ScrollToCursor() error {
	doc := v.app.current()
	if doc == nil {
		return ErrBufferMissing
	}
	pos := doc.Engine.Cursor().Position()
	v.app.viewport.ScrollToCursor(pos.Line, doc.Engine.LineText(pos.Line), pos.Offset)
	return nil
}
