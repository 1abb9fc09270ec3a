package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVideo   = "\uf03d" // video camera
	IconVersion = "\uf02b" // tag
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconGo      = "\ue627" // go gopher
)
