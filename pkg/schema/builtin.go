package schema

// Builtin returns a registry for the stock visual classes: a small
// Instance-rooted hierarchy sufficient for the document loaders, the CLI,
// and the preview server. Applications with their own class vocabulary
// supply their own registry instead.
func Builtin() *Registry {
	return NewRegistry(
		&Class{
			Name: "Instance",
			Properties: []Property{
				{Name: "Name", Default: ""},
				{Name: "Parent", Access: AccessHidden},
				{Name: "ClassName", Access: AccessReadOnly},
				{Name: "Archivable", Default: true},
			},
		},
		&Class{
			Name:  "GuiObject",
			Super: "Instance",
			Properties: []Property{
				{Name: "Visible", Default: true},
				{Name: "Position", Default: "0,0"},
				{Name: "Size", Default: "0,0"},
				{Name: "ZIndex", Default: 1},
				{Name: "BackgroundColor", Default: "#ffffff"},
				{Name: "BackgroundTransparency", Default: 0},
				{Name: "AbsolutePosition", Access: AccessReadOnly},
				{Name: "AbsoluteSize", Access: AccessReadOnly},
			},
		},
		&Class{
			Name:  "Frame",
			Super: "GuiObject",
			Properties: []Property{
				{Name: "BorderSize", Default: 1},
				{Name: "ClipsDescendants", Default: false},
			},
		},
		&Class{
			Name:  "ScrollingFrame",
			Super: "Frame",
			Properties: []Property{
				{Name: "CanvasSize", Default: "0,0"},
				{Name: "ScrollBarThickness", Default: 12},
			},
		},
		&Class{
			Name:  "Label",
			Super: "GuiObject",
			Properties: []Property{
				{Name: "Text", Default: ""},
				{Name: "TextColor", Default: "#000000"},
				{Name: "TextSize", Default: 14},
				{Name: "Font", Default: "Default"},
				{Name: "TextWrapped", Default: false},
			},
		},
		&Class{
			Name:  "Button",
			Super: "Label",
			Properties: []Property{
				{Name: "AutoButtonColor", Default: true},
				{Name: "Selected", Default: false},
			},
		},
		&Class{
			Name:  "Image",
			Super: "GuiObject",
			Properties: []Property{
				{Name: "Source", Default: ""},
				{Name: "ScaleType", Default: "Stretch"},
				{Name: "ImageTransparency", Default: 0},
			},
		},
	)
}
